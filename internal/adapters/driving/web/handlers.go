package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
	"github.com/custodia-labs/arbeidssokere/internal/logger"
)

// viewResponse is the JSON body of /api/view.
type viewResponse struct {
	domain.ViewState
	Mode    string `json:"mode"`
	Message string `json:"message,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newViewResponse(state domain.ViewState) viewResponse {
	return viewResponse{
		ViewState: state,
		Mode:      state.Mode.String(),
		Message:   state.Message(),
	}
}

// selectionFromQuery reads kind, category and year. Missing values take
// their defaults.
func selectionFromQuery(q url.Values) (domain.Selection, error) {
	sel := domain.DefaultSelection()
	if v := q.Get("kind"); v != "" {
		kind, err := domain.ParseChartKind(v)
		if err != nil {
			return sel, fmt.Errorf("%w: chart kind %q", err, v)
		}
		sel.Kind = kind
	}
	if v := q.Get("category"); v != "" {
		sel.Category = v
	}
	sel.Year = q.Get("year")
	return sel, nil
}

// compute resolves sel and maps the controller error to an HTTP status.
func (s *Server) compute(sel domain.Selection) (domain.ViewState, int, error) {
	state, err := s.view.Compute(sel)
	switch {
	case err == nil:
		s.metrics.Views.WithLabelValues(string(state.Selection.Kind)).Inc()
		s.metrics.Records.Set(float64(state.RecordCount))
		return state, http.StatusOK, nil
	case errors.Is(err, domain.ErrTerminal):
		s.metrics.ViewErrors.WithLabelValues("terminal").Inc()
		return state, http.StatusServiceUnavailable, err
	case errors.Is(err, domain.ErrNotLoaded):
		s.metrics.ViewErrors.WithLabelValues("not_loaded").Inc()
		return state, http.StatusServiceUnavailable, err
	case errors.Is(err, domain.ErrInvalidInput):
		s.metrics.ViewErrors.WithLabelValues("invalid").Inc()
		return state, http.StatusBadRequest, err
	default:
		s.metrics.ViewErrors.WithLabelValues("internal").Inc()
		logger.Error("View computation failed: %v", err)
		return state, http.StatusInternalServerError, err
	}
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	sel, err := selectionFromQuery(r.URL.Query())
	if err != nil {
		s.metrics.ViewErrors.WithLabelValues("invalid").Inc()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	state, status, err := s.compute(sel)
	switch status {
	case http.StatusBadRequest:
		writeJSON(w, status, errorResponse{Error: err.Error()})
	case http.StatusInternalServerError:
		writeJSON(w, status, errorResponse{Error: "internal error"})
	default:
		writeJSON(w, status, newViewResponse(state))
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sel, err := selectionFromQuery(r.URL.Query())
	if err != nil {
		s.metrics.ViewErrors.WithLabelValues("invalid").Inc()
		s.page.render(w, http.StatusBadRequest, s.view.State(), invalidSelectionMessage)
		return
	}

	state, status, err := s.compute(sel)
	message := state.Message()
	switch status {
	case http.StatusBadRequest:
		message = invalidSelectionMessage
		state = s.view.State()
	case http.StatusInternalServerError:
		message = err.Error()
	}
	s.page.render(w, status, state, message)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	state := s.view.State()
	status := http.StatusOK
	if state.Status != domain.StatusReady {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status":  state.Status,
		"records": state.RecordCount,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("Failed to encode response: %v", err)
	}
}
