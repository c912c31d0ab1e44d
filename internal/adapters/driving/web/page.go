package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
	"github.com/custodia-labs/arbeidssokere/internal/logger"
)

const (
	pageTitle               = "Arbeidssøkere etter yrkesgruppe"
	allCategoriesLabel      = "Alle yrkesgrupper"
	invalidSelectionMessage = "Ugyldig utvalg"
)

//go:embed templates/*.html
var templateFS embed.FS

type option struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	Title      string
	Message    string
	State      domain.ViewState
	Kinds      []option
	Categories []option
	Years      []option
}

type pageRenderer struct {
	tmpl *template.Template
}

func newPageRenderer() *pageRenderer {
	return &pageRenderer{
		tmpl: template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}
}

func (p *pageRenderer) render(w http.ResponseWriter, status int, state domain.ViewState, message string) {
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, newPageData(state, message)); err != nil {
		logger.Error("Failed to render page: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func newPageData(state domain.ViewState, message string) pageData {
	sel := state.Selection

	kinds := make([]option, 0, len(domain.AllChartKinds()))
	for _, k := range domain.AllChartKinds() {
		kinds = append(kinds, option{Value: string(k), Label: k.Description(), Selected: k == sel.Kind})
	}

	categories := []option{{Value: domain.CategoryAll, Label: allCategoriesLabel, Selected: sel.Category == domain.CategoryAll}}
	for _, c := range state.Categories {
		categories = append(categories, option{Value: c, Label: c, Selected: c == sel.Category})
	}

	years := make([]option, 0, len(state.Years))
	for _, y := range state.Years {
		years = append(years, option{Value: y, Label: y, Selected: y == sel.Year})
	}

	return pageData{
		Title:      pageTitle,
		Message:    message,
		State:      state,
		Kinds:      kinds,
		Categories: categories,
		Years:      years,
	}
}
