package driving

import (
	"context"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
)

// ViewController owns the loaded record set and the current selection.
type ViewController interface {
	// Load fetches, parses and normalises the dataset, then renders the
	// default selection. A failure moves the controller to its terminal
	// error state and is returned.
	Load(ctx context.Context) error

	// SetChartKind switches chart kind and recomputes.
	SetChartKind(kind domain.ChartKind) (domain.ViewState, error)

	// SetCategory changes the category filter and recomputes.
	SetCategory(category string) (domain.ViewState, error)

	// SetYear changes the year used by distribution charts and recomputes.
	// An empty year selects the most recent one.
	SetYear(year string) (domain.ViewState, error)

	// SetSelection replaces the whole selection and recomputes.
	SetSelection(sel domain.Selection) (domain.ViewState, error)

	// State returns the current view state.
	State() domain.ViewState

	// Compute returns the view state sel would produce without changing
	// the controller's selection or notifying the renderer.
	Compute(sel domain.Selection) (domain.ViewState, error)
}
