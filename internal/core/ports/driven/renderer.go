package driven

import "github.com/custodia-labs/arbeidssokere/internal/core/domain"

// Renderer draws view states on some surface.
type Renderer interface {
	// Replace destroys any previously drawn chart instance and draws state.
	// The table is redrawn together with the chart.
	Replace(state domain.ViewState) error

	// Destroy removes the current chart instance, if any.
	Destroy()
}
