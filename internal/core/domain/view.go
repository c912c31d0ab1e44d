package domain

// ViewStatus tracks where the view-state machine is in its lifecycle.
type ViewStatus string

const (
	// StatusIdle means no load has been started.
	StatusIdle ViewStatus = "idle"

	// StatusLoading means the dataset is being fetched and parsed.
	StatusLoading ViewStatus = "loading"

	// StatusReady means the dataset is loaded and a view is available.
	StatusReady ViewStatus = "ready"

	// StatusError is the terminal state after a failed load.
	StatusError ViewStatus = "error"
)

// LoadErrorMessage is shown to the user for every load failure.
const LoadErrorMessage = "Kunne ikke laste data"

// ViewState is a snapshot of everything a surface needs to draw.
type ViewState struct {
	// Status is the lifecycle state.
	Status ViewStatus `json:"status"`

	// Selection is the selection that produced Chart and Table.
	Selection Selection `json:"selection"`

	// Mode is the visual mode implied by Selection.
	Mode ViewMode `json:"-"`

	// Categories holds the options for the category selector, ascending.
	Categories []string `json:"categories"`

	// Years holds the options for the year selector, ascending.
	Years []string `json:"years"`

	// CategorySelectorVisible is true in ModeSeries.
	CategorySelectorVisible bool `json:"categorySelectorVisible"`

	// YearSelectorVisible is true in ModeDistribution.
	YearSelectorVisible bool `json:"yearSelectorVisible"`

	// Chart is the current chart instance. Nil unless Status is StatusReady.
	Chart *Chart `json:"chart,omitempty"`

	// Table mirrors Chart. Nil unless Status is StatusReady.
	Table *Table `json:"table,omitempty"`

	// RecordCount is the number of loaded records.
	RecordCount int `json:"recordCount"`

	// Err holds the load failure in StatusError.
	Err error `json:"-"`
}

// Message returns the text for the status region.
func (v ViewState) Message() string {
	switch v.Status {
	case StatusIdle:
		return ""
	case StatusLoading:
		return "Laster data..."
	case StatusError:
		return LoadErrorMessage
	case StatusReady:
		return ""
	default:
		return ""
	}
}
