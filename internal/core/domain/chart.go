package domain

// ChartKind identifies how the current aggregation is presented.
type ChartKind string

// Available chart kinds.
const (
	// ChartLine draws one line per category over time.
	ChartLine ChartKind = "line"

	// ChartBar draws grouped vertical bars per category over time.
	ChartBar ChartKind = "bar"

	// ChartStackedArea draws filled, stacked series over time.
	ChartStackedArea ChartKind = "stacked_area"

	// ChartHorizontalBar draws grouped horizontal bars per category over time.
	ChartHorizontalBar ChartKind = "horizontal_bar"

	// ChartPie draws the per-category distribution for one year.
	ChartPie ChartKind = "pie"
)

// AllChartKinds returns every chart kind in selector order.
func AllChartKinds() []ChartKind {
	return []ChartKind{ChartLine, ChartBar, ChartStackedArea, ChartHorizontalBar, ChartPie}
}

// IsValid returns true if the chart kind is recognised.
func (k ChartKind) IsValid() bool {
	switch k {
	case ChartLine, ChartBar, ChartStackedArea, ChartHorizontalBar, ChartPie:
		return true
	default:
		return false
	}
}

// Mode returns the visual mode this chart kind belongs to.
func (k ChartKind) Mode() ViewMode {
	if k == ChartPie {
		return ModeDistribution
	}
	return ModeSeries
}

// String returns the string representation.
func (k ChartKind) String() string {
	return string(k)
}

// Description returns a human-readable label for selectors.
func (k ChartKind) Description() string {
	switch k {
	case ChartLine:
		return "Linjediagram"
	case ChartBar:
		return "Stolpediagram"
	case ChartStackedArea:
		return "Stablet område"
	case ChartHorizontalBar:
		return "Liggende stolper"
	case ChartPie:
		return "Kakediagram (ett år)"
	default:
		return "Ukjent"
	}
}

// ParseChartKind converts a string to a ChartKind.
// Returns ErrInvalidInput for unknown values.
func ParseChartKind(s string) (ChartKind, error) {
	k := ChartKind(s)
	if !k.IsValid() {
		return "", ErrInvalidInput
	}
	return k, nil
}

// ViewMode is the visual mode of the view-state machine.
type ViewMode int

const (
	// ModeSeries shows counts over time and uses the category filter.
	ModeSeries ViewMode = iota

	// ModeDistribution shows one period and uses the year filter.
	ModeDistribution
)

// String returns the string representation of the view mode.
func (m ViewMode) String() string {
	switch m {
	case ModeSeries:
		return "series"
	case ModeDistribution:
		return "distribution"
	default:
		return "unknown"
	}
}

// Dataset is one chart series in the shape chart libraries expect.
type Dataset struct {
	// Label names the series, usually the category.
	Label string `json:"label"`

	// Data holds one value per chart label.
	Data []int `json:"data"`

	// BorderColor is the stroke colour.
	BorderColor string `json:"borderColor,omitempty"`

	// BackgroundColors holds the fill colour. A single entry applies to the
	// whole series; distribution charts carry one entry per slice.
	BackgroundColors []string `json:"backgroundColors,omitempty"`

	// Fill enables area filling under the line.
	Fill bool `json:"fill"`

	// Tension is the line curve tension.
	Tension float64 `json:"tension,omitempty"`
}

// Chart is a fully resolved chart instance ready for a renderer.
type Chart struct {
	// ID identifies this instance. Each recompute produces a new ID.
	ID string `json:"id"`

	// Kind is the chart kind that produced the instance.
	Kind ChartKind `json:"kind"`

	// Title is the chart heading.
	Title string `json:"title"`

	// Labels holds the x-axis labels or slice names.
	Labels []string `json:"labels"`

	// Datasets holds the series to draw.
	Datasets []Dataset `json:"datasets"`

	// XAxisTitle and YAxisTitle name the axes. Empty for distribution charts.
	XAxisTitle string `json:"xAxisTitle,omitempty"`
	YAxisTitle string `json:"yAxisTitle,omitempty"`

	// IndexAxis is "y" for horizontal bars and "x" otherwise.
	IndexAxis string `json:"indexAxis,omitempty"`

	// Stacked stacks series on both axes.
	Stacked bool `json:"stacked"`
}

// Table is the accessible tabular mirror of a chart.
// All cells are pre-formatted for display.
type Table struct {
	// Caption describes the table contents.
	Caption string `json:"caption"`

	// Headers holds the column headings.
	Headers []string `json:"headers"`

	// Rows holds one slice of cells per category.
	Rows [][]string `json:"rows"`
}
