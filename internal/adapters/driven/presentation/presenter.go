package presentation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driven"
)

// Ensure Presenter implements the interface.
var _ driven.Presenter = (*Presenter)(nil)

// Axis and header text.
const (
	AxisTime        = "År"
	AxisCount       = "Antall arbeidssøkere"
	HeaderCategory  = "Yrkesgruppe"
	seriesTitle     = "Arbeidssøkere etter yrkesgruppe"
	seriesCaption   = "Antall arbeidssøkere per yrkesgruppe og år"
	lineTension     = 0.1
	areaTintAlpha   = 0.5
	indexAxisHoriz  = "y"
	distributionFmt = "Arbeidssøkere etter yrkesgruppe, %s"
	distCaptionFmt  = "Antall arbeidssøkere per yrkesgruppe i %s"
)

// Presenter builds Chart.js-shaped charts and accessible tables.
type Presenter struct {
	numbers *NumberFormatter
	newID   func() string
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithIDGenerator overrides chart ID generation.
func WithIDGenerator(fn func() string) Option {
	return func(p *Presenter) {
		p.newID = fn
	}
}

// NewPresenter creates a presenter formatting numbers for locale.
func NewPresenter(locale string, opts ...Option) *Presenter {
	p := &Presenter{
		numbers: NewNumberFormatter(locale),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Numbers returns the presenter's number formatter.
func (p *Presenter) Numbers() *NumberFormatter {
	return p.numbers
}

// SeriesView builds one dataset per category in aggregation order.
// Pie is not a series kind; it is rendered with the line strategy.
func (p *Presenter) SeriesView(kind domain.ChartKind, agg domain.SeriesAggregation) (*domain.Chart, *domain.Table) {
	chart := &domain.Chart{
		ID:         p.newID(),
		Kind:       kind,
		Title:      seriesTitle,
		Labels:     nonNil(agg.TimeBuckets),
		Datasets:   make([]domain.Dataset, 0, agg.Len()),
		XAxisTitle: AxisTime,
		YAxisTitle: AxisCount,
	}

	switch kind {
	case domain.ChartHorizontalBar:
		chart.IndexAxis = indexAxisHoriz
		chart.XAxisTitle, chart.YAxisTitle = AxisCount, AxisTime
	case domain.ChartStackedArea:
		chart.Stacked = true
	case domain.ChartLine, domain.ChartBar, domain.ChartPie:
	}

	for i, category := range agg.Categories {
		chart.Datasets = append(chart.Datasets, seriesDataset(kind, category, agg.Series[category], Color(i)))
	}

	return chart, p.seriesTable(agg)
}

func seriesDataset(kind domain.ChartKind, label string, data []int, color string) domain.Dataset {
	ds := domain.Dataset{
		Label:       label,
		Data:        nonNilInts(data),
		BorderColor: color,
	}

	switch kind {
	case domain.ChartBar, domain.ChartHorizontalBar:
		ds.BackgroundColors = []string{color}
	case domain.ChartStackedArea:
		ds.Fill = true
		ds.BackgroundColors = []string{Tint(color, areaTintAlpha)}
	case domain.ChartLine, domain.ChartPie:
		ds.Fill = false
		ds.Tension = lineTension
	}

	return ds
}

// DistributionView builds a single-dataset pie for one time bucket.
func (p *Presenter) DistributionView(dist domain.Distribution) (*domain.Chart, *domain.Table) {
	colors := make([]string, len(dist.Categories))
	for i := range dist.Categories {
		colors[i] = Color(i)
	}

	chart := &domain.Chart{
		ID:     p.newID(),
		Kind:   domain.ChartPie,
		Title:  fmt.Sprintf(distributionFmt, dist.TimeBucket),
		Labels: nonNil(dist.Categories),
		Datasets: []domain.Dataset{{
			Label:            dist.TimeBucket,
			Data:             nonNilInts(dist.Values),
			BackgroundColors: colors,
		}},
	}

	table := &domain.Table{
		Caption: fmt.Sprintf(distCaptionFmt, dist.TimeBucket),
		Headers: []string{HeaderCategory, AxisCount},
		Rows:    make([][]string, 0, len(dist.Categories)),
	}
	for i, category := range dist.Categories {
		table.Rows = append(table.Rows, []string{category, p.numbers.Format(dist.Values[i])})
	}

	return chart, table
}

func (p *Presenter) seriesTable(agg domain.SeriesAggregation) *domain.Table {
	headers := make([]string, 0, len(agg.TimeBuckets)+1)
	headers = append(headers, HeaderCategory)
	headers = append(headers, agg.TimeBuckets...)

	table := &domain.Table{
		Caption: seriesCaption,
		Headers: headers,
		Rows:    make([][]string, 0, agg.Len()),
	}
	for _, category := range agg.Categories {
		row := make([]string, 0, len(agg.TimeBuckets)+1)
		row = append(row, category)
		for _, v := range agg.Series[category] {
			row = append(row, p.numbers.Format(v))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilInts(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
