package driven

import "github.com/custodia-labs/arbeidssokere/internal/core/domain"

// Presenter maps aggregation results to chart and table structures.
// Both outputs of one call are built from the same aggregation so the
// chart and its table never disagree.
type Presenter interface {
	// SeriesView builds the chart and table for a series-over-time kind.
	SeriesView(kind domain.ChartKind, agg domain.SeriesAggregation) (*domain.Chart, *domain.Table)

	// DistributionView builds the chart and table for one period.
	DistributionView(dist domain.Distribution) (*domain.Chart, *domain.Table)
}
