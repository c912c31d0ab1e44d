package services

import (
	"slices"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
)

// AggregateByCategoryAndTime builds the dense category x time-bucket
// matrix. Time buckets are sorted with domain.CompareTimeBuckets,
// categories keep encounter order, and pairs without records are 0.
// An empty input yields empty, non-nil fields.
func AggregateByCategoryAndTime(records []domain.Record) domain.SeriesAggregation {
	buckets := UniqueTimeBuckets(records)

	index := make(map[string]int, len(buckets))
	for i, b := range buckets {
		index[b] = i
	}

	categories := make([]string, 0)
	series := make(map[string][]int)
	for _, r := range records {
		values, ok := series[r.Category]
		if !ok {
			values = make([]int, len(buckets))
			series[r.Category] = values
			categories = append(categories, r.Category)
		}
		values[index[r.TimeBucket]] += r.Count
	}

	return domain.SeriesAggregation{
		TimeBuckets: buckets,
		Categories:  categories,
		Series:      series,
	}
}

// AggregateForTimeBucket sums counts per category for records whose time
// bucket equals bucket exactly. Categories are sorted ascending with
// values aligned to them.
func AggregateForTimeBucket(records []domain.Record, bucket string) domain.Distribution {
	totals := make(map[string]int)
	for _, r := range records {
		if r.TimeBucket != bucket {
			continue
		}
		totals[r.Category] += r.Count
	}

	categories := make([]string, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	slices.Sort(categories)

	values := make([]int, len(categories))
	for i, c := range categories {
		values[i] = totals[c]
	}

	return domain.Distribution{
		TimeBucket: bucket,
		Categories: categories,
		Values:     values,
	}
}
