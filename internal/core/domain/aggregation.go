package domain

import (
	"cmp"
	"strconv"
)

// SeriesAggregation is the dense category x time-bucket matrix used by
// the series-over-time chart kinds.
type SeriesAggregation struct {
	// TimeBuckets holds every observed bucket, unique and ascending.
	TimeBuckets []string

	// Categories holds every observed category, unique, in encounter order.
	Categories []string

	// Series maps each category to one count per entry of TimeBuckets.
	// Buckets where the category has no records hold 0.
	Series map[string][]int
}

// Len returns the number of categories in the aggregation.
func (a SeriesAggregation) Len() int {
	return len(a.Categories)
}

// IsEmpty returns true if the aggregation holds no data.
func (a SeriesAggregation) IsEmpty() bool {
	return len(a.TimeBuckets) == 0
}

// Distribution is the per-category breakdown for a single time bucket.
type Distribution struct {
	// TimeBucket is the period the values belong to.
	TimeBucket string

	// Categories holds matching categories, unique and ascending.
	Categories []string

	// Values holds one total per entry of Categories.
	Values []int
}

// IsEmpty returns true if no records matched the time bucket.
func (d Distribution) IsEmpty() bool {
	return len(d.Categories) == 0
}

// Total returns the sum of all values.
func (d Distribution) Total() int {
	total := 0
	for _, v := range d.Values {
		total += v
	}
	return total
}

// CompareTimeBuckets orders two bucket labels.
// Integer labels sort before any other label and compare numerically,
// so "999" sorts before "1000". Other labels compare as strings, as do
// integers of equal value ("07" and "7").
func CompareTimeBuckets(a, b string) int {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		if c := cmp.Compare(ai, bi); c != 0 {
			return c
		}
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}
	return cmp.Compare(a, b)
}
