package services

import (
	"slices"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
)

// FilterByCategory restricts records to one category.
// domain.CategoryAll returns the input slice itself. Unknown categories
// yield an empty, non-nil slice. The input is never modified.
func FilterByCategory(records []domain.Record, category string) []domain.Record {
	if category == domain.CategoryAll {
		return records
	}

	filtered := make([]domain.Record, 0)
	for _, r := range records {
		if r.Category == category {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// UniqueCategories returns every category present, sorted ascending.
func UniqueCategories(records []domain.Record) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		categories = append(categories, r.Category)
	}
	slices.Sort(categories)
	return categories
}

// UniqueTimeBuckets returns every time bucket present in bucket order.
func UniqueTimeBuckets(records []domain.Record) []string {
	seen := make(map[string]struct{})
	buckets := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.TimeBucket]; ok {
			continue
		}
		seen[r.TimeBucket] = struct{}{}
		buckets = append(buckets, r.TimeBucket)
	}
	slices.SortFunc(buckets, domain.CompareTimeBuckets)
	return buckets
}

// LatestTimeBucket returns the most recent bucket, or "" for no records.
func LatestTimeBucket(records []domain.Record) string {
	buckets := UniqueTimeBuckets(records)
	if len(buckets) == 0 {
		return ""
	}
	return buckets[len(buckets)-1]
}
