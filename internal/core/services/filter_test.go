package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
)

func rec(category, bucket string, count int) domain.Record {
	return domain.Record{Category: category, TimeBucket: bucket, Count: count}
}

func sampleRecords() []domain.Record {
	return []domain.Record{
		rec("Ledere", "2020", 100),
		rec("Ingeniører", "2020", 50),
		rec("Ledere", "2021", 150),
	}
}

func TestFilterByCategory_All(t *testing.T) {
	records := sampleRecords()

	filtered := FilterByCategory(records, domain.CategoryAll)

	assert.Equal(t, records, filtered)
	assert.Same(t, &records[0], &filtered[0])
}

func TestFilterByCategory_Match(t *testing.T) {
	filtered := FilterByCategory(sampleRecords(), "Ledere")

	assert.Len(t, filtered, 2)
	for _, r := range filtered {
		assert.Equal(t, "Ledere", r.Category)
	}
}

func TestFilterByCategory_Unknown(t *testing.T) {
	filtered := FilterByCategory(sampleRecords(), "Finnes ikke")

	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestFilterByCategory_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := append([]domain.Record(nil), records...)

	_ = FilterByCategory(records, "Ingeniører")

	assert.Equal(t, before, records)
}

func TestFilterByCategory_Idempotent(t *testing.T) {
	once := FilterByCategory(sampleRecords(), "Ledere")
	twice := FilterByCategory(once, "Ledere")

	assert.Equal(t, once, twice)
}

func TestUniqueCategories(t *testing.T) {
	records := []domain.Record{
		rec("Salg", "2020", 1),
		rec("Bygg", "2020", 1),
		rec("Salg", "2021", 1),
		rec("Akademiske yrker", "2021", 1),
	}

	assert.Equal(t, []string{"Akademiske yrker", "Bygg", "Salg"}, UniqueCategories(records))
}

func TestUniqueCategories_Empty(t *testing.T) {
	categories := UniqueCategories(nil)

	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestUniqueTimeBuckets(t *testing.T) {
	records := []domain.Record{
		rec("A", "2021", 1),
		rec("A", "999", 1),
		rec("B", "2019", 1),
		rec("B", "2021", 1),
	}

	assert.Equal(t, []string{"999", "2019", "2021"}, UniqueTimeBuckets(records))
}

func TestLatestTimeBucket(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.Record
		want    string
	}{
		{name: "empty", records: nil, want: ""},
		{name: "single", records: []domain.Record{rec("A", "2020", 1)}, want: "2020"},
		{name: "unordered", records: sampleRecords(), want: "2021"},
		{
			name:    "mixed width",
			records: []domain.Record{rec("A", "10", 1), rec("A", "9", 1)},
			want:    "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LatestTimeBucket(tt.records))
		})
	}
}
