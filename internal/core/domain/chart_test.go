package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartKind_IsValid(t *testing.T) {
	for _, k := range AllChartKinds() {
		assert.True(t, k.IsValid(), "kind %s should be valid", k)
	}
	assert.False(t, ChartKind("radar").IsValid())
	assert.False(t, ChartKind("").IsValid())
}

func TestAllChartKinds_Order(t *testing.T) {
	assert.Equal(t, []ChartKind{
		ChartLine, ChartBar, ChartStackedArea, ChartHorizontalBar, ChartPie,
	}, AllChartKinds())
}

func TestChartKind_Mode(t *testing.T) {
	tests := []struct {
		kind     ChartKind
		expected ViewMode
	}{
		{ChartLine, ModeSeries},
		{ChartBar, ModeSeries},
		{ChartStackedArea, ModeSeries},
		{ChartHorizontalBar, ModeSeries},
		{ChartPie, ModeDistribution},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.Mode())
		})
	}
}

func TestParseChartKind(t *testing.T) {
	kind, err := ParseChartKind("stacked_area")
	require.NoError(t, err)
	assert.Equal(t, ChartStackedArea, kind)

	_, err = ParseChartKind("donut")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestChartKind_Description(t *testing.T) {
	for _, k := range AllChartKinds() {
		assert.NotEqual(t, "Ukjent", k.Description())
	}
	assert.Equal(t, "Ukjent", ChartKind("x").Description())
}

func TestViewMode_String(t *testing.T) {
	assert.Equal(t, "series", ModeSeries.String())
	assert.Equal(t, "distribution", ModeDistribution.String())
	assert.Equal(t, "unknown", ViewMode(42).String())
}
