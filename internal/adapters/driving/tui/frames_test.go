package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
)

func TestFrames_Empty(t *testing.T) {
	f := NewFrames()

	_, ok := f.Current()
	assert.False(t, ok)
	assert.Equal(t, "", f.ChartID())
	assert.Equal(t, 0, f.Live())
}

func TestFrames_ReplaceKeepsOneLiveFrame(t *testing.T) {
	f := NewFrames()

	require.NoError(t, f.Replace(domain.ViewState{Status: domain.StatusReady, Chart: &domain.Chart{ID: "a"}}))
	require.NoError(t, f.Replace(domain.ViewState{Status: domain.StatusReady, Chart: &domain.Chart{ID: "b"}}))

	assert.Equal(t, 1, f.Live())
	assert.Equal(t, "b", f.ChartID())

	state, ok := f.Current()
	require.True(t, ok)
	assert.Equal(t, domain.StatusReady, state.Status)
}

func TestFrames_Destroy(t *testing.T) {
	f := NewFrames()
	require.NoError(t, f.Replace(domain.ViewState{Status: domain.StatusReady}))

	f.Destroy()
	f.Destroy()

	assert.Equal(t, 0, f.Live())
	_, ok := f.Current()
	assert.False(t, ok)
}

func TestFrames_ErrorFrameHasNoChart(t *testing.T) {
	f := NewFrames()
	require.NoError(t, f.Replace(domain.ViewState{Status: domain.StatusError}))

	assert.Equal(t, "", f.ChartID())
	assert.Equal(t, 1, f.Live())
}
