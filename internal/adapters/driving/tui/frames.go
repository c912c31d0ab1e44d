package tui

import (
	"sync"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driven"
)

// Ensure Frames implements the renderer port.
var _ driven.Renderer = (*Frames)(nil)

// Frames is the terminal draw surface. It holds the one frame currently
// on screen; Replace swaps it and Destroy clears it.
//
// The controller may call Replace from the load goroutine while the
// bubbletea loop reads, so access is locked.
type Frames struct {
	mu        sync.RWMutex
	current   *domain.ViewState
	replaced  int
	destroyed int
}

// NewFrames creates an empty frame store.
func NewFrames() *Frames {
	return &Frames{}
}

// Replace drops the current frame and stores state.
func (f *Frames) Replace(state domain.ViewState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current != nil {
		f.destroyed++
	}
	f.current = &state
	f.replaced++
	return nil
}

// Destroy clears the current frame.
func (f *Frames) Destroy() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current != nil {
		f.destroyed++
		f.current = nil
	}
}

// Current returns the frame on screen.
func (f *Frames) Current() (domain.ViewState, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.current == nil {
		return domain.ViewState{}, false
	}
	return *f.current, true
}

// ChartID returns the ID of the chart on screen, or "".
func (f *Frames) ChartID() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.current == nil || f.current.Chart == nil {
		return ""
	}
	return f.current.Chart.ID
}

// Live reports how many frames are on screen: 0 or 1.
func (f *Frames) Live() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.replaced - f.destroyed
}
