// Package tui provides an interactive terminal user interface for
// arbeidssokere. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driving"
)

// Ports aggregates the driving ports and surfaces the TUI needs.
// This provides a single injection point for dependency injection.
type Ports struct {
	// View owns the dataset and the current selection.
	View driving.ViewController

	// Frames is the renderer View draws into.
	Frames *Frames

	// Settings manages application settings. Optional.
	Settings driving.SettingsService

	// FormatNumber renders counts for the configured locale. Optional.
	FormatNumber func(int) string
}

// NewPorts creates a Ports aggregate for a controller and its frames.
func NewPorts(view driving.ViewController, frames *Frames) *Ports {
	return &Ports{
		View:   view,
		Frames: frames,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.View == nil {
		return ErrMissingViewController
	}
	if p.Frames == nil {
		return ErrMissingFrames
	}
	return nil
}
