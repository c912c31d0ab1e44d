// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
)

// LoadRequested asks the app to (re)load the dataset.
type LoadRequested struct{}

// ViewLoaded carries the outcome of a dataset load.
type ViewLoaded struct {
	State domain.ViewState
	Err   error
}

// ViewUpdated carries the view state after a selection change.
type ViewUpdated struct {
	State domain.ViewState
	Err   error
}

// ViewChanged is sent when navigating between screens.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which screen is active.
type ViewType int

const (
	// ViewDashboard shows the chart, selectors and table.
	ViewDashboard ViewType = iota
	// ViewSettings is the settings editor.
	ViewSettings
	// ViewHelp is the keybindings screen.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SettingsLoaded carries every settings key with its current value.
type SettingsLoaded struct {
	Keys   []string
	Values map[string]string
	Err    error
}

// SettingsSaved signals a setting was written.
type SettingsSaved struct {
	Key string
	Err error
}
