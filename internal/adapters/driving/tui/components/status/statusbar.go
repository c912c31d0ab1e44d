// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
)

// Bar displays the view status and keybinding hints.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	status      domain.ViewStatus
	message     string
	recordCount int
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		status: domain.StatusIdle,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.status {
	case domain.StatusLoading:
		return s.styles.Muted.Render(s.messageOr("Laster data..."))
	case domain.StatusError:
		return s.styles.Error.Render(s.messageOr(domain.LoadErrorMessage))
	case domain.StatusReady:
		if s.message != "" {
			return s.styles.Warning.Render(s.message)
		}
		return s.styles.Normal.Render(fmt.Sprintf("%d rader", s.recordCount))
	case domain.StatusIdle:
	}
	return s.styles.Muted.Render(s.messageOr("Klar"))
}

func (s *Bar) messageOr(fallback string) string {
	if s.message != "" {
		return s.message
	}
	return fallback
}

func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	if s.status == domain.StatusError {
		bindings = s.keymap.ErrorHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if b.Enabled() {
			hints = append(hints, hint(b))
		}
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func hint(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("%s: %s", h.Key, h.Desc)
}

// SetState copies status, message and record count from a view state.
func (s *Bar) SetState(state domain.ViewState) {
	s.status = state.Status
	s.message = state.Message()
	s.recordCount = state.RecordCount
}

// Status returns the current view status.
func (s *Bar) Status() domain.ViewStatus {
	return s.status
}

// SetMessage overrides the status text until the next SetState.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// RecordCount returns the number of loaded records shown.
func (s *Bar) RecordCount() int {
	return s.recordCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.status = domain.StatusIdle
	s.message = ""
	s.recordCount = 0
}
