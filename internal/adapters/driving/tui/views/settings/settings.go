// Package settings provides the settings editor view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driving"
)

// ErrNoSettingsService is reported when the view has no service to talk to.
var ErrNoSettingsService = errors.New("settings service not available")

// View is the settings editor.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.SettingsService

	keys   []string
	values map[string]string
	err    error
	notice string

	selected int
	editing  bool
	input    textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	input := textinput.New()
	input.CharLimit = 512
	input.Width = 60

	return &View{
		styles:  s,
		keymap:  km,
		service: service,
		values:  map[string]string{},
		input:   input,
		width:   80,
		height:  24,
	}
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

func (v *View) loadSettings() tea.Cmd {
	service := v.service
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		values, err := service.Values()
		return messages.SettingsLoaded{Keys: service.Keys(), Values: values, Err: err}
	}
}

func (v *View) saveSetting(k, value string) tea.Cmd {
	service := v.service
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsSaved{Key: k, Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Key: k, Err: service.Set(k, value)}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		v.err = msg.Err
		if msg.Err == nil {
			v.keys = msg.Keys
			v.values = msg.Values
			v.selected = min(v.selected, max(0, len(v.keys)-1))
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.notice = ""
			return v, nil
		}
		v.err = nil
		v.notice = fmt.Sprintf("Lagret %s. Endringen brukes ved neste oppstart.", msg.Key)
		return v, v.loadSettings()

	case tea.KeyMsg:
		if v.editing {
			return v.updateEditing(msg)
		}
		return v.updateBrowsing(msg)
	}
	return v, nil
}

func (v *View) updateBrowsing(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case key.Matches(msg, v.keymap.Down):
		if v.selected < len(v.keys)-1 {
			v.selected++
		}
	case key.Matches(msg, v.keymap.Select):
		if len(v.keys) == 0 {
			return v, nil
		}
		v.editing = true
		v.notice = ""
		v.input.SetValue(v.values[v.keys[v.selected]])
		v.input.CursorEnd()
		return v, v.input.Focus()
	case key.Matches(msg, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewDashboard} }
	}
	return v, nil
}

func (v *View) updateEditing(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Select):
		v.editing = false
		v.input.Blur()
		return v, v.saveSetting(v.keys[v.selected], v.input.Value())
	case key.Matches(msg, v.keymap.Back):
		v.editing = false
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View renders the settings editor.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Innstillinger"))
	b.WriteString("\n\n")

	width := 0
	for _, k := range v.keys {
		width = max(width, len(k))
	}

	for i, k := range v.keys {
		cursor := "  "
		line := fmt.Sprintf("%-*s  %s", width, k, v.values[k])
		if i == v.selected {
			cursor = "> "
			if v.editing {
				line = fmt.Sprintf("%-*s  ", width, k) + v.styles.InputField.Render(v.input.View())
			} else {
				line = v.styles.Selected.Render(line)
			}
		} else {
			line = v.styles.Normal.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteByte('\n')
	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n\n")
	case v.notice != "":
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n\n")
	}

	help := "[j/k] Navigate  [Enter] Edit  [Esc] Back"
	if v.editing {
		help = "[Enter] Save  [Esc] Cancel"
	}
	b.WriteString(v.styles.Help.Render(help))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.Width = max(20, width-40)
}

// Reset leaves edit mode and clears notices.
func (v *View) Reset() {
	v.editing = false
	v.input.Blur()
	v.notice = ""
	v.err = nil
}

// Editing reports whether a value is being edited.
func (v *View) Editing() bool {
	return v.editing
}

// Selected returns the index of the highlighted key.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last load or save error.
func (v *View) Err() error {
	return v.err
}
