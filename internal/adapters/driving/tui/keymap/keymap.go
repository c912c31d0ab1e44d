// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// NextKind and PrevKind cycle through chart kinds.
	NextKind key.Binding
	PrevKind key.Binding

	// JumpKind selects a chart kind by its position.
	JumpKind key.Binding

	// NextFilter and PrevFilter cycle the category or year selector,
	// whichever is visible.
	NextFilter key.Binding
	PrevFilter key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Reload fetches the dataset again.
	Reload key.Binding

	// Settings opens the settings editor.
	Settings key.Binding

	// ToggleTable shows or hides the data table.
	ToggleTable key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NextKind: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab", "next chart"),
		),
		PrevKind: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("shift+tab", "previous chart"),
		),
		JumpKind: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "chart kind"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous filter"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		ToggleTable: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "table"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextKind, k.NextFilter, k.Help, k.Quit}
}

// ErrorHelp returns the bindings that still work in the error state.
func (k *KeyMap) ErrorHelp() []key.Binding {
	return []key.Binding{k.Settings, k.Help, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextKind, k.PrevKind, k.JumpKind},
		{k.NextFilter, k.PrevFilter, k.ToggleTable},
		{k.Up, k.Down, k.Select, k.Back},
		{k.Reload, k.Settings, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
