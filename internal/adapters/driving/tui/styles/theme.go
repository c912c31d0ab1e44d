// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour set of the TUI. Accents are taken from the
// Tableau palette so that the chrome matches the chart series.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Background lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
	// Track is the unfilled part of a bar.
	Track lipgloss.Color
}

// DefaultTheme returns the dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    "#4e79a7",
		Secondary:  "#76b7b2",
		Foreground: "#CDD6F4",
		Background: "#181825",
		Muted:      "#6C7086",
		Success:    "#59a14f",
		Warning:    "#edc948",
		Error:      "#e15759",
		Border:     "#45475A",
		Track:      "#313244",
	}
}

// Styles are the lipgloss styles shared by views and components.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style
	Track    lipgloss.Style

	// Selected marks the active chip or row.
	Selected lipgloss.Style
	// Label is the fixed-width name column in front of a selector.
	Label lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Border     lipgloss.Style
}

// labelWidth fits the longest selector name ("Yrkesgruppe") plus padding.
const labelWidth = 14

// NewStyles creates styles from a theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	rounded := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	return &Styles{
		theme: theme,

		Title:    fg(theme.Primary).Bold(true),
		Subtitle: fg(theme.Secondary).Bold(true),
		Normal:   fg(theme.Foreground),
		Muted:    fg(theme.Muted),
		Help:     fg(theme.Muted),
		Track:    fg(theme.Track),

		Selected: fg(theme.Foreground).Background(theme.Primary).Bold(true).Padding(0, 1),
		Label:    fg(theme.Muted).Width(labelWidth),

		Error:   fg(theme.Error).Bold(true),
		Success: fg(theme.Success),
		Warning: fg(theme.Warning),

		InputField: rounded.Padding(0, 1),
		StatusBar:  fg(theme.Muted).Background(theme.Background).Padding(0, 1),
		Border:     rounded,
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Chip renders one option of a chip row, highlighted when active.
func (s *Styles) Chip(text string, active bool) string {
	if active {
		return s.Selected.Render(text)
	}
	return s.Muted.Padding(0, 1).Render(text)
}

// Selector renders a labelled stepper such as "År  ‹ 2021 ›".
func (s *Styles) Selector(name, value string) string {
	return s.Label.Render(name) + s.Normal.Render("‹ "+value+" ›")
}
