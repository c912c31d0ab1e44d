// Package dashboard provides the chart, selector and table screen.
package dashboard

import (
	"context"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/components/textchart"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driving"
)

const (
	title              = "Arbeidssøkere etter yrkesgruppe"
	allCategoriesLabel = "Alle yrkesgrupper"
)

// FrameSource exposes the frame currently drawn for the controller.
type FrameSource interface {
	Current() (domain.ViewState, bool)
}

// View is the dashboard screen.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	view   driving.ViewController
	frames FrameSource
	format func(int) string
	status *status.Bar
	body   viewport.Model

	showTable bool
	width     int
	height    int
	ready     bool
}

// NewView creates a dashboard for a controller and its frame source.
func NewView(s *styles.Styles, km *keymap.KeyMap, view driving.ViewController, frames FrameSource, format func(int) string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:    s,
		keymap:    km,
		view:      view,
		frames:    frames,
		format:    format,
		status:    status.NewBar(s, km),
		body:      viewport.New(80, 20),
		showTable: true,
		width:     80,
		height:    24,
	}
}

// Load returns a command that loads the dataset.
func (v *View) Load(ctx context.Context) tea.Cmd {
	view := v.view
	return func() tea.Msg {
		err := view.Load(ctx)
		return messages.ViewLoaded{State: view.State(), Err: err}
	}
}

// Update handles messages for the dashboard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ViewLoaded:
		v.apply(msg.State, nil)
		return v, nil

	case messages.ViewUpdated:
		v.apply(msg.State, msg.Err)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	state := v.state()

	switch {
	case key.Matches(msg, v.keymap.Up, v.keymap.Down):
		var cmd tea.Cmd
		v.body, cmd = v.body.Update(msg)
		return v, cmd

	case key.Matches(msg, v.keymap.ToggleTable):
		v.showTable = !v.showTable
		v.refresh()
		return v, nil
	}

	// Selectors only act on a ready view.
	if state.Status != domain.StatusReady {
		return v, nil
	}

	var (
		next domain.ViewState
		err  error
	)
	switch {
	case key.Matches(msg, v.keymap.NextKind):
		next, err = v.view.SetChartKind(stepKind(state.Selection.Kind, 1))
	case key.Matches(msg, v.keymap.PrevKind):
		next, err = v.view.SetChartKind(stepKind(state.Selection.Kind, -1))
	case key.Matches(msg, v.keymap.JumpKind):
		kinds := domain.AllChartKinds()
		i := int(msg.String()[0] - '1')
		if i < 0 || i >= len(kinds) {
			return v, nil
		}
		next, err = v.view.SetChartKind(kinds[i])
	case key.Matches(msg, v.keymap.NextFilter):
		next, err = v.stepFilter(state, 1)
	case key.Matches(msg, v.keymap.PrevFilter):
		next, err = v.stepFilter(state, -1)
	case key.Matches(msg, v.keymap.Reload):
		return v, func() tea.Msg { return messages.LoadRequested{} }
	default:
		return v, nil
	}

	v.apply(next, err)
	return v, nil
}

// stepFilter moves the visible selector by delta, wrapping at the ends.
func (v *View) stepFilter(state domain.ViewState, delta int) (domain.ViewState, error) {
	if state.YearSelectorVisible {
		if len(state.Years) == 0 {
			return state, nil
		}
		return v.view.SetYear(step(state.Years, state.Selection.Year, delta))
	}
	options := append([]string{domain.CategoryAll}, state.Categories...)
	return v.view.SetCategory(step(options, state.Selection.Category, delta))
}

func step(options []string, current string, delta int) string {
	i := slices.Index(options, current)
	if i < 0 {
		return options[0]
	}
	n := len(options)
	return options[((i+delta)%n+n)%n]
}

func stepKind(current domain.ChartKind, delta int) domain.ChartKind {
	kinds := domain.AllChartKinds()
	i := slices.Index(kinds, current)
	if i < 0 {
		return kinds[0]
	}
	n := len(kinds)
	return kinds[((i+delta)%n+n)%n]
}

func (v *View) apply(state domain.ViewState, err error) {
	if frame, ok := v.frames.Current(); ok {
		state = frame
	}
	v.status.SetState(state)
	if err != nil {
		v.status.SetMessage(err.Error())
	}
	v.refresh()
}

// state returns the frame on screen, falling back to the controller.
func (v *View) state() domain.ViewState {
	if frame, ok := v.frames.Current(); ok {
		return frame
	}
	return v.view.State()
}

// View renders the dashboard.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		v.header(v.state()),
		v.body.View(),
		v.status.View(),
	)
}

func (v *View) header(state domain.ViewState) string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	chips := make([]string, 0, len(domain.AllChartKinds()))
	for _, k := range domain.AllChartKinds() {
		chips = append(chips, v.styles.Chip(k.Description(), k == state.Selection.Kind))
	}
	b.WriteString(v.styles.Label.Render("Diagramtype") + strings.Join(chips, " "))
	b.WriteByte('\n')

	switch {
	case state.Status != domain.StatusReady:
	case state.CategorySelectorVisible:
		label := state.Selection.Category
		if label == domain.CategoryAll {
			label = allCategoriesLabel
		}
		b.WriteString(v.styles.Selector("Yrkesgruppe", label))
		b.WriteByte('\n')
	case state.YearSelectorVisible:
		b.WriteString(v.styles.Selector("År", state.Selection.Year))
		b.WriteByte('\n')
	}
	return b.String()
}

func (v *View) content(state domain.ViewState) string {
	switch state.Status {
	case domain.StatusError:
		return v.styles.Error.Render(domain.LoadErrorMessage)
	case domain.StatusLoading:
		return v.styles.Muted.Render(state.Message())
	case domain.StatusIdle:
		return ""
	case domain.StatusReady:
	}

	var b strings.Builder
	if state.Chart != nil {
		b.WriteString(v.styles.Subtitle.Render(state.Chart.Title))
		b.WriteString("\n\n")
	}
	b.WriteString(textchart.Render(state.Chart, v.width, v.format))

	if v.showTable && state.Table != nil && len(state.Table.Rows) > 0 {
		b.WriteString("\n\n")
		b.WriteString(v.renderTable(state.Table))
	}
	return b.String()
}

func (v *View) renderTable(t *domain.Table) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(v.styles.Theme().Border)).
		Headers(t.Headers...).
		Rows(t.Rows...)
	return v.styles.Muted.Render(t.Caption) + "\n" + tbl.String()
}

func (v *View) refresh() {
	state := v.state()
	headerHeight := lipgloss.Height(v.header(state))
	v.body.Width = v.width
	v.body.Height = max(1, v.height-headerHeight-1)
	v.body.SetContent(v.content(state))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.status.SetWidth(width)
	v.refresh()
}

// ShowTable reports whether the table is shown under the chart.
func (v *View) ShowTable() bool {
	return v.showTable
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.status
}
