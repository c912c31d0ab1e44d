package dashboard

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
)

// fakeController records calls and returns a fixed state.
type fakeController struct {
	state    domain.ViewState
	loadErr  error
	setErr   error
	kinds    []domain.ChartKind
	category []string
	years    []string
	loads    int
}

func (f *fakeController) Load(context.Context) error {
	f.loads++
	return f.loadErr
}

func (f *fakeController) SetChartKind(kind domain.ChartKind) (domain.ViewState, error) {
	f.kinds = append(f.kinds, kind)
	f.state.Selection.Kind = kind
	return f.state, f.setErr
}

func (f *fakeController) SetCategory(c string) (domain.ViewState, error) {
	f.category = append(f.category, c)
	f.state.Selection.Category = c
	return f.state, f.setErr
}

func (f *fakeController) SetYear(y string) (domain.ViewState, error) {
	f.years = append(f.years, y)
	f.state.Selection.Year = y
	return f.state, f.setErr
}

func (f *fakeController) SetSelection(sel domain.Selection) (domain.ViewState, error) {
	f.state.Selection = sel
	return f.state, f.setErr
}

func (f *fakeController) State() domain.ViewState { return f.state }

func (f *fakeController) Compute(domain.Selection) (domain.ViewState, error) { return f.state, nil }

// noFrames never has a frame, so the view reads the controller.
type noFrames struct{}

func (noFrames) Current() (domain.ViewState, bool) { return domain.ViewState{}, false }

func readyState() domain.ViewState {
	return domain.ViewState{
		Status:                  domain.StatusReady,
		Selection:               domain.DefaultSelection(),
		Categories:              []string{"Ingeniører", "Ledere"},
		Years:                   []string{"2020", "2021"},
		CategorySelectorVisible: true,
		RecordCount:             3,
		Chart: &domain.Chart{
			Kind:     domain.ChartLine,
			Title:    "Arbeidssøkere etter yrkesgruppe",
			Labels:   []string{"2020", "2021"},
			Datasets: []domain.Dataset{{Label: "Ledere", Data: []int{100, 150}, BorderColor: "#4e79a7"}},
		},
		Table: &domain.Table{
			Caption: "Antall arbeidssøkere per yrkesgruppe og år",
			Headers: []string{"Yrkesgruppe", "2020", "2021"},
			Rows:    [][]string{{"Ledere", "100", "150"}},
		},
	}
}

func newDashboard(c *fakeController) *View {
	v := NewView(nil, nil, c, noFrames{}, nil)
	v.SetDimensions(100, 40)
	return v
}

func TestNewView_Defaults(t *testing.T) {
	v := NewView(nil, nil, &fakeController{}, noFrames{}, nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.NotNil(t, v.keymap)
	assert.True(t, v.ShowTable())
	assert.Equal(t, "Initialising...", v.View())
}

func TestView_Load(t *testing.T) {
	c := &fakeController{state: readyState()}
	v := newDashboard(c)

	msg := v.Load(context.Background())()

	loaded, ok := msg.(messages.ViewLoaded)
	require.True(t, ok)
	assert.Equal(t, 1, c.loads)
	assert.NoError(t, loaded.Err)
	assert.Equal(t, domain.StatusReady, loaded.State.Status)
}

func TestView_Load_Error(t *testing.T) {
	c := &fakeController{state: domain.ViewState{Status: domain.StatusError}, loadErr: domain.ErrTransport}
	v := newDashboard(c)

	loaded := v.Load(context.Background())().(messages.ViewLoaded)
	v.Update(loaded)

	assert.ErrorIs(t, loaded.Err, domain.ErrTransport)
	assert.Contains(t, v.View(), domain.LoadErrorMessage)
	assert.Equal(t, domain.StatusError, v.Status().Status())
}

func TestView_RendersReadyState(t *testing.T) {
	v := newDashboard(&fakeController{state: readyState()})
	v.Update(messages.ViewLoaded{State: readyState()})

	out := v.View()
	assert.Contains(t, out, "Diagramtype")
	assert.Contains(t, out, "‹ Alle yrkesgrupper ›")
	assert.Contains(t, out, "Antall arbeidssøkere per yrkesgruppe og år")
	assert.Contains(t, out, "150")
	assert.Contains(t, out, "3 rader")
}

func TestView_ToggleTableHidesCaption(t *testing.T) {
	v := newDashboard(&fakeController{state: readyState()})
	v.Update(messages.ViewLoaded{State: readyState()})

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})

	assert.False(t, v.ShowTable())
	assert.NotContains(t, v.View(), "Antall arbeidssøkere per yrkesgruppe og år")
}

func TestView_KindKeys(t *testing.T) {
	c := &fakeController{state: readyState()}
	v := newDashboard(c)

	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})

	assert.Equal(t, []domain.ChartKind{domain.ChartBar, domain.ChartPie, domain.ChartHorizontalBar}, c.kinds)
}

func TestView_FilterKeys_Series(t *testing.T) {
	c := &fakeController{state: readyState()}
	v := newDashboard(c)

	v.Update(tea.KeyMsg{Type: tea.KeyLeft})

	assert.Equal(t, []string{"Ledere"}, c.category)
	assert.Empty(t, c.years)
}

func TestView_FilterKeys_Distribution(t *testing.T) {
	state := readyState()
	state.Selection = domain.Selection{Kind: domain.ChartPie, Category: domain.CategoryAll, Year: "2020"}
	state.CategorySelectorVisible = false
	state.YearSelectorVisible = true
	c := &fakeController{state: state}
	v := newDashboard(c)

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})

	assert.Equal(t, []string{"2021"}, c.years)
	assert.Empty(t, c.category)
}

func TestView_SelectorsIgnoredUnlessReady(t *testing.T) {
	for _, status := range []domain.ViewStatus{domain.StatusIdle, domain.StatusLoading, domain.StatusError} {
		t.Run(string(status), func(t *testing.T) {
			c := &fakeController{state: domain.ViewState{Status: status}}
			v := newDashboard(c)

			v.Update(tea.KeyMsg{Type: tea.KeyTab})
			v.Update(tea.KeyMsg{Type: tea.KeyRight})

			assert.Empty(t, c.kinds)
			assert.Empty(t, c.category)
		})
	}
}

func TestView_SetterErrorShownInStatus(t *testing.T) {
	c := &fakeController{state: readyState(), setErr: errors.New("render: boom")}
	v := newDashboard(c)

	v.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, "render: boom", v.Status().Message())
}

func TestView_ReloadRequestsLoad(t *testing.T) {
	v := newDashboard(&fakeController{state: readyState()})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	require.NotNil(t, cmd)
	assert.IsType(t, messages.LoadRequested{}, cmd())
}

func TestStep(t *testing.T) {
	opts := []string{"a", "b", "c"}

	assert.Equal(t, "b", step(opts, "a", 1))
	assert.Equal(t, "a", step(opts, "c", 1))
	assert.Equal(t, "c", step(opts, "a", -1))
	assert.Equal(t, "a", step(opts, "missing", 1))
}

func TestStepKind(t *testing.T) {
	assert.Equal(t, domain.ChartBar, stepKind(domain.ChartLine, 1))
	assert.Equal(t, domain.ChartLine, stepKind(domain.ChartPie, 1))
	assert.Equal(t, domain.ChartPie, stepKind(domain.ChartLine, -1))
	assert.Equal(t, domain.ChartLine, stepKind("unknown", 1))
}
