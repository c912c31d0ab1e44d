package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/views/dashboard"
	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/tui/views/settings"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	dashboardView *dashboard.View
	settingsView  *settings.View

	// currentView tracks which screen is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		dashboardView: dashboard.NewView(s, km, ports.View, ports.Frames, ports.FormatNumber),
		settingsView:  settings.NewView(s, km, ports.Settings),
		currentView:   messages.ViewDashboard,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init implements tea.Model. It starts the dataset load.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("arbeidssokere"),
		a.dashboardView.Load(a.ctx),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.LoadRequested:
		return a, a.dashboardView.Load(a.ctx)

	case messages.ViewLoaded:
		a.err = msg.Err
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case messages.ViewUpdated:
		a.err = msg.Err
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewSettings {
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		}
		return a, nil

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit with ctrl+c
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewSettings:
		if !a.settingsView.Editing() && key.Matches(msg, a.keymap.Quit) {
			return a, tea.Quit
		}
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		if key.Matches(msg, a.keymap.Back, a.keymap.Help) {
			a.currentView = messages.ViewDashboard
			return a, nil
		}
		if key.Matches(msg, a.keymap.Quit) {
			return a, tea.Quit
		}
		return a, nil

	case messages.ViewDashboard:
		switch {
		case key.Matches(msg, a.keymap.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keymap.Help):
			a.currentView = messages.ViewHelp
			return a, nil
		case key.Matches(msg, a.keymap.Settings):
			return a, func() tea.Msg { return messages.ViewChanged{View: messages.ViewSettings} }
		}
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewDashboard:
		return a.dashboardView.View()
	default:
		return a.dashboardView.View()
	}
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Hjelp"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-12s %s\n", h.Key, h.Desc)
		}
		b.WriteByte('\n')
	}
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.dashboardView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
