package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/views/dashboard"
	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driving"
	"github.com/custodia-labs/postador-cli/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// Update is the event loop the dashboard controllers run on: the runtime
// delivers every controller callback as a messages.Task.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// dashboard drives the scheduling page.
	dashboard driving.Dashboard

	// dashboardView is the scheduling page.
	dashboardView *dashboard.View

	// settingsView is the settings configuration view component.
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool

	// stopped is set once the dashboard was torn down.
	stopped bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports. Dashboard
// callbacks are scheduled on rt, which must deliver them to Update.
func NewApp(ports *Ports, rt driven.Runtime, cfg domain.DashboardSettings) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if rt == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingRuntime)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	dashboardView := dashboard.NewView(s, km, loc)

	d, err := ports.Dashboard.NewDashboard(dashboardView.Surfaces(), rt)
	if err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	dashboardView.SetDashboard(d)

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		dashboard:     d,
		dashboardView: dashboardView,
		settingsView:  settings.NewView(s, ports.Settings),
		currentView:   messages.ViewDashboard,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("postador - Video Scheduler"),
		a.dashboardView.Init(),
		func() tea.Msg { return messages.Task{Run: a.dashboard.Start} },
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case messages.Task:
		if !a.stopped {
			msg.Run()
		}
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.dashboardView.SetDimensions(msg.Width, msg.Height)
		a.settingsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case spinner.TickMsg:
		// The spinner keeps ticking whichever view is shown.
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewSettings {
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		}
		return a, nil

	case messages.SettingsLoaded:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		if msg.Err == nil {
			a.reloadSettings()
		}
		return a, cmd

	case messages.ConfigChanged:
		a.reconfigure(msg.Settings)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, a.quit()
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Global quit with ctrl+c
	if key.Matches(msg, a.keymap.Quit) {
		return a, a.quit()
	}

	switch a.currentView {
	case messages.ViewDashboard:
		if !a.dashboardView.Alert().Open() {
			switch {
			case key.Matches(msg, a.keymap.Help):
				a.currentView = messages.ViewHelp
				return a, nil
			case key.Matches(msg, a.keymap.Settings) && a.ports.Settings != nil:
				return a, func() tea.Msg { return messages.ViewChanged{View: messages.ViewSettings} }
			}
		}
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		// Esc from help goes back to the dashboard
		if key.Matches(msg, a.keymap.Back) || key.Matches(msg, a.keymap.Help) {
			a.currentView = messages.ViewDashboard
		}
		return a, nil
	}
	return a, nil
}

// reloadSettings applies settings written from the settings view.
func (a *App) reloadSettings() {
	if a.ports.Settings == nil {
		return
	}
	cfg, err := a.ports.Settings.Get()
	if err != nil {
		a.err = err
		return
	}
	a.reconfigure(cfg)
}

// reconfigure applies changed settings to the running page. The API
// endpoint and token are bound at startup and need a restart.
func (a *App) reconfigure(cfg domain.DashboardSettings) {
	loc, err := cfg.Location()
	if err != nil {
		logger.Warn("reconfigure: %v", err)
		return
	}
	a.dashboardView.SetLocation(loc)
	a.dashboard.Reconfigure(cfg)
}

// quit tears the dashboard down before exiting.
func (a *App) quit() tea.Cmd {
	if !a.stopped {
		a.dashboard.Stop()
		a.stopped = true
	}
	return tea.Quit
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.dashboardView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Form:
  tab / shift+tab   Next / previous field
  ←/→               Change privacy
  pgup / pgdown     Scroll the schedule table

Actions:
  ctrl+g            Generate title, description and tags from the summary
  ctrl+s            Schedule the video
  ctrl+o            Authenticate with YouTube (when disconnected)
  ctrl+r            Refresh auth state and schedule
  f2                Settings
  ctrl+c            Quit

[esc] back to dashboard`
}

// TaskRuntime is a runtime whose queued callbacks can be handed to
// another loop.
type TaskRuntime interface {
	driven.Runtime
	Forward(ctx context.Context, deliver func(task func())) error
}

// Run starts the TUI application on rt and blocks until it exits.
func Run(ctx context.Context, ports *Ports, rt TaskRuntime) error {
	cfg := domain.DefaultDashboardSettings()
	if ports != nil && ports.Settings != nil {
		loaded, err := ports.Settings.Get()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		cfg = loaded
	}

	app, err := NewApp(ports, rt, cfg)
	if err != nil {
		return err
	}
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if err := rt.Forward(ctx, func(task func()) {
		p.Send(messages.Task{Run: task})
	}); err != nil {
		return err
	}

	if ports.Settings != nil {
		err := ports.Settings.Watch(ctx, func(cfg domain.DashboardSettings) {
			p.Send(messages.ConfigChanged{Settings: cfg})
		})
		if err != nil {
			logger.Warn("config hot reload disabled: %v", err)
		}
	}

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Dashboard returns the scheduling page view.
func (a *App) Dashboard() *dashboard.View {
	return a.dashboardView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.dashboardView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
