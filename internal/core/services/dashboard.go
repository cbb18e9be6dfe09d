package services

import (
	"errors"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driving"
	"github.com/custodia-labs/postador-cli/internal/logger"
)

// Ensure implementations satisfy the driving ports.
var (
	_ driving.Dashboard        = (*Dashboard)(nil)
	_ driving.DashboardFactory = (*DashboardService)(nil)
)

// Dashboard errors.
var (
	ErrMissingSchedulingAPI = errors.New("services: scheduling API is required")
	ErrMissingRuntime       = errors.New("services: runtime is required")
)

// DashboardService builds dashboards sharing one scheduling API.
type DashboardService struct {
	api      driven.SchedulingAPI
	settings domain.DashboardSettings
}

// NewDashboardService creates a dashboard factory.
func NewDashboardService(api driven.SchedulingAPI, settings domain.DashboardSettings) *DashboardService {
	return &DashboardService{api: api, settings: settings}
}

// NewDashboard wires a dashboard to the given surfaces and loop.
func (s *DashboardService) NewDashboard(surfaces driven.Surfaces, rt driven.Runtime) (driving.Dashboard, error) {
	return NewDashboard(s.api, surfaces, rt, s.settings)
}

// Dashboard is the page lifecycle: it owns the controllers, orders the
// startup and runs the periodic list refresh.
type Dashboard struct {
	rt       driven.Runtime
	surfaces driven.Surfaces
	settings domain.DashboardSettings

	notifier   *Notifier
	auth       *AuthStatusController
	list       *ScheduleListController
	submission *SubmissionController
	assist     *AssistController

	started   bool
	pollTimer driven.Timer
}

// NewDashboard creates a dashboard. Nothing runs until Start.
func NewDashboard(
	api driven.SchedulingAPI,
	surfaces driven.Surfaces,
	rt driven.Runtime,
	settings domain.DashboardSettings,
) (*Dashboard, error) {
	if api == nil {
		return nil, ErrMissingSchedulingAPI
	}
	if rt == nil {
		return nil, ErrMissingRuntime
	}
	if err := surfaces.Validate(); err != nil {
		return nil, err
	}

	loc, err := settings.Location()
	if err != nil {
		return nil, err
	}
	if settings.PollInterval <= 0 {
		settings.PollInterval = domain.DefaultPollInterval
	}

	d := &Dashboard{rt: rt, surfaces: surfaces, settings: settings}
	d.notifier = NewNotifier(rt, surfaces.Notifications, settings.NotificationDuration)
	d.list = NewScheduleListController(rt, api, surfaces.Table, settings.TimeLayout, loc)
	d.list.SetDiscardStale(settings.DiscardStaleResponses)
	d.auth = NewAuthStatusController(rt, api, surfaces, d.notifier, d.list, d.Reinitialize)
	d.submission = NewSubmissionController(rt, api, surfaces, d.notifier, d.list)
	d.assist = NewAssistController(rt, api, surfaces, d.notifier)

	return d, nil
}

// Start runs the initialisation and starts the periodic list refresh
// regardless of the initialisation's outcome.
func (d *Dashboard) Start() {
	if d.started {
		return
	}
	d.started = true

	d.surfaces.AuthTrigger.SetLabel(LabelAuthenticate)
	d.surfaces.SubmitTrigger.SetLabel(LabelSubmit)
	d.surfaces.GenerateTrigger.SetLabel(LabelGenerate)
	// Submission stays locked until the first probe reports Connected.
	d.surfaces.SubmitTrigger.SetEnabled(false)

	d.initialize()
	d.startPolling()
}

// Reinitialize re-runs the initialisation. The refresh timer is kept.
func (d *Dashboard) Reinitialize() {
	d.initialize()
}

func (d *Dashboard) initialize() {
	logger.Debug("initialising dashboard")
	d.auth.Refresh()
}

func (d *Dashboard) startPolling() {
	d.pollTimer = d.rt.Every(d.settings.PollInterval, d.poll)
}

func (d *Dashboard) stopPolling() {
	if d.pollTimer != nil {
		d.pollTimer.Stop()
		d.pollTimer = nil
	}
}

func (d *Dashboard) poll() {
	if !d.started {
		return
	}
	if !d.settings.PollWhileUnauthenticated && d.auth.State() != domain.AuthConnected {
		logger.Debug("skipping list refresh while %s", d.auth.State())
		return
	}
	d.list.Refresh()
}

// Stop stops the refresh timer and the pending notification dismissal.
func (d *Dashboard) Stop() {
	if !d.started {
		return
	}
	d.started = false
	d.stopPolling()
	d.notifier.Stop()
}

// Reconfigure applies changed settings. A changed poll interval restarts
// the timer. The API endpoint and token are fixed for the page's life.
func (d *Dashboard) Reconfigure(settings domain.DashboardSettings) {
	if settings.BaseURL != d.settings.BaseURL || settings.APIToken != d.settings.APIToken {
		logger.Info("api endpoint changes apply after restart")
	}

	d.notifier.SetDuration(settings.NotificationDuration)
	d.list.SetDiscardStale(settings.DiscardStaleResponses)

	loc, err := settings.Location()
	if err != nil {
		logger.Warn("reconfigure: %v", err)
		loc = d.list.location
	}
	d.list.SetDisplay(settings.TimeLayout, loc)

	if settings.PollInterval <= 0 {
		settings.PollInterval = d.settings.PollInterval
	}
	intervalChanged := settings.PollInterval != d.settings.PollInterval
	d.settings = settings

	if d.started && intervalChanged {
		d.stopPolling()
		d.startPolling()
	}
}

// RefreshAuth probes the auth state.
func (d *Dashboard) RefreshAuth() {
	d.auth.Refresh()
}

// RefreshList reloads the schedule table.
func (d *Dashboard) RefreshList() {
	d.list.Refresh()
}

// Authenticate starts the authentication flow.
func (d *Dashboard) Authenticate() error {
	return d.auth.Authenticate()
}

// Submit sends the scheduling form.
func (d *Dashboard) Submit() error {
	return d.submission.Submit()
}

// Generate asks for AI metadata from the form's summary.
func (d *Dashboard) Generate() error {
	return d.assist.Generate(d.surfaces.Form.Summary())
}

// AuthState returns the last rendered auth state.
func (d *Dashboard) AuthState() domain.AuthState {
	return d.auth.State()
}

// Notification returns the active notification.
func (d *Dashboard) Notification() (domain.Notification, bool) {
	return d.notifier.Current()
}
