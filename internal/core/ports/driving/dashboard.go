package driving

import (
	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
)

// Dashboard is the scheduling page: auth state, schedule list, submission,
// AI assist and transient notifications kept consistent across overlapping
// requests.
//
// Every method must be called on the Runtime's loop.
type Dashboard interface {
	// Start runs the initialisation and starts the periodic list refresh.
	// A second call is a no-op.
	Start()

	// Reinitialize re-runs the initialisation without starting a second
	// refresh timer.
	Reinitialize()

	// Stop stops the refresh timer and any pending dismissal.
	Stop()

	// Reconfigure applies changed settings to the running page.
	Reconfigure(settings domain.DashboardSettings)

	// RefreshAuth probes the auth state.
	RefreshAuth()

	// RefreshList reloads the schedule table.
	RefreshList()

	// Authenticate starts the service's authentication flow.
	Authenticate() error

	// Submit sends the scheduling form.
	Submit() error

	// Generate asks for AI metadata from the form's summary.
	Generate() error

	// AuthState returns the last rendered auth state, or "" before the
	// first probe resolves.
	AuthState() domain.AuthState

	// Notification returns the active notification, if any.
	Notification() (domain.Notification, bool)
}

// DashboardFactory builds dashboards bound to a page's surfaces.
type DashboardFactory interface {
	// NewDashboard wires a dashboard to the given surfaces and loop.
	NewDashboard(surfaces driven.Surfaces, rt driven.Runtime) (Dashboard, error)
}
