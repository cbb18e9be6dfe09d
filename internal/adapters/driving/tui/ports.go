// Package tui provides an interactive terminal user interface for postador.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/postador-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Dashboard builds the scheduling page controllers.
	Dashboard driving.DashboardFactory

	// Settings manages application settings. Optional: without it the
	// settings view and config hot reload are unavailable.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(dashboard driving.DashboardFactory, settings driving.SettingsService) *Ports {
	return &Ports{
		Dashboard: dashboard,
		Settings:  settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Dashboard == nil {
		return ErrMissingDashboardFactory
	}
	return nil
}
