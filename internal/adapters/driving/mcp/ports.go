package mcp

import (
	"github.com/custodia-labs/postador-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Scheduling performs requests against the scheduling service.
	Scheduling driving.SchedulingService

	// Settings exposes the effective configuration. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Scheduling == nil {
		return ErrMissingSchedulingService
	}
	return nil
}
