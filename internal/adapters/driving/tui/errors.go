package tui

import "errors"

// ErrMissingDashboardFactory is returned when the dashboard factory is not provided.
var ErrMissingDashboardFactory = errors.New("tui: dashboard factory is required")

// ErrMissingRuntime is returned when no event loop is provided.
var ErrMissingRuntime = errors.New("tui: runtime is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
