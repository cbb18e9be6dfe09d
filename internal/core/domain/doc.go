// Package domain defines the core entities of the postador dashboard.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - AuthState: Connected, Disconnected or Unreachable, derived per probe
//   - ScheduledItem: A video queued for publication by the remote service
//   - Row: One rendered line of the schedule table
//   - Notification: The single transient message shown to the user
//   - ScheduleRequest / GeneratedContent: Form payloads sent to the service
//   - DashboardSettings: Polling, notification and display configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
