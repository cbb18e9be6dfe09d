// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SchedulingAPI: The remote video-scheduling service
//   - Runtime: Event loop and timers the dashboard controllers run on
//   - Surfaces: View elements the dashboard renders into
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - ConfigWatcher: External config changes. Without it, settings apply
//     only at startup.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
