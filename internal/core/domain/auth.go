package domain

// AuthState is the rendered authentication state of the dashboard.
// It is derived from a fresh probe every time and never cached.
type AuthState string

// Available auth states.
const (
	// AuthConnected means the service holds valid YouTube credentials.
	AuthConnected AuthState = "connected"

	// AuthDisconnected means the service answered but is not authenticated.
	AuthDisconnected AuthState = "disconnected"

	// AuthUnreachable means the probe itself failed. It must never render
	// the same as AuthDisconnected.
	AuthUnreachable AuthState = "unreachable"
)

// IsValid returns true if the auth state is recognised.
func (s AuthState) IsValid() bool {
	switch s {
	case AuthConnected, AuthDisconnected, AuthUnreachable:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s AuthState) String() string {
	return string(s)
}

// Label returns the indicator text for the state.
func (s AuthState) Label() string {
	switch s {
	case AuthConnected:
		return "Connected"
	case AuthDisconnected:
		return "Disconnected"
	case AuthUnreachable:
		return "Server offline"
	default:
		return unknownDescription
	}
}

// AuthStatus is the payload of the auth status probe.
type AuthStatus struct {
	// Authenticated reports whether the service holds credentials.
	Authenticated bool
}

// State maps the probe payload onto an AuthState.
func (s AuthStatus) State() AuthState {
	if s.Authenticated {
		return AuthConnected
	}
	return AuthDisconnected
}
