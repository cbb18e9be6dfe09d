// Package controls provides the dashboard's triggers, auth indicator and
// alert dialog.
package controls

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
)

// Ensure the controls implement their surfaces.
var (
	_ driven.Control       = (*Button)(nil)
	_ driven.AuthIndicator = (*Indicator)(nil)
	_ driven.Alerter       = (*Alert)(nil)
)

// Button is a trigger bound to a key.
type Button struct {
	styles  *styles.Styles
	label   string
	hint    string
	enabled bool
	visible bool

	// idleLabel is the last label set while enabled.
	idleLabel string
}

// NewButton creates an enabled, visible button.
func NewButton(s *styles.Styles, label, hint string) *Button {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Button{
		styles:    s,
		idleLabel: label,
		label:     label,
		hint:      hint,
		enabled:   true,
		visible:   true,
	}
}

// SetEnabled enables or disables the button.
func (b *Button) SetEnabled(enabled bool) {
	b.enabled = enabled
	if enabled {
		b.idleLabel = b.label
	}
}

// SetLabel sets the button text.
func (b *Button) SetLabel(label string) {
	b.label = label
	if b.enabled {
		b.idleLabel = label
	}
}

// SetVisible shows or hides the button.
func (b *Button) SetVisible(visible bool) { b.visible = visible }

// Enabled reports whether the button accepts presses.
func (b *Button) Enabled() bool { return b.enabled }

// Visible reports whether the button is shown.
func (b *Button) Visible() bool { return b.visible }

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// Active reports whether a press would be handled.
func (b *Button) Active() bool { return b.enabled && b.visible }

// Busy reports whether the button is locked by an operation in flight,
// as opposed to being disabled in its idle state.
func (b *Button) Busy() bool { return !b.enabled && b.label != b.idleLabel }

// View renders the button, or nothing when hidden.
func (b *Button) View(spin string) string {
	if !b.visible {
		return ""
	}
	if !b.enabled {
		text := b.label
		if b.Busy() && spin != "" {
			text = spin + " " + text
		}
		return b.styles.ButtonDisabled.Render(text)
	}
	return b.styles.Button.Render(b.label) + " " + b.styles.Help.Render(b.hint)
}

// Indicator renders the auth state.
type Indicator struct {
	styles *styles.Styles
	state  domain.AuthState
	text   string
}

// NewIndicator creates an indicator in the checking state.
func NewIndicator(s *styles.Styles) *Indicator {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Indicator{styles: s, text: "Checking..."}
}

// SetAuthState renders the state with its standard label.
func (i *Indicator) SetAuthState(state domain.AuthState) {
	i.state = state
	i.text = state.Label()
}

// SetText overrides the label.
func (i *Indicator) SetText(text string) { i.text = text }

// State returns the last rendered state.
func (i *Indicator) State() domain.AuthState { return i.state }

// Text returns the indicator text.
func (i *Indicator) Text() string { return i.text }

// View renders the indicator.
func (i *Indicator) View() string {
	return i.styles.Muted.Render("YouTube: ") + i.styles.AuthState(i.state).Render("● "+i.text)
}

// Alert is a modal message the user dismisses.
type Alert struct {
	styles  *styles.Styles
	message string
	open    bool
}

// NewAlert creates a closed alert.
func NewAlert(s *styles.Styles) *Alert {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Alert{styles: s}
}

// Alert opens the dialog with message. A newer alert replaces an open one.
func (a *Alert) Alert(message string) {
	a.message = message
	a.open = true
}

// Open reports whether the dialog is shown.
func (a *Alert) Open() bool { return a.open }

// Message returns the dialog text.
func (a *Alert) Message() string { return a.message }

// Dismiss closes the dialog.
func (a *Alert) Dismiss() { a.open = false }

// View renders the dialog centred in width x height.
func (a *Alert) View(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		a.styles.Normal.Render(a.message),
		"",
		a.styles.Help.Render("[enter] ok"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, a.styles.Dialog.Render(body))
}

// NewSpinner creates the in-progress spinner shown on busy buttons.
func NewSpinner(s *styles.Styles) spinner.Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle
	return sp
}

// Tick starts the spinner animation.
func Tick(sp spinner.Model) tea.Cmd {
	return sp.Tick
}
