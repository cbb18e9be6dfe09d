// Package status provides the notification bar of the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
)

// Ensure Bar implements the notification surface.
var _ driven.NotificationArea = (*Bar)(nil)

// Bar displays the active notification and keybinding hints.
type Bar struct {
	styles       *styles.Styles
	keymap       *keymap.KeyMap
	notification *domain.Notification
	bindings     []key.Binding
	width        int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:   s,
		keymap:   km,
		bindings: km.ShortHelp(),
		width:    80,
	}
}

// Show replaces the active notification.
func (s *Bar) Show(n domain.Notification) {
	s.notification = &n
}

// Clear removes the active notification.
func (s *Bar) Clear() {
	s.notification = nil
}

// Notification returns the active notification, if any.
func (s *Bar) Notification() (domain.Notification, bool) {
	if s.notification == nil {
		return domain.Notification{}, false
	}
	return *s.notification, true
}

// View renders the status bar on a single line. Hints are dropped when
// they do not fit beside the notification.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	// Width includes the style's padding, so the content gets what is left.
	inner := s.width - s.styles.StatusBar.GetHorizontalPadding()
	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	if leftLen+1+rightLen > inner {
		right, rightLen = "", 0
	}
	padding := inner - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the notification or the idle text.
func (s *Bar) renderLeft() string {
	if s.notification == nil {
		return s.styles.Muted.Render("Ready")
	}
	return s.styles.Notification(s.notification.Kind).Render(s.notification.Message)
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	hints := make([]string, 0, len(s.bindings))
	for _, b := range s.bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetBindings sets the hinted keybindings.
func (s *Bar) SetBindings(bindings []key.Binding) {
	s.bindings = bindings
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
