package cli

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
	"github.com/custodia-labs/postador-cli/internal/logger"
)

// consoleTimeLayout prefixes every console line.
const consoleTimeLayout = "15:04:05"

// console renders the dashboard as a stream of lines for the headless
// watch mode. Its methods run on the event loop.
type console struct {
	out   io.Writer
	clock func() time.Time

	state    domain.AuthState
	lastRows []domain.Row
}

func newConsole(out io.Writer, clock func() time.Time) *console {
	return &console{out: out, clock: clock}
}

// surfaces binds the console to every dashboard surface. Watch mode has
// no form, so submission and AI assist never have input.
func (c *console) surfaces() driven.Surfaces {
	return driven.Surfaces{
		Indicator:       c,
		Notifications:   (*consoleNotifications)(c),
		Table:           (*consoleTable)(c),
		Form:            emptyForm{},
		Alerter:         (*consoleAlerter)(c),
		AuthTrigger:     &consoleControl{name: "authenticate"},
		SubmitTrigger:   &consoleControl{name: "submit"},
		GenerateTrigger: &consoleControl{name: "generate"},
	}
}

func (c *console) printf(format string, args ...any) {
	stamp := mutedStyle.Render(c.clock().Format(consoleTimeLayout))
	fmt.Fprintf(c.out, "%s %s\n", stamp, fmt.Sprintf(format, args...))
}

// SetAuthState prints state transitions only.
func (c *console) SetAuthState(state domain.AuthState) {
	if state == c.state {
		return
	}
	c.state = state
	c.printf("Service: %s", stateStyle(state).Render(state.Label()))
}

func (c *console) SetText(text string) {
	c.printf("%s", text)
}

type consoleNotifications console

func (n *consoleNotifications) Show(note domain.Notification) {
	style := successStyle
	if note.Kind == domain.NotificationError {
		style = errorStyle
	}
	(*console)(n).printf("%s", style.Render(note.Message))
}

func (n *consoleNotifications) Clear() {}

type consoleTable console

// ReplaceRows prints the table when its content changed.
func (t *consoleTable) ReplaceRows(rows []domain.Row) {
	c := (*console)(t)
	if sameRows(c.lastRows, rows) {
		logger.Debug("schedule unchanged")
		return
	}
	c.lastRows = rows
	c.printf("Schedule")
	fmt.Fprintln(c.out, renderRows(rows, c.clock()))
}

func sameRows(a, b []domain.Row) bool {
	return slices.EqualFunc(a, b, func(x, y domain.Row) bool {
		return x.Kind == y.Kind && slices.Equal(x.Cells, y.Cells)
	})
}

type consoleAlerter console

func (a *consoleAlerter) Alert(message string) {
	(*console)(a).printf("! %s", message)
}

type consoleControl struct {
	name    string
	enabled bool
	visible bool
	label   string
}

func (c *consoleControl) SetEnabled(enabled bool) {
	c.enabled = enabled
	logger.Debug("%s trigger enabled=%t", c.name, enabled)
}

func (c *consoleControl) SetLabel(label string) {
	c.label = label
}

func (c *consoleControl) SetVisible(visible bool) {
	c.visible = visible
}

type emptyForm struct{}

func (emptyForm) Request() domain.ScheduleRequest { return domain.ScheduleRequest{} }
func (emptyForm) Reset() {}
func (emptyForm) ApplyContent(_ domain.GeneratedContent) {}
func (emptyForm) Summary() string { return "" }
