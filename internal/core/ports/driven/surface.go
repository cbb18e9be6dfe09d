package driven

import (
	"errors"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
)

// Surface errors.
var (
	ErrMissingAuthIndicator = errors.New("driven: auth indicator surface is required")
	ErrMissingNotifications = errors.New("driven: notification surface is required")
	ErrMissingScheduleTable = errors.New("driven: schedule table surface is required")
	ErrMissingScheduleForm  = errors.New("driven: schedule form surface is required")
	ErrMissingControl       = errors.New("driven: control surface is required")
	ErrMissingAlerter       = errors.New("driven: alerter surface is required")
)

// AuthIndicator renders the authentication state.
type AuthIndicator interface {
	// SetAuthState renders the state with its standard label.
	SetAuthState(state domain.AuthState)

	// SetText overrides the label, e.g. while authenticating.
	SetText(text string)
}

// Control is a trigger the user activates (button, key binding).
type Control interface {
	SetEnabled(enabled bool)
	SetLabel(label string)
	SetVisible(visible bool)
}

// NotificationArea renders the single transient notification.
type NotificationArea interface {
	Show(n domain.Notification)
	Clear()
}

// ScheduleTable renders the schedule list. Each call replaces every row.
type ScheduleTable interface {
	ReplaceRows(rows []domain.Row)
}

// ScheduleForm is the scheduling form and its AI assist fields.
type ScheduleForm interface {
	// Request snapshots the form.
	Request() domain.ScheduleRequest

	// Reset clears every field.
	Reset()

	// ApplyContent writes generated metadata into the title, description
	// and tags fields verbatim.
	ApplyContent(content domain.GeneratedContent)

	// Summary returns the AI assist summary input.
	Summary() string
}

// Alerter shows a blocking message the user must acknowledge.
type Alerter interface {
	Alert(message string)
}

// Surfaces bundles every view element the dashboard renders into.
type Surfaces struct {
	Indicator     AuthIndicator
	Notifications NotificationArea
	Table         ScheduleTable
	Form          ScheduleForm
	Alerter       Alerter

	// AuthTrigger starts the authentication flow.
	AuthTrigger Control

	// SubmitTrigger submits the scheduling form.
	SubmitTrigger Control

	// GenerateTrigger asks for AI generated metadata.
	GenerateTrigger Control
}

// Validate ensures every surface is present.
func (s Surfaces) Validate() error {
	if s.Indicator == nil {
		return ErrMissingAuthIndicator
	}
	if s.Notifications == nil {
		return ErrMissingNotifications
	}
	if s.Table == nil {
		return ErrMissingScheduleTable
	}
	if s.Form == nil {
		return ErrMissingScheduleForm
	}
	if s.Alerter == nil {
		return ErrMissingAlerter
	}
	if s.AuthTrigger == nil || s.SubmitTrigger == nil || s.GenerateTrigger == nil {
		return ErrMissingControl
	}
	return nil
}
