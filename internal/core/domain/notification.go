package domain

import "time"

// NotificationKind selects how a notification is presented.
type NotificationKind string

// Notification kinds.
const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// String returns the string representation.
func (k NotificationKind) String() string {
	return string(k)
}

// Notification is the single transient message of the notification region.
type Notification struct {
	// Message is the text shown to the user.
	Message string

	// Kind selects success or error styling.
	Kind NotificationKind

	// VisibleUntil is when the pending dismissal is due.
	VisibleUntil time.Time
}
