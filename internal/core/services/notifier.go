package services

import (
	"time"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
)

// Notifier shows one transient message at a time and dismisses it after
// a fixed duration. A newer message preempts the pending dismissal.
type Notifier struct {
	rt       driven.Runtime
	area     driven.NotificationArea
	duration time.Duration

	current    domain.Notification
	visible    bool
	timer      driven.Timer
	generation uint64
}

// NewNotifier creates a notifier rendering into area.
func NewNotifier(rt driven.Runtime, area driven.NotificationArea, duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = domain.DefaultNotificationDuration
	}
	return &Notifier{rt: rt, area: area, duration: duration}
}

// Notify shows message immediately and schedules its dismissal.
func (n *Notifier) Notify(message string, kind domain.NotificationKind) {
	n.cancelDismissal()

	n.generation++
	gen := n.generation
	n.current = domain.Notification{
		Message:      message,
		Kind:         kind,
		VisibleUntil: n.rt.Now().Add(n.duration),
	}
	n.visible = true
	n.area.Show(n.current)

	n.timer = n.rt.AfterFunc(n.duration, func() {
		// A stopped timer may still deliver a queued firing.
		if gen != n.generation {
			return
		}
		n.timer = nil
		n.visible = false
		n.current = domain.Notification{}
		n.area.Clear()
	})
}

// Current returns the visible notification.
func (n *Notifier) Current() (domain.Notification, bool) {
	return n.current, n.visible
}

// SetDuration changes the duration of later notifications.
func (n *Notifier) SetDuration(d time.Duration) {
	if d > 0 {
		n.duration = d
	}
}

// Stop cancels the pending dismissal, leaving the region as it is.
func (n *Notifier) Stop() {
	n.cancelDismissal()
	n.generation++
}

func (n *Notifier) cancelDismissal() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
