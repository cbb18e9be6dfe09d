package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
	"github.com/custodia-labs/postador-cli/internal/logger"
)

// SubmissionController sends the scheduling form. At most one request is
// in flight; the trigger stays disabled until it resolves.
type SubmissionController struct {
	rt       driven.Runtime
	api      driven.SchedulingAPI
	form     driven.ScheduleForm
	trigger  driven.Control
	notifier *Notifier
	list     *ScheduleListController

	submitting bool
}

// NewSubmissionController creates a submission controller.
func NewSubmissionController(
	rt driven.Runtime,
	api driven.SchedulingAPI,
	surfaces driven.Surfaces,
	notifier *Notifier,
	list *ScheduleListController,
) *SubmissionController {
	return &SubmissionController{
		rt:       rt,
		api:      api,
		form:     surfaces.Form,
		trigger:  surfaces.SubmitTrigger,
		notifier: notifier,
		list:     list,
	}
}

// Submitting reports whether a request is in flight.
func (c *SubmissionController) Submitting() bool {
	return c.submitting
}

// Submit snapshots the form and sends it.
func (c *SubmissionController) Submit() error {
	if c.submitting {
		return domain.ErrOperationInProgress
	}

	req := c.form.Request()
	c.submitting = true
	c.trigger.SetEnabled(false)
	c.trigger.SetLabel(LabelSubmitting)

	c.rt.Go(func(ctx context.Context) func() {
		receipt, err := c.api.Schedule(ctx, req)
		return func() {
			defer c.release()

			if err != nil {
				logger.Warn("schedule %q: %v", req.Title, err)
				c.notifier.Notify(TextScheduleFailed+domain.UserMessage(err), domain.NotificationError)
				return
			}
			logger.Info("scheduled %q as %s", req.Title, receipt.ID)
			c.notifier.Notify(fmt.Sprintf(TextScheduled, receipt.ID), domain.NotificationSuccess)
			c.form.Reset()
			c.list.Refresh()
		}
	})
	return nil
}

func (c *SubmissionController) release() {
	c.submitting = false
	c.trigger.SetEnabled(true)
	c.trigger.SetLabel(LabelSubmit)
}
