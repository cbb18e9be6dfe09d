package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
	"github.com/custodia-labs/postador-cli/internal/logger"
)

// AssistController fills the form's metadata fields from AI generated
// content.
type AssistController struct {
	rt       driven.Runtime
	api      driven.SchedulingAPI
	form     driven.ScheduleForm
	trigger  driven.Control
	notifier *Notifier

	generating bool
}

// NewAssistController creates an assist controller.
func NewAssistController(
	rt driven.Runtime,
	api driven.SchedulingAPI,
	surfaces driven.Surfaces,
	notifier *Notifier,
) *AssistController {
	return &AssistController{
		rt:       rt,
		api:      api,
		form:     surfaces.Form,
		trigger:  surfaces.GenerateTrigger,
		notifier: notifier,
	}
}

// Generating reports whether a request is in flight.
func (c *AssistController) Generating() bool {
	return c.generating
}

// Generate requests metadata for summary. A blank summary is rejected
// without a request.
func (c *AssistController) Generate(summary string) error {
	if strings.TrimSpace(summary) == "" {
		c.notifier.Notify(TextSummaryRequired, domain.NotificationError)
		return &domain.ValidationError{Field: "summary", Message: TextSummaryRequired}
	}
	if c.generating {
		return domain.ErrOperationInProgress
	}

	c.generating = true
	c.trigger.SetEnabled(false)
	c.trigger.SetLabel(LabelGenerating)

	c.rt.Go(func(ctx context.Context) func() {
		content, err := c.api.GenerateContent(ctx, summary)
		return func() {
			defer c.release()

			if err != nil {
				logger.Warn("generate content: %v", err)
				c.notifier.Notify(TextAIFailedPrefix+domain.UserMessage(err), domain.NotificationError)
				return
			}
			c.form.ApplyContent(content)
			c.notifier.Notify(TextContentGenerated, domain.NotificationSuccess)
		}
	})
	return nil
}

func (c *AssistController) release() {
	c.generating = false
	c.trigger.SetEnabled(true)
	c.trigger.SetLabel(LabelGenerate)
}
