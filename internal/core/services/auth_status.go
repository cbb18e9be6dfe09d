package services

import (
	"context"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
	"github.com/custodia-labs/postador-cli/internal/logger"
)

// AuthStatusController probes the service's auth state, renders it and
// gates the submit trigger. A connected probe is the only path that
// triggers the list load.
type AuthStatusController struct {
	rt            driven.Runtime
	api           driven.SchedulingAPI
	indicator     driven.AuthIndicator
	authTrigger   driven.Control
	submitTrigger driven.Control
	alerter       driven.Alerter
	notifier      *Notifier
	list          *ScheduleListController

	// onAuthenticated re-runs the page initialisation.
	onAuthenticated func()

	state          domain.AuthState
	authenticating bool
}

// NewAuthStatusController creates an auth controller.
func NewAuthStatusController(
	rt driven.Runtime,
	api driven.SchedulingAPI,
	surfaces driven.Surfaces,
	notifier *Notifier,
	list *ScheduleListController,
	onAuthenticated func(),
) *AuthStatusController {
	return &AuthStatusController{
		rt:              rt,
		api:             api,
		indicator:       surfaces.Indicator,
		authTrigger:     surfaces.AuthTrigger,
		submitTrigger:   surfaces.SubmitTrigger,
		alerter:         surfaces.Alerter,
		notifier:        notifier,
		list:            list,
		onAuthenticated: onAuthenticated,
	}
}

// State returns the last rendered auth state.
func (c *AuthStatusController) State() domain.AuthState {
	return c.state
}

// Refresh issues one probe and renders its outcome.
func (c *AuthStatusController) Refresh() {
	c.rt.Go(func(ctx context.Context) func() {
		status, err := c.api.AuthStatus(ctx)
		return func() {
			if err != nil {
				c.renderUnreachable(err)
				return
			}
			c.render(status.State())
		}
	})
}

func (c *AuthStatusController) render(state domain.AuthState) {
	c.state = state
	c.indicator.SetAuthState(state)

	switch state {
	case domain.AuthConnected:
		c.authTrigger.SetVisible(false)
		c.submitTrigger.SetEnabled(true)
		c.list.Refresh()
	default:
		c.authTrigger.SetVisible(true)
		c.submitTrigger.SetEnabled(false)
	}
}

func (c *AuthStatusController) renderUnreachable(err error) {
	logger.Warn("auth status probe: %v", err)
	c.state = domain.AuthUnreachable
	c.indicator.SetAuthState(domain.AuthUnreachable)
	c.authTrigger.SetVisible(true)
	c.submitTrigger.SetEnabled(false)
	c.notifier.Notify(TextServerOffline, domain.NotificationError)
}

// Authenticate runs the service's authentication flow. On success the
// page is re-initialised; on failure the state is probed again.
func (c *AuthStatusController) Authenticate() error {
	if c.authenticating {
		return domain.ErrOperationInProgress
	}
	c.authenticating = true
	c.authTrigger.SetEnabled(false)
	c.indicator.SetText(LabelAuthenticating)

	c.rt.Go(func(ctx context.Context) func() {
		_, err := c.api.Authenticate(ctx)
		return func() {
			defer c.releaseAuthenticate()

			if err != nil {
				logger.Warn("authenticate: %v", err)
				c.alerter.Alert(TextAuthFailedPrefix + domain.UserMessage(err))
				c.Refresh()
				return
			}
			c.alerter.Alert(TextAuthComplete)
			if c.onAuthenticated != nil {
				c.onAuthenticated()
			}
		}
	})
	return nil
}

func (c *AuthStatusController) releaseAuthenticate() {
	c.authenticating = false
	c.authTrigger.SetEnabled(true)
}
