package driving

import (
	"context"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
)

// SchedulingService performs one-shot requests against the scheduling
// service, for callers without a page (CLI commands, MCP tools).
type SchedulingService interface {
	// AuthState probes the service and maps the outcome to an AuthState.
	// A failed probe yields domain.AuthUnreachable together with the error.
	AuthState(ctx context.Context) (domain.AuthState, error)

	// Authenticate runs the service's authentication flow.
	Authenticate(ctx context.Context) (string, error)

	// ListScheduled returns the scheduled items.
	ListScheduled(ctx context.Context) ([]domain.ScheduledItem, error)

	// GenerateContent validates the summary and asks for AI metadata.
	GenerateContent(ctx context.Context, summary string) (domain.GeneratedContent, error)

	// Schedule validates the request and submits it.
	Schedule(ctx context.Context, req domain.ScheduleRequest) (domain.ScheduleReceipt, error)
}
