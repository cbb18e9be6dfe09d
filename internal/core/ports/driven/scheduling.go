package driven

import (
	"context"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
)

// SchedulingAPI is the remote video-scheduling service.
//
// Every method performs exactly one request. Failures are reported as
// *domain.TransportError (network failure or non-2xx status),
// *domain.ApplicationError (2xx with an error field) or an error wrapping
// domain.ErrMalformedPayload.
type SchedulingAPI interface {
	// AuthStatus probes whether the service holds platform credentials.
	AuthStatus(ctx context.Context) (domain.AuthStatus, error)

	// Authenticate asks the service to run its authentication flow.
	// Returns the service's confirmation message.
	Authenticate(ctx context.Context) (string, error)

	// ListScheduled returns the scheduled items in service order.
	// An empty, non-nil slice is a valid empty list.
	ListScheduled(ctx context.Context) ([]domain.ScheduledItem, error)

	// GenerateContent asks the service to generate metadata from a summary.
	GenerateContent(ctx context.Context, summary string) (domain.GeneratedContent, error)

	// Schedule uploads the media file and creates a scheduling request.
	Schedule(ctx context.Context, req domain.ScheduleRequest) (domain.ScheduleReceipt, error)
}
