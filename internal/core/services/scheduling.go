package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driving"
)

// Ensure SchedulingService implements the interface.
var _ driving.SchedulingService = (*SchedulingService)(nil)

// SchedulingService performs one-shot requests for the CLI and MCP server.
type SchedulingService struct {
	api driven.SchedulingAPI
}

// NewSchedulingService creates a new scheduling service.
func NewSchedulingService(api driven.SchedulingAPI) *SchedulingService {
	return &SchedulingService{api: api}
}

// AuthState probes the service.
func (s *SchedulingService) AuthState(ctx context.Context) (domain.AuthState, error) {
	status, err := s.api.AuthStatus(ctx)
	if err != nil {
		return domain.AuthUnreachable, fmt.Errorf("auth status: %w", err)
	}
	return status.State(), nil
}

// Authenticate runs the service's authentication flow.
func (s *SchedulingService) Authenticate(ctx context.Context) (string, error) {
	msg, err := s.api.Authenticate(ctx)
	if err != nil {
		return "", fmt.Errorf("authenticate: %w", err)
	}
	if msg == "" {
		msg = TextAuthComplete
	}
	return msg, nil
}

// ListScheduled returns the scheduled items.
func (s *SchedulingService) ListScheduled(ctx context.Context) ([]domain.ScheduledItem, error) {
	items, err := s.api.ListScheduled(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scheduled: %w", err)
	}
	return items, nil
}

// GenerateContent validates the summary and asks for AI metadata.
func (s *SchedulingService) GenerateContent(ctx context.Context, summary string) (domain.GeneratedContent, error) {
	if strings.TrimSpace(summary) == "" {
		return domain.GeneratedContent{}, &domain.ValidationError{Field: "summary", Message: TextSummaryRequired}
	}
	content, err := s.api.GenerateContent(ctx, summary)
	if err != nil {
		return domain.GeneratedContent{}, fmt.Errorf("generate content: %w", err)
	}
	return content, nil
}

// Schedule validates the request and submits it.
func (s *SchedulingService) Schedule(ctx context.Context, req domain.ScheduleRequest) (domain.ScheduleReceipt, error) {
	if err := validateScheduleRequest(req); err != nil {
		return domain.ScheduleReceipt{}, err
	}
	receipt, err := s.api.Schedule(ctx, req)
	if err != nil {
		return domain.ScheduleReceipt{}, fmt.Errorf("schedule: %w", err)
	}
	return receipt, nil
}

func validateScheduleRequest(req domain.ScheduleRequest) error {
	if strings.TrimSpace(req.MediaPath) == "" {
		return &domain.ValidationError{Field: "video", Message: "a video file is required"}
	}
	if strings.TrimSpace(req.Title) == "" {
		return &domain.ValidationError{Field: "title", Message: "a title is required"}
	}
	if req.ScheduledAt.IsZero() {
		return &domain.ValidationError{Field: "scheduled_time", Message: "a publication time is required"}
	}
	return nil
}
