package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driving"
)

// mockSchedulingService is a mock implementation of driving.SchedulingService.
type mockSchedulingService struct {
	AuthStateFunc       func(ctx context.Context) (domain.AuthState, error)
	AuthenticateFunc    func(ctx context.Context) (string, error)
	ListScheduledFunc   func(ctx context.Context) ([]domain.ScheduledItem, error)
	GenerateContentFunc func(ctx context.Context, summary string) (domain.GeneratedContent, error)
	ScheduleFunc        func(ctx context.Context, req domain.ScheduleRequest) (domain.ScheduleReceipt, error)
}

func (m *mockSchedulingService) AuthState(ctx context.Context) (domain.AuthState, error) {
	if m.AuthStateFunc != nil {
		return m.AuthStateFunc(ctx)
	}
	return domain.AuthConnected, nil
}

func (m *mockSchedulingService) Authenticate(ctx context.Context) (string, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx)
	}
	return "ok", nil
}

func (m *mockSchedulingService) ListScheduled(ctx context.Context) ([]domain.ScheduledItem, error) {
	if m.ListScheduledFunc != nil {
		return m.ListScheduledFunc(ctx)
	}
	return []domain.ScheduledItem{}, nil
}

func (m *mockSchedulingService) GenerateContent(ctx context.Context, summary string) (domain.GeneratedContent, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, summary)
	}
	return domain.GeneratedContent{}, nil
}

func (m *mockSchedulingService) Schedule(ctx context.Context, req domain.ScheduleRequest) (domain.ScheduleReceipt, error) {
	if m.ScheduleFunc != nil {
		return m.ScheduleFunc(ctx, req)
	}
	return domain.ScheduleReceipt{}, nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	driving.SettingsService

	settings domain.DashboardSettings
	list     []domain.Setting
	err      error
}

func (m *mockSettingsService) Get() (domain.DashboardSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) List() ([]domain.Setting, error) {
	return m.list, m.err
}

func sampleItems() []domain.ScheduledItem {
	return []domain.ScheduledItem{
		{
			ID:          "7",
			Title:       "Launch",
			ScheduledAt: time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC),
			Status:      domain.StatusScheduled,
			Platform:    "youtube",
		},
		{
			ID:           "8",
			Title:        "Broken upload",
			Status:       domain.StatusFailed,
			ErrorMessage: "quota exceeded",
		},
	}
}
