package cli

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
)

func sampleItems() []domain.ScheduledItem {
	return []domain.ScheduledItem{
		{
			ID:          "7",
			Title:       "Launch video",
			ScheduledAt: time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC),
			Status:      domain.StatusScheduled,
		},
		{
			ID:           "8",
			Title:        "Old upload",
			ScheduledAt:  time.Date(2026, 2, 27, 12, 0, 0, 0, time.UTC),
			Status:       domain.StatusFailed,
			ErrorMessage: "quota exceeded",
		},
	}
}

func withItems(items []domain.ScheduledItem, err error) *MockSchedulingService {
	return &MockSchedulingService{
		ListScheduledFunc: func(context.Context) ([]domain.ScheduledItem, error) {
			return items, err
		},
	}
}

func utcSettings() *MockSettingsService {
	return &MockSettingsService{
		GetFunc: func() (domain.DashboardSettings, error) {
			s := domain.DefaultDashboardSettings()
			s.TimeZone = "UTC"
			return s, nil
		},
	}
}

func TestListCmd_Table(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	schedulingService = withItems(sampleItems(), nil)
	settingsService = utcSettings()

	out, err := execute(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Scheduled for")
	assert.Contains(t, out, "Launch video")
	assert.Contains(t, out, "01/03/2026, 15:00:00")
	assert.Contains(t, out, "3 hours from now")
	assert.Contains(t, out, "2 days ago")
	assert.Contains(t, out, "erro")
}

func TestListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No videos scheduled.")
}

func TestListCmd_StatusAndLimit(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	schedulingService = withItems(sampleItems(), nil)

	out, err := execute(t, "list", "--status", "erro")

	require.NoError(t, err)
	assert.Contains(t, out, "Old upload")
	assert.NotContains(t, out, "Launch video")

	resetFlags()
	out, err = execute(t, "list", "-n", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Launch video")
	assert.NotContains(t, out, "Old upload")
}

func TestListCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	schedulingService = withItems(sampleItems(), nil)

	out, err := execute(t, "list", "--json")

	require.NoError(t, err)
	var items []itemJSON
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "7", items[0].ID)
	assert.Equal(t, "quota exceeded", items[1].ErrorMessage)
}

func TestListCmd_Error(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	schedulingService = withItems(nil, errors.New("connection refused"))

	_, err := execute(t, "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFilterItems(t *testing.T) {
	items := sampleItems()

	assert.Len(t, filterItems(items, "", 0), 2)
	assert.Len(t, filterItems(items, "agendado", 0), 1)
	assert.Len(t, filterItems(items, "", 1), 1)
	assert.Empty(t, filterItems(items, "postado", 0))
	assert.NotNil(t, filterItems(nil, "", 0))
}

func TestRelativeTime(t *testing.T) {
	assert.Empty(t, relativeTime(time.Time{}, fixedNow))
	assert.Equal(t, "1 hour ago", relativeTime(fixedNow.Add(-time.Hour), fixedNow))
}

func TestRenderRows_ErrorRow(t *testing.T) {
	out := renderRows([]domain.Row{domain.MessageRow(domain.RowError, "Failed to load")}, fixedNow)

	assert.Contains(t, out, "Failed to load")
	assert.Contains(t, out, "Status")
}
