package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
)

func newListController(rt *fakeRuntime, api *mockSchedulingAPI, table *fakeTable) *ScheduleListController {
	return NewScheduleListController(rt, api, table, domain.DefaultTimeLayout, time.UTC)
}

func TestScheduleList_EmptyRendersPlaceholder(t *testing.T) {
	rt := newFakeRuntime()
	table := &fakeTable{}
	api := &mockSchedulingAPI{}
	c := newListController(rt, api, table)

	assert.False(t, c.Loaded())
	c.Refresh()
	rt.ResolveAll()

	require.Len(t, table.rows, 1)
	assert.Equal(t, domain.RowPlaceholder, table.rows[0].Kind)
	assert.Equal(t, domain.ScheduleColumns, table.rows[0].Span)
	assert.Equal(t, []string{TextNoItems}, table.rows[0].Cells)
	assert.True(t, c.Loaded())
}

func TestScheduleList_RendersItemsInOrder(t *testing.T) {
	rt := newFakeRuntime()
	table := &fakeTable{}
	items := []domain.ScheduledItem{
		{ID: "3", Title: "C", ScheduledAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), Status: domain.StatusPosted},
		{ID: "1", Title: "A", ScheduledAt: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), Status: domain.StatusScheduled},
		{ID: "2", Title: "B", ScheduledAt: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC), Status: domain.StatusFailed},
	}
	api := &mockSchedulingAPI{
		ListScheduledFunc: func(_ context.Context) ([]domain.ScheduledItem, error) {
			return items, nil
		},
	}
	c := newListController(rt, api, table)

	c.Refresh()
	rt.ResolveAll()

	require.Len(t, table.rows, 3)
	for i, row := range table.rows {
		assert.Equal(t, domain.RowItem, row.Kind)
		assert.Equal(t, items[i].ID, row.Cells[0])
		assert.Equal(t, items[i], row.Item)
	}
	assert.Equal(t, "status-erro", table.rows[2].Badge)
}

func TestScheduleList_ConcreteRow(t *testing.T) {
	rt := newFakeRuntime()
	table := &fakeTable{}
	api := &mockSchedulingAPI{
		ListScheduledFunc: func(_ context.Context) ([]domain.ScheduledItem, error) {
			return []domain.ScheduledItem{{
				ID:          "1",
				Title:       "X",
				ScheduledAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
				Status:      "pending",
			}}, nil
		},
	}
	c := newListController(rt, api, table)

	c.Refresh()
	rt.ResolveAll()

	require.Len(t, table.rows, 1)
	row := table.rows[0]
	assert.Equal(t, []string{"1", "X", "01/01/2024, 10:00:00", "pending"}, row.Cells)
	assert.Equal(t, "status-pending", row.Badge)
}

func TestScheduleList_FailureRendersErrorRow(t *testing.T) {
	failures := []error{
		&domain.TransportError{Op: "list scheduled", Err: errors.New("connection refused")},
		&domain.TransportError{Op: "list scheduled", StatusCode: 500, Message: "db down"},
		&domain.ApplicationError{Op: "list scheduled", Message: "query failed"},
		domain.ErrMalformedPayload,
	}

	for _, failure := range failures {
		t.Run(failure.Error(), func(t *testing.T) {
			rt := newFakeRuntime()
			table := &fakeTable{}
			api := &mockSchedulingAPI{
				ListScheduledFunc: func(_ context.Context) ([]domain.ScheduledItem, error) {
					return nil, failure
				},
			}
			c := newListController(rt, api, table)

			assert.NotPanics(t, func() {
				c.Refresh()
				rt.ResolveAll()
			})

			require.Len(t, table.rows, 1)
			assert.Equal(t, domain.RowError, table.rows[0].Kind)
			assert.Equal(t, domain.ScheduleColumns, table.rows[0].Span)
			assert.Equal(t, []string{TextListFailed}, table.rows[0].Cells)
		})
	}
}

// overlappingLists issues two refreshes and resolves the second first.
// The first request answers "old", the second "new".
func overlappingLists(t *testing.T, discard bool) *fakeTable {
	t.Helper()
	rt := newFakeRuntime()
	table := &fakeTable{}
	responses := []string{"new", "old"}
	api := &mockSchedulingAPI{
		ListScheduledFunc: func(_ context.Context) ([]domain.ScheduledItem, error) {
			title := responses[0]
			responses = responses[1:]
			return []domain.ScheduledItem{{ID: title, Title: title, ScheduledAt: time.Now()}}, nil
		},
	}
	c := newListController(rt, api, table)
	c.SetDiscardStale(discard)

	c.Refresh()
	c.Refresh()
	require.Equal(t, 2, rt.Pending())

	rt.Resolve(1)
	rt.Resolve(0)
	return table
}

func TestScheduleList_LastResolvedWinsByDefault(t *testing.T) {
	table := overlappingLists(t, false)

	assert.Equal(t, 2, table.renders)
	assert.Equal(t, "old", table.rows[0].Item.Title)
}

func TestScheduleList_DiscardStaleKeepsLatestIssued(t *testing.T) {
	table := overlappingLists(t, true)

	assert.Equal(t, 1, table.renders)
	assert.Equal(t, "new", table.rows[0].Item.Title)
}

func TestFormatScheduledAt(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "01/01/2024, 07:00:00", FormatScheduledAt(ts, domain.DefaultTimeLayout, saoPaulo))
	assert.Equal(t, "2024-01-01 10:00", FormatScheduledAt(ts, "2006-01-02 15:04", time.UTC))
	assert.Equal(t, TextInvalidTimestamp, FormatScheduledAt(time.Time{}, domain.DefaultTimeLayout, time.UTC))
}
