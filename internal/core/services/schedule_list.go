package services

import (
	"context"
	"time"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
	"github.com/custodia-labs/postador-cli/internal/logger"
)

// ScheduleListController loads the scheduled items and renders them into
// the schedule table. Failures degrade to an inline error row.
type ScheduleListController struct {
	rt    driven.Runtime
	api   driven.SchedulingAPI
	table driven.ScheduleTable

	layout       string
	location     *time.Location
	discardStale bool

	generation uint64
	loaded     bool
}

// NewScheduleListController creates a list controller.
func NewScheduleListController(
	rt driven.Runtime,
	api driven.SchedulingAPI,
	table driven.ScheduleTable,
	layout string,
	location *time.Location,
) *ScheduleListController {
	c := &ScheduleListController{rt: rt, api: api, table: table}
	c.SetDisplay(layout, location)
	return c
}

// SetDisplay changes how scheduled times are rendered.
func (c *ScheduleListController) SetDisplay(layout string, location *time.Location) {
	if layout == "" {
		layout = domain.DefaultTimeLayout
	}
	if location == nil {
		location = time.Local
	}
	c.layout = layout
	c.location = location
}

// SetDiscardStale selects the overlap policy. When enabled, only the
// latest issued refresh may render.
func (c *ScheduleListController) SetDiscardStale(discard bool) {
	c.discardStale = discard
}

// Loaded reports whether the table has been rendered at least once.
func (c *ScheduleListController) Loaded() bool {
	return c.loaded
}

// Refresh fetches the list and replaces the table. It never fails.
func (c *ScheduleListController) Refresh() {
	c.generation++
	gen := c.generation

	c.rt.Go(func(ctx context.Context) func() {
		items, err := c.api.ListScheduled(ctx)
		return func() {
			if c.discardStale && gen != c.generation {
				logger.Debug("dropping stale list response %d (latest %d)", gen, c.generation)
				return
			}
			c.render(items, err)
		}
	})
}

func (c *ScheduleListController) render(items []domain.ScheduledItem, err error) {
	c.loaded = true
	if err != nil {
		logger.Warn("load scheduled videos: %v", err)
		c.table.ReplaceRows([]domain.Row{domain.MessageRow(domain.RowError, TextListFailed)})
		return
	}
	c.table.ReplaceRows(BuildRows(items, c.layout, c.location))
}

// BuildRows renders items as table rows in the given order. An empty list
// yields the single placeholder row.
func BuildRows(items []domain.ScheduledItem, layout string, location *time.Location) []domain.Row {
	if len(items) == 0 {
		return []domain.Row{domain.MessageRow(domain.RowPlaceholder, TextNoItems)}
	}

	rows := make([]domain.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, domain.Row{
			Kind: domain.RowItem,
			Cells: []string{
				item.ID,
				item.Title,
				FormatScheduledAt(item.ScheduledAt, layout, location),
				item.Status.String(),
			},
			Span:  1,
			Badge: item.Status.Badge(),
			Item:  item,
		})
	}
	return rows
}

// FormatScheduledAt renders t in location using layout.
func FormatScheduledAt(t time.Time, layout string, location *time.Location) string {
	if t.IsZero() {
		return TextInvalidTimestamp
	}
	if location != nil {
		t = t.In(location)
	}
	return t.Format(layout)
}
