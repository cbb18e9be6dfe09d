// Package list provides the schedule table component for the TUI.
package list

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/postador-cli/internal/core/domain"
	"github.com/custodia-labs/postador-cli/internal/core/ports/driven"
)

// Ensure ScheduleTable implements the table surface.
var _ driven.ScheduleTable = (*ScheduleTable)(nil)

const statusColumn = domain.ScheduleColumns - 1

// ScheduleTable renders the scheduled items.
type ScheduleTable struct {
	rows   []domain.Row
	loaded bool
	offset int
	styles *styles.Styles
	now    func() time.Time
	width  int
	height int
}

// NewScheduleTable creates a new schedule table component.
func NewScheduleTable(s *styles.Styles) *ScheduleTable {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ScheduleTable{
		styles: s,
		now:    time.Now,
		width:  80,
		height: 10,
	}
}

// ReplaceRows replaces every row of the table.
func (r *ScheduleTable) ReplaceRows(rows []domain.Row) {
	r.rows = rows
	r.loaded = true
	if r.offset >= len(rows) {
		r.offset = 0
	}
}

// Rows returns the rendered rows.
func (r *ScheduleTable) Rows() []domain.Row {
	return r.rows
}

// Loaded reports whether any rows were rendered yet.
func (r *ScheduleTable) Loaded() bool {
	return r.loaded
}

// View renders the schedule table.
func (r *ScheduleTable) View() string {
	header := r.styles.Subtitle.Render("Scheduled videos")
	if !r.loaded {
		return header + "\n" + r.styles.Muted.Render("Loading...")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.Muted).
		Headers(domain.ScheduleHeaders[:]...).
		Width(r.width)

	var (
		message *domain.Row
		items   []domain.Row
	)
	visible := r.visibleRows()
	for i := range visible {
		row := visible[i]
		if row.Kind != domain.RowItem {
			message = &row
			continue
		}
		items = append(items, row)
		t.Row(r.itemCells(row)...)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return r.styles.Title.Padding(0, 1)
		}
		if col == statusColumn && row >= 0 && row < len(items) {
			return r.styles.StatusBadge(items[row].Badge).Margin(0, 1)
		}
		return r.styles.Normal.Padding(0, 1)
	})

	out := header + "\n" + t.String()
	if message != nil {
		out += "\n" + r.renderMessage(*message)
	}
	if more := len(r.rows) - r.offset - len(visible); more > 0 {
		out += "\n" + r.styles.Muted.Render(fmt.Sprintf("  %d more", more))
	}
	return out
}

// itemCells adds the relative time to the localised timestamp.
func (r *ScheduleTable) itemCells(row domain.Row) []string {
	cells := make([]string, domain.ScheduleColumns)
	copy(cells, row.Cells)
	if at := row.Item.ScheduledAt; !at.IsZero() {
		cells[2] = fmt.Sprintf("%s (%s)", cells[2], humanize.RelTime(at, r.now(), "ago", "from now"))
	}
	return cells
}

// renderMessage renders a placeholder or error row across the table width.
func (r *ScheduleTable) renderMessage(row domain.Row) string {
	text := strings.Join(row.Cells, " ")
	style := r.styles.Muted
	if row.Kind == domain.RowError {
		style = r.styles.Error
	}
	return style.Width(r.width).Align(lipgloss.Center).Render(text)
}

// visibleRows returns the rows that fit the height from the scroll offset.
func (r *ScheduleTable) visibleRows() []domain.Row {
	capacity := r.height - 5 // header line, borders and column headers
	if capacity < 1 {
		capacity = 1
	}
	end := r.offset + capacity
	if end > len(r.rows) {
		end = len(r.rows)
	}
	return r.rows[r.offset:end]
}

// ScrollUp moves the view one row up.
func (r *ScheduleTable) ScrollUp() {
	if r.offset > 0 {
		r.offset--
	}
}

// ScrollDown moves the view one row down.
func (r *ScheduleTable) ScrollDown() {
	if r.offset < len(r.rows)-1 {
		r.offset++
	}
}

// Offset returns the scroll offset.
func (r *ScheduleTable) Offset() int {
	return r.offset
}

// SetClock sets the time source for relative times.
func (r *ScheduleTable) SetClock(now func() time.Time) {
	r.now = now
}

// SetDimensions sets the component dimensions.
func (r *ScheduleTable) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of rows.
func (r *ScheduleTable) Count() int {
	return len(r.rows)
}
