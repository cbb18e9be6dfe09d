package cli

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/postador-cli/internal/core/domain"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	statusColors = map[domain.ScheduleStatus]lipgloss.Color{
		domain.StatusScheduled:  lipgloss.Color("12"),
		domain.StatusProcessing: lipgloss.Color("11"),
		domain.StatusPosted:     lipgloss.Color("10"),
		domain.StatusFailed:     lipgloss.Color("9"),
	}
)

// tableHeaders adds a relative time column to the dashboard's columns.
var tableHeaders = []string{
	domain.ScheduleHeaders[0],
	domain.ScheduleHeaders[1],
	domain.ScheduleHeaders[2],
	"When",
	domain.ScheduleHeaders[3],
}

const statusColumn = 4

// renderRows renders dashboard rows as a table. Message rows are printed
// on their own below the headers.
func renderRows(rows []domain.Row, now time.Time) string {
	var (
		cells    [][]string
		statuses []domain.ScheduleStatus
		message  string
		kind     domain.RowKind
	)
	for _, row := range rows {
		if row.Kind != domain.RowItem {
			message = row.Cells[0]
			kind = row.Kind
			continue
		}
		cells = append(cells, itemCells(row, now))
		statuses = append(statuses, row.Item.Status)
	}

	out := newTable(cells, statuses).String()
	switch {
	case message == "":
	case kind == domain.RowError:
		out += "\n" + errorStyle.Render(message)
	default:
		out += "\n" + mutedStyle.Render(message)
	}
	return out
}

func itemCells(row domain.Row, now time.Time) []string {
	cells := make([]string, 0, len(tableHeaders))
	cells = append(cells, row.Cells[:3]...)
	cells = append(cells, relativeTime(row.Item.ScheduledAt, now), row.Cells[3])
	return cells
}

func newTable(cells [][]string, statuses []domain.ScheduleStatus) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(tableHeaders...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == statusColumn && row >= 0 && row < len(statuses) {
				if c, ok := statusColors[statuses[row]]; ok {
					return cellStyle.Foreground(c)
				}
			}
			return cellStyle
		})
}

// relativeTime is empty for unknown times.
func relativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
