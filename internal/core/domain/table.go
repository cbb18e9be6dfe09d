package domain

// ScheduleColumns is the number of columns of the schedule table.
const ScheduleColumns = 4

// ScheduleHeaders are the schedule table column headers.
var ScheduleHeaders = [ScheduleColumns]string{"ID", "Title", "Scheduled for", "Status"}

// RowKind distinguishes item rows from full-width message rows.
type RowKind int

const (
	// RowItem renders one scheduled item.
	RowItem RowKind = iota
	// RowPlaceholder is the explicit "no items" row of a loaded, empty list.
	RowPlaceholder
	// RowError explains a failed refresh.
	RowError
)

// String returns the string representation of the row kind.
func (k RowKind) String() string {
	switch k {
	case RowItem:
		return "item"
	case RowPlaceholder:
		return "placeholder"
	case RowError:
		return "error"
	default:
		return "unknown"
	}
}

// Row is one rendered line of the schedule table.
type Row struct {
	Kind RowKind

	// Cells holds one value per column for item rows, or the single
	// message of a placeholder or error row.
	Cells []string

	// Span is the number of columns the row covers.
	Span int

	// Badge is the status badge key of item rows.
	Badge string

	// Item is the source of an item row. Zero for message rows.
	Item ScheduledItem
}

// MessageRow builds a placeholder or error row spanning every column.
func MessageRow(kind RowKind, message string) Row {
	return Row{
		Kind:  kind,
		Cells: []string{message},
		Span:  ScheduleColumns,
	}
}
