package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/caskup/caskup/pkg/utils"
)

// Column represents a single table column with its header and current width.
//
// Fields:
//   - Header: The display text for this column's header
//   - Width: The current display width for this column in characters
//   - hidden: Whether this column should be excluded from output
type Column struct {
	Header string
	Width  int
	hidden bool
}

// Table provides a flexible table formatter with dynamic column widths.
// It handles Unicode-aware width calculations and consistent formatting.
//
// Fields:
//   - columns: List of columns with their headers, widths, and visibility state
//   - separator: String used to separate columns in formatted output (default: "  ")
type Table struct {
	columns   []Column
	separator string
}

// NewTable creates a new table formatter and returns a pointer to it.
//
// The table is initialized with an empty column list and a default separator
// of two spaces ("  ").
//
// Returns:
//   - *Table: A new table instance ready for column configuration
func NewTable() *Table {
	return &Table{
		columns:   make([]Column, 0),
		separator: "  ",
	}
}

// WithSeparator sets a custom column separator and returns the table.
//
// Parameters:
//   - sep: The string to use between columns (e.g., " | " for pipe-separated output)
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) WithSeparator(sep string) *Table {
	t.separator = sep
	return t
}

// AddColumn adds a column with the given header and returns the table.
//
// The initial width is set to the display width of the header using
// Unicode-aware width calculation.
//
// Parameters:
//   - header: The text to display in the column header
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumn(header string) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
		hidden: false,
	})
	return t
}

// AddColumnWithMinWidth adds a column with a minimum width guarantee and returns the table.
//
// The column width will be set to the larger of minWidth or the display width
// of the header. This keeps version columns from collapsing around short values.
//
// Parameters:
//   - header: The text to display in the column header
//   - minWidth: Minimum width in characters for this column
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumnWithMinWidth(header string, minWidth int) *Table {
	width := utils.DisplayWidth(header)
	if minWidth > width {
		width = minWidth
	}
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  width,
		hidden: false,
	})
	return t
}

// AddConditionalColumn adds a column with configurable visibility and returns the table.
//
// This is used for columns that should only appear when the data carries a
// signal, such as the CHANGE column that stays hidden when nothing changed.
//
// Parameters:
//   - header: The text to display in the column header
//   - visible: Whether the column should be initially visible
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddConditionalColumn(header string, visible bool) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
		hidden: !visible,
	})
	return t
}

// UpdateWidths updates column widths based on a row of values and returns the table.
//
// It performs the following operations:
//   - Step 1: Calculates display width for each value using Unicode-aware measurement
//   - Step 2: Compares each value's width with the current column width
//   - Step 3: Keeps the larger width to ensure all content fits
//
// Parameters:
//   - values: Variable number of strings representing a data row
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) UpdateWidths(values ...string) *Table {
	for i, val := range values {
		if i < len(t.columns) {
			width := utils.DisplayWidth(val)
			if width > t.columns[i].Width {
				t.columns[i].Width = width
			}
		}
	}
	return t
}

// HeaderRow returns the formatted header row string.
//
// Hidden columns are excluded from the output. Each header is padded to match
// its column's width.
//
// Returns:
//   - string: Formatted header row with columns separated by the separator
func (t *Table) HeaderRow() string {
	var parts []string
	for _, col := range t.columns {
		if !col.hidden {
			parts = append(parts, utils.ToWidth(col.Header, col.Width))
		}
	}
	return strings.Join(parts, t.separator)
}

// SeparatorRow returns a separator row with dashes matching column widths.
//
// Hidden columns are excluded. Each separator contains as many dashes as the
// column's width to create a visual divider between header and data rows.
//
// Returns:
//   - string: Formatted separator row with dash sequences separated by the separator
func (t *Table) SeparatorRow() string {
	var parts []string
	for _, col := range t.columns {
		if !col.hidden {
			parts = append(parts, strings.Repeat("-", col.Width))
		}
	}
	return strings.Join(parts, t.separator)
}

// FormatRow formats a data row with proper padding for each column and returns the formatted string.
//
// Values are padded to match their respective column widths. Hidden columns are
// skipped, but their corresponding values should still be included in the input.
// Missing values (when fewer values than columns are provided) are treated as empty strings.
//
// Parameters:
//   - values: Variable number of strings representing the row data, one per column
//
// Returns:
//   - string: Formatted row with values separated by the separator
func (t *Table) FormatRow(values ...string) string {
	var parts []string
	for i, col := range t.columns {
		if !col.hidden {
			val := ""
			if i < len(values) {
				val = values[i]
			}
			parts = append(parts, utils.ToWidth(val, col.Width))
		}
	}
	return strings.Join(parts, t.separator)
}

// ColumnCount returns the total number of columns including hidden ones.
//
// Returns:
//   - int: Total count of all columns (both visible and hidden)
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// VisibleColumnCount returns the number of visible columns.
//
// Returns:
//   - int: Count of columns that are not hidden
func (t *Table) VisibleColumnCount() int {
	count := 0
	for _, col := range t.columns {
		if !col.hidden {
			count++
		}
	}
	return count
}

// GetColumnWidth returns the width of a column by index.
//
// Parameters:
//   - index: Zero-based index of the column
//
// Returns:
//   - int: The column's width in characters; returns 0 if index is out of bounds
func (t *Table) GetColumnWidth(index int) int {
	if index >= 0 && index < len(t.columns) {
		return t.columns[index].Width
	}
	return 0
}

// Fprint outputs the table header and separator to the given writer.
//
// Parameters:
//   - w: The writer to output to (e.g., os.Stdout, os.Stderr, or a buffer)
func (t *Table) Fprint(w io.Writer) {
	_, _ = fmt.Fprintln(w, t.HeaderRow())
	_, _ = fmt.Fprintln(w, t.SeparatorRow())
}

// ShouldShowChangeColumn determines if a CHANGE column should be displayed.
//
// The column only carries a signal when at least one package actually moved,
// so a report where every entry is unchanged hides it entirely.
//
// Parameters:
//   - changes: Slice of change labels, one per row
//
// Returns:
//   - bool: true if at least one label reports a change; false otherwise
func ShouldShowChangeColumn(changes []string) bool {
	for _, change := range changes {
		if change != "" && change != utils.ChangeNone {
			return true
		}
	}
	return false
}
