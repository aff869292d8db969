package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alignment specifies column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column defines a table column with name and minimum width.
type Column struct {
	Name  string
	Width int
	Align Alignment
}

// Table renders aligned rows; column widths grow to fit the widest cell.
type Table struct {
	columns []Column
	rows    [][]string
	indent  string
}

// NewTable creates a new table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns, indent: "  "}
}

// AddRow adds a row of values to the table.
func (t *Table) AddRow(values ...string) *Table {
	for len(values) < len(t.columns) {
		values = append(values, "")
	}
	t.rows = append(t.rows, values)
	return t
}

// Render returns the formatted table string.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = max(col.Width, lipgloss.Width(col.Name))
		for _, row := range t.rows {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var sb strings.Builder
	sb.WriteString(t.indent)
	for i, col := range t.columns {
		sb.WriteString(pad(Bold.Render(col.Name), widths[i], col.Align))
		if i < len(t.columns)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("\n")

	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(t.indent)
	sb.WriteString(Dim.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")

	for _, row := range t.rows {
		sb.WriteString(t.indent)
		for i, col := range t.columns {
			sb.WriteString(pad(row[i], widths[i], col.Align))
			if i < len(t.columns)-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// pad pads text to width, accounting for ANSI escape sequences.
func pad(text string, width int, align Alignment) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	if align == AlignRight {
		return strings.Repeat(" ", width-n) + text
	}
	return text + strings.Repeat(" ", width-n)
}
