package main

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ColumnData represents data for a single column
type ColumnData struct {
	Header   string
	Values   []string
	MinWidth int
}

// TableFormatter handles dynamic column formatting
type TableFormatter struct {
	Columns []ColumnData
	Padding int
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(padding int) *TableFormatter {
	return &TableFormatter{
		Columns: make([]ColumnData, 0),
		Padding: padding,
	}
}

// AddColumn adds a column to the table
func (tf *TableFormatter) AddColumn(header string, values []string, minWidth int) {
	tf.Columns = append(tf.Columns, ColumnData{
		Header:   header,
		Values:   values,
		MinWidth: minWidth,
	})
}

// calculateColumnWidths determines the optimal width for each column
func (tf *TableFormatter) calculateColumnWidths() []int {
	widths := make([]int, len(tf.Columns))

	for i, col := range tf.Columns {
		// Start with minimum width or header width
		width := col.MinWidth
		if headerWidth := utf8.RuneCountInString(col.Header); headerWidth > width {
			width = headerWidth
		}

		// Check all values in the column, ignoring ANSI color codes
		for _, value := range col.Values {
			if valueWidth := utf8.RuneCountInString(stripAnsiCodes(value)); valueWidth > width {
				width = valueWidth
			}
		}

		widths[i] = width
	}

	return widths
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// stripAnsiCodes removes ANSI color codes from a string for accurate width calculation
func stripAnsiCodes(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// FormatHeader formats and returns the table header
func (tf *TableFormatter) FormatHeader() string {
	if len(tf.Columns) == 0 {
		return ""
	}

	widths := tf.calculateColumnWidths()
	var header strings.Builder
	var separator strings.Builder

	for i, col := range tf.Columns {
		format := fmt.Sprintf("%%-%ds", widths[i])
		header.WriteString(fmt.Sprintf(format, col.Header))
		separator.WriteString(strings.Repeat("-", widths[i]))

		// Add padding between columns (except last)
		if i < len(tf.Columns)-1 {
			header.WriteString(strings.Repeat(" ", tf.Padding))
			separator.WriteString(strings.Repeat(" ", tf.Padding))
		}
	}

	return header.String() + "\n" + separator.String()
}

// FormatRow formats a single row of data
func (tf *TableFormatter) FormatRow(rowIndex int) string {
	if len(tf.Columns) == 0 || rowIndex < 0 {
		return ""
	}

	// Check if row index is valid for all columns
	for _, col := range tf.Columns {
		if rowIndex >= len(col.Values) {
			return ""
		}
	}

	widths := tf.calculateColumnWidths()
	var row strings.Builder

	for i, col := range tf.Columns {
		value := col.Values[rowIndex]
		// Pad based on the visible width, so colored values line up
		visible := utf8.RuneCountInString(stripAnsiCodes(value))
		row.WriteString(value)
		if pad := widths[i] - visible; pad > 0 {
			row.WriteString(strings.Repeat(" ", pad))
		}

		if i < len(tf.Columns)-1 {
			row.WriteString(strings.Repeat(" ", tf.Padding))
		}
	}

	return strings.TrimRight(row.String(), " ")
}

// RowCount returns the number of rows in the table
func (tf *TableFormatter) RowCount() int {
	if len(tf.Columns) == 0 {
		return 0
	}
	count := len(tf.Columns[0].Values)
	for _, col := range tf.Columns[1:] {
		if len(col.Values) < count {
			count = len(col.Values)
		}
	}
	return count
}

// Format renders the full table including header, separator and all rows
func (tf *TableFormatter) Format() string {
	if len(tf.Columns) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(tf.FormatHeader())
	b.WriteString("\n")
	for i := 0; i < tf.RowCount(); i++ {
		b.WriteString(tf.FormatRow(i))
		b.WriteString("\n")
	}
	return b.String()
}
