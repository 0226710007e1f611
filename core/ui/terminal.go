// Package ui - Terminal user interface
// CLI output with headers, tables, and colors.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out, noColor: noColor}
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Line writes text verbatim followed by a newline
func (w *Writer) Line(text string) {
	fmt.Fprintln(w.out, text)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Line(w.color(Bold+Cyan, title))
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Line(w.color(Bold, "▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Line(w.color(Green, "✓ ") + fmt.Sprintf(format, args...))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Line(w.color(Yellow, "⚠ ") + fmt.Sprintf(format, args...))
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	w.Line(w.color(Red, "✗ ") + fmt.Sprintf(format, args...))
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if len(row[i]) > t.widths[i] {
			t.widths[i] = len(row[i])
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	t.w.Line(t.w.color(Bold, t.format(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Line(strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Line(t.format(row))
	}
}

func (t *Table) format(cells []string) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = fmt.Sprintf("%-*s", t.widths[i], c)
	}
	return strings.TrimRight(strings.Join(padded, " │ "), " ")
}

// PurchaseSummary renders the total cost of a shopping list
type PurchaseSummary struct {
	w        *Writer
	Total    string
	Lines    int
	Unpriced int
}

// NewPurchaseSummary creates a purchase summary
func (w *Writer) NewPurchaseSummary() *PurchaseSummary {
	return &PurchaseSummary{w: w}
}

// Render prints the purchase summary
func (s *PurchaseSummary) Render() {
	s.w.Line(s.w.color(Bold, "╭─────────────────────────────────────╮"))
	s.w.Line(s.w.color(Bold, "│") + s.w.color(Green, fmt.Sprintf("  Total cost: %-23s", s.Total)) + s.w.color(Bold, "│"))
	s.w.Line(s.w.color(Bold, "╰─────────────────────────────────────╯"))
	s.w.Line(s.w.color(Dim, fmt.Sprintf("  Lines: %d", s.Lines)))
	if s.Unpriced > 0 {
		s.w.Warning("%d lines have no price", s.Unpriced)
	}
}
