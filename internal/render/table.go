package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is a bordered text table.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Right   []bool // right-align column i when Right[i] is set
}

// Separator is a row that draws a horizontal rule instead of cells.
var Separator = []string{"---"}

// Title renders a centered title in a rounded box.
func (r *Renderer) Title(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.palette.Border).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)
	return box.Render(r.title.Render(title))
}

// Table renders t with rounded box-drawing borders. Widths are measured in
// terminal cells, so accented names line up.
func (r *Renderer) Table(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(r.header.Render(t.Title))
		b.WriteString("\n")
	}

	r.rule(&b, widths, "╭", "┬", "╮")
	if len(t.Headers) > 0 {
		b.WriteString(r.dim.Render("│"))
		for i := range widths {
			cell := ""
			if i < len(t.Headers) {
				cell = t.Headers[i]
			}
			b.WriteString(r.header.Render(" " + pad(cell, widths[i], false) + " "))
			b.WriteString(r.dim.Render("│"))
		}
		b.WriteString("\n")
		r.rule(&b, widths, "├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if isSeparator(row) {
			r.rule(&b, widths, "├", "┼", "┤")
			continue
		}
		b.WriteString(r.dim.Render("│"))
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			right := i < len(t.Right) && t.Right[i]
			b.WriteString(r.value.Render(" " + pad(cell, widths[i], right) + " "))
			b.WriteString(r.dim.Render("│"))
		}
		b.WriteString("\n")
	}
	r.rule(&b, widths, "╰", "┴", "╯")

	return b.String()
}

func (r *Renderer) rule(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(r.dim.Render(left))
	for i, w := range widths {
		b.WriteString(r.dim.Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(r.dim.Render(mid))
		}
	}
	b.WriteString(r.dim.Render(right))
	b.WriteString("\n")
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == Separator[0]
}

// pad fills s with spaces up to w terminal cells.
func pad(s string, w int, right bool) string {
	n := w - lipgloss.Width(s)
	if n <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}
