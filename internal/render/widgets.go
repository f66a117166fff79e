package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/budgetwave-dev/budgetwave/internal/budget"
	"github.com/budgetwave-dev/budgetwave/internal/money"
	"github.com/budgetwave-dev/budgetwave/internal/report"
)

// BarWidth is the number of cells in a goal bar.
const BarWidth = 20

var hundred = decimal.NewFromInt(100)

// Cards renders the Receita, Despesa and Saldo cards side by side. A negative
// balance is drawn in the warning color.
func (r *Renderer) Cards(t budget.Totals) string {
	balanceStyle := r.balance
	if t.Balance.IsNegative() {
		balanceStyle = r.warn
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		r.card("Receita", money.Format(t.Income), r.income),
		r.card("Despesa", money.Format(t.Expense), r.expense),
		r.card("Saldo", money.Format(t.Balance), balanceStyle),
	)
}

func (r *Renderer) card(label, value string, valueStyle lipgloss.Style) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.palette.Border).
		Width(18).
		Padding(0, 1)
	return box.Render(r.muted.Render(label) + "\n" + valueStyle.Render(value))
}

// Bar draws a goal bar of width cells. The fill uses color (or the palette's
// default fill); spending beyond the goal adds a red segment scaled to the
// excess, capped at a full bar.
func (r *Renderer) Bar(p budget.Progress, color string, width int) string {
	filled := cells(p.Pct, width)
	fill := r.palette.BarFill
	if color != "" {
		fill = lipgloss.Color(color)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled)))
	b.WriteString(r.dim.Render(strings.Repeat("░", width-filled)))
	if p.Over() {
		over := max(1, cells(decimal.Min(hundred, p.OverPct), width))
		b.WriteString(r.expense.Render(strings.Repeat("▓", over)))
	}
	return b.String()
}

func cells(pct decimal.Decimal, width int) int {
	n := int(pct.Mul(decimal.NewFromInt(int64(width))).Div(hundred).Round(0).IntPart())
	return min(max(n, 0), width)
}

// Chart renders chart slices as a legend with a color swatch, value and
// share per line. empty is printed when there are no slices.
func (r *Renderer) Chart(title string, slices []report.Slice, empty string) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(r.header.Render(title))
	b.WriteString("\n")

	if len(slices) == 0 {
		b.WriteString("  ")
		b.WriteString(r.muted.Render(empty))
		b.WriteString("\n")
		return b.String()
	}

	labelW, valueW := 0, 0
	for _, s := range slices {
		labelW = max(labelW, lipgloss.Width(s.Label))
		valueW = max(valueW, lipgloss.Width(money.Format(s.Value)))
	}
	for _, s := range slices {
		fmt.Fprintf(&b, "  %s %s  %s  %s\n",
			swatch(s.Color),
			r.value.Render(pad(s.Label, labelW, false)),
			r.value.Render(pad(money.Format(s.Value), valueW, true)),
			r.muted.Render(pad(s.Percent.String()+"%", 4, true)),
		)
	}
	return b.String()
}
