// Package render draws budget views for the terminal with lipgloss.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/budgetwave-dev/budgetwave/internal/model"
	"github.com/budgetwave-dev/budgetwave/internal/report"
)

// Palette is the set of colors one theme draws with.
type Palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Accent  lipgloss.Color
	Income  lipgloss.Color
	Expense lipgloss.Color
	Balance lipgloss.Color
	Warn    lipgloss.Color
	BarFill lipgloss.Color // goal bar fill when the category has no color
}

// Light is the palette for the light theme.
var Light = Palette{
	Text:    lipgloss.Color("#0b1220"),
	Muted:   lipgloss.Color("#64748b"),
	Border:  lipgloss.Color("#cbd5e1"),
	Accent:  lipgloss.Color("#0d9488"),
	Income:  lipgloss.Color(report.ColorIncome),
	Expense: lipgloss.Color(report.ColorExpense),
	Balance: lipgloss.Color(report.ColorBalance),
	Warn:    lipgloss.Color(report.ColorNegativeBalance),
	BarFill: lipgloss.Color("#16a34a"),
}

// Dark is the palette for the dark theme.
var Dark = Palette{
	Text:    lipgloss.Color("#e5e7eb"),
	Muted:   lipgloss.Color("#94a3b8"),
	Border:  lipgloss.Color("#334155"),
	Accent:  lipgloss.Color("#2dd4bf"),
	Income:  lipgloss.Color(report.ColorIncome),
	Expense: lipgloss.Color(report.ColorExpense),
	Balance: lipgloss.Color(report.ColorBalance),
	Warn:    lipgloss.Color(report.ColorNegativeBalance),
	BarFill: lipgloss.Color("#16a34a"),
}

// PaletteFor picks the palette of a stored theme; anything but dark is light.
func PaletteFor(t model.Theme) Palette {
	if t == model.ThemeDark {
		return Dark
	}
	return Light
}

// Renderer holds the styles derived from one palette.
type Renderer struct {
	palette Palette

	title   lipgloss.Style
	header  lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	dim     lipgloss.Style
	income  lipgloss.Style
	expense lipgloss.Style
	balance lipgloss.Style
	warn    lipgloss.Style
}

// New builds a renderer for the given theme.
func New(theme model.Theme) *Renderer {
	p := PaletteFor(theme)
	return &Renderer{
		palette: p,
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Align(lipgloss.Center),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		value:   lipgloss.NewStyle().Foreground(p.Text),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
		dim:     lipgloss.NewStyle().Foreground(p.Border),
		income:  lipgloss.NewStyle().Bold(true).Foreground(p.Income),
		expense: lipgloss.NewStyle().Bold(true).Foreground(p.Expense),
		balance: lipgloss.NewStyle().Bold(true).Foreground(p.Balance),
		warn:    lipgloss.NewStyle().Bold(true).Foreground(p.Warn),
	}
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}
