package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwave-dev/budgetwave/internal/budget"
	"github.com/budgetwave-dev/budgetwave/internal/model"
	"github.com/budgetwave-dev/budgetwave/internal/money"
)

// GoalRow is one category in the goal table.
type GoalRow struct {
	Category model.Category
	Weight   decimal.Decimal
	Goal     decimal.Decimal
	Spent    decimal.Decimal
	Progress budget.Progress
	Label    string
}

// GoalRows builds the goal table for every category except the income one,
// sorted by name in pt-BR order. Missing weights, goals and spend count as zero.
func GoalRows(s model.AppState, now time.Time) []GoalRow {
	goals := budget.ComputeGoals(s)
	spent := budget.CategorySpend(s, now)

	cats := make([]model.Category, 0, len(s.Categories))
	for _, c := range s.Categories {
		if c.Name != IncomeCategoryName {
			cats = append(cats, c)
		}
	}
	col := newCollator()
	sort.SliceStable(cats, func(i, j int) bool {
		return col.CompareString(cats[i].Name, cats[j].Name) < 0
	})

	rows := make([]GoalRow, 0, len(cats))
	for _, c := range cats {
		g := goals.ByName[c.Name]
		sp := spent[c.ID]
		p := budget.GoalProgress(g, sp)
		rows = append(rows, GoalRow{
			Category: c,
			Weight:   s.Profile[c.Name],
			Goal:     g,
			Spent:    sp,
			Progress: p,
			Label:    GoalLabel(g, sp, p),
		})
	}
	return rows
}

// GoalLabel describes progress like "R$ 1.200,00 de R$ 1.000,00 • excedeu R$ 200,00 (120%)".
func GoalLabel(goal, spent decimal.Decimal, p budget.Progress) string {
	if p.Over() {
		return fmt.Sprintf("%s de %s • excedeu %s (%s%%)",
			money.Format(spent), money.Format(goal), money.Format(p.Diff), p.Ratio.Round(0))
	}
	return fmt.Sprintf("%s de %s • falta %s (%s%%)",
		money.Format(spent), money.Format(goal), money.Format(p.Diff), p.Pct.Round(0))
}

// ProfileRow is one weight with the goal it currently yields.
type ProfileRow struct {
	Name   string
	Weight decimal.Decimal
	Goal   decimal.Decimal
}

// Profile lists the profile weights in pt-BR name order together with their
// goals, and returns the weight sum.
func Profile(s model.AppState) ([]ProfileRow, decimal.Decimal) {
	goals := budget.ComputeGoals(s)

	names := make([]string, 0, len(s.Profile))
	for name := range s.Profile {
		names = append(names, name)
	}
	col := newCollator()
	sort.Slice(names, func(i, j int) bool {
		return col.CompareString(names[i], names[j]) < 0
	})

	rows := make([]ProfileRow, len(names))
	for i, name := range names {
		rows[i] = ProfileRow{Name: name, Weight: s.Profile[name], Goal: goals.ByName[name]}
	}
	return rows, budget.ProfileSum(s.Profile)
}
