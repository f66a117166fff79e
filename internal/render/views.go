package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwave-dev/budgetwave/internal/budget"
	"github.com/budgetwave-dev/budgetwave/internal/id"
	"github.com/budgetwave-dev/budgetwave/internal/model"
	"github.com/budgetwave-dev/budgetwave/internal/money"
	"github.com/budgetwave-dev/budgetwave/internal/report"
)

const (
	noTransactions = "Nenhum lançamento neste mês."
	noExpenses     = "Sem despesas neste mês."
	noTotals       = "Sem dados neste mês."
)

// Summary renders the month dashboard: KPI cards, the income/expense/balance
// donut and the reserve split of the salary.
func (r *Renderer) Summary(s model.AppState, now time.Time) string {
	totals := budget.MonthTotals(s, now)
	goals := budget.ComputeGoals(s)
	donut := report.KPIDonut(totals)

	var b strings.Builder
	b.WriteString(r.Title("BudgetWave • " + id.MonthKey(now)))
	b.WriteString("\n")
	b.WriteString(r.Cards(totals))
	b.WriteString("\n\n")
	b.WriteString(r.Chart("Receita × Despesa × Saldo", donut.Slices, noTotals))
	b.WriteString("\n")
	b.WriteString(r.Table(Table{
		Title:   "Salário",
		Headers: []string{"", "Valor"},
		Rows: [][]string{
			{"Salário", money.Format(s.Salary)},
			{"Reserva (10%)", money.Format(goals.Reserve)},
			{"Disponível para metas", money.Format(goals.Pool)},
		},
		Right: []bool{false, true},
	}))
	return b.String()
}

// Transactions renders the month's transaction table.
func (r *Renderer) Transactions(rows []report.TxRow) string {
	if len(rows) == 0 {
		return "  " + r.muted.Render(noTransactions) + "\n"
	}
	t := Table{
		Title:   "Lançamentos do mês",
		Headers: []string{"ID", "Data", "Descrição", "Categoria", "Tipo", "Valor"},
		Right:   []bool{false, false, false, false, false, true},
	}
	for _, row := range rows {
		amount := row.Amount
		if row.Transaction.Type == model.TypeExpense {
			amount = r.expense.Render(amount)
		} else {
			amount = r.income.Render(amount)
		}
		t.Rows = append(t.Rows, []string{
			row.Transaction.ID, row.Date, row.Transaction.Desc, row.Category, row.TypeLabel, amount,
		})
	}
	return r.Table(t)
}

// Goals renders the goal table with a bar per category.
func (r *Renderer) Goals(rows []report.GoalRow) string {
	t := Table{
		Title:   "Metas do mês",
		Headers: []string{"Categoria", "Peso", "Meta", "Gasto", "Progresso"},
		Right:   []bool{false, true, true, true, false},
	}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{
			swatch(row.Category.Color) + " " + row.Category.Name,
			row.Weight.String() + "%",
			money.Format(row.Goal),
			money.Format(row.Spent),
			r.Bar(row.Progress, row.Category.Color, BarWidth) + " " + r.goalLabel(row),
		})
	}
	return r.Table(t)
}

func (r *Renderer) goalLabel(row report.GoalRow) string {
	if row.Progress.Over() {
		return r.expense.Render(row.Label)
	}
	return r.muted.Render(row.Label)
}

// ExpensePie renders the per-category expense chart.
func (r *Renderer) ExpensePie(slices []report.Slice) string {
	return r.Chart("Despesas por categoria", slices, noExpenses)
}

// Categories renders the category list with color swatches.
func (r *Renderer) Categories(cats []model.Category) string {
	t := Table{
		Title:   "Categorias",
		Headers: []string{"ID", "Nome", "Cor"},
	}
	for _, c := range cats {
		t.Rows = append(t.Rows, []string{c.ID, c.Name, swatch(c.Color) + " " + c.Color})
	}
	return r.Table(t)
}

// Profile renders the profile weights with the goal each produces, followed
// by the weight sum.
func (r *Renderer) Profile(rows []report.ProfileRow, sum decimal.Decimal) string {
	t := Table{
		Title:   "Perfil de gastos",
		Headers: []string{"Categoria", "Peso", "Meta"},
		Right:   []bool{false, true, true},
	}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{row.Name, row.Weight.String() + "%", money.Format(row.Goal)})
	}
	t.Rows = append(t.Rows, Separator, []string{"Soma", sum.String() + "%", ""})

	out := r.Table(t)
	if !sum.Equal(budget.WeightScale) {
		out += fmt.Sprintf("  %s\n", r.warn.Render(fmt.Sprintf("A soma dos pesos é %s%%, não %s%%.", sum, budget.WeightScale)))
	}
	return out
}
