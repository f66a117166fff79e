package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwave-dev/budgetwave/internal/id"
	"github.com/budgetwave-dev/budgetwave/internal/model"
)

// Totals summarizes one month of cash flow.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal // Income - Expense
}

// CurrentMonth returns the transactions dated in now's month, in state order.
func CurrentMonth(s model.AppState, now time.Time) []model.Transaction {
	key := id.MonthKey(now)
	var txs []model.Transaction
	for _, t := range s.Transactions {
		if t.MonthKey() == key {
			txs = append(txs, t)
		}
	}
	return txs
}

// MonthTotals sums income and expense for now's month.
func MonthTotals(s model.AppState, now time.Time) Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range CurrentMonth(s, now) {
		switch t.Type {
		case model.TypeIncome:
			income = income.Add(t.Amount)
		case model.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// CategorySpend sums the current month's expenses by category id.
// Categories without expenses are absent; callers default them to zero.
func CategorySpend(s model.AppState, now time.Time) map[string]decimal.Decimal {
	spent := make(map[string]decimal.Decimal)
	for _, t := range CurrentMonth(s, now) {
		if t.Type != model.TypeExpense {
			continue
		}
		spent[t.CategoryID] = spent[t.CategoryID].Add(t.Amount)
	}
	return spent
}
