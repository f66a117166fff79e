package report

import (
	"sort"
	"strings"
	"time"

	"github.com/budgetwave-dev/budgetwave/internal/budget"
	"github.com/budgetwave-dev/budgetwave/internal/model"
	"github.com/budgetwave-dev/budgetwave/internal/money"
)

// TxRow is one line of the month's transaction table.
type TxRow struct {
	Transaction model.Transaction
	Date        string // DD/MM/YYYY
	Category    string
	TypeLabel   string
	Amount      string
}

// MonthTransactions lists now's month sorted by date, oldest first.
func MonthTransactions(s model.AppState, now time.Time) []TxRow {
	txs := budget.CurrentMonth(s, now)
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date < txs[j].Date })

	idx := budget.NewIndex(s.Categories)
	rows := make([]TxRow, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, TxRow{
			Transaction: t,
			Date:        DisplayDate(t.Date),
			Category:    idx.Name(t.CategoryID, Placeholder),
			TypeLabel:   TypeLabel(t.Type),
			Amount:      money.Format(t.Amount),
		})
	}
	return rows
}

// DisplayDate turns "2025-03-14" into "14/03/2025".
func DisplayDate(date string) string {
	parts := strings.Split(date, "-")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// TypeLabel returns the pt-BR label of a transaction type.
func TypeLabel(t model.TransactionType) string {
	if t == model.TypeExpense {
		return "Despesa"
	}
	return "Receita"
}
