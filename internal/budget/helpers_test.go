package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwave-dev/budgetwave/internal/model"
)

var now = time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tx(txID, date, catID string, typ model.TransactionType, amount string) model.Transaction {
	return model.Transaction{
		ID:         txID,
		Date:       date,
		Desc:       "tx " + txID,
		CategoryID: catID,
		Type:       typ,
		Amount:     dec(amount),
	}
}

func newState() model.AppState {
	return model.AppState{
		Theme:  model.ThemeLight,
		Salary: dec("5000"),
		Categories: []model.Category{
			{ID: "c3", Name: "Moradia", Color: "#10b981"},
			{ID: "c7", Name: "Mercado", Color: "#14b8a6"},
		},
		Profile: map[string]decimal.Decimal{
			"Moradia": dec("30"),
			"Mercado": dec("15"),
		},
	}
}
