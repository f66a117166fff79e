package store

import (
	"github.com/shopspring/decimal"

	"github.com/budgetwave-dev/budgetwave/internal/model"
)

// Default returns the starter document used on first run and whenever the
// stored one cannot be read.
func Default() model.AppState {
	return model.AppState{
		Theme:        model.ThemeLight,
		Salary:       decimal.Zero,
		Categories:   DefaultCategories(),
		Profile:      DefaultProfile(),
		Transactions: []model.Transaction{},
	}
}

// DefaultCategories returns the eight starter categories.
func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: "c1", Name: "Alimentação", Color: "#ef4444"},
		{ID: "c2", Name: "Transporte", Color: "#3b82f6"},
		{ID: "c3", Name: "Moradia", Color: "#10b981"},
		{ID: "c4", Name: "Lazer", Color: "#f59e0b"},
		{ID: "c5", Name: "Saúde", Color: "#22c55e"},
		{ID: "c6", Name: "Educação", Color: "#8b5cf6"},
		{ID: "c7", Name: "Mercado", Color: "#14b8a6"},
		{ID: "c8", Name: "Renda", Color: "#eab308"},
	}
}

// DefaultProfile returns the starter weights. They add up to 100, not 90;
// "Renda" has no weight since it is the income category.
func DefaultProfile() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"Alimentação": decimal.NewFromInt(18),
		"Mercado":     decimal.NewFromInt(15),
		"Moradia":     decimal.NewFromInt(30),
		"Transporte":  decimal.NewFromInt(10),
		"Saúde":       decimal.NewFromInt(8),
		"Educação":    decimal.NewFromInt(7),
		"Lazer":       decimal.NewFromInt(12),
	}
}
