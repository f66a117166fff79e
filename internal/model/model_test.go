package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionMonthKey(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-03-14", "2025-03"},
		{"2025-12-01", "2025-12"},
		{"2025-1", "2025-1"},
		{"", ""},
	}
	for _, tt := range tests {
		tx := Transaction{Date: tt.date}
		assert.Equal(t, tt.want, tx.MonthKey(), "MonthKey(%q)", tt.date)
	}
}

func TestTransactionTypeValid(t *testing.T) {
	assert.True(t, TypeIncome.Valid())
	assert.True(t, TypeExpense.Valid())
	assert.False(t, TransactionType("transfer").Valid())
	assert.False(t, TransactionType("").Valid())
}

func TestAppStateClone(t *testing.T) {
	orig := AppState{
		Theme:        ThemeDark,
		Salary:       decimal.NewFromInt(5000),
		Categories:   []Category{{ID: "c1", Name: "Moradia"}},
		Profile:      map[string]decimal.Decimal{"Moradia": decimal.NewFromInt(30)},
		Transactions: []Transaction{{ID: "t1", Amount: decimal.NewFromInt(10)}},
	}

	cp := orig.Clone()
	cp.Categories[0].Name = "Casa"
	cp.Profile["Moradia"] = decimal.NewFromInt(1)
	cp.Transactions = append(cp.Transactions, Transaction{ID: "t2"})

	assert.Equal(t, "Moradia", orig.Categories[0].Name)
	assert.True(t, orig.Profile["Moradia"].Equal(decimal.NewFromInt(30)))
	assert.Len(t, orig.Transactions, 1)
	assert.Equal(t, ThemeDark, cp.Theme)
}
