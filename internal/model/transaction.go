package model

import "github.com/shopspring/decimal"

// TransactionType carries the direction of a cash flow.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// DateFormat is the layout of Transaction.Date.
const DateFormat = "2006-01-02"

// Transaction is one income or expense line.
type Transaction struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"` // "YYYY-MM-DD", kept as entered
	Desc       string          `json:"desc"`
	CategoryID string          `json:"categoryId"` // may point at a deleted category
	Type       TransactionType `json:"type"`
	Amount     decimal.Decimal `json:"amount"` // never negative, sign comes from Type
}

// MonthKey returns the "YYYY-MM" prefix of the transaction date.
// "2025-03-14" -> "2025-03"
func (t Transaction) MonthKey() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}
