package budget

import (
	"strings"
	"time"

	"github.com/budgetwave-dev/budgetwave/internal/id"
	"github.com/budgetwave-dev/budgetwave/internal/model"
	"github.com/budgetwave-dev/budgetwave/internal/money"
)

// TransactionInput is the raw form input for a new transaction.
type TransactionInput struct {
	Date       string                // "YYYY-MM-DD"; empty means today
	Desc       string
	CategoryID string                // not checked against the category list
	Type       model.TransactionType // empty means expense
	Amount     string                // decimal-comma text, e.g. "1.234,56"
}

// AddTransaction validates in and appends a new transaction to s.
// On a validation failure s is left unchanged and every bad field is reported.
func AddTransaction(s *model.AppState, in TransactionInput, now time.Time) (model.Transaction, error) {
	v := validation{op: "add transaction"}

	desc := strings.TrimSpace(in.Desc)
	if desc == "" {
		v.add("desc", "required")
	}

	if in.CategoryID == "" {
		v.add("categoryId", "required")
	}

	// Zero is rejected the same as a missing amount.
	amount := money.Parse(in.Amount)
	if !amount.IsPositive() {
		v.add("amount", "must be greater than zero")
	}

	txType := in.Type
	if txType == "" {
		txType = model.TypeExpense
	}
	if !txType.Valid() {
		v.add("type", "must be income or expense")
	}

	date := in.Date
	if date == "" {
		date = now.Format(model.DateFormat)
	} else if _, err := time.Parse(model.DateFormat, date); err != nil {
		v.add("date", "must be YYYY-MM-DD")
	}

	if err := v.err(); err != nil {
		return model.Transaction{}, err
	}

	tx := model.Transaction{
		ID:         id.New(),
		Date:       date,
		Desc:       desc,
		CategoryID: in.CategoryID,
		Type:       txType,
		Amount:     amount,
	}
	s.Transactions = append(s.Transactions, tx)
	return tx, nil
}

// DeleteTransaction removes the transaction with txID. An unknown id is a
// no-op; the return value reports whether anything was removed.
func DeleteTransaction(s *model.AppState, txID string) bool {
	for i, t := range s.Transactions {
		if t.ID == txID {
			s.Transactions = append(s.Transactions[:i:i], s.Transactions[i+1:]...)
			return true
		}
	}
	return false
}
