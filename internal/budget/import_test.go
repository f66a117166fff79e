package budget

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwave-dev/budgetwave/internal/model"
)

func TestImportTransactions(t *testing.T) {
	s := newState()
	in := []model.Transaction{
		tx("abc", "2025-03-01", "", model.TypeIncome, "5000"),
		tx("", "2025-03-02", "c3", model.TypeExpense, "1200"),
	}

	res, err := ImportTransactions(&s, in, "c8")
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Added: 2}, res)
	require.Len(t, s.Transactions, 2)

	assert.Equal(t, "abc", s.Transactions[0].ID)
	assert.Equal(t, "c8", s.Transactions[0].CategoryID, "default category fills the gap")
	assert.Equal(t, "c3", s.Transactions[1].CategoryID)
	assert.Len(t, s.Transactions[1].ID, 32)
}

func TestImportTransactions_SkipsKnownIDs(t *testing.T) {
	s := newState()
	s.Transactions = []model.Transaction{tx("abc", "2025-03-01", "c8", model.TypeIncome, "5000")}

	in := []model.Transaction{
		tx("abc", "2025-03-01", "c8", model.TypeIncome, "5000"),
		tx("def", "2025-03-04", "c7", model.TypeExpense, "80"),
		tx("def", "2025-03-04", "c7", model.TypeExpense, "80"),
	}
	res, err := ImportTransactions(&s, in, "")
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Added: 1, Skipped: 2}, res)
	assert.Len(t, s.Transactions, 2)
}

func TestImportTransactions_InvalidLeavesStateAlone(t *testing.T) {
	s := newState()
	in := []model.Transaction{
		tx("ok", "2025-03-01", "c7", model.TypeExpense, "10"),
		tx("bad", "03/01/2025", "", model.TypeExpense, "0"),
	}

	_, err := ImportTransactions(&s, in, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("transactions[1].date"))
	assert.True(t, verr.Has("transactions[1].categoryId"))
	assert.True(t, verr.Has("transactions[1].amount"))
	assert.False(t, verr.Has("transactions[0].amount"))
	assert.Empty(t, s.Transactions)
}
