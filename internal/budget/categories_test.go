package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwave-dev/budgetwave/internal/model"
)

func TestAddCategory(t *testing.T) {
	s := newState()
	cat, err := AddCategory(&s, " Pets ", "#ff00ff")
	require.NoError(t, err)

	assert.NotEmpty(t, cat.ID)
	assert.Equal(t, "Pets", cat.Name)
	assert.Equal(t, "#ff00ff", cat.Color)
	require.Len(t, s.Categories, 3)
	assert.Equal(t, cat, s.Categories[2])
	assert.True(t, s.Profile["Pets"].Equal(dec("5")), "new names are seeded with weight 5")
}

func TestAddCategory_DefaultColor(t *testing.T) {
	s := newState()
	cat, err := AddCategory(&s, "Pets", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultCategoryColor, cat.Color)
}

func TestAddCategory_KeepsExistingWeight(t *testing.T) {
	s := newState()
	_, err := AddCategory(&s, "Moradia", "")
	require.NoError(t, err)
	assert.True(t, s.Profile["Moradia"].Equal(dec("30")))
}

func TestAddCategory_EmptyName(t *testing.T) {
	s := newState()
	before := s.Clone()

	_, err := AddCategory(&s, "  ", "#000000")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, before, s)
}

func TestDeleteCategory(t *testing.T) {
	s := newState()
	s.Transactions = []model.Transaction{
		tx("t1", "2025-03-01", "c3", model.TypeExpense, "1200"),
	}

	assert.True(t, DeleteCategory(&s, "c3"))
	require.Len(t, s.Categories, 1)
	assert.Equal(t, "c7", s.Categories[0].ID)

	_, ok := s.Profile["Moradia"]
	assert.False(t, ok, "profile weight goes with the category")

	require.Len(t, s.Transactions, 1)
	assert.Equal(t, "c3", s.Transactions[0].CategoryID, "transactions keep the dangling id")

	_, found := FindCategory(s, "c3")
	assert.False(t, found)
}

func TestDeleteCategory_Unknown(t *testing.T) {
	s := newState()
	before := s.Clone()
	assert.False(t, DeleteCategory(&s, "nope"))
	assert.Equal(t, before, s)
}

func TestFindCategory(t *testing.T) {
	s := newState()
	c, ok := FindCategory(s, "c7")
	assert.True(t, ok)
	assert.Equal(t, "Mercado", c.Name)

	_, ok = FindCategory(s, "c99")
	assert.False(t, ok)
}

func TestIndex(t *testing.T) {
	x := NewIndex(newState().Categories)
	c, ok := x.Get("c3")
	assert.True(t, ok)
	assert.Equal(t, "Moradia", c.Name)

	_, ok = x.Get("c1")
	assert.False(t, ok)

	assert.Equal(t, "Mercado", x.Name("c7", "—"))
	assert.Equal(t, "—", x.Name("deleted", "—"))
}
