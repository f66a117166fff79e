package importer

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwave-dev/budgetwave/internal/ledger"
	"github.com/budgetwave-dev/budgetwave/internal/model"
	"github.com/budgetwave-dev/budgetwave/internal/store"
)

const nucontaFixture = "../../testdata/nuconta.csv"

func TestNuContaParser_Parse(t *testing.T) {
	txs, err := DefaultRegistry().ParseFile("nuconta", nucontaFixture)
	require.NoError(t, err)
	require.Len(t, txs, 4, "zero-value line is dropped")

	// Salary credit
	assert.Equal(t, "2025-03-01", txs[0].Date)
	assert.Equal(t, model.TypeIncome, txs[0].Type)
	assert.Equal(t, "5000.00", txs[0].Amount.StringFixed(2))
	assert.Equal(t, "67c2a1f01d2e4b7a9c112f4b8e6d0a01", txs[0].ID)
	assert.Empty(t, txs[0].CategoryID)

	// Rent via Pix
	assert.Equal(t, model.TypeExpense, txs[1].Type)
	assert.Equal(t, "1200.00", txs[1].Amount.StringFixed(2))
	assert.Equal(t, "Transferência enviada pelo Pix - Imobiliária Sol", txs[1].Desc)

	// Quoted description with a comma
	assert.Equal(t, "Compra no débito - Metrô, linha 4", txs[3].Desc)
	assert.Equal(t, "2025-03-10", txs[3].Date)
}

func TestNuContaParser_EmptyFile(t *testing.T) {
	p := &NuContaParser{}
	txs, err := p.Parse(strings.NewReader("Data,Valor,Identificador,Descrição\n"))
	require.NoError(t, err)
	assert.Nil(t, txs)
}

func TestNuContaParser_BadDate(t *testing.T) {
	in := "Data,Valor,Identificador,Descrição\n2025-03-01,-1.00,x,desc\n"
	_, err := (&NuContaParser{}).Parse(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "parsing date")
}

func TestNuContaParser_BadAmount(t *testing.T) {
	in := "Data,Valor,Identificador,Descrição\n01/03/2025,\"-1,00\",x,desc\n"
	_, err := (&NuContaParser{}).Parse(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestLedgerParser_ReadsExport(t *testing.T) {
	s := store.Default()
	s.Transactions = []model.Transaction{
		{ID: "t1", Date: "2025-03-03", Desc: "Aluguel", CategoryID: "c3", Type: model.TypeExpense, Amount: decimal.RequireFromString("1200")},
	}
	var buf bytes.Buffer
	require.NoError(t, ledger.Write(&buf, s))

	txs, err := (&LedgerParser{}).Parse(&buf)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "t1", txs[0].ID)
	assert.Equal(t, "c3", txs[0].CategoryID)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("NuConta"), "lookup is case-insensitive")
	assert.Nil(t, r.Get("chase"))
	assert.Equal(t, []string{"ledger", "nuconta"}, r.Formats())

	assert.Panics(t, func() { r.Register(&LedgerParser{}) })
}

func TestRegistry_ParseFileErrors(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.ParseFile("ofx", nucontaFixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "known: ledger, nuconta")

	_, err = r.ParseFile("nuconta", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening")
}
