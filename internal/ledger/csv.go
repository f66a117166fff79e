// Package ledger exports transactions as CSV.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwave-dev/budgetwave/internal/budget"
	"github.com/budgetwave-dev/budgetwave/internal/model"
)

// Header is the first row of an exported ledger.
const Header = "id,date,description,category_id,category,type,amount"

const (
	numFields  = 7
	colID      = 0
	colDate    = 1
	colDesc    = 2
	colCatID   = 3
	colCatName = 4
	colType    = 5
	colAmount  = 6
)

// Write exports every transaction of s, in state order, with a header row.
// Categories that no longer exist leave the name column empty.
func Write(w io.Writer, s model.AppState) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	idx := budget.NewIndex(s.Categories)
	for i, t := range s.Transactions {
		if err := cw.Write(MarshalRow(t, idx.Name(t.CategoryID, ""))); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read parses an exported ledger back into transactions. The category name
// column is informational and ignored.
func Read(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var txs []model.Transaction
	for i, rec := range records[1:] {
		t, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, t)
	}
	return txs, nil
}

// MarshalRow converts a transaction to a CSV row.
func MarshalRow(t model.Transaction, category string) []string {
	row := make([]string, numFields)
	row[colID] = t.ID
	row[colDate] = t.Date
	row[colDesc] = t.Desc
	row[colCatID] = t.CategoryID
	row[colCatName] = category
	row[colType] = string(t.Type)
	row[colAmount] = t.Amount.StringFixed(2)
	return row
}

// UnmarshalRow converts a CSV row to a transaction.
func UnmarshalRow(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	if _, err := time.Parse(model.DateFormat, record[colDate]); err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	typ := model.TransactionType(record[colType])
	if !typ.Valid() {
		return model.Transaction{}, fmt.Errorf("unknown type %q", record[colType])
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Transaction{
		ID:         record[colID],
		Date:       record[colDate],
		Desc:       record[colDesc],
		CategoryID: record[colCatID],
		Type:       typ,
		Amount:     amount,
	}, nil
}
