package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwave-dev/budgetwave/internal/model"
)

// NuContaParser parses Nubank checking account CSV exports:
//
//	Data,Valor,Identificador,Descrição
//	03/03/2025,-1200.00,67c5f0a1-...,Transferência enviada pelo Pix - Imobiliária
//
// Outflows become expenses and inflows income. Zero-value lines are dropped.
type NuContaParser struct{}

const (
	nucontaDateFormat = "02/01/2006"
	nucontaNumFields  = 4
	nucontaColDate    = 0
	nucontaColAmount  = 1
	nucontaColID      = 2
	nucontaColDesc    = 3
)

// Format returns the parser name.
func (p *NuContaParser) Format() string { return "nuconta" }

// Parse reads a NuConta CSV.
func (p *NuContaParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = nucontaNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading nuconta CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var txs []model.Transaction
	for i, rec := range records[1:] {
		t, ok, err := parseNuContaRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if ok {
			txs = append(txs, t)
		}
	}
	return txs, nil
}

func parseNuContaRow(rec []string) (model.Transaction, bool, error) {
	date, err := time.Parse(nucontaDateFormat, strings.TrimSpace(rec[nucontaColDate]))
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("parsing date %q: %w", rec[nucontaColDate], err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rec[nucontaColAmount]))
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("parsing amount %q: %w", rec[nucontaColAmount], err)
	}
	if amount.IsZero() {
		return model.Transaction{}, false, nil
	}

	typ := model.TypeIncome
	if amount.IsNegative() {
		typ = model.TypeExpense
	}

	return model.Transaction{
		ID:     strings.ReplaceAll(strings.TrimSpace(rec[nucontaColID]), "-", ""),
		Date:   date.Format(model.DateFormat),
		Desc:   strings.TrimSpace(rec[nucontaColDesc]),
		Type:   typ,
		Amount: amount.Abs(),
	}, true, nil
}
