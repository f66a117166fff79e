package importer

import (
	"io"

	"github.com/budgetwave-dev/budgetwave/internal/ledger"
	"github.com/budgetwave-dev/budgetwave/internal/model"
)

// LedgerParser reads files written by "tx export", keeping ids and
// categories.
type LedgerParser struct{}

// Format returns the parser name.
func (p *LedgerParser) Format() string { return "ledger" }

// Parse reads a ledger CSV.
func (p *LedgerParser) Parse(r io.Reader) ([]model.Transaction, error) {
	return ledger.Read(r)
}
