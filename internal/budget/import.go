package budget

import (
	"fmt"
	"strings"
	"time"

	"github.com/budgetwave-dev/budgetwave/internal/id"
	"github.com/budgetwave-dev/budgetwave/internal/model"
)

// ImportResult counts what ImportTransactions did.
type ImportResult struct {
	Added   int
	Skipped int // ids already present in the state or earlier in the batch
}

// ImportTransactions appends parsed statement lines to s. Lines without a
// category get defaultCategory; lines without an id get a fresh one. A line
// whose id is already known is skipped. All lines are validated before any
// is added, so on error s is unchanged.
func ImportTransactions(s *model.AppState, txs []model.Transaction, defaultCategory string) (ImportResult, error) {
	v := validation{op: "import transactions"}

	seen := make(map[string]bool, len(s.Transactions)+len(txs))
	for _, t := range s.Transactions {
		seen[t.ID] = true
	}

	var res ImportResult
	var batch []model.Transaction
	for i, t := range txs {
		field := func(name string) string { return fmt.Sprintf("transactions[%d].%s", i, name) }

		if t.CategoryID == "" {
			t.CategoryID = defaultCategory
		}
		t.Desc = strings.TrimSpace(t.Desc)

		if t.Desc == "" {
			v.add(field("desc"), "required")
		}
		if t.CategoryID == "" {
			v.add(field("categoryId"), "required")
		}
		if !t.Amount.IsPositive() {
			v.add(field("amount"), "must be greater than zero")
		}
		if !t.Type.Valid() {
			v.add(field("type"), "must be income or expense")
		}
		if _, err := time.Parse(model.DateFormat, t.Date); err != nil {
			v.add(field("date"), "must be YYYY-MM-DD")
		}

		if t.ID == "" {
			t.ID = id.New()
		} else if seen[t.ID] {
			res.Skipped++
			continue
		}
		seen[t.ID] = true
		batch = append(batch, t)
	}
	if err := v.err(); err != nil {
		return ImportResult{}, err
	}

	s.Transactions = append(s.Transactions, batch...)
	res.Added = len(batch)
	return res, nil
}
