// Package report derives the presentation views of a budget: the month's
// transaction list, the goal table and the chart series. Nothing here draws;
// renderers consume the rows.
package report

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Placeholder is shown for a category id that no longer resolves.
const Placeholder = "—"

// IncomeCategoryName is the starter income category, left out of the goal table.
const IncomeCategoryName = "Renda"

// newCollator returns a pt-BR collator. Collators are not safe for concurrent
// use, so each view builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese)
}
