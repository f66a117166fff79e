package model

import "github.com/shopspring/decimal"

// Theme is the display theme persisted with the state document.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// AppState is the single persisted document. Everything the application knows
// lives here; derived views are recomputed from it on demand.
type AppState struct {
	Theme        Theme                      `json:"theme"`
	Salary       decimal.Decimal            `json:"salary"`
	Categories   []Category                 `json:"categories"`
	Profile      map[string]decimal.Decimal `json:"profile"` // keyed by category name, not id
	Transactions []Transaction              `json:"transactions"`
}

// Clone returns a deep copy so callers can mutate without aliasing the
// original slices and map.
func (s AppState) Clone() AppState {
	out := s
	out.Categories = append([]Category(nil), s.Categories...)
	out.Transactions = append([]Transaction(nil), s.Transactions...)
	out.Profile = make(map[string]decimal.Decimal, len(s.Profile))
	for k, v := range s.Profile {
		out.Profile[k] = v
	}
	return out
}
