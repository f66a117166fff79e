package budget

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgetwave-dev/budgetwave/internal/model"
)

// NormalizeProfile rescales weights so they add up to roughly WeightScale.
// Each weight is rounded to the nearest integer; the rounded sum may be a few
// points off and is left that way. The input map is not modified.
func NormalizeProfile(weights map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	sum := decimal.Zero
	for _, w := range weights {
		sum = sum.Add(w)
	}
	if sum.IsZero() {
		v := validation{op: "normalize profile"}
		v.add("profile", "weights sum to zero")
		return nil, v.err()
	}

	out := make(map[string]decimal.Decimal, len(weights))
	for name, w := range weights {
		// Weights are non-negative, so Round's half-away-from-zero is half-up here.
		out[name] = w.Mul(WeightScale).Div(sum).Round(0)
	}
	return out, nil
}

// SetWeight sets the profile weight for a category name.
func SetWeight(s *model.AppState, name string, weight decimal.Decimal) error {
	v := validation{op: "set weight"}
	name = strings.TrimSpace(name)
	if name == "" {
		v.add("name", "required")
	}
	if weight.IsNegative() {
		v.add("weight", "must not be negative")
	}
	if err := v.err(); err != nil {
		return err
	}

	if s.Profile == nil {
		s.Profile = make(map[string]decimal.Decimal)
	}
	s.Profile[name] = weight
	return nil
}

// ProfileSum returns the total of all profile weights.
func ProfileSum(weights map[string]decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, w := range weights {
		sum = sum.Add(w)
	}
	return sum
}
