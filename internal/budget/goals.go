package budget

import (
	"github.com/shopspring/decimal"

	"github.com/budgetwave-dev/budgetwave/internal/model"
)

var (
	// ReserveRate is the share of salary set aside before goals are allocated.
	ReserveRate = decimal.RequireFromString("0.10")

	// WeightScale is the total the profile weights are meant to add up to.
	// It also stands in for the total when every weight is zero.
	WeightScale = decimal.NewFromInt(90)
)

// Goals is the allocation derived from salary and profile.
type Goals struct {
	Reserve decimal.Decimal
	Pool    decimal.Decimal
	ByName  map[string]decimal.Decimal // one entry per profile name
}

// ComputeGoals splits the salary into a reserve and per-category goals
// proportional to the profile weights.
func ComputeGoals(s model.AppState) Goals {
	reserve := s.Salary.Mul(ReserveRate)
	pool := decimal.Max(s.Salary.Sub(reserve), decimal.Zero)

	total := decimal.Zero
	for _, w := range s.Profile {
		total = total.Add(w)
	}
	if total.IsZero() {
		total = WeightScale
	}

	goals := make(map[string]decimal.Decimal, len(s.Profile))
	for name, w := range s.Profile {
		goals[name] = pool.Mul(w).Div(total)
	}

	return Goals{Reserve: reserve, Pool: pool, ByName: goals}
}
