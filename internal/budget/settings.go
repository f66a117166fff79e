package budget

import (
	"github.com/shopspring/decimal"

	"github.com/budgetwave-dev/budgetwave/internal/model"
)

// SetSalary replaces the monthly salary baseline.
func SetSalary(s *model.AppState, salary decimal.Decimal) error {
	if salary.IsNegative() {
		v := validation{op: "set salary"}
		v.add("salary", "must not be negative")
		return v.err()
	}
	s.Salary = salary
	return nil
}

// ToggleTheme flips between light and dark and returns the new theme.
func ToggleTheme(s *model.AppState) model.Theme {
	if s.Theme == model.ThemeLight {
		s.Theme = model.ThemeDark
	} else {
		s.Theme = model.ThemeLight
	}
	return s.Theme
}
