package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwave-dev/budgetwave/internal/budget"
	"github.com/budgetwave-dev/budgetwave/internal/model"
)

// Donut colors, taken from the light/dark theme tokens shared by both themes.
const (
	ColorIncome          = "#22c55e"
	ColorExpense         = "#ef4444"
	ColorBalance         = "#06b6d4"
	ColorNegativeBalance = "#f59e0b"
)

var hundred = decimal.NewFromInt(100)

// Slice is one wedge of a pie or donut chart.
type Slice struct {
	Key     string // category id for the pie, label for the donut
	Label   string
	Color   string
	Value   decimal.Decimal
	Percent decimal.Decimal // rounded share of the chart total
}

// ExpensePie returns one slice per category with expenses this month, in the
// order the categories first appear. Dangling ids are labelled with the id
// itself. An empty result means the chart has nothing to show.
func ExpensePie(s model.AppState, now time.Time) []Slice {
	var order []string
	byCat := make(map[string]decimal.Decimal)
	for _, t := range budget.CurrentMonth(s, now) {
		if t.Type != model.TypeExpense {
			continue
		}
		if _, seen := byCat[t.CategoryID]; !seen {
			order = append(order, t.CategoryID)
		}
		byCat[t.CategoryID] = byCat[t.CategoryID].Add(t.Amount)
	}
	if len(order) == 0 {
		return nil
	}

	idx := budget.NewIndex(s.Categories)
	slices := make([]Slice, 0, len(order))
	total := decimal.Zero
	for _, catID := range order {
		label := catID
		color := ""
		if c, ok := idx.Get(catID); ok {
			label = c.Name
			color = c.Color
		}
		if color == "" {
			color = ColorFromString(label)
		}
		v := byCat[catID]
		total = total.Add(v)
		slices = append(slices, Slice{Key: catID, Label: label, Color: color, Value: v})
	}
	setPercents(slices, total)
	return slices
}

// Donut is the income/expense/balance chart under the KPI cards.
type Donut struct {
	Slices          []Slice // nil when there is nothing to show
	Total           decimal.Decimal
	Balance         decimal.Decimal // signed; the Saldo slice holds its absolute value
	NegativeBalance bool
}

// KPIDonut builds the Receita/Despesa/Saldo chart from month totals.
func KPIDonut(t budget.Totals) Donut {
	absBal := t.Balance.Abs()
	total := t.Income.Add(t.Expense).Add(absBal)
	d := Donut{Total: total, Balance: t.Balance, NegativeBalance: t.Balance.IsNegative()}
	if total.IsZero() {
		return d
	}

	balanceLabel, balanceColor := "Saldo", ColorBalance
	if d.NegativeBalance {
		balanceLabel, balanceColor = "Saldo (negativo)", ColorNegativeBalance
	}
	d.Slices = []Slice{
		{Key: "Receita", Label: "Receita", Color: ColorIncome, Value: t.Income},
		{Key: "Despesa", Label: "Despesa", Color: ColorExpense, Value: t.Expense},
		{Key: "Saldo", Label: balanceLabel, Color: balanceColor, Value: absBal},
	}
	setPercents(d.Slices, total)
	return d
}

func setPercents(slices []Slice, total decimal.Decimal) {
	if total.IsZero() {
		return
	}
	for i := range slices {
		slices[i].Percent = slices[i].Value.Abs().Div(total).Mul(hundred).Round(0)
	}
}
