package budget

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Progress is how far a category's spending has gone against its goal.
type Progress struct {
	Pct     decimal.Decimal // filled share of the bar, 0..100
	OverPct decimal.Decimal // excess beyond the goal, in percent of the goal
	Ratio   decimal.Decimal // spent/goal*100 unclamped; equals Pct when goal is zero
	Diff    decimal.Decimal // amount over the goal, or amount still left
}

// Over reports whether spending exceeded the goal.
func (p Progress) Over() bool {
	return p.OverPct.IsPositive()
}

// GoalProgress compares spent against goal. A zero goal with any spending
// counts as fully over.
func GoalProgress(goal, spent decimal.Decimal) Progress {
	var p Progress
	switch {
	case goal.IsPositive():
		p.Ratio = spent.Div(goal).Mul(hundred)
		p.Pct = decimal.Min(hundred, p.Ratio)
		p.OverPct = decimal.Max(decimal.Zero, p.Ratio.Sub(hundred))
	case spent.IsPositive():
		p.Pct = hundred
		p.OverPct = hundred
		p.Ratio = hundred
	default:
		p.Pct = decimal.Zero
		p.OverPct = decimal.Zero
		p.Ratio = decimal.Zero
	}

	if p.Over() {
		p.Diff = spent.Sub(goal)
	} else {
		p.Diff = decimal.Max(decimal.Zero, goal.Sub(spent))
	}
	return p
}
