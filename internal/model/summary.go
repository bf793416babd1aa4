package model

import "github.com/shopspring/decimal"

// Summary holds the top-level totals shown on the summary cards.
type Summary struct {
	Income        decimal.Decimal
	TotalExpenses decimal.Decimal
	Remaining     decimal.Decimal
	Payments      int
}

// Deficit reports whether expenses exceed income.
func (s Summary) Deficit() bool { return s.Remaining.IsNegative() }

// UsedRatio returns expenses as a 0-1+ fraction of income (0 without income).
func (s Summary) UsedRatio() float64 {
	if !s.Income.IsPositive() {
		return 0
	}
	return s.TotalExpenses.Div(s.Income).InexactFloat64()
}

// ExpenseShare pairs an expense with its freshly derived percentage of the total.
type ExpenseShare struct {
	Expense
	Percent decimal.Decimal
}

// CategoryStats holds aggregated amounts for one expense name.
type CategoryStats struct {
	Label        string
	Count        int
	TotalAmount  decimal.Decimal
	TotalPercent decimal.Decimal
}
