// Package pipeline holds the pure computations behind every budget view:
// date reconciliation, the calendar grid, percentages, categories and the
// pie layout.
package pipeline

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paycheck/internal/model"
)

var hundred = decimal.NewFromInt(100)

// TotalAmount sums every expense amount.
func TotalAmount(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Percentages derives each expense's share of the total, rounded to one
// decimal place. With no expenses or a zero total every share is zero.
func Percentages(expenses []model.Expense) []model.ExpenseShare {
	shares := make([]model.ExpenseShare, len(expenses))
	total := TotalAmount(expenses)
	for i, e := range expenses {
		shares[i] = model.ExpenseShare{Expense: e, Percent: decimal.Zero}
		if total.IsZero() {
			continue
		}
		shares[i].Percent = e.Amount.Div(total).Mul(hundred).Round(1)
	}
	return shares
}

// AggregateCategories groups expenses by name in first-occurrence order,
// summing amounts and freshly derived percentages.
func AggregateCategories(expenses []model.Expense) []model.CategoryStats {
	shares := Percentages(expenses)

	index := make(map[string]int)
	var cats []model.CategoryStats
	for _, s := range shares {
		i, ok := index[s.Name]
		if !ok {
			i = len(cats)
			index[s.Name] = i
			cats = append(cats, model.CategoryStats{
				Label:        s.Name,
				TotalAmount:  decimal.Zero,
				TotalPercent: decimal.Zero,
			})
		}
		cats[i].Count++
		cats[i].TotalAmount = cats[i].TotalAmount.Add(s.Amount)
		cats[i].TotalPercent = cats[i].TotalPercent.Add(s.Percent)
	}
	return cats
}

// Summarize computes income, expense and remaining totals for rec.
func Summarize(rec model.BudgetRecord) model.Summary {
	total := TotalAmount(rec.Expenses)
	return model.Summary{
		Income:        rec.PaycheckAmount,
		TotalExpenses: total,
		Remaining:     rec.PaycheckAmount.Sub(total),
		Payments:      len(rec.Expenses),
	}
}

// FilterByName returns expenses whose name contains substr, ignoring case.
func FilterByName(expenses []model.Expense, substr string) []model.Expense {
	if substr == "" {
		return expenses
	}
	var result []model.Expense
	for _, e := range expenses {
		if containsIgnoreCase(e.Name, substr) {
			result = append(result, e)
		}
	}
	return result
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
