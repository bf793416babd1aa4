package pipeline

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paycheck/internal/model"
)

// DefaultThreshold is the severity threshold used when there are no expenses.
var DefaultThreshold = decimal.NewFromInt(100)

// Threshold returns the median expense amount: amounts sorted ascending,
// element n/2. With no expenses it returns fallback.
func Threshold(expenses []model.Expense, fallback decimal.Decimal) decimal.Decimal {
	if len(expenses) == 0 {
		return fallback
	}
	amounts := make([]decimal.Decimal, len(expenses))
	for i, e := range expenses {
		amounts[i] = e.Amount
	}
	sort.SliceStable(amounts, func(i, j int) bool {
		return amounts[i].LessThan(amounts[j])
	})
	return amounts[len(amounts)/2]
}

// Classify returns the severity for a day total against threshold.
func Classify(hasExpenses bool, total, threshold decimal.Decimal) model.Severity {
	switch {
	case !hasExpenses:
		return model.SeverityNone
	case total.GreaterThan(threshold):
		return model.SeverityLarge
	default:
		return model.SeveritySmall
	}
}

// BuildMonth lays out one month of rec using DefaultThreshold as the fallback.
func BuildMonth(year int, month time.Month, rec model.BudgetRecord) model.MonthGrid {
	return BuildMonthWithDefault(year, month, rec, DefaultThreshold)
}

// BuildMonthWithDefault lays out one month: leading blanks for the weekday
// of day 1, then a cell per day carrying deposits, expenses, the day total,
// severity and fold annotations. Each expense lands on exactly one day.
func BuildMonthWithDefault(year int, month time.Month, rec model.BudgetRecord, fallback decimal.Decimal) model.MonthGrid {
	dim := DaysInMonth(year, month)
	grid := model.MonthGrid{
		Year:        year,
		Month:       month,
		DaysInMonth: dim,
		Leading:     int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()),
		Threshold:   Threshold(rec.Expenses, fallback),
		Cells:       make([]model.DayCell, dim),
	}
	for i := range grid.Cells {
		grid.Cells[i] = model.DayCell{Day: i + 1, Total: decimal.Zero}
	}

	for _, d := range rec.Deposits.Days {
		if day, ok := ReconcileDay(year, month, d); ok {
			grid.Cells[day-1].IsDeposit = true
		}
	}
	if rec.Deposits.LastDay {
		grid.Cells[dim-1].IsDeposit = true
	}

	for _, e := range rec.Expenses {
		day, ok := Reconcile(year, month, e.DueDate)
		if !ok {
			continue
		}
		c := &grid.Cells[day-1]
		c.Expenses = append(c.Expenses, e)
		c.Total = c.Total.Add(e.Amount)
	}

	for i := range grid.Cells {
		c := &grid.Cells[i]
		c.Severity = Classify(c.HasExpenses(), c.Total, grid.Threshold)
	}

	grid.Cells[dim-1].MovedFrom = foldedDays(year, month, rec)

	return grid
}

// Reclassify returns a copy of grid with every day's severity recomputed
// against threshold.
func Reclassify(grid model.MonthGrid, threshold decimal.Decimal) model.MonthGrid {
	out := grid
	out.Threshold = threshold
	out.Cells = make([]model.DayCell, len(grid.Cells))
	copy(out.Cells, grid.Cells)
	for i := range out.Cells {
		c := &out.Cells[i]
		c.Severity = Classify(c.HasExpenses(), c.Total, threshold)
	}
	return out
}

// Reminders returns one reminder per day with expenses, firing leadDays
// before the due date. The reminder may fall in the previous month.
func Reminders(grid model.MonthGrid, leadDays int) []model.Reminder {
	var out []model.Reminder
	for _, c := range grid.Cells {
		if !c.HasExpenses() {
			continue
		}
		due := time.Date(grid.Year, grid.Month, c.Day, 0, 0, 0, 0, time.Local)
		out = append(out, model.Reminder{
			Date:     due.AddDate(0, 0, -leadDays),
			Due:      due,
			Expenses: c.Expenses,
			Total:    c.Total,
		})
	}
	return out
}
