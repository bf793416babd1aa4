package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Severity classifies a calendar day by its expense total.
type Severity int

// Severity levels.
const (
	SeverityNone Severity = iota
	SeveritySmall
	SeverityLarge
)

func (s Severity) String() string {
	switch s {
	case SeveritySmall:
		return "small"
	case SeverityLarge:
		return "large"
	default:
		return "none"
	}
}

// DayCell holds everything that lands on one real calendar day.
type DayCell struct {
	Day       int
	IsDeposit bool
	Expenses  []Expense
	Total     decimal.Decimal
	Severity  Severity
	MovedFrom []int // nominal days folded onto this day, only set on the last day of short months
}

// HasExpenses reports whether any expense is due on this day.
func (c DayCell) HasExpenses() bool { return len(c.Expenses) > 0 }

// MonthGrid is the display grid for one month.
type MonthGrid struct {
	Year        int
	Month       time.Month
	DaysInMonth int
	Leading     int // blank cells before day 1 (Sunday = 0)
	Threshold   decimal.Decimal
	Cells       []DayCell // index i holds day i+1
}

// Cell returns the cell for day (1-based).
func (g MonthGrid) Cell(day int) (DayCell, bool) {
	if day < 1 || day > len(g.Cells) {
		return DayCell{}, false
	}
	return g.Cells[day-1], true
}

// Weeks splits the grid into rows of seven, with nil for blank cells.
func (g MonthGrid) Weeks() [][]*DayCell {
	var weeks [][]*DayCell
	week := make([]*DayCell, 0, 7)
	for i := 0; i < g.Leading; i++ {
		week = append(week, nil)
	}
	for i := range g.Cells {
		week = append(week, &g.Cells[i])
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]*DayCell, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, nil)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// DepositDays returns the real days flagged as deposit days.
func (g MonthGrid) DepositDays() []int {
	var days []int
	for _, c := range g.Cells {
		if c.IsDeposit {
			days = append(days, c.Day)
		}
	}
	return days
}

// Outflow returns the expense total for every day of the month, in order.
func (g MonthGrid) Outflow() []float64 {
	out := make([]float64, len(g.Cells))
	for i, c := range g.Cells {
		out[i] = c.Total.InexactFloat64()
	}
	return out
}

// Notes returns the cells that carry fold annotations.
func (g MonthGrid) Notes() []DayCell {
	var notes []DayCell
	for _, c := range g.Cells {
		if len(c.MovedFrom) > 0 {
			notes = append(notes, c)
		}
	}
	return notes
}

// Reminder is the data needed to build an "add reminder" link for a day.
type Reminder struct {
	Date     time.Time // when the reminder fires
	Due      time.Time // the day the expenses are due
	Expenses []Expense
	Total    decimal.Decimal
}
