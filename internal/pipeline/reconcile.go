package pipeline

import (
	"time"

	"github.com/theirongolddev/paycheck/internal/model"
)

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the length of month in year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// Reconcile maps a nominal due day onto the real day it falls on in the
// given month. Days past the end of a short month fold onto its last day.
// ok is false when due cannot land on any day.
func Reconcile(year int, month time.Month, due model.DueDay) (day int, ok bool) {
	if due.Last {
		return DaysInMonth(year, month), true
	}
	return ReconcileDay(year, month, due.Day)
}

// ReconcileDay is Reconcile for a plain day-of-month number.
func ReconcileDay(year int, month time.Month, nominal int) (day int, ok bool) {
	if nominal < 1 || nominal > 31 {
		return 0, false
	}
	dim := DaysInMonth(year, month)
	if nominal > dim {
		return dim, true
	}
	return nominal, true
}

// foldedDays returns the sorted, unique nominal days in rec that exceed the
// month's length and therefore fold onto its last day.
func foldedDays(year int, month time.Month, rec model.BudgetRecord) []int {
	dim := DaysInMonth(year, month)
	seen := make(map[int]bool)
	for _, e := range rec.Expenses {
		if !e.DueDate.Last && e.DueDate.Day > dim && e.DueDate.Day <= 31 {
			seen[e.DueDate.Day] = true
		}
	}
	for _, d := range rec.Deposits.Days {
		if d > dim && d <= 31 {
			seen[d] = true
		}
	}

	var days []int
	for d := dim + 1; d <= 31; d++ {
		if seen[d] {
			days = append(days, d)
		}
	}
	return days
}
