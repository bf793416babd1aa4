// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paycheck/internal/model"
)

// DaySuffix returns n with its English ordinal suffix.
// e.g., 1 -> "1st", 12 -> "12th", 22 -> "22nd"
func DaySuffix(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// FormatDueDay renders a due date for tables and cells.
func FormatDueDay(d model.DueDay) string {
	switch {
	case d.Last:
		return "Last day of month"
	case d.Day > 0:
		return DaySuffix(d.Day)
	case d.Raw != "":
		return d.Raw
	default:
		return "Not specified"
	}
}

// FormatDeposits renders a deposit schedule, falling back to the typed note.
func FormatDeposits(s model.DepositSchedule) string {
	parts := make([]string, 0, len(s.Days)+1)
	for _, d := range s.Days {
		parts = append(parts, DaySuffix(d))
	}
	if s.LastDay {
		parts = append(parts, "last day")
	}
	if len(parts) == 0 {
		if s.Note != "" {
			return s.Note
		}
		return "Not specified"
	}
	return english.OxfordWordSeries(parts, "and")
}

// FormatMoney formats an amount as dollars with thousands separators.
// e.g., 1234.5 -> "$1,234.50", -300 -> "-$300.00"
func FormatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

// FormatPercent formats a percentage already scaled to 0-100 with one decimal.
func FormatPercent(p decimal.Decimal) string {
	return p.StringFixed(1) + "%"
}

// FormatRatio formats a 0-1 float as a percentage string.
func FormatRatio(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatPayments returns e.g. "3 monthly payments".
func FormatPayments(n int) string {
	return english.Plural(n, "monthly payment", "")
}

// FormatExpenseCount returns e.g. "2 expenses".
func FormatExpenseCount(n int) string {
	return english.Plural(n, "expense", "")
}

// FormatMonth renders a month heading like "April 2024".
func FormatMonth(year int, month fmt.Stringer) string {
	return month.String() + " " + strconv.Itoa(year)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}
