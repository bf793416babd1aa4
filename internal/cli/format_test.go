package cli

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paycheck/internal/model"
)

func TestDaySuffix(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd", 31: "31st",
	}
	for n, want := range tests {
		if got := DaySuffix(n); got != want {
			t.Errorf("DaySuffix(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestFormatDueDay(t *testing.T) {
	tests := []struct {
		in   model.DueDay
		want string
	}{
		{model.LastDay(), "Last day of month"},
		{model.OnDay(22), "22nd"},
		{model.ParseDueDay("whenever"), "whenever"},
		{model.DueDay{}, "Not specified"},
	}
	for _, tt := range tests {
		if got := FormatDueDay(tt.in); got != tt.want {
			t.Errorf("FormatDueDay(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDeposits(t *testing.T) {
	if got := FormatDeposits(model.DepositSchedule{Days: []int{1, 15}}); got != "1st and 15th" {
		t.Errorf("FormatDeposits = %q, want %q", got, "1st and 15th")
	}
	if got := FormatDeposits(model.DepositSchedule{Note: "every Friday"}); got != "every Friday" {
		t.Errorf("FormatDeposits(note) = %q", got)
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"60", "$60.00"},
		{"1234.5", "$1,234.50"},
		{"-300", "-$300.00"},
		{"1000000", "$1,000,000.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercentAndCounts(t *testing.T) {
	if got := FormatPercent(decimal.NewFromInt(25)); got != "25.0%" {
		t.Errorf("FormatPercent(25) = %q", got)
	}
	if got := FormatPayments(1); got != "1 monthly payment" {
		t.Errorf("FormatPayments(1) = %q", got)
	}
	if got := FormatExpenseCount(3); got != "3 expenses" {
		t.Errorf("FormatExpenseCount(3) = %q", got)
	}
}
