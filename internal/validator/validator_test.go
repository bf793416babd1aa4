package validator

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paycheck/internal/model"
)

func TestAmount(t *testing.T) {
	for _, ok := range []string{"1", "0.01", "$1,200", " 60 "} {
		if err := Amount(ok); err != nil {
			t.Errorf("Amount(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "0", "-5", "abc", "1.2.3"} {
		if err := Amount(bad); err == nil {
			t.Errorf("Amount(%q) = nil, want error", bad)
		}
	}
}

func TestDueDate(t *testing.T) {
	for _, ok := range []string{"", "1", "15th", "31st", "Last day", "eom"} {
		if err := DueDate(ok); err != nil {
			t.Errorf("DueDate(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"0", "32", "someday"} {
		if err := DueDate(bad); err == nil {
			t.Errorf("DueDate(%q) = nil, want error", bad)
		}
	}
}

func TestMonthAndDeposits(t *testing.T) {
	if err := Month("2024-04"); err != nil {
		t.Errorf("Month(2024-04) = %v", err)
	}
	if err := Month("April"); err == nil {
		t.Error("Month(April) = nil, want error")
	}
	if err := Deposits("   "); err == nil {
		t.Error("Deposits(blank) = nil, want error")
	}
}

func TestIncomeInput_Apply(t *testing.T) {
	rec, err := IncomeInput{Paycheck: "$2,000", Deposits: "1st and 15th"}.Apply(model.NewRecord())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !rec.PaycheckAmount.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("PaycheckAmount = %s, want 2000", rec.PaycheckAmount)
	}
	if len(rec.Deposits.Days) != 2 || rec.Step != model.StepExpenses {
		t.Errorf("record = %+v", rec)
	}

	_, err = IncomeInput{Paycheck: "0", Deposits: "1st"}.Apply(model.NewRecord())
	if err == nil || err.Error() != "Please enter a valid paycheque amount" {
		t.Errorf("Apply(0) error = %v", err)
	}
	_, err = IncomeInput{Paycheck: "10", Deposits: ""}.Apply(model.NewRecord())
	if err == nil || err.Error() != "Please enter your typical deposit dates" {
		t.Errorf("Apply(no deposits) error = %v", err)
	}
}

func TestExpenseInput_CustomNameWins(t *testing.T) {
	e, err := ExpenseInput{Category: "Other", CustomName: " Gym ", Amount: "30", DueDate: "3rd"}.Expense()
	if err != nil {
		t.Fatalf("Expense: %v", err)
	}
	if e.Name != "Gym" || e.DueDate != model.OnDay(3) {
		t.Fatalf("Expense = %+v, want Gym due 3", e)
	}

	e, err = ExpenseInput{Category: "Utilities", Amount: "80"}.Expense()
	if err != nil {
		t.Fatalf("Expense: %v", err)
	}
	if e.Name != "Utilities" || !e.DueDate.IsZero() {
		t.Fatalf("Expense = %+v, want Utilities with no due date", e)
	}
}

func TestExpenseInput_Rejects(t *testing.T) {
	tests := []struct {
		in   ExpenseInput
		want string
	}{
		{ExpenseInput{Amount: "10"}, "expense name"},
		{ExpenseInput{Name: "Rent", Amount: "-1"}, "amount"},
		{ExpenseInput{Name: "Rent", Amount: "10", DueDate: "tuesday"}, "day of the month"},
		{ExpenseInput{Name: strings.Repeat("x", 61), Amount: "10"}, "60 characters"},
	}
	for _, tt := range tests {
		_, err := tt.in.Expense()
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Expense(%+v) error = %v, want mention of %q", tt.in, err, tt.want)
		}
	}
}
