package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDueDay(t *testing.T) {
	tests := []struct {
		in   string
		want DueDay
	}{
		{"15", OnDay(15)},
		{"15th", OnDay(15)},
		{" 1st ", OnDay(1)},
		{"22nd", OnDay(22)},
		{"Last day", LastDay()},
		{"end of month", LastDay()},
		{"EOM", LastDay()},
		{"32", DueDay{Raw: "32"}},
		{"whenever", DueDay{Raw: "whenever"}},
		{"", DueDay{}},
	}
	for _, tt := range tests {
		if got := ParseDueDay(tt.in); got != tt.want {
			t.Fatalf("ParseDueDay(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestDueDayJSON(t *testing.T) {
	var days []DueDay
	if err := json.Unmarshal([]byte(`[15, "15th", "Last day", 2.5, "soon", null]`), &days); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := []DueDay{OnDay(15), OnDay(15), LastDay(), {Raw: "2.5"}, {Raw: "soon"}, {}}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("days[%d] = %+v, want %+v", i, days[i], want[i])
		}
	}

	out, err := json.Marshal([]DueDay{OnDay(3), LastDay(), {Raw: "soon"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `[3,"Last day","soon"]` {
		t.Fatalf("Marshal = %s", out)
	}
}

func TestRecordMutationsCopy(t *testing.T) {
	rec := NewRecord()
	rec.Deposits.Days = []int{1, 15}
	rent := Expense{Name: "Rent", Amount: decimal.NewFromInt(1000), DueDate: OnDay(1)}

	added := rec.WithExpense(rent)
	if len(rec.Expenses) != 0 || len(added.Expenses) != 1 {
		t.Fatalf("WithExpense changed the original: %d / %d", len(rec.Expenses), len(added.Expenses))
	}

	added.Deposits.Days[0] = 2
	if rec.Deposits.Days[0] != 1 {
		t.Fatal("clone shares deposit days with the original")
	}

	removed, err := added.WithoutExpense(0)
	if err != nil || len(removed.Expenses) != 0 || len(added.Expenses) != 1 {
		t.Fatalf("WithoutExpense = %d expenses, err %v", len(removed.Expenses), err)
	}
	if _, err := added.WithoutExpense(5); err == nil {
		t.Fatal("out of range index should fail")
	}
}

func TestStepAndEmpty(t *testing.T) {
	if !StepExpenses.Valid() || Step("done").Valid() {
		t.Fatal("Step.Valid misreports")
	}
	rec := NewRecord()
	if !rec.IsEmpty() {
		t.Fatal("new record should be empty")
	}
	rec.Deposits.Note = "every other Friday"
	if rec.IsEmpty() {
		t.Fatal("a deposit note alone makes the record non-empty")
	}
}
