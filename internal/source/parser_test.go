package source

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paycheck/internal/model"
)

func TestParseDepositDays(t *testing.T) {
	tests := []struct {
		in      string
		days    []int
		lastDay bool
	}{
		{"1st and 15th", []int{1, 15}, false},
		{"15, 1", []int{1, 15}, false},
		{"15th and last day", []int{15}, true},
		{"end of the month", nil, true},
		{"15 and last", []int{15}, true},
		{"every Friday", nil, false},
		{"last Friday of the month", nil, false},
		{"2nd, 2nd, 32nd", []int{2}, false},
		{"paid in 2024", nil, false},
		{"every 2 weeks, 1st and 15th", []int{1, 15}, false},
		{"2nd Friday and the 20th", []int{20}, false},
		{"biweekly, 10 days apart", nil, false},
		{"1st, 15th monthly", []int{1, 15}, false},
		{"", nil, false},
	}
	for _, tt := range tests {
		got := ParseDepositDays(tt.in)
		if !slices.Equal(got.Days, tt.days) {
			t.Errorf("ParseDepositDays(%q).Days = %v, want %v", tt.in, got.Days, tt.days)
		}
		if got.LastDay != tt.lastDay {
			t.Errorf("ParseDepositDays(%q).LastDay = %v, want %v", tt.in, got.LastDay, tt.lastDay)
		}
	}
}

func TestParseDepositDays_KeepsNote(t *testing.T) {
	got := ParseDepositDays("  every Friday ")
	if got.Note != "every Friday" {
		t.Fatalf("Note = %q, want %q", got.Note, "every Friday")
	}
	if !got.IsZero() {
		t.Fatalf("schedule = %+v, want no deposit days", got)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2000", "2000"},
		{"$1,250.50", "1250.5"},
		{" 60 ", "60"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if err != nil {
			t.Fatalf("ParseAmount(%q): %v", tt.in, err)
		}
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "$", "abc", "12abc"} {
		if _, err := ParseAmount(bad); err == nil {
			t.Errorf("ParseAmount(%q) succeeded, want error", bad)
		}
	}
}

func TestDecodeLegacy_BrowserRecord(t *testing.T) {
	data := []byte(`{
		"paychequeAmount": "2000",
		"depositDates": "1st and 15th",
		"expenses": [
			{"name": "Rent", "amount": "1000", "dueDate": "1", "percentage": "94.3"},
			{"name": "Internet", "amount": 60, "dueDate": 15},
			{"name": "Phone", "amount": "45", "dueDate": "Last day"},
			{"name": "Gym", "amount": "30", "dueDate": "whenever"},
			{"name": "Broken", "amount": "n/a", "dueDate": "3"}
		],
		"currentStep": 1
	}`)

	res, err := DecodeLegacy(data)
	if err != nil {
		t.Fatalf("DecodeLegacy: %v", err)
	}
	rec := res.Record

	if !rec.PaycheckAmount.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("PaycheckAmount = %s, want 2000", rec.PaycheckAmount)
	}
	if !slices.Equal(rec.Deposits.Days, []int{1, 15}) || rec.Deposits.Note != "1st and 15th" {
		t.Errorf("Deposits = %+v", rec.Deposits)
	}
	if rec.Step != model.StepSummary {
		t.Errorf("Step = %q, want summary", rec.Step)
	}
	if len(rec.Expenses) != 4 {
		t.Fatalf("len(Expenses) = %d, want 4", len(rec.Expenses))
	}
	if res.SkippedExpenses != 1 || res.UnmatchedDates != 1 {
		t.Errorf("skipped = %d, unmatched = %d, want 1, 1", res.SkippedExpenses, res.UnmatchedDates)
	}
	if rec.Expenses[1].DueDate != model.OnDay(15) {
		t.Errorf("Internet due = %+v, want day 15", rec.Expenses[1].DueDate)
	}
	if !rec.Expenses[2].DueDate.Last {
		t.Errorf("Phone due = %+v, want last day", rec.Expenses[2].DueDate)
	}
	if rec.Expenses[3].DueDate.Raw != "whenever" {
		t.Errorf("Gym due = %+v, want raw text kept", rec.Expenses[3].DueDate)
	}
}

func TestDecodeLegacy_StepAndDepositForms(t *testing.T) {
	res, err := DecodeLegacy([]byte(`{"paychequeAmount":"","depositDates":[15,1,15,40],"expenses":[],"currentStep":0.5}`))
	if err != nil {
		t.Fatalf("DecodeLegacy: %v", err)
	}
	if res.Record.Step != model.StepExpenses {
		t.Errorf("Step = %q, want expenses", res.Record.Step)
	}
	if !slices.Equal(res.Record.Deposits.Days, []int{1, 15}) {
		t.Errorf("Deposits.Days = %v, want [1 15]", res.Record.Deposits.Days)
	}
	if !res.Record.PaycheckAmount.IsZero() {
		t.Errorf("PaycheckAmount = %s, want 0", res.Record.PaycheckAmount)
	}
}

func TestDecodeLegacy_InferredStep(t *testing.T) {
	res, err := DecodeLegacy([]byte(`{"paychequeAmount":"900"}`))
	if err != nil {
		t.Fatalf("DecodeLegacy: %v", err)
	}
	if res.Record.Step != model.StepExpenses {
		t.Errorf("Step = %q, want expenses", res.Record.Step)
	}
	if res.Record.Expenses == nil {
		t.Error("Expenses = nil, want empty slice")
	}
}

func TestDecodeLegacy_Malformed(t *testing.T) {
	if _, err := DecodeLegacy([]byte(`{not json`)); err == nil {
		t.Fatal("DecodeLegacy accepted malformed JSON")
	}
	if _, err := DecodeLegacy([]byte(`{"paychequeAmount":"lots"}`)); err == nil {
		t.Fatal("DecodeLegacy accepted a non-numeric paycheque amount")
	}
}

func TestReadLegacy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budgetData.json")
	if err := os.WriteFile(path, []byte(`{"paychequeAmount":"100","expenses":[]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	res, err := ReadLegacy(path)
	if err != nil {
		t.Fatalf("ReadLegacy: %v", err)
	}
	if !res.Record.PaycheckAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("PaycheckAmount = %s, want 100", res.Record.PaycheckAmount)
	}
	if _, err := ReadLegacy(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("ReadLegacy on missing file succeeded")
	}
}

func FuzzParseDepositDays(f *testing.F) {
	f.Add("1st and 15th")
	f.Add("last day")
	f.Add("31, 30, 29")
	f.Add("")

	f.Fuzz(func(t *testing.T, in string) {
		got := ParseDepositDays(in)
		for i, d := range got.Days {
			if d < 1 || d > 31 {
				t.Fatalf("ParseDepositDays(%q) produced day %d", in, d)
			}
			if i > 0 && got.Days[i-1] >= d {
				t.Fatalf("ParseDepositDays(%q) days not sorted/unique: %v", in, got.Days)
			}
		}
	})
}
