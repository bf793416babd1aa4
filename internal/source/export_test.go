package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paycheck/internal/model"
)

func exportSample() model.BudgetRecord {
	rec := model.NewRecord()
	rec.PaycheckAmount = decimal.RequireFromString("2000.50")
	rec.Deposits = model.DepositSchedule{Days: []int{1, 15}, Note: "1st and 15th"}
	rec.Expenses = []model.Expense{
		{Name: "Rent", Amount: decimal.NewFromInt(1000), DueDate: model.OnDay(1)},
		{Name: "Card", Amount: decimal.RequireFromString("75.25"), DueDate: model.LastDay()},
	}
	rec.Step = model.StepSummary
	return rec
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"json", FormatJSON, true},
		{"YAML", FormatYAML, true},
		{"yml", FormatYAML, true},
		{"legacy", FormatLegacy, true},
		{"toml", "", false},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Fatalf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
	if FormatFromPath("budget.yml") != FormatYAML || FormatFromPath("dump.json") != FormatLegacy {
		t.Fatal("FormatFromPath picked the wrong format")
	}
}

func TestExportYAMLReadsBack(t *testing.T) {
	rec := exportSample()
	data, err := Export(rec, FormatYAML)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	text := string(data)
	for _, want := range []string{"paycheck_amount", "2000.5", "Last day", "current_step: summary"} {
		if !strings.Contains(text, want) {
			t.Fatalf("yaml missing %q:\n%s", want, text)
		}
	}

	res, err := Decode(data, FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := res.Record
	if !got.PaycheckAmount.Equal(rec.PaycheckAmount) || len(got.Expenses) != 2 {
		t.Fatalf("decoded = %+v", got)
	}
	if !got.Expenses[1].DueDate.Last || !got.Expenses[1].Amount.Equal(decimal.RequireFromString("75.25")) {
		t.Fatalf("card expense = %+v", got.Expenses[1])
	}
	if got.Step != model.StepSummary || res.UnmatchedDates != 0 {
		t.Fatalf("step = %s unmatched = %d", got.Step, res.UnmatchedDates)
	}
}

func TestExportJSONIsCanonical(t *testing.T) {
	data, err := Export(exportSample(), FormatJSON)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	for _, want := range []string{`"paycheckAmount"`, `"depositDates"`, `"currentStep": "summary"`} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("json missing %s:\n%s", want, data)
		}
	}
	res, err := Decode(data, FormatJSON)
	if err != nil || len(res.Record.Expenses) != 2 {
		t.Fatalf("Decode = %+v, %v", res, err)
	}
}

func TestExportLegacyRejected(t *testing.T) {
	if _, err := Export(exportSample(), FormatLegacy); err == nil {
		t.Fatal("legacy is import-only")
	}
}

func TestDecodeYAMLSkipsBadAmounts(t *testing.T) {
	doc := `paycheck_amount: "1500"
deposits:
  note: every other Friday
expenses:
  - name: Gym
    amount: lots
  - name: Phone
    amount: "$45"
    due_date: sometime
current_step: bogus
`
	res, err := Decode([]byte(doc), FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if res.SkippedExpenses != 1 || res.UnmatchedDates != 1 {
		t.Fatalf("skipped = %d unmatched = %d, want 1 and 1", res.SkippedExpenses, res.UnmatchedDates)
	}
	if res.Record.Step != model.StepIncome {
		t.Fatalf("Step = %s, want income for an unknown step", res.Record.Step)
	}
	if res.Record.Deposits.Note != "every other Friday" || !res.Record.Deposits.IsZero() {
		t.Fatalf("Deposits = %+v", res.Record.Deposits)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.yaml"), FormatYAML); err == nil {
		t.Fatal("missing file should fail")
	}
	path := filepath.Join(t.TempDir(), "b.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(path, FormatJSON); err == nil {
		t.Fatal("malformed json should fail")
	}
}
