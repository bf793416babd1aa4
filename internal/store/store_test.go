package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paycheck/internal/model"
)

func openTemp(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "paycheck.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleRecord() model.BudgetRecord {
	rec := model.NewRecord()
	rec.PaycheckAmount = decimal.RequireFromString("2000.50")
	rec.Deposits = model.DepositSchedule{Days: []int{1, 15}, Note: "1st and 15th"}
	rec.Expenses = []model.Expense{
		{Name: "Rent", Amount: decimal.NewFromInt(1000), DueDate: model.OnDay(1)},
		{Name: "Phone", Amount: decimal.RequireFromString("45.99"), DueDate: model.LastDay()},
	}
	rec.Step = model.StepSummary
	return rec
}

func assertSameRecord(t *testing.T, got, want model.BudgetRecord) {
	t.Helper()
	if !got.PaycheckAmount.Equal(want.PaycheckAmount) {
		t.Fatalf("PaycheckAmount = %s, want %s", got.PaycheckAmount, want.PaycheckAmount)
	}
	if got.Step != want.Step {
		t.Fatalf("Step = %q, want %q", got.Step, want.Step)
	}
	if got.Deposits.Note != want.Deposits.Note || len(got.Deposits.Days) != len(want.Deposits.Days) {
		t.Fatalf("Deposits = %+v, want %+v", got.Deposits, want.Deposits)
	}
	if len(got.Expenses) != len(want.Expenses) {
		t.Fatalf("len(Expenses) = %d, want %d", len(got.Expenses), len(want.Expenses))
	}
	for i := range want.Expenses {
		g, w := got.Expenses[i], want.Expenses[i]
		if g.Name != w.Name || !g.Amount.Equal(w.Amount) || g.DueDate != w.DueDate {
			t.Fatalf("Expenses[%d] = %+v, want %+v", i, g, w)
		}
	}
}

func TestSQLite_LoadMissingIsEmpty(t *testing.T) {
	s := openTemp(t)
	rec, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !rec.IsEmpty() || rec.Step != model.StepIncome {
		t.Fatalf("Load on fresh db = %+v, want empty record", rec)
	}
}

func TestSQLite_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	want := sampleRecord()
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSameRecord(t, got, want)

	// Saving again overwrites the whole record.
	want.Expenses = want.Expenses[:1]
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ = s.Load(ctx)
	assertSameRecord(t, got, want)

	if _, err := s.UpdatedAt(ctx, RecordKey); err != nil {
		t.Fatalf("UpdatedAt: %v", err)
	}
}

func TestSQLite_CorruptValueIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	if err := s.Put(ctx, RecordKey, "{not json"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	rec, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error for corrupt data: %v", err)
	}
	if !rec.IsEmpty() {
		t.Fatalf("Load = %+v, want empty record", rec)
	}
}

func TestSQLite_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "paycheck.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Save(ctx, sampleRecord()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_ = s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = s.Close() }()

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSameRecord(t, got, sampleRecord())

	v, err := s.SchemaVersion(ctx)
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if v != 1 {
		t.Fatalf("SchemaVersion = %d, want 1", v)
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	for name, p := range map[string]Port{
		"sqlite": openTemp(t),
		"memory": NewMemory(),
	} {
		if err := p.Save(ctx, sampleRecord()); err != nil {
			t.Fatalf("%s: Save: %v", name, err)
		}
		if err := Reset(ctx, p); err != nil {
			t.Fatalf("%s: Reset: %v", name, err)
		}
		rec, err := p.Load(ctx)
		if err != nil {
			t.Fatalf("%s: Load: %v", name, err)
		}
		if !rec.IsEmpty() {
			t.Fatalf("%s: record after Reset = %+v, want empty", name, rec)
		}
		// Resetting twice is not an error.
		if err := Reset(ctx, p); err != nil {
			t.Fatalf("%s: second Reset: %v", name, err)
		}
	}
}

func TestSQLite_DeleteMissing(t *testing.T) {
	s := openTemp(t)
	if err := s.Delete(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete(missing) = %v, want ErrNotFound", err)
	}
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) = %v, want ErrNotFound", err)
	}
}

func TestMemory_CorruptAndInvalidStep(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_ = m.Put(ctx, RecordKey, `{"paycheckAmount":"10","currentStep":"bogus"}`)
	rec, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.Step != model.StepIncome {
		t.Fatalf("Step = %q, want income", rec.Step)
	}
	if rec.Expenses == nil {
		t.Fatal("Expenses = nil, want empty slice")
	}

	_ = m.Put(ctx, RecordKey, `[]`)
	rec, err = m.Load(ctx)
	if err != nil || !rec.IsEmpty() {
		t.Fatalf("Load(corrupt) = %+v, %v; want empty record", rec, err)
	}
}
