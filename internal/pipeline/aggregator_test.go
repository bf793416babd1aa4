package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paycheck/internal/model"
)

func TestPercentages_SumToHundred(t *testing.T) {
	shares := Percentages([]model.Expense{
		expense("A", 100, model.OnDay(1)),
		expense("B", 300, model.OnDay(2)),
	})
	if !shares[0].Percent.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("A percent = %s, want 25.0", shares[0].Percent)
	}
	if !shares[1].Percent.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("B percent = %s, want 75.0", shares[1].Percent)
	}
	sum := shares[0].Percent.Add(shares[1].Percent)
	if !sum.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("sum = %s, want 100", sum)
	}
}

func TestPercentages_RoundsToOneDecimal(t *testing.T) {
	shares := Percentages([]model.Expense{
		expense("A", 1, model.OnDay(1)),
		expense("B", 2, model.OnDay(1)),
	})
	if want := decimal.RequireFromString("33.3"); !shares[0].Percent.Equal(want) {
		t.Fatalf("A percent = %s, want 33.3", shares[0].Percent)
	}
	if want := decimal.RequireFromString("66.7"); !shares[1].Percent.Equal(want) {
		t.Fatalf("B percent = %s, want 66.7", shares[1].Percent)
	}
}

func TestPercentages_ZeroTotal(t *testing.T) {
	shares := Percentages([]model.Expense{expense("Free", 0, model.OnDay(3))})
	if !shares[0].Percent.IsZero() {
		t.Fatalf("percent = %s, want 0", shares[0].Percent)
	}
	if got := Percentages(nil); len(got) != 0 {
		t.Fatalf("Percentages(nil) = %v, want empty", got)
	}
}

func TestAggregateCategories_FirstOccurrenceOrder(t *testing.T) {
	cats := AggregateCategories([]model.Expense{
		expense("Utilities", 50, model.OnDay(5)),
		expense("Rent", 200, model.OnDay(1)),
		expense("Utilities", 150, model.OnDay(20)),
	})
	if len(cats) != 2 {
		t.Fatalf("len(cats) = %d, want 2", len(cats))
	}
	if cats[0].Label != "Utilities" || cats[1].Label != "Rent" {
		t.Fatalf("order = %s, %s; want Utilities, Rent", cats[0].Label, cats[1].Label)
	}
	if cats[0].Count != 2 || !cats[0].TotalAmount.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("Utilities = %d x %s, want 2 x 200", cats[0].Count, cats[0].TotalAmount)
	}
	if !cats[0].TotalPercent.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("Utilities percent = %s, want 50", cats[0].TotalPercent)
	}
	if got := AggregateCategories(nil); len(got) != 0 {
		t.Fatalf("AggregateCategories(nil) = %v, want empty", got)
	}
}

func TestSummarize_Deficit(t *testing.T) {
	rec := model.NewRecord()
	rec.PaycheckAmount = decimal.NewFromInt(500)
	rec.Expenses = []model.Expense{expense("Rent", 800, model.OnDay(1))}

	sum := Summarize(rec)
	if !sum.Deficit() {
		t.Fatal("Deficit() = false, want true")
	}
	if !sum.Remaining.Equal(decimal.NewFromInt(-300)) {
		t.Fatalf("Remaining = %s, want -300", sum.Remaining)
	}
	if sum.Payments != 1 {
		t.Fatalf("Payments = %d, want 1", sum.Payments)
	}
}

func TestFilterByName(t *testing.T) {
	exps := []model.Expense{
		expense("Car Payment", 300, model.OnDay(1)),
		expense("Insurance", 90, model.OnDay(2)),
	}
	got := FilterByName(exps, "car")
	if len(got) != 1 || got[0].Name != "Car Payment" {
		t.Fatalf("FilterByName(car) = %v", got)
	}
	if got := FilterByName(exps, ""); len(got) != 2 {
		t.Fatalf("FilterByName(\"\") = %d items, want 2", len(got))
	}
}
