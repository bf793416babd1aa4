package pipeline

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paycheck/internal/model"
)

func cats(n int) []model.CategoryStats {
	out := make([]model.CategoryStats, n)
	for i := range out {
		out[i] = model.CategoryStats{
			Label:        strings.Repeat("x", i+1),
			Count:        1,
			TotalAmount:  decimal.NewFromInt(10),
			TotalPercent: decimal.NewFromInt(100).Div(decimal.NewFromInt(int64(n))),
		}
	}
	return out
}

func TestLayoutPie_Deterministic(t *testing.T) {
	in := AggregateCategories([]model.Expense{
		expense("Rent", 1000, model.OnDay(1)),
		expense("Internet", 60, model.OnDay(15)),
	})
	a := LayoutPie(in, model.DefaultPieGeometry())
	b := LayoutPie(in, model.DefaultPieGeometry())
	if !reflect.DeepEqual(a, b) {
		t.Fatal("LayoutPie is not deterministic")
	}
}

func TestLayoutPie_SlicesAreContiguous(t *testing.T) {
	l := LayoutPie(cats(4), model.DefaultPieGeometry())
	if l.Slices[0].Start != 0 {
		t.Fatalf("first slice starts at %f, want 0", l.Slices[0].Start)
	}
	for i := 1; i < len(l.Slices); i++ {
		if math.Abs(l.Slices[i].Start-l.Slices[i-1].End()) > 1e-9 {
			t.Fatalf("slice %d starts at %f, previous ends at %f", i, l.Slices[i].Start, l.Slices[i-1].End())
		}
	}
	last := l.Slices[len(l.Slices)-1]
	if math.Abs(last.End()-2*math.Pi) > 1e-9 {
		t.Fatalf("last slice ends at %f, want 2π", last.End())
	}
}

func TestLayoutPie_Colors(t *testing.T) {
	l := LayoutPie(cats(3), model.DefaultPieGeometry())
	wantHues := []int{0, 137, 274}
	for i, s := range l.Slices {
		if s.Hue != wantHues[i] {
			t.Fatalf("slice %d hue = %d, want %d", i, s.Hue, wantHues[i])
		}
		if len(s.Color) != 7 || s.Color[0] != '#' {
			t.Fatalf("slice %d color = %q, want #rrggbb", i, s.Color)
		}
	}
	if SliceHue(3) != 51 {
		t.Fatalf("SliceHue(3) = %d, want 51", SliceHue(3))
	}
}

func TestLayoutPie_LabelThreshold(t *testing.T) {
	in := []model.CategoryStats{
		{Label: "Big", TotalAmount: decimal.NewFromInt(990), TotalPercent: decimal.NewFromInt(99)},
		{Label: "Tiny", TotalAmount: decimal.NewFromInt(10), TotalPercent: decimal.NewFromInt(1)},
	}
	l := LayoutPie(in, model.DefaultPieGeometry())
	if !l.Slices[0].ShowLabel {
		t.Fatal("large slice has no label")
	}
	if l.Slices[1].ShowLabel {
		t.Fatal("slice narrower than the label angle has a label")
	}
}

func TestLayoutPie_LegendColumns(t *testing.T) {
	geom := model.DefaultPieGeometry()

	two := LayoutPie(cats(6), geom)
	if two.Columns != 2 {
		t.Fatalf("6 categories: Columns = %d, want 2", two.Columns)
	}
	if two.Legend[1].X != 220 || two.Legend[2].Y != 310+28 {
		t.Fatalf("two-column legend misplaced: %+v %+v", two.Legend[1], two.Legend[2])
	}

	one := LayoutPie(cats(7), geom)
	if one.Columns != 1 {
		t.Fatalf("7 categories: Columns = %d, want 1", one.Columns)
	}
	if one.Legend[6].X != 20 || one.Legend[6].Y != 310+6*28 {
		t.Fatalf("one-column legend misplaced: %+v", one.Legend[6])
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := TruncateLabel("Phone/Internet", 12); got != "Phone/Inte..." {
		t.Fatalf("TruncateLabel = %q, want %q", got, "Phone/Inte...")
	}
	if got := TruncateLabel("Groceries", 12); got != "Groceries" {
		t.Fatalf("TruncateLabel = %q, want unchanged", got)
	}
	if got := TruncateLabel("Credit Card Payment", 18); got != "Credit Card Paym..." {
		t.Fatalf("TruncateLabel = %q, want %q", got, "Credit Card Paym...")
	}
}

func TestLayoutPie_Empty(t *testing.T) {
	l := LayoutPie(nil, model.DefaultPieGeometry())
	if len(l.Slices) != 0 || len(l.Legend) != 0 {
		t.Fatalf("empty layout has %d slices, %d legend rows", len(l.Slices), len(l.Legend))
	}
	if SliceAt(l, 1) != -1 {
		t.Fatal("SliceAt on empty layout found a slice")
	}
}
