package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/pipeline"
	"github.com/theirongolddev/paycheck/internal/tui/theme"
)

func twoSlices() model.PieLayout {
	return pipeline.LayoutPie([]model.CategoryStats{
		{Label: "Rent", Count: 1, TotalAmount: decimal.NewFromInt(100), TotalPercent: decimal.NewFromInt(25)},
		{Label: "Food", Count: 1, TotalAmount: decimal.NewFromInt(300), TotalPercent: decimal.NewFromInt(75)},
	}, model.DefaultPieGeometry())
}

func TestPieChartDimensions(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := PieChart(twoSlices(), 4, -1)

	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("rows = %d, want 9", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 17 {
			t.Fatalf("row %d width = %d, want 17", i, w)
		}
	}
	if !strings.Contains(lines[4], "█") {
		t.Fatalf("center row should be filled: %q", lines[4])
	}
	if strings.Contains(out, "·") {
		t.Fatal("slices summing to 100% should cover the whole disc")
	}
}

func TestPieChartSelectionShadesOthers(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := PieChart(twoSlices(), 4, 0)
	if !strings.Contains(out, "░") || !strings.Contains(out, "█") {
		t.Fatal("selected slice should stay solid and the rest shaded")
	}
}

func TestPieChartEmpty(t *testing.T) {
	out := PieChart(model.PieLayout{}, 4, -1)
	if !strings.Contains(out, "No expenses yet") {
		t.Fatalf("PieChart(empty) = %q", out)
	}
}

func TestTabAtX(t *testing.T) {
	// " Summary  [C]alendar ..." with Summary active
	if got := TabAtX(1, 0); got != 0 {
		t.Fatalf("TabAtX(1) = %d, want 0", got)
	}
	calStart := 1 + TabVisualWidth(Tabs[0], true) + tabGap
	if got := TabAtX(calStart, 0); got != 1 {
		t.Fatalf("TabAtX(%d) = %d, want 1", calStart, got)
	}
	if got := TabAtX(calStart-1, 0); got != -1 {
		t.Fatalf("TabAtX(gap) = %d, want -1", got)
	}
	if got := TabAtX(0, 0); got != -1 {
		t.Fatalf("TabAtX(0) = %d, want -1", got)
	}
}

func TestCalendarGridShowsDeposits(t *testing.T) {
	theme.SetActive("flexoki-dark")
	rec := model.NewRecord()
	rec.Deposits = model.DepositSchedule{Days: []int{15}}
	rec.Expenses = []model.Expense{{Name: "Rent", Amount: decimal.NewFromInt(1000), DueDate: model.OnDay(1)}}
	g := pipeline.BuildMonth(2024, 4, rec)

	out := CalendarGrid(g, 100, 1)
	if !strings.Contains(out, "15th $") {
		t.Fatal("deposit day should carry the $ marker")
	}
	if !strings.Contains(out, "Rent") || !strings.Contains(out, "$1,000.00") {
		t.Fatal("expense name and total should be in the day box")
	}
	if !strings.Contains(out, "Sun") {
		t.Fatal("weekday header missing")
	}
}
