package cli

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/pipeline"
)

func febRecord() model.BudgetRecord {
	rec := model.NewRecord()
	rec.PaycheckAmount = decimal.NewFromInt(2000)
	rec.Deposits.Days = []int{1, 15}
	rec.Expenses = []model.Expense{
		{Name: "Rent", Amount: decimal.NewFromInt(1000), DueDate: model.OnDay(1)},
		{Name: "Gym", Amount: decimal.NewFromInt(30), DueDate: model.OnDay(30)},
		{Name: "Card", Amount: decimal.NewFromInt(90), DueDate: model.OnDay(31)},
	}
	return rec
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderTable(Table{
		Headers: []string{"Name", "Amount"},
		Rows: [][]string{
			{"Rent", moneyStyle.Render("$1,000.00")},
			{"---"},
			{"Total", "$1,000.00"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := lipgloss.Width(lines[0])
	for i, l := range lines {
		if w := lipgloss.Width(l); w != want {
			t.Fatalf("line %d width = %d, want %d:\n%s", i, w, want, out)
		}
	}
}

func TestRenderCalendar_FoldNote(t *testing.T) {
	g := pipeline.BuildMonth(2023, time.February, febRecord())
	out := RenderCalendar(g)
	if !strings.Contains(out, "February 2023") {
		t.Fatalf("missing month heading:\n%s", out)
	}
	if !strings.Contains(out, "Items due on the 30th and 31st fall on the 28th in February") {
		t.Fatalf("missing fold note:\n%s", out)
	}
	if !strings.Contains(out, "2 expenses") {
		t.Fatalf("folded day should list 2 expenses:\n%s", out)
	}
	if !strings.Contains(out, "Large Expenses (more than $90.00)") {
		t.Fatalf("legend threshold missing:\n%s", out)
	}
}

func TestRenderPieLegend(t *testing.T) {
	cats := pipeline.AggregateCategories(febRecord().Expenses)
	l := pipeline.LayoutPie(cats, model.DefaultPieGeometry())
	out := RenderPieLegend(l)
	if !strings.Contains(out, "Rent - $1000.00 (89.3%)") {
		t.Fatalf("legend missing Rent entry:\n%s", out)
	}
	if n := strings.Count(strings.TrimRight(out, "\n"), "\n") + 1; n != 2 {
		t.Fatalf("two-column legend of 3 entries has %d rows, want 2", n)
	}
}

func TestCalendarLink(t *testing.T) {
	g := pipeline.BuildMonth(2024, time.April, febRecord())
	rs := pipeline.Reminders(g, 1)
	link := CalendarLink(rs[0])

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if u.Host != "calendar.google.com" || u.Path != "/calendar/render" {
		t.Fatalf("link = %s", link)
	}
	q := u.Query()
	if q.Get("action") != "TEMPLATE" || q.Get("text") != "Expense Reminder" {
		t.Fatalf("query = %v", q)
	}
	if q.Get("dates") != "20240331/20240331" {
		t.Fatalf("dates = %q, want 20240331/20240331", q.Get("dates"))
	}
	if q.Get("details") != "Tomorrow's expenses:\n- Rent: $1000.00" {
		t.Fatalf("details = %q", q.Get("details"))
	}
}

func TestRenderUsageBar(t *testing.T) {
	if got := RenderUsageBar(0.5, 10); !strings.Contains(got, "50.0%") {
		t.Fatalf("RenderUsageBar(0.5) = %q", got)
	}
	if got := RenderUsageBar(1.4, 10); !strings.Contains(got, "140.0%") {
		t.Fatalf("RenderUsageBar(1.4) = %q", got)
	}
}
