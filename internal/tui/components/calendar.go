package components

import (
	"strings"

	"github.com/theirongolddev/paycheck/internal/cli"
	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// CalendarCellWidth returns the inner width of one day box when seven boxes
// must fit in width columns.
func CalendarCellWidth(width int) int {
	w := width/7 - 2
	if w < 6 {
		w = 6
	}
	if w > 16 {
		w = 16
	}
	return w
}

// CalendarGrid renders a month as seven bordered columns, Sunday first.
// The box for cursorDay gets a thick border.
func CalendarGrid(g model.MonthGrid, width, cursorDay int) string {
	t := theme.Active
	cw := CalendarCellWidth(width)

	heads := make([]string, 7)
	for i := range heads {
		heads[i] = lipgloss.NewStyle().
			Width(cw + 2).
			Align(lipgloss.Center).
			Foreground(t.TextMuted).
			Render(cli.FormatDayOfWeek(i))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, heads...)}
	for _, week := range g.Weeks() {
		cells := make([]string, len(week))
		for i, c := range week {
			cells[i] = calendarCell(c, cw, c != nil && c.Day == cursorDay)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func calendarCell(c *model.DayCell, cw int, focused bool) string {
	t := theme.Active

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(cw).
		Height(3)
	if c == nil {
		return box.BorderForeground(t.Border).Foreground(t.TextDim).Render("")
	}
	if focused {
		box = box.Border(lipgloss.ThickBorder())
	}

	border := t.SeverityColor(c.Severity)
	if focused {
		border = t.Accent
	}

	dayStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	head := cli.DaySuffix(c.Day)
	if c.IsDeposit {
		dayStyle = lipgloss.NewStyle().Foreground(t.DepositColor()).Bold(true)
		head += " $"
	}
	if len(c.MovedFrom) > 0 {
		head += " *"
	}

	lines := []string{dayStyle.Render(head)}
	switch len(c.Expenses) {
	case 0:
	case 1:
		lines = append(lines, lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(runewidth.Truncate(c.Expenses[0].Name, cw, "…")))
	default:
		lines = append(lines, lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(cli.FormatExpenseCount(len(c.Expenses))))
	}
	if c.HasExpenses() {
		amt := runewidth.Truncate(cli.FormatMoney(c.Total), cw, "…")
		lines = append(lines, lipgloss.NewStyle().Foreground(t.SeverityColor(c.Severity)).Bold(true).Render(amt))
	}

	return box.BorderForeground(border).Render(strings.Join(lines, "\n"))
}

// CalendarLegend renders the severity and deposit keys for the threshold.
func CalendarLegend(threshold string) string {
	t := theme.Active
	swatch := func(color lipgloss.Color, label string) string {
		return lipgloss.NewStyle().Foreground(color).Render("■") + " " +
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(label)
	}
	return strings.Join([]string{
		swatch(t.SeverityColor(model.SeveritySmall), "Small ("+threshold+" or less)"),
		swatch(t.SeverityColor(model.SeverityLarge), "Large (more than "+threshold+")"),
		swatch(t.DepositColor(), "$ Paycheck deposit"),
	}, "   ")
}
