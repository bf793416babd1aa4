package tui

import (
	"strings"

	"github.com/theirongolddev/paycheck/internal/cli"
	"github.com/theirongolddev/paycheck/internal/tui/components"
	"github.com/theirongolddev/paycheck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// calendarState tracks the calendar tab state.
type calendarState struct {
	day            int  // focused day of the month on display
	fixedThreshold bool // classify against the configured threshold instead of the median
}

func (a *App) moveDay(delta int) {
	if a.grid.DaysInMonth == 0 {
		return
	}
	a.cal.day = min(max(a.cal.day+delta, 1), a.grid.DaysInMonth)
}

func (a *App) updateCalendarKey(key string) bool {
	switch key {
	case "h":
		a.moveDay(-1)
	case "l":
		a.moveDay(1)
	case "k", "up":
		a.moveDay(-7)
	case "j", "down":
		a.moveDay(7)
	case "t":
		a.cal.fixedThreshold = !a.cal.fixedThreshold
		a.recompute()
	default:
		return false
	}
	return true
}

func (a App) renderCalendarTab(cw int) string {
	t := theme.Active

	mode := "median expense"
	if a.cal.fixedThreshold {
		mode = "configured"
	}

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	var body strings.Builder
	body.WriteString(headStyle.Render("Threshold " + cli.FormatMoney(a.grid.Threshold) + " (" + mode + ", t to switch)"))
	body.WriteString("\n")

	gridW := components.CardInnerWidth(cw)
	if !a.isCompactLayout() {
		gridW = components.CardInnerWidth(cw * 2 / 3)
	}
	body.WriteString(components.CalendarGrid(a.grid, gridW, a.cal.day))
	body.WriteString("\n")
	for _, n := range cli.FoldNotes(a.grid) {
		body.WriteString(headStyle.Render("* " + n))
		body.WriteString("\n")
	}
	body.WriteString(components.CalendarLegend(cli.FormatMoney(a.grid.Threshold)))

	title := cli.FormatMonth(a.grid.Year, a.grid.Month)
	if a.isCompactLayout() {
		return components.ContentCard(title, body.String(), cw) + "\n" +
			components.FocusCard("Day Details", a.dayDetails(), cw)
	}

	widths := components.LayoutRow(cw, 3)
	left := components.ContentCard(title, body.String(), widths[0]+widths[1])
	right := components.FocusCard("Day Details", a.dayDetails(), widths[2])
	return components.CardRow([]string{left, right})
}

func (a App) dayDetails() string {
	t := theme.Active
	headStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	moneyStyle := lipgloss.NewStyle().Foreground(t.Green)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	c, ok := a.grid.Cell(a.cal.day)
	if !ok {
		return dimStyle.Render("No day selected")
	}

	var b strings.Builder
	b.WriteString(headStyle.Render(cli.DaySuffix(c.Day) + " of " + a.grid.Month.String()))
	b.WriteString("\n")
	if c.IsDeposit {
		b.WriteString(lipgloss.NewStyle().Foreground(t.DepositColor()).Render("Paycheque deposit"))
		b.WriteString("\n")
	}
	if !c.HasExpenses() {
		b.WriteString(dimStyle.Render("Nothing due"))
		return b.String()
	}
	for _, e := range c.Expenses {
		b.WriteString(nameStyle.Render("- "+e.Name+": ") + moneyStyle.Render(cli.FormatMoney(e.Amount)))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(t.SeverityColor(c.Severity)).Bold(true).
		Render("Total " + cli.FormatMoney(c.Total) + " (" + c.Severity.String() + ")"))
	if len(c.MovedFrom) > 0 {
		days := make([]string, len(c.MovedFrom))
		for i, d := range c.MovedFrom {
			days[i] = cli.DaySuffix(d)
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Includes items due on the " + strings.Join(days, ", ")))
	}
	return b.String()
}
