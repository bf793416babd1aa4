package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"
	"github.com/mattn/go-runewidth"

	"github.com/theirongolddev/paycheck/internal/model"
)

const calendarCellWidth = 10

func severityColor(s model.Severity) lipgloss.TerminalColor {
	switch s {
	case model.SeverityLarge:
		return ColorRed
	case model.SeveritySmall:
		return ColorYellow
	default:
		return ColorBorder
	}
}

func renderDayCell(c *model.DayCell) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Width(calendarCellWidth).
		Height(3)

	if c == nil {
		return box.BorderForeground(ColorBorder).Render("")
	}

	dayStyle := valueStyle
	head := DaySuffix(c.Day)
	if c.IsDeposit {
		dayStyle = moneyStyle.Bold(true)
		head += " pay"
	}
	if len(c.MovedFrom) > 0 {
		head += " *"
	}

	lines := []string{dayStyle.Render(head)}
	switch len(c.Expenses) {
	case 0:
	case 1:
		lines = append(lines, runewidth.Truncate(c.Expenses[0].Name, calendarCellWidth, "…"))
	default:
		lines = append(lines, FormatExpenseCount(len(c.Expenses)))
	}
	if c.HasExpenses() {
		amt := runewidth.Truncate(FormatMoney(c.Total), calendarCellWidth, "…")
		lines = append(lines, lipgloss.NewStyle().Foreground(severityColor(c.Severity)).Render(amt))
	}

	return box.BorderForeground(severityColor(c.Severity)).Render(strings.Join(lines, "\n"))
}

// RenderCalendar renders a month grid as seven boxed columns, Sunday first.
func RenderCalendar(g model.MonthGrid) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(headerStyle.Render(FormatMonth(g.Year, g.Month)))
	b.WriteString("\n")

	heads := make([]string, 7)
	for i := range heads {
		heads[i] = lipgloss.NewStyle().
			Width(calendarCellWidth + 2).
			Align(lipgloss.Center).
			Foreground(ColorTextMuted).
			Render(FormatDayOfWeek(i))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, heads...))
	b.WriteString("\n")

	for _, week := range g.Weeks() {
		cells := make([]string, len(week))
		for i, c := range week {
			cells[i] = renderDayCell(c)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	for _, n := range FoldNotes(g) {
		b.WriteString(mutedStyle.Render("  * " + n))
		b.WriteString("\n")
	}
	b.WriteString(RenderCalendarLegend(g))
	return b.String()
}

// FoldNotes explains which nominal days were moved onto a short month's last day.
func FoldNotes(g model.MonthGrid) []string {
	var notes []string
	for _, c := range g.Notes() {
		days := make([]string, len(c.MovedFrom))
		for i, d := range c.MovedFrom {
			days[i] = DaySuffix(d)
		}
		notes = append(notes, "Items due on the "+english.WordSeries(days, "and")+" fall on the "+DaySuffix(c.Day)+" in "+g.Month.String())
	}
	return notes
}

// RenderCalendarLegend renders the severity and deposit keys with the threshold.
func RenderCalendarLegend(g model.MonthGrid) string {
	swatch := func(color lipgloss.TerminalColor, label string) string {
		return lipgloss.NewStyle().Foreground(color).Render("■") + " " + mutedStyle.Render(label)
	}
	th := FormatMoney(g.Threshold)
	parts := []string{
		swatch(ColorYellow, "Small Expenses ("+th+" or less)"),
		swatch(ColorRed, "Large Expenses (more than "+th+")"),
		swatch(ColorGreen, "Paycheck deposit"),
	}
	return "  " + strings.Join(parts, "   ") + "\n"
}
