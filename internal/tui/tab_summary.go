package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/paycheck/internal/cli"
	"github.com/theirongolddev/paycheck/internal/tui/components"
	"github.com/theirongolddev/paycheck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// maxUpcoming caps the reminder list on the summary tab.
const maxUpcoming = 6

func (a App) renderSummaryTab(cw int) string {
	t := theme.Active
	sum := a.summary

	remainingLabel, remainingDelta := "Remaining", "Available to budget"
	if sum.Deficit() {
		remainingLabel, remainingDelta = "Deficit", "Expenses exceed income"
	}

	cards := components.MetricCardRow([]components.Metric{
		{Label: "Monthly Income", Value: cli.FormatMoney(sum.Income), Delta: "Paid " + cli.FormatDeposits(a.rec.Deposits)},
		{Label: "Total Expenses", Value: cli.FormatMoney(sum.TotalExpenses), Delta: cli.FormatPayments(sum.Payments)},
		{Label: remainingLabel, Value: cli.FormatMoney(sum.Remaining), Delta: remainingDelta, Color: t.BalanceColor(sum.Deficit())},
	}, cw)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n")

	// Budget usage
	innerW := components.CardInnerWidth(cw)
	barW := innerW - 12 - 6 - 24
	if barW < 10 {
		barW = 10
	}
	note := cli.FormatMoney(sum.Remaining) + " left"
	if sum.Deficit() {
		note = cli.FormatMoney(sum.Remaining.Neg()) + " over"
	}
	usage := components.BudgetBar("Budget used", sum.UsedRatio(), note, 12, barW)
	if a.isCompactLayout() {
		usage = components.CompactBudgetBar("Budget used", sum.UsedRatio(), innerW)
	}
	b.WriteString(components.ContentCard("Paycheque", usage, cw))
	b.WriteString("\n")

	// Expenses + upcoming reminders, side by side when wide
	expensesCard := a.summaryExpenses(cw)
	upcomingCard := a.summaryUpcoming(cw)
	if !a.isCompactLayout() {
		widths := components.LayoutRow(cw, 2)
		expensesCard = a.summaryExpenses(widths[0])
		upcomingCard = a.summaryUpcoming(widths[1])
		b.WriteString(components.CardRow([]string{expensesCard, upcomingCard}))
	} else {
		b.WriteString(expensesCard)
		b.WriteString("\n")
		b.WriteString(upcomingCard)
	}
	b.WriteString("\n")

	// Daily outflow chart
	chart := components.OutflowChart(a.grid, components.CardInnerWidth(cw), 8)
	b.WriteString(components.ContentCard("Daily Outflow · "+cli.FormatMonth(a.grid.Year, a.grid.Month), chart, cw))

	return b.String()
}

func (a App) summaryExpenses(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	if len(a.shares) == 0 {
		return components.ContentCard("Expenses",
			lipgloss.NewStyle().Foreground(t.TextDim).Render("No expenses yet. Press w to run the wizard."), cw)
	}

	amountW, pctW, dueW := 12, 7, 18
	nameW := innerW - amountW - pctW - dueW - 3
	if nameW < 8 {
		nameW = 8
		dueW = 0
	}

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	moneyStyle := lipgloss.NewStyle().Foreground(t.Green)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var body strings.Builder
	head := fmt.Sprintf("%-*s %*s %*s", nameW, "Name", amountW, "Amount", pctW, "Share")
	if dueW > 0 {
		head += fmt.Sprintf(" %-*s", dueW, "Due")
	}
	body.WriteString(headStyle.Render(head))

	for _, s := range a.shares {
		body.WriteString("\n")
		body.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(s.Name, nameW))))
		body.WriteString(" ")
		body.WriteString(moneyStyle.Render(fmt.Sprintf("%*s", amountW, cli.FormatMoney(s.Amount))))
		body.WriteString(" ")
		body.WriteString(dimStyle.Render(fmt.Sprintf("%*s", pctW, cli.FormatPercent(s.Percent))))
		if dueW > 0 {
			body.WriteString(" ")
			body.WriteString(dimStyle.Render(truncStr(cli.FormatDueDay(s.DueDate), dueW)))
		}
	}

	return components.ContentCard("Expenses", body.String(), cw)
}

func (a App) summaryUpcoming(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	dateStyle := lipgloss.NewStyle().Foreground(t.Accent)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(a.upcoming) == 0 {
		return components.ContentCard("Upcoming Reminders", dimStyle.Render("Nothing due soon."), cw)
	}

	var body strings.Builder
	for i, r := range a.upcoming {
		if i == maxUpcoming {
			body.WriteString("\n" + dimStyle.Render(fmt.Sprintf("+%d more", len(a.upcoming)-maxUpcoming)))
			break
		}
		if i > 0 {
			body.WriteString("\n")
		}
		names := make([]string, len(r.Expenses))
		for j, e := range r.Expenses {
			names[j] = e.Name
		}
		date := r.Date.Format("Mon Jan 2")
		line := strings.Join(names, ", ") + " · " + cli.FormatMoney(r.Total)
		body.WriteString(dateStyle.Render(fmt.Sprintf("%-11s", date)))
		body.WriteString(nameStyle.Render(truncStr(line, innerW-11)))
	}
	return components.ContentCard("Upcoming Reminders", body.String(), cw)
}
