package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/paycheck/internal/cli"
	"github.com/theirongolddev/paycheck/internal/tui/components"
	"github.com/theirongolddev/paycheck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) moveSlice(delta int) {
	n := len(a.cats)
	if n == 0 {
		a.sliceIdx = -1
		return
	}
	// -1 means nothing selected; moving from it lands on the first or last slice
	switch {
	case a.sliceIdx < 0 && delta > 0:
		a.sliceIdx = 0
	case a.sliceIdx < 0:
		a.sliceIdx = n - 1
	default:
		a.sliceIdx = min(max(a.sliceIdx+delta, 0), n-1)
	}
}

func (a *App) updateBreakdownKey(key string) bool {
	switch key {
	case "j", "down":
		a.moveSlice(1)
	case "k", "up":
		a.moveSlice(-1)
	case "esc":
		a.sliceIdx = -1
	default:
		return false
	}
	return true
}

func (a App) renderBreakdownTab(cw int) string {
	t := theme.Active

	if len(a.cats) == 0 {
		return components.ContentCard("Breakdown",
			lipgloss.NewStyle().Foreground(t.TextDim).Render("No expenses yet. Press w to run the wizard."), cw)
	}

	var pieW, legendW int
	if a.isCompactLayout() {
		pieW, legendW = cw, cw
	} else {
		widths := components.LayoutRow(cw, 2)
		pieW, legendW = widths[0], widths[1]
	}

	radius := min((components.CardInnerWidth(pieW)-1)/4, 8)
	pie := components.PieChart(a.layout, radius, a.sliceIdx)
	pieCard := components.ContentCard("Where the money goes", lipgloss.NewStyle().
		Width(components.CardInnerWidth(pieW)).Align(lipgloss.Center).Render(pie), pieW)

	legendCard := components.ContentCard("Categories", a.breakdownLegend(legendW), legendW)

	var b strings.Builder
	if a.isCompactLayout() {
		b.WriteString(pieCard)
		b.WriteString("\n")
		b.WriteString(legendCard)
	} else {
		b.WriteString(components.CardRow([]string{pieCard, legendCard}))
	}
	b.WriteString("\n")
	b.WriteString(a.breakdownBars(cw))
	return b.String()
}

// breakdownLegend lists the pie's legend in its one or two column layout,
// with the selected slice highlighted.
func (a App) breakdownLegend(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	colW := innerW
	if a.layout.Columns == 2 {
		colW = innerW / 2
	}

	entry := func(i int) string {
		e := a.layout.Legend[i]
		sw := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render("■")
		style := lipgloss.NewStyle().Foreground(t.TextPrimary)
		if i == a.sliceIdx {
			style = style.Background(t.SurfaceBright).Bold(true)
		}
		return lipgloss.NewStyle().Width(colW).Render(sw + " " + style.Render(truncStr(cli.LegendText(e), colW-2)))
	}

	var rows []string
	step := a.layout.Columns
	for i := 0; i < len(a.layout.Legend); i += step {
		row := entry(i)
		if step == 2 && i+1 < len(a.layout.Legend) {
			row = lipgloss.JoinHorizontal(lipgloss.Top, row, entry(i+1))
		}
		rows = append(rows, row)
	}

	if a.sliceIdx >= 0 && a.sliceIdx < len(a.cats) {
		c := a.cats[a.sliceIdx]
		rows = append(rows, "", lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render(c.Label),
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(fmt.Sprintf("%s · %s of spending · %s",
				cli.FormatMoney(c.TotalAmount), cli.FormatPercent(c.TotalPercent), cli.FormatPayments(c.Count))))
	}
	rows = append(rows, "", lipgloss.NewStyle().Foreground(t.TextDim).Render("[j/k] select  [Esc] clear"))
	return strings.Join(rows, "\n")
}

// breakdownBars ranks the categories as horizontal bars.
func (a App) breakdownBars(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	labelW := 0
	maxAmt := 0.0
	for _, c := range a.cats {
		labelW = max(labelW, lipgloss.Width(c.Label))
		maxAmt = max(maxAmt, c.TotalAmount.InexactFloat64())
	}
	labelW = min(labelW, 24)
	valueW := 22
	barMax := max(innerW-labelW-valueW-2, 5)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for i, c := range a.cats {
		if i > 0 {
			b.WriteString("\n")
		}
		amt := c.TotalAmount.InexactFloat64()
		barLen := 0
		if maxAmt > 0 {
			barLen = int(amt / maxAmt * float64(barMax))
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(a.layout.Slices[i].Color)).
			Render(strings.Repeat("█", barLen))
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s ", labelW, truncStr(c.Label, labelW))))
		b.WriteString(bar)
		b.WriteString(strings.Repeat(" ", barMax-barLen+1))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%12s %7s", cli.FormatMoney(c.TotalAmount), cli.FormatPercent(c.TotalPercent))))
	}
	return components.ContentCard("By Amount", b.String(), cw)
}
