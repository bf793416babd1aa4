package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paycheck/internal/model"
)

// LegendText formats one legend entry as "label - $amount (pct%)".
func LegendText(e model.LegendEntry) string {
	return fmt.Sprintf("%s - $%.2f (%.1f%%)", e.Label, e.Amount, e.Percent)
}

// RenderPieLegend renders legend entries in the layout's column arrangement.
func RenderPieLegend(l model.PieLayout) string {
	if len(l.Legend) == 0 {
		return ""
	}

	rows := make([]string, 0, len(l.Legend))
	colWidth := 0
	for _, e := range l.Legend {
		colWidth = max(colWidth, lipgloss.Width(LegendText(e))+2)
	}

	entry := func(e model.LegendEntry) string {
		sw := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render("■")
		return lipgloss.NewStyle().Width(colWidth).Render(sw + " " + LegendText(e))
	}

	if l.Columns == 1 {
		for _, e := range l.Legend {
			rows = append(rows, "  "+entry(e))
		}
	} else {
		for i := 0; i < len(l.Legend); i += 2 {
			row := entry(l.Legend[i])
			if i+1 < len(l.Legend) {
				row = lipgloss.JoinHorizontal(lipgloss.Top, row, "  ", entry(l.Legend[i+1]))
			}
			rows = append(rows, "  "+row)
		}
	}
	return strings.Join(rows, "\n") + "\n"
}
