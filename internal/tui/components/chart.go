package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders one block per value, scaled to the largest.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	runes := make([]rune, len(values))
	for i, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		runes[i] = sparkBlocks[min(max(idx, 0), len(sparkBlocks)-1)]
	}
	return lipgloss.NewStyle().Foreground(color).Background(theme.Active.Surface).Render(string(runes))
}

// OutflowChart draws one bar per day of g, colored by the day's severity,
// over a dollar axis. Deposit days get a "$" under the axis. Narrow widths
// fall back to a sparkline.
func OutflowChart(g model.MonthGrid, width, height int) string {
	values := g.Outflow()
	t := theme.Active
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, t.Accent)
	}

	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	if peak == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
			Render("Nothing due in " + g.Month.String())
	}

	// Y axis: a round step with at most height/2 intervals.
	step := tickStep(peak)
	for math.Ceil(peak/step) > float64(max(height/2, 2)) {
		step *= 2
	}
	intervals := max(int(math.Ceil(peak/step)), 1)
	ceiling := step * float64(intervals)
	rowsPerTick := max(height/intervals, 2)
	chartH := rowsPerTick * intervals

	labelW := max(len(formatMoneyTick(ceiling))+1, 4)
	plotW := max(width-labelW-1, 5)

	n := len(values)
	barW, gap := 1, 0
	switch {
	case n*3-1 <= plotW:
		barW, gap = min((plotW+1)/n-1, 3), 1
	case n*2-1 <= plotW:
		gap = 1
	}
	stride := barW + gap
	axisLen := n*barW + (n-1)*gap

	surface := lipgloss.NewStyle().Background(t.Surface)
	axis := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	bars := make([]lipgloss.Style, n)
	for i, c := range g.Cells {
		bars[i] = lipgloss.NewStyle().Foreground(t.SeverityColor(c.Severity)).Background(t.Surface)
	}

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		top := ceiling * float64(row) / float64(chartH)
		bottom := ceiling * float64(row-1) / float64(chartH)

		label := ""
		if row%rowsPerTick == 0 {
			label = formatMoneyTick(step * float64(row/rowsPerTick))
		}
		b.WriteString(axis.Render(fmt.Sprintf("%*s│", labelW, label)))

		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(surface.Render(strings.Repeat(" ", gap)))
			}
			cell := " "
			switch {
			case v >= top:
				cell = "█"
			case v > bottom:
				idx := int((v - bottom) / (top - bottom) * float64(len(sparkBlocks)))
				cell = string(sparkBlocks[min(max(idx, 0), len(sparkBlocks)-1)])
			}
			b.WriteString(bars[i].Render(strings.Repeat(cell, barW)))
		}
		b.WriteString("\n")
	}

	b.WriteString(axis.Render(fmt.Sprintf("%*s└", labelW, "$0")))
	b.WriteString(axis.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")
	b.WriteString(surface.Render(strings.Repeat(" ", labelW+1)))
	b.WriteString(dayAxis(g, stride, axisLen))
	return b.String()
}

// dayAxis labels day 1, every fifth day and the last day, and marks
// deposit days with "$" where no label is printed.
func dayAxis(g model.MonthGrid, stride, axisLen int) string {
	t := theme.Active
	buf := []rune(strings.Repeat(" ", axisLen))
	deposits := make([]bool, axisLen)

	lastEnd := -1
	for i, c := range g.Cells {
		pos := i * stride
		if c.IsDeposit && pos < axisLen && pos > lastEnd {
			buf[pos] = '$'
			deposits[pos] = true
		}
		if c.Day != 1 && c.Day%5 != 0 && c.Day != len(g.Cells) {
			continue
		}
		lbl := strconv.Itoa(c.Day)
		if pos <= lastEnd || pos+len(lbl) > axisLen {
			continue
		}
		for j, r := range lbl {
			buf[pos+j] = r
			deposits[pos+j] = false
		}
		lastEnd = pos + len(lbl)
	}

	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	dep := lipgloss.NewStyle().Foreground(t.DepositColor()).Background(t.Surface).Bold(true)
	var b strings.Builder
	for start := 0; start < len(buf); {
		end := start + 1
		for end < len(buf) && deposits[end] == deposits[start] {
			end++
		}
		run := string(buf[start:end])
		if deposits[start] {
			b.WriteString(dep.Render(run))
		} else {
			b.WriteString(dim.Render(run))
		}
		start = end
	}
	return b.String()
}

// tickStep picks a 1/2/5 step giving about five ticks.
func tickStep(peak float64) float64 {
	if peak <= 0 {
		return 1
	}
	rough := peak / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	switch frac := rough / base; {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// formatMoneyTick renders axis values as compact dollars ("$1.5k").
func formatMoneyTick(v float64) string {
	switch {
	case v >= 1e6:
		return "$" + trimTick(v/1e6) + "M"
	case v >= 1e3:
		return "$" + trimTick(v/1e3) + "k"
	case v >= 1:
		return fmt.Sprintf("$%.0f", v)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

func trimTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
