package components

import (
	"math"
	"strings"

	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/pipeline"
	"github.com/theirongolddev/paycheck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// PieChart rasterizes a pie layout into terminal cells. Cells are about
// twice as tall as they are wide, so the disc is 4r+1 columns by 2r+1 rows.
// When selected is a valid slice index the other slices are shaded.
func PieChart(layout model.PieLayout, radius, selected int) string {
	t := theme.Active
	if len(layout.Slices) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No expenses yet")
	}
	if radius < 2 {
		radius = 2
	}

	last := layout.Slices[len(layout.Slices)-1]
	limit := (float64(radius) + 0.5) * (float64(radius) + 0.5)
	cols := 4*radius + 1

	var b strings.Builder
	for row := 0; row <= 2*radius; row++ {
		if row > 0 {
			b.WriteString("\n")
		}
		dy := float64(row - radius)

		// Runs of identical cells share one style render.
		runIdx, runLen := -2, 0
		flush := func() {
			if runLen == 0 {
				return
			}
			b.WriteString(pieCell(layout, runIdx, selected, runLen))
			runLen = 0
		}

		for col := 0; col < cols; col++ {
			dx := float64(col-2*radius) / 2
			idx := -1
			if dx*dx+dy*dy <= limit {
				angle := math.Atan2(dy, dx)
				if angle < 0 {
					angle += 2 * math.Pi
				}
				idx = pipeline.SliceAt(layout, angle)
				if idx < 0 && angle >= last.End() {
					// percentages are rounded, so the sweep can stop short of 2π
					idx = last.Index
				}
				if idx < 0 {
					idx = -3
				}
			}
			if idx != runIdx {
				flush()
				runIdx = idx
			}
			runLen++
		}
		flush()
	}
	return b.String()
}

// pieCell renders n cells of slice idx. -1 is outside the disc, other
// negatives are uncovered disc area.
func pieCell(layout model.PieLayout, idx, selected, n int) string {
	t := theme.Active
	switch {
	case idx == -1:
		return strings.Repeat(" ", n)
	case idx < 0:
		return lipgloss.NewStyle().Foreground(t.TextDim).Render(strings.Repeat("·", n))
	}
	glyph := "█"
	if selected >= 0 && selected < len(layout.Slices) && selected != idx {
		glyph = "░"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(layout.Slices[idx].Color)).
		Render(strings.Repeat(glyph, n))
}
