package components

import (
	"fmt"

	"github.com/theirongolddev/paycheck/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// LoadingBar shows how many month grids have been laid out.
func LoadingBar(done float64, width int) string {
	t := theme.Active
	bar := progress.New(
		progress.WithGradient(string(t.Cyan), string(t.AccentBright)),
		progress.WithWidth(max(width, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)
	pct := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true).
		Render(fmt.Sprintf(" %.0f%%", clampRatio(done)*100))
	return bar.ViewAs(clampRatio(done)) + pct
}

// UsageColor goes green, yellow, orange, red as more of the paycheck is
// spoken for.
func UsageColor(ratio float64) lipgloss.Color {
	t := theme.Active
	switch {
	case ratio >= 1:
		return t.Red
	case ratio >= 0.85:
		return t.Orange
	case ratio >= 0.6:
		return t.Yellow
	default:
		return t.Green
	}
}

func clampRatio(r float64) float64 {
	return min(max(r, 0), 1)
}

// usageBar fills at most width cells; overspending fills the whole bar.
func usageBar(ratio float64, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(UsageColor(ratio))),
		progress.WithWidth(max(width, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(theme.Active.TextDim)
	return bar.ViewAs(clampRatio(ratio))
}

// BudgetBar renders "label [bar] pct  note", e.g. a note of "$940.00 left".
// The percentage is the real ratio even when the bar is full.
func BudgetBar(label string, ratio float64, note string, labelW, barWidth int) string {
	t := theme.Active
	on := func(fg lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(fg).Background(t.Surface)
	}
	return on(t.TextMuted).Render(fmt.Sprintf("%-*s ", labelW, label)) +
		usageBar(ratio, barWidth) +
		on(UsageColor(ratio)).Bold(true).Render(fmt.Sprintf(" %3.0f%%", ratio*100)) +
		on(t.TextDim).Render("  "+note)
}

// CompactBudgetBar is BudgetBar without the note, squeezed into width.
func CompactBudgetBar(label string, ratio float64, width int) string {
	t := theme.Active
	pct := fmt.Sprintf(" %3.0f%%", ratio*100)
	barW := width - lipgloss.Width(label) - 1 - len(pct)
	return lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(label+" ") +
		usageBar(ratio, barW) +
		lipgloss.NewStyle().Foreground(UsageColor(ratio)).Background(t.Surface).Bold(true).Render(pct)
}
