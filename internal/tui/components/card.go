// Package components provides reusable TUI widgets for the paycheck dashboard.
package components

import (
	"github.com/theirongolddev/paycheck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// minCardContent is the narrowest a card body is ever drawn.
const minCardContent = 10

// LayoutRow splits totalWidth into n widths that sum to exactly totalWidth,
// giving the leftmost cards the extra columns.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = totalWidth / n
		if i < totalWidth%n {
			widths[i]++
		}
	}
	return widths
}

// CardInnerWidth is the text width inside a card of the given outer width.
func CardInnerWidth(outerWidth int) int {
	return max(outerWidth-4, minCardContent)
}

// frame is the rounded, padded box every card is drawn in.
func frame(outerWidth int, border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(max(outerWidth-2, minCardContent)).
		Padding(0, 1)
}

// Metric is one headline figure: a label, a money value and a note under
// it. A zero Color draws the value in the primary text color.
type Metric struct {
	Label string
	Value string
	Delta string
	Color lipgloss.Color
}

// MetricCard renders m in a card of outerWidth columns.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active
	color := m.Color
	if color == "" {
		color = t.TextPrimary
	}

	lines := []string{
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label),
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(m.Value),
	}
	if m.Delta != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Delta))
	}
	return frame(outerWidth, t.Border).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// MetricCardRow lays metrics side by side across exactly totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	widths := LayoutRow(totalWidth, len(metrics))
	cards := make([]string, len(metrics))
	for i, m := range metrics {
		cards[i] = MetricCard(m, widths[i])
	}
	return CardRow(cards)
}

// ContentCard renders body under an optional bold title.
func ContentCard(title, body string, outerWidth int) string {
	return titledCard(title, body, outerWidth, theme.Active.Border)
}

// FocusCard is ContentCard with an accent border, for the item under the
// cursor.
func FocusCard(title, body string, outerWidth int) string {
	return titledCard(title, body, outerWidth, theme.Active.BorderAccent)
}

func titledCard(title, body string, outerWidth int, border lipgloss.Color) string {
	if title != "" {
		body = lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Bold(true).Render(title) + "\n" + body
	}
	return frame(outerWidth, border).Render(body)
}

// CardRow joins rendered cards left to right, top-aligned.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
