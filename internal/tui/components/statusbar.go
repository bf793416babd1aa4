package components

import (
	"strings"

	"github.com/theirongolddev/paycheck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. info sits on the right,
// usually the month on display and how long ago the record was saved.
func RenderStatusBar(width int, info, flash string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit  [w]izard  [ ] month"
	if flash != "" {
		left += "  " + lipgloss.NewStyle().Foreground(t.Accent).Render(flash)
	}
	right := ""
	if info != "" {
		right = info + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
