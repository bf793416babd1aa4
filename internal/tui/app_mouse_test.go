package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paycheck/internal/tui/components"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < len(components.Tabs); active++ {
		a := App{activeTab: active}
		pos := 1 // leading space

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w + 2 // separator
		}
	}
}

func TestTabBarWidthMatchesHitboxes(t *testing.T) {
	for active := 0; active < len(components.Tabs); active++ {
		want := 1
		for i, tab := range components.Tabs {
			want += components.TabVisualWidth(tab, i == active)
		}
		want += 2 * (len(components.Tabs) - 1)

		if got := lipgloss.Width(components.RenderTabBar(active, 0)); got != want {
			t.Fatalf("active=%d tab bar width = %d, want %d", active, got, want)
		}
	}
}
