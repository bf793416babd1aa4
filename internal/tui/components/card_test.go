package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/paycheck/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowMatchesTallestCard(t *testing.T) {
	theme.SetActive("flexoki-dark")

	short := ContentCard("Income", "$2,000.00", 22)
	tall := ContentCard("Expenses", "Rent\nInternet\nPhone\nGym\nCar", 22)
	shortH, tallH := lipgloss.Height(short), lipgloss.Height(tall)
	if shortH >= tallH {
		t.Fatalf("short card height %d should be under tall card height %d", shortH, tallH)
	}

	lines := strings.Split(CardRow([]string{tall, short}), "\n")
	if len(lines) != tallH {
		t.Fatalf("row height = %d, want %d", len(lines), tallH)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 44 {
			t.Fatalf("row line %d width = %d, want 44", i, w)
		}
		if !strings.Contains(line, "\x1b[") {
			t.Fatalf("row line %d lost its styling: %q", i, line)
		}
	}
}

func TestFocusCardUsesAccentBorder(t *testing.T) {
	theme.SetActive("flexoki-dark")
	plain := ContentCard("Day 15", "Internet", 30)
	focus := FocusCard("Day 15", "Internet", 30)
	if plain == focus {
		t.Fatal("focus card should differ from a plain card")
	}
	if lipgloss.Width(plain) != lipgloss.Width(focus) || lipgloss.Height(plain) != lipgloss.Height(focus) {
		t.Fatal("focus card should keep the plain card's size")
	}
}

func TestCardInnerWidthFloor(t *testing.T) {
	if got := CardInnerWidth(40); got != 36 {
		t.Fatalf("CardInnerWidth(40) = %d, want 36", got)
	}
	if got := CardInnerWidth(5); got != minCardContent {
		t.Fatalf("CardInnerWidth(5) = %d, want %d", got, minCardContent)
	}
}

func TestLayoutRowSumsToWidth(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{100, 3},
		{80, 7},
		{7, 7},
		{121, 4},
	}
	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Fatalf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
		if widths[0] < widths[len(widths)-1] {
			t.Fatalf("LayoutRow(%d, %d) = %v, extra columns go left", tt.total, tt.n, widths)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow(10, 0) should be nil")
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	row := MetricCardRow([]Metric{
		{Label: "Income", Value: "$2,000.00"},
		{Label: "Expenses", Value: "$1,060.00", Delta: "2 monthly payments"},
		{Label: "Remaining", Value: "$940.00", Color: theme.Active.Surplus},
	}, 90)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Fatalf("line %d width = %d, want 90", i, w)
		}
	}
	if !strings.Contains(row, "2 monthly payments") {
		t.Fatal("delta text missing from card row")
	}
}
