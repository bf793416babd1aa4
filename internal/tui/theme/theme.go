// Package theme defines color themes for the paycheck TUI dashboard.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paycheck/internal/model"
)

// Theme holds the color roles used throughout the TUI. The first group is
// chrome, the second is what budget data is drawn in.
type Theme struct {
	Name          string
	Background    lipgloss.Color
	Surface       lipgloss.Color // cards and panels
	SurfaceBright lipgloss.Color // selected rows, active tab
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // focused card, calendar cursor
	TextDim       lipgloss.Color
	TextMuted     lipgloss.Color
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color
	AccentBright  lipgloss.Color
	Green         lipgloss.Color
	GreenBright   lipgloss.Color
	Yellow        lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Cyan          lipgloss.Color

	Deposit  lipgloss.Color // paycheck deposit days
	SmallDay lipgloss.Color // days at or under the threshold
	LargeDay lipgloss.Color // days over the threshold
	Surplus  lipgloss.Color
	Deficit  lipgloss.Color
}

// palette is the raw set of colors a theme is derived from. Pairs are
// {normal, bright}; text is {dim, muted, primary}.
type palette struct {
	bg, surface, raised, border string
	text                        [3]string
	accent, green               [2]string
	yellow, orange, red, cyan   string
}

func build(name string, p palette) Theme {
	c := func(s string) lipgloss.Color { return lipgloss.Color(s) }
	return Theme{
		Name:          name,
		Background:    c(p.bg),
		Surface:       c(p.surface),
		SurfaceBright: c(p.raised),
		Border:        c(p.border),
		BorderAccent:  c(p.accent[0]),
		TextDim:       c(p.text[0]),
		TextMuted:     c(p.text[1]),
		TextPrimary:   c(p.text[2]),
		Accent:        c(p.accent[0]),
		AccentBright:  c(p.accent[1]),
		Green:         c(p.green[0]),
		GreenBright:   c(p.green[1]),
		Yellow:        c(p.yellow),
		Orange:        c(p.orange),
		Red:           c(p.red),
		Cyan:          c(p.cyan),

		Deposit:  c(p.green[1]),
		SmallDay: c(p.yellow),
		LargeDay: c(p.red),
		Surplus:  c(p.green[1]),
		Deficit:  c(p.red),
	}
}

// FlexokiDark is the default: warm, paper-inspired.
var FlexokiDark = build("flexoki-dark", palette{
	bg: "#100F0F", surface: "#1C1B1A", raised: "#343331", border: "#403E3C",
	text:   [3]string{"#575653", "#878580", "#FFFCF0"},
	accent: [2]string{"#3AA99F", "#5BC8BE"},
	green:  [2]string{"#879A39", "#A3B859"},
	yellow: "#D0A215", orange: "#DA702C", red: "#D14D41", cyan: "#24837B",
})

// CatppuccinMocha is soft pastels on a dark base.
var CatppuccinMocha = build("catppuccin-mocha", palette{
	bg: "#1E1E2E", surface: "#313244", raised: "#585B70", border: "#585B70",
	text:   [3]string{"#6C7086", "#A6ADC8", "#CDD6F4"},
	accent: [2]string{"#89B4FA", "#B4D0FB"},
	green:  [2]string{"#A6E3A1", "#C6F6C1"},
	yellow: "#F9E2AF", orange: "#FAB387", red: "#F38BA8", cyan: "#94E2D5",
})

// TokyoNight is cool blues and purples.
var TokyoNight = build("tokyo-night", palette{
	bg: "#1A1B26", surface: "#24283B", raised: "#414868", border: "#565F89",
	text:   [3]string{"#565F89", "#A9B1D6", "#C0CAF5"},
	accent: [2]string{"#7AA2F7", "#A9C1FF"},
	green:  [2]string{"#9ECE6A", "#B9E87A"},
	yellow: "#E0AF68", orange: "#FF9E64", red: "#F7768E", cyan: "#7DCFFF",
})

// Terminal sticks to the 16 ANSI colors.
var Terminal = build("terminal", palette{
	bg: "0", surface: "0", raised: "8", border: "8",
	text:   [3]string{"8", "7", "15"},
	accent: [2]string{"6", "14"},
	green:  [2]string{"2", "10"},
	yellow: "3", orange: "3", red: "1", cyan: "6",
})

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Active is the currently selected theme.
var Active = FlexokiDark

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Names lists the available theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// SeverityColor maps a calendar day's severity onto the palette.
func (t Theme) SeverityColor(s model.Severity) lipgloss.Color {
	switch s {
	case model.SeverityLarge:
		return t.LargeDay
	case model.SeveritySmall:
		return t.SmallDay
	default:
		return t.Border
	}
}

// DepositColor marks paycheck deposit days.
func (t Theme) DepositColor() lipgloss.Color { return t.Deposit }

// BalanceColor picks the surplus or deficit color.
func (t Theme) BalanceColor(deficit bool) lipgloss.Color {
	if deficit {
		return t.Deficit
	}
	return t.Surplus
}
