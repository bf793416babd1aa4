package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/paycheck/internal/config"
	"github.com/theirongolddev/paycheck/internal/source"
	"github.com/theirongolddev/paycheck/internal/tui/components"
	"github.com/theirongolddev/paycheck/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldThreshold
	settingsFieldLeadDays
	settingsFieldSingleColumn
	settingsFieldLabelAngle
	settingsFieldDefaultCommand
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a *App) updateSettingsKey(key string) (tea.Cmd, bool) {
	switch key {
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "enter":
		return a.settingsStartEdit(), true
	default:
		return nil, false
	}
	return nil, true
}

// settingsValue returns the current value of field as text.
func settingsValue(cfg config.Config, field int) string {
	switch field {
	case settingsFieldTheme:
		return cfg.Appearance.Theme
	case settingsFieldThreshold:
		return cfg.Calendar.DefaultThreshold
	case settingsFieldLeadDays:
		return strconv.Itoa(cfg.Calendar.LeadDays)
	case settingsFieldSingleColumn:
		return strconv.Itoa(cfg.Chart.SingleColumn)
	case settingsFieldLabelAngle:
		return strconv.FormatFloat(cfg.Chart.MinLabelAngle, 'f', -1, 64)
	case settingsFieldDefaultCommand:
		return cfg.General.DefaultCommand
	}
	return ""
}

func (a *App) settingsStartEdit() tea.Cmd {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
	case settingsFieldThreshold:
		ti.Placeholder = "100 (dollars)"
	case settingsFieldLeadDays:
		ti.Placeholder = "1 (days before the due date)"
	case settingsFieldSingleColumn:
		ti.Placeholder = "6 (categories)"
	case settingsFieldLabelAngle:
		ti.Placeholder = "0.2 (radians)"
	case settingsFieldDefaultCommand:
		ti.Placeholder = "summary, calendar, breakdown, reminders, tui"
	}
	ti.SetValue(settingsValue(a.cfg, a.settings.cursor))
	ti.Focus()
	a.settings.input = ti
	return ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// applySetting returns cfg with field set from val.
func applySetting(cfg config.Config, field int, val string) (config.Config, error) {
	switch field {
	case settingsFieldTheme:
		cfg.Appearance.Theme = val
	case settingsFieldThreshold:
		cfg.Calendar.DefaultThreshold = val
		if d, err := source.ParseAmount(val); err == nil {
			cfg.Calendar.DefaultThreshold = d.String()
		}
	case settingsFieldLeadDays:
		n, err := strconv.Atoi(val)
		if err != nil {
			return cfg, errors.New("lead days must be a whole number")
		}
		cfg.Calendar.LeadDays = n
	case settingsFieldSingleColumn:
		n, err := strconv.Atoi(val)
		if err != nil {
			return cfg, errors.New("legend column switch must be a whole number")
		}
		cfg.Chart.SingleColumn = n
	case settingsFieldLabelAngle:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return cfg, errors.New("label angle must be a number")
		}
		cfg.Chart.MinLabelAngle = f
	case settingsFieldDefaultCommand:
		cfg.General.DefaultCommand = val
	}
	return cfg, cfg.Validate()
}

func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settings.input.Value())

	cfg, err := applySetting(a.cfg, a.settings.cursor, val)
	if err != nil {
		a.settings.saveErr = err
		return
	}
	if err := config.Save(cfg); err != nil {
		a.settings.saveErr = err
		return
	}
	a.settings.saveErr = nil
	a.cfg = cfg
	theme.SetActive(cfg.Appearance.Theme)
	a.recompute()
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	labels := []string{
		"Theme",
		"Default threshold",
		"Reminder lead days",
		"One legend column after",
		"Min label angle",
		"Default command",
	}

	var formBody strings.Builder
	for i, label := range labels {
		value := settingsValue(a.cfg, i)
		if i == settingsFieldThreshold {
			value = "$" + value
		}

		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-24s ", label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			lbl := selectedLabelStyle.Render(fmt.Sprintf("%-24s ", label+":"))
			val := selectedStyle.Render(value)
			formBody.WriteString(marker + lbl + val)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(lbl) + lipgloss.Width(val)
			if padLen := components.CardInnerWidth(cw) - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-24s ", label+":")))
			formBody.WriteString(valueStyle.Render(value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Not saved: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	lastSave := "not this session"
	if !a.savedAt.IsZero() {
		lastSave = a.savedAt.Format("15:04:05")
	}

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Budget stored in: ") + valueStyle.Render(a.source) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:      ") + valueStyle.Render(config.ConfigPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Wizard step:      ") + valueStyle.Render(string(a.rec.Step)) + "\n")
	infoBody.WriteString(labelStyle.Render("Last saved:       ") + valueStyle.Render(lastSave))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
