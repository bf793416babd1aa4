// Package tui provides the interactive Bubble Tea dashboard for paycheck.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/paycheck/internal/cli"
	"github.com/theirongolddev/paycheck/internal/config"
	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/pipeline"
	"github.com/theirongolddev/paycheck/internal/store"
	"github.com/theirongolddev/paycheck/internal/tui/components"
	"github.com/theirongolddev/paycheck/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RecordLoadedMsg is sent when the record has been read and the first
// months laid out.
type RecordLoadedMsg struct {
	Record   model.BudgetRecord
	Grids    []model.MonthGrid
	LoadTime time.Duration
	Err      error
}

// ProgressMsg reports month layout progress.
type ProgressMsg struct {
	Current int
	Total   int
}

// RecordSavedMsg is sent when a save through the store finishes.
type RecordSavedMsg struct {
	Record model.BudgetRecord
	At     time.Time
	Err    error
}

// Tab indices, in components.Tabs order.
const (
	tabSummary = iota
	tabCalendar
	tabExpenses
	tabBreakdown
	tabSettings
)

// App is the root Bubble Tea model.
type App struct {
	// Data
	port     store.Port
	rec      model.BudgetRecord
	loaded   bool
	loadErr  error
	loadTime time.Duration
	savedAt  time.Time
	saveErr  error
	source   string

	cfg   config.Config
	month pipeline.MonthRef
	now   func() time.Time

	// Pre-computed for the current record and month
	summary  model.Summary
	shares   []model.ExpenseShare
	cats     []model.CategoryStats
	layout   model.PieLayout
	grid     model.MonthGrid
	upcoming []model.Reminder

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	flash     string

	// Per-tab state
	cal      calendarState
	exp      expensesState
	sliceIdx int
	settings settingsState

	// Wizard (huh forms), nil when closed
	wiz *wizard

	// Loading, channel-based progress subscription
	spinner     spinner.Model
	progress    int
	progressMax int
	loadSub     chan tea.Msg
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5 // minimum content area height

	// months laid out from the one on display, for reminders
	reminderMonths = 2

	ioTimeout = 10 * time.Second
)

// NewApp creates the root model. Nothing is read until Init runs.
func NewApp(port store.Port, cfg config.Config, month pipeline.MonthRef) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		port:     port,
		rec:      model.NewRecord(),
		cfg:      cfg,
		month:    month,
		now:      time.Now,
		source:   "memory",
		sliceIdx: -1,
		spinner:  sp,
		loadSub:  make(chan tea.Msg, 16),
	}
}

// WithSource sets the description of where the record lives, shown on the
// settings tab.
func (a App) WithSource(desc string) App {
	a.source = desc
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadRecordCmd(a.port, a.month, a.cfg, a.loadSub),
		a.spinner.Tick,
	)
}

// recompute derives everything the tabs show from the record, the month on
// display and the config.
func (a *App) recompute() {
	a.summary = pipeline.Summarize(a.rec)
	a.shares = pipeline.Percentages(a.rec.Expenses)
	a.cats = pipeline.AggregateCategories(a.rec.Expenses)
	a.layout = pipeline.LayoutPie(a.cats, a.cfg.Geometry())

	grids := pipeline.BuildMonths(a.rec, a.month, reminderMonths, a.cfg.Threshold(), nil)
	a.applyGrids(grids)

	if a.sliceIdx >= len(a.cats) {
		a.sliceIdx = len(a.cats) - 1
	}
	if n := len(a.visibleExpenses()); a.exp.cursor >= n {
		a.exp.cursor = max(0, n-1)
	}
}

func (a *App) applyGrids(grids []model.MonthGrid) {
	if len(grids) == 0 {
		return
	}
	a.grid = grids[0]
	if a.cal.fixedThreshold {
		a.grid = pipeline.Reclassify(a.grid, a.cfg.Threshold())
	}
	if a.cal.day < 1 || a.cal.day > a.grid.DaysInMonth {
		a.cal.day = 1
		if pipeline.MonthOf(a.now()) == a.month {
			a.cal.day = a.now().Day()
		}
	}
	a.upcoming = pipeline.UpcomingReminders(grids, a.cfg.Calendar.LeadDays, a.now())
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.wiz != nil {
			a.wiz.form = a.wiz.form.WithWidth(a.contentWidth())
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.wiz != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			a.moveCursor(1)
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case ProgressMsg:
		a.progress = msg.Current
		a.progressMax = msg.Total
		return a, waitForLoadMsg(a.loadSub)

	case RecordLoadedMsg:
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.loadErr = msg.Err
		a.rec = msg.Record
		a.recompute()
		if len(msg.Grids) > 0 {
			a.applyGrids(msg.Grids)
		}
		if msg.Err == nil && a.rec.Step != model.StepSummary {
			return a.openWizard(newWizard(a.rec, a.cfg.CategoryList()))
		}
		return a, nil

	case RecordSavedMsg:
		a.saveErr = msg.Err
		if msg.Err == nil {
			a.savedAt = msg.At
			a.flash = "Saved"
		} else {
			a.flash = ""
		}
		return a, nil
	}

	// Forward unhandled messages (cursor blinks, etc.) to whatever has focus
	if a.wiz != nil {
		return a.updateWizard(msg)
	}
	if a.activeTab == tabExpenses && a.exp.filtering {
		var cmd tea.Cmd
		a.exp.filter, cmd = a.exp.filter.Update(msg)
		return a, cmd
	}
	if a.activeTab == tabSettings && a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}
	if !a.loaded {
		return a, nil
	}

	// The wizard intercepts all keys
	if a.wiz != nil {
		return a.updateWizard(msg)
	}

	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}
	if a.activeTab == tabExpenses && a.exp.filtering {
		return a.updateExpenseFilter(msg)
	}
	if a.activeTab == tabExpenses && a.exp.confirmDelete {
		return a.updateDeleteConfirm(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	a.flash = ""

	// Per-tab keys first; anything they don't handle falls through.
	var (
		cmd     tea.Cmd
		handled bool
	)
	switch a.activeTab {
	case tabCalendar:
		handled = a.updateCalendarKey(key)
	case tabExpenses:
		cmd, handled = a.updateExpensesKey(key)
	case tabBreakdown:
		handled = a.updateBreakdownKey(key)
	case tabSettings:
		cmd, handled = a.updateSettingsKey(key)
	}
	if handled {
		return a, cmd
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "w":
		return a.openWizard(newWizard(a.rec, a.cfg.CategoryList()))
	case "r":
		a.loaded = false
		a.progress, a.progressMax = 0, 0
		return a, tea.Batch(loadRecordCmd(a.port, a.month, a.cfg, a.loadSub), a.spinner.Tick)
	case "[":
		a.month = a.month.Prev()
		a.cal.day = 0
		a.recompute()
	case "]":
		a.month = a.month.Next()
		a.cal.day = 0
		a.recompute()
	case ".":
		a.month = pipeline.MonthOf(a.now())
		a.cal.day = 0
		a.recompute()
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

// moveCursor moves the list cursor of the active tab.
func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case tabCalendar:
		a.moveDay(delta)
	case tabExpenses:
		n := len(a.visibleExpenses())
		a.exp.cursor = min(max(a.exp.cursor+delta, 0), max(n-1, 0))
	case tabBreakdown:
		a.moveSlice(delta)
	case tabSettings:
		a.settings.cursor = min(max(a.settings.cursor+delta, 0), settingsFieldCount-1)
	}
}

func (a App) openWizard(w *wizard) (tea.Model, tea.Cmd) {
	a.wiz = w
	if a.width > 0 {
		a.wiz.form = a.wiz.form.WithWidth(a.contentWidth())
	}
	return a, a.wiz.form.Init()
}

func (a App) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.wiz.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.wiz.form = f
	}

	switch a.wiz.form.State {
	case huh.StateCompleted:
		changed, done, err := a.wiz.advance()
		if err != nil {
			a.saveErr = err
			a.wiz = nil
			return a, nil
		}
		var cmds []tea.Cmd
		if changed {
			a.rec = a.wiz.rec.Clone()
			a.recompute()
			cmds = append(cmds, saveRecordCmd(a.port, a.rec))
		}
		if done {
			a.wiz = nil
			return a, tea.Batch(cmds...)
		}
		if a.width > 0 {
			a.wiz.form = a.wiz.form.WithWidth(a.contentWidth())
		}
		cmds = append(cmds, a.wiz.form.Init())
		return a, tea.Batch(cmds...)

	case huh.StateAborted:
		a.wiz = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.wiz != nil {
		return a.viewWizard()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  paycheck needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ paycheck"))
	b.WriteString(subtitleStyle.Render(" · Monthly budget"))
	b.WriteString("\n\n")

	if a.progressMax > 0 {
		barW := 40
		if barW > w-30 {
			barW = w - 30
		}
		if barW < 20 {
			barW = 20
		}
		pct := float64(a.progress) / float64(a.progressMax)
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Laying out months\n\n"))
		b.WriteString(components.LoadingBar(pct, barW))
	} else {
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Loading budget..."))
	}

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewWizard() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	steps := []string{"Income", "Expenses", "Review"}
	current := 0
	switch a.wiz.stage {
	case stageMore, stageExpense:
		current = 1
	case stageReview:
		current = 2
	}
	crumbs := make([]string, len(steps))
	for i, s := range steps {
		if i == current {
			crumbs[i] = titleStyle.Render(s)
		} else {
			crumbs[i] = dimStyle.Render(s)
		}
	}

	header := titleStyle.Render("◈ Budget setup") + "  " + strings.Join(crumbs, dimStyle.Render(" › "))
	if a.wiz.single {
		header = titleStyle.Render("◈ Add expense")
	}

	body := header + "\n\n" + a.wiz.form.View()
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	type binding struct{ key, desc string }
	sections := []struct {
		title    string
		bindings []binding
	}{
		{"Navigation", []binding{
			{"s c e b x", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"[ ]", "Previous / Next month"},
			{".", "Back to this month"},
			{"j k", "Navigate lists"},
		}},
		{"Actions", []binding{
			{"w", "Run the budget wizard"},
			{"a", "Add an expense (Expenses)"},
			{"d", "Delete an expense (Expenses)"},
			{"/", "Filter expenses"},
			{"t", "Median or fixed threshold (Calendar)"},
			{"Enter", "Edit setting"},
			{"r", "Reload from disk"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + month pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := pillStyle.Render(" ") +
		pillAccentStyle.Render(cli.FormatMonth(a.month.Year, a.month.Month)) +
		pillStyle.Render(" │ paid "+cli.FormatDeposits(a.rec.Deposits)+" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		pillRowStyle.Render(pill)

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.statusInfo(), a.flash)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case tabSummary:
		content = a.renderSummaryTab(cw)
	case tabCalendar:
		content = a.renderCalendarTab(cw)
	case tabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case tabBreakdown:
		content = a.renderBreakdownTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center when w > cw
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusInfo() string {
	switch {
	case a.saveErr != nil:
		return "Save failed: " + a.saveErr.Error()
	case a.loadErr != nil:
		return "Load failed: " + a.loadErr.Error()
	case !a.savedAt.IsZero():
		return "Saved " + a.savedAt.Format("15:04:05")
	default:
		return fmt.Sprintf("Loaded in %dms", a.loadTime.Milliseconds())
	}
}

// ─── Commands ───────────────────────────────────────────────────

// loadRecordCmd reads the record and lays out the first months in a
// background goroutine. It streams ProgressMsg updates and a final
// RecordLoadedMsg through sub.
func loadRecordCmd(port store.Port, month pipeline.MonthRef, cfg config.Config, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			start := time.Now()

			// Non-blocking send so workers aren't stalled; the next update catches up.
			progressFn := func(current, total int) {
				select {
				case sub <- ProgressMsg{Current: current, Total: total}:
				default:
				}
			}

			ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
			defer cancel()

			rec, err := port.Load(ctx)
			if err != nil {
				sub <- RecordLoadedMsg{
					Record:   model.NewRecord(),
					LoadTime: time.Since(start),
					Err:      fmt.Errorf("loading budget: %w", err),
				}
				return
			}

			grids := pipeline.BuildMonths(rec, month, reminderMonths, cfg.Threshold(), progressFn)
			sub <- RecordLoadedMsg{Record: rec, Grids: grids, LoadTime: time.Since(start)}
		}()

		// Block until the first message (either ProgressMsg or RecordLoadedMsg)
		return <-sub
	}
}

// waitForLoadMsg blocks until the next message arrives from the loader goroutine.
func waitForLoadMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

// saveRecordCmd writes the whole record through the store.
func saveRecordCmd(port store.Port, rec model.BudgetRecord) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
		defer cancel()
		if err := port.Save(ctx, rec); err != nil {
			return RecordSavedMsg{Record: rec, Err: fmt.Errorf("saving budget: %w", err)}
		}
		return RecordSavedMsg{Record: rec, At: time.Now()}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
func (a App) tabAtX(x int) int {
	return components.TabAtX(x, a.activeTab)
}
