package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/paycheck/internal/cli"
	"github.com/theirongolddev/paycheck/internal/tui/components"
	"github.com/theirongolddev/paycheck/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// expensesState tracks the expenses tab state.
type expensesState struct {
	cursor        int
	offset        int
	filtering     bool
	filter        textinput.Model
	query         string
	confirmDelete bool
}

func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "filter by name"
	ti.CharLimit = 60
	ti.Width = 30
	ti.Prompt = "/ "
	return ti
}

// visibleExpenses returns indices into the record's expenses that match
// the current filter, in record order.
func (a App) visibleExpenses() []int {
	q := strings.ToLower(strings.TrimSpace(a.exp.query))
	idx := make([]int, 0, len(a.rec.Expenses))
	for i, e := range a.rec.Expenses {
		if q == "" || strings.Contains(strings.ToLower(e.Name), q) {
			idx = append(idx, i)
		}
	}
	return idx
}

func (a *App) updateExpensesKey(key string) (tea.Cmd, bool) {
	switch key {
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "g":
		a.exp.cursor = 0
	case "G":
		a.exp.cursor = max(len(a.visibleExpenses())-1, 0)
	case "/":
		a.exp.filtering = true
		a.exp.filter = newFilterInput()
		a.exp.filter.SetValue(a.exp.query)
		a.exp.filter.Focus()
		return a.exp.filter.Cursor.BlinkCmd(), true
	case "esc":
		a.exp.query = ""
		a.exp.cursor = 0
	case "a":
		w := newExpenseWizard(a.rec, a.cfg.CategoryList())
		m, cmd := a.openWizard(w)
		*a = m.(App)
		return cmd, true
	case "d", "delete":
		if len(a.visibleExpenses()) > 0 {
			a.exp.confirmDelete = true
		}
	default:
		return nil, false
	}
	return nil, true
}

func (a App) updateExpenseFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.exp.query = strings.TrimSpace(a.exp.filter.Value())
		a.exp.filtering = false
		a.exp.cursor = 0
		a.exp.offset = 0
		return a, nil
	case "esc":
		a.exp.filtering = false
		return a, nil
	}

	var cmd tea.Cmd
	a.exp.filter, cmd = a.exp.filter.Update(msg)
	return a, cmd
}

func (a App) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.exp.confirmDelete = false
	if msg.String() != "y" {
		return a, nil
	}

	visible := a.visibleExpenses()
	if a.exp.cursor < 0 || a.exp.cursor >= len(visible) {
		return a, nil
	}
	rec, err := a.rec.WithoutExpense(visible[a.exp.cursor])
	if err != nil {
		a.saveErr = err
		return a, nil
	}
	a.rec = rec
	a.recompute()
	return a, saveRecordCmd(a.port, a.rec)
}

func (a App) renderExpensesTab(cw, h int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)

	var body strings.Builder

	switch {
	case a.exp.filtering:
		body.WriteString(a.exp.filter.View())
		body.WriteString("\n\n")
	case a.exp.query != "":
		body.WriteString(dimStyle.Render("Filter: " + a.exp.query + "  [Esc] clear"))
		body.WriteString("\n\n")
	}

	visible := a.visibleExpenses()
	if len(visible) == 0 {
		msg := "No expenses yet. Press a to add one."
		if a.exp.query != "" {
			msg = "No expenses match \"" + a.exp.query + "\"."
		}
		body.WriteString(dimStyle.Render(msg))
		return components.ContentCard("Expenses", body.String(), cw)
	}

	amountW, pctW, dueW := 12, 7, 20
	nameW := innerW - amountW - pctW - dueW - 5
	if nameW < 10 {
		nameW = 10
	}

	body.WriteString(headStyle.Render(fmt.Sprintf("  %-*s %*s %*s  %-*s", nameW, "Name", amountW, "Amount", pctW, "Share", dueW, "Due")))
	body.WriteString("\n")

	// Keep the cursor in view; 8 rows go to card chrome, header and footer.
	rows := max(h-8, 3)
	if a.exp.cursor < a.exp.offset {
		a.exp.offset = a.exp.cursor
	}
	if a.exp.cursor >= a.exp.offset+rows {
		a.exp.offset = a.exp.cursor - rows + 1
	}
	end := min(a.exp.offset+rows, len(visible))

	for vi := a.exp.offset; vi < end; vi++ {
		s := a.shares[visible[vi]]
		line := fmt.Sprintf("%-*s %*s %*s  %-*s",
			nameW, truncStr(s.Name, nameW),
			amountW, cli.FormatMoney(s.Amount),
			pctW, cli.FormatPercent(s.Percent),
			dueW, truncStr(cli.FormatDueDay(s.DueDate), dueW))
		if vi == a.exp.cursor {
			body.WriteString(selStyle.Render("▸ " + line))
		} else {
			body.WriteString(rowStyle.Render("  " + line))
		}
		body.WriteString("\n")
	}

	body.WriteString("\n")
	if a.exp.confirmDelete && a.exp.cursor < len(visible) {
		name := a.rec.Expenses[visible[a.exp.cursor]].Name
		body.WriteString(warnStyle.Render("Delete " + name + "? [y] yes  [any] cancel"))
	} else {
		total := cli.FormatMoney(a.summary.TotalExpenses)
		body.WriteString(dimStyle.Render(fmt.Sprintf("%d of %s · total %s   [a]dd  [d]elete  [/]filter  [j/k] move",
			len(visible), cli.FormatPayments(len(a.rec.Expenses)), total)))
	}

	return components.ContentCard("Expenses", body.String(), cw)
}
