package tui

import (
	"strings"

	"github.com/theirongolddev/paycheck/internal/cli"
	"github.com/theirongolddev/paycheck/internal/config"
	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/pipeline"
	"github.com/theirongolddev/paycheck/internal/validator"

	"github.com/charmbracelet/huh"
)

// IncomeForm asks for the paycheck amount and the deposit days.
func IncomeForm(in *validator.IncomeInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Income").
				Description("How much lands in your account each month, and when."),
			huh.NewInput().
				Title("Monthly paycheque amount").
				Placeholder("2000").
				Value(&in.Paycheck).
				Validate(validator.PaycheckAmount),
			huh.NewInput().
				Title("Deposit dates").
				Description("e.g. 1st and 15th, or last day of the month").
				Placeholder("1st and 15th").
				Value(&in.Deposits).
				Validate(validator.Deposits),
		),
	).WithShowHelp(true)
}

// ExpenseForm asks for one expense. The custom name field only shows when
// the "Other" category is picked. When more is non-nil the form ends by
// asking whether another expense follows.
func ExpenseForm(in *validator.ExpenseInput, categories []string, more *bool) *huh.Form {
	if in.Category == "" && len(categories) > 0 {
		in.Category = categories[0]
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Expense category").
				Options(huh.NewOptions(categories...)...).
				Value(&in.Category),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Expense name").
				Placeholder("Gym membership").
				Value(&in.CustomName).
				Validate(validator.Name),
		).WithHideFunc(func() bool { return in.Category != config.OtherCategory }),
	}

	details := []huh.Field{
		huh.NewInput().
			Title("Amount").
			Placeholder("100").
			Value(&in.Amount).
			Validate(validator.Amount),
		huh.NewInput().
			Title("Due date").
			Description("Day of the month, e.g. 15th, or \"last day\". Leave blank if it varies.").
			Placeholder("15th").
			Value(&in.DueDate).
			Validate(validator.DueDate),
	}
	if more != nil {
		details = append(details, huh.NewConfirm().
			Title("Add another expense?").
			Affirmative("Yes").
			Negative("No, review").
			Value(more))
	}
	groups = append(groups, huh.NewGroup(details...))

	return huh.NewForm(groups...).WithShowHelp(true)
}

// MoreForm asks whether to add to an existing expense list.
func MoreForm(count int, more *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("You have " + cli.FormatPayments(count) + ". Add another expense?").
				Affirmative("Yes").
				Negative("No, review").
				Value(more),
		),
	).WithShowHelp(true)
}

// ReviewForm shows the record's totals and asks for confirmation.
func ReviewForm(rec model.BudgetRecord, ok *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Review").
				Description(ReviewText(rec)),
			huh.NewConfirm().
				Title("Save this budget?").
				Affirmative("Save").
				Negative("Go back").
				Value(ok),
		),
	).WithShowHelp(true)
}

// ReviewText summarizes a record for the review step.
func ReviewText(rec model.BudgetRecord) string {
	sum := pipeline.Summarize(rec)

	var b strings.Builder
	b.WriteString("Paycheque: " + cli.FormatMoney(sum.Income) + ", deposited " + cli.FormatDeposits(rec.Deposits) + "\n")
	b.WriteString("Expenses: " + cli.FormatMoney(sum.TotalExpenses) + " across " + cli.FormatPayments(sum.Payments) + "\n")
	for _, e := range rec.Expenses {
		b.WriteString("  - " + e.Name + ": " + cli.FormatMoney(e.Amount) + " (" + cli.FormatDueDay(e.DueDate) + ")\n")
	}
	label := "Remaining: "
	if sum.Deficit() {
		label = "Deficit: "
	}
	b.WriteString(label + cli.FormatMoney(sum.Remaining))
	return b.String()
}

// IncomeInputFor prefills the income form from rec.
func IncomeInputFor(rec model.BudgetRecord) validator.IncomeInput {
	var in validator.IncomeInput
	if !rec.PaycheckAmount.IsZero() {
		in.Paycheck = rec.PaycheckAmount.String()
	}
	in.Deposits = rec.Deposits.Note
	if in.Deposits == "" && !rec.Deposits.IsZero() {
		in.Deposits = cli.FormatDeposits(rec.Deposits)
	}
	return in
}

// wizardStage is the form currently shown by the wizard.
type wizardStage int

const (
	stageIncome wizardStage = iota
	stageMore
	stageExpense
	stageReview
)

// wizard walks the record through income, expenses and review. single
// limits it to one expense form, used by the expenses tab's add key.
type wizard struct {
	stage      wizardStage
	single     bool
	rec        model.BudgetRecord
	categories []string

	income  validator.IncomeInput
	expense validator.ExpenseInput
	more    bool
	confirm bool

	form *huh.Form
}

// newWizard resumes at the record's persisted step.
func newWizard(rec model.BudgetRecord, categories []string) *wizard {
	w := &wizard{rec: rec.Clone(), categories: categories, income: IncomeInputFor(rec)}

	if rec.Step == model.StepExpenses {
		w.stage = w.expenseStage()
	}
	w.build()
	return w
}

// newExpenseWizard asks for exactly one expense.
func newExpenseWizard(rec model.BudgetRecord, categories []string) *wizard {
	w := &wizard{rec: rec.Clone(), categories: categories, single: true, stage: stageExpense}
	w.build()
	return w
}

// expenseStage asks first when there are expenses already.
func (w *wizard) expenseStage() wizardStage {
	if len(w.rec.Expenses) > 0 {
		return stageMore
	}
	return stageExpense
}

func (w *wizard) build() {
	switch w.stage {
	case stageIncome:
		w.form = IncomeForm(&w.income)
	case stageMore:
		w.more = false
		w.form = MoreForm(len(w.rec.Expenses), &w.more)
	case stageExpense:
		w.expense = validator.ExpenseInput{}
		w.more = false
		if w.single {
			w.form = ExpenseForm(&w.expense, w.categories, nil)
		} else {
			w.form = ExpenseForm(&w.expense, w.categories, &w.more)
		}
	case stageReview:
		w.confirm = true
		w.form = ReviewForm(w.rec, &w.confirm)
	}
}

// advance applies the completed form to the record and moves to the next
// stage. It reports whether the record changed and whether the wizard is
// finished.
func (w *wizard) advance() (changed, done bool, err error) {
	switch w.stage {
	case stageIncome:
		rec, err := w.income.Apply(w.rec)
		if err != nil {
			return false, false, err
		}
		rec.Step = model.StepExpenses
		w.rec = rec
		w.stage = w.expenseStage()
		w.build()
		return true, false, nil

	case stageMore:
		if w.more {
			w.stage = stageExpense
			w.build()
			return false, false, nil
		}
		w.rec.Step = model.StepSummary
		w.stage = stageReview
		w.build()
		return true, false, nil

	case stageExpense:
		e, err := w.expense.Expense()
		if err != nil {
			return false, false, err
		}
		w.rec = w.rec.WithExpense(e)
		if w.single {
			return true, true, nil
		}
		if !w.more {
			w.rec.Step = model.StepSummary
			w.stage = stageReview
		}
		w.build()
		return true, false, nil

	case stageReview:
		if w.confirm {
			w.rec.Step = model.StepSummary
			return true, true, nil
		}
		w.rec.Step = model.StepIncome
		w.stage = stageIncome
		w.build()
		return true, false, nil
	}
	return false, true, nil
}
