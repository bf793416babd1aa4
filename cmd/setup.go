package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/paycheck/internal/cli"
	"github.com/theirongolddev/paycheck/internal/config"
	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/pipeline"
	"github.com/theirongolddev/paycheck/internal/tui"
	"github.com/theirongolddev/paycheck/internal/validator"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var flagSetupRestart bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Step-by-step budget wizard",
	RunE:  runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&flagSetupRestart, "restart", false, "Start again from the income step")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("setup needs an interactive terminal; use `paycheck income set` and `paycheck expense add` instead")
	}

	return withBudget(func(cfg config.Config, db *budgetDB, rec model.BudgetRecord) error {
		fmt.Println()
		fmt.Println("  Welcome to paycheck!")
		fmt.Println()

		if flagSetupRestart || rec.Step == model.StepSummary {
			rec.Step = model.StepIncome
		}

		err := runWizard(cfg, db, rec)
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup stopped. Progress so far is saved; run `paycheck setup` to continue.")
			return nil
		}
		return err
	})
}

// runWizard walks income, expenses and review, saving after every step so
// an interrupted run resumes where it stopped.
func runWizard(cfg config.Config, db *budgetDB, rec model.BudgetRecord) error {
	for {
		if rec.Step == model.StepIncome {
			in := tui.IncomeInputFor(rec)
			if err := tui.IncomeForm(&in).Run(); err != nil {
				return err
			}
			next, err := in.Apply(rec)
			if err != nil {
				return err
			}
			rec = next
			rec.Step = model.StepExpenses
			if err := db.save(rec); err != nil {
				return err
			}
		}

		more := len(rec.Expenses) == 0
		if !more {
			if err := tui.MoreForm(len(rec.Expenses), &more).Run(); err != nil {
				return err
			}
		}
		for more {
			var in validator.ExpenseInput
			more = false
			if err := tui.ExpenseForm(&in, cfg.CategoryList(), &more).Run(); err != nil {
				return err
			}
			e, err := in.Expense()
			if err != nil {
				return err
			}
			rec = rec.WithExpense(e)
			if err := db.save(rec); err != nil {
				return err
			}
		}

		rec.Step = model.StepSummary
		if err := db.save(rec); err != nil {
			return err
		}

		ok := true
		if err := tui.ReviewForm(rec, &ok).Run(); err != nil {
			return err
		}
		if ok {
			break
		}
		rec.Step = model.StepIncome
		if err := db.save(rec); err != nil {
			return err
		}
	}

	sum := pipeline.Summarize(rec)
	fmt.Println()
	fmt.Printf("  Saved to %s\n", db.path)
	fmt.Printf("  %s left after %s.\n", cli.FormatMoney(sum.Remaining), cli.FormatPayments(sum.Payments))
	fmt.Println("  Run `paycheck` for the summary, or `paycheck tui` for the dashboard.")
	return nil
}
