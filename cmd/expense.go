package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/paycheck/internal/cli"
	"github.com/theirongolddev/paycheck/internal/config"
	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/pipeline"
	"github.com/theirongolddev/paycheck/internal/validator"

	"github.com/spf13/cobra"
)

var flagExpenseFilter string

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "List, add and remove monthly expenses",
	RunE:  runExpenseList,
}

var expenseAddCmd = &cobra.Command{
	Use:   "add NAME AMOUNT [DUE]",
	Short: "Add an expense, e.g. `expense add Rent 1200 1st`",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runExpenseAdd,
}

var expenseRmCmd = &cobra.Command{
	Use:     "rm NUMBER|NAME",
	Aliases: []string{"remove"},
	Short:   "Remove an expense by its list number or exact name",
	Args:    cobra.ExactArgs(1),
	RunE:    runExpenseRm,
}

var expenseLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List expenses",
	RunE:    runExpenseList,
}

func init() {
	expenseCmd.PersistentFlags().StringVarP(&flagExpenseFilter, "filter", "f", "", "Only show expenses whose name contains this text")
	expenseCmd.AddCommand(expenseAddCmd, expenseRmCmd, expenseLsCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseList(_ *cobra.Command, _ []string) error {
	return withBudget(func(_ config.Config, _ *budgetDB, rec model.BudgetRecord) error {
		if len(rec.Expenses) == 0 {
			fmt.Println("\n  No expenses yet.")
			return nil
		}

		shares := pipeline.Percentages(rec.Expenses)
		rows := make([][]string, 0, len(shares))
		for i, s := range shares {
			if flagExpenseFilter != "" && len(pipeline.FilterByName([]model.Expense{s.Expense}, flagExpenseFilter)) == 0 {
				continue
			}
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				s.Name,
				cli.FormatMoney(s.Amount),
				cli.FormatDueDay(s.DueDate),
				cli.FormatPercent(s.Percent),
			})
		}
		if len(rows) == 0 {
			fmt.Printf("\n  No expenses match %q.\n", flagExpenseFilter)
			return nil
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"#", "Expense", "Amount", "Due", "Share"},
			Rows:    rows,
		}))
		if flagExpenseFilter != "" {
			matched := pipeline.FilterByName(rec.Expenses, flagExpenseFilter)
			fmt.Printf("  %s matching %q, %s\n",
				cli.FormatExpenseCount(len(matched)), flagExpenseFilter, cli.FormatMoney(pipeline.TotalAmount(matched)))
		}
		return nil
	})
}

func runExpenseAdd(_ *cobra.Command, args []string) error {
	in := validator.ExpenseInput{Name: args[0], Amount: args[1]}
	if len(args) == 3 {
		in.DueDate = args[2]
	}
	e, err := in.Expense()
	if err != nil {
		return err
	}

	return withBudget(func(_ config.Config, db *budgetDB, rec model.BudgetRecord) error {
		rec = rec.WithExpense(e)
		if err := db.save(rec); err != nil {
			return err
		}
		fmt.Printf("  Added %s: %s due %s\n", e.Name, cli.FormatMoney(e.Amount), cli.FormatDueDay(e.DueDate))
		if !e.DueDate.Valid() {
			fmt.Println("  It has no calendar day, so it will not show on the calendar.")
		}
		return nil
	})
}

func runExpenseRm(_ *cobra.Command, args []string) error {
	return withBudget(func(_ config.Config, db *budgetDB, rec model.BudgetRecord) error {
		idx, err := findExpense(rec.Expenses, args[0])
		if err != nil {
			return err
		}
		removed := rec.Expenses[idx]
		rec, err = rec.WithoutExpense(idx)
		if err != nil {
			return err
		}
		if err := db.save(rec); err != nil {
			return err
		}
		fmt.Printf("  Removed %s (%s)\n", removed.Name, cli.FormatMoney(removed.Amount))
		return nil
	})
}

// findExpense resolves a 1-based list number or a case-insensitive exact name.
func findExpense(expenses []model.Expense, ref string) (int, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(expenses) {
			return 0, fmt.Errorf("no expense number %d (have %d)", n, len(expenses))
		}
		return n - 1, nil
	}
	found := -1
	for i, e := range expenses {
		if !strings.EqualFold(e.Name, ref) {
			continue
		}
		if found >= 0 {
			return 0, fmt.Errorf("%q names more than one expense; remove it by number", ref)
		}
		found = i
	}
	if found < 0 {
		return 0, fmt.Errorf("no expense named %q", ref)
	}
	return found, nil
}
