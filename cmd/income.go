package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/paycheck/internal/cli"
	"github.com/theirongolddev/paycheck/internal/config"
	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/validator"

	"github.com/spf13/cobra"
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Show or set the monthly paycheque",
	RunE:  runIncomeShow,
}

var incomeSetCmd = &cobra.Command{
	Use:   "set AMOUNT DEPOSIT-DAYS...",
	Short: "Set the paycheque, e.g. `income set 2000 1st and 15th`",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runIncomeSet,
}

func init() {
	incomeCmd.AddCommand(incomeSetCmd)
	rootCmd.AddCommand(incomeCmd)
}

func runIncomeShow(_ *cobra.Command, _ []string) error {
	return withBudget(func(_ config.Config, _ *budgetDB, rec model.BudgetRecord) error {
		if rec.PaycheckAmount.IsZero() {
			fmt.Println("\n  No paycheque set. Use `paycheck income set AMOUNT DEPOSIT-DAYS`.")
			return nil
		}
		fmt.Printf("\n  Paycheque: %s\n", cli.FormatMoney(rec.PaycheckAmount))
		fmt.Printf("  Deposited: %s\n", cli.FormatDeposits(rec.Deposits))
		if rec.Deposits.IsZero() {
			fmt.Println("  No calendar day recognised, so deposits are not marked on the calendar.")
		}
		return nil
	})
}

func runIncomeSet(_ *cobra.Command, args []string) error {
	in := validator.IncomeInput{Paycheck: args[0], Deposits: strings.Join(args[1:], " ")}

	return withBudget(func(_ config.Config, db *budgetDB, rec model.BudgetRecord) error {
		rec, err := in.Apply(rec)
		if err != nil {
			return err
		}
		if err := db.save(rec); err != nil {
			return err
		}
		fmt.Printf("  Paycheque set to %s, deposited %s\n", cli.FormatMoney(rec.PaycheckAmount), cli.FormatDeposits(rec.Deposits))
		return nil
	})
}
