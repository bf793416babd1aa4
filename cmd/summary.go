package cmd

import (
	"fmt"

	"github.com/theirongolddev/paycheck/internal/cli"
	"github.com/theirongolddev/paycheck/internal/config"
	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Income, expenses and what is left over",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	return withBudget(func(_ config.Config, _ *budgetDB, rec model.BudgetRecord) error {
		if printNoBudget(rec) {
			return nil
		}

		sum := pipeline.Summarize(rec)

		fmt.Println()
		fmt.Println(cli.RenderTitle("MONTHLY BUDGET"))
		fmt.Println()

		remainingLabel := "Remaining"
		if sum.Deficit() {
			remainingLabel = "Deficit"
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"", "Amount"},
			Rows: [][]string{
				{"Monthly Income", cli.FormatMoney(sum.Income)},
				{"Deposited", cli.FormatDeposits(rec.Deposits)},
				{"---"},
				{"Total Expenses", cli.FormatMoney(sum.TotalExpenses)},
				{"Payments", cli.FormatPayments(sum.Payments)},
				{"---"},
				{remainingLabel, cli.FormatMoney(sum.Remaining)},
			},
		}))
		fmt.Printf("\n  Spoken for  %s\n", cli.RenderUsageBar(sum.UsedRatio(), 30))

		if len(rec.Expenses) == 0 {
			fmt.Println("\n  No expenses yet. Add one with `paycheck expense add NAME AMOUNT [DUE]`.")
			return nil
		}

		shares := pipeline.Percentages(rec.Expenses)
		rows := make([][]string, 0, len(shares)+2)
		for _, s := range shares {
			rows = append(rows, []string{
				s.Name,
				cli.FormatMoney(s.Amount),
				cli.FormatDueDay(s.DueDate),
				cli.FormatPercent(s.Percent),
			})
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Total", cli.FormatMoney(sum.TotalExpenses), "", "100.0%"})

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Expenses",
			Headers: []string{"Expense", "Amount", "Due", "Share"},
			Rows:    rows,
		}))
		return nil
	})
}
