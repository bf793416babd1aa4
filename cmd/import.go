package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/paycheck/internal/cli"
	"github.com/theirongolddev/paycheck/internal/config"
	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/pipeline"
	"github.com/theirongolddev/paycheck/internal/source"

	"github.com/spf13/cobra"
)

var (
	flagImportFormat string
	flagImportForce  bool
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import a budget from a browser export or a paycheck export",
	Long: "Import replaces the stored budget. FILE may be the browser version's saved\n" +
		"budgetData JSON (legacy), or a file written by `paycheck export`.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&flagImportFormat, "format", "", "legacy, json or yaml (default: guessed from the file extension)")
	importCmd.Flags().BoolVar(&flagImportForce, "force", false, "Replace an existing budget without asking")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	path := args[0]
	format := source.FormatFromPath(path)
	if flagImportFormat != "" {
		f, err := source.ParseFormat(flagImportFormat)
		if err != nil {
			return err
		}
		format = f
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Reading %s (%s)...\n", path, format)
	}
	res, err := source.ReadFile(path, format)
	if err != nil {
		return err
	}

	return withBudget(func(_ config.Config, db *budgetDB, existing model.BudgetRecord) error {
		if !existing.IsEmpty() && !flagImportForce {
			return fmt.Errorf("a budget is already stored in %s; pass --force to replace it", db.path)
		}
		if err := db.save(res.Record); err != nil {
			return err
		}

		sum := pipeline.Summarize(res.Record)
		fmt.Printf("  Imported %s: %s paycheque, %s totalling %s\n",
			path, cli.FormatMoney(sum.Income), cli.FormatPayments(sum.Payments), cli.FormatMoney(sum.TotalExpenses))
		if res.SkippedExpenses > 0 {
			fmt.Fprintf(os.Stderr, "  %s skipped: amount could not be read\n", cli.FormatExpenseCount(res.SkippedExpenses))
		}
		if res.UnmatchedDates > 0 {
			fmt.Fprintf(os.Stderr, "  %s kept without a calendar day\n", cli.FormatExpenseCount(res.UnmatchedDates))
		}
		return nil
	})
}
