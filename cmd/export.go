package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/paycheck/internal/config"
	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/source"

	"github.com/spf13/cobra"
)

var (
	flagExportFormat string
	flagExportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the stored budget as JSON or YAML",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "json", "json or yaml")
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	format, err := source.ParseFormat(flagExportFormat)
	if err != nil {
		return err
	}

	return withBudget(func(_ config.Config, _ *budgetDB, rec model.BudgetRecord) error {
		data, err := source.Export(rec, format)
		if err != nil {
			return err
		}
		if flagExportOutput == "" {
			_, err := os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(flagExportOutput, data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", flagExportOutput, err)
		}
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Wrote %s\n", flagExportOutput)
		}
		return nil
	})
}
