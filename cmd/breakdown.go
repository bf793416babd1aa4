package cmd

import (
	"fmt"

	"github.com/theirongolddev/paycheck/internal/cli"
	"github.com/theirongolddev/paycheck/internal/config"
	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/pipeline"
	"github.com/theirongolddev/paycheck/internal/tui/components"
	"github.com/theirongolddev/paycheck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var flagPieRadius int

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Expenses grouped by category, with a pie chart",
	RunE:  runBreakdown,
}

func init() {
	breakdownCmd.Flags().IntVar(&flagPieRadius, "pie", 6, "Pie chart radius in rows (0 hides the chart)")
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(_ *cobra.Command, _ []string) error {
	return withBudget(func(cfg config.Config, _ *budgetDB, rec model.BudgetRecord) error {
		if printNoBudget(rec) {
			return nil
		}

		cats := pipeline.AggregateCategories(rec.Expenses)
		if len(cats) == 0 {
			fmt.Println("\n  No expenses to break down.")
			return nil
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("EXPENSE BREAKDOWN"))
		fmt.Println()

		total := pipeline.TotalAmount(rec.Expenses)
		peak := 0.0
		for _, c := range cats {
			peak = max(peak, c.TotalAmount.InexactFloat64())
		}

		rows := make([][]string, 0, len(cats)+2)
		for i, c := range cats {
			bar := cli.RenderHorizontalBar(c.TotalAmount.InexactFloat64(), peak, 16, lipgloss.Color(pipeline.SliceColor(i)))
			rows = append(rows, []string{
				c.Label,
				cli.FormatNumber(int64(c.Count)),
				cli.FormatMoney(c.TotalAmount),
				cli.FormatPercent(c.TotalPercent),
				bar,
			})
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Total", cli.FormatNumber(int64(len(rec.Expenses))), cli.FormatMoney(total), "100.0%", ""})

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Category", "Payments", "Amount", "Share", ""},
			Rows:    rows,
		}))

		layout := pipeline.LayoutPie(cats, cfg.Geometry())
		fmt.Println()
		if flagPieRadius > 0 {
			theme.SetActive(cfg.Appearance.Theme)
			pie := components.PieChart(layout, flagPieRadius, -1)
			fmt.Println(lipgloss.NewStyle().PaddingLeft(2).Render(pie))
			fmt.Println()
		}
		fmt.Print(cli.RenderPieLegend(layout))
		return nil
	})
}
