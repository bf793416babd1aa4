package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/paycheck/internal/cli"
	"github.com/theirongolddev/paycheck/internal/config"
	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/pipeline"
	"github.com/theirongolddev/paycheck/internal/source"

	"github.com/spf13/cobra"
)

var (
	flagThreshold string
	flagFixed     bool
	flagList      bool
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Month grid of due dates and paycheck deposits",
	RunE:  runCalendar,
}

func init() {
	calendarCmd.Flags().StringVar(&flagThreshold, "threshold", "", "Fixed small/large split in dollars (default: median expense)")
	calendarCmd.Flags().BoolVar(&flagFixed, "fixed", false, "Use the configured default_threshold instead of the median")
	calendarCmd.Flags().BoolVar(&flagList, "list", false, "Also list every day with expenses")
	rootCmd.AddCommand(calendarCmd)
}

// calendarGrid builds the month and applies a fixed threshold when asked.
// An explicit amount wins over the configured default_threshold.
func calendarGrid(cfg config.Config, rec model.BudgetRecord, month pipeline.MonthRef, threshold string, fixed bool) (model.MonthGrid, error) {
	grid := pipeline.BuildMonthWithDefault(month.Year, month.Month, rec, cfg.Threshold())
	switch {
	case threshold != "":
		th, err := source.ParseAmount(threshold)
		if err != nil {
			return grid, fmt.Errorf("--threshold: %w", err)
		}
		grid = pipeline.Reclassify(grid, th)
	case fixed:
		grid = pipeline.Reclassify(grid, cfg.Threshold())
	}
	return grid, nil
}

func runCalendar(_ *cobra.Command, _ []string) error {
	month, err := selectedMonth()
	if err != nil {
		return err
	}

	return withBudget(func(cfg config.Config, _ *budgetDB, rec model.BudgetRecord) error {
		if printNoBudget(rec) {
			return nil
		}

		grid, err := calendarGrid(cfg, rec, month, flagThreshold, flagFixed)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("CALENDAR  " + strings.ToUpper(cli.FormatMonth(grid.Year, grid.Month))))
		fmt.Println()
		fmt.Print(cli.RenderCalendar(grid))
		fmt.Println()
		fmt.Printf("  Daily outflow  %s\n", cli.RenderSparkline(grid.Outflow()))
		if days := grid.DepositDays(); len(days) > 0 {
			labels := make([]string, len(days))
			for i, d := range days {
				labels[i] = cli.DaySuffix(d)
			}
			fmt.Printf("  Deposits on    %s\n", strings.Join(labels, ", "))
		}

		if flagList {
			fmt.Println()
			fmt.Print(renderDayList(grid))
		}
		return nil
	})
}

// renderDayList tabulates the days that have expenses.
func renderDayList(g model.MonthGrid) string {
	var rows [][]string
	for _, c := range g.Cells {
		if !c.HasExpenses() {
			continue
		}
		names := make([]string, len(c.Expenses))
		for i, e := range c.Expenses {
			names[i] = e.Name
		}
		date := time.Date(g.Year, g.Month, c.Day, 0, 0, 0, 0, time.Local)
		day := cli.DaySuffix(c.Day)
		if c.IsDeposit {
			day += " $"
		}
		rows = append(rows, []string{
			day,
			cli.FormatDayOfWeek(int(date.Weekday())),
			strings.Join(names, ", "),
			cli.FormatMoney(c.Total),
			c.Severity.String(),
		})
	}
	if len(rows) == 0 {
		return "  No expenses fall in " + cli.FormatMonth(g.Year, g.Month) + ".\n"
	}
	return cli.RenderTable(cli.Table{
		Headers: []string{"Day", "Weekday", "Expenses", "Total", "Size"},
		Rows:    rows,
	})
}
