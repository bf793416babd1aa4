package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/paycheck/internal/cli"
	"github.com/theirongolddev/paycheck/internal/config"
	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagReminderMonths int
	flagNoLinks        bool
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Upcoming expense reminders with calendar links",
	RunE:  runReminders,
}

func init() {
	remindersCmd.Flags().IntVar(&flagReminderMonths, "months", 2, "Number of months to cover")
	remindersCmd.Flags().BoolVar(&flagNoLinks, "no-links", false, "Skip the Google Calendar links")
	rootCmd.AddCommand(remindersCmd)
}

func runReminders(_ *cobra.Command, _ []string) error {
	start, err := selectedMonth()
	if err != nil {
		return err
	}
	if flagReminderMonths < 1 {
		return errors.New("--months must be at least 1")
	}

	return withBudget(func(cfg config.Config, _ *budgetDB, rec model.BudgetRecord) error {
		if printNoBudget(rec) {
			return nil
		}

		progressFn := func(current, total int) {
			if flagQuiet || total < 6 {
				return
			}
			fmt.Fprintf(os.Stderr, "\r  Laying out months [%d/%d]", current, total)
			if current == total {
				fmt.Fprintln(os.Stderr)
			}
		}
		grids := pipeline.BuildMonths(rec, start, flagReminderMonths, cfg.Threshold(), progressFn)

		now := time.Now()
		from := time.Date(start.Year, start.Month, 1, 0, 0, 0, 0, time.Local)
		if pipeline.MonthOf(now) == start {
			from = now
		}
		reminders := pipeline.UpcomingReminders(grids, cfg.Calendar.LeadDays, from)

		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("REMINDERS  %d days ahead", cfg.Calendar.LeadDays)))
		fmt.Println()

		if len(reminders) == 0 {
			fmt.Println("  Nothing due in the selected months.")
			return nil
		}

		rows := make([][]string, 0, len(reminders))
		for _, r := range reminders {
			names := make([]string, len(r.Expenses))
			for i, e := range r.Expenses {
				names[i] = e.Name
			}
			rows = append(rows, []string{
				r.Date.Format("Mon Jan 2"),
				r.Due.Format("Mon Jan 2"),
				strings.Join(names, ", "),
				cli.FormatMoney(r.Total),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Remind", "Due", "Expenses", "Total"},
			Rows:    rows,
		}))

		if flagNoLinks {
			return nil
		}
		fmt.Println()
		fmt.Println("  Add to Google Calendar:")
		for _, r := range reminders {
			fmt.Printf("  %s  %s\n", r.Date.Format("Jan 02"), cli.CalendarLink(r))
		}
		return nil
	})
}
