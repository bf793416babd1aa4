package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/paycheck/internal/config"
	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored budget",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	return withBudget(func(_ config.Config, db *budgetDB, rec model.BudgetRecord) error {
		if rec.IsEmpty() {
			fmt.Println("  Nothing to reset.")
			return nil
		}

		if !flagResetYes {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("refusing to reset without a terminal; pass --yes")
			}
			confirm := false
			err := huh.NewConfirm().
				Title(fmt.Sprintf("Delete the budget in %s?", db.path)).
				Description("This cannot be undone. `paycheck export` first if you want a copy.").
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirm).
				Run()
			if err != nil && !errors.Is(err, huh.ErrUserAborted) {
				return err
			}
			if !confirm {
				fmt.Println("  Kept.")
				return nil
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
		defer cancel()
		if err := store.Reset(ctx, db.port); err != nil {
			return err
		}
		fmt.Println("  Budget deleted.")
		return nil
	})
}
