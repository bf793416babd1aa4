package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/theirongolddev/paycheck/internal/config"
	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/pipeline"
	"github.com/theirongolddev/paycheck/internal/store"
	"github.com/theirongolddev/paycheck/internal/validator"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const ioTimeout = 10 * time.Second

var (
	flagDB        string
	flagMonth     string
	flagQuiet     bool
	flagNoColor   bool
	flagVerbose   bool
	flagEphemeral bool
)

var rootCmd = &cobra.Command{
	Use:               "paycheck",
	Short:             "Paycheck budget planner",
	Long:              "Plan a monthly paycheque against recurring expenses: totals, a due-date calendar, and a category breakdown.",
	SilenceUsage:      true,
	PersistentPreRunE: initOutput,
	RunE:              runDefault,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Budget database path (default from config or $"+config.DBEnv+")")
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Month to show, as YYYY-MM (default: this month)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep the budget in memory only")
}

// initOutput sets up logging and the color profile before any command runs.
func initOutput(_ *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flagNoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}

// runDefault dispatches to the command named in the config file.
func runDefault(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	switch cfg.General.DefaultCommand {
	case "calendar":
		return runCalendar(cmd, args)
	case "breakdown":
		return runBreakdown(cmd, args)
	case "reminders":
		return runReminders(cmd, args)
	case "tui":
		return runTUI(cmd, args)
	}
	return runSummary(cmd, args)
}

// loadConfig returns the config file's settings, falling back to defaults
// with a warning when the file is unreadable.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", err)
	}
	return cfg
}

// budgetDB is an opened persistence port plus where it lives.
type budgetDB struct {
	port  store.Port
	path  string
	close func() error
}

func openBudget(cfg config.Config) (*budgetDB, error) {
	if flagEphemeral {
		return &budgetDB{
			port:  store.NewMemory(),
			path:  "memory (--ephemeral)",
			close: func() error { return nil },
		}, nil
	}

	path := flagDB
	if path == "" {
		path = config.DBPath(cfg)
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening budget: %w", err)
	}
	return &budgetDB{port: db, path: path, close: db.Close}, nil
}

func (b *budgetDB) load() (model.BudgetRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()

	rec, err := b.port.Load(ctx)
	if err != nil {
		return rec, fmt.Errorf("loading budget: %w", err)
	}
	slog.Debug("loaded budget", "path", b.path, "expenses", len(rec.Expenses), "step", rec.Step)
	return rec, nil
}

func (b *budgetDB) save(rec model.BudgetRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()

	if err := b.port.Save(ctx, rec); err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}
	slog.Debug("saved budget", "path", b.path, "expenses", len(rec.Expenses), "step", rec.Step)
	return nil
}

// withBudget is the shared load path used by all commands.
func withBudget(fn func(cfg config.Config, db *budgetDB, rec model.BudgetRecord) error) error {
	cfg := loadConfig()
	db, err := openBudget(cfg)
	if err != nil {
		return err
	}
	defer db.close()

	rec, err := db.load()
	if err != nil {
		return err
	}
	return fn(cfg, db, rec)
}

// selectedMonth returns --month, or the current month when it is unset.
func selectedMonth() (pipeline.MonthRef, error) {
	if flagMonth == "" {
		return pipeline.MonthOf(time.Now()), nil
	}
	if err := validator.Month(flagMonth); err != nil {
		return pipeline.MonthRef{}, err
	}
	return pipeline.ParseMonth(flagMonth)
}

// printNoBudget tells the user how to get started. It reports whether rec
// was empty.
func printNoBudget(rec model.BudgetRecord) bool {
	if !rec.IsEmpty() {
		return false
	}
	fmt.Println("\n  No budget yet.")
	fmt.Println("  Run `paycheck setup`, or `paycheck import FILE` to bring in a saved budget.")
	return true
}
