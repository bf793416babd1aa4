// Package cmd implements the paycheck CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/paycheck/internal/config"
	"github.com/theirongolddev/paycheck/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	dbPath := flagDB
	if dbPath == "" {
		dbPath = config.DBPath(cfg)
	}
	fmt.Printf("    Database:        %s\n", dbPath)
	fmt.Printf("    Default command: %s\n", cfg.General.DefaultCommand)
	if info, ok := readDBInfo(dbPath); ok {
		fmt.Printf("    Schema version:  %d\n", info.version)
		if !info.savedAt.IsZero() {
			fmt.Printf("    Last saved:      %s\n", info.savedAt.Local().Format("2006-01-02 15:04"))
		}
	}
	fmt.Println()

	fmt.Println("  [Calendar]")
	fmt.Printf("    Default threshold:  $%s\n", cfg.Calendar.DefaultThreshold)
	fmt.Printf("    Reminder lead days: %d\n", cfg.Calendar.LeadDays)
	fmt.Println()

	fmt.Println("  [Chart]")
	fmt.Printf("    One legend column after: %d categories\n", cfg.Chart.SingleColumn)
	fmt.Printf("    Min label angle:         %.2f rad\n", cfg.Chart.MinLabelAngle)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Categories]")
	fmt.Printf("    %s\n", strings.Join(cfg.CategoryList(), ", "))
	fmt.Println()

	fmt.Println("  Edit the file, or change settings from the `paycheck tui` Settings tab.")
	return nil
}

type dbInfo struct {
	version int64
	savedAt time.Time
}

// readDBInfo reports the migration level of an existing database and when
// the budget was last written.
func readDBInfo(path string) (dbInfo, bool) {
	if flagEphemeral {
		return dbInfo{}, false
	}
	if _, err := os.Stat(path); err != nil {
		return dbInfo{}, false
	}
	db, err := store.Open(path)
	if err != nil {
		return dbInfo{}, false
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()

	var info dbInfo
	if info.version, err = db.SchemaVersion(ctx); err != nil {
		return dbInfo{}, false
	}
	if at, err := db.UpdatedAt(ctx, store.RecordKey); err == nil {
		info.savedAt = at
	}
	return info, true
}
