// Package config loads and saves the paycheck TOML settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/validator"
)

// DBEnv overrides the database path when set.
const DBEnv = "PAYCHECK_DB"

// Config holds all paycheck configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Calendar   CalendarConfig   `toml:"calendar"`
	Chart      ChartConfig      `toml:"chart"`
	Appearance AppearanceConfig `toml:"appearance"`
	Categories CategoryConfig   `toml:"categories"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DBPath         string `toml:"db_path,omitempty"`
	DefaultCommand string `toml:"default_command" validate:"oneof=summary calendar breakdown reminders tui"`
}

// CalendarConfig holds calendar and reminder settings.
type CalendarConfig struct {
	// DefaultThreshold is the fixed small/large split. It is used when the
	// median is switched off (calendar --fixed, the TUI "t" key) and when
	// there are no expenses to take a median from.
	DefaultThreshold string `toml:"default_threshold" validate:"amount"`
	LeadDays         int    `toml:"reminder_lead_days" validate:"gte=0,lte=27"`
}

// ChartConfig holds pie chart settings.
type ChartConfig struct {
	SingleColumn  int     `toml:"legend_single_column_after" validate:"gte=1"`
	MinLabelAngle float64 `toml:"min_label_angle" validate:"gte=0"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme" validate:"oneof=flexoki-dark catppuccin-mocha tokyo-night terminal"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	geom := model.DefaultPieGeometry()
	return Config{
		General: GeneralConfig{
			DefaultCommand: "summary",
		},
		Calendar: CalendarConfig{
			DefaultThreshold: "100",
			LeadDays:         1,
		},
		Chart: ChartConfig{
			SingleColumn:  geom.SingleColumnAfter,
			MinLabelAngle: geom.MinLabelAngle,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	for _, section := range []any{c.General, c.Calendar, c.Chart, c.Appearance} {
		if err := validator.Check(section); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}

// Threshold returns the fixed severity threshold, or $100 when unset.
func (c Config) Threshold() decimal.Decimal {
	d, err := decimal.NewFromString(c.Calendar.DefaultThreshold)
	if err != nil || !d.IsPositive() {
		return decimal.NewFromInt(100)
	}
	return d
}

// Geometry returns the pie geometry with the configured overrides applied.
func (c Config) Geometry() model.PieGeometry {
	geom := model.DefaultPieGeometry()
	if c.Chart.SingleColumn > 0 {
		geom.SingleColumnAfter = c.Chart.SingleColumn
	}
	if c.Chart.MinLabelAngle >= 0 {
		geom.MinLabelAngle = c.Chart.MinLabelAngle
	}
	return geom
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "paycheck")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "paycheck")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "paycheck")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "paycheck")
}

// DBPath returns the database path from env var, config, or the default, in that order.
func DBPath(cfg Config) string {
	if p := os.Getenv(DBEnv); p != "" {
		return p
	}
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return filepath.Join(DataDir(), "paycheck.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
