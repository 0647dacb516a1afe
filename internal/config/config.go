// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/javiermolinar/calpick/internal/calendar"
	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/selection"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	Labels   LabelsConfig   `toml:"labels"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// CalendarConfig holds grid and selection settings.
type CalendarConfig struct {
	WeekStart       int    `toml:"week_start"`        // 0=Sunday .. 6=Saturday
	Mode            string `toml:"mode"`              // "single", "range", "multi_range"
	BlockLength     int    `toml:"block_length"`      // days per multi-range block
	SelectStartDate bool   `toml:"select_start_date"` // range mode: first pick anchors the start
	DisabledBefore  string `toml:"disabled_before"`   // YYYY-MM-DD (optional)
	DisabledAfter   string `toml:"disabled_after"`    // YYYY-MM-DD (optional)
	ScrollEnabled   bool   `toml:"scroll_enabled"`    // keep a five-month paging window
	Today           string `toml:"today"`             // YYYY-MM-DD override (optional)
}

// LabelsConfig holds display strings.
type LabelsConfig struct {
	MonthNames  []string `toml:"month_names"`  // January first
	DayHeadings []string `toml:"day_headings"` // Sunday first
	TitleFormat string   `toml:"title_format"` // Go time layout
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme               string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
	ShowEventIndicators bool   `toml:"show_event_indicators"`
	FadedRange          bool   `toml:"faded_range"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			WeekStart:   1,
			Mode:        selection.Single.String(),
			BlockLength: 7,
		},
		Labels: LabelsConfig{
			MonthNames:  append([]string(nil), calendar.DefaultMonthNames...),
			DayHeadings: append([]string(nil), calendar.DefaultDayHeadings...),
			TitleFormat: calendar.DefaultTitleFormat,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme:               "frappe",
			ShowEventIndicators: true,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "calpick.db"
	}
	return filepath.Join(home, ".local", "share", "calpick", "calpick.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "calpick", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	// Calendar overrides
	if v := os.Getenv("CALPICK_WEEK_START"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CALPICK_WEEK_START: %w", err)
		}
		cfg.Calendar.WeekStart = n
	}
	if v := os.Getenv("CALPICK_MODE"); v != "" {
		cfg.Calendar.Mode = v
	}
	if v := os.Getenv("CALPICK_BLOCK_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CALPICK_BLOCK_LENGTH: %w", err)
		}
		cfg.Calendar.BlockLength = n
	}
	if v := os.Getenv("CALPICK_DISABLED_BEFORE"); v != "" {
		cfg.Calendar.DisabledBefore = v
	}
	if v := os.Getenv("CALPICK_DISABLED_AFTER"); v != "" {
		cfg.Calendar.DisabledAfter = v
	}
	if v := os.Getenv("CALPICK_TODAY"); v != "" {
		cfg.Calendar.Today = v
	}

	// Labels overrides
	if v := os.Getenv("CALPICK_TITLE_FORMAT"); v != "" {
		cfg.Labels.TitleFormat = v
	}

	// Storage overrides
	if v := os.Getenv("CALPICK_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	// UI overrides
	if v := os.Getenv("CALPICK_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Calendar.WeekStart < 0 || c.Calendar.WeekStart > 6 {
		return fmt.Errorf("week_start must be between 0 and 6, got %d", c.Calendar.WeekStart)
	}
	if _, err := selection.ParseMode(c.Calendar.Mode); err != nil {
		return fmt.Errorf("mode: %w", err)
	}
	if c.Calendar.BlockLength < 1 {
		return fmt.Errorf("block_length must be at least 1, got %d", c.Calendar.BlockLength)
	}

	before, err := parseOptionalDate(c.Calendar.DisabledBefore, "disabled_before")
	if err != nil {
		return err
	}
	after, err := parseOptionalDate(c.Calendar.DisabledAfter, "disabled_after")
	if err != nil {
		return err
	}
	if !before.IsZero() && !after.IsZero() && after.Before(before, dateutil.ByDay) {
		return errors.New("disabled_after must not be before disabled_before")
	}
	if _, err := parseOptionalDate(c.Calendar.Today, "today"); err != nil {
		return err
	}

	if len(c.Labels.MonthNames) != 12 {
		return fmt.Errorf("month_names must have 12 entries, got %d", len(c.Labels.MonthNames))
	}
	if len(c.Labels.DayHeadings) != 7 {
		return fmt.Errorf("day_headings must have 7 entries, got %d", len(c.Labels.DayHeadings))
	}
	if strings.TrimSpace(c.Labels.TitleFormat) == "" {
		return errors.New("title_format must be set")
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// parseOptionalDate parses a YYYY-MM-DD field. Empty means unset.
func parseOptionalDate(s, field string) (dateutil.Date, error) {
	if strings.TrimSpace(s) == "" {
		return dateutil.Date{}, nil
	}
	d, err := dateutil.ParseDate(s)
	if err != nil {
		return dateutil.Date{}, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

// SelectionMode returns the parsed selection mode.
func (c *Config) SelectionMode() (selection.Mode, error) {
	return selection.ParseMode(c.Calendar.Mode)
}

// CalendarOptions translates the config into widget options. Selection
// inputs and events are left for the caller to fill in.
func (c *Config) CalendarOptions() (calendar.Options, error) {
	mode, err := c.SelectionMode()
	if err != nil {
		return calendar.Options{}, err
	}
	before, err := parseOptionalDate(c.Calendar.DisabledBefore, "disabled_before")
	if err != nil {
		return calendar.Options{}, err
	}
	after, err := parseOptionalDate(c.Calendar.DisabledAfter, "disabled_after")
	if err != nil {
		return calendar.Options{}, err
	}
	today, err := parseOptionalDate(c.Calendar.Today, "today")
	if err != nil {
		return calendar.Options{}, err
	}

	return calendar.Options{
		WeekStart:       c.Calendar.WeekStart,
		Today:           today,
		Paging:          c.Calendar.ScrollEnabled,
		Mode:            mode,
		SelectStartDate: c.Calendar.SelectStartDate,
		BlockLength:     c.Calendar.BlockLength,
		DisabledBefore:  before,
		DisabledAfter:   after,
		MonthNames:      c.Labels.MonthNames,
		DayHeadings:     c.Labels.DayHeadings,
		TitleFormat:     c.Labels.TitleFormat,
	}, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
