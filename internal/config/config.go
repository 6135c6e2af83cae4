// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/javiermolinar/ganttlist/internal/tasklist"
)

// Config holds the application configuration.
type Config struct {
	Table   TableConfig   `toml:"table"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// TableConfig holds the task list layout settings.
type TableConfig struct {
	Locale       string `toml:"locale"`        // BCP 47 tag, e.g. "en-US"
	RowHeight    int    `toml:"row_height"`    // px
	RowWidth     string `toml:"row_width"`     // CSS length, e.g. "155px"
	TaskWidth    int    `toml:"task_width"`    // px
	HeaderHeight int    `toml:"header_height"` // px
	FontFamily   string `toml:"font_family"`
	FontSize     string `toml:"font_size"`
	CellWidthPx  int    `toml:"cell_width_px"`  // pixels per terminal column
	CellHeightPx int    `toml:"cell_height_px"` // pixels per terminal line
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
	Mouse bool   `toml:"mouse"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			Locale:       "en-US",
			RowHeight:    50,
			RowWidth:     "155px",
			TaskWidth:    250,
			HeaderHeight: 50,
			FontFamily:   "Arial, Roboto, Oxygen, Ubuntu, Cantarell, Fira Sans, Droid Sans, Helvetica Neue",
			FontSize:     "14px",
			CellWidthPx:  tasklist.DefaultMetrics.CellWidthPx,
			CellHeightPx: tasklist.DefaultMetrics.CellHeightPx,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "frappe",
			Mouse: true,
		},
	}
}

// Metrics returns the pixel-to-cell conversion for the configured terminal.
func (c *Config) Metrics() tasklist.Metrics {
	return tasklist.Metrics{
		CellWidthPx:  c.Table.CellWidthPx,
		CellHeightPx: c.Table.CellHeightPx,
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ganttlist.db"
	}
	return filepath.Join(home, ".local", "share", "ganttlist", "ganttlist.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "ganttlist", "config.toml")
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
	strs := map[string]*string{
		"GANTTLIST_LOCALE":      &cfg.Table.Locale,
		"GANTTLIST_ROW_WIDTH":   &cfg.Table.RowWidth,
		"GANTTLIST_FONT_FAMILY": &cfg.Table.FontFamily,
		"GANTTLIST_FONT_SIZE":   &cfg.Table.FontSize,
		"GANTTLIST_DB_PATH":     &cfg.Storage.DBPath,
		"GANTTLIST_UI_THEME":    &cfg.UI.Theme,
	}
	for key, dst := range strs {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"GANTTLIST_ROW_HEIGHT":    &cfg.Table.RowHeight,
		"GANTTLIST_TASK_WIDTH":    &cfg.Table.TaskWidth,
		"GANTTLIST_HEADER_HEIGHT": &cfg.Table.HeaderHeight,
	}
	for key, dst := range ints {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
	}

	if v := os.Getenv("GANTTLIST_UI_MOUSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GANTTLIST_UI_MOUSE: %w", err)
		}
		cfg.UI.Mouse = b
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
	if _, err := language.Parse(c.Table.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Table.Locale, err)
	}
	if _, err := tasklist.ParseLength(c.Table.RowWidth); err != nil {
		return fmt.Errorf("row_width: %w", err)
	}

	positive := []struct {
		name  string
		value int
	}{
		{"row_height", c.Table.RowHeight},
		{"task_width", c.Table.TaskWidth},
		{"header_height", c.Table.HeaderHeight},
		{"cell_width_px", c.Table.CellWidthPx},
		{"cell_height_px", c.Table.CellHeightPx},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", p.name, p.value)
		}
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
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
