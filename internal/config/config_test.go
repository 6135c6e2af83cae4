package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Table.Locale != "en-US" {
		t.Errorf("expected locale en-US, got %s", cfg.Table.Locale)
	}
	if cfg.Table.RowWidth != "155px" {
		t.Errorf("expected row_width 155px, got %s", cfg.Table.RowWidth)
	}
	if cfg.Table.TaskWidth != 250 {
		t.Errorf("expected task_width 250, got %d", cfg.Table.TaskWidth)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", cfg.UI.Theme)
	}
	if !cfg.UI.Mouse {
		t.Error("expected mouse enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Table.RowHeight != 50 {
		t.Errorf("expected default row_height, got %d", cfg.Table.RowHeight)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[table]
locale = "de-DE"
row_height = 32
row_width = "12ch"
task_width = 200
font_size = "12px"

[storage]
db_path = "/tmp/test.db"

[ui]
theme = "latte"
mouse = false
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Table.Locale != "de-DE" {
		t.Errorf("expected locale de-DE, got %s", cfg.Table.Locale)
	}
	if cfg.Table.RowHeight != 32 {
		t.Errorf("expected row_height 32, got %d", cfg.Table.RowHeight)
	}
	if cfg.Table.RowWidth != "12ch" {
		t.Errorf("expected row_width 12ch, got %s", cfg.Table.RowWidth)
	}
	if cfg.Table.FontSize != "12px" {
		t.Errorf("expected font_size 12px, got %s", cfg.Table.FontSize)
	}
	// Unset keys keep their defaults
	if cfg.Table.HeaderHeight != 50 {
		t.Errorf("expected default header_height, got %d", cfg.Table.HeaderHeight)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "latte" || cfg.UI.Mouse {
		t.Errorf("unexpected ui config: %+v", cfg.UI)
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("[table\nlocale ="), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected error for invalid toml")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[table]
locale = "de-DE"
row_height = 32

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("GANTTLIST_LOCALE", "ja-JP")
	t.Setenv("GANTTLIST_TASK_WIDTH", "300")
	t.Setenv("GANTTLIST_UI_MOUSE", "false")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Table.Locale != "ja-JP" {
		t.Errorf("expected locale ja-JP from env, got %s", cfg.Table.Locale)
	}
	// File value should be kept when no env override
	if cfg.Table.RowHeight != 32 {
		t.Errorf("expected row_height 32 from file, got %d", cfg.Table.RowHeight)
	}
	// Env should override default
	if cfg.Table.TaskWidth != 300 {
		t.Errorf("expected task_width 300 from env, got %d", cfg.Table.TaskWidth)
	}
	if cfg.UI.Mouse {
		t.Error("expected mouse disabled from env")
	}
}

func TestLoadFrom_InvalidEnvOverride(t *testing.T) {
	t.Setenv("GANTTLIST_ROW_HEIGHT", "tall")

	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Error("expected error for non-numeric GANTTLIST_ROW_HEIGHT")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad locale", func(c *Config) { c.Table.Locale = "not a locale!" }, true},
		{"empty locale", func(c *Config) { c.Table.Locale = "" }, true},
		{"row width in ch", func(c *Config) { c.Table.RowWidth = "20ch" }, false},
		{"bad row width", func(c *Config) { c.Table.RowWidth = "wide" }, true},
		{"zero row height", func(c *Config) { c.Table.RowHeight = 0 }, true},
		{"negative task width", func(c *Config) { c.Table.TaskWidth = -1 }, true},
		{"zero cell width", func(c *Config) { c.Table.CellWidthPx = 0 }, true},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	cfg := Default()
	cfg.Table.CellWidthPx = 10
	cfg.Table.CellHeightPx = 20

	m := cfg.Metrics()
	if m.CellWidthPx != 10 || m.CellHeightPx != 20 {
		t.Errorf("Metrics() = %+v", m)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Table.Locale = "sv-SE"
	cfg.Table.RowWidth = "18ch"
	cfg.UI.Theme = "mocha"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Table.Locale != "sv-SE" {
		t.Errorf("expected locale sv-SE, got %s", loaded.Table.Locale)
	}
	if loaded.Table.RowWidth != "18ch" {
		t.Errorf("expected row_width 18ch, got %s", loaded.Table.RowWidth)
	}
	if loaded.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", loaded.UI.Theme)
	}
}
