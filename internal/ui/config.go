package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/ganttlist/internal/config"
	"github.com/javiermolinar/ganttlist/internal/tui/theme"
)

var errConfigExists = errors.New("config file already exists (use --force to overwrite)")

func (a *App) configCmd() *cobra.Command {
	var (
		initFile bool
		force    bool
		edit     bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Print the active configuration, write a default config file,
or edit the config file interactively.

Environment variables (GANTTLIST_*) override file values.`,
		Example: `  ganttlist config
  ganttlist config --init
  ganttlist config --edit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file: %s\n\n", a.configPath)

			switch {
			case initFile:
				return a.initConfig(out, force)
			case edit:
				return a.editConfig(bufio.NewReader(cmd.InOrStdin()), out)
			}
			printConfig(out, a.config)
			return nil
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Write a config file with default values")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file with --init")
	cmd.Flags().BoolVar(&edit, "edit", false, "Edit the config file interactively")
	return cmd
}

func (a *App) initConfig(out io.Writer, force bool) error {
	if _, err := os.Stat(a.configPath); err == nil && !force {
		return errConfigExists
	}
	cfg := config.Default()
	if err := cfg.SaveTo(a.configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(out, "Created %s\n\n", a.configPath)
	printConfig(out, cfg)
	return nil
}

func (a *App) editConfig(reader *bufio.Reader, out io.Writer) error {
	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg.Table.Locale = promptValue(reader, out, "Locale", cfg.Table.Locale)
	cfg.Table.RowHeight = promptInt(reader, out, "Row height (px)", cfg.Table.RowHeight)
	cfg.Table.RowWidth = promptValue(reader, out, "Date column width", cfg.Table.RowWidth)
	cfg.Table.TaskWidth = promptInt(reader, out, "Task column width (px)", cfg.Table.TaskWidth)
	cfg.Table.HeaderHeight = promptInt(reader, out, "Header height (px)", cfg.Table.HeaderHeight)
	cfg.Table.FontFamily = promptValue(reader, out, "Font family", cfg.Table.FontFamily)
	cfg.Table.FontSize = promptValue(reader, out, "Font size", cfg.Table.FontSize)
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(a.configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, formatHeader("Current configuration:"))
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[table]")
	fmt.Fprintf(out, "  locale         = %s\n", cfg.Table.Locale)
	fmt.Fprintf(out, "  row_height     = %d\n", cfg.Table.RowHeight)
	fmt.Fprintf(out, "  row_width      = %s\n", cfg.Table.RowWidth)
	fmt.Fprintf(out, "  task_width     = %d\n", cfg.Table.TaskWidth)
	fmt.Fprintf(out, "  header_height  = %d\n", cfg.Table.HeaderHeight)
	fmt.Fprintf(out, "  font_family    = %s\n", cfg.Table.FontFamily)
	fmt.Fprintf(out, "  font_size      = %s\n", cfg.Table.FontSize)
	fmt.Fprintf(out, "  cell_width_px  = %d\n", cfg.Table.CellWidthPx)
	fmt.Fprintf(out, "  cell_height_px = %d\n", cfg.Table.CellHeightPx)
	fmt.Fprintln(out, "\n[storage]")
	fmt.Fprintf(out, "  db_path        = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme          = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  mouse          = %t\n", cfg.UI.Mouse)
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

// writeFile writes data to path, creating its directory.
func writeFile(path, data string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
