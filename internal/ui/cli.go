// Package ui implements the ganttlist command line.
package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/ganttlist/internal/config"
	"github.com/javiermolinar/ganttlist/internal/db"
	"github.com/javiermolinar/ganttlist/internal/task"
	"github.com/javiermolinar/ganttlist/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo       task.Repository
	config     *config.Config
	configPath string
	root       *cobra.Command
	debug      bool // Enable debug logging
	now        func() time.Time
}

// NewApp creates a new CLI application with the given config. A nil repo
// is opened lazily from the configured database path.
func NewApp(repo task.Repository, cfg *config.Config) *App {
	a := &App{
		repo:       repo,
		config:     cfg,
		configPath: config.DefaultConfigPath(),
		now:        time.Now,
	}

	a.root = &cobra.Command{
		Use:   "ganttlist",
		Short: "The task table of a Gantt chart, in your terminal",
		Long: `ganttlist shows your tasks the way the left side of a Gantt chart does:
a collapsible tree of tasks with their start and end dates.

Hover a task with the mouse to reveal its timer, click the timer to
start or stop tracking time on it.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			repo, err := a.ensureRepo()
			if err != nil {
				return err
			}
			return tui.Run(repo, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Write a JSON event log to "+tui.DebugLogPath)

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.toggleCmd())
	a.root.AddCommand(a.trackCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.exportCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ganttlist %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the database on first use.
func (a *App) ensureRepo() (task.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}

	path := a.config.Storage.DBPath
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	repo, err := db.New(path)
	if err != nil {
		return nil, err
	}
	a.repo = repo
	return repo, nil
}

// Close releases the repository, if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
