package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/ganttlist/internal/dateutil"
	"github.com/javiermolinar/ganttlist/internal/task"
)

var errNotLeaf = errors.New("timers run on leaf tasks only")

func (a *App) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [id]",
		Short: "Expand or collapse a parent task",
		Long: `Flip a parent task between expanded and collapsed.

Collapsed parents hide their children in the TUI and in list output.
Toggling a leaf does nothing.`,
		Example: `  ganttlist toggle 3f2a9c1e`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tree, err := a.loadTree(ctx)
			if err != nil {
				return err
			}
			t, err := resolveTask(tree, tree.All(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if t.IsLeaf() {
				fmt.Fprintf(out, "%s has no children\n", t.Name)
				return nil
			}
			if _, err := tree.Toggle(t.ID); err != nil {
				return err
			}
			if err := a.repo.SetExpander(ctx, t.ID, t.Expander); err != nil {
				return fmt.Errorf("saving expander: %w", err)
			}

			fmt.Fprintf(out, "%s %s\n", t.Name, t.Expander)
			return nil
		},
	}
}

func (a *App) trackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track [id]",
		Short: "Start or stop the timer of a task",
		Long: `Start a timer on a leaf task, or stop it if it is already running.

Tracked time shows in the TUI when hovering the task and in list output.`,
		Example: `  ganttlist track 3f2a9c1e`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tree, err := a.loadTree(ctx)
			if err != nil {
				return err
			}
			t, err := resolveTask(tree, tree.All(), args[0])
			if err != nil {
				return err
			}
			if !t.IsLeaf() {
				return fmt.Errorf("%s: %w", t.Name, errNotLeaf)
			}

			now := a.now()
			running, err := task.ToggleTimer(ctx, a.repo, t.ID, now)
			if err != nil {
				return fmt.Errorf("toggling timer: %w", err)
			}

			out := cmd.OutOrStdout()
			if running {
				fmt.Fprintf(out, "Timer started: %s\n", t.Name)
				return nil
			}
			tracking, err := a.repo.Tracking(ctx, now)
			if err != nil {
				return fmt.Errorf("reading timers: %w", err)
			}
			fmt.Fprintf(out, "Timer stopped: %s (%s tracked)\n", t.Name, dateutil.FormatDuration(tracking[t.ID].Total))
			return nil
		},
	}
}
