package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/ganttlist/internal/dateutil"
	"github.com/javiermolinar/ganttlist/internal/task"
)

func (a *App) addCmd() *cobra.Command {
	var (
		start  string
		end    string
		parent string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new task",
		Long: `Add a new task to the table.

Dates accept YYYY-MM-DD or keywords like today, tomorrow or next-monday.
Adding a task under a leaf turns that leaf into an expanded parent.`,
		Example: `  ganttlist add "Launch" --start=2025-01-10 --end=2025-01-24
  ganttlist add "Design review" --start=tomorrow --parent=3f2a9c1e`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := task.New(args[0], start, end)
			if err != nil {
				return err
			}

			ctx := context.Background()
			if parent != "" {
				tree, err := a.loadTree(ctx)
				if err != nil {
					return err
				}
				p, err := resolveTask(tree, tree.All(), parent)
				if err != nil {
					return err
				}
				t.ParentID = p.ID
			}

			repo, err := a.ensureRepo()
			if err != nil {
				return err
			}
			if err := repo.CreateTask(ctx, t); err != nil {
				return fmt.Errorf("creating task: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s: %s %s → %s\n",
				shortID(t.ID),
				t.Name,
				t.Start.Format(dateutil.DateLayout),
				t.End.Format(dateutil.DateLayout),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date (default: today)")
	cmd.Flags().StringVar(&end, "end", "", "End date (default: start date)")
	cmd.Flags().StringVar(&parent, "parent", "", "ID or ID prefix of the parent task")

	return cmd
}
