package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/ganttlist/internal/dateutil"
	"github.com/javiermolinar/ganttlist/internal/task"
	"github.com/javiermolinar/ganttlist/internal/tasklist"
)

func (a *App) listCmd() *cobra.Command {
	var (
		all     bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks as an indented tree",
		Long: `List tasks in table order, children indented under their parent.

Children of collapsed parents are hidden unless --all is given.`,
		Example: `  ganttlist list
  ganttlist list --all`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			ctx := context.Background()
			tree, err := a.loadTree(ctx)
			if err != nil {
				return err
			}
			tracking, err := a.repo.Tracking(ctx, a.now())
			if err != nil {
				return fmt.Errorf("reading timers: %w", err)
			}

			out := cmd.OutOrStdout()
			tasks := selectTasks(tree, all)
			if len(tasks) == 0 {
				fmt.Fprintln(out, "No tasks yet. Add one with `ganttlist add`.")
				return nil
			}

			rows := a.composeRows(tasks)
			layout := newListLayout(termWidth(), rows)
			layout.printHeader(out)
			for _, row := range rows {
				layout.printRow(out, row, tree.Depth(row.Task.ID), tracking[row.Task.ID])
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include children of collapsed parents")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// listLayout holds the column widths of list output:
// id, glyph, name, from, to and timer.
type listLayout struct {
	nameW int
	dateW int
}

var listTimerW = ansi.StringWidth("■ 00h 00m")

func newListLayout(width int, rows []tasklist.Row) listLayout {
	dateW := len("From")
	for _, row := range rows {
		dateW = max(dateW, ansi.StringWidth(row.Start.Text), ansi.StringWidth(row.End.Text))
	}
	fixed := shortIDLen + 2 + 1 + 1 + 2 + dateW + 2 + dateW + 2 + listTimerW
	return listLayout{
		nameW: max(10, width-fixed),
		dateW: dateW,
	}
}

func (l listLayout) printHeader(w io.Writer) {
	fmt.Fprintf(w, "%s  %s\n",
		strings.Repeat(" ", shortIDLen+2),
		formatHeader(padRight("Task", l.nameW)+"  "+padRight("From", l.dateW)+"  "+padRight("To", l.dateW)),
	)
}

func (l listLayout) printRow(w io.Writer, row tasklist.Row, depth int, tracked task.Tracking) {
	glyph := row.Glyph
	if glyph == "" {
		glyph = " "
	}
	name := strings.Repeat("  ", depth) + row.Name.Text
	name = padRight(ansi.Truncate(name, l.nameW, "…"), l.nameW)
	if row.Task.Expander.IsParent() {
		name = formatParent(name)
	}

	timer := ""
	switch {
	case tracked.Running:
		timer = formatRunning("■ " + dateutil.FormatDuration(tracked.Total))
	case tracked.Total > 0:
		timer = formatMuted("⏱ " + dateutil.FormatDuration(tracked.Total))
	}

	line := fmt.Sprintf("%s  %s %s  %s  %s  %s",
		formatMuted(padRight(shortID(row.Task.ID), shortIDLen)),
		glyph,
		name,
		padRight(row.Start.Text, l.dateW),
		padRight(row.End.Text, l.dateW),
		timer,
	)
	fmt.Fprintln(w, strings.TrimRight(line, " "))
}

func padRight(s string, width int) string {
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
