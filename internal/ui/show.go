package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/ganttlist/internal/report"
	"github.com/javiermolinar/ganttlist/internal/tui/theme"
)

func (a *App) showCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the task table",
		Long: `Print the task table as a formatted terminal table.

The table uses the configured locale for dates and follows the
configured theme for light or dark styling.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := a.loadTree(context.Background())
			if err != nil {
				return err
			}

			md := report.Markdown(a.composeRows(selectTasks(tree, all)))
			out, err := report.RenderTerminal(md, termWidth(), a.markdownStyle())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include children of collapsed parents")
	return cmd
}

// markdownStyle matches terminal rendering to the configured theme.
func (a *App) markdownStyle() string {
	t, err := theme.Load(a.config.UI.Theme)
	if err == nil && theme.NewPalette(t).IsLight {
		return report.StyleLight
	}
	return report.StyleDark
}

func (a *App) exportCmd() *cobra.Command {
	var (
		all    bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the task table as HTML",
		Long: `Export the task table as an HTML fragment styled with the
configured font family and size.`,
		Example: `  ganttlist export
  ganttlist export --all -o tasks.html`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := a.loadTree(context.Background())
			if err != nil {
				return err
			}

			html, err := report.RenderHTML(a.composeRows(selectTasks(tree, all)), a.config.Table.FontFamily, a.config.Table.FontSize)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), html)
				return err
			}
			if err := writeFile(output, html); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include children of collapsed parents")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}
