package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/javiermolinar/ganttlist/internal/task"
	"github.com/javiermolinar/ganttlist/internal/tasklist"
)

// shortIDLen is how much of a task ID list prints and lookups accept.
const shortIDLen = 8

var errAmbiguousID = errors.New("ambiguous task id")

// shortID returns the printed form of a task ID.
func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// loadTree reads every task into a tree.
func (a *App) loadTree(ctx context.Context) (*task.Tree, error) {
	repo, err := a.ensureRepo()
	if err != nil {
		return nil, err
	}
	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return task.NewTree(tasks), nil
}

// resolveTask finds a task by full ID or unique ID prefix.
func resolveTask(tree *task.Tree, tasks []*task.Task, ref string) (*task.Task, error) {
	if ref == "" {
		return nil, fmt.Errorf("empty task id: %w", task.ErrTaskNotFound)
	}
	if t, ok := tree.Task(ref); ok {
		return t, nil
	}
	var match *task.Task
	for _, t := range tasks {
		if !strings.HasPrefix(t.ID, ref) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%q: %w", ref, errAmbiguousID)
		}
		match = t
	}
	if match == nil {
		return nil, fmt.Errorf("%q: %w", ref, task.ErrTaskNotFound)
	}
	return match, nil
}

// composeRows renders tasks through the task table, so every output uses
// the same locale dates and glyphs as the TUI.
func (a *App) composeRows(tasks []*task.Task) []tasklist.Row {
	table := tasklist.New(tasklist.Props{
		Tasks:      tasks,
		RowHeight:  a.config.Table.RowHeight,
		RowWidth:   a.config.Table.RowWidth,
		TaskWidth:  a.config.Table.TaskWidth,
		FontFamily: a.config.Table.FontFamily,
		FontSize:   a.config.Table.FontSize,
		Locale:     a.config.Table.Locale,
	})
	return table.Rows()
}

// selectTasks returns the visible tasks of tree, or all of them in tree order.
func selectTasks(tree *task.Tree, all bool) []*task.Task {
	if !all {
		return tree.Visible()
	}
	return tree.All()
}
