// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/ganttlist/internal/task"
)

// TasksLoadedMsg is sent when tasks and their tracked time are loaded.
type TasksLoadedMsg struct {
	Tasks    []*task.Task
	Tracking map[string]task.Tracking
}

// ExpanderToggledMsg is sent after an expander state is persisted.
type ExpanderToggledMsg struct {
	Task *task.Task
}

// TimerToggledMsg is sent after a timer was started or stopped.
type TimerToggledMsg struct {
	TaskID  string
	Running bool
}

// ExpanderClickedMsg reports an expander click from the task table.
type ExpanderClickedMsg struct {
	TaskID string
}

// TaskClickedMsg reports a click on a task name.
type TaskClickedMsg struct {
	TaskID string
}

// TimerClickedMsg reports a click on a row's timer.
type TimerClickedMsg struct {
	TaskID    string
	FetchData func()
}

// RefreshMsg asks the model to reload its data.
type RefreshMsg struct{}

// TickMsg drives the running timer display.
type TickMsg time.Time

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadTasks loads every task and the tracking summary.
func LoadTasks(repo task.Repository, now time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		tasks, err := repo.ListTasks(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}

		tracking, err := repo.Tracking(ctx, now)
		if err != nil {
			return ErrMsg{Err: err}
		}

		return TasksLoadedMsg{Tasks: tasks, Tracking: tracking}
	}
}

// SaveExpander persists the expander state of t.
func SaveExpander(repo task.Repository, t *task.Task) tea.Cmd {
	return func() tea.Msg {
		if err := repo.SetExpander(context.Background(), t.ID, t.Expander); err != nil {
			return ErrMsg{Err: err}
		}
		return ExpanderToggledMsg{Task: t}
	}
}

// ToggleTimer starts or stops the timer of a task, then calls fetchData.
func ToggleTimer(repo task.Repository, id string, at time.Time, fetchData func()) tea.Cmd {
	return func() tea.Msg {
		running, err := task.ToggleTimer(context.Background(), repo, id, at)
		if err != nil {
			return ErrMsg{Err: err}
		}
		if fetchData != nil {
			fetchData()
		}
		return TimerToggledMsg{TaskID: id, Running: running}
	}
}

// Listen waits for the next message posted on events.
func Listen(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

// Post sends msg on events without blocking. It reports whether the
// message was queued.
func Post(events chan<- tea.Msg, msg tea.Msg) bool {
	select {
	case events <- msg:
		return true
	default:
		return false
	}
}

// Tick schedules the next TickMsg.
func Tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
