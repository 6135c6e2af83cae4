package task

import (
	"context"
	"time"
)

// Tracking summarizes the time entries recorded for one task.
type Tracking struct {
	Total   time.Duration // closed entries plus the running one up to the query time
	Running bool
	Since   time.Time // start of the running entry
}

// Repository defines the storage interface for tasks.
type Repository interface {
	// CreateTask adds a new task. A task created under a leaf parent
	// turns that parent into an expanded parent.
	CreateTask(ctx context.Context, task *Task) error

	// GetTask retrieves a task by ID. Returns ErrTaskNotFound if it doesn't exist.
	GetTask(ctx context.Context, id string) (*Task, error)

	// ListTasks returns all tasks ordered by parent and position.
	ListTasks(ctx context.Context) ([]*Task, error)

	// SetExpander persists the expand/collapse state of a task.
	SetExpander(ctx context.Context, id string, e Expander) error

	// StartTimer opens a time entry for the task.
	StartTimer(ctx context.Context, id string, at time.Time) error

	// StopTimer closes the running time entry of the task.
	// Returns ErrTimerNotActive if none is running.
	StopTimer(ctx context.Context, id string, at time.Time) error

	// Tracking returns per-task tracked time as of at.
	Tracking(ctx context.Context, at time.Time) (map[string]Tracking, error)

	// Close releases any resources held by the repository.
	Close() error
}

// ToggleTimer stops the running timer of a task or starts a new one.
// It reports whether a timer is running afterwards.
func ToggleTimer(ctx context.Context, repo Repository, id string, at time.Time) (bool, error) {
	tracking, err := repo.Tracking(ctx, at)
	if err != nil {
		return false, err
	}
	if tracking[id].Running {
		return false, repo.StopTimer(ctx, id, at)
	}
	return true, repo.StartTimer(ctx, id, at)
}
