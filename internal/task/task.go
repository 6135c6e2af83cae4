// Package task defines the core domain types for ganttlist.
package task

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/ganttlist/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyName = errors.New("name cannot be empty")
	ErrEmptyID   = errors.New("id cannot be empty")
)

// Domain errors.
var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrUnknownParent  = errors.New("parent task not found")
	ErrTimerNotActive = errors.New("no running timer for task")
	ErrTimerRunning   = errors.New("timer already running for task")
)

// Expander is the expand/collapse state of a row.
// Leaf tasks have no children; parents are either expanded or collapsed.
type Expander int

const (
	Leaf Expander = iota
	Expanded
	Collapsed
)

// ExpanderFromHideChildren maps the nullable hideChildren flag used by
// Gantt task feeds to an Expander: nil is a leaf, true collapsed, false expanded.
func ExpanderFromHideChildren(hide *bool) Expander {
	switch {
	case hide == nil:
		return Leaf
	case *hide:
		return Collapsed
	default:
		return Expanded
	}
}

// HideChildren returns the nullable flag for e. Leaf returns nil.
func (e Expander) HideChildren() *bool {
	switch e {
	case Expanded:
		v := false
		return &v
	case Collapsed:
		v := true
		return &v
	default:
		return nil
	}
}

// IsParent reports whether e belongs to a task with children.
func (e Expander) IsParent() bool {
	return e == Expanded || e == Collapsed
}

// Toggled flips Expanded and Collapsed. Leaf stays Leaf.
func (e Expander) Toggled() Expander {
	switch e {
	case Expanded:
		return Collapsed
	case Collapsed:
		return Expanded
	default:
		return Leaf
	}
}

func (e Expander) String() string {
	switch e {
	case Expanded:
		return "expanded"
	case Collapsed:
		return "collapsed"
	default:
		return "leaf"
	}
}

// Task is one row of the Gantt task list.
type Task struct {
	ID        string
	Name      string
	Start     time.Time
	End       time.Time
	Expander  Expander
	ParentID  string // empty for top-level tasks
	Position  int    // order among siblings
	CreatedAt time.Time
}

// New creates a new leaf Task with a generated ID.
// start can be empty (defaults to today) or in YYYY-MM-DD format.
// end can be empty (defaults to start) or in YYYY-MM-DD format.
// No ordering between start and end is enforced.
func New(name, start, end string) (*Task, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	startDate, err := dateutil.ParseDate(start)
	if err != nil {
		return nil, err
	}
	endDate := startDate
	if end != "" {
		endDate, err = dateutil.ParseDate(end)
		if err != nil {
			return nil, err
		}
	}

	return &Task{
		ID:        uuid.NewString(),
		Name:      name,
		Start:     startDate,
		End:       endDate,
		Expander:  Leaf,
		CreatedAt: time.Now(),
	}, nil
}

// IsLeaf returns true if the task has no children.
func (t *Task) IsLeaf() bool {
	return t.Expander == Leaf
}

// HideChildren returns the nullable hideChildren flag of the task.
func (t *Task) HideChildren() *bool {
	return t.Expander.HideChildren()
}
