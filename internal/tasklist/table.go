// Package tasklist composes the rows of a Gantt chart's task table: the
// expander glyph and name, the start and end dates, and the per-row side
// element revealed on hover.
package tasklist

import (
	"github.com/javiermolinar/ganttlist/internal/locale"
	"github.com/javiermolinar/ganttlist/internal/task"
)

// Props configures the table. It is supplied by the hosting chart.
type Props struct {
	Tasks      []*task.Task // rendered in this order
	RowHeight  int          // pixels
	RowWidth   string       // width of each date column, e.g. "155px"
	TaskWidth  int          // pixels
	FontFamily string
	FontSize   string
	Locale     string

	SideElement SideElementFactory
	FetchData   func()

	OnClickTask     func(taskID string)
	OnExpanderClick func(t *task.Task)
}

// Table holds the state of one mounted task table.
type Table struct {
	props     Props
	byID      map[string]*task.Task
	formatter locale.DateFormatter
	cache     *locale.DateCache
	binding   *locale.Binding
	hover     *HoverTracker
}

// Option configures a Table.
type Option func(*Table)

// WithDateCache shares a date cache between tables.
func WithDateCache(c *locale.DateCache) Option {
	return func(t *Table) {
		t.cache = c
	}
}

// WithFormatter replaces the locale formatter.
func WithFormatter(f locale.DateFormatter) Option {
	return func(t *Table) {
		t.formatter = f
	}
}

// New creates a table for props.
func New(props Props, opts ...Option) *Table {
	t := &Table{
		formatter: locale.PatternFormatter{},
		hover:     NewHoverTracker(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.cache == nil {
		t.cache = locale.NewDateCache()
	}
	t.SetProps(props)
	return t
}

// Props returns the current props.
func (t *Table) Props() Props {
	return t.props
}

// SetProps replaces the props. The date binding is rebuilt only when the
// locale changes; hover entries for tasks that are gone are dropped.
func (t *Table) SetProps(p Props) {
	if t.binding == nil || t.binding.Locale() != p.Locale {
		t.binding = locale.Bind(p.Locale, t.formatter, t.cache)
	}
	t.props = p

	t.byID = make(map[string]*task.Task, len(p.Tasks))
	ids := make([]string, 0, len(p.Tasks))
	for _, tsk := range p.Tasks {
		if tsk == nil {
			continue
		}
		t.byID[tsk.ID] = tsk
		ids = append(ids, tsk.ID)
	}
	t.hover.Reconcile(ids)
}

// Binding returns the date binding for the current locale.
func (t *Table) Binding() *locale.Binding {
	return t.binding
}

// Hover returns the current hover state.
func (t *Table) Hover() HoverState {
	return t.hover.State()
}

// Task returns the rendered task with the given ID.
func (t *Table) Task(id string) (*task.Task, bool) {
	tsk, ok := t.byID[id]
	return tsk, ok
}

// MouseEnter marks a row's name cell as hovered.
func (t *Table) MouseEnter(id string) {
	t.hover.Apply(MarkHovered(id))
}

// MouseLeave marks a row's name cell as no longer hovered.
func (t *Table) MouseLeave(id string) {
	t.hover.Apply(MarkUnhovered(id))
}

// ClickExpander reports an expander click to OnExpanderClick.
// The table does not change the task's expander itself.
func (t *Table) ClickExpander(id string) bool {
	tsk, ok := t.byID[id]
	if !ok {
		return false
	}
	if t.props.OnExpanderClick != nil {
		t.props.OnExpanderClick(tsk)
	}
	return true
}

// ClickName reports a click on a task name to OnClickTask.
func (t *Table) ClickName(id string) bool {
	if _, ok := t.byID[id]; !ok {
		return false
	}
	if t.props.OnClickTask != nil {
		t.props.OnClickTask(id)
	}
	return true
}
