package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/ganttlist/internal/config"
	"github.com/javiermolinar/ganttlist/internal/task"
	"github.com/javiermolinar/ganttlist/internal/tui/commands"
)

var testNow = time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

type memRepo struct {
	tasks     []*task.Task
	tracking  map[string]task.Tracking
	expanders map[string]task.Expander
}

func (r *memRepo) CreateTask(ctx context.Context, t *task.Task) error {
	r.tasks = append(r.tasks, t)
	return nil
}

func (r *memRepo) GetTask(ctx context.Context, id string) (*task.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, task.ErrTaskNotFound
}

func (r *memRepo) ListTasks(ctx context.Context) ([]*task.Task, error) {
	return r.tasks, nil
}

func (r *memRepo) SetExpander(ctx context.Context, id string, e task.Expander) error {
	if r.expanders == nil {
		r.expanders = make(map[string]task.Expander)
	}
	r.expanders[id] = e
	return nil
}

func (r *memRepo) StartTimer(ctx context.Context, id string, at time.Time) error {
	return nil
}

func (r *memRepo) StopTimer(ctx context.Context, id string, at time.Time) error {
	return errors.New("not implemented")
}

func (r *memRepo) Tracking(ctx context.Context, at time.Time) (map[string]task.Tracking, error) {
	return r.tracking, nil
}

func (r *memRepo) Close() error {
	return nil
}

// sampleTasks is a parent p with leaf child c, followed by leaf q.
func sampleTasks() []*task.Task {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	return []*task.Task{
		{ID: "p", Name: "Project", Start: day, End: day.AddDate(0, 0, 10), Expander: task.Expanded},
		{ID: "c", Name: "Design", Start: day, End: day.AddDate(0, 0, 3), ParentID: "p"},
		{ID: "q", Name: "Launch", Start: day.AddDate(0, 0, 11), End: day.AddDate(0, 0, 11), Position: 1},
	}
}

// newTestModel returns a sized model with sampleTasks loaded.
// With default config: header 3 lines, rows 3 lines, name cell 31 cells,
// date cells 19 cells, overlay from column 15.
func newTestModel(t *testing.T, opts ...ModelOption) Model {
	t.Helper()

	repo := &memRepo{
		tasks:    sampleTasks(),
		tracking: map[string]task.Tracking{"c": {Total: 65 * time.Minute}},
	}
	cfg := config.Default()
	opts = append([]ModelOption{WithClock(func() time.Time { return testNow })}, opts...)
	m := New(repo, cfg, opts...)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return update(t, m, commands.TasksLoadedMsg{Tasks: repo.tasks, Tracking: repo.tracking})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model
}

// drainEvents returns every message posted by table callbacks so far.
func drainEvents(m Model) []tea.Msg {
	var msgs []tea.Msg
	for {
		select {
		case msg := <-m.events:
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}
