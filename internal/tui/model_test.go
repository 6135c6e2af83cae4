package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/ganttlist/internal/task"
	"github.com/javiermolinar/ganttlist/internal/tui/commands"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func visibleIDs(m Model) []string {
	var ids []string
	for _, row := range m.table.Rows() {
		ids = append(ids, row.Task.ID)
	}
	return ids
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTasksLoaded(t *testing.T) {
	m := newTestModel(t)

	if m.loading {
		t.Fatal("model still loading after TasksLoadedMsg")
	}
	got := strings.Join(visibleIDs(m), ",")
	if got != "p,c,q" {
		t.Fatalf("visible rows = %s, want p,c,q", got)
	}
}

func TestExpanderClickedCollapsesParent(t *testing.T) {
	m := newTestModel(t)
	repo := m.repo.(*memRepo)

	m, cmd := updateWithCmd(t, m, commands.ExpanderClickedMsg{TaskID: "p"})
	if cmd == nil {
		t.Fatal("expected save and listen commands")
	}
	if got := strings.Join(visibleIDs(m), ","); got != "p,q" {
		t.Fatalf("visible rows = %s, want p,q", got)
	}
	if glyph := m.table.Rows()[0].Glyph; glyph != "▶" {
		t.Errorf("parent glyph = %q, want ▶", glyph)
	}

	// SaveExpander runs inside the batch; run it directly.
	p, _ := m.tree.Task("p")
	msg := commands.SaveExpander(repo, p)()
	if _, ok := msg.(commands.ExpanderToggledMsg); !ok {
		t.Fatalf("SaveExpander returned %T", msg)
	}
	if repo.expanders["p"] != task.Collapsed {
		t.Errorf("persisted expander = %v, want collapsed", repo.expanders["p"])
	}

	m = update(t, m, commands.ExpanderClickedMsg{TaskID: "p"})
	if got := strings.Join(visibleIDs(m), ","); got != "p,c,q" {
		t.Errorf("visible rows after expand = %s, want p,c,q", got)
	}
}

func TestExpanderClickedOnLeafIsNoop(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, commands.ExpanderClickedMsg{TaskID: "c"})
	m = update(t, m, commands.ExpanderClickedMsg{TaskID: "missing"})

	if got := strings.Join(visibleIDs(m), ","); got != "p,c,q" {
		t.Errorf("visible rows = %s, want p,c,q", got)
	}
	if c, _ := m.tree.Task("c"); c.Expander != task.Leaf {
		t.Errorf("leaf expander = %v", c.Expander)
	}
}

func TestCollapseDropsHoverOfHiddenRow(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, motion(5, 7))
	if m.pointer != "c" {
		t.Fatalf("pointer = %q, want c", m.pointer)
	}
	m = update(t, m, commands.ExpanderClickedMsg{TaskID: "p"})

	if m.pointer != "" {
		t.Errorf("pointer = %q after its row was hidden", m.pointer)
	}
	if m.table.Hover().Hovered("c") {
		t.Error("hidden row is still hovered")
	}
}

func TestTaskClickedSelectsRow(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, commands.TaskClickedMsg{TaskID: "q"})

	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
}

func TestKeys(t *testing.T) {
	t.Run("move", func(t *testing.T) {
		m := newTestModel(t)
		m = update(t, m, keyRune('j'))
		m = update(t, m, keyRune('j'))
		m = update(t, m, keyRune('j'))
		if m.cursor != 2 {
			t.Errorf("cursor = %d, want 2 (clamped)", m.cursor)
		}
		m = update(t, m, keyRune('k'))
		if m.cursor != 1 {
			t.Errorf("cursor = %d, want 1", m.cursor)
		}
	})

	t.Run("toggle goes through the expander callback", func(t *testing.T) {
		m := newTestModel(t)
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		events := drainEvents(m)
		if len(events) != 1 || events[0] != (commands.ExpanderClickedMsg{TaskID: "p"}) {
			t.Errorf("events = %#v", events)
		}
	})

	t.Run("timer on a leaf", func(t *testing.T) {
		m := newTestModel(t)
		m = update(t, m, keyRune('j'))
		m = update(t, m, keyRune('t'))

		events := drainEvents(m)
		if len(events) != 1 {
			t.Fatalf("got %d events, want 1", len(events))
		}
		if msg, ok := events[0].(commands.TimerClickedMsg); !ok || msg.TaskID != "c" {
			t.Errorf("event = %#v", events[0])
		}
	})

	t.Run("timer on a parent", func(t *testing.T) {
		m := newTestModel(t)
		updated, cmd := m.Update(keyRune('t'))
		m = updated.(Model)

		if events := drainEvents(m); len(events) != 0 {
			t.Errorf("events = %#v", events)
		}
		if cmd == nil {
			t.Fatal("expected a status command")
		}
		if msg, ok := cmd().(commands.StatusMsgCmd); !ok || !strings.Contains(msg.Msg, "leaf") {
			t.Errorf("status = %#v", cmd())
		}
	})

	t.Run("copy", func(t *testing.T) {
		var copied string
		m := newTestModel(t, WithClipboard(func(s string) error {
			copied = s
			return nil
		}))
		m = update(t, m, keyRune('j'))
		m = update(t, m, keyRune('y'))

		if !strings.HasPrefix(copied, "Design\t") {
			t.Errorf("copied %q", copied)
		}
		if strings.Count(copied, "\t") != 2 {
			t.Errorf("copied %q, want three tab separated fields", copied)
		}
	})

	t.Run("copy error", func(t *testing.T) {
		m := newTestModel(t, WithClipboard(func(string) error {
			return errors.New("no clipboard")
		}))
		_, cmd := m.Update(keyRune('y'))
		if cmd == nil {
			t.Fatal("expected error command")
		}
		if _, ok := cmd().(commands.ErrMsg); !ok {
			t.Errorf("got %T, want ErrMsg", cmd())
		}
	})

	t.Run("help", func(t *testing.T) {
		m := newTestModel(t)
		m = update(t, m, keyRune('?'))
		if !m.help.ShowAll {
			t.Error("help not expanded")
		}
	})
}

func TestTimerToggledStatus(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(commands.TimerToggledMsg{TaskID: "c", Running: true})
	if cmd == nil {
		t.Fatal("expected status command")
	}
	msg, ok := cmd().(commands.StatusMsgCmd)
	if !ok || msg.Msg != "Timer started: Design" {
		t.Errorf("status = %#v", cmd())
	}
}

func TestErrMsgShowsInFooter(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, commands.ErrMsg{Err: errors.New("disk full")})

	if !strings.Contains(ansi.Strip(m.View()), "Error: disk full") {
		t.Error("error not rendered")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	out := ansi.Strip(m.View())

	for _, want := range []string{"Task", "From", "To", "Project", "Design", "Launch", "▼"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 40 {
		t.Errorf("view has %d lines, want 40", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w > 100 {
			t.Errorf("line %d is %d cells wide", i, w)
		}
	}
}

func TestViewOverlayOnHover(t *testing.T) {
	m := newTestModel(t)
	if strings.Contains(ansi.Strip(m.View()), "1h 05m") {
		t.Fatal("overlay rendered before hover")
	}

	m = update(t, m, motion(5, 7))
	if !strings.Contains(ansi.Strip(m.View()), "1h 05m") {
		t.Error("overlay not rendered on hover")
	}
}

func TestViewLoadingAndEmpty(t *testing.T) {
	m := New(&memRepo{}, newTestModel(t).config, WithClock(func() time.Time { return testNow }))
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	if !strings.Contains(ansi.Strip(m.View()), "Loading") {
		t.Error("loading placeholder missing")
	}

	m = update(t, m, commands.TasksLoadedMsg{})
	if !strings.Contains(ansi.Strip(m.View()), "No tasks") {
		t.Error("empty placeholder missing")
	}
}

func updateWithCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}
