package task

import (
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Run("valid task", func(t *testing.T) {
		tsk, err := New("Design", "2024-03-05", "2024-03-09")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tsk.ID == "" {
			t.Error("expected generated ID")
		}
		if !tsk.IsLeaf() {
			t.Errorf("new task expander = %v, want leaf", tsk.Expander)
		}
		if got := tsk.Start.Format("2006-01-02"); got != "2024-03-05" {
			t.Errorf("start = %s, want 2024-03-05", got)
		}
	})

	t.Run("empty end defaults to start", func(t *testing.T) {
		tsk, err := New("Kickoff", "2024-03-05", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tsk.End.Equal(tsk.Start) {
			t.Errorf("end = %v, want %v", tsk.End, tsk.Start)
		}
	})

	t.Run("end before start is accepted", func(t *testing.T) {
		if _, err := New("Backwards", "2024-03-05", "2024-03-01"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if _, err := New("", "2024-03-05", ""); !errors.Is(err, ErrEmptyName) {
			t.Fatalf("got %v, want %v", err, ErrEmptyName)
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		a, _ := New("a", "2024-03-05", "")
		b, _ := New("b", "2024-03-05", "")
		if a.ID == b.ID {
			t.Fatalf("expected distinct IDs, got %q twice", a.ID)
		}
	})
}

func TestExpanderHideChildrenRoundTrip(t *testing.T) {
	yes, no := true, false
	tests := []struct {
		name string
		hide *bool
		want Expander
	}{
		{name: "nil is leaf", hide: nil, want: Leaf},
		{name: "true is collapsed", hide: &yes, want: Collapsed},
		{name: "false is expanded", hide: &no, want: Expanded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpanderFromHideChildren(tt.hide)
			if got != tt.want {
				t.Fatalf("ExpanderFromHideChildren = %v, want %v", got, tt.want)
			}
			back := got.HideChildren()
			if (back == nil) != (tt.hide == nil) {
				t.Fatalf("HideChildren nil = %v, want %v", back == nil, tt.hide == nil)
			}
			if back != nil && *back != *tt.hide {
				t.Fatalf("HideChildren = %v, want %v", *back, *tt.hide)
			}
		})
	}
}

func TestExpanderToggled(t *testing.T) {
	if got := Expanded.Toggled(); got != Collapsed {
		t.Errorf("Expanded.Toggled() = %v", got)
	}
	if got := Collapsed.Toggled(); got != Expanded {
		t.Errorf("Collapsed.Toggled() = %v", got)
	}
	if got := Leaf.Toggled(); got != Leaf {
		t.Errorf("Leaf.Toggled() = %v", got)
	}
}

func TestTaskHideChildren(t *testing.T) {
	tsk := &Task{ID: "1", Expander: Collapsed, Start: time.Now(), End: time.Now()}
	if h := tsk.HideChildren(); h == nil || !*h {
		t.Fatalf("HideChildren = %v, want true", h)
	}
}
