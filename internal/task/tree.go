package task

import (
	"fmt"
	"sort"
)

// Tree owns the hierarchy of tasks and their expand/collapse state.
// It is the collaborator that answers expander clicks from the table.
type Tree struct {
	byID     map[string]*Task
	children map[string][]*Task // keyed by parent ID, "" for roots
}

// NewTree builds a tree from a flat task list. Tasks whose parent is
// missing are treated as roots. Siblings keep Position order, then input order.
func NewTree(tasks []*Task) *Tree {
	tr := &Tree{
		byID:     make(map[string]*Task, len(tasks)),
		children: make(map[string][]*Task),
	}
	for _, t := range tasks {
		if t != nil {
			tr.byID[t.ID] = t
		}
	}
	for _, t := range tasks {
		if t == nil {
			continue
		}
		parent := t.ParentID
		if _, ok := tr.byID[parent]; !ok || parent == t.ID {
			parent = ""
		}
		tr.children[parent] = append(tr.children[parent], t)
	}
	for _, kids := range tr.children {
		sort.SliceStable(kids, func(i, j int) bool {
			return kids[i].Position < kids[j].Position
		})
	}
	return tr
}

// Task returns the task with the given ID.
func (tr *Tree) Task(id string) (*Task, bool) {
	t, ok := tr.byID[id]
	return t, ok
}

// Len returns the number of tasks in the tree.
func (tr *Tree) Len() int {
	return len(tr.byID)
}

// Visible returns tasks in depth-first order, skipping the descendants
// of collapsed parents.
func (tr *Tree) Visible() []*Task {
	return tr.walk(true)
}

// All returns every task in depth-first order, collapsed or not.
func (tr *Tree) All() []*Task {
	return tr.walk(false)
}

func (tr *Tree) walk(skipCollapsed bool) []*Task {
	out := make([]*Task, 0, len(tr.byID))
	seen := make(map[string]bool, len(tr.byID))
	var walk func(parent string)
	walk = func(parent string) {
		for _, t := range tr.children[parent] {
			if seen[t.ID] {
				continue
			}
			seen[t.ID] = true
			out = append(out, t)
			if !skipCollapsed || t.Expander != Collapsed {
				walk(t.ID)
			}
		}
	}
	walk("")
	return out
}

// Depth returns how many ancestors a task has. Unknown IDs return 0.
func (tr *Tree) Depth(id string) int {
	depth := 0
	seen := map[string]bool{id: true}
	t, ok := tr.byID[id]
	for ok && t.ParentID != "" && !seen[t.ParentID] {
		seen[t.ParentID] = true
		t, ok = tr.byID[t.ParentID]
		if ok {
			depth++
		}
	}
	return depth
}

// Toggle flips the expander of a parent task and returns it.
// Leaf tasks are returned unchanged.
func (tr *Tree) Toggle(id string) (*Task, error) {
	t, ok := tr.byID[id]
	if !ok {
		return nil, fmt.Errorf("toggling %q: %w", id, ErrTaskNotFound)
	}
	t.Expander = t.Expander.Toggled()
	return t, nil
}
