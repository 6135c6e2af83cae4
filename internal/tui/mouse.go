package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/ganttlist/internal/tasklist"
	"github.com/javiermolinar/ganttlist/internal/tui/view"
)

// hitRegion is the part of a row under the pointer.
type hitRegion int

const (
	regionNone hitRegion = iota
	regionExpander
	regionName
	regionNameBlank
	regionOverlay
	regionDate
)

func (r hitRegion) String() string {
	switch r {
	case regionExpander:
		return "expander"
	case regionName:
		return "name"
	case regionNameBlank:
		return "name-blank"
	case regionOverlay:
		return "overlay"
	case regionDate:
		return "date"
	default:
		return "none"
	}
}

// inNameCell reports whether r lies inside the name cell. The blank
// part after the name hovers the row but is not clickable.
func (r hitRegion) inNameCell() bool {
	return r == regionExpander || r == regionName || r == regionNameBlank || r == regionOverlay
}

// hitTest maps screen coordinates to a row index and region.
// The row index is -1 when the pointer is not over a row.
func (m Model) hitTest(rows []tasklist.Row, x, y int) (int, hitRegion) {
	l := m.layoutCache
	bodyY := y - l.HeaderLines
	if bodyY < 0 || bodyY >= l.BodyH || x < 0 || l.RowLines <= 0 {
		return -1, regionNone
	}

	idx := (bodyY + m.viewport.YOffset) / l.RowLines
	if idx >= len(rows) {
		return -1, regionNone
	}

	switch {
	case x < view.ExpanderWidth:
		return idx, regionExpander
	case x < l.NameW:
		if o := rows[idx].Overlay; o != nil && o.Visible && x >= l.OverlayX {
			return idx, regionOverlay
		}
		if x < nameEnd(rows[idx].Name.Text, l.NameW) {
			return idx, regionName
		}
		return idx, regionNameBlank
	case x < l.TableW():
		return idx, regionDate
	default:
		return -1, regionNone
	}
}

// nameEnd is the first column past the rendered name text.
func nameEnd(name string, nameW int) int {
	avail := max(0, nameW-view.ExpanderWidth)
	return view.ExpanderWidth + ansi.StringWidth(ansi.Truncate(name, avail, "…"))
}

// handleMouse tracks the hovered name cell and dispatches clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	rows := m.table.Rows()
	idx, region := m.hitTest(rows, msg.X, msg.Y)

	pointer := ""
	if idx >= 0 && region.inNameCell() {
		pointer = rows[idx].Task.ID
	}
	if m.setPointer(pointer) {
		// Overlay visibility changed; hit-test again against the new rows.
		rows = m.table.Rows()
		idx, region = m.hitTest(rows, msg.X, msg.Y)
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && idx >= 0 {
		m.click(rows[idx], region)
	}

	return m, cmd
}

// setPointer moves the hovered name cell to id, issuing leave and enter
// transitions. It reports whether anything changed.
func (m *Model) setPointer(id string) bool {
	if id == m.pointer {
		return false
	}
	if m.pointer != "" {
		m.table.MouseLeave(m.pointer)
		LogHover(m.pointer, false)
	}
	if id != "" {
		m.table.MouseEnter(id)
		LogHover(id, true)
	}
	m.pointer = id
	m.refreshViewport()
	return true
}

// click dispatches a left click on a row region. Each region reaches
// exactly one callback.
func (m *Model) click(row tasklist.Row, region hitRegion) {
	id := row.Task.ID
	LogClick(id, region)

	switch region {
	case regionExpander:
		m.table.ClickExpander(id)
	case regionName:
		m.table.ClickName(id)
	case regionOverlay:
		if row.Overlay == nil || !row.Overlay.Visible {
			return
		}
		if c, ok := row.Overlay.Element.(tasklist.Clickable); ok {
			c.Click()
		}
	}
}
