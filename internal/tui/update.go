package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/ganttlist/internal/task"
	"github.com/javiermolinar/ganttlist/internal/tasklist"
	"github.com/javiermolinar/ganttlist/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		m.styleCache = NewStyleCache(m.styles, m.layoutCache.NameW, m.layoutCache.DateW)
		m.viewport.Width = m.layoutCache.InnerW
		m.viewport.Height = m.layoutCache.BodyH
		m.help.Width = m.layoutCache.InnerW
		m.refreshViewport()
		return m, nil

	case commands.TasksLoadedMsg:
		m.tree = task.NewTree(msg.Tasks)
		m.tracking = msg.Tracking
		m.trackAt = m.now()
		m.loading = false
		m.refreshTable()
		return m, nil

	// Messages posted by table callbacks; each one re-arms the listener.
	case commands.ExpanderClickedMsg:
		return m, tea.Batch(m.toggleExpander(msg.TaskID), commands.Listen(m.events))

	case commands.TaskClickedMsg:
		return m, tea.Batch(m.selectTask(msg.TaskID), commands.Listen(m.events))

	case commands.TimerClickedMsg:
		return m, tea.Batch(
			commands.ToggleTimer(m.repo, msg.TaskID, m.now(), msg.FetchData),
			commands.Listen(m.events),
		)

	case commands.RefreshMsg:
		return m, tea.Batch(commands.LoadTasks(m.repo, m.now()), commands.Listen(m.events))

	case commands.ExpanderToggledMsg:
		return m, nil

	case commands.TimerToggledMsg:
		name := msg.TaskID
		if t, ok := m.tree.Task(msg.TaskID); ok {
			name = t.Name
		}
		if msg.Running {
			return m, m.setStatus("Timer started: " + name)
		}
		return m, m.setStatus("Timer stopped: " + name)

	case commands.TickMsg:
		m.refreshTable()
		return m, commands.Tick(timerTick)

	case commands.ErrMsg:
		LogError("update", msg.Err)
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, nil

	case commands.StatusMsgCmd:
		m.err = nil
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
			m.err = nil
		}
		return m, nil
	}

	return m, nil
}

// toggleExpander flips a parent's expander in the tree, re-renders the
// table and persists the new state. Leaves are left alone.
func (m *Model) toggleExpander(id string) tea.Cmd {
	t, err := m.tree.Toggle(id)
	if errors.Is(err, task.ErrTaskNotFound) {
		return nil
	}
	if err != nil {
		return errCmd(err)
	}
	if t.IsLeaf() {
		return nil
	}
	m.refreshTable()
	return commands.SaveExpander(m.repo, t)
}

// selectTask moves the cursor to the row of id.
func (m *Model) selectTask(id string) tea.Cmd {
	for i, row := range m.table.Rows() {
		if row.Task.ID == id {
			m.cursor = i
			m.ensureCursorVisible()
			m.refreshViewport()
			return m.setStatus("Selected: " + row.Name.Text)
		}
	}
	return nil
}

// refreshTable hands the visible tasks to the table and redraws.
func (m *Model) refreshTable() {
	m.table.SetProps(m.tableProps(m.tree.Visible()))
	if _, ok := m.table.Task(m.pointer); !ok {
		m.pointer = ""
	}
	m.clampCursor()
	m.refreshViewport()
}

// refreshViewport re-renders every row into the viewport content.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderRows(m.table.Rows()))
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
	m.ensureCursorVisible()
	m.refreshViewport()
}

func (m *Model) clampCursor() {
	n := len(m.table.Props().Tasks)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// ensureCursorVisible scrolls the viewport so the selected row is shown.
func (m *Model) ensureCursorVisible() {
	lines := m.layoutCache.RowLines
	if lines <= 0 || m.viewport.Height <= 0 {
		return
	}
	top := m.cursor * lines
	bottom := top + lines
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m Model) selectedRow() (tasklist.Row, bool) {
	rows := m.table.Rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return tasklist.Row{}, false
	}
	return rows[m.cursor], true
}

func (m Model) selectedID() (string, bool) {
	row, ok := m.selectedRow()
	if !ok {
		return "", false
	}
	return row.Task.ID, true
}

func (m Model) setStatus(msg string) tea.Cmd {
	return func() tea.Msg {
		return commands.StatusMsgCmd{Msg: msg}
	}
}
