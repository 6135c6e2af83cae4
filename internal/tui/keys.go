package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/ganttlist/internal/tasklist"
	"github.com/javiermolinar/ganttlist/internal/tui/commands"
)

var errNothingSelected = errors.New("no task selected")

// KeyMap defines the key bindings of the task list.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Timer  key.Binding
	Copy   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Toggle, k.Timer, k.Copy, k.Help, k.Quit}
}

// FullHelp returns all bindings, grouped in columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Timer, k.Copy},
		{k.Reload, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("j/k", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/k", "move"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "expand/collapse"),
		),
		Timer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "timer"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		// Same path as a mouse click on the expander.
		if id, ok := m.selectedID(); ok {
			m.table.ClickExpander(id)
		}
		return m, nil

	case key.Matches(msg, m.keys.Timer):
		row, ok := m.selectedRow()
		if !ok || row.Overlay == nil {
			return m, m.setStatus("Timers run on leaf tasks only")
		}
		if c, ok := row.Overlay.Element.(tasklist.Clickable); ok {
			c.Click()
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		row, ok := m.selectedRow()
		if !ok {
			return m, errCmd(errNothingSelected)
		}
		if err := m.copyText(rowText(row)); err != nil {
			return m, errCmd(err)
		}
		return m, m.setStatus("Copied " + row.Name.Text)

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, commands.LoadTasks(m.repo, m.now())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// rowText is the clipboard form of a row.
func rowText(row tasklist.Row) string {
	return strings.Join([]string{row.Name.Text, row.Start.Text, row.End.Text}, "\t")
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return commands.ErrMsg{Err: err}
	}
}
