// Package tui provides the terminal user interface for ganttlist.
package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/ganttlist/internal/config"
	"github.com/javiermolinar/ganttlist/internal/locale"
	"github.com/javiermolinar/ganttlist/internal/task"
	"github.com/javiermolinar/ganttlist/internal/tasklist"
	"github.com/javiermolinar/ganttlist/internal/tui/commands"
	"github.com/javiermolinar/ganttlist/internal/tui/theme"
)

// eventBuffer bounds the queue of table callbacks waiting for Update.
const eventBuffer = 64

// timerTick is how often running timers are redrawn.
const timerTick = 15 * time.Second

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   task.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Task table and the tree that owns expand/collapse state
	table    *tasklist.Table
	tree     *task.Tree
	tracking map[string]task.Tracking
	trackAt  time.Time
	metrics  tasklist.Metrics

	// Table callbacks are posted here and fed back into Update
	events chan tea.Msg

	// State
	cursor  int    // selected row
	pointer string // task whose name cell is under the mouse
	loading bool

	// Components
	keys     KeyMap
	help     help.Model
	viewport viewport.Model

	// Terminal dimensions and layout
	width  int
	height int

	// Cached render data
	styleCache  StyleCache
	layoutCache LayoutCache

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error

	// Injected for tests
	now      func() time.Time
	copyText func(string) error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) ModelOption {
	return func(m *Model) {
		m.copyText = write
	}
}

// WithDateCache shares a date cache with other tables.
func WithDateCache(c *locale.DateCache) ModelOption {
	return func(m *Model) {
		m.table = tasklist.New(m.tableProps(nil), tasklist.WithDateCache(c))
	}
}

// New creates a new TUI model.
func New(repo task.Repository, cfg *config.Config, opts ...ModelOption) Model {
	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle.Bold(true)
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle
	h.Styles.FullKey = styles.HelpStyle.Bold(true)
	h.Styles.FullDesc = styles.HelpStyle
	h.Styles.FullSeparator = styles.HelpStyle

	m := Model{
		repo:     repo,
		config:   cfg,
		theme:    t,
		styles:   styles,
		tree:     task.NewTree(nil),
		metrics:  cfg.Metrics(),
		events:   make(chan tea.Msg, eventBuffer),
		loading:  true,
		keys:     DefaultKeyMap(),
		help:     h,
		viewport: viewport.New(0, 0),
		now:      time.Now,
		copyText: clipboard.WriteAll,
	}
	m.viewport.MouseWheelEnabled = true

	for _, opt := range opts {
		opt(&m)
	}
	if m.table == nil {
		m.table = tasklist.New(m.tableProps(nil))
	}

	m.layoutCache = m.buildLayoutCache(0, 0)
	m.styleCache = NewStyleCache(styles, m.layoutCache.NameW, m.layoutCache.DateW)
	return m
}

// tableProps builds the table props for the given visible tasks.
func (m Model) tableProps(tasks []*task.Task) tasklist.Props {
	events := m.events
	return tasklist.Props{
		Tasks:       tasks,
		RowHeight:   m.config.Table.RowHeight,
		RowWidth:    m.config.Table.RowWidth,
		TaskWidth:   m.config.Table.TaskWidth,
		FontFamily:  m.config.Table.FontFamily,
		FontSize:    m.config.Table.FontSize,
		Locale:      m.config.Table.Locale,
		SideElement: newTimerFactory(m.styles, m.tracking, m.trackAt, m.clock(), events),
		FetchData: func() {
			post(events, commands.RefreshMsg{})
		},
		OnClickTask: func(id string) {
			post(events, commands.TaskClickedMsg{TaskID: id})
		},
		OnExpanderClick: func(t *task.Task) {
			post(events, commands.ExpanderClickedMsg{TaskID: t.ID})
		},
	}
}

func (m Model) clock() func() time.Time {
	if m.now == nil {
		return time.Now
	}
	return m.now
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		commands.LoadTasks(m.repo, m.clock()()),
		commands.Listen(m.events),
		commands.Tick(timerTick),
	)
}

// Run starts the TUI.
func Run(repo task.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	p := tea.NewProgram(New(repo, cfg), opts...)
	_, err := p.Run()
	return err
}
