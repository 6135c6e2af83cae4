package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/ganttlist/internal/dateutil"
	"github.com/javiermolinar/ganttlist/internal/task"
	"github.com/javiermolinar/ganttlist/internal/tasklist"
	"github.com/javiermolinar/ganttlist/internal/tui/commands"
)

// Timer glyphs.
const (
	timerIdleGlyph    = "⏱"
	timerRunningGlyph = "■"
)

// timerElement is the side element of a leaf row: the time tracked on the
// task, and a toggle that starts or stops its timer.
type timerElement struct {
	taskID    string
	tracking  task.Tracking
	asOf      time.Time // when tracking was computed
	now       time.Time
	styles    *Styles
	events    chan<- tea.Msg
	fetchData func()
}

// Render draws the tracked time into width cells.
func (e *timerElement) Render(width int) string {
	total := e.tracking.Total
	glyph := timerIdleGlyph
	style := e.styles.TimerStyle
	if e.tracking.Running {
		if d := e.now.Sub(e.asOf); d > 0 {
			total += d
		}
		glyph = timerRunningGlyph
		style = e.styles.TimerRunningStyle
	}
	label := ansi.Truncate(glyph+" "+dateutil.FormatDuration(total), width, "")
	return style.Render(label)
}

// Click asks the host to toggle the timer.
func (e *timerElement) Click() {
	post(e.events, commands.TimerClickedMsg{TaskID: e.taskID, FetchData: e.fetchData})
}

// newTimerFactory builds a fresh timer element per row from a tracking snapshot.
func newTimerFactory(styles *Styles, tracking map[string]task.Tracking, asOf time.Time, clock func() time.Time, events chan<- tea.Msg) tasklist.SideElementFactory {
	return func(taskID string, fetchData func()) tasklist.SideElement {
		return &timerElement{
			taskID:    taskID,
			tracking:  tracking[taskID],
			asOf:      asOf,
			now:       clock(),
			styles:    styles,
			events:    events,
			fetchData: fetchData,
		}
	}
}

// post sends msg to the host without blocking; dropped messages are logged.
func post(events chan<- tea.Msg, msg tea.Msg) {
	if events == nil {
		return
	}
	if !commands.Post(events, msg) {
		LogEventDropped(msg)
	}
}
