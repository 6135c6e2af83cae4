package tui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "ganttlist-debug.log"

// DebugLogger logs TUI keystrokes, mouse transitions, and events as JSON lines.
type DebugLogger struct {
	mu     sync.Mutex
	logger *slog.Logger
	closer io.Closer
	seq    int
}

// Global debug logger instance
var debugLog *DebugLogger

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = nil
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = NewDebugLogger(f)
	debugLog.closer = f
	debugLog.log("DEBUG_START", slog.String("log_file", DebugLogPath))
	return nil
}

// NewDebugLogger creates a logger writing JSON lines to w.
func NewDebugLogger(w io.Writer) *DebugLogger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &DebugLogger{logger: slog.New(handler)}
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog == nil {
		return
	}
	debugLog.log("DEBUG_END")
	if debugLog.closer != nil {
		_ = debugLog.closer.Close()
	}
	debugLog = nil
}

func (d *DebugLogger) log(event string, attrs ...slog.Attr) {
	if d == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.Int("seq", d.seq))
	for _, a := range attrs {
		args = append(args, a)
	}
	d.logger.Debug(event, args...)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	debugLog.log("KEY_PRESS", slog.String("key", msg.String()))
}

// LogHover logs a hover transition of a task's name cell.
func LogHover(taskID string, hovered bool) {
	debugLog.log("HOVER", slog.String("task_id", taskID), slog.Bool("hovered", hovered))
}

// LogClick logs a click and the region it landed on.
func LogClick(taskID string, region hitRegion) {
	debugLog.log("CLICK", slog.String("task_id", taskID), slog.String("region", region.String()))
}

// LogEventDropped logs a callback message dropped because the queue was full.
func LogEventDropped(msg tea.Msg) {
	debugLog.log("EVENT_DROPPED", slog.String("msg", fmt.Sprintf("%T", msg)))
}

// LogError logs an error.
func LogError(context string, err error) {
	debugLog.log("ERROR", slog.String("context", context), slog.String("error", err.Error()))
}
