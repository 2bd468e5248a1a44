package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/scroll"
)

// DebugLogger logs keystrokes, scroll events, and state snapshots to
// a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "pubtimeline-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key": msg.String(),
	})
}

// LogScroll logs a scroll offset change on one axis.
func LogScroll(axis string, offset float64) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("SCROLL", map[string]any{
		"axis":   axis,
		"offset": offset,
	})
}

// LogScrollState logs a controller state snapshot.
func LogScrollState(st scroll.State, action string) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	data := map[string]any{
		"action":     action,
		"horizontal": st.HorizontalOffset,
		"vertical":   st.VerticalOffset,
		"center":     st.CenterDayIndex,
		"day_window": fmt.Sprintf("[%d,%d]", st.DayWindow.Start, st.DayWindow.End),
		"row_window": fmt.Sprintf("[%d,%d]", st.RowWindow.Start, st.RowWindow.End),
		"manual":     st.UserHasScrolled,
	}
	if st.LastVerticalTarget != nil {
		data["target"] = *st.LastVerticalTarget
	}
	debugLog.log("SCROLL_STATE", data)
}

// LogError logs an error.
func LogError(context string, err error) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
