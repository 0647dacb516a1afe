package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/selection"
)

// DebugLogPath is where --debug writes its JSON lines, relative to the
// working directory.
const DebugLogPath = "calpick-debug.log"

// debugEntry is one line of the debug log.
type debugEntry struct {
	Seq    int            `json:"seq"`
	At     string         `json:"at"`
	Event  string         `json:"event"`
	Fields map[string]any `json:"fields,omitempty"`
}

type debugLogger struct {
	mu     sync.Mutex
	enc    *json.Encoder
	closer io.Closer
	now    func() time.Time
	seq    int
}

// debugLog is nil unless --debug was given.
var debugLog *debugLogger

// InitDebugLogger truncates DebugLogPath and starts logging to it. With
// enabled false every Log function is a no-op.
func InitDebugLogger(enabled bool) error {
	debugLog = nil
	if !enabled {
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	startDebugLog(f, f)
	debugLog.write("debug_start", map[string]any{"file": DebugLogPath})
	return nil
}

func startDebugLog(w io.Writer, c io.Closer) {
	debugLog = &debugLogger{
		enc:    json.NewEncoder(w),
		closer: c,
		now:    time.Now,
	}
}

// CloseDebugLogger writes a final entry and closes the log.
func CloseDebugLogger() {
	if debugLog == nil {
		return
	}
	debugLog.write("debug_end", nil)
	if debugLog.closer != nil {
		_ = debugLog.closer.Close()
	}
	debugLog = nil
}

func (d *debugLogger) write(event string, fields map[string]any) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	_ = d.enc.Encode(debugEntry{
		Seq:    d.seq,
		At:     d.now().Format("15:04:05.000"),
		Event:  event,
		Fields: fields,
	})
}

func debugf(event string, fields map[string]any) {
	if debugLog != nil {
		debugLog.write(event, fields)
	}
}

func debugEnabled() bool {
	return debugLog != nil
}

// LogKeyPress records a key press.
func LogKeyPress(msg tea.KeyMsg) {
	debugf("key", map[string]any{"key": msg.String()})
}

// LogModeChange records switching between the grid and the goto prompt.
func LogModeChange(from, to Mode, reason string) {
	debugf("mode", map[string]any{
		"from":   from.String(),
		"to":     to.String(),
		"reason": reason,
	})
}

// LogCursorMove records the day cursor moving.
func LogCursorMove(day dateutil.Date, reason string) {
	debugf("cursor", map[string]any{"day": day.String(), "reason": reason})
}

// LogNavigation records a month change and the handler kind that fired.
func LogNavigation(kind string, cursor dateutil.Date) {
	debugf("navigate", map[string]any{"kind": kind, "month": cursor.Format("2006-01")})
}

// LogPick records a pick and whether the engine accepted it.
func LogPick(day dateutil.Date, res selection.Result) {
	if !debugEnabled() {
		return
	}
	fields := map[string]any{
		"day":           day.String(),
		"accepted":      res.Accepted,
		"notifications": len(res.Notifications),
	}
	if res.State != nil {
		fields["mode"] = res.State.Mode().String()
	}
	debugf("pick", fields)
}

// LogNotification records one notification dispatched by the widget.
func LogNotification(n selection.Notification) {
	debugf("notify", map[string]any{
		"kind":    n.Kind.String(),
		"message": runewidth.Truncate(n.String(), 80, "..."),
	})
}

// LogError records an error with the place it surfaced.
func LogError(where string, err error) {
	if err == nil {
		return
	}
	debugf("error", map[string]any{"where": where, "error": err.Error()})
}
