package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/calpick/internal/config"
	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/selection"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// press feeds keys through Update and returns the model and the last command.
func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m, cmd
}

func TestMoveDay(t *testing.T) {
	tests := []struct {
		name       string
		today      string
		keys       []string
		wantDay    dateutil.Date
		wantCursor dateutil.Date
		wantLoad   bool
	}{
		{
			name:       "within_month",
			today:      "2024-01-15",
			keys:       []string{"l"},
			wantDay:    date(2024, time.January, 16),
			wantCursor: date(2024, time.January, 1),
		},
		{
			name:       "right_into_next_month",
			today:      "2024-01-31",
			keys:       []string{"right"},
			wantDay:    date(2024, time.February, 1),
			wantCursor: date(2024, time.February, 1),
			wantLoad:   true,
		},
		{
			name:       "up_into_previous_month",
			today:      "2024-03-03",
			keys:       []string{"k"},
			wantDay:    date(2024, time.February, 25),
			wantCursor: date(2024, time.February, 1),
			wantLoad:   true,
		},
		{
			name:       "down_across_year",
			today:      "2024-12-28",
			keys:       []string{"j"},
			wantDay:    date(2025, time.January, 4),
			wantCursor: date(2025, time.January, 1),
			wantLoad:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, tt.today, nil)
			m, cmd := press(t, m, tt.keys...)

			if m.day != tt.wantDay {
				t.Errorf("day = %s, want %s", m.day, tt.wantDay)
			}
			if m.widget.Cursor() != tt.wantCursor {
				t.Errorf("cursor = %s, want %s", m.widget.Cursor(), tt.wantCursor)
			}
			if (cmd != nil) != tt.wantLoad {
				t.Errorf("load command = %v, want %v", cmd != nil, tt.wantLoad)
			}
		})
	}
}

func TestMonthNavigation(t *testing.T) {
	tests := []struct {
		name       string
		paging     bool
		keys       []string
		wantDay    dateutil.Date
		wantCursor dateutil.Date
	}{
		{name: "next_clamps_day", keys: []string{"n"}, wantDay: date(2024, time.February, 29), wantCursor: date(2024, time.February, 1)},
		{name: "shift_l_alias", keys: []string{"L"}, wantDay: date(2024, time.February, 29), wantCursor: date(2024, time.February, 1)},
		{name: "prev", keys: []string{"p"}, wantDay: date(2023, time.December, 31), wantCursor: date(2023, time.December, 1)},
		{name: "swipe_next", paging: true, keys: []string{"]"}, wantDay: date(2024, time.February, 29), wantCursor: date(2024, time.February, 1)},
		{name: "swipe_prev", paging: true, keys: []string{"[", "["}, wantDay: date(2023, time.November, 30), wantCursor: date(2023, time.November, 1)},
		{name: "swipe_without_paging", keys: []string{"]"}, wantDay: date(2024, time.February, 29), wantCursor: date(2024, time.February, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, "2024-01-31", func(c *config.Config) { c.Calendar.ScrollEnabled = tt.paging })
			m, cmd := press(t, m, tt.keys...)

			if m.day != tt.wantDay {
				t.Errorf("day = %s, want %s", m.day, tt.wantDay)
			}
			if m.widget.Cursor() != tt.wantCursor {
				t.Errorf("cursor = %s, want %s", m.widget.Cursor(), tt.wantCursor)
			}
			if cmd == nil {
				t.Error("expected an event load after navigation")
			}
		})
	}
}

func TestNavigationHandlersFire(t *testing.T) {
	m := newTestModel(t, "2024-01-31", func(c *config.Config) { c.Calendar.ScrollEnabled = true })

	// The handlers record into the shared log; inspect it before the model drains it.
	m.widget.Next()
	m.widget.Settle(m.widget.CenterPage() - 1)
	got := m.notes.drainNav()
	want := []string{"touch_next", "swipe_prev"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("nav = %v, want %v", got, want)
	}
}

func TestJumpToToday(t *testing.T) {
	m := newTestModel(t, "2024-01-15", nil)
	m, _ = press(t, m, "n", "n")

	m, cmd := press(t, m, "t")
	if m.day != date(2024, time.January, 15) {
		t.Errorf("day = %s, want 2024-01-15", m.day)
	}
	if m.widget.Cursor() != date(2024, time.January, 1) {
		t.Errorf("cursor = %s, want 2024-01-01", m.widget.Cursor())
	}
	if cmd == nil {
		t.Error("expected event load after jumping months")
	}
	if got := m.notes.drainNav(); len(got) != 0 {
		t.Errorf("jump must not fire navigation handlers, got %v", got)
	}
}

func TestPickSingle(t *testing.T) {
	m := newTestModel(t, "2024-01-15", nil)
	m, _ = press(t, m, "enter")

	st, ok := m.widget.State().(selection.SingleState)
	if !ok {
		t.Fatalf("state = %T, want SingleState", m.widget.State())
	}
	if st.Selected != date(2024, time.January, 15) {
		t.Errorf("selected = %s, want 2024-01-15", st.Selected)
	}
	if m.statusMsg != "Selected Mon Jan 15, 2024" {
		t.Errorf("status = %q", m.statusMsg)
	}
	if len(m.notes.notes) != 0 {
		t.Errorf("notifications not drained: %v", m.notes.notes)
	}
}

func TestPickDisabled(t *testing.T) {
	m := newTestModel(t, "2024-01-15", func(c *config.Config) { c.Calendar.DisabledBefore = "2024-01-20" })
	m, _ = press(t, m, " ")

	st := m.widget.State().(selection.SingleState)
	if !st.Selected.IsZero() {
		t.Errorf("disabled pick changed selection to %s", st.Selected)
	}
	if m.statusMsg != "2024-01-15 is disabled" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestPickRange(t *testing.T) {
	m := newTestModel(t, "2024-01-10", func(c *config.Config) { c.Calendar.Mode = "range" })

	// Picking the start again is rejected.
	m, _ = press(t, m, "enter")
	if m.statusMsg != "Pick rejected: 2024-01-10" {
		t.Errorf("status = %q", m.statusMsg)
	}

	m, _ = press(t, m, "l", "l", "l", "l", "l", "enter")
	st := m.widget.State().(selection.RangeState)
	if st.Start != date(2024, time.January, 10) || st.End != date(2024, time.January, 15) {
		t.Errorf("range = %s..%s, want 2024-01-10..2024-01-15", st.Start, st.End)
	}
	if m.statusMsg != "End Mon Jan 15, 2024" {
		t.Errorf("status = %q", m.statusMsg)
	}

	m, _ = press(t, m, "s")
	if !m.widget.State().(selection.RangeState).AwaitingStart {
		t.Fatal("expected awaiting start after toggle")
	}
	if m.statusMsg != "Picking start date" {
		t.Errorf("status = %q", m.statusMsg)
	}

	m, _ = press(t, m, "h", "h", "h", "enter")
	st = m.widget.State().(selection.RangeState)
	if st.Start != date(2024, time.January, 12) {
		t.Errorf("start = %s, want 2024-01-12", st.Start)
	}
	if m.statusMsg != "Start Fri Jan 12, 2024" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestToggleAwaitingStartOutsideRange(t *testing.T) {
	m := newTestModel(t, "2024-01-10", nil)
	m, _ = press(t, m, "s")
	if !strings.Contains(m.statusMsg, "range mode") {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestPickMultiRange(t *testing.T) {
	m := newTestModel(t, "2024-02-10", func(c *config.Config) {
		c.Calendar.Mode = "multi_range"
		c.Calendar.BlockLength = 3
	})
	m.blocks = &fakeBlocks{}

	m, cmd := press(t, m, "enter")
	if cmd == nil {
		t.Fatal("expected save command")
	}
	if m.statusMsg != "Block from Sat Feb 10, 2024" {
		t.Errorf("status = %q", m.statusMsg)
	}

	// A day inside a block re-selects it.
	m, _ = press(t, m, "l", "enter")
	if m.statusMsg != "Block from Sat Feb 10, 2024" {
		t.Errorf("status = %q", m.statusMsg)
	}

	// A block starting on the 9th would overlap.
	m, _ = press(t, m, "h", "h", "enter")
	if m.statusMsg != "Pick rejected: 2024-02-09" {
		t.Errorf("status = %q", m.statusMsg)
	}

	m, _ = press(t, m, "l", "l", "l", "l", "enter")
	blocks := m.widget.Blocks()
	if len(blocks) != 2 || blocks[1] != date(2024, time.February, 13) {
		t.Errorf("blocks = %v", blocks)
	}
}

func TestCopySelection(t *testing.T) {
	var copied string
	prev := clipboardWrite
	clipboardWrite = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { clipboardWrite = prev })

	m := newTestModel(t, "2024-01-15", nil)
	m, _ = press(t, m, "y")
	if m.statusMsg != "Nothing to copy" {
		t.Errorf("status = %q", m.statusMsg)
	}

	m, _ = press(t, m, "enter", "y")
	if copied != "2024-01-15" {
		t.Errorf("copied = %q, want 2024-01-15", copied)
	}
	if m.statusMsg != "Copied 2024-01-15" {
		t.Errorf("status = %q", m.statusMsg)
	}

	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	m, _ = press(t, m, "y")
	if m.statusMsg != "Copy failed: no clipboard" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestGotoPrompt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantDay dateutil.Date
	}{
		{name: "date", input: "2024-03-14", wantDay: date(2024, time.March, 14)},
		{name: "month", input: "2024-07", wantDay: date(2024, time.July, 1)},
		{name: "keyword", input: "tomorrow", wantDay: date(2024, time.January, 16)},
		{name: "weekday", input: "friday", wantDay: date(2024, time.January, 19)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, "2024-01-15", nil)
			m, _ = press(t, m, "g")
			if m.mode != ModePrompt {
				t.Fatalf("mode = %v, want ModePrompt", m.mode)
			}

			m, _ = press(t, m, tt.input, "enter")
			if m.mode != ModeNormal {
				t.Errorf("mode = %v, want ModeNormal", m.mode)
			}
			if m.day != tt.wantDay {
				t.Errorf("day = %s, want %s", m.day, tt.wantDay)
			}
			if m.widget.Cursor() != tt.wantDay.StartOfMonth() {
				t.Errorf("cursor = %s, want %s", m.widget.Cursor(), tt.wantDay.StartOfMonth())
			}
		})
	}
}

func TestGotoPrompt_Invalid(t *testing.T) {
	m := newTestModel(t, "2024-01-15", nil)
	m, _ = press(t, m, "g", "someday", "enter")

	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal", m.mode)
	}
	if m.day != date(2024, time.January, 15) {
		t.Errorf("day moved to %s", m.day)
	}
	if m.statusMsg != "Invalid date: someday" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestGotoPrompt_AutocompleteAndCancel(t *testing.T) {
	m := newTestModel(t, "2024-01-15", nil)
	m, _ = press(t, m, "g", "tom", "tab")
	if got := m.prompt.Value(); got != "tomorrow" {
		t.Fatalf("value = %q, want tomorrow", got)
	}

	// Normal-mode keys are typed into the prompt, not acted on.
	m, _ = press(t, m, "q")
	if m.prompt.Value() != "tomorrowq" {
		t.Errorf("value = %q, want tomorrowq", m.prompt.Value())
	}

	m, _ = press(t, m, "esc")
	if m.mode != ModeNormal || m.prompt.Value() != "" {
		t.Errorf("mode = %v, value = %q after esc", m.mode, m.prompt.Value())
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, "2024-01-15", nil)
	for _, k := range []tea.KeyMsg{keyMsg("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected QuitMsg", k)
		}
	}
}
