package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/selection"
	"github.com/javiermolinar/calpick/internal/tui/commands"
	"github.com/javiermolinar/calpick/internal/tui/input"
	"github.com/javiermolinar/calpick/internal/tui/view"
)

const (
	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Day cursor
	case "h", "left":
		return m.moveDay(-1)
	case "l", "right":
		return m.moveDay(1)
	case "k", "up":
		return m.moveDay(-7)
	case "j", "down":
		return m.moveDay(7)

	// Month navigation
	case "n", "L", "shift+right":
		return m.shiftMonth(1)
	case "p", "H", "shift+left":
		return m.shiftMonth(-1)
	case "]", "pgdown":
		return m.swipe(1)
	case "[", "pgup":
		return m.swipe(-1)
	case "t":
		return m.jumpTo(m.widget.Today(), "today")

	// Selection
	case "enter", " ", "space":
		return m.pick()
	case "s":
		return m.toggleAwaitingStart()
	case "y":
		return m.copySelection()

	case "g", "/":
		m.prompt.SetValue("")
		m.prompt.Focus()
		LogModeChange(m.mode, ModePrompt, "goto")
		m.mode = ModePrompt
	}

	return m, nil
}

// handlePromptKeys handles keys while the goto prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closePrompt("cancel"), nil

	case "tab":
		if value, ok := input.Complete(m.prompt.Value(), gotoKeywords); ok {
			m.prompt.SetValue(value)
			m.prompt.CursorEnd()
		}
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m = m.closePrompt("submit")
		d, err := parseGoto(value, m.widget.Today())
		if err != nil {
			LogError("goto", err)
			cmd := m.setStatus("Invalid date: "+value, errorDuration)
			return m, cmd
		}
		return m.jumpTo(d, "goto")
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) closePrompt(reason string) Model {
	m.prompt.Blur()
	m.prompt.SetValue("")
	LogModeChange(m.mode, ModeNormal, reason)
	m.mode = ModeNormal
	return m
}

// moveDay moves the day cursor by delta days. Leaving the cursor month
// turns the page through Next/Prev so the touch handlers fire.
func (m Model) moveDay(delta int) (tea.Model, tea.Cmd) {
	target := m.day.AddDays(delta)
	for target.After(m.widget.Cursor(), dateutil.ByMonth) {
		m.widget.Next()
	}
	for target.Before(m.widget.Cursor(), dateutil.ByMonth) {
		m.widget.Prev()
	}
	m.day = target
	LogCursorMove(m.day, "move")
	return m, m.syncMonth()
}

// shiftMonth turns one month, keeping the day of month where it exists.
func (m Model) shiftMonth(delta int) (tea.Model, tea.Cmd) {
	if delta > 0 {
		m.widget.Next()
	} else {
		m.widget.Prev()
	}
	m.day = m.day.AddMonths(delta)
	m.keepDayInMonth()
	LogCursorMove(m.day, "month")
	return m, m.syncMonth()
}

// swipe settles the pager one page away from the center.
func (m Model) swipe(delta int) (tea.Model, tea.Cmd) {
	m.widget.Settle(m.widget.CenterPage() + delta)
	m.day = m.day.AddMonths(delta)
	m.keepDayInMonth()
	LogCursorMove(m.day, "swipe")
	return m, m.syncMonth()
}

// jumpTo moves the day cursor to d without firing navigation handlers.
func (m Model) jumpTo(d dateutil.Date, reason string) (tea.Model, tea.Cmd) {
	changed := !d.Same(m.widget.Cursor(), dateutil.ByMonth)
	if changed {
		m.widget.GoTo(d)
		LogNavigation(reason, m.widget.Cursor())
	}
	m.day = d
	LogCursorMove(m.day, reason)
	if changed {
		return m, m.loadEvents()
	}
	return m, nil
}

// syncMonth reloads events when a navigation handler fired.
func (m Model) syncMonth() tea.Cmd {
	if len(m.notes.drainNav()) == 0 {
		return nil
	}
	return m.loadEvents()
}

func (m *Model) keepDayInMonth() {
	if !m.day.Same(m.widget.Cursor(), dateutil.ByMonth) {
		m.day = m.widget.Cursor()
	}
}

// pick routes the day under the cursor to the widget.
func (m Model) pick() (tea.Model, tea.Cmd) {
	day := m.day
	if m.widget.IsDisabled(day) {
		cmd := m.setStatus(day.String()+" is disabled", statusDuration)
		return m, cmd
	}

	res := m.widget.Pick(day)
	LogPick(day, res)
	notes := m.notes.drainNotes()
	if !res.Accepted {
		cmd := m.setStatus("Pick rejected: "+day.String(), statusDuration)
		return m, cmd
	}
	for _, n := range notes {
		LogNotification(n)
	}

	var cmds []tea.Cmd
	if len(notes) > 0 {
		cmds = append(cmds, m.setStatus(describeNotification(notes[len(notes)-1]), statusDuration))
	}
	if m.widget.Mode() == selection.MultiRange && m.blocks != nil {
		cmds = append(cmds, commands.SaveBlocks(m.blocks, m.widget.Blocks()))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) toggleAwaitingStart() (tea.Model, tea.Cmd) {
	st, ok := m.widget.State().(selection.RangeState)
	if !ok {
		cmd := m.setStatus("Start/end toggle only applies to range mode", statusDuration)
		return m, cmd
	}
	m.widget.SetAwaitingStart(!st.AwaitingStart)
	if st.AwaitingStart {
		cmd := m.setStatus("Picking end date", statusDuration)
		return m, cmd
	}
	cmd := m.setStatus("Picking start date", statusDuration)
	return m, cmd
}

func (m Model) copySelection() (tea.Model, tea.Cmd) {
	text := view.CopyText(m.widget.State())
	if text == "" {
		cmd := m.setStatus("Nothing to copy", statusDuration)
		return m, cmd
	}
	if err := clipboardWrite(text); err != nil {
		LogError("clipboard", err)
		cmd := m.setStatus("Copy failed: "+err.Error(), errorDuration)
		return m, cmd
	}
	cmd := m.setStatus("Copied "+text, statusDuration)
	return m, cmd
}

// setStatus shows msg for d and schedules clearing it.
func (m *Model) setStatus(msg string, d time.Duration) tea.Cmd {
	m.statusMsg = msg
	m.err = nil
	m.statusTime = time.Now().Add(d)
	return commands.ClearStatusAfter(d)
}

// describeNotification renders a notification for the status line.
func describeNotification(n selection.Notification) string {
	switch n.Kind {
	case selection.StartSelected:
		return "Start " + n.RangeStart.Format("Mon Jan 2, 2006")
	case selection.EndSelected:
		return "End " + n.RangeEnd.Format("Mon Jan 2, 2006")
	case selection.BlockSelected:
		return "Block from " + n.Date.Format("Mon Jan 2, 2006")
	default:
		return "Selected " + n.Date.Format("Mon Jan 2, 2006")
	}
}
