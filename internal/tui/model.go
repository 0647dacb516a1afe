// Package tui provides the terminal user interface for calpick.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/calpick/internal/calendar"
	"github.com/javiermolinar/calpick/internal/config"
	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/event"
	"github.com/javiermolinar/calpick/internal/selection"
	"github.com/javiermolinar/calpick/internal/tui/commands"
	"github.com/javiermolinar/calpick/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // goto-date prompt is open
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModePrompt:
		return "prompt"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

const maxWeekRows = 6

// notificationLog collects what the widget callbacks report between two
// key presses. The model is copied on every update, so it holds a pointer.
type notificationLog struct {
	notes []selection.Notification
	nav   []string
}

func (l *notificationLog) handlers() calendar.Handlers {
	return calendar.Handlers{
		OnDateSelect: func(date, rangeStart, rangeEnd dateutil.Date) {
			l.notes = append(l.notes, selection.Notification{
				Kind:       selection.DateSelected,
				Date:       date,
				RangeStart: rangeStart,
				RangeEnd:   rangeEnd,
			})
		},
		OnStartDateSelect: func(date, rangeStart dateutil.Date) {
			l.notes = append(l.notes, selection.Notification{
				Kind:       selection.StartSelected,
				Date:       date,
				RangeStart: rangeStart,
			})
		},
		OnEndDateSelect: func(date, rangeEnd dateutil.Date) {
			l.notes = append(l.notes, selection.Notification{
				Kind:     selection.EndSelected,
				Date:     date,
				RangeEnd: rangeEnd,
			})
		},
		OnMultiRangeStartDateSelect: func(date dateutil.Date) {
			l.notes = append(l.notes, selection.Notification{
				Kind: selection.BlockSelected,
				Date: date,
			})
		},
		OnTouchNext: func(cursor dateutil.Date) { l.navigated("touch_next", cursor) },
		OnTouchPrev: func(cursor dateutil.Date) { l.navigated("touch_prev", cursor) },
		OnSwipeNext: func(cursor dateutil.Date) { l.navigated("swipe_next", cursor) },
		OnSwipePrev: func(cursor dateutil.Date) { l.navigated("swipe_prev", cursor) },
	}
}

func (l *notificationLog) navigated(kind string, cursor dateutil.Date) {
	LogNavigation(kind, cursor)
	l.nav = append(l.nav, kind)
}

func (l *notificationLog) drainNotes() []selection.Notification {
	notes := l.notes
	l.notes = nil
	return notes
}

func (l *notificationLog) drainNav() []string {
	nav := l.nav
	l.nav = nil
	return nav
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   event.Repository
	blocks selection.BlockStore
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Calendar state
	widget *calendar.Widget
	day    dateutil.Date // day cursor, always inside the cursor month
	mode   Mode
	notes  *notificationLog

	// Rendering options
	indicators bool
	fadedRange bool

	// Components
	prompt textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message
	initMsg    string    // Shown once after first-run initialization

	// Error state
	err error
}

// New creates a new TUI model from the configuration.
func New(repo event.Repository, blocks selection.BlockStore, cfg *config.Config) (*Model, error) {
	opts, err := cfg.CalendarOptions()
	if err != nil {
		return nil, err
	}

	notes := &notificationLog{}
	w, err := calendar.New(opts, notes.handlers())
	if err != nil {
		return nil, err
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "2025-03-14, 2025-03, tomorrow, next-friday"
	ti.Prompt = ""
	ti.CharLimit = 32
	ti.TextStyle = styles.PromptInputStyle
	ti.PlaceholderStyle = styles.PromptHintStyle
	ti.Cursor.Style = styles.CursorStyle

	day := w.Today()
	if !day.Same(w.Cursor(), dateutil.ByMonth) {
		day = w.Cursor()
	}

	return &Model{
		repo:       repo,
		blocks:     blocks,
		config:     cfg,
		theme:      t,
		styles:     styles,
		widget:     w,
		day:        day,
		mode:       ModeNormal,
		notes:      notes,
		indicators: cfg.UI.ShowEventIndicators,
		fadedRange: cfg.UI.FadedRange,
		prompt:     ti,
	}, nil
}

// Init loads the events of the visible months and, in multi-range mode,
// the stored blocks.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadEvents()}
	if m.widget.Mode() == selection.MultiRange && m.blocks != nil {
		cmds = append(cmds, commands.LoadBlocks(m.blocks))
	}
	if m.initMsg != "" {
		cmds = append(cmds, commands.Status(m.initMsg))
	}
	return tea.Batch(cmds...)
}

// loadEvents loads the events of every month in the visible window.
func (m Model) loadEvents() tea.Cmd {
	months := m.widget.VisibleMonths()
	start := months[0]
	end := months[len(months)-1].EndOfMonth()
	return commands.LoadEvents(m.repo, m.widget.Cursor(), start, end)
}

// Run starts the TUI.
func Run(repo event.Repository, blocks selection.BlockStore, cfg *config.Config) error {
	return RunWithDebug(repo, blocks, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging. A nil repo is
// opened from the configured path, writing a default config on first run.
func RunWithDebug(repo event.Repository, blocks selection.BlockStore, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	var initMsg string
	if repo == nil {
		state, err := DetectInitState(cfg)
		if err != nil {
			return err
		}
		opened, err := initializeStorage(cfg, state)
		if err != nil {
			return err
		}
		defer func() { _ = opened.Close() }()
		repo, blocks = opened, opened
		initMsg = state.Message()
	}

	model, err := New(repo, blocks, cfg)
	if err != nil {
		return err
	}
	model.initMsg = initMsg

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
