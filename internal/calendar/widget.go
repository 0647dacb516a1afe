// Package calendar ties the grid, classifier and selection engine together
// into a month-picker widget with host callbacks.
package calendar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/javiermolinar/calpick/internal/bounds"
	"github.com/javiermolinar/calpick/internal/classify"
	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/event"
	"github.com/javiermolinar/calpick/internal/grid"
	"github.com/javiermolinar/calpick/internal/selection"
)

// Construction errors.
var (
	ErrInvalidWeekStart   = errors.New("week start must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidMonthNames  = errors.New("month names must have 12 entries")
	ErrInvalidDayHeadings = errors.New("day headings must have 7 entries")
)

// DefaultTitleFormat is a Go time layout for the title bar.
const DefaultTitleFormat = "January 2006"

// DefaultMonthNames are used when Options.MonthNames is empty.
var DefaultMonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DefaultDayHeadings are Sunday first, used when Options.DayHeadings is empty.
var DefaultDayHeadings = []string{"S", "M", "T", "W", "T", "F", "S"}

// Options configures a Widget. Zero dates mean "unset".
type Options struct {
	WeekStart int           // 0=Sunday .. 6=Saturday
	Cursor    dateutil.Date // initial month; defaults to Today
	Today     dateutil.Date // defaults to the real current day
	Paging    bool          // keep a five-month window for swiping

	Mode              selection.Mode
	Selected          dateutil.Date
	ExternalSelection bool
	RangeStart        dateutil.Date // defaults to Today in range mode
	RangeEnd          dateutil.Date
	SelectStartDate   bool
	BlockLength       int
	BlockStarts       []dateutil.Date

	DisabledBefore dateutil.Date
	DisabledAfter  dateutil.Date

	EventDates []dateutil.Date
	Events     []event.Entry

	MonthNames  []string
	DayHeadings []string // Sunday first
	TitleFormat string
}

// Handlers are the host callbacks. Nil handlers are skipped. Each fires
// synchronously from the call that caused it.
type Handlers struct {
	OnDateSelect                func(date, rangeStart, rangeEnd dateutil.Date)
	OnStartDateSelect           func(date, rangeStart dateutil.Date)
	OnEndDateSelect             func(date, rangeEnd dateutil.Date)
	OnMultiRangeStartDateSelect func(date dateutil.Date)
	OnTouchNext                 func(cursor dateutil.Date)
	OnTouchPrev                 func(cursor dateutil.Date)
	OnSwipeNext                 func(cursor dateutil.Date)
	OnSwipePrev                 func(cursor dateutil.Date)
}

// Widget is a month picker. It is not safe for concurrent use.
type Widget struct {
	weekStart   int
	today       dateutil.Date
	monthNames  []string
	dayHeadings []string
	titleFormat string

	window   *grid.MonthWindow
	engine   *selection.Engine
	bounds   bounds.Bounds
	events   event.Index
	handlers Handlers
}

// New validates opts and builds a Widget.
func New(opts Options, h Handlers) (*Widget, error) {
	if opts.WeekStart < 0 || opts.WeekStart > 6 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidWeekStart, opts.WeekStart)
	}
	monthNames := opts.MonthNames
	if len(monthNames) == 0 {
		monthNames = DefaultMonthNames
	}
	if len(monthNames) != 12 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidMonthNames, len(monthNames))
	}
	dayHeadings := opts.DayHeadings
	if len(dayHeadings) == 0 {
		dayHeadings = DefaultDayHeadings
	}
	if len(dayHeadings) != grid.DaysPerWeek {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidDayHeadings, len(dayHeadings))
	}
	titleFormat := opts.TitleFormat
	if titleFormat == "" {
		titleFormat = DefaultTitleFormat
	}

	today := opts.Today
	if today.IsZero() {
		today = dateutil.Today()
	}
	cursor := opts.Cursor
	if cursor.IsZero() {
		cursor = today
	}
	rangeStart := opts.RangeStart
	if opts.Mode == selection.Range && rangeStart.IsZero() {
		rangeStart = today
	}

	engine, err := selection.New(selection.Config{
		Mode:              opts.Mode,
		Selected:          opts.Selected,
		ExternalSelection: opts.ExternalSelection,
		RangeStart:        rangeStart,
		RangeEnd:          opts.RangeEnd,
		SelectStartDate:   opts.SelectStartDate,
		BlockLength:       opts.BlockLength,
		BlockStarts:       opts.BlockStarts,
	})
	if err != nil {
		return nil, fmt.Errorf("creating selection engine: %w", err)
	}

	return &Widget{
		weekStart:   opts.WeekStart,
		today:       today,
		monthNames:  append([]string(nil), monthNames...),
		dayHeadings: append([]string(nil), dayHeadings...),
		titleFormat: titleFormat,
		window:      grid.NewMonthWindow(cursor, opts.Paging),
		engine:      engine,
		bounds:      bounds.Bounds{Before: opts.DisabledBefore, After: opts.DisabledAfter},
		events:      event.BuildIndex(opts.EventDates, opts.Events),
		handlers:    h,
	}, nil
}

// Cursor returns the first day of the displayed month.
func (w *Widget) Cursor() dateutil.Date {
	return w.window.Current()
}

// Today returns the day the widget treats as today.
func (w *Widget) Today() dateutil.Date {
	return w.today
}

// WeekStart returns the first weekday column (0=Sunday).
func (w *Widget) WeekStart() int {
	return w.weekStart
}

// Mode returns the selection mode.
func (w *Widget) Mode() selection.Mode {
	return w.engine.Mode()
}

// State returns a copy of the selection state.
func (w *Widget) State() selection.State {
	return w.engine.State()
}

// Bounds returns the disabled-date limits.
func (w *Widget) Bounds() bounds.Bounds {
	return w.bounds
}

// Next moves the cursor one month ahead and fires OnTouchNext.
func (w *Widget) Next() dateutil.Date {
	w.window.ShiftForward()
	cursor := w.Cursor()
	if w.handlers.OnTouchNext != nil {
		w.handlers.OnTouchNext(cursor)
	}
	return cursor
}

// Prev moves the cursor one month back and fires OnTouchPrev.
func (w *Widget) Prev() dateutil.Date {
	w.window.ShiftBackward()
	cursor := w.Cursor()
	if w.handlers.OnTouchPrev != nil {
		w.handlers.OnTouchPrev(cursor)
	}
	return cursor
}

// Settle handles a pager coming to rest on page. The cursor moves by the
// page's distance from the center and the window is recentered. Settling on
// the center page moves nothing and fires nothing.
func (w *Widget) Settle(page int) dateutil.Date {
	delta := w.window.Delta(page)
	if delta == 0 {
		return w.Cursor()
	}

	cursor := w.Cursor().AddMonths(delta)
	w.window.Recenter(cursor)

	if delta < 0 {
		if w.handlers.OnSwipePrev != nil {
			w.handlers.OnSwipePrev(cursor)
		}
	} else if w.handlers.OnSwipeNext != nil {
		w.handlers.OnSwipeNext(cursor)
	}
	return cursor
}

// CenterPage returns the page index of the cursor month in Months().
func (w *Widget) CenterPage() int {
	return w.window.Center()
}

// GoTo jumps to the month containing d without firing navigation handlers.
func (w *Widget) GoTo(d dateutil.Date) {
	w.window.Recenter(d)
}

// Pick forwards a pick to the selection engine and dispatches the resulting
// notifications in order. Disabled dates are not filtered here; use
// IsDisabled before routing a pick.
func (w *Widget) Pick(d dateutil.Date) selection.Result {
	res := w.engine.Pick(d)
	for _, n := range res.Notifications {
		w.dispatch(n)
	}
	return res
}

func (w *Widget) dispatch(n selection.Notification) {
	switch n.Kind {
	case selection.DateSelected:
		if w.handlers.OnDateSelect != nil {
			w.handlers.OnDateSelect(n.Date, n.RangeStart, n.RangeEnd)
		}
	case selection.StartSelected:
		if w.handlers.OnStartDateSelect != nil {
			w.handlers.OnStartDateSelect(n.Date, n.RangeStart)
		}
	case selection.EndSelected:
		if w.handlers.OnEndDateSelect != nil {
			w.handlers.OnEndDateSelect(n.Date, n.RangeEnd)
		}
	case selection.BlockSelected:
		if w.handlers.OnMultiRangeStartDateSelect != nil {
			w.handlers.OnMultiRangeStartDateSelect(n.Date)
		}
	}
}

// IsDisabled reports whether d falls outside the disabled bounds.
func (w *Widget) IsDisabled(d dateutil.Date) bool {
	return w.bounds.DateDisabled(d)
}

// VisibleMonths returns the first day of every month in the visible window.
func (w *Widget) VisibleMonths() []dateutil.Date {
	return w.window.Months()
}

// Months returns the classified months of the visible window.
func (w *Widget) Months() []classify.Month {
	return classify.Window(w.window.Months(), w.input())
}

// Month returns the classified cursor month.
func (w *Widget) Month() classify.Month {
	return classify.Classify(w.Cursor(), w.input())
}

// NumberOfWeeks returns the row count of the cursor month.
func (w *Widget) NumberOfWeeks() int {
	return grid.NumberOfWeeks(w.Cursor(), w.weekStart)
}

func (w *Widget) input() classify.Input {
	return classify.Input{
		WeekStart: w.weekStart,
		State:     w.engine.State(),
		Bounds:    w.bounds,
		Events:    w.events,
		Today:     w.today,
	}
}

// Headings returns the column labels starting at the week start.
func (w *Widget) Headings() [grid.DaysPerWeek]grid.Heading {
	return grid.Headings(w.weekStart, w.dayHeadings)
}

// MonthName returns the configured name for the cursor month.
func (w *Widget) MonthName() string {
	return w.monthNames[w.Cursor().Month-1]
}

// Title formats the cursor month with the title layout, substituting the
// configured month name for the English one. A layout with the short month
// form gets the first three letters of the configured name.
func (w *Widget) Title() string {
	cursor := w.Cursor()
	title := cursor.Format(w.titleFormat)
	english, name := cursor.Month.String(), w.MonthName()
	switch {
	case strings.Contains(w.titleFormat, "January"):
		return strings.Replace(title, english, name, 1)
	case strings.Contains(w.titleFormat, "Jan"):
		return strings.Replace(title, english[:3], abbreviate(name), 1)
	}
	return title
}

func abbreviate(name string) string {
	r := []rune(name)
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}

// SetSelected updates an externally managed single selection. Zero is ignored.
func (w *Widget) SetSelected(d dateutil.Date) {
	w.engine.SetSelected(d)
}

// SetAwaitingStart switches range picks between start and end.
func (w *Widget) SetAwaitingStart(awaiting bool) {
	w.engine.SetAwaitingStart(awaiting)
}

// SetRange replaces the range bounds.
func (w *Widget) SetRange(start, end dateutil.Date) error {
	return w.engine.SetRange(start, end)
}

// SetBlocks replaces the multi-range block starts.
func (w *Widget) SetBlocks(starts []dateutil.Date) {
	w.engine.SetBlocks(starts)
}

// Blocks returns a copy of the multi-range block starts.
func (w *Widget) Blocks() []dateutil.Date {
	return w.engine.Blocks()
}

// SetBounds replaces the disabled-date limits.
func (w *Widget) SetBounds(b bounds.Bounds) {
	w.bounds = b
}

// SetEvents rebuilds the event index.
func (w *Widget) SetEvents(plain []dateutil.Date, annotated []event.Entry) {
	w.events = event.BuildIndex(plain, annotated)
}

// SetToday overrides the day treated as today.
func (w *Widget) SetToday(d dateutil.Date) {
	if !d.IsZero() {
		w.today = d
	}
}

// Lookup returns the event payload for d, if any.
func (w *Widget) Lookup(d dateutil.Date) (event.Payload, bool) {
	return w.events.Lookup(d.StartOfMonth(), d.DayIndex())
}
