package selection

import (
	"fmt"

	"github.com/javiermolinar/calpick/internal/dateutil"
)

// Config is the initial selection configuration.
type Config struct {
	Mode Mode

	// Single mode.
	Selected dateutil.Date
	// ExternalSelection leaves Selected owned by the host: picks still
	// notify but do not move it. The host feeds it back with SetSelected.
	ExternalSelection bool

	// Range mode. A zero RangeEnd defaults to RangeStart.
	RangeStart      dateutil.Date
	RangeEnd        dateutil.Date
	SelectStartDate bool

	// MultiRange mode.
	BlockLength int
	BlockStarts []dateutil.Date
}

// Result is the outcome of a pick. State is a copy taken after the pick.
type Result struct {
	Accepted      bool
	Notifications []Notification
	State         State
}

// Engine processes picks into state changes and notifications. It is not
// safe for concurrent use; callers serialize access.
type Engine struct {
	state    State
	external bool
}

// New builds an engine for cfg.Mode.
func New(cfg Config) (*Engine, error) {
	e := &Engine{external: cfg.ExternalSelection}

	switch cfg.Mode {
	case Single:
		e.state = SingleState{Selected: cfg.Selected}
	case Range:
		if cfg.RangeStart.IsZero() {
			return nil, ErrMissingRangeStart
		}
		end := cfg.RangeEnd
		if end.IsZero() {
			end = cfg.RangeStart
		}
		if end.Before(cfg.RangeStart, dateutil.ByDay) {
			return nil, fmt.Errorf("%w: %s before %s", ErrRangeEndBeforeStart, end, cfg.RangeStart)
		}
		e.state = RangeState{
			Start:         cfg.RangeStart,
			End:           end,
			AwaitingStart: cfg.SelectStartDate && end == cfg.RangeStart,
			FirstPending:  true,
		}
	case MultiRange:
		if cfg.BlockLength < 1 {
			return nil, fmt.Errorf("%w, got %d", ErrInvalidBlockLength, cfg.BlockLength)
		}
		e.state = MultiRangeState{
			BlockLength: cfg.BlockLength,
			Starts:      copyDates(cfg.BlockStarts),
		}
	default:
		return nil, fmt.Errorf("%w, got %s", ErrUnknownMode, cfg.Mode)
	}

	return e, nil
}

// Mode returns the engine's fixed mode.
func (e *Engine) Mode() Mode {
	return e.state.Mode()
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state.clone()
}

// Pick applies a user pick. Rejected picks leave the state untouched and
// carry no notifications. The engine does not check disabled bounds.
func (e *Engine) Pick(d dateutil.Date) Result {
	var (
		accepted bool
		notes    []Notification
	)

	switch s := e.state.(type) {
	case SingleState:
		accepted, notes = e.pickSingle(s, d)
	case RangeState:
		accepted, notes = e.pickRange(s, d)
	case MultiRangeState:
		accepted, notes = e.pickMultiRange(s, d)
	}

	return Result{Accepted: accepted, Notifications: notes, State: e.State()}
}

func (e *Engine) pickSingle(s SingleState, d dateutil.Date) (bool, []Notification) {
	if !e.external {
		s.Selected = d
		e.state = s
	}
	return true, []Notification{{Kind: DateSelected, Date: d}}
}

// pickRange evaluates the branches in a fixed order. Reordering them changes
// which transitions are reachable after SetAwaitingStart.
func (e *Engine) pickRange(s RangeState, d dateutil.Date) (bool, []Notification) {
	next := s

	switch {
	case s.FirstPending && s.AwaitingStart:
		next.Start, next.End = d, d
	case s.FirstPending && !s.AwaitingStart && d.After(s.Start, dateutil.ByDay):
		next.End = d
		next.FirstPending = false
	case s.AwaitingStart && d.Before(s.End, dateutil.ByDay):
		next.Start = d
	case !s.AwaitingStart && d.After(s.Start, dateutil.ByDay):
		next.End = d
	default:
		return false, nil
	}

	e.state = next

	var notes []Notification
	if next.End != s.End {
		notes = append(notes, Notification{Kind: EndSelected, Date: d, RangeEnd: next.End})
	}
	if next.Start != s.Start {
		notes = append(notes, Notification{Kind: StartSelected, Date: d, RangeStart: next.Start})
	}
	return true, notes
}

func (e *Engine) pickMultiRange(s MultiRangeState, d dateutil.Date) (bool, []Notification) {
	if start, ok := s.BlockContaining(d); ok {
		s.Selected = start
		e.state = s
		return true, []Notification{{Kind: BlockSelected, Date: start}}
	}

	if s.overlapsAny(d) {
		return false, nil
	}

	starts := make([]dateutil.Date, 0, len(s.Starts)+1)
	starts = append(starts, s.Starts...)
	s.Starts = append(starts, d)
	s.Selected = d
	e.state = s

	return true, []Notification{
		{Kind: DateSelected, Date: d},
		{Kind: BlockSelected, Date: d},
	}
}

// SetSelected replaces the single-mode selection. Zero dates are ignored,
// matching a host that only passes a selection when it has one.
func (e *Engine) SetSelected(d dateutil.Date) {
	s, ok := e.state.(SingleState)
	if !ok || d.IsZero() {
		return
	}
	s.Selected = d
	e.state = s
}

// SetAwaitingStart flips whether the next range pick anchors the start.
func (e *Engine) SetAwaitingStart(awaiting bool) {
	s, ok := e.state.(RangeState)
	if !ok {
		return
	}
	s.AwaitingStart = awaiting
	e.state = s
}

// SetRange replaces the range bounds without touching the pick flags. A zero
// end defaults to start.
func (e *Engine) SetRange(start, end dateutil.Date) error {
	s, ok := e.state.(RangeState)
	if !ok || start.IsZero() {
		return nil
	}
	if end.IsZero() {
		end = start
	}
	if end.Before(start, dateutil.ByDay) {
		return fmt.Errorf("%w: %s before %s", ErrRangeEndBeforeStart, end, start)
	}
	s.Start, s.End = start, end
	e.state = s
	return nil
}

// SetBlocks replaces the multi-range block starts with a copy of starts.
func (e *Engine) SetBlocks(starts []dateutil.Date) {
	s, ok := e.state.(MultiRangeState)
	if !ok {
		return
	}
	s.Starts = copyDates(starts)
	if !s.Selected.IsZero() {
		if _, found := s.BlockContaining(s.Selected); !found {
			s.Selected = dateutil.Date{}
		}
	}
	e.state = s
}

// Blocks returns a copy of the multi-range block starts, or nil in other modes.
func (e *Engine) Blocks() []dateutil.Date {
	if s, ok := e.state.(MultiRangeState); ok {
		return copyDates(s.Starts)
	}
	return nil
}
