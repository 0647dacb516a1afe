// Package selection holds the date-pick state machine for the three
// selection modes.
package selection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/javiermolinar/calpick/internal/dateutil"
)

// Construction errors.
var (
	ErrUnknownMode         = errors.New("mode must be 'single', 'range' or 'multi_range'")
	ErrInvalidBlockLength  = errors.New("block length must be at least 1")
	ErrMissingRangeStart   = errors.New("range mode needs a start date")
	ErrRangeEndBeforeStart = errors.New("range end must be on or after range start")
)

// Mode is the selection mode. It is fixed for the lifetime of an Engine.
type Mode int

const (
	Single Mode = iota
	Range
	MultiRange
)

// String returns the config spelling of the mode.
func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Range:
		return "range"
	case MultiRange:
		return "multi_range"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "single", "range" or "multi_range" (case-insensitive;
// "multirange" and "multi-range" are accepted too).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return Single, nil
	case "range":
		return Range, nil
	case "multi_range", "multirange", "multi-range":
		return MultiRange, nil
	default:
		return Single, fmt.Errorf("%w, got %q", ErrUnknownMode, s)
	}
}

// State is the mode-specific selection payload. It is one of SingleState,
// RangeState or MultiRangeState.
type State interface {
	Mode() Mode
	clone() State
}

// SingleState holds the one selected date.
type SingleState struct {
	Selected dateutil.Date
}

// Mode implements State.
func (SingleState) Mode() Mode { return Single }

func (s SingleState) clone() State { return s }

// RangeState holds a contiguous range and the flags steering the next pick.
type RangeState struct {
	Start         dateutil.Date
	End           dateutil.Date
	AwaitingStart bool // the host asked for the start to be picked
	FirstPending  bool // no pick has fixed the end yet
}

// Mode implements State.
func (RangeState) Mode() Mode { return Range }

func (s RangeState) clone() State { return s }

// MultiRangeState holds fixed-length blocks. Each start covers
// [start, start+BlockLength-1]. Blocks never overlap.
type MultiRangeState struct {
	BlockLength int
	Starts      []dateutil.Date
	Selected    dateutil.Date // start of the focused block, zero if none
}

// Mode implements State.
func (MultiRangeState) Mode() Mode { return MultiRange }

func (s MultiRangeState) clone() State {
	s.Starts = copyDates(s.Starts)
	return s
}

// BlockEnd returns the last day of the block starting at start.
func (s MultiRangeState) BlockEnd(start dateutil.Date) dateutil.Date {
	return start.AddDays(s.BlockLength - 1)
}

// BlockContaining returns the start of the block covering d.
func (s MultiRangeState) BlockContaining(d dateutil.Date) (dateutil.Date, bool) {
	for _, start := range s.Starts {
		if d.SameOrAfter(start, dateutil.ByDay) && d.SameOrBefore(s.BlockEnd(start), dateutil.ByDay) {
			return start, true
		}
	}
	return dateutil.Date{}, false
}

// overlapsAny reports whether [start, start+BlockLength-1] shares a day with
// any existing block. Every block is checked.
func (s MultiRangeState) overlapsAny(start dateutil.Date) bool {
	end := s.BlockEnd(start)
	for _, existing := range s.Starts {
		existingEnd := s.BlockEnd(existing)
		if !end.Before(existing, dateutil.ByDay) && !start.After(existingEnd, dateutil.ByDay) {
			return true
		}
	}
	return false
}

func copyDates(in []dateutil.Date) []dateutil.Date {
	if in == nil {
		return nil
	}
	out := make([]dateutil.Date, len(in))
	copy(out, in)
	return out
}
