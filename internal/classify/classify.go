// Package classify turns grid rows into per-cell attribute sets for rendering.
package classify

import (
	"github.com/javiermolinar/calpick/internal/bounds"
	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/event"
	"github.com/javiermolinar/calpick/internal/grid"
	"github.com/javiermolinar/calpick/internal/selection"
)

// Cell is the classified form of a grid position. Fillers carry only
// Filler, Weekday and Weekend.
type Cell struct {
	DayIndex int
	Filler   bool
	Date     dateutil.Date
	Weekday  int // 0=Sunday .. 6=Saturday
	Weekend  bool

	Today           bool
	Selected        bool // single mode only
	InRange         bool
	StartRange      bool
	EndRange        bool
	InSelectedBlock bool // multi-range: part of the focused block
	Disabled        bool

	Event    event.Payload
	HasEvent bool
}

// Week is one classified row.
type Week [grid.DaysPerWeek]Cell

// Month is a classified month.
type Month struct {
	Start dateutil.Date
	Weeks []Week
}

// Input is everything classification reads. Nothing in it is modified.
type Input struct {
	WeekStart int
	State     selection.State
	Bounds    bounds.Bounds
	Events    event.Index
	Today     dateutil.Date
}

// Classify builds and classifies the grid of the month containing month.
func Classify(month dateutil.Date, in Input) Month {
	start := month.StartOfMonth()
	rows := grid.Build(start, in.WeekStart)
	return Month{Start: start, Weeks: Rows(rows, start, in)}
}

// Window classifies each month independently, in order.
func Window(months []dateutil.Date, in Input) []Month {
	out := make([]Month, 0, len(months))
	for _, m := range months {
		out = append(out, Classify(m, in))
	}
	return out
}

// Rows classifies already built rows of the month starting at monthStart.
func Rows(rows []grid.WeekRow, monthStart dateutil.Date, in Input) []Week {
	m := newMarker(monthStart, in)
	days := in.Events.Month(monthStart)

	weeks := make([]Week, len(rows))
	for i, row := range rows {
		for col, raw := range row {
			c := Cell{
				DayIndex: raw.DayIndex,
				Filler:   raw.Filler,
				Weekday:  raw.Weekday,
				Weekend:  raw.Weekend(),
			}
			if !raw.Filler {
				c.Date = monthStart.AddDays(raw.DayIndex)
				m.mark(&c)
				c.Disabled = in.Bounds.IsDisabled(raw.DayIndex, monthStart)
				if p, ok := days[raw.DayIndex]; ok {
					c.Event = p.Clone()
					c.HasEvent = true
				}
			}
			weeks[i][col] = c
		}
	}
	return weeks
}

// marker holds the month-level comparisons computed once per month.
type marker struct {
	monthStart dateutil.Date
	todayIndex int // -1 when today is in another month
	state      selection.State

	// Range mode.
	afterStartMonth bool
	isStartMonth    bool
	beforeEndMonth  bool
	isEndMonth      bool
	startIndex      int
	endIndex        int
}

func newMarker(monthStart dateutil.Date, in Input) marker {
	m := marker{monthStart: monthStart, todayIndex: -1, state: in.State}
	if !in.Today.IsZero() && monthStart.Same(in.Today, dateutil.ByMonth) {
		m.todayIndex = in.Today.DayIndex()
	}
	if rs, ok := in.State.(selection.RangeState); ok {
		m.afterStartMonth = monthStart.After(rs.Start, dateutil.ByMonth)
		m.isStartMonth = monthStart.Same(rs.Start, dateutil.ByMonth)
		m.beforeEndMonth = monthStart.Before(rs.End, dateutil.ByMonth)
		m.isEndMonth = monthStart.Same(rs.End, dateutil.ByMonth)
		m.startIndex = rs.Start.DayIndex()
		m.endIndex = rs.End.DayIndex()
	}
	return m
}

func (m marker) mark(c *Cell) {
	c.Today = c.DayIndex == m.todayIndex

	switch s := m.state.(type) {
	case selection.SingleState:
		c.Selected = !s.Selected.IsZero() && c.Date == s.Selected
	case selection.RangeState:
		i := c.DayIndex
		c.InRange = (m.afterStartMonth || m.isStartMonth && i > m.startIndex) &&
			(m.beforeEndMonth || m.isEndMonth && i < m.endIndex)
		c.StartRange = m.isStartMonth && i == m.startIndex
		c.EndRange = m.isEndMonth && i == m.endIndex
	case selection.MultiRangeState:
		start, ok := s.BlockContaining(c.Date)
		if !ok {
			return
		}
		end := s.BlockEnd(start)
		c.StartRange = c.Date == start
		c.EndRange = c.Date == end
		c.InRange = c.Date.After(start, dateutil.ByDay) && c.Date.Before(end, dateutil.ByDay)
		c.InSelectedBlock = !s.Selected.IsZero() && start == s.Selected
	}
}
