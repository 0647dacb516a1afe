// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/event"
	"github.com/javiermolinar/calpick/internal/selection"
)

// SelectionSummary describes the selection state in one line.
func SelectionSummary(st selection.State) string {
	switch s := st.(type) {
	case selection.SingleState:
		if s.Selected.IsZero() {
			return "Nothing selected"
		}
		return "Selected " + s.Selected.Format("Mon Jan 2, 2006")
	case selection.RangeState:
		days := int(s.End.Time().Sub(s.Start.Time()).Hours()/24) + 1
		summary := fmt.Sprintf("Range %s → %s (%d %s)", s.Start, s.End, days, plural(days, "day", "days"))
		if s.AwaitingStart {
			summary += " · picking start"
		} else {
			summary += " · picking end"
		}
		return summary
	case selection.MultiRangeState:
		if len(s.Starts) == 0 {
			return fmt.Sprintf("No blocks · %d-day blocks", s.BlockLength)
		}
		summary := fmt.Sprintf("%d %s of %d days", len(s.Starts), plural(len(s.Starts), "block", "blocks"), s.BlockLength)
		if !s.Selected.IsZero() {
			summary += fmt.Sprintf(" · selected %s → %s", s.Selected, s.BlockEnd(s.Selected))
		}
		return summary
	default:
		return ""
	}
}

// CopyText renders the selection for the clipboard. Ranges and blocks use
// start..end; blocks are comma separated.
func CopyText(st selection.State) string {
	switch s := st.(type) {
	case selection.SingleState:
		if s.Selected.IsZero() {
			return ""
		}
		return s.Selected.String()
	case selection.RangeState:
		return s.Start.String() + ".." + s.End.String()
	case selection.MultiRangeState:
		parts := make([]string, 0, len(s.Starts))
		for _, start := range s.Starts {
			parts = append(parts, start.String()+".."+s.BlockEnd(start).String())
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// EventLine describes the event on d, or just the date when there is none.
func EventLine(d dateutil.Date, p event.Payload, ok bool) string {
	label := d.Format("Mon Jan 2")
	if !ok {
		return label
	}
	title := p.Title()
	if title == "" {
		title = "event"
	}
	rest := make(event.Payload, len(p))
	for k, v := range p {
		if k != event.TitleKey && k != event.TagSource {
			rest[k] = v
		}
	}
	line := label + " · " + title
	if extra := rest.String(); extra != "" {
		line += " · " + extra
	}
	return line
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
