package event

import "github.com/javiermolinar/calpick/internal/dateutil"

// Entry is an annotated day. Entries with a zero Date are ignored.
type Entry struct {
	Date    dateutil.Date
	Payload Payload
}

// Index maps a month start to the payloads of its marked days, keyed by
// zero-based day index.
type Index map[dateutil.Date]map[int]Payload

// BuildIndex merges plain dates and annotated entries. Plain dates get an
// empty payload. Annotated entries are applied after every plain date, so an
// annotation always wins for the same day regardless of input order.
func BuildIndex(plain []dateutil.Date, annotated []Entry) Index {
	idx := make(Index)

	for _, d := range plain {
		if d.IsZero() {
			continue
		}
		idx.set(d, Payload{})
	}

	for _, e := range annotated {
		if e.Date.IsZero() {
			continue
		}
		idx.set(e.Date, e.Payload.Clone())
	}

	return idx
}

func (idx Index) set(d dateutil.Date, p Payload) {
	key := d.StartOfMonth()
	days := idx[key]
	if days == nil {
		days = make(map[int]Payload)
		idx[key] = days
	}
	days[d.DayIndex()] = p
}

// Month returns the day map for the month containing monthStart, or nil.
func (idx Index) Month(monthStart dateutil.Date) map[int]Payload {
	if idx == nil {
		return nil
	}
	return idx[monthStart.StartOfMonth()]
}

// Lookup returns the payload for a day of the month containing monthStart.
func (idx Index) Lookup(monthStart dateutil.Date, dayIndex int) (Payload, bool) {
	days := idx.Month(monthStart)
	if days == nil {
		return nil, false
	}
	p, ok := days[dayIndex]
	return p, ok
}
