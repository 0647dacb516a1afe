package event

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/javiermolinar/calpick/internal/dateutil"
)

// Tag keys filled from iCalendar properties.
const (
	TagUID      = "uid"
	TagLocation = "location"
	TagSource   = "source"
)

// ParseICS reads VEVENTs from an iCalendar stream. Each event becomes one
// Event on its start day, taken in the local zone for timed starts. Events without a start or a summary are skipped.
func ParseICS(r io.Reader) ([]*Event, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	now := time.Now()
	var events []*Event
	for _, ve := range cal.Events() {
		day, err := startDay(ve)
		if err != nil {
			continue
		}

		title := propertyValue(ve, ics.ComponentPropertySummary)
		if title == "" {
			continue
		}

		tags := map[string]string{TagSource: "ics"}
		if uid := ve.Id(); uid != "" {
			tags[TagUID] = uid
		}
		if loc := propertyValue(ve, ics.ComponentPropertyLocation); loc != "" {
			tags[TagLocation] = loc
		}

		events = append(events, &Event{
			Date:      day,
			Title:     title,
			Tags:      tags,
			CreatedAt: now,
		})
	}

	return events, nil
}

// startDay returns the calendar day DTSTART falls on. All-day starts keep
// their written date. Timed starts are moved into time.Local first, so a
// UTC timestamp lands on the day the user sees it.
func startDay(ve *ics.VEvent) (dateutil.Date, error) {
	startAt, err := ve.GetStartAt()
	if err != nil {
		return dateutil.Date{}, err
	}
	if !allDay(ve.GetProperty(ics.ComponentPropertyDtStart)) {
		startAt = startAt.In(time.Local)
	}
	return dateutil.FromTime(startAt), nil
}

func allDay(p *ics.IANAProperty) bool {
	if vals := p.ICalParameters[string(ics.ParameterValue)]; len(vals) > 0 {
		return strings.EqualFold(vals[0], "DATE")
	}
	return !strings.Contains(p.Value, "T")
}

func propertyValue(ve *ics.VEvent, prop ics.ComponentProperty) string {
	p := ve.GetProperty(prop)
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.Value)
}
