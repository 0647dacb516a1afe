// Package event defines calendar events and the month-keyed lookup used to
// mark grid cells.
package event

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/javiermolinar/calpick/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle = errors.New("title cannot be empty")
	ErrInvalidTag = errors.New("tag must be in key=value format")
)

// Domain errors.
var (
	ErrEventNotFound = errors.New("event not found")
)

// TitleKey is the payload key holding an event's title.
const TitleKey = "title"

// Payload is the opaque data attached to a marked day. The core never reads it.
type Payload map[string]string

// Clone returns a copy of p. A nil payload clones to an empty one.
func (p Payload) Clone() Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Title returns the title entry, if any.
func (p Payload) Title() string {
	return p[TitleKey]
}

// String renders the payload as sorted key=value pairs.
func (p Payload) String() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+p[k])
	}
	return strings.Join(parts, " ")
}

// Event is a stored, annotated day.
type Event struct {
	ID        int64
	Date      dateutil.Date
	Title     string
	Tags      map[string]string
	CreatedAt time.Time
}

// New creates a new Event with validation.
// date can be empty (defaults to today) or in YYYY-MM-DD format.
// tags are "key=value" strings.
func New(title, date string, tags []string) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	d, err := dateutil.ParseDate(date)
	if err != nil {
		return nil, err
	}

	parsed, err := ParseTags(tags)
	if err != nil {
		return nil, err
	}

	return &Event{
		Date:      d,
		Title:     title,
		Tags:      parsed,
		CreatedAt: time.Now(),
	}, nil
}

// ParseTags parses "key=value" strings into a map.
func ParseTags(tags []string) (map[string]string, error) {
	out := make(map[string]string, len(tags))
	for _, tag := range tags {
		key, value, ok := strings.Cut(tag, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

// Entry converts the event into an annotated index entry. The title is
// stored under TitleKey next to the tags.
func (e *Event) Entry() Entry {
	payload := make(Payload, len(e.Tags)+1)
	for k, v := range e.Tags {
		payload[k] = v
	}
	payload[TitleKey] = e.Title
	return Entry{Date: e.Date, Payload: payload}
}

// Entries converts events into annotated index entries.
func Entries(events []*Event) []Entry {
	out := make([]Entry, 0, len(events))
	for _, e := range events {
		if e == nil {
			continue
		}
		out = append(out, e.Entry())
	}
	return out
}
