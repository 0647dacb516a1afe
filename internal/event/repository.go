package event

import (
	"context"

	"github.com/javiermolinar/calpick/internal/dateutil"
)

// Repository defines the storage interface for events.
type Repository interface {
	// CreateEvent adds a new event and sets its ID.
	CreateEvent(ctx context.Context, e *Event) error

	// CreateEvents adds multiple events in a batch.
	CreateEvents(ctx context.Context, events []*Event) error

	// GetEvent retrieves an event by ID. Returns nil, nil if it does not exist.
	GetEvent(ctx context.Context, id int64) (*Event, error)

	// DeleteEvent removes an event. Returns ErrEventNotFound if it does not exist.
	DeleteEvent(ctx context.Context, id int64) error

	// ListEventsByDateRange returns events within the date range (inclusive),
	// ordered by date then ID.
	ListEventsByDateRange(ctx context.Context, start, end dateutil.Date) ([]*Event, error)

	// Close releases any resources held by the repository.
	Close() error
}
