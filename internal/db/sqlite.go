// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/calpick/internal/dateutil"
	"github.com/javiermolinar/calpick/internal/event"
)

// SQLite implements event.Repository and selection.BlockStore using SQLite.
type SQLite struct {
	db *sql.DB
}

// New opens the database at path, creating its directory if needed, and
// runs migrations.
func New(path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

const insertEvent = `
	INSERT INTO events (event_date, title, tags, created_at)
	VALUES (?, ?, ?, ?)
`

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateEvent adds a new event and sets its ID.
func (s *SQLite) CreateEvent(ctx context.Context, e *event.Event) error {
	return createEvent(ctx, s.db, e)
}

func createEvent(ctx context.Context, x execer, e *event.Event) error {
	tags, err := encodeTags(e.Tags)
	if err != nil {
		return err
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	result, err := x.ExecContext(ctx, insertEvent,
		e.Date.String(),
		e.Title,
		tags,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	e.ID = id

	return nil
}

// CreateEvents adds multiple events in a batch using a transaction.
func (s *SQLite) CreateEvents(ctx context.Context, events []*event.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, e := range events {
		if err := createEvent(ctx, tx, e); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// GetEvent retrieves an event by ID.
func (s *SQLite) GetEvent(ctx context.Context, id int64) (*event.Event, error) {
	query := `
		SELECT id, event_date, title, tags, created_at
		FROM events
		WHERE id = ?
	`

	e, err := scanEvent(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying event: %w", err)
	}
	return e, nil
}

// DeleteEvent removes an event.
func (s *SQLite) DeleteEvent(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("event %d: %w", id, event.ErrEventNotFound)
	}

	return nil
}

// ListEventsByDateRange returns events within the date range (inclusive).
func (s *SQLite) ListEventsByDateRange(ctx context.Context, start, end dateutil.Date) ([]*event.Event, error) {
	query := `
		SELECT id, event_date, title, tags, created_at
		FROM events
		WHERE event_date >= ? AND event_date <= ?
		ORDER BY event_date, id
	`

	rows, err := s.db.QueryContext(ctx, query, start.String(), end.String())
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []*event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*event.Event, error) {
	var (
		e         event.Event
		eventDate string
		tags      string
		createdAt string
	)

	if err := row.Scan(&e.ID, &eventDate, &e.Title, &tags, &createdAt); err != nil {
		return nil, err
	}

	var err error
	e.Date, err = parseDate(eventDate)
	if err != nil {
		return nil, fmt.Errorf("parsing event date: %w", err)
	}

	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	e.Tags, err = decodeTags(tags)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// ListBlocks returns the stored multi-range block starts in saved order.
func (s *SQLite) ListBlocks(ctx context.Context) ([]dateutil.Date, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT start_date FROM blocks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying blocks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var starts []dateutil.Date
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning block: %w", err)
		}
		d, err := parseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing block start: %w", err)
		}
		starts = append(starts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blocks: %w", err)
	}

	return starts, nil
}

// SaveBlocks replaces the stored block starts with starts.
func (s *SQLite) SaveBlocks(ctx context.Context, starts []dateutil.Date) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM blocks`); err != nil {
		return fmt.Errorf("clearing blocks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO blocks (start_date, position) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, d := range starts {
		if _, err := stmt.ExecContext(ctx, d.String(), i); err != nil {
			return fmt.Errorf("inserting block %s: %w", d, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// parseDate parses a date string in the formats SQLite might return for a
// DATE column: plain "2006-01-02" or "2006-01-02T00:00:00Z".
func parseDate(s string) (dateutil.Date, error) {
	if len(s) >= 10 {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return dateutil.FromTime(t), nil
		}
	}
	return dateutil.Date{}, fmt.Errorf("unrecognized date format: %s", s)
}

func encodeTags(tags map[string]string) (string, error) {
	if len(tags) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encoding tags: %w", err)
	}
	return string(data), nil
}

func decodeTags(s string) (map[string]string, error) {
	tags := map[string]string{}
	if s == "" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil, fmt.Errorf("decoding tags: %w", err)
	}
	return tags, nil
}
