package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			event_date  DATE NOT NULL,
			title       TEXT NOT NULL,
			tags        TEXT NOT NULL DEFAULT '{}',
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_events_date ON events(event_date);

		CREATE TABLE IF NOT EXISTS blocks (
			start_date  DATE PRIMARY KEY,
			position    INTEGER NOT NULL
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating events tables: %w", err)
	}

	return nil
}
