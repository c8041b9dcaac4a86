// Package storage keeps pinned turns in SQLite.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// timeLayout sorts lexically, which the queries rely on.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Session summarises the pins stored for one conversation.
type Session struct {
	ID         string
	Location   string
	Pins       int
	LastPinned time.Time
}

type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS pins (
  session_id TEXT NOT NULL,
  item_key TEXT NOT NULL,
  pinned_at TEXT NOT NULL,
  PRIMARY KEY (session_id, item_key)
);
CREATE TABLE IF NOT EXISTS conversations (
  session_id TEXT PRIMARY KEY,
  location TEXT NOT NULL,
  seen_at TEXT NOT NULL
);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// CheckWritable fails when the database cannot take writes.
func (r *Repository) CheckWritable(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT INTO conversations (session_id, location, seen_at) VALUES ('', '', '')
ON CONFLICT(session_id) DO UPDATE SET seen_at=excluded.seen_at`); err != nil {
		return fmt.Errorf("database is not writable: %w", err)
	}
	return nil
}

// RememberSession records where a conversation was last opened from.
func (r *Repository) RememberSession(ctx context.Context, sessionID, location string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO conversations (session_id, location, seen_at)
VALUES (?, ?, ?)
ON CONFLICT(session_id) DO UPDATE SET
  location=excluded.location,
  seen_at=excluded.seen_at
`, sessionID, location, time.Now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("remember session %q: %w", sessionID, err)
	}
	return nil
}

func (r *Repository) LoadMarked(ctx context.Context, sessionID string) (map[string]struct{}, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT item_key FROM pins WHERE session_id = ?`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query pins: %w", err)
	}
	defer rows.Close()

	marked := make(map[string]struct{})
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan pin: %w", err)
		}
		marked[key] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pins: %w", err)
	}
	return marked, nil
}

// ToggleMarked flips the pin on itemKey and returns the new state.
func (r *Repository) ToggleMarked(ctx context.Context, sessionID, itemKey string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM pins WHERE session_id = ? AND item_key = ?`, sessionID, itemKey)
	if err != nil {
		return false, fmt.Errorf("unpin %q: %w", itemKey, err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("unpin %q: %w", itemKey, err)
	}

	pinned := removed == 0
	if pinned {
		_, err := tx.ExecContext(ctx, `INSERT INTO pins (session_id, item_key, pinned_at) VALUES (?, ?, ?)`,
			sessionID, itemKey, time.Now().UTC().Format(timeLayout))
		if err != nil {
			return false, fmt.Errorf("pin %q: %w", itemKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit tx: %w", err)
	}
	return pinned, nil
}

// ListSessions returns every conversation with at least one pin, most
// recently pinned first.
func (r *Repository) ListSessions(ctx context.Context) ([]Session, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT p.session_id, COALESCE(c.location, ''), COUNT(*), MAX(p.pinned_at)
FROM pins p
LEFT JOIN conversations c ON c.session_id = p.session_id
GROUP BY p.session_id
ORDER BY MAX(p.pinned_at) DESC
`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var lastPinned string
		if err := rows.Scan(&s.ID, &s.Location, &s.Pins, &lastPinned); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.LastPinned, err = time.Parse(timeLayout, lastPinned)
		if err != nil {
			return nil, fmt.Errorf("parse pinned_at %q: %w", lastPinned, err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}
