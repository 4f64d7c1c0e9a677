package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on every open. IF NOT EXISTS makes it
// safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS meta (
    k TEXT PRIMARY KEY,
    v TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS issues (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    kind       TEXT NOT NULL,
    summary    TEXT NOT NULL,
    key        TEXT NOT NULL,
    parent     TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const (
	kindEpic    = "epic"
	kindStory   = "story"
	kindSubtask = "subtask"
)

// SQLiteStore persists the history in a local SQLite database in WAL mode.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at dbPath, enables WAL mode
// and a busy timeout, and creates the schema if needed.
func NewSQLiteStore(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	// SQLite supports a single writer; one connection avoids SQLITE_BUSY
	// contention between pooled connections that each need their own PRAGMA
	// setup.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("history: %s: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the full history in insertion order.
func (s *SQLiteStore) Load(ctx context.Context) (*History, error) {
	h := &History{}

	err := s.db.QueryRowContext(ctx, "SELECT v FROM meta WHERE k = 'id'").Scan(&h.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("history: load id: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT kind, summary, key, parent FROM issues ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("history: load entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var e Entry
		if err := rows.Scan(&kind, &e.Summary, &e.Key, &e.Parent); err != nil {
			return nil, fmt.Errorf("history: scan entry: %w", err)
		}
		switch kind {
		case kindEpic:
			h.Epics = append(h.Epics, e)
		case kindStory:
			h.Stories = append(h.Stories, e)
		case kindSubtask:
			h.Subtasks = append(h.Subtasks, e)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate entries: %w", err)
	}
	return h, nil
}

// Save replaces the stored history wholesale in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, h *History) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("history: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM issues"); err != nil {
		return fmt.Errorf("history: clear entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO meta (k, v) VALUES ('id', ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v", h.ID); err != nil {
		return fmt.Errorf("history: save id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO issues (kind, summary, key, parent) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("history: prepare insert: %w", err)
	}
	defer stmt.Close()

	insert := func(kind string, entries []Entry) error {
		for _, e := range entries {
			if _, err := stmt.ExecContext(ctx, kind, e.Summary, e.Key, e.Parent); err != nil {
				return fmt.Errorf("history: insert %s %q: %w", kind, e.Summary, err)
			}
		}
		return nil
	}
	if err := insert(kindEpic, h.Epics); err != nil {
		return err
	}
	if err := insert(kindStory, h.Stories); err != nil {
		return err
	}
	if err := insert(kindSubtask, h.Subtasks); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("history: commit: %w", err)
	}
	return nil
}

// Reset clears all entries and stamps a fresh identifier.
func (s *SQLiteStore) Reset(ctx context.Context) error {
	return s.Save(ctx, &History{ID: uuid.NewString()})
}
