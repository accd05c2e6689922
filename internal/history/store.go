// Package history persists scored runs in a local sqlite database so past
// results can be compared across iterations of a QR design.
package history

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scores (
	id         TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	source     TEXT NOT NULL,
	score      INTEGER NOT NULL,
	grade      TEXT NOT NULL,
	decodable  INTEGER NOT NULL,
	content    TEXT
);
CREATE INDEX IF NOT EXISTS idx_scores_created_at ON scores (created_at DESC);
`

// Entry is one recorded scoring run.
type Entry struct {
	ID        string
	CreatedAt time.Time
	Source    string
	Score     int
	Grade     string
	Decodable bool
	Content   string
}

// Store is a sqlite-backed score history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// single connection avoids sqlite "database is locked" errors
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Record persists one entry, assigning an ID and timestamp when absent.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (id, created_at, source, score, grade, decodable, content)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CreatedAt, e.Source, e.Score, e.Grade, e.Decodable, e.Content,
	)
	return e, err
}

// Recent returns the most recent entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, source, score, grade, decodable, content
		 FROM scores ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Source, &e.Score, &e.Grade, &e.Decodable, &e.Content); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
