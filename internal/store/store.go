// Package store keeps a durable history of exported gain snapshots in
// a local SQLite database.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store records snapshot exports. Uses SQLite with WAL mode so readers
// are not blocked during writes.
type Store struct {
	db *sql.DB
}

// SnapshotRecord is one row of snapshot history.
type SnapshotRecord struct {
	ID        string `json:"id"`
	Profile   string `json:"profile"`
	Path      string `json:"path"`
	Checksum  string `json:"checksum"`
	CreatedAt string `json:"created_at"`
}

// Open creates or opens the history database at the given path.
// Applies required pragmas and the schema automatically; safe to call
// on an existing database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports a single writer; one connection avoids
	// SQLITE_BUSY under concurrent exports.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordSnapshot inserts a snapshot row. Inserts are idempotent on the
// snapshot ID: re-recording the same export is silently ignored.
func (s *Store) RecordSnapshot(ctx context.Context, rec SnapshotRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, profile, path, checksum, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, rec.ID, rec.Profile, rec.Path, rec.Checksum, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("record snapshot: %w", err)
	}
	return nil
}

// ListSnapshots returns up to limit snapshot rows, newest first.
// A non-positive limit returns everything.
func (s *Store) ListSnapshots(ctx context.Context, limit int) ([]SnapshotRecord, error) {
	q := `
		SELECT id, profile, path, checksum, created_at
		FROM snapshots
		ORDER BY created_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var recs []SnapshotRecord
	for rows.Next() {
		var r SnapshotRecord
		if err := rows.Scan(&r.ID, &r.Profile, &r.Path, &r.Checksum, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("list snapshots: %w", err)
		}
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return recs, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}
