// Package store persists LLM call telemetry to a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database handle.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// modernc.org/sqlite is not safe for concurrent writes on one connection
	// pool without WAL, and the TUI logs events from multiple goroutines.
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying pragma: %w", err)
		}
	}

	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenInMemory opens an ephemeral in-memory database. Used in tests.
func OpenInMemory(ctx context.Context) (*Store, error) {
	return Open(ctx, ":memory:")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Events returns the repository for LLM call events.
func (s *Store) Events() EventRepo {
	return &eventRepo{db: s.db}
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS llm_events (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp      INTEGER NOT NULL,
	provider       TEXT NOT NULL,
	model          TEXT NOT NULL,
	purpose        TEXT NOT NULL,
	latency_ms     INTEGER NOT NULL,
	success        INTEGER NOT NULL,
	error_message  TEXT NOT NULL DEFAULT '',
	request_body   TEXT NOT NULL DEFAULT '',
	response_body  TEXT NOT NULL DEFAULT '',
	input_tokens   INTEGER NOT NULL DEFAULT 0,
	output_tokens  INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_llm_events_purpose ON llm_events (purpose);
`

// DefaultDBPath returns the standard location of the database,
// ~/.edugen/edugen.db, creating the directory if needed.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	dir := filepath.Join(home, ".edugen")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}
	return filepath.Join(dir, "edugen.db"), nil
}
