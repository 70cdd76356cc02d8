// Package cache persists per-commit scan results in a SQLite database so
// repeated runs over the same history skip already-counted commits.
package cache

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

	"github.com/BarthPaleologue/cloc-graph/internal/cloc"
)

const createTableQuery = `
CREATE TABLE IF NOT EXISTS scan_results (
	scope TEXT NOT NULL,
	hash TEXT NOT NULL,
	payload BLOB NOT NULL,
	created_at INTEGER NOT NULL,
	PRIMARY KEY (scope, hash)
);`

// Store is a SQLite-backed scan result store.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the cache database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory %q: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache at %q: %w", path, err)
	}
	// A single connection avoids "database is locked" errors.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open cache at %q: %w", path, err)
	}
	if _, err := db.Exec(createTableQuery); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the cached result for hash under scope. The boolean is false
// on a cache miss.
func (s *Store) Get(ctx context.Context, scope, hash string) (cloc.Result, bool, error) {
	var payload []byte
	row := s.db.QueryRowContext(ctx, `SELECT payload FROM scan_results WHERE scope = ? AND hash = ?`, scope, hash)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var result cloc.Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry for %s: %w", hash, err)
	}
	if result == nil {
		result = cloc.Result{}
	}
	return result, true, nil
}

// Put stores the result for hash under scope, replacing any earlier entry.
func (s *Store) Put(ctx context.Context, scope, hash string, result cloc.Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO scan_results (scope, hash, payload, created_at) VALUES (?, ?, ?, ?)`,
		scope, hash, payload, time.Now().Unix())
	return err
}

// Len returns the number of cached entries across all scopes.
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scan_results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cache entries: %w", err)
	}
	return n, nil
}

// Clear removes every cached entry.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM scan_results`)
	return err
}

// Close closes the underlying DB connection.
func (s *Store) Close() error {
	return s.db.Close()
}
