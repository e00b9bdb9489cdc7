// Package jobdb provides the SQLite-backed job repository.
package jobdb

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // registers the pure-Go sqlite driver
)

// DB wraps the single SQLite handle shared by a session. Open it once at
// session start and close it on every exit path; the store assumes one
// process at a time.
type DB struct {
	conn *sql.DB
}

// Open opens (creating if needed) the job database at path and ensures the
// jobs table exists.
func Open(ctx context.Context, path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open job database %s: %w", path, err)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping job database %s: %w", path, err)
	}

	db := &DB{conn: conn}
	if err := db.createTable(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

// Close releases the database handle.
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

func (db *DB) createTable(ctx context.Context) error {
	_, err := db.conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			company TEXT NOT NULL,
			role TEXT NOT NULL,
			location TEXT,
			link TEXT,
			date_posted TEXT,
			original_category TEXT,
			fit_score REAL,
			fit_category TEXT,
			status TEXT DEFAULT 'new',
			raw_data TEXT
		)`)
	if err != nil {
		return fmt.Errorf("failed to create jobs table: %w", err)
	}
	return nil
}
