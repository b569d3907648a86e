// Package state provides a persistent journal of bootstrap runs with
// database management. Journal failures are reported as warnings by callers
// and never fail the bootstrap itself.
package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/mitchellh/go-homedir"
)

// Entry is a single recorded bootstrap run
type Entry struct {
	Timestamp time.Time
	DistroID  string
	Strategy  string
	Outcome   string
	Version   string
}

// Journal records bootstrap runs in a SQLite database
type Journal struct {
	db     *sql.DB
	dbPath string
}

// DefaultDir returns the default journal directory
func DefaultDir() string {
	home, err := homedir.Dir()
	if err != nil {
		home = "/tmp"
	}
	return filepath.Join(home, ".cache", "nodeup")
}

// NewJournal opens (creating if necessary) the journal database in dir
func NewJournal(dir string) (*Journal, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	dbPath := filepath.Join(dir, "db.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	if err := initDatabase(db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			fmt.Printf("⚠️  Warning: failed to close database: %v\n", closeErr)
		}
		return nil, fmt.Errorf("failed to initialize journal database: %w", err)
	}

	return &Journal{db: db, dbPath: dbPath}, nil
}

// initDatabase creates the journal schema if it does not exist
func initDatabase(db *sql.DB) error {
	_, err := db.ExecContext(context.Background(), `
		CREATE TABLE IF NOT EXISTS runs (
			ts        INTEGER NOT NULL,
			distro_id TEXT NOT NULL,
			strategy  TEXT NOT NULL,
			outcome   TEXT NOT NULL,
			version   TEXT NOT NULL
		)`)
	return err
}

// Record appends a run entry to the journal
func (j *Journal) Record(entry Entry) error {
	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := j.db.ExecContext(context.Background(),
		"INSERT INTO runs (ts, distro_id, strategy, outcome, version) VALUES (?, ?, ?, ?, ?)",
		ts.Unix(), entry.DistroID, entry.Strategy, entry.Outcome, entry.Version)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first
func (j *Journal) Recent(limit int) ([]Entry, error) {
	rows, err := j.db.QueryContext(context.Background(),
		"SELECT ts, distro_id, strategy, outcome, version FROM runs ORDER BY ts DESC, rowid DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			fmt.Printf("⚠️  Warning: failed to close rows: %v\n", closeErr)
		}
	}()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&ts, &e.DistroID, &e.Strategy, &e.Outcome, &e.Version); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		e.Timestamp = time.Unix(ts, 0)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return entries, nil
}

// Close closes the journal database
func (j *Journal) Close() error {
	return j.db.Close()
}
