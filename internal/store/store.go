// Package store persists readings in a file-backed sqlite database.
// The table is append-only; rows are never updated or deleted.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/luki/roomsense/internal/sensor"
)

const schema = `
CREATE TABLE IF NOT EXISTS readings (
  ts          REAL NOT NULL,
  humidity    REAL NOT NULL,
  temperature REAL NOT NULL
);
`

// Store wraps the sqlite connection holding the readings table.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at path and
// ensures the readings table exists. Any failure here is fatal to the
// caller; there is no retry path.
func Open(path string) (*Store, error) {
	dsn, err := buildDSN(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	// One writer, one event loop. Keep the pool at a single connection
	// so sqlite never sees concurrent writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

func buildDSN(path string) (string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	// busy_timeout guards against transient "database is locked" when an
	// external tool has the file open.
	params := []string{
		"_busy_timeout=5000",
		"_journal_mode=WAL",
	}

	if strings.HasPrefix(path, "file:") {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + strings.Join(params, "&"), nil
	}
	return fmt.Sprintf("file:%s?%s", path, strings.Join(params, "&")), nil
}

// Insert appends a reading stamped with the current time and returns
// the timestamp actually recorded, so the display always shows exactly
// what was persisted.
func (s *Store) Insert(humidity, temperature float64) (float64, error) {
	ts := epochSeconds(time.Now())
	return ts, s.InsertAt(humidity, temperature, ts)
}

// InsertAt appends a reading with a caller-supplied timestamp. The
// commit is synchronous; once InsertAt returns nil the row is durable.
func (s *Store) InsertAt(humidity, temperature, ts float64) error {
	_, err := s.db.Exec(
		`INSERT INTO readings (ts, humidity, temperature) VALUES (?, ?, ?)`,
		ts, humidity, temperature,
	)
	if err != nil {
		return fmt.Errorf("insert reading: %w", err)
	}
	return nil
}

// FetchLast returns at most n readings, newest first. An empty store
// yields an empty slice, not an error.
func (s *Store) FetchLast(n int) ([]sensor.Reading, error) {
	rows, err := s.db.Query(
		`SELECT ts, humidity, temperature FROM readings ORDER BY ts DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("fetch readings: %w", err)
	}
	defer rows.Close()

	var out []sensor.Reading
	for rows.Next() {
		var r sensor.Reading
		if err := rows.Scan(&r.TS, &r.Humidity, &r.Temperature); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
