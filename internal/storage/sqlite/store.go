package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store is the SQLite-backed storage provider. Schema is created on open; a
// missing database file is equivalent to empty collections.
type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS todos (
	id         TEXT PRIMARY KEY,
	text       TEXT NOT NULL,
	completed  INTEGER NOT NULL DEFAULT 0,
	timestamp  TEXT NOT NULL,
	project_id TEXT NOT NULL DEFAULT '',
	notes      TEXT NOT NULL DEFAULT '',
	active     INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS projects (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	active      INTEGER NOT NULL DEFAULT 1,
	timestamp   TEXT NOT NULL,
	ordered     INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS habits (
	id        TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	streak    INTEGER NOT NULL DEFAULT 0,
	timestamp TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS food_entries (
	id        TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	calories  REAL NOT NULL,
	protein   REAL NOT NULL DEFAULT 0,
	time      TEXT NOT NULL,
	timestamp TEXT NOT NULL
);
`

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *Store) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}
	return s.open()
}

func (s *Store) Load() error {
	return s.open()
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) GetCurrentDate() (string, error) {
	var date string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'current_date'`).Scan(&date)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read current date: %w", err)
	}
	return date, nil
}

func (s *Store) SetCurrentDate(date string) error {
	_, err := s.db.Exec(`
		INSERT INTO meta (key, value) VALUES ('current_date', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, date)
	if err != nil {
		return fmt.Errorf("failed to set current date: %w", err)
	}
	return nil
}

func (s *Store) GetDataPath() string {
	return s.path
}

// DB exposes the underlying handle for diagnostics.
func (s *Store) DB() *sql.DB {
	return s.db
}
