// Package history reads and rewrites records in an Atuin shell-history database.
package history

import (
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/aidanlsb/shelltools/internal/logger"
	"github.com/aidanlsb/shelltools/internal/paths"
)

// DefaultListLimit is used by List when no positive limit is given.
const DefaultListLimit = 10

var (
	// ErrDatabaseNotFound indicates the history database file does not exist.
	ErrDatabaseNotFound = errors.New("history database not found")
	// ErrNotHistoryDatabase indicates the file has no history table.
	ErrNotHistoryDatabase = errors.New("not an atuin history database")
)

var log *logrus.Entry

func init() {
	log = logger.WithName("history")
}

// Store is the history database handle.
type Store struct {
	db   *sql.DB
	path string

	// NewID generates identifiers for copied records. Defaults to a UUIDv7 in
	// Atuin's 32-character hex form.
	NewID func() string
}

// Open opens an existing history database. It never creates one.
func Open(path string) (*Store, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat database: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotHistoryDatabase, path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps PRAGMAs and statement ordering predictable for a CLI run.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path, NewID: newID}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	var name string
	err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='history'").Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotHistoryDatabase, s.path)
	}
	if err != nil {
		return fmt.Errorf("failed to inspect database: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// liveClause excludes soft-deleted records. Every query goes through matchClause,
// so count, list, move and copy always agree on the match set.
const liveClause = "deleted_at IS NULL"

// matchClause returns the WHERE clause selecting live records for dir.
//
// Nested matching compares a literal prefix with substr/length rather than LIKE,
// so "%" and "_" in directory names are not wildcards.
func matchClause(dir string, recursive bool) (string, []any) {
	if !recursive {
		return liveClause + " AND cwd = ?", []any{dir}
	}
	prefix := paths.DirPrefix(dir)
	return liveClause + " AND (cwd = ? OR substr(cwd, 1, length(?)) = ?)", []any{dir, prefix, prefix}
}

const recordColumns = "id, timestamp, duration, exit, command, cwd, session, hostname, deleted_at"

func scanRecord(rows *sql.Rows) (Record, error) {
	var r Record
	if err := rows.Scan(&r.ID, &r.Timestamp, &r.Duration, &r.Exit, &r.Command, &r.Cwd, &r.Session, &r.Hostname, &r.DeletedAt); err != nil {
		return Record{}, fmt.Errorf("failed to scan history row: %w", err)
	}
	return r, nil
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return hex.EncodeToString(id[:])
}
