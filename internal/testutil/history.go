package testutil

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// atuinSchema mirrors the history table Atuin creates.
const atuinSchema = `
CREATE TABLE IF NOT EXISTS history (
	id TEXT PRIMARY KEY,
	timestamp INTEGER NOT NULL,
	duration INTEGER NOT NULL,
	exit INTEGER NOT NULL,
	command TEXT NOT NULL,
	cwd TEXT NOT NULL,
	session TEXT NOT NULL,
	hostname TEXT NOT NULL,
	deleted_at INTEGER,
	UNIQUE(timestamp, cwd, command)
);
CREATE INDEX IF NOT EXISTS idx_history_timestamp ON history(timestamp);
`

// HistoryRow is a fixture row. Zero ID/Timestamp/Command/Session/Hostname are filled in.
type HistoryRow struct {
	ID        string
	Timestamp int64
	Duration  int64
	Exit      int64
	Command   string
	Cwd       string
	Session   string
	Hostname  string
	DeletedAt *int64
}

// HistoryDB is a temporary Atuin history database.
type HistoryDB struct {
	Path string
	t    *testing.T
	db   *sql.DB
	seq  int
}

// NewHistoryDB creates history.db in a temp dir with the Atuin schema and rows.
// The connection is closed when the test ends.
func NewHistoryDB(t *testing.T, rows ...HistoryRow) *HistoryDB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "history.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open fixture database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(atuinSchema); err != nil {
		t.Fatalf("failed to create history schema: %v", err)
	}

	h := &HistoryDB{Path: path, t: t, db: db}
	h.Insert(rows...)
	return h
}

// Insert adds rows to the fixture database.
func (h *HistoryDB) Insert(rows ...HistoryRow) {
	h.t.Helper()
	for _, r := range rows {
		h.seq++
		if r.ID == "" {
			r.ID = fmt.Sprintf("fixture-%04d", h.seq)
		}
		if r.Timestamp == 0 {
			r.Timestamp = int64(1_700_000_000_000_000_000) + int64(h.seq)*1_000_000_000
		}
		if r.Command == "" {
			r.Command = fmt.Sprintf("echo %d", h.seq)
		}
		if r.Session == "" {
			r.Session = "session-1"
		}
		if r.Hostname == "" {
			r.Hostname = "host:user"
		}

		_, err := h.db.Exec(`INSERT INTO history (id, timestamp, duration, exit, command, cwd, session, hostname, deleted_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Timestamp, r.Duration, r.Exit, r.Command, r.Cwd, r.Session, r.Hostname, r.DeletedAt)
		if err != nil {
			h.t.Fatalf("failed to insert fixture row %s: %v", r.ID, err)
		}
	}
}

// Rows returns n fixture rows recorded at cwd.
func Rows(cwd string, n int) []HistoryRow {
	rows := make([]HistoryRow, n)
	for i := range rows {
		rows[i] = HistoryRow{Cwd: cwd}
	}
	return rows
}

// CountWhere counts rows matching a raw WHERE clause.
func (h *HistoryDB) CountWhere(where string, args ...any) int {
	h.t.Helper()
	var n int
	if err := h.db.QueryRow("SELECT COUNT(*) FROM history WHERE "+where, args...).Scan(&n); err != nil {
		h.t.Fatalf("failed to count rows: %v", err)
	}
	return n
}

// CwdOf returns the cwd of the row with the given id.
func (h *HistoryDB) CwdOf(id string) string {
	h.t.Helper()
	var cwd string
	if err := h.db.QueryRow("SELECT cwd FROM history WHERE id = ?", id).Scan(&cwd); err != nil {
		h.t.Fatalf("failed to read cwd of %s: %v", id, err)
	}
	return cwd
}

// Snapshot returns every row as a formatted string, ordered by id, for
// before/after comparisons.
func (h *HistoryDB) Snapshot() []string {
	h.t.Helper()
	rows, err := h.db.Query(`SELECT id, timestamp, duration, exit, command, cwd, session, hostname, COALESCE(deleted_at, -1)
		FROM history ORDER BY id`)
	if err != nil {
		h.t.Fatalf("failed to snapshot: %v", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var r HistoryRow
		var deleted int64
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.Duration, &r.Exit, &r.Command, &r.Cwd, &r.Session, &r.Hostname, &deleted); err != nil {
			h.t.Fatalf("failed to scan snapshot row: %v", err)
		}
		out = append(out, fmt.Sprintf("%s|%d|%d|%d|%s|%s|%s|%s|%d",
			r.ID, r.Timestamp, r.Duration, r.Exit, r.Command, r.Cwd, r.Session, r.Hostname, deleted))
	}
	if err := rows.Err(); err != nil {
		h.t.Fatalf("snapshot rows: %v", err)
	}
	return out
}
