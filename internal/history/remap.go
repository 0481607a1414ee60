package history

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/aidanlsb/shelltools/internal/paths"
	"github.com/aidanlsb/shelltools/internal/sqlutil"
)

// Count returns the number of live records recorded in dir (or under it when recursive).
func (s *Store) Count(ctx context.Context, dir string, recursive bool) (int, error) {
	where, args := matchClause(dir, recursive)

	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM history WHERE "+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return n, nil
}

// List returns matching records, newest first, at most limit of them.
func (s *Store) List(ctx context.Context, dir string, limit int, recursive bool) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	where, args := matchClause(dir, recursive)
	query := "SELECT " + recordColumns + " FROM history WHERE " + where + " ORDER BY timestamp DESC LIMIT ?"

	rows, err := s.db.QueryContext(ctx, query, append(args, limit)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	return sqlutil.ScanRows(rows, scanRecord)
}

// matches returns every matching record in timestamp order.
func (s *Store) matches(ctx context.Context, dir string, recursive bool) ([]Record, error) {
	where, args := matchClause(dir, recursive)
	query := "SELECT " + recordColumns + " FROM history WHERE " + where + " ORDER BY timestamp ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	return sqlutil.ScanRows(rows, scanRecord)
}

// Move rewrites the cwd of every matching record from `from` to `to`.
//
// Exact matches become `to`; nested matches keep their suffix below `from`.
// Both cases run as one UPDATE, so SQLite applies the whole batch or none of it
// (for example when a rewritten row collides with the unique
// (timestamp, cwd, command) index). Returns the number of records changed, or
// the number that would change when opts.DryRun is set.
func (s *Store) Move(ctx context.Context, from, to string, opts MoveOptions) (int, error) {
	n, err := s.Count(ctx, from, opts.Recursive)
	if err != nil {
		return 0, err
	}
	if n == 0 || opts.DryRun {
		return n, nil
	}

	where, whereArgs := matchClause(from, opts.Recursive)
	query := `UPDATE history
		SET cwd = CASE WHEN cwd = ? THEN ? ELSE ? || substr(cwd, length(?) + 1) END
		WHERE ` + where
	args := append([]any{from, to, paths.DirPrefix(to), paths.DirPrefix(from)}, whereArgs...)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to move history: %w", err)
	}
	moved, err := sqlutil.RowsAffected(res)
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	log.WithFields(logrus.Fields{"from": from, "to": to, "moved": moved}).Debug("moved history")
	return moved, nil
}

// Copy inserts a duplicate of every matching record with a new ID and a cwd
// remapped from `from` to `to`. All other fields are copied verbatim.
//
// Inserts run one at a time without a surrounding transaction. A failed insert
// is logged and recorded in CopyResult.Failures, and the batch continues.
// A failure to select the source records is returned as an error.
func (s *Store) Copy(ctx context.Context, from, to string, opts CopyOptions) (*CopyResult, error) {
	n, err := s.Count(ctx, from, opts.Recursive)
	if err != nil {
		return nil, err
	}
	result := &CopyResult{Matched: n, DryRun: opts.DryRun}
	if n == 0 || opts.DryRun {
		return result, nil
	}

	records, err := s.matches(ctx, from, opts.Recursive)
	if err != nil {
		return nil, err
	}
	result.Matched = len(records)

	for _, rec := range records {
		dup := rec
		dup.ID = s.NewID()
		dup.Cwd = paths.Remap(rec.Cwd, from, to)

		if err := s.insert(ctx, dup); err != nil {
			log.WithFields(logrus.Fields{"id": rec.ID, "cwd": rec.Cwd}).WithError(err).Warn("failed to copy history record")
			result.Failures = append(result.Failures, CopyFailure{Record: rec, Err: err})
			continue
		}
		result.Copied++
	}

	return result, nil
}

func (s *Store) insert(ctx context.Context, r Record) error {
	query := "INSERT INTO history (" + recordColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := s.db.ExecContext(ctx, query,
		r.ID, r.Timestamp, r.Duration, r.Exit, r.Command, r.Cwd, r.Session, r.Hostname, r.DeletedAt)
	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}
	return nil
}
