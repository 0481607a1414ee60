package history

import (
	"time"
)

// Record is one row of the Atuin history table.
type Record struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"` // nanoseconds since epoch
	Duration  int64  `json:"duration"`  // nanoseconds
	Exit      int64  `json:"exit"`
	Command   string `json:"command"`
	Cwd       string `json:"cwd"`
	Session   string `json:"session"`
	Hostname  string `json:"hostname"`
	DeletedAt *int64 `json:"deleted_at,omitempty"`
}

// Time returns the record timestamp as a time.Time.
func (r Record) Time() time.Time {
	return time.Unix(0, r.Timestamp)
}

// Elapsed returns the recorded command duration.
func (r Record) Elapsed() time.Duration {
	return time.Duration(r.Duration)
}

// MoveOptions controls Move.
type MoveOptions struct {
	// DryRun reports the match count without writing.
	DryRun bool
	// Recursive also matches records nested under the source directory.
	Recursive bool
}

// CopyOptions controls Copy.
type CopyOptions struct {
	DryRun    bool
	Recursive bool
}

// CopyFailure is a record that could not be copied, with the insert error.
type CopyFailure struct {
	Record Record
	Err    error
}

// CopyResult reports the outcome of a Copy.
type CopyResult struct {
	// Matched is the number of source records selected.
	Matched int
	// Copied is the number of new records actually inserted.
	Copied int
	// Failures lists records whose insert failed; the batch continued past them.
	Failures []CopyFailure
	// DryRun is set when nothing was written.
	DryRun bool
}
