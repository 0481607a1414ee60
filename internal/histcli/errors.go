package histcli

import "errors"

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	ErrConfigInvalid      = "CONFIG_INVALID"
	ErrHomeNotFound       = "HOME_NOT_FOUND"
	ErrInvalidPath        = "INVALID_PATH"
	ErrDatabaseNotFound   = "DATABASE_NOT_FOUND"
	ErrNotHistoryDatabase = "NOT_HISTORY_DATABASE"
	ErrDatabaseError      = "DATABASE_ERROR"
	ErrCopyFailed         = "COPY_FAILED"
)

// reportedError wraps an error that was already written as a JSON envelope,
// so Execute does not print it a second time.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func isReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
