// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Snapshot persistence errors.
var (
	// ErrNoSnapshot is returned by a snapshot store when no stored document
	// exists. The ledger repository self-heals on it; it never reaches callers.
	ErrNoSnapshot = errors.New("no snapshot stored")
)

// SnapshotErrorCode defines error codes for snapshot persistence errors.
// Format: SNP-XXYYYY where XX is category and YYYY is specific error.
type SnapshotErrorCode string

const (
	// Persistence errors (03XXXX)
	ErrCodeSnapshotWriteFailed SnapshotErrorCode = "SNP-030001"
)

// SnapshotError represents a snapshot persistence error with code and message.
type SnapshotError struct {
	Code    SnapshotErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SnapshotError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// NewSnapshotError creates a new SnapshotError with the given code and message.
func NewSnapshotError(code SnapshotErrorCode, message string, err error) *SnapshotError {
	return &SnapshotError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
