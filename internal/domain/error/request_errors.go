// Package error defines domain-specific errors for the application.
package error

// RequestErrorCode represents a transport-level error code.
type RequestErrorCode string

const (
	// ErrCodeRateLimited indicates too many requests from one client.
	ErrCodeRateLimited RequestErrorCode = "REQ-010001"
)
