// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Income domain errors.
var (
	// ErrIncomeNotFound is returned when an income entry is not found in the ledger.
	ErrIncomeNotFound = errors.New("income entry not found")

	// ErrInvalidIncomeAmount is returned when the income amount is not a positive number.
	ErrInvalidIncomeAmount = errors.New("invalid income amount")

	// ErrEmptyIncomeSource is returned when the income source is empty after trimming.
	ErrEmptyIncomeSource = errors.New("income source cannot be empty")

	// ErrInvalidFrequency is returned when the recurrence frequency is outside the enumerated set.
	ErrInvalidFrequency = errors.New("invalid income frequency")

	// ErrFrequencyMismatch is returned when the recurring flag and frequency disagree.
	ErrFrequencyMismatch = errors.New("frequency does not match recurring flag")
)

// IncomeErrorCode defines error codes for income errors.
// Format: INC-XXYYYY where XX is category and YYYY is specific error.
type IncomeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidIncomeAmount IncomeErrorCode = "INC-010001"
	ErrCodeEmptyIncomeSource   IncomeErrorCode = "INC-010002"
	ErrCodeInvalidFrequency    IncomeErrorCode = "INC-010003"
	ErrCodeFrequencyMismatch   IncomeErrorCode = "INC-010004"
	ErrCodeMissingIncomeFields IncomeErrorCode = "INC-010005"

	// Lookup errors (02XXXX)
	ErrCodeIncomeNotFound IncomeErrorCode = "INC-020001"
)

// IncomeError represents an income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
