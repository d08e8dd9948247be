// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Savings domain errors.
var (
	// ErrGoalNotFound is returned when a savings goal is not found in the ledger.
	ErrGoalNotFound = errors.New("savings goal not found")

	// ErrEmptyGoalName is returned when the goal name is empty after trimming.
	ErrEmptyGoalName = errors.New("goal name cannot be empty")

	// ErrInvalidTargetAmount is returned when the target amount is not a positive number.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidContributionAmount is returned when the contribution amount is not a positive number.
	ErrInvalidContributionAmount = errors.New("invalid contribution amount")

	// ErrUnknownSavingsCategory is returned when the category icon is outside the fixed set.
	ErrUnknownSavingsCategory = errors.New("unknown savings category")
)

// SavingsErrorCode defines error codes for savings errors.
// Format: SAV-XXYYYY where XX is category and YYYY is specific error.
type SavingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyGoalName             SavingsErrorCode = "SAV-010001"
	ErrCodeInvalidTargetAmount       SavingsErrorCode = "SAV-010002"
	ErrCodeInvalidContributionAmount SavingsErrorCode = "SAV-010003"
	ErrCodeUnknownSavingsCategory    SavingsErrorCode = "SAV-010004"
	ErrCodeMissingGoalFields         SavingsErrorCode = "SAV-010005"

	// Lookup errors (02XXXX)
	ErrCodeGoalNotFound SavingsErrorCode = "SAV-020001"
)

// SavingsError represents a savings error with code and message.
type SavingsError struct {
	Code    SavingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SavingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SavingsError) Unwrap() error {
	return e.Err
}

// NewSavingsError creates a new SavingsError with the given code and message.
func NewSavingsError(code SavingsErrorCode, message string, err error) *SavingsError {
	return &SavingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
