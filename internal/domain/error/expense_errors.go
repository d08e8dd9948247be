// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense entry is not found in the ledger.
	ErrExpenseNotFound = errors.New("expense entry not found")

	// ErrInvalidExpenseAmount is returned when the expense amount is not a positive number.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrUnknownExpenseCategory is returned when the category is outside the fixed category set.
	ErrUnknownExpenseCategory = errors.New("unknown expense category")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount   ExpenseErrorCode = "EXP-010001"
	ErrCodeUnknownExpenseCategory ExpenseErrorCode = "EXP-010002"
	ErrCodeMissingExpenseFields   ExpenseErrorCode = "EXP-010003"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
