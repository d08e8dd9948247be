// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// ExpenseEntry represents a single expense record in the ledger.
type ExpenseEntry struct {
	ID          int64
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    string
}

// NewExpenseEntry creates a new ExpenseEntry with a fresh identifier.
// A blank description defaults to the category name.
func NewExpenseEntry(description string, amount decimal.Decimal, date time.Time, category string) *ExpenseEntry {
	if description == "" {
		description = category
	}
	return &ExpenseEntry{
		ID:          NewEntryID(),
		Amount:      amount,
		Description: description,
		Date:        date,
		Category:    category,
	}
}

// MonthKey returns the month bucket owning this entry.
func (e *ExpenseEntry) MonthKey() valueobject.MonthKey {
	return valueobject.MonthKeyOf(e.Date)
}
