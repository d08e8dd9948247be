// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// Frequency represents the recurrence frequency of an income entry.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyNone    Frequency = "none"
)

// ParseFrequency normalizes a raw frequency string from user input or a
// stored document. Matching is case-insensitive: historical documents carry
// the capitalized "Daily" value. Empty and unknown values map to
// FrequencyNone so the enum invariant holds regardless of what historical
// documents contain.
func ParseFrequency(raw string) Frequency {
	switch folded := Frequency(strings.ToLower(raw)); folded {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return folded
	default:
		return FrequencyNone
	}
}

// IsRecurring reports whether the frequency denotes a recurring schedule.
func (f Frequency) IsRecurring() bool {
	return f == FrequencyDaily || f == FrequencyWeekly || f == FrequencyMonthly
}

// IncomeEntry represents a single income record in the ledger.
type IncomeEntry struct {
	ID        int64
	Amount    decimal.Decimal
	Source    string
	StartDate time.Time
	Recurring bool
	Frequency Frequency
}

// NewIncomeEntry creates a new IncomeEntry with a fresh identifier.
// The recurring flag and frequency are kept consistent: a non-recurring
// entry always carries FrequencyNone.
func NewIncomeEntry(source string, amount decimal.Decimal, startDate time.Time, recurring bool, frequency Frequency) *IncomeEntry {
	if !recurring {
		frequency = FrequencyNone
	}
	return &IncomeEntry{
		ID:        NewEntryID(),
		Amount:    amount,
		Source:    source,
		StartDate: startDate,
		Recurring: recurring,
		Frequency: frequency,
	}
}

// MonthKey returns the month bucket owning this entry.
func (e *IncomeEntry) MonthKey() valueobject.MonthKey {
	return valueobject.MonthKeyOf(e.StartDate)
}
