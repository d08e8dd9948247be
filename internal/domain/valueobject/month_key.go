// Package valueobject defines immutable value types shared across the domain layer.
package valueobject

import (
	"sort"
	"time"
)

// monthKeyLayout is the canonical "YYYY-MM" layout used to bucket entries and totals.
const monthKeyLayout = "2006-01"

// MonthKey identifies a calendar month in "YYYY-MM" form.
type MonthKey string

// MonthKeyOf derives the month key owning the given date.
func MonthKeyOf(date time.Time) MonthKey {
	return MonthKey(date.Format(monthKeyLayout))
}

// ParseMonthKey validates a raw month key string.
func ParseMonthKey(raw string) (MonthKey, error) {
	if _, err := time.Parse(monthKeyLayout, raw); err != nil {
		return "", err
	}
	return MonthKey(raw), nil
}

// String returns the "YYYY-MM" representation.
func (k MonthKey) String() string {
	return string(k)
}

// Contains reports whether the given date falls inside this month.
func (k MonthKey) Contains(date time.Time) bool {
	return MonthKeyOf(date) == k
}

// Time returns midnight UTC on the first day of the month.
func (k MonthKey) Time() time.Time {
	t, err := time.Parse(monthKeyLayout, string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

// SortMonthKeysDesc sorts month keys most recent first. The "YYYY-MM" layout
// sorts lexicographically, so plain string comparison is enough.
func SortMonthKeysDesc(keys []MonthKey) {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] > keys[j]
	})
}
