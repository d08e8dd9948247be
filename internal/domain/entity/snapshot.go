// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// Snapshot is the root aggregate holding all ledger state. It owns every
// entry; cross-references between entries and months are by derived month
// key, never by pointer.
type Snapshot struct {
	Income         []*IncomeEntry
	Expenses       []*ExpenseEntry
	Savings        []*SavingsGoal
	MonthlyRecords map[valueobject.MonthKey]*MonthlyRecord
}

// NewSnapshot returns an empty snapshot with all collections initialized.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Income:         []*IncomeEntry{},
		Expenses:       []*ExpenseEntry{},
		Savings:        []*SavingsGoal{},
		MonthlyRecords: map[valueobject.MonthKey]*MonthlyRecord{},
	}
}

// Record returns the monthly record for the given key, creating a zeroed one
// if the month has not been seen before.
func (s *Snapshot) Record(key valueobject.MonthKey) *MonthlyRecord {
	if s.MonthlyRecords == nil {
		s.MonthlyRecords = map[valueobject.MonthKey]*MonthlyRecord{}
	}
	rec, ok := s.MonthlyRecords[key]
	if !ok {
		rec = NewMonthlyRecord()
		s.MonthlyRecords[key] = rec
	}
	return rec
}

// FindIncome returns the income entry with the given id, or nil.
func (s *Snapshot) FindIncome(id int64) *IncomeEntry {
	for _, e := range s.Income {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// FindExpense returns the expense entry with the given id, or nil.
func (s *Snapshot) FindExpense(id int64) *ExpenseEntry {
	for _, e := range s.Expenses {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// FindGoal returns the savings goal with the given id, or nil.
func (s *Snapshot) FindGoal(id int64) *SavingsGoal {
	for _, g := range s.Savings {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// RemoveIncome removes the income entry with the given id from the flat list.
// It reports whether an entry was removed.
func (s *Snapshot) RemoveIncome(id int64) bool {
	for i, e := range s.Income {
		if e.ID == id {
			s.Income = append(s.Income[:i], s.Income[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveExpense removes the expense entry with the given id from the flat list.
func (s *Snapshot) RemoveExpense(id int64) bool {
	for i, e := range s.Expenses {
		if e.ID == id {
			s.Expenses = append(s.Expenses[:i], s.Expenses[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveGoal removes the savings goal with the given id.
func (s *Snapshot) RemoveGoal(id int64) bool {
	for i, g := range s.Savings {
		if g.ID == id {
			s.Savings = append(s.Savings[:i], s.Savings[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceExpense swaps the expense entry with the same id for the given one,
// keeping list order. The replace is by value, not in-place mutation, so the
// previous entry stays untouched for callers holding it.
func (s *Snapshot) ReplaceExpense(updated *ExpenseEntry) bool {
	for i, e := range s.Expenses {
		if e.ID == updated.ID {
			s.Expenses[i] = updated
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the snapshot. Mutations run against a clone so
// a failed persist leaves the loaded snapshot untouched.
func (s *Snapshot) Clone() *Snapshot {
	c := NewSnapshot()

	c.Income = make([]*IncomeEntry, len(s.Income))
	for i, e := range s.Income {
		entry := *e
		c.Income[i] = &entry
	}

	c.Expenses = make([]*ExpenseEntry, len(s.Expenses))
	for i, e := range s.Expenses {
		entry := *e
		c.Expenses[i] = &entry
	}

	c.Savings = make([]*SavingsGoal, len(s.Savings))
	for i, g := range s.Savings {
		goal := *g
		goal.Contributions = make([]Contribution, len(g.Contributions))
		copy(goal.Contributions, g.Contributions)
		c.Savings[i] = &goal
	}

	for key, rec := range s.MonthlyRecords {
		c.MonthlyRecords[key] = rec.Clone()
	}

	return c
}
