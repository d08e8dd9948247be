// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMonthlyRecordSubFloorsAtZero(t *testing.T) {
	record := NewMonthlyRecord()
	record.AddIncome(decimal.NewFromInt(100))
	record.AddExpenses(decimal.NewFromInt(45))

	record.SubIncome(decimal.NewFromInt(250))
	if !record.Income.IsZero() {
		t.Errorf("income = %s, want 0", record.Income)
	}

	record.SubExpenses(decimal.NewFromInt(45))
	if !record.Expenses.IsZero() {
		t.Errorf("expenses = %s, want 0", record.Expenses)
	}
}

func TestMonthlyRecordAdjustExpenses(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		oldAmount int64
		newAmount int64
		expected  int64
	}{
		{name: "increase", total: 45, oldAmount: 45, newAmount: 60, expected: 60},
		{name: "decrease", total: 100, oldAmount: 45, newAmount: 20, expected: 75},
		{name: "floors at zero on drifted total", total: 10, oldAmount: 45, newAmount: 5, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := NewMonthlyRecord()
			record.AddExpenses(decimal.NewFromInt(tt.total))

			record.AdjustExpenses(decimal.NewFromInt(tt.oldAmount), decimal.NewFromInt(tt.newAmount))

			if !record.Expenses.Equal(decimal.NewFromInt(tt.expected)) {
				t.Errorf("expenses = %s, want %d", record.Expenses, tt.expected)
			}
		})
	}
}
