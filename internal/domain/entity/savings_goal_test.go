// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestContribute(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		target          int64
		current         int64
		amount          int64
		expectedApplied int64
		expectedCurrent int64
		expectCompleted bool
		expectSignal    bool
	}{
		{
			name:            "partial contribution",
			target:          100,
			current:         0,
			amount:          60,
			expectedApplied: 60,
			expectedCurrent: 60,
			expectCompleted: false,
			expectSignal:    false,
		},
		{
			name:            "clamped at target",
			target:          100,
			current:         60,
			amount:          60,
			expectedApplied: 40,
			expectedCurrent: 100,
			expectCompleted: true,
			expectSignal:    true,
		},
		{
			name:            "exact completion",
			target:          100,
			current:         50,
			amount:          50,
			expectedApplied: 50,
			expectedCurrent: 100,
			expectCompleted: true,
			expectSignal:    true,
		},
		{
			name:            "contribution to completed goal applies nothing",
			target:          100,
			current:         100,
			amount:          25,
			expectedApplied: 0,
			expectedCurrent: 100,
			expectCompleted: true,
			expectSignal:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := NewSavingsGoal("Laptop", decimal.NewFromInt(tt.target), date.AddDate(0, 6, 0), "💻")
			goal.CurrentAmount = decimal.NewFromInt(tt.current)
			goal.Completed = goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount)
			before := len(goal.Contributions)

			applied, completedNow := goal.Contribute(decimal.NewFromInt(tt.amount), date)

			if !applied.Equal(decimal.NewFromInt(tt.expectedApplied)) {
				t.Errorf("applied = %s, want %d", applied, tt.expectedApplied)
			}
			if !goal.CurrentAmount.Equal(decimal.NewFromInt(tt.expectedCurrent)) {
				t.Errorf("current = %s, want %d", goal.CurrentAmount, tt.expectedCurrent)
			}
			if goal.Completed != tt.expectCompleted {
				t.Errorf("completed = %v, want %v", goal.Completed, tt.expectCompleted)
			}
			if completedNow != tt.expectSignal {
				t.Errorf("completedNow = %v, want %v", completedNow, tt.expectSignal)
			}

			if tt.expectedApplied > 0 {
				if len(goal.Contributions) != before+1 {
					t.Fatalf("contributions = %d, want %d", len(goal.Contributions), before+1)
				}
				last := goal.Contributions[len(goal.Contributions)-1]
				if !last.Amount.Equal(applied) {
					t.Errorf("logged contribution = %s, want %s", last.Amount, applied)
				}
			} else if len(goal.Contributions) != before {
				t.Errorf("zero-applied contribution must not be logged")
			}
		})
	}
}

func TestContributeSignalFiresOnce(t *testing.T) {
	goal := NewSavingsGoal("Trip", decimal.NewFromInt(100), time.Now().AddDate(0, 3, 0), "✈️")

	_, first := goal.Contribute(decimal.NewFromInt(100), time.Now())
	if !first {
		t.Fatal("expected completion signal on first crossing")
	}

	_, second := goal.Contribute(decimal.NewFromInt(10), time.Now())
	if second {
		t.Fatal("completion signal must not fire twice")
	}
}

func TestProgress(t *testing.T) {
	goal := NewSavingsGoal("Fund", decimal.NewFromInt(200), time.Now(), "🚨")
	goal.CurrentAmount = decimal.NewFromInt(50)

	if !goal.Progress().Equal(decimal.NewFromFloat(0.25)) {
		t.Errorf("progress = %s, want 0.25", goal.Progress())
	}

	goal.CurrentAmount = decimal.NewFromInt(500)
	if !goal.Progress().Equal(decimal.NewFromInt(1)) {
		t.Errorf("progress must cap at 1, got %s", goal.Progress())
	}

	zero := NewSavingsGoal("Empty", decimal.Zero, time.Now(), "🎯")
	if !zero.Progress().IsZero() {
		t.Errorf("zero target progress = %s, want 0", zero.Progress())
	}
}
