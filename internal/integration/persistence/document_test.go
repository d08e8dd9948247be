// Package persistence implements snapshot stores and the ledger repository.
package persistence

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

func TestDecodeDocumentMissingCollections(t *testing.T) {
	snapshot, err := decodeDocument([]byte(`{"income":[],"expenses":[]}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if snapshot.Savings == nil || len(snapshot.Savings) != 0 {
		t.Errorf("missing savings must decode to an empty list")
	}
	if snapshot.MonthlyRecords == nil || len(snapshot.MonthlyRecords) != 0 {
		t.Errorf("missing monthlyRecords must decode to an empty map")
	}
}

func TestDecodeDocumentLegacyArrayMonthlyRecords(t *testing.T) {
	doc := `{
		"income": [],
		"expenses": [],
		"savings": [],
		"monthlyRecords": {
			"2024-12": {
				"income": [{"amount": 100}, {"amount": 150}],
				"expenses": [{"amount": 40}],
				"savings": 25
			}
		}
	}`

	snapshot, err := decodeDocument([]byte(doc))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	rec := snapshot.MonthlyRecords["2024-12"]
	if rec == nil {
		t.Fatal("record missing")
	}
	if !rec.Income.Equal(decimal.NewFromInt(250)) {
		t.Errorf("income = %s, want summed 250", rec.Income)
	}
	if !rec.Expenses.Equal(decimal.NewFromInt(40)) {
		t.Errorf("expenses = %s, want 40", rec.Expenses)
	}
	if !rec.Savings.Equal(decimal.NewFromInt(25)) {
		t.Errorf("savings = %s, want 25", rec.Savings)
	}
}

func TestDecodeDocumentLegacyExpenseSourceLabel(t *testing.T) {
	doc := `{
		"expenses": [
			{"id": 1, "amount": 12, "source": "Cinema", "date": "2025-01-05", "category": "Entertainment"},
			{"id": 2, "amount": 8, "date": "2025-01-06", "category": "Food"}
		]
	}`

	snapshot, err := decodeDocument([]byte(doc))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if snapshot.Expenses[0].Description != "Cinema" {
		t.Errorf("description = %q, want legacy source label", snapshot.Expenses[0].Description)
	}
	if snapshot.Expenses[1].Description != "Food" {
		t.Errorf("description = %q, want category fallback", snapshot.Expenses[1].Description)
	}
}

func TestDecodeDocumentRepairsGoalInvariants(t *testing.T) {
	doc := `{
		"savings": [
			{"id": 1, "name": "Trip", "targetAmount": 100, "currentAmount": 250, "deadline": "2025-12-31", "category": "✈️", "completed": false}
		]
	}`

	snapshot, err := decodeDocument([]byte(doc))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	goal := snapshot.Savings[0]
	if !goal.CurrentAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("current = %s, want clamped 100", goal.CurrentAmount)
	}
	if !goal.Completed {
		t.Error("completed must be recomputed from the amounts")
	}
}

func TestDecodeDocumentFrequencyReconciliation(t *testing.T) {
	doc := `{
		"income": [
			{"id": 1, "amount": 10, "source": "A", "startDate": "2025-01-01", "recurring": false, "frequency": "weekly"},
			{"id": 2, "amount": 10, "source": "B", "startDate": "2025-01-01", "recurring": true, "frequency": "bogus"},
			{"id": 3, "amount": 10, "source": "C", "startDate": "2025-01-01", "recurring": true, "frequency": "Daily"}
		]
	}`

	snapshot, err := decodeDocument([]byte(doc))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if snapshot.Income[0].Frequency != entity.FrequencyNone {
		t.Errorf("non-recurring entry must carry frequency none, got %s", snapshot.Income[0].Frequency)
	}
	if snapshot.Income[1].Recurring {
		t.Error("recurring flag must drop when the frequency is not recurring")
	}

	// Documents written by older app versions capitalize the daily value.
	if snapshot.Income[2].Frequency != entity.FrequencyDaily {
		t.Errorf("legacy Daily entry decoded to %s, want daily", snapshot.Income[2].Frequency)
	}
	if !snapshot.Income[2].Recurring {
		t.Error("recurring flag must survive for a legacy Daily entry")
	}
}

func TestDecodeDocumentInvalidAmountsAndKeys(t *testing.T) {
	doc := `{
		"income": [
			{"id": 1, "amount": -50, "source": "Bad", "startDate": "2025-01-01"}
		],
		"monthlyRecords": {
			"not-a-month": {"income": 10, "expenses": 0, "savings": 0},
			"2025-02": {"income": 10, "expenses": 0, "savings": 0}
		}
	}`

	snapshot, err := decodeDocument([]byte(doc))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if !snapshot.Income[0].Amount.IsZero() {
		t.Errorf("negative stored amount must decode to zero, got %s", snapshot.Income[0].Amount)
	}
	if _, ok := snapshot.MonthlyRecords["not-a-month"]; ok {
		t.Error("invalid month keys must be skipped")
	}
	if _, ok := snapshot.MonthlyRecords["2025-02"]; !ok {
		t.Error("valid month keys must survive")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := entity.NewSnapshot()

	income := entity.NewIncomeEntry("Salary", decimal.NewFromInt(1200), time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), true, entity.FrequencyMonthly)
	s.Income = append(s.Income, income)
	s.Record(income.MonthKey()).AddIncome(income.Amount)

	goal := entity.NewSavingsGoal("Trip", decimal.NewFromInt(500), time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), "✈️")
	applied, _ := goal.Contribute(decimal.NewFromFloat(99.95), time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC))
	s.Savings = append(s.Savings, goal)
	s.Record("2025-01").AddSavings(applied)

	data, err := encodeDocument(s)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := decodeDocument(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(decoded.Income) != 1 || !decoded.Income[0].Amount.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("income did not round-trip: %+v", decoded.Income)
	}
	if len(decoded.Savings) != 1 || len(decoded.Savings[0].Contributions) != 1 {
		t.Fatalf("contribution log did not round-trip")
	}
	if !decoded.Savings[0].Contributions[0].Amount.Equal(decimal.NewFromFloat(99.95)) {
		t.Errorf("contribution amount = %s, want 99.95", decoded.Savings[0].Contributions[0].Amount)
	}
	rec := decoded.MonthlyRecords["2025-01"]
	if rec == nil || !rec.Income.Equal(decimal.NewFromInt(1200)) || !rec.Savings.Equal(decimal.NewFromFloat(99.95)) {
		t.Errorf("monthly record did not round-trip: %+v", rec)
	}
}
