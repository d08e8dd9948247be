// Package dashboard contains dashboard-related use cases and the pure
// aggregation functions they are built on.
package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

func buildSnapshot() *entity.Snapshot {
	s := entity.NewSnapshot()

	salary := entity.NewIncomeEntry("Salary", decimal.NewFromInt(1200), time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), true, entity.FrequencyMonthly)
	tips := entity.NewIncomeEntry("Tips", decimal.NewFromInt(80), time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), true, entity.FrequencyDaily)
	s.Income = append(s.Income, salary, tips)
	s.Record(salary.MonthKey()).AddIncome(salary.Amount)
	s.Record(tips.MonthKey()).AddIncome(tips.Amount)

	groceries := entity.NewExpenseEntry("Groceries", decimal.NewFromInt(45), time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), "Food")
	s.Expenses = append(s.Expenses, groceries)
	s.Record(groceries.MonthKey()).AddExpenses(groceries.Amount)

	goal := entity.NewSavingsGoal("Trip", decimal.NewFromInt(500), time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), "✈️")
	applied, _ := goal.Contribute(decimal.NewFromInt(100), time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC))
	s.Savings = append(s.Savings, goal)
	s.Record(goal.Contributions[0].MonthKey()).AddSavings(applied)

	return s
}

func TestAllTimeTotals(t *testing.T) {
	s := buildSnapshot()

	if !TotalIncome(s).Equal(decimal.NewFromInt(1280)) {
		t.Errorf("total income = %s, want 1280", TotalIncome(s))
	}
	if !TotalExpenses(s).Equal(decimal.NewFromInt(45)) {
		t.Errorf("total expenses = %s, want 45", TotalExpenses(s))
	}
	if !TotalSavings(s).Equal(decimal.NewFromInt(100)) {
		t.Errorf("total savings = %s, want 100", TotalSavings(s))
	}
	// 1280 - 45 - 100
	if !RemainingBalance(s).Equal(decimal.NewFromInt(1135)) {
		t.Errorf("remaining balance = %s, want 1135", RemainingBalance(s))
	}
}

func TestIncomeByFrequency(t *testing.T) {
	s := buildSnapshot()

	if !IncomeByFrequency(s, entity.FrequencyMonthly).Equal(decimal.NewFromInt(1200)) {
		t.Errorf("monthly = %s, want 1200", IncomeByFrequency(s, entity.FrequencyMonthly))
	}
	if !IncomeByFrequency(s, entity.FrequencyDaily).Equal(decimal.NewFromInt(80)) {
		t.Errorf("daily = %s, want 80", IncomeByFrequency(s, entity.FrequencyDaily))
	}
	if !IncomeByFrequency(s, entity.FrequencyNone).IsZero() {
		t.Errorf("non-recurring entries belong to no bucket")
	}
}

func TestMonthSummaryPrefersStoredRecord(t *testing.T) {
	s := buildSnapshot()

	// Drift the stored record away from the raw entries; the stored value wins.
	s.MonthlyRecords["2025-01"].Income = decimal.NewFromInt(9999)

	summary := MonthSummary(s, "2025-01")
	if !summary.Income.Equal(decimal.NewFromInt(9999)) {
		t.Errorf("stored record must be authoritative, got %s", summary.Income)
	}
}

func TestMonthSummaryRepairPath(t *testing.T) {
	s := buildSnapshot()

	// Drop the stored record; totals must be recomputed from the flat lists.
	delete(s.MonthlyRecords, "2025-01")

	summary := MonthSummary(s, "2025-01")
	if !summary.Income.Equal(decimal.NewFromInt(1280)) {
		t.Errorf("repaired income = %s, want 1280", summary.Income)
	}
	if !summary.Expenses.Equal(decimal.NewFromInt(45)) {
		t.Errorf("repaired expenses = %s, want 45", summary.Expenses)
	}
	if !summary.Savings.Equal(decimal.NewFromInt(100)) {
		t.Errorf("repaired savings = %s, want 100", summary.Savings)
	}
}

func TestMonthSummaryUnknownMonthIsZero(t *testing.T) {
	s := buildSnapshot()
	summary := MonthSummary(s, "2030-06")
	if !summary.Income.IsZero() || !summary.Expenses.IsZero() || !summary.Savings.IsZero() {
		t.Errorf("unknown month must yield zeroed totals, got %+v", summary)
	}
}

func TestCombinedHistoryOrdering(t *testing.T) {
	s := buildSnapshot()

	items := CombinedHistory(s, "2025-01")
	if len(items) != 4 {
		t.Fatalf("items = %d, want 4", len(items))
	}

	// Date descending: contribution (25th), groceries (20th), tips (18th), salary (15th)
	expected := []HistoryItemType{HistoryItemSavings, HistoryItemExpense, HistoryItemIncome, HistoryItemIncome}
	for i, typ := range expected {
		if items[i].Type != typ {
			t.Fatalf("items[%d].Type = %s, want %s", i, items[i].Type, typ)
		}
	}
}

func TestCombinedHistoryTieBreak(t *testing.T) {
	s := entity.NewSnapshot()
	date := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	s.Income = append(s.Income, entity.NewIncomeEntry("Pay", decimal.NewFromInt(10), date, false, entity.FrequencyNone))
	s.Expenses = append(s.Expenses, entity.NewExpenseEntry("Bus", decimal.NewFromInt(3), date, "Transport"))
	goal := entity.NewSavingsGoal("Fund", decimal.NewFromInt(100), date.AddDate(0, 6, 0), "🚨")
	goal.Contribute(decimal.NewFromInt(5), date)
	s.Savings = append(s.Savings, goal)

	items := CombinedHistory(s, "2025-02")
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}

	// Same-date ties keep income before expenses before savings
	expected := []HistoryItemType{HistoryItemIncome, HistoryItemExpense, HistoryItemSavings}
	for i, typ := range expected {
		if items[i].Type != typ {
			t.Fatalf("items[%d].Type = %s, want %s", i, items[i].Type, typ)
		}
	}
}

func TestAvailableMonthsUnion(t *testing.T) {
	s := buildSnapshot()

	// A monthly record with no surviving entries still counts
	s.Record(valueobject.MonthKey("2024-11")).AddExpenses(decimal.NewFromInt(5))
	// An entry whose month bucket was never recorded still counts
	stray := entity.NewExpenseEntry("Cinema", decimal.NewFromInt(12), time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), "Entertainment")
	s.Expenses = append(s.Expenses, stray)

	months := AvailableMonths(s)
	expected := []valueobject.MonthKey{"2025-03", "2025-01", "2024-11"}
	if len(months) != len(expected) {
		t.Fatalf("months = %v, want %v", months, expected)
	}
	for i, key := range expected {
		if months[i] != key {
			t.Fatalf("months[%d] = %s, want %s", i, months[i], key)
		}
	}
}
