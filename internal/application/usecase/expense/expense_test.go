// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/persistence"
)

func newTestRepo(t *testing.T) adapter.LedgerRepository {
	t.Helper()
	store := persistence.NewFileStore(filepath.Join(t.TempDir(), "budget.json"))
	return persistence.NewLedgerRepository(store)
}

func TestAddExpense(t *testing.T) {
	repo := newTestRepo(t)
	output, err := NewAddExpenseUseCase(repo).Execute(context.Background(), AddExpenseInput{
		Description: "Groceries",
		Amount:      decimal.NewFromInt(45),
		Date:        time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		Category:    "Food",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if output.Entry.Category != "Food" {
		t.Errorf("category = %s, want Food", output.Entry.Category)
	}

	snapshot, _ := repo.Load(context.Background())
	if !snapshot.MonthlyRecords["2025-01"].Expenses.Equal(decimal.NewFromInt(45)) {
		t.Errorf("monthly expenses = %s, want 45", snapshot.MonthlyRecords["2025-01"].Expenses)
	}
}

func TestAddExpenseBlankDescriptionDefaultsToCategory(t *testing.T) {
	repo := newTestRepo(t)
	output, err := NewAddExpenseUseCase(repo).Execute(context.Background(), AddExpenseInput{
		Description: "   ",
		Amount:      decimal.NewFromInt(30),
		Date:        time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		Category:    "Transport",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if output.Entry.Description != "Transport" {
		t.Errorf("description = %q, want category name fallback", output.Entry.Description)
	}
}

func TestAddExpenseUnknownCategory(t *testing.T) {
	repo := newTestRepo(t)
	_, err := NewAddExpenseUseCase(repo).Execute(context.Background(), AddExpenseInput{
		Amount:   decimal.NewFromInt(10),
		Date:     time.Now(),
		Category: "Yachts",
	})

	var expenseErr *domainerror.ExpenseError
	if !errors.As(err, &expenseErr) || expenseErr.Code != domainerror.ErrCodeUnknownExpenseCategory {
		t.Fatalf("expected unknown-category error, got %v", err)
	}
}

func TestUpdateExpenseAdjustsMonthlyRecord(t *testing.T) {
	repo := newTestRepo(t)
	added, err := NewAddExpenseUseCase(repo).Execute(context.Background(), AddExpenseInput{
		Description: "Groceries",
		Amount:      decimal.NewFromInt(45),
		Date:        time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		Category:    "Food",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	output, err := NewUpdateExpenseUseCase(repo).Execute(context.Background(), UpdateExpenseInput{
		ID:          added.Entry.ID,
		Amount:      decimal.NewFromInt(60),
		Description: "Groceries and snacks",
		Category:    "Food",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if !output.Entry.Amount.Equal(decimal.NewFromInt(60)) {
		t.Errorf("amount = %s, want 60", output.Entry.Amount)
	}

	snapshot, _ := repo.Load(context.Background())
	if !snapshot.MonthlyRecords["2025-01"].Expenses.Equal(decimal.NewFromInt(60)) {
		t.Errorf("monthly expenses = %s, want 60", snapshot.MonthlyRecords["2025-01"].Expenses)
	}
}

func TestUpdateExpenseNotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := NewUpdateExpenseUseCase(repo).Execute(context.Background(), UpdateExpenseInput{
		ID:       999,
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
	})

	var expenseErr *domainerror.ExpenseError
	if !errors.As(err, &expenseErr) || expenseErr.Code != domainerror.ErrCodeExpenseNotFound {
		t.Fatalf("expected expense-not-found error, got %v", err)
	}
}

func TestDeleteExpenseSubtractsAndFloors(t *testing.T) {
	repo := newTestRepo(t)
	added, err := NewAddExpenseUseCase(repo).Execute(context.Background(), AddExpenseInput{
		Description: "Rent",
		Amount:      decimal.NewFromInt(800),
		Date:        time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Category:    "Rent",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	uc := NewDeleteExpenseUseCase(repo)
	if _, err := uc.Execute(context.Background(), DeleteExpenseInput{ID: added.Entry.ID}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	snapshot, _ := repo.Load(context.Background())
	if !snapshot.MonthlyRecords["2025-02"].Expenses.IsZero() {
		t.Errorf("monthly expenses = %s, want 0", snapshot.MonthlyRecords["2025-02"].Expenses)
	}

	// Second delete of the same id is a no-op success
	if _, err := uc.Execute(context.Background(), DeleteExpenseInput{ID: added.Entry.ID}); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
}
