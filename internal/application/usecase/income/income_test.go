// Package income contains income-related use cases.
package income

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

func TestAddIncome(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewAddIncomeUseCase(repo)

	output, err := uc.Execute(context.Background(), AddIncomeInput{
		Source:    "Salary",
		Amount:    decimal.NewFromInt(1200),
		StartDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Recurring: true,
		Frequency: "monthly",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if output.Entry.Source != "Salary" {
		t.Errorf("source = %s, want Salary", output.Entry.Source)
	}
	if len(output.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(output.Entries))
	}

	snapshot, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	record := snapshot.MonthlyRecords["2025-01"]
	if record == nil || !record.Income.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("monthly income record not updated: %+v", record)
	}
}

func TestAddIncomeValidation(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewAddIncomeUseCase(repo)

	tests := []struct {
		name         string
		input        AddIncomeInput
		expectedCode domainerror.IncomeErrorCode
	}{
		{
			name:         "empty source",
			input:        AddIncomeInput{Source: "  ", Amount: decimal.NewFromInt(10)},
			expectedCode: domainerror.ErrCodeEmptyIncomeSource,
		},
		{
			name:         "zero amount",
			input:        AddIncomeInput{Source: "Tips", Amount: decimal.Zero},
			expectedCode: domainerror.ErrCodeInvalidIncomeAmount,
		},
		{
			name:         "negative amount",
			input:        AddIncomeInput{Source: "Tips", Amount: decimal.NewFromInt(-5)},
			expectedCode: domainerror.ErrCodeInvalidIncomeAmount,
		},
		{
			name:         "recurring without frequency",
			input:        AddIncomeInput{Source: "Salary", Amount: decimal.NewFromInt(10), Recurring: true, Frequency: "none"},
			expectedCode: domainerror.ErrCodeFrequencyMismatch,
		},
		{
			name:         "frequency without recurring",
			input:        AddIncomeInput{Source: "Salary", Amount: decimal.NewFromInt(10), Recurring: false, Frequency: "weekly"},
			expectedCode: domainerror.ErrCodeFrequencyMismatch,
		},
		{
			name:         "frequency outside the enum",
			input:        AddIncomeInput{Source: "Salary", Amount: decimal.NewFromInt(10), Recurring: true, Frequency: "yearly"},
			expectedCode: domainerror.ErrCodeInvalidFrequency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)

			var incomeErr *domainerror.IncomeError
			if !errors.As(err, &incomeErr) {
				t.Fatalf("expected IncomeError, got %v", err)
			}
			if incomeErr.Code != tt.expectedCode {
				t.Errorf("code = %s, want %s", incomeErr.Code, tt.expectedCode)
			}
		})
	}
}

func TestUpdateIncomeTopsUp(t *testing.T) {
	repo := newTestRepo(t)
	added, err := NewAddIncomeUseCase(repo).Execute(context.Background(), AddIncomeInput{
		Source:    "Freelance",
		Amount:    decimal.NewFromInt(100),
		StartDate: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	output, err := NewUpdateIncomeUseCase(repo).Execute(context.Background(), UpdateIncomeInput{
		ID:     added.Entry.ID,
		Amount: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if !output.Entry.Amount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("amount = %s, want 150 (top-up, not replace)", output.Entry.Amount)
	}

	snapshot, _ := repo.Load(context.Background())
	if !snapshot.MonthlyRecords["2025-02"].Income.Equal(decimal.NewFromInt(150)) {
		t.Errorf("monthly income = %s, want 150", snapshot.MonthlyRecords["2025-02"].Income)
	}
}

func TestUpdateIncomeNotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := NewUpdateIncomeUseCase(repo).Execute(context.Background(), UpdateIncomeInput{
		ID:     12345,
		Amount: decimal.NewFromInt(50),
	})

	var incomeErr *domainerror.IncomeError
	if !errors.As(err, &incomeErr) || incomeErr.Code != domainerror.ErrCodeIncomeNotFound {
		t.Fatalf("expected income-not-found error, got %v", err)
	}
}

func TestDeleteIncomeIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	added, err := NewAddIncomeUseCase(repo).Execute(context.Background(), AddIncomeInput{
		Source:    "Salary",
		Amount:    decimal.NewFromInt(200),
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	uc := NewDeleteIncomeUseCase(repo)
	output, err := uc.Execute(context.Background(), DeleteIncomeInput{ID: added.Entry.ID})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(output.Entries) != 0 {
		t.Fatalf("entries = %d, want 0", len(output.Entries))
	}

	snapshot, _ := repo.Load(context.Background())
	if !snapshot.MonthlyRecords["2025-03"].Income.IsZero() {
		t.Errorf("monthly income = %s, want 0", snapshot.MonthlyRecords["2025-03"].Income)
	}

	// Deleting again succeeds without changing anything
	if _, err := uc.Execute(context.Background(), DeleteIncomeInput{ID: added.Entry.ID}); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
}

func TestListIncomeSortedByDateDesc(t *testing.T) {
	repo := newTestRepo(t)
	add := NewAddIncomeUseCase(repo)

	dates := []time.Time{
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		if _, err := add.Execute(context.Background(), AddIncomeInput{
			Source:    "Job",
			Amount:    decimal.NewFromInt(10),
			StartDate: d,
		}); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	output, err := NewListIncomeUseCase(repo).Execute(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	for i := 1; i < len(output.Entries); i++ {
		if output.Entries[i].StartDate.After(output.Entries[i-1].StartDate) {
			t.Fatalf("entries not sorted by date descending")
		}
	}
}
