// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"sort"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// ListExpensesOutput represents the output of listing expense entries.
type ListExpensesOutput struct {
	Entries []*entity.ExpenseEntry
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(ledgerRepo adapter.LedgerRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute returns all expense entries, most recent first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context) (*ListExpensesOutput, error) {
	snapshot, err := uc.ledgerRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.ExpenseEntry, len(snapshot.Expenses))
	copy(entries, snapshot.Expenses)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date.Equal(entries[j].Date) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].Date.After(entries[j].Date)
	})

	return &ListExpensesOutput{Entries: entries}, nil
}
