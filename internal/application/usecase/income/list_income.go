// Package income contains income-related use cases.
package income

import (
	"context"
	"sort"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// ListIncomeOutput represents the output of listing income entries.
type ListIncomeOutput struct {
	Entries []*entity.IncomeEntry
}

// ListIncomeUseCase handles income listing logic.
type ListIncomeUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewListIncomeUseCase creates a new ListIncomeUseCase instance.
func NewListIncomeUseCase(ledgerRepo adapter.LedgerRepository) *ListIncomeUseCase {
	return &ListIncomeUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute returns all income entries, most recent first.
func (uc *ListIncomeUseCase) Execute(ctx context.Context) (*ListIncomeOutput, error) {
	snapshot, err := uc.ledgerRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.IncomeEntry, len(snapshot.Income))
	copy(entries, snapshot.Income)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].StartDate.Equal(entries[j].StartDate) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].StartDate.After(entries[j].StartDate)
	})

	return &ListIncomeOutput{Entries: entries}, nil
}
