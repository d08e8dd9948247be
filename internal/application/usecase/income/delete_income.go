// Package income contains income-related use cases.
package income

import (
	"context"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// DeleteIncomeInput represents the input for deleting an income entry.
type DeleteIncomeInput struct {
	ID int64
}

// DeleteIncomeOutput represents the output of deleting an income entry.
type DeleteIncomeOutput struct {
	Entries []*entity.IncomeEntry
}

// DeleteIncomeUseCase handles income deletion logic.
type DeleteIncomeUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(ledgerRepo adapter.LedgerRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute removes the entry and subtracts its amount from the owning month's
// income total, flooring at zero. Deleting an absent id is a no-op.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) (*DeleteIncomeOutput, error) {
	snapshot, err := uc.ledgerRepo.Mutate(ctx, func(s *entity.Snapshot) error {
		existing := s.FindIncome(input.ID)
		if existing == nil {
			return nil
		}
		s.RemoveIncome(input.ID)
		s.Record(existing.MonthKey()).SubIncome(existing.Amount)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteIncomeOutput{
		Entries: snapshot.Income,
	}, nil
}
