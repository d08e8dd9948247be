// Package expense contains expense-related use cases.
package expense

import (
	"context"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// DeleteExpenseInput represents the input for deleting an expense entry.
type DeleteExpenseInput struct {
	ID int64
}

// DeleteExpenseOutput represents the output of deleting an expense entry.
type DeleteExpenseOutput struct {
	Entries []*entity.ExpenseEntry
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(ledgerRepo adapter.LedgerRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute removes the entry and subtracts its amount from the owning month's
// expense total, flooring at zero. Deleting an absent id is a no-op.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	snapshot, err := uc.ledgerRepo.Mutate(ctx, func(s *entity.Snapshot) error {
		existing := s.FindExpense(input.ID)
		if existing == nil {
			return nil
		}
		s.RemoveExpense(input.ID)
		s.Record(existing.MonthKey()).SubExpenses(existing.Amount)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteExpenseOutput{
		Entries: snapshot.Expenses,
	}, nil
}
