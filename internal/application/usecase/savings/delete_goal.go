// Package savings contains savings-goal-related use cases.
package savings

import (
	"context"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// DeleteGoalInput represents the input for deleting a savings goal.
type DeleteGoalInput struct {
	ID int64
}

// DeleteGoalOutput represents the output of deleting a savings goal.
type DeleteGoalOutput struct {
	Goals []*entity.SavingsGoal
}

// DeleteGoalUseCase handles savings goal deletion logic.
type DeleteGoalUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(ledgerRepo adapter.LedgerRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute removes the goal from the goals list. Deleting an absent id is a
// no-op. The running savings total is recomputed from the remaining goals'
// current amounts by the aggregation layer, so no month bucket is touched.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	snapshot, err := uc.ledgerRepo.Mutate(ctx, func(s *entity.Snapshot) error {
		s.RemoveGoal(input.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteGoalOutput{
		Goals: snapshot.Savings,
	}, nil
}
