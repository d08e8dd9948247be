// Package savings contains savings-goal-related use cases.
package savings

import (
	"context"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// ListGoalsOutput represents the output of listing savings goals.
type ListGoalsOutput struct {
	Goals     []*entity.SavingsGoal
	Active    int
	Completed int
}

// ListGoalsUseCase handles savings goal listing logic.
type ListGoalsUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(ledgerRepo adapter.LedgerRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute returns all goals in creation order together with active/completed
// counts for the savings screen.
func (uc *ListGoalsUseCase) Execute(ctx context.Context) (*ListGoalsOutput, error) {
	snapshot, err := uc.ledgerRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := &ListGoalsOutput{
		Goals: snapshot.Savings,
	}
	for _, g := range snapshot.Savings {
		if g.Completed {
			out.Completed++
		} else {
			out.Active++
		}
	}
	return out, nil
}
