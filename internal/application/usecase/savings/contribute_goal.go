// Package savings contains savings-goal-related use cases.
package savings

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// ContributeGoalInput represents the input for contributing to a savings goal.
type ContributeGoalInput struct {
	GoalID int64
	Amount decimal.Decimal
	Date   time.Time
}

// ContributeGoalOutput represents the output of contributing to a savings goal.
type ContributeGoalOutput struct {
	Goal          *entity.SavingsGoal
	Applied       decimal.Decimal
	GoalCompleted bool
}

// ContributeGoalUseCase handles savings contribution logic.
type ContributeGoalUseCase struct {
	ledgerRepo adapter.LedgerRepository
	notifier   adapter.GoalNotifier
}

// NewContributeGoalUseCase creates a new ContributeGoalUseCase instance.
func NewContributeGoalUseCase(ledgerRepo adapter.LedgerRepository, notifier adapter.GoalNotifier) *ContributeGoalUseCase {
	return &ContributeGoalUseCase{
		ledgerRepo: ledgerRepo,
		notifier:   notifier,
	}
}

// Execute adds the amount to the goal, clamping at the target, records the
// applied delta as a dated contribution and adds it to the owning month's
// savings total. The goal-completed signal fires exactly once, on the
// false-to-true transition, after the mutation has been persisted.
func (uc *ContributeGoalUseCase) Execute(ctx context.Context, input ContributeGoalInput) (*ContributeGoalOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidContributionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidContributionAmount,
		)
	}

	var (
		goal         *entity.SavingsGoal
		applied      decimal.Decimal
		completedNow bool
	)
	if _, err := uc.ledgerRepo.Mutate(ctx, func(s *entity.Snapshot) error {
		goal = s.FindGoal(input.GoalID)
		if goal == nil {
			return domainerror.NewSavingsError(
				domainerror.ErrCodeGoalNotFound,
				"savings goal not found",
				domainerror.ErrGoalNotFound,
			)
		}

		applied, completedNow = goal.Contribute(input.Amount, input.Date)
		if applied.IsPositive() {
			s.Record(goal.Contributions[len(goal.Contributions)-1].MonthKey()).AddSavings(applied)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if completedNow && uc.notifier != nil {
		uc.notifier.GoalCompleted(ctx, goal)
	}

	return &ContributeGoalOutput{
		Goal:          goal,
		Applied:       applied,
		GoalCompleted: completedNow,
	}, nil
}
