// Package savings contains savings-goal-related use cases.
package savings

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// CreateGoalInput represents the input for creating a savings goal.
type CreateGoalInput struct {
	Name         string
	TargetAmount decimal.Decimal
	Deadline     *time.Time // Optional, defaults to Dec 31 of the current year
	Category     string     // Optional icon from the savings category table
}

// CreateGoalOutput represents the output of creating a savings goal.
type CreateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// CreateGoalUseCase handles savings goal creation logic.
type CreateGoalUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(ledgerRepo adapter.LedgerRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute creates a goal with zero progress. A fresh goal contributes nothing
// to monthly savings totals, so no month bucket is touched here.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeEmptyGoalName,
			"goal name cannot be empty",
			domainerror.ErrEmptyGoalName,
		)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	category := input.Category
	if category == "" {
		category = valueobject.DefaultSavingsCategory.Icon
	} else if !valueobject.IsValidSavingsCategoryIcon(category) {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeUnknownSavingsCategory,
			"category is not in the savings category table",
			domainerror.ErrUnknownSavingsCategory,
		)
	}

	deadline := endOfCurrentYear()
	if input.Deadline != nil {
		deadline = *input.Deadline
	}

	var goal *entity.SavingsGoal
	if _, err := uc.ledgerRepo.Mutate(ctx, func(s *entity.Snapshot) error {
		goal = entity.NewSavingsGoal(name, input.TargetAmount, deadline, category)
		s.Savings = append(s.Savings, goal)
		return nil
	}); err != nil {
		return nil, err
	}

	return &CreateGoalOutput{Goal: goal}, nil
}

func endOfCurrentYear() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
}
