// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// UpdateExpenseInput represents the input for editing an expense entry.
// The date is not editable; the month adjustment always lands on the entry's
// own month.
type UpdateExpenseInput struct {
	ID          int64
	Amount      decimal.Decimal
	Description string
	Category    string
}

// UpdateExpenseOutput represents the output of editing an expense entry.
type UpdateExpenseOutput struct {
	Entry   *entity.ExpenseEntry
	Entries []*entity.ExpenseEntry
}

// UpdateExpenseUseCase handles expense edit logic.
type UpdateExpenseUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(ledgerRepo adapter.LedgerRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute replaces the entry's amount, description and category, and adjusts
// the owning month's expense total by the amount difference. The adjusted
// total floors at zero so drifted records never display negative totals.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	if !valueobject.IsValidExpenseCategory(input.Category) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeUnknownExpenseCategory,
			"category is not in the category table",
			domainerror.ErrUnknownExpenseCategory,
		)
	}

	var entry *entity.ExpenseEntry
	snapshot, err := uc.ledgerRepo.Mutate(ctx, func(s *entity.Snapshot) error {
		existing := s.FindExpense(input.ID)
		if existing == nil {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense entry not found",
				domainerror.ErrExpenseNotFound,
			)
		}

		description := strings.TrimSpace(input.Description)
		if description == "" {
			description = input.Category
		}

		updated := *existing
		updated.Amount = input.Amount
		updated.Description = description
		updated.Category = input.Category
		s.ReplaceExpense(&updated)

		s.Record(existing.MonthKey()).AdjustExpenses(existing.Amount, input.Amount)
		entry = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateExpenseOutput{
		Entry:   entry,
		Entries: snapshot.Expenses,
	}, nil
}
