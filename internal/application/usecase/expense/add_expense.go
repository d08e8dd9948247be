// Package expense contains expense-related use cases.
package expense

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

// AddExpenseInput represents the input for recording an expense entry.
type AddExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
}

// AddExpenseOutput represents the output of recording an expense entry.
type AddExpenseOutput struct {
	Entry   *entity.ExpenseEntry
	Entries []*entity.ExpenseEntry
}

// AddExpenseUseCase handles expense creation logic.
type AddExpenseUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(ledgerRepo adapter.LedgerRepository) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute appends a new expense entry and adds its amount to the owning
// month's expense total, persisting both in one transaction. A blank
// description defaults to the category name.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
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
		entry = entity.NewExpenseEntry(strings.TrimSpace(input.Description), input.Amount, input.Date, input.Category)
		s.Expenses = append(s.Expenses, entry)
		s.Record(entry.MonthKey()).AddExpenses(entry.Amount)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AddExpenseOutput{
		Entry:   entry,
		Entries: snapshot.Expenses,
	}, nil
}
