// Package income contains income-related use cases.
package income

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// UpdateIncomeInput represents the input for topping up an income entry.
// Daily earners log amounts incrementally, so the update adds to the existing
// amount rather than replacing it.
type UpdateIncomeInput struct {
	ID     int64
	Amount decimal.Decimal
}

// UpdateIncomeOutput represents the output of topping up an income entry.
type UpdateIncomeOutput struct {
	Entry   *entity.IncomeEntry
	Entries []*entity.IncomeEntry
}

// UpdateIncomeUseCase handles income top-up logic.
type UpdateIncomeUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(ledgerRepo adapter.LedgerRepository) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute adds the given amount to an existing income entry and to its
// month's income total. The month key comes from the entry's own start date.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidIncomeAmount,
		)
	}

	var entry *entity.IncomeEntry
	snapshot, err := uc.ledgerRepo.Mutate(ctx, func(s *entity.Snapshot) error {
		existing := s.FindIncome(input.ID)
		if existing == nil {
			return domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeNotFound,
				"income entry not found",
				domainerror.ErrIncomeNotFound,
			)
		}

		updated := *existing
		updated.Amount = existing.Amount.Add(input.Amount)
		for i, e := range s.Income {
			if e.ID == updated.ID {
				s.Income[i] = &updated
				break
			}
		}
		s.Record(updated.MonthKey()).AddIncome(input.Amount)
		entry = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateIncomeOutput{
		Entry:   entry,
		Entries: snapshot.Income,
	}, nil
}
