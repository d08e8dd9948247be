// Package income contains income-related use cases.
package income

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// AddIncomeInput represents the input for recording an income entry.
type AddIncomeInput struct {
	Source    string
	Amount    decimal.Decimal
	StartDate time.Time
	Recurring bool
	Frequency entity.Frequency
}

// AddIncomeOutput represents the output of recording an income entry.
type AddIncomeOutput struct {
	Entry   *entity.IncomeEntry
	Entries []*entity.IncomeEntry
}

// AddIncomeUseCase handles income creation logic.
type AddIncomeUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewAddIncomeUseCase creates a new AddIncomeUseCase instance.
func NewAddIncomeUseCase(ledgerRepo adapter.LedgerRepository) *AddIncomeUseCase {
	return &AddIncomeUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute appends a new income entry and adds its amount to the owning
// month's income total, persisting both in one transaction.
func (uc *AddIncomeUseCase) Execute(ctx context.Context, input AddIncomeInput) (*AddIncomeOutput, error) {
	source := strings.TrimSpace(input.Source)
	if source == "" {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeEmptyIncomeSource,
			"income source cannot be empty",
			domainerror.ErrEmptyIncomeSource,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidIncomeAmount,
		)
	}

	switch input.Frequency {
	case entity.FrequencyDaily, entity.FrequencyWeekly, entity.FrequencyMonthly, entity.FrequencyNone, "":
	default:
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be daily, weekly, monthly or none",
			domainerror.ErrInvalidFrequency,
		)
	}

	if input.Recurring && !input.Frequency.IsRecurring() {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeFrequencyMismatch,
			"recurring income requires a daily, weekly or monthly frequency",
			domainerror.ErrFrequencyMismatch,
		)
	}
	if !input.Recurring && input.Frequency != entity.FrequencyNone && input.Frequency != "" {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeFrequencyMismatch,
			"non-recurring income cannot carry a frequency",
			domainerror.ErrFrequencyMismatch,
		)
	}

	var entry *entity.IncomeEntry
	snapshot, err := uc.ledgerRepo.Mutate(ctx, func(s *entity.Snapshot) error {
		entry = entity.NewIncomeEntry(source, input.Amount, input.StartDate, input.Recurring, input.Frequency)
		s.Income = append(s.Income, entry)
		s.Record(entry.MonthKey()).AddIncome(entry.Amount)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AddIncomeOutput{
		Entry:   entry,
		Entries: snapshot.Income,
	}, nil
}
