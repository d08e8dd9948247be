// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// GetMonthSummaryInput represents the input for a month summary.
type GetMonthSummaryInput struct {
	Month string
}

// GetMonthSummaryOutput represents one month's aggregate totals.
type GetMonthSummaryOutput struct {
	Month    valueobject.MonthKey
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
	Balance  decimal.Decimal
}

// GetMonthSummaryUseCase handles month summary lookups.
type GetMonthSummaryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewGetMonthSummaryUseCase creates a new GetMonthSummaryUseCase instance.
func NewGetMonthSummaryUseCase(ledgerRepo adapter.LedgerRepository) *GetMonthSummaryUseCase {
	return &GetMonthSummaryUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute returns the totals for one month, using the stored monthly record
// when present and the repair path otherwise.
func (uc *GetMonthSummaryUseCase) Execute(ctx context.Context, input GetMonthSummaryInput) (*GetMonthSummaryOutput, error) {
	key, err := valueobject.ParseMonthKey(input.Month)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonthKey,
			"month must be in YYYY-MM form",
			domainerror.ErrInvalidMonthKey,
		)
	}

	snapshot, err := uc.ledgerRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	rec := MonthSummary(snapshot, key)
	return &GetMonthSummaryOutput{
		Month:    key,
		Income:   rec.Income,
		Expenses: rec.Expenses,
		Savings:  rec.Savings,
		Balance:  rec.Income.Sub(rec.Expenses),
	}, nil
}
