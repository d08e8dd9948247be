// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// ListMonthsOutput represents the months available for history browsing.
type ListMonthsOutput struct {
	Months []valueobject.MonthKey
}

// ListMonthsUseCase handles month listing for the history screen.
type ListMonthsUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewListMonthsUseCase creates a new ListMonthsUseCase instance.
func NewListMonthsUseCase(ledgerRepo adapter.LedgerRepository) *ListMonthsUseCase {
	return &ListMonthsUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute returns every known month, most recent first.
func (uc *ListMonthsUseCase) Execute(ctx context.Context) (*ListMonthsOutput, error) {
	snapshot, err := uc.ledgerRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ListMonthsOutput{
		Months: AvailableMonths(snapshot),
	}, nil
}
