// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/budget-tracker/backend/internal/application/adapter"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// GetHistoryInput represents the input for the combined month history.
type GetHistoryInput struct {
	Month string
}

// GetHistoryOutput represents the combined month history.
type GetHistoryOutput struct {
	Month valueobject.MonthKey
	Items []HistoryItem
}

// GetHistoryUseCase handles combined history lookups.
type GetHistoryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewGetHistoryUseCase creates a new GetHistoryUseCase instance.
func NewGetHistoryUseCase(ledgerRepo adapter.LedgerRepository) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute returns the month's income, expense and savings items merged into
// one list, newest first.
func (uc *GetHistoryUseCase) Execute(ctx context.Context, input GetHistoryInput) (*GetHistoryOutput, error) {
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

	return &GetHistoryOutput{
		Month: key,
		Items: CombinedHistory(snapshot, key),
	}, nil
}
