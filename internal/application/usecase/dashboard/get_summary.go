// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// GoalStats summarizes the savings goals for the dashboard.
type GoalStats struct {
	Active    int
	Completed int
}

// GetSummaryOutput represents the all-time dashboard summary.
type GetSummaryOutput struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	TotalSavings     decimal.Decimal
	RemainingBalance decimal.Decimal
	DailyIncome      decimal.Decimal
	WeeklyIncome     decimal.Decimal
	MonthlyIncome    decimal.Decimal
	Goals            GoalStats
}

// GetSummaryUseCase handles the main dashboard summary.
type GetSummaryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(ledgerRepo adapter.LedgerRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute computes the all-time totals shown on the main dashboard.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	snapshot, err := uc.ledgerRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := &GetSummaryOutput{
		TotalIncome:      TotalIncome(snapshot),
		TotalExpenses:    TotalExpenses(snapshot),
		TotalSavings:     TotalSavings(snapshot),
		RemainingBalance: RemainingBalance(snapshot),
		DailyIncome:      IncomeByFrequency(snapshot, entity.FrequencyDaily),
		WeeklyIncome:     IncomeByFrequency(snapshot, entity.FrequencyWeekly),
		MonthlyIncome:    IncomeByFrequency(snapshot, entity.FrequencyMonthly),
	}
	for _, g := range snapshot.Savings {
		if g.Completed {
			out.Goals.Completed++
		} else {
			out.Goals.Active++
		}
	}
	return out, nil
}
