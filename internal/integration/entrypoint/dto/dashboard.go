// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
)

// GoalStatsResponse represents goal counters in the dashboard summary.
type GoalStatsResponse struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// SummaryResponse represents the all-time dashboard summary.
type SummaryResponse struct {
	TotalIncome      string            `json:"total_income"`
	TotalExpenses    string            `json:"total_expenses"`
	TotalSavings     string            `json:"total_savings"`
	RemainingBalance string            `json:"remaining_balance"`
	DailyIncome      string            `json:"daily_income"`
	WeeklyIncome     string            `json:"weekly_income"`
	MonthlyIncome    string            `json:"monthly_income"`
	Goals            GoalStatsResponse `json:"goals"`
}

// MonthSummaryResponse represents one month's aggregate totals.
type MonthSummaryResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Savings  string `json:"savings"`
	Balance  string `json:"balance"`
}

// HistoryItemResponse represents one row of the combined month history.
type HistoryItemResponse struct {
	Type     string `json:"type"`
	ID       int64  `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category,omitempty"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
}

// HistoryResponse represents the combined history of one month.
type HistoryResponse struct {
	Month string                `json:"month"`
	Items []HistoryItemResponse `json:"items"`
}

// MonthListResponse represents the months that carry any activity.
type MonthListResponse struct {
	Months []string `json:"months"`
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		TotalIncome:      output.TotalIncome.String(),
		TotalExpenses:    output.TotalExpenses.String(),
		TotalSavings:     output.TotalSavings.String(),
		RemainingBalance: output.RemainingBalance.String(),
		DailyIncome:      output.DailyIncome.String(),
		WeeklyIncome:     output.WeeklyIncome.String(),
		MonthlyIncome:    output.MonthlyIncome.String(),
		Goals: GoalStatsResponse{
			Active:    output.Goals.Active,
			Completed: output.Goals.Completed,
		},
	}
}

// ToMonthSummaryResponse converts a GetMonthSummaryOutput to a
// MonthSummaryResponse.
func ToMonthSummaryResponse(output *dashboard.GetMonthSummaryOutput) MonthSummaryResponse {
	return MonthSummaryResponse{
		Month:    output.Month.String(),
		Income:   output.Income.String(),
		Expenses: output.Expenses.String(),
		Savings:  output.Savings.String(),
		Balance:  output.Balance.String(),
	}
}

// ToHistoryResponse converts a GetHistoryOutput to a HistoryResponse.
func ToHistoryResponse(output *dashboard.GetHistoryOutput) HistoryResponse {
	items := make([]HistoryItemResponse, len(output.Items))
	for i, item := range output.Items {
		items[i] = HistoryItemResponse{
			Type:     string(item.Type),
			ID:       item.ID,
			Label:    item.Label,
			Category: item.Category,
			Amount:   item.Amount.String(),
			Date:     item.Date.Format("2006-01-02"),
		}
	}
	return HistoryResponse{
		Month: output.Month.String(),
		Items: items,
	}
}

// ToMonthListResponse converts a ListMonthsOutput to a MonthListResponse.
func ToMonthListResponse(output *dashboard.ListMonthsOutput) MonthListResponse {
	months := make([]string, len(output.Months))
	for i, month := range output.Months {
		months[i] = month.String()
	}
	return MonthListResponse{Months: months}
}
