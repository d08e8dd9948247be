// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-tracker/backend/internal/application/usecase/savings"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for savings goal creation.
type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=255"`
	TargetAmount float64 `json:"target_amount" binding:"required"`
	Deadline     string  `json:"deadline,omitempty"`
	Category     string  `json:"category,omitempty"`
}

// ContributeGoalRequest represents the request body for a goal contribution.
type ContributeGoalRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Date   string  `json:"date,omitempty"`
}

// ContributionResponse represents a single goal contribution in API responses.
type ContributionResponse struct {
	ID     int64  `json:"id"`
	Amount string `json:"amount"`
	Date   string `json:"date"`
}

// GoalResponse represents a single savings goal in API responses.
type GoalResponse struct {
	ID            int64                  `json:"id"`
	Name          string                 `json:"name"`
	TargetAmount  string                 `json:"target_amount"`
	CurrentAmount string                 `json:"current_amount"`
	Deadline      string                 `json:"deadline"`
	Category      string                 `json:"category"`
	Completed     bool                   `json:"completed"`
	Progress      float64                `json:"progress"`
	DaysRemaining int                    `json:"days_remaining"`
	Contributions []ContributionResponse `json:"contributions"`
}

// GoalListResponse represents the response for listing savings goals.
type GoalListResponse struct {
	Goals     []GoalResponse `json:"goals"`
	Active    int            `json:"active"`
	Completed int            `json:"completed"`
}

// ContributeGoalResponse represents the response for a goal contribution.
// Applied is the amount actually credited after clamping at the target.
type ContributeGoalResponse struct {
	Goal          GoalResponse `json:"goal"`
	Applied       string       `json:"applied"`
	GoalCompleted bool         `json:"goal_completed"`
}

// SavingsCategoryResponse represents one entry of the savings category table.
type SavingsCategoryResponse struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// SavingsCategoryListResponse represents the savings category table.
type SavingsCategoryListResponse struct {
	Categories []SavingsCategoryResponse `json:"categories"`
}

// ToGoalResponse converts a savings goal to a GoalResponse DTO.
func ToGoalResponse(goal *entity.SavingsGoal) GoalResponse {
	contributions := make([]ContributionResponse, len(goal.Contributions))
	for i, contribution := range goal.Contributions {
		contributions[i] = ContributionResponse{
			ID:     contribution.ID,
			Amount: contribution.Amount.String(),
			Date:   contribution.Date.Format("2006-01-02"),
		}
	}

	progress, _ := goal.Progress().Float64()

	return GoalResponse{
		ID:            goal.ID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount.String(),
		CurrentAmount: goal.CurrentAmount.String(),
		Deadline:      goal.Deadline.Format("2006-01-02"),
		Category:      goal.Category,
		Completed:     goal.Completed,
		Progress:      progress,
		DaysRemaining: goal.DaysRemaining(time.Now().UTC()),
		Contributions: contributions,
	}
}

// ToGoalListResponse converts a ListGoalsOutput to a GoalListResponse.
func ToGoalListResponse(output *savings.ListGoalsOutput) GoalListResponse {
	goals := make([]GoalResponse, len(output.Goals))
	for i, goal := range output.Goals {
		goals[i] = ToGoalResponse(goal)
	}
	return GoalListResponse{
		Goals:     goals,
		Active:    output.Active,
		Completed: output.Completed,
	}
}

// ToContributeGoalResponse converts a ContributeGoalOutput to a
// ContributeGoalResponse.
func ToContributeGoalResponse(output *savings.ContributeGoalOutput) ContributeGoalResponse {
	return ContributeGoalResponse{
		Goal:          ToGoalResponse(output.Goal),
		Applied:       output.Applied.String(),
		GoalCompleted: output.GoalCompleted,
	}
}
