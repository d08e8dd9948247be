// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for income creation.
type CreateIncomeRequest struct {
	Source    string  `json:"source" binding:"required,min=1,max=255"`
	Amount    float64 `json:"amount" binding:"required"`
	StartDate string  `json:"start_date,omitempty"`
	Recurring bool    `json:"recurring,omitempty"`
	Frequency string  `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly monthly none"`
}

// UpdateIncomeRequest represents the request body for an income top-up.
// The amount is added to the entry, not swapped in.
type UpdateIncomeRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// IncomeResponse represents a single income entry in API responses.
type IncomeResponse struct {
	ID        int64  `json:"id"`
	Source    string `json:"source"`
	Amount    string `json:"amount"`
	StartDate string `json:"start_date"`
	Recurring bool   `json:"recurring"`
	Frequency string `json:"frequency"`
}

// IncomeListResponse represents the response for listing income entries.
type IncomeListResponse struct {
	Income []IncomeResponse `json:"income"`
}

// ToIncomeResponse converts an income entry to an IncomeResponse DTO.
func ToIncomeResponse(entry *entity.IncomeEntry) IncomeResponse {
	return IncomeResponse{
		ID:        entry.ID,
		Source:    entry.Source,
		Amount:    entry.Amount.String(),
		StartDate: entry.StartDate.Format("2006-01-02"),
		Recurring: entry.Recurring,
		Frequency: string(entry.Frequency),
	}
}

// ToIncomeListResponse converts income entries to an IncomeListResponse.
func ToIncomeListResponse(entries []*entity.IncomeEntry) IncomeListResponse {
	income := make([]IncomeResponse, len(entries))
	for i, entry := range entries {
		income[i] = ToIncomeResponse(entry)
	}
	return IncomeListResponse{Income: income}
}
