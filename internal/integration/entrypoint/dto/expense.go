// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date,omitempty"`
	Category    string  `json:"category" binding:"required"`
}

// UpdateExpenseRequest represents the request body for an expense edit.
type UpdateExpenseRequest struct {
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category" binding:"required"`
}

// ExpenseResponse represents a single expense entry in API responses.
type ExpenseResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Category    string `json:"category"`
}

// ExpenseListResponse represents the response for listing expense entries.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ExpenseCategoryResponse represents one entry of the expense category table.
type ExpenseCategoryResponse struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ExpenseCategoryListResponse represents the expense category table.
type ExpenseCategoryListResponse struct {
	Categories []ExpenseCategoryResponse `json:"categories"`
}

// ToExpenseResponse converts an expense entry to an ExpenseResponse DTO.
func ToExpenseResponse(entry *entity.ExpenseEntry) ExpenseResponse {
	return ExpenseResponse{
		ID:          entry.ID,
		Description: entry.Description,
		Amount:      entry.Amount.String(),
		Date:        entry.Date.Format("2006-01-02"),
		Category:    entry.Category,
	}
}

// ToExpenseListResponse converts expense entries to an ExpenseListResponse.
func ToExpenseListResponse(entries []*entity.ExpenseEntry) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(entries))
	for i, entry := range entries {
		expenses[i] = ToExpenseResponse(entry)
	}
	return ExpenseListResponse{Expenses: expenses}
}
