// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/usecase/savings"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// SavingsController handles savings goal endpoints.
type SavingsController struct {
	createUseCase     *savings.CreateGoalUseCase
	contributeUseCase *savings.ContributeGoalUseCase
	deleteUseCase     *savings.DeleteGoalUseCase
	listUseCase       *savings.ListGoalsUseCase
}

// NewSavingsController creates a new savings controller instance.
func NewSavingsController(
	createUseCase *savings.CreateGoalUseCase,
	contributeUseCase *savings.ContributeGoalUseCase,
	deleteUseCase *savings.DeleteGoalUseCase,
	listUseCase *savings.ListGoalsUseCase,
) *SavingsController {
	return &SavingsController{
		createUseCase:     createUseCase,
		contributeUseCase: contributeUseCase,
		deleteUseCase:     deleteUseCase,
		listUseCase:       listUseCase,
	}
}

// List handles GET /savings requests.
func (c *SavingsController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output))
}

// ListCategories handles GET /savings/categories requests.
func (c *SavingsController) ListCategories(ctx *gin.Context) {
	categories := valueobject.SavingsCategories()
	response := dto.SavingsCategoryListResponse{
		Categories: make([]dto.SavingsCategoryResponse, len(categories)),
	}
	for i, category := range categories {
		response.Categories[i] = dto.SavingsCategoryResponse{
			Name: category.Name,
			Icon: category.Icon,
		}
	}

	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /savings requests.
func (c *SavingsController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := savings.CreateGoalInput{
		Name:         req.Name,
		TargetAmount: decimal.NewFromFloat(req.TargetAmount),
		Category:     req.Category,
	}
	if req.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid deadline format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingGoalFields),
			})
			return
		}
		input.Deadline = &deadline
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Contribute handles POST /savings/:id/contributions requests. The applied
// amount may be smaller than the requested one when the goal is near its
// target.
func (c *SavingsController) Contribute(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	var req dto.ContributeGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingGoalFields),
			})
			return
		}
		date = parsed
	}

	output, err := c.contributeUseCase.Execute(ctx.Request.Context(), savings.ContributeGoalInput{
		GoalID: id,
		Amount: decimal.NewFromFloat(req.Amount),
		Date:   date,
	})
	if err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToContributeGoalResponse(output))
}

// Delete handles DELETE /savings/:id requests. Deleting an absent goal
// succeeds, so repeated deletes are safe.
func (c *SavingsController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), savings.DeleteGoalInput{ID: id}); err != nil {
		c.handleSavingsError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleSavingsError maps use case errors to HTTP responses.
func (c *SavingsController) handleSavingsError(ctx *gin.Context, err error) {
	var savingsErr *domainerror.SavingsError
	if errors.As(err, &savingsErr) {
		ctx.JSON(c.getStatusCodeForSavingsError(savingsErr.Code), dto.ErrorResponse{
			Error: savingsErr.Message,
			Code:  string(savingsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSavingsError maps savings error codes to HTTP status codes.
func (c *SavingsController) getStatusCodeForSavingsError(code domainerror.SavingsErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmptyGoalName,
		domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidContributionAmount,
		domainerror.ErrCodeUnknownSavingsCategory,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
