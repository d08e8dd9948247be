// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/usecase/income"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	addUseCase    *income.AddIncomeUseCase
	updateUseCase *income.UpdateIncomeUseCase
	deleteUseCase *income.DeleteIncomeUseCase
	listUseCase   *income.ListIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	addUseCase *income.AddIncomeUseCase,
	updateUseCase *income.UpdateIncomeUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
	listUseCase *income.ListIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		addUseCase:    addUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /income requests.
func (c *IncomeController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(output.Entries))
}

// Create handles POST /income requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingIncomeFields),
		})
		return
	}

	startDate := time.Now().UTC()
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingIncomeFields),
			})
			return
		}
		startDate = parsed
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), income.AddIncomeInput{
		Source:    req.Source,
		Amount:    decimal.NewFromFloat(req.Amount),
		StartDate: startDate,
		Recurring: req.Recurring,
		Frequency: entity.ParseFrequency(req.Frequency),
	})
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Entry))
}

// Update handles PUT /income/:id requests. The amount in the body is added
// to the entry rather than replacing it.
func (c *IncomeController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income ID format",
		})
		return
	}

	var req dto.UpdateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingIncomeFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), income.UpdateIncomeInput{
		ID:     id,
		Amount: decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(output.Entry))
}

// Delete handles DELETE /income/:id requests. Deleting an absent entry
// succeeds, so repeated deletes are safe.
func (c *IncomeController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), income.DeleteIncomeInput{ID: id}); err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleIncomeError maps use case errors to HTTP responses.
func (c *IncomeController) handleIncomeError(ctx *gin.Context, err error) {
	var incomeErr *domainerror.IncomeError
	if errors.As(err, &incomeErr) {
		ctx.JSON(c.getStatusCodeForIncomeError(incomeErr.Code), dto.ErrorResponse{
			Error: incomeErr.Message,
			Code:  string(incomeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForIncomeError maps income error codes to HTTP status codes.
func (c *IncomeController) getStatusCodeForIncomeError(code domainerror.IncomeErrorCode) int {
	switch code {
	case domainerror.ErrCodeIncomeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidIncomeAmount,
		domainerror.ErrCodeEmptyIncomeSource,
		domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeFrequencyMismatch,
		domainerror.ErrCodeMissingIncomeFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
