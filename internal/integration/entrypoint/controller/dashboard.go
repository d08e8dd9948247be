// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase      *dashboard.GetSummaryUseCase
	monthSummaryUseCase *dashboard.GetMonthSummaryUseCase
	historyUseCase      *dashboard.GetHistoryUseCase
	listMonthsUseCase   *dashboard.ListMonthsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	monthSummaryUseCase *dashboard.GetMonthSummaryUseCase,
	historyUseCase *dashboard.GetHistoryUseCase,
	listMonthsUseCase *dashboard.ListMonthsUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:      summaryUseCase,
		monthSummaryUseCase: monthSummaryUseCase,
		historyUseCase:      historyUseCase,
		listMonthsUseCase:   listMonthsUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetMonthSummary handles GET /dashboard/months/:month requests.
func (c *DashboardController) GetMonthSummary(ctx *gin.Context) {
	output, err := c.monthSummaryUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthSummaryInput{
		Month: ctx.Param("month"),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthSummaryResponse(output))
}

// GetHistory handles GET /dashboard/history/:month requests.
func (c *DashboardController) GetHistory(ctx *gin.Context) {
	output, err := c.historyUseCase.Execute(ctx.Request.Context(), dashboard.GetHistoryInput{
		Month: ctx.Param("month"),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHistoryResponse(output))
}

// ListMonths handles GET /dashboard/months requests.
func (c *DashboardController) ListMonths(ctx *gin.Context) {
	output, err := c.listMonthsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthListResponse(output))
}

// handleDashboardError maps use case errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashboardErr *domainerror.DashboardError
	if errors.As(err, &dashboardErr) {
		statusCode := http.StatusInternalServerError
		if dashboardErr.Code == domainerror.ErrCodeInvalidMonthKey {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dashboardErr.Message,
			Code:  string(dashboardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
