// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	incomeController    *controller.IncomeController
	expenseController   *controller.ExpenseController
	savingsController   *controller.SavingsController
	dashboardController *controller.DashboardController
	mutationRateLimiter *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	incomeController *controller.IncomeController,
	expenseController *controller.ExpenseController,
	savingsController *controller.SavingsController,
	dashboardController *controller.DashboardController,
	mutationRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		incomeController:    incomeController,
		expenseController:   expenseController,
		savingsController:   savingsController,
		dashboardController: dashboardController,
		mutationRateLimiter: mutationRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Mutating routes pass
// through the rate limiter; reads do not.
func (r *Router) setupAPIRoutes() {
	limit := r.limiterHandler()

	v1 := r.engine.Group("/api/v1")
	{
		if r.incomeController != nil {
			income := v1.Group("/income")
			{
				income.GET("", r.incomeController.List)
				income.POST("", limit, r.incomeController.Create)
				income.PUT("/:id", limit, r.incomeController.Update)
				income.DELETE("/:id", limit, r.incomeController.Delete)
			}
		}

		if r.expenseController != nil {
			expenses := v1.Group("/expenses")
			{
				expenses.GET("", r.expenseController.List)
				expenses.GET("/categories", r.expenseController.ListCategories)
				expenses.POST("", limit, r.expenseController.Create)
				expenses.PUT("/:id", limit, r.expenseController.Update)
				expenses.DELETE("/:id", limit, r.expenseController.Delete)
			}
		}

		if r.savingsController != nil {
			savings := v1.Group("/savings")
			{
				savings.GET("", r.savingsController.List)
				savings.GET("/categories", r.savingsController.ListCategories)
				savings.POST("", limit, r.savingsController.Create)
				savings.POST("/:id/contributions", limit, r.savingsController.Contribute)
				savings.DELETE("/:id", limit, r.savingsController.Delete)
			}
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/summary", r.dashboardController.GetSummary)
				dashboard.GET("/months", r.dashboardController.ListMonths)
				dashboard.GET("/months/:month", r.dashboardController.GetMonthSummary)
				dashboard.GET("/history/:month", r.dashboardController.GetHistory)
			}
		}
	}
}

// limiterHandler returns the rate limiter middleware, or a pass-through
// when no limiter is configured.
func (r *Router) limiterHandler() gin.HandlerFunc {
	if r.mutationRateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.mutationRateLimiter.Middleware()
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
