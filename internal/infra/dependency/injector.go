// Package dependency provides dependency injection for the application.
package dependency

import (
	"os"
	"time"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
	"github.com/budget-tracker/backend/internal/application/usecase/expense"
	"github.com/budget-tracker/backend/internal/application/usecase/income"
	"github.com/budget-tracker/backend/internal/application/usecase/savings"
	"github.com/budget-tracker/backend/internal/infra/server/router"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-tracker/backend/internal/integration/notification"
	"github.com/budget-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	Router   *router.Router
	Notifier *notification.Service
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The snapshot store is built by the caller so the driver choice stays out
// of the wiring.
func NewInjector(cfg *config.Config, store adapter.SnapshotStore, storeHealth func() bool) *Injector {
	// Create repository and notification service
	ledgerRepo := persistence.NewLedgerRepository(store)
	notifier := notification.NewService(
		notification.Config{QueueSize: cfg.Notification.QueueSize},
		notification.LogSubscriber(),
	)

	// Create income use cases
	addIncomeUseCase := income.NewAddIncomeUseCase(ledgerRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(ledgerRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(ledgerRepo)
	listIncomeUseCase := income.NewListIncomeUseCase(ledgerRepo)

	// Create expense use cases
	addExpenseUseCase := expense.NewAddExpenseUseCase(ledgerRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(ledgerRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(ledgerRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(ledgerRepo)

	// Create savings use cases
	createGoalUseCase := savings.NewCreateGoalUseCase(ledgerRepo)
	contributeGoalUseCase := savings.NewContributeGoalUseCase(ledgerRepo, notifier)
	deleteGoalUseCase := savings.NewDeleteGoalUseCase(ledgerRepo)
	listGoalsUseCase := savings.NewListGoalsUseCase(ledgerRepo)

	// Create dashboard use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(ledgerRepo)
	getMonthSummaryUseCase := dashboard.NewGetMonthSummaryUseCase(ledgerRepo)
	getHistoryUseCase := dashboard.NewGetHistoryUseCase(ledgerRepo)
	listMonthsUseCase := dashboard.NewListMonthsUseCase(ledgerRepo)

	// Create controllers
	healthController := controller.NewHealthController(storeHealth)

	incomeController := controller.NewIncomeController(
		addIncomeUseCase,
		updateIncomeUseCase,
		deleteIncomeUseCase,
		listIncomeUseCase,
	)

	expenseController := controller.NewExpenseController(
		addExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		listExpensesUseCase,
	)

	savingsController := controller.NewSavingsController(
		createGoalUseCase,
		contributeGoalUseCase,
		deleteGoalUseCase,
		listGoalsUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getSummaryUseCase,
		getMonthSummaryUseCase,
		getHistoryUseCase,
		listMonthsUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var mutationRateLimiter *middleware.RateLimiter
	if os.Getenv("E2E_MODE") == "true" || cfg.Server.Environment == "test" {
		mutationRateLimiter = middleware.NewRateLimiterWithConfig(10000, time.Minute)
	} else {
		mutationRateLimiter = middleware.NewRateLimiter()
	}

	// Create router
	apiRouter := router.NewRouter(
		healthController,
		incomeController,
		expenseController,
		savingsController,
		dashboardController,
		mutationRateLimiter,
	)

	return &Injector{
		Config:   cfg,
		Router:   apiRouter,
		Notifier: notifier,
	}
}
