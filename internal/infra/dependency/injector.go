// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mis-finanzas/backend/config"
	"github.com/mis-finanzas/backend/internal/application/usecase/category"
	"github.com/mis-finanzas/backend/internal/application/usecase/dashboard"
	"github.com/mis-finanzas/backend/internal/application/usecase/goal"
	"github.com/mis-finanzas/backend/internal/application/usecase/investment"
	"github.com/mis-finanzas/backend/internal/application/usecase/transaction"
	"github.com/mis-finanzas/backend/internal/domain/ledger"
	"github.com/mis-finanzas/backend/internal/infra/server/router"
	"github.com/mis-finanzas/backend/internal/integration/adapters"
	"github.com/mis-finanzas/backend/internal/integration/entrypoint/controller"
	"github.com/mis-finanzas/backend/internal/integration/entrypoint/middleware"
	"github.com/mis-finanzas/backend/internal/integration/persistence"
	"github.com/mis-finanzas/backend/internal/integration/realtime"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories and integration services
	goalRepo := persistence.NewGoalRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	goalFeed := realtime.NewGoalFeed(redisClient)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	idGenerator := ledger.NewIDGenerator()

	// Goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, goalFeed, idGenerator)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, goalFeed, idGenerator)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, goalFeed)
	adjustGoalUseCase := goal.NewAdjustGoalUseCase(goalRepo, goalFeed, idGenerator)
	projectGoalUseCase := goal.NewProjectGoalUseCase(goalRepo)
	repairHistoryUseCase := goal.NewRepairHistoryUseCase(goalRepo, goalFeed, idGenerator)
	watchGoalsUseCase := goal.NewWatchGoalsUseCase(listGoalsUseCase, goalFeed)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Dashboard and investment use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo)
	investmentProjectionUseCase := investment.NewProjectionUseCase()

	// Controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		adjustGoalUseCase,
		projectGoalUseCase,
		repairHistoryUseCase,
		watchGoalsUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		deleteCategoryUseCase,
	)

	dashboardController := controller.NewDashboardController(getSummaryUseCase)
	investmentController := controller.NewInvestmentController(investmentProjectionUseCase)

	// Middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var repairRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		repairRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		repairRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		goalController,
		transactionController,
		categoryController,
		dashboardController,
		investmentController,
		repairRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
