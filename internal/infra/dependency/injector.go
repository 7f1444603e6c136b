// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/config"
	"github.com/finance-tracker/planner/internal/infra/server/router"
	"github.com/finance-tracker/planner/internal/integration/adapters"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    *redis.Client
	UseCases *UseCases
	Router   *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case rate limits are counted in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	useCases := NewUseCases(cfg.Planner, GormRepositories(db))

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	// Create controllers
	var cacheChecker controller.HealthChecker
	if redisClient != nil {
		cacheChecker = func(ctx context.Context) bool {
			return redisClient.Ping(ctx).Err() == nil
		}
	}
	healthController := controller.NewHealthController(func(ctx context.Context) bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.PingContext(ctx) == nil
	}, cacheChecker)

	dashboardController := controller.NewDashboardController(
		useCases.MonthlySummary,
		useCases.TopCategories,
		useCases.BudgetComparison,
		useCases.Trends,
		useCases.DataRange,
	)
	profileController := controller.NewProfileController(useCases.FinancialProfile, useCases.DebtOverview)
	analyticsController := controller.NewAnalyticsController(useCases.Analytics)
	projectionController := controller.NewProjectionController(
		useCases.CashFlow,
		useCases.Simulation,
		useCases.PortfolioSummary,
	)
	goalController := controller.NewGoalController(useCases.GoalProgress)
	planningController := controller.NewPlanningController(useCases.PlanningOverview)

	// Create middleware
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		var store middleware.RateLimitStore
		if redisClient != nil {
			store = middleware.NewRedisStore(redisClient)
		}
		rateLimiter = middleware.NewRateLimiterWithConfig(store, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		dashboardController,
		profileController,
		analyticsController,
		projectionController,
		goalController,
		planningController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:   cfg,
		DB:       db,
		Redis:    redisClient,
		UseCases: useCases,
		Router:   r,
	}
}
