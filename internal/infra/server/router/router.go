// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	dashboardController  *controller.DashboardController
	profileController    *controller.ProfileController
	analyticsController  *controller.AnalyticsController
	projectionController *controller.ProjectionController
	goalController       *controller.GoalController
	planningController   *controller.PlanningController
	rateLimiter          *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies. A nil
// rate limiter disables rate limiting.
func NewRouter(
	healthController *controller.HealthController,
	dashboardController *controller.DashboardController,
	profileController *controller.ProfileController,
	analyticsController *controller.AnalyticsController,
	projectionController *controller.ProjectionController,
	goalController *controller.GoalController,
	planningController *controller.PlanningController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		dashboardController:  dashboardController,
		profileController:    profileController,
		analyticsController:  analyticsController,
		projectionController: projectionController,
		goalController:       goalController,
		planningController:   planningController,
		rateLimiter:          rateLimiter,
		authMiddleware:       authMiddleware,
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

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every planner route
// requires authentication.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	v1.Use(r.authMiddleware.Authenticate())

	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/summary", r.dashboardController.GetSummary)
		dashboard.GET("/top-categories", r.dashboardController.GetTopCategories)
		dashboard.GET("/budgets", r.dashboardController.GetBudgets)
		dashboard.GET("/trends", r.dashboardController.GetTrends)
		dashboard.GET("/data-range", r.dashboardController.GetDataRange)
	}

	profile := v1.Group("/profile")
	{
		profile.GET("", r.profileController.GetProfile)
		profile.GET("/debts", r.profileController.GetDebts)
	}

	v1.GET("/analytics", r.analyticsController.GetAnalytics)

	projections := v1.Group("/projections")
	{
		projections.POST("/cash-flow", r.projectionController.ProjectCashFlow)
		projections.POST("/simulation", r.projectionController.Simulate)
	}

	v1.GET("/investments/summary", r.projectionController.GetPortfolioSummary)
	v1.GET("/goals/progress", r.goalController.GetProgress)
	v1.GET("/planning", r.planningController.GetOverview)
}
