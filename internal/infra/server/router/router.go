// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/meubolso/backend/internal/integration/entrypoint/controller"
	"github.com/meubolso/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	statementController    *controller.StatementController
	billPaymentController  *controller.BillPaymentController
	categoryRuleController *controller.CategoryRuleController
	importRateLimiter      *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	statementController *controller.StatementController,
	billPaymentController *controller.BillPaymentController,
	categoryRuleController *controller.CategoryRuleController,
	importRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		statementController:    statementController,
		billPaymentController:  billPaymentController,
		categoryRuleController: categoryRuleController,
		importRateLimiter:      importRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery.
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Statement routes (require authentication)
		if r.statementController != nil && r.authMiddleware != nil {
			statements := v1.Group("/statements")
			statements.Use(r.authMiddleware.Authenticate())
			{
				statements.POST("/csv/parse", r.statementController.ParseCSV)
				statements.POST("/ocr/parse", r.statementController.ParseOCR)

				// The import route runs the full reconciliation pipeline.
				if r.importRateLimiter != nil {
					statements.POST("/import", r.importRateLimiter.Middleware(), r.statementController.Import)
				} else {
					statements.POST("/import", r.statementController.Import)
				}
			}
		}

		// Bill payment routes (require authentication)
		if r.billPaymentController != nil && r.authMiddleware != nil {
			billPayments := v1.Group("/bill-payments")
			billPayments.Use(r.authMiddleware.Authenticate())
			{
				billPayments.GET("", r.billPaymentController.List)
				billPayments.POST("", r.billPaymentController.Create)
				billPayments.GET("/:id", r.billPaymentController.Get)
				billPayments.PATCH("/:id", r.billPaymentController.Update)
				billPayments.DELETE("/:id", r.billPaymentController.Delete)
			}
		}

		// Category rule routes (require authentication)
		if r.categoryRuleController != nil && r.authMiddleware != nil {
			rules := v1.Group("/category-rules")
			rules.Use(r.authMiddleware.Authenticate())
			{
				rules.GET("", r.categoryRuleController.List)
				rules.POST("", r.categoryRuleController.Create)
				rules.PATCH("/:id", r.categoryRuleController.Update)
				rules.DELETE("/:id", r.categoryRuleController.Delete)
			}
		}
	}
}
