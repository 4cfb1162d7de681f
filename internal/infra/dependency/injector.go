// Package dependency provides dependency injection for the application.
package dependency

import (
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/meubolso/backend/config"
	"github.com/meubolso/backend/internal/application/adapter"
	"github.com/meubolso/backend/internal/application/usecase/billpayment"
	"github.com/meubolso/backend/internal/application/usecase/categoryrule"
	"github.com/meubolso/backend/internal/application/usecase/reconciliation"
	"github.com/meubolso/backend/internal/application/usecase/statement"
	"github.com/meubolso/backend/internal/application/usecase/transaction"
	"github.com/meubolso/backend/internal/infra/redis"
	"github.com/meubolso/backend/internal/infra/server/router"
	"github.com/meubolso/backend/internal/integration/cache"
	"github.com/meubolso/backend/internal/integration/entrypoint/controller"
	"github.com/meubolso/backend/internal/integration/entrypoint/middleware"
	"github.com/meubolso/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client may be nil; category suggestion then falls back to the
// repository on every parse.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *goredis.Client) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	billPaymentRepo := persistence.NewBillPaymentRepository(db)
	installmentRepo := persistence.NewInstallmentRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	categoryRuleRepo := persistence.NewCategoryRuleRepository(db)

	// Create cache adapter
	var ruleCache adapter.RuleCache
	cacheHealthChecker := func() bool { return false }
	if redisClient != nil {
		ruleCache = cache.NewRedisRuleCache(redisClient, cfg.Cache.RuleTTL)
		cacheHealthChecker = redis.HealthChecker(redisClient)
	}

	// Create statement use cases
	suggester := statement.NewCategorySuggester(categoryRuleRepo, ruleCache)
	parseCSVUseCase := statement.NewParseCSVUseCase(suggester)
	parseOCRUseCase := statement.NewParseOCRStatementUseCase(suggester)

	// Create reconciliation use cases
	findMatchingUseCase := reconciliation.NewFindMatchingUseCase(billPaymentRepo)
	linkCarryoverUseCase := reconciliation.NewLinkCarryoverUseCase(billPaymentRepo, transactionRepo)

	// Create import use case
	importUseCase := transaction.NewImportStatementUseCase(transactionRepo, findMatchingUseCase, linkCarryoverUseCase)

	// Create bill payment use cases
	generatePaymentUseCase := billpayment.NewGeneratePaymentUseCase(billPaymentRepo, transactionRepo, installmentRepo)
	createPaymentUseCase := billpayment.NewCreatePaymentUseCase(billPaymentRepo, generatePaymentUseCase)
	listPaymentsUseCase := billpayment.NewListPaymentsUseCase(billPaymentRepo)
	getPaymentUseCase := billpayment.NewGetPaymentUseCase(billPaymentRepo)
	deletePaymentUseCase := billpayment.NewDeletePaymentUseCase(billPaymentRepo, transactionRepo, installmentRepo)
	updatePaymentUseCase := billpayment.NewUpdatePaymentUseCase(billPaymentRepo, deletePaymentUseCase, generatePaymentUseCase)

	// Create category rule use cases
	createRuleUseCase := categoryrule.NewCreateRuleUseCase(categoryRuleRepo, categoryRepo, ruleCache)
	listRulesUseCase := categoryrule.NewListRulesUseCase(categoryRuleRepo)
	updateRuleUseCase := categoryrule.NewUpdateRuleUseCase(categoryRuleRepo, categoryRepo, ruleCache)
	deleteRuleUseCase := categoryrule.NewDeleteRuleUseCase(categoryRuleRepo, ruleCache)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker)

	statementController := controller.NewStatementController(parseCSVUseCase, parseOCRUseCase, importUseCase)
	billPaymentController := controller.NewBillPaymentController(
		createPaymentUseCase,
		listPaymentsUseCase,
		getPaymentUseCase,
		updatePaymentUseCase,
		deletePaymentUseCase,
	)
	categoryRuleController := controller.NewCategoryRuleController(
		createRuleUseCase,
		listRulesUseCase,
		updateRuleUseCase,
		deleteRuleUseCase,
	)

	// Create middleware
	importRateLimiter := middleware.NewRateLimiterWithConfig(cfg.Import.RateLimitAttempts, cfg.Import.RateLimitWindow)
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	r := router.NewRouter(
		healthController,
		statementController,
		billPaymentController,
		categoryRuleController,
		importRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
