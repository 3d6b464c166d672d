// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"

	"github.com/shop-ledger/backend/config"
	"github.com/shop-ledger/backend/internal/application/usecase/auth"
	"github.com/shop-ledger/backend/internal/application/usecase/finance"
	"github.com/shop-ledger/backend/internal/application/usecase/ledger"
	"github.com/shop-ledger/backend/internal/application/usecase/partner"
	"github.com/shop-ledger/backend/internal/application/usecase/product"
	"github.com/shop-ledger/backend/internal/application/usecase/setup"
	"github.com/shop-ledger/backend/internal/infra/db"
	"github.com/shop-ledger/backend/internal/infra/ratelimit"
	"github.com/shop-ledger/backend/internal/infra/server/router"
	"github.com/shop-ledger/backend/internal/integration/adapters"
	"github.com/shop-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/shop-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/shop-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	Database *db.Database
	Router   *router.Router
	Seed     *setup.SeedDefaultsUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, database *db.Database, logger *slog.Logger) (*Injector, error) {
	gormDB := database.DB()

	// Create repositories
	userRepo := persistence.NewUserRepository(gormDB)
	productRepo := persistence.NewProductRepository(gormDB)
	expenseRepo := persistence.NewExpenseRepository(gormDB)
	incomeRepo := persistence.NewIncomeRepository(gormDB)
	partnerRepo := persistence.NewPartnerRepository(gormDB)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.JWT.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService)
	currentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)
	listUsersUseCase := auth.NewListUsersUseCase(userRepo)
	deleteUserUseCase := auth.NewDeleteUserUseCase(userRepo)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)

	// Create product use cases
	createProductUseCase := product.NewCreateProductUseCase(productRepo)
	updateProductUseCase := product.NewUpdateProductUseCase(productRepo)
	deleteProductUseCase := product.NewDeleteProductUseCase(productRepo)
	getProductUseCase := product.NewGetProductUseCase(productRepo)
	listProductsUseCase := product.NewListProductsUseCase(productRepo)
	productStatsUseCase := product.NewGetProductStatsUseCase(productRepo)

	// Create ledger use cases
	createExpenseUseCase := ledger.NewCreateExpenseUseCase(expenseRepo, productRepo)
	updateExpenseUseCase := ledger.NewUpdateExpenseUseCase(expenseRepo, productRepo)
	deleteExpenseUseCase := ledger.NewDeleteExpenseUseCase(expenseRepo)
	getExpenseUseCase := ledger.NewGetExpenseUseCase(expenseRepo)
	listExpensesUseCase := ledger.NewListExpensesUseCase(expenseRepo)
	expenseStatsUseCase := ledger.NewGetExpenseStatsUseCase(expenseRepo)
	listCategoriesUseCase := ledger.NewListCategoriesUseCase(expenseRepo)

	createIncomeUseCase := ledger.NewCreateIncomeUseCase(incomeRepo, productRepo)
	updateIncomeUseCase := ledger.NewUpdateIncomeUseCase(incomeRepo, productRepo)
	deleteIncomeUseCase := ledger.NewDeleteIncomeUseCase(incomeRepo)
	getIncomeUseCase := ledger.NewGetIncomeUseCase(incomeRepo)
	listIncomeUseCase := ledger.NewListIncomeUseCase(incomeRepo)

	// Create finance use cases
	overviewUseCase := finance.NewGetOverviewUseCase(incomeRepo, expenseRepo, partnerRepo)
	financeStatsUseCase := finance.NewGetStatsUseCase(incomeRepo, expenseRepo)
	profitLossUseCase := finance.NewGetProfitLossUseCase(incomeRepo, expenseRepo)
	cashFlowUseCase := finance.NewGetCashFlowUseCase(incomeRepo, expenseRepo)

	// Create partner use cases
	createPartnerUseCase := partner.NewCreatePartnerUseCase(partnerRepo)
	updatePartnerUseCase := partner.NewUpdatePartnerUseCase(partnerRepo)
	deletePartnerUseCase := partner.NewDeletePartnerUseCase(partnerRepo)
	listPartnersUseCase := partner.NewListPartnersUseCase(partnerRepo)
	partnerStatsUseCase := partner.NewGetPartnerStatsUseCase(partnerRepo, incomeRepo, expenseRepo)
	profitHistoryUseCase := partner.NewGetProfitHistoryUseCase(partnerRepo, incomeRepo, expenseRepo)

	// Create controllers
	controllers := router.Controllers{
		Health: controller.NewHealthController(database.HealthCheck),
		Auth:   controller.NewAuthController(loginUseCase, registerUseCase),
		User: controller.NewUserController(
			currentUserUseCase,
			listUsersUseCase,
			deleteUserUseCase,
			changePasswordUseCase,
		),
		Product: controller.NewProductController(
			createProductUseCase,
			updateProductUseCase,
			deleteProductUseCase,
			getProductUseCase,
			listProductsUseCase,
			productStatsUseCase,
		),
		Expense: controller.NewExpenseController(
			createExpenseUseCase,
			updateExpenseUseCase,
			deleteExpenseUseCase,
			getExpenseUseCase,
			listExpensesUseCase,
			expenseStatsUseCase,
			listCategoriesUseCase,
		),
		Income: controller.NewIncomeController(
			createIncomeUseCase,
			updateIncomeUseCase,
			deleteIncomeUseCase,
			getIncomeUseCase,
			listIncomeUseCase,
		),
		Finance: controller.NewFinanceController(
			overviewUseCase,
			financeStatsUseCase,
			profitLossUseCase,
			cashFlowUseCase,
		),
		Partner: controller.NewPartnerController(
			createPartnerUseCase,
			updatePartnerUseCase,
			deletePartnerUseCase,
			listPartnersUseCase,
			partnerStatsUseCase,
			profitHistoryUseCase,
			overviewUseCase,
		),
	}

	// Create middleware
	loginLimiter, err := ratelimit.NewLoginLimiter(cfg.RateLimit, cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to create login rate limiter: %w", err)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(controllers, authMiddleware, router.Options{
		Environment:    cfg.Server.Environment,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger,
		LoginLimiter:   loginLimiter,
	})

	return &Injector{
		Config:   cfg,
		Database: database,
		Router:   r,
		Seed:     setup.NewSeedDefaultsUseCase(userRepo, partnerRepo, passwordService),
	}, nil
}
