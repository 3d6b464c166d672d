// Package router sets up the HTTP routing for the application.
package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/ulule/limiter/v3"

	"github.com/shop-ledger/backend/internal/domain/entity"
	"github.com/shop-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/shop-ledger/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups the HTTP handlers served by the router.
type Controllers struct {
	Health  *controller.HealthController
	Auth    *controller.AuthController
	User    *controller.UserController
	Product *controller.ProductController
	Expense *controller.ExpenseController
	Income  *controller.IncomeController
	Finance *controller.FinanceController
	Partner *controller.PartnerController
}

// Options holds the cross-cutting settings of the router.
type Options struct {
	Environment    string
	AllowedOrigins []string
	Logger         *slog.Logger
	// LoginLimiter throttles login attempts per client IP. Nil disables throttling.
	LoginLimiter *limiter.Limiter
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine         *gin.Engine
	controllers    Controllers
	authMiddleware *middleware.AuthMiddleware
	options        Options
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(controllers Controllers, authMiddleware *middleware.AuthMiddleware, options Options) *Router {
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	return &Router{
		controllers:    controllers,
		authMiddleware: authMiddleware,
		options:        options,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup() *gin.Engine {
	switch r.options.Environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test", "e2e":
		gin.SetMode(gin.TestMode)
	}

	registerValidators(r.options.Logger)

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestLogger(r.options.Logger))
	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     r.options.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// Engine returns the configured engine. Setup must be called first.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// registerValidators adds the custom binding validators to gin's engine.
func registerValidators(logger *slog.Logger) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		logger.Error("Failed to register notblank validator", "error", err)
	}
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	authenticate := r.authMiddleware.Authenticate()
	anyRole := r.authMiddleware.RequireRoles(entity.RoleOwner, entity.RoleStaff)
	ownerOnly := r.authMiddleware.RequireRoles(entity.RoleOwner)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(r.options.LoginLimiter), r.controllers.Auth.Login)
		auth.POST("/register", authenticate, ownerOnly, r.controllers.Auth.Register)
		auth.GET("/me", authenticate, r.controllers.User.Me)
		auth.PUT("/password", authenticate, r.controllers.User.ChangePassword)
		auth.GET("/users", authenticate, ownerOnly, r.controllers.User.List)
		auth.DELETE("/users/:id", authenticate, ownerOnly, r.controllers.User.Delete)
	}

	products := v1.Group("/products")
	products.Use(authenticate, anyRole)
	{
		products.GET("", r.controllers.Product.List)
		products.POST("", r.controllers.Product.Create)
		products.GET("/stats/summary", r.controllers.Product.Stats)
		products.GET("/search/query", r.controllers.Product.Search)
		products.GET("/:id", r.controllers.Product.Get)
		products.PUT("/:id", r.controllers.Product.Update)
		products.DELETE("/:id", r.controllers.Product.Delete)
	}

	expenses := v1.Group("/expenses")
	expenses.Use(authenticate, anyRole)
	{
		expenses.GET("", r.controllers.Expense.List)
		expenses.POST("", r.controllers.Expense.Create)
		expenses.GET("/stats/summary", r.controllers.Expense.Stats)
		expenses.GET("/categories/list", r.controllers.Expense.Categories)
		expenses.GET("/:id", r.controllers.Expense.Get)
		expenses.PUT("/:id", r.controllers.Expense.Update)
		expenses.DELETE("/:id", r.controllers.Expense.Delete)
	}

	finance := v1.Group("/finance")
	finance.Use(authenticate, anyRole)
	{
		finance.GET("/overview", r.controllers.Finance.Overview)
		finance.GET("/stats", r.controllers.Finance.Stats)
		finance.GET("/profit-loss", r.controllers.Finance.ProfitLoss)
		finance.GET("/cash-flow", r.controllers.Finance.CashFlow)

		finance.GET("/income", r.controllers.Income.List)
		finance.POST("/income", r.controllers.Income.Create)
		finance.GET("/income/:id", r.controllers.Income.Get)
		finance.PUT("/income/:id", r.controllers.Income.Update)
		finance.DELETE("/income/:id", r.controllers.Income.Delete)
	}

	partners := v1.Group("/partners")
	partners.Use(authenticate, ownerOnly)
	{
		partners.GET("", r.controllers.Partner.List)
		partners.POST("", r.controllers.Partner.Create)
		partners.GET("/profit-sharing", r.controllers.Partner.ProfitSharing)
		partners.GET("/stats/summary", r.controllers.Partner.Stats)
		partners.GET("/profit-history", r.controllers.Partner.ProfitHistory)
		partners.PUT("/:id", r.controllers.Partner.Update)
		partners.DELETE("/:id", r.controllers.Partner.Delete)
	}
}
