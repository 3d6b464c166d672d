// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/shop-ledger/backend/config"
	"github.com/shop-ledger/backend/internal/infra/db"
	"github.com/shop-ledger/backend/internal/infra/dependency"
	"github.com/shop-ledger/backend/internal/integration/persistence/model"
	"github.com/shop-ledger/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string

	// Values captured from earlier responses, substituted into {{name}} placeholders.
	vars map[string]string

	db  *mock.Db
	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// testConfig mirrors the production defaults with a cheap bcrypt cost and the
// rate limiter backed by the in-process redis.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Redis:  config.RedisConfig{URL: mock.NewRedisURL()},
		JWT: config.JWTConfig{
			Secret:     testJWTSecret,
			Expiry:     time.Hour,
			Issuer:     "shop-ledger",
			BcryptCost: 4,
		},
		RateLimit: config.RateLimitConfig{Enabled: true, Rate: "5-M"},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		Seed:      config.SeedConfig{Enabled: false},
	}
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			vars:           make(map[string]string),
			cfg:            testConfig(),
			db: mock.NewDb(map[string]any{
				"products": &model.ProductModel{},
				"expenses": &model.ExpenseModel{},
				"income":   &model.IncomeModel{},
				"partners": &model.PartnerModel{},
				"users":    &model.UserModel{},
			}),
		}

		if err := tc.db.ClearDB(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(); err != nil {
			return ctx, err
		}

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		injector, err := dependency.NewInjector(tc.cfg, db.Wrap(tc.db.DbConn), logger)
		if err != nil {
			return ctx, fmt.Errorf("failed to wire test server: %w", err)
		}
		tc.server = httptest.NewServer(injector.Router.Setup())

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerSetupSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerDBSteps(ctx)
}
