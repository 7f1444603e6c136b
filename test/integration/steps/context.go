// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/planner/config"
	"github.com/finance-tracker/planner/internal/infra/dependency"
	"github.com/finance-tracker/planner/internal/integration/adapters"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
	"github.com/finance-tracker/planner/test/integration/mock"
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
	userID      uuid.UUID
	accessToken string
	tokens      *adapters.TokenService

	// Backing services
	db    *mock.Db
	redis *mock.Redis
	cfg   *config.Config
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
		mock.NewDb(model.MigrationOrder())
		mock.NewRedis()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Auth.JWTSecret = testJWTSecret
		cfg.Auth.Issuer = ""
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.MaxRequests = 1000

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			userID:         uuid.New(),
			tokens:         adapters.NewTokenService(testJWTSecret, ""),
			db:             mock.NewDb(model.MigrationOrder()),
			redis:          mock.NewRedis(),
			cfg:            cfg,
		}
		if err := tc.db.Reset(); err != nil {
			return ctx, err
		}
		tc.redis.Clear()
		tc.startServer()

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerDataSteps(ctx)
	registerResponseSteps(ctx)
}

// startServer wires the application over the shared database and Redis,
// replacing a running server.
func (tc *TestContext) startServer() {
	if tc.server != nil {
		tc.server.Close()
	}
	injector := dependency.NewInjector(tc.cfg, tc.db.DbConn, tc.redis.Client)
	tc.server = httptest.NewServer(injector.Router.Setup(tc.cfg.Server.Environment))
}

func testContext(ctx context.Context) (*TestContext, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}
	return tc, nil
}
