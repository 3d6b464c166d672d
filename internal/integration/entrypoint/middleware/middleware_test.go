package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/shop-ledger/backend/internal/domain/entity"
	"github.com/shop-ledger/backend/internal/integration/adapters"
	"github.com/shop-ledger/backend/internal/integration/entrypoint/dto"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(auth *AuthMiddleware, roles ...entity.Role) *gin.Engine {
	engine := gin.New()
	engine.GET("/protected", auth.Authenticate(), auth.RequireRoles(roles...), func(c *gin.Context) {
		id, _ := GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return engine
}

func tokenFor(t *testing.T, role entity.Role) string {
	t.Helper()
	token, err := adapters.NewTokenService(testSecret, time.Hour, "shop-ledger").GenerateAccessToken(
		context.Background(),
		&entity.User{ID: 7, Username: "alice", Role: role},
	)
	require.NoError(t, err)
	return token
}

func perform(engine *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	auth := NewAuthMiddleware(adapters.NewTokenService(testSecret, time.Hour, "shop-ledger"))
	engine := newTestEngine(auth, entity.RoleOwner, entity.RoleStaff)

	tests := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{"missing header", "", http.StatusUnauthorized, "AUTH-040003"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "AUTH-040002"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "AUTH-040003"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, "AUTH-040002"},
		{"valid token", "Bearer " + tokenFor(t, entity.RoleStaff), http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := perform(engine, tt.header)
			assert.Equal(t, tt.status, rec.Code)
			if tt.code == "" {
				return
			}
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestRequireRoles(t *testing.T) {
	auth := NewAuthMiddleware(adapters.NewTokenService(testSecret, time.Hour, "shop-ledger"))
	engine := newTestEngine(auth, entity.RoleOwner)

	rec := perform(engine, "Bearer "+tokenFor(t, entity.RoleStaff))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = perform(engine, "Bearer "+tokenFor(t, entity.RoleOwner))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":7}`, rec.Body.String())
}

func TestRateLimit(t *testing.T) {
	rate := limiter.Rate{Period: time.Minute, Limit: 2}
	engine := gin.New()
	engine.POST("/login", RateLimit(limiter.New(memory.NewStore(), rate)), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, statuses)
}

func TestRateLimit_NilLimiterDisabled(t *testing.T) {
	engine := gin.New()
	engine.POST("/login", RateLimit(nil), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestLogger(discardLogger()))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))
}
