package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shop-ledger/backend/internal/domain/entity"
)

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	hash, err := svc.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.NoError(t, svc.VerifyPassword(hash, "secret123"))
	assert.Error(t, svc.VerifyPassword(hash, "secret124"))

	assert.NoError(t, svc.ValidatePasswordStrength("123456"))
	assert.Error(t, svc.ValidatePasswordStrength("12345"))
}

func TestPasswordService_OutOfRangeCostFallsBack(t *testing.T) {
	svc := NewPasswordService(99).(*passwordService)
	assert.Equal(t, DefaultBcryptCost, svc.cost)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, "shop-ledger")
	user := &entity.User{ID: 42, Username: "alice", Role: entity.RoleStaff}

	token, err := svc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, entity.RoleStaff, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestTokenService_Rejects(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, "shop-ledger")
	ctx := context.Background()
	user := &entity.User{ID: 1, Username: "alice", Role: entity.RoleOwner}

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewTokenService("other-secret", time.Hour, "shop-ledger").GenerateAccessToken(ctx, user)
		require.NoError(t, err)
		_, err = svc.ValidateAccessToken(ctx, token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := NewTokenService("test-secret", time.Hour, "elsewhere").GenerateAccessToken(ctx, user)
		require.NoError(t, err)
		_, err = svc.ValidateAccessToken(ctx, token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := NewTokenService("test-secret", -time.Minute, "shop-ledger").GenerateAccessToken(ctx, user)
		require.NoError(t, err)
		_, err = svc.ValidateAccessToken(ctx, token)
		assert.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := CustomClaims{
			UserID: 1,
			Role:   "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "shop-ledger",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = svc.ValidateAccessToken(ctx, token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(ctx, "not-a-token")
		assert.Error(t, err)
	})
}
