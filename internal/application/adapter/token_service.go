package adapter

import (
	"context"
	"time"

	"github.com/shop-ledger/backend/internal/domain/entity"
)

// TokenClaims represents the claims contained in an access token.
type TokenClaims struct {
	UserID    int64
	Username  string
	Role      entity.Role
	ExpiresAt time.Time
}

// TokenService defines the interface for access token operations.
type TokenService interface {
	// GenerateAccessToken issues a signed token for the user.
	GenerateAccessToken(ctx context.Context, user *entity.User) (string, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
