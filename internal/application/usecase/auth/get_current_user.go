package auth

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// GetCurrentUserUseCase loads the authenticated user.
type GetCurrentUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetCurrentUserUseCase creates a new GetCurrentUserUseCase instance.
func NewGetCurrentUserUseCase(userRepo adapter.UserRepository) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
	}
}

// Execute returns the user with the given ID.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, wrapStoreError("find user", err)
	}
	return user, nil
}
