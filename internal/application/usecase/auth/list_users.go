package auth

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// ListUsersUseCase lists every account.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
	}
}

// Execute returns all users in creation order.
func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, wrapStoreError("list users", err)
	}
	return users, nil
}
