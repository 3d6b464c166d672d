package auth

import (
	"context"
	"log/slog"

	"github.com/shop-ledger/backend/internal/application/adapter"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

// DeleteUserInput represents the input for user deletion.
type DeleteUserInput struct {
	ActorID  int64
	TargetID int64
}

// DeleteUserUseCase handles account removal.
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(userRepo adapter.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
	}
}

// Execute removes the target account. Nobody may delete their own account.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, input DeleteUserInput) error {
	if input.ActorID == input.TargetID {
		return domainerror.NewAuthError(
			domainerror.ErrCodeCannotDeleteSelf,
			"Cannot delete your own account",
			domainerror.ErrCannotDeleteSelf,
		)
	}

	if err := uc.userRepo.Delete(ctx, input.TargetID); err != nil {
		return wrapStoreError("delete user", err)
	}

	slog.InfoContext(ctx, "User deleted", "user_id", input.TargetID, "deleted_by", input.ActorID)
	return nil
}
