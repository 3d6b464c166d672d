package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Username string
	Password string
	Role     entity.Role
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute creates the account. The owner cap and username uniqueness are checked
// in the same transaction as the insert.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" || input.Role == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"Username, password, and role are required",
			nil,
		)
	}
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateRole(input.Role); err != nil {
		return nil, err
	}
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"Password must be at least 6 characters",
			domainerror.ErrWeakPassword,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(username, passwordHash, input.Role)
	if err := uc.userRepo.Create(ctx, user, registrationGuard(user.Role)); err != nil {
		return nil, wrapStoreError("create user", err)
	}

	slog.InfoContext(ctx, "User registered", "user_id", user.ID, "role", string(user.Role))
	return user, nil
}

// registrationGuard rejects taken usernames and a third owner.
func registrationGuard(role entity.Role) adapter.RegistrationGuard {
	return func(ownerCount int64, usernameTaken bool) error {
		if usernameTaken {
			return domainerror.NewAuthError(
				domainerror.ErrCodeUsernameExists,
				"Username already exists",
				domainerror.ErrUsernameAlreadyExists,
			)
		}
		if role == entity.RoleOwner && ownerCount >= entity.MaxOwners {
			return domainerror.NewAuthError(
				domainerror.ErrCodeOwnerLimitReached,
				fmt.Sprintf("Maximum number of owners (%d) already reached", entity.MaxOwners),
				domainerror.ErrOwnerLimitReached,
			)
		}
		return nil
	}
}
