// Package auth contains authentication and user management use cases.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

// MinUsernameLength is the shortest accepted username.
const MinUsernameLength = 3

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"Invalid credentials",
		domainerror.ErrInvalidCredentials,
	)
}

func userNotFound() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeUserNotFound,
		"User not found",
		domainerror.ErrUserNotFound,
	)
}

func wrapStoreError(action string, err error) error {
	var coded domainerror.Coded
	if errors.As(err, &coded) {
		return err
	}
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return userNotFound()
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func validateUsername(username string) error {
	if len(strings.TrimSpace(username)) < MinUsernameLength {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidUsername,
			fmt.Sprintf("Username must be at least %d characters", MinUsernameLength),
			domainerror.ErrInvalidUsername,
		)
	}
	return nil
}

func validateRole(role entity.Role) error {
	if !role.IsValid() {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidRole,
			"Role must be either owner or staff",
			domainerror.ErrInvalidRole,
		)
	}
	return nil
}
