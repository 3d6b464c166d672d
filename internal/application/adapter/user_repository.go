package adapter

import (
	"context"

	"github.com/shop-ledger/backend/internal/domain/entity"
)

// RegistrationGuard decides, inside the write transaction, whether a user may be created.
type RegistrationGuard func(ownerCount int64, usernameTaken bool) error

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create inserts a user if guard accepts the owner count and username availability,
	// evaluated atomically with the insert.
	Create(ctx context.Context, user *entity.User, guard RegistrationGuard) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// List retrieves all users in creation order.
	List(ctx context.Context) ([]*entity.User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// Delete removes a user from the database.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of users.
	Count(ctx context.Context) (int64, error)
}
