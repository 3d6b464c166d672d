package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
	"github.com/shop-ledger/backend/internal/integration/adapters"
	"github.com/shop-ledger/backend/internal/integration/persistence"
	"github.com/shop-ledger/backend/internal/integration/persistence/testdb"
)

func newPasswordService() adapter.PasswordService {
	return adapters.NewPasswordService(bcrypt.MinCost)
}

func register(t *testing.T, db *gorm.DB, username string, role entity.Role) *entity.User {
	t.Helper()
	user, err := NewRegisterUserUseCase(persistence.NewUserRepository(db), newPasswordService()).Execute(
		context.Background(),
		RegisterUserInput{Username: username, Password: "secret123", Role: role},
	)
	require.NoError(t, err)
	return user
}

func TestRegisterUser_Validation(t *testing.T) {
	db := testdb.Open(t)
	uc := NewRegisterUserUseCase(persistence.NewUserRepository(db), newPasswordService())
	ctx := context.Background()

	tests := []struct {
		name   string
		input  RegisterUserInput
		target error
	}{
		{"short username", RegisterUserInput{Username: "ab", Password: "secret123", Role: entity.RoleStaff}, domainerror.ErrInvalidUsername},
		{"unknown role", RegisterUserInput{Username: "carol", Password: "secret123", Role: "admin"}, domainerror.ErrInvalidRole},
		{"weak password", RegisterUserInput{Username: "carol", Password: "123", Role: entity.RoleStaff}, domainerror.ErrWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))
		})
	}

	_, err := uc.Execute(ctx, RegisterUserInput{Username: " ", Password: "x", Role: entity.RoleStaff})
	assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	db := testdb.Open(t)
	register(t, db, "alice", entity.RoleStaff)

	_, err := NewRegisterUserUseCase(persistence.NewUserRepository(db), newPasswordService()).Execute(
		context.Background(),
		RegisterUserInput{Username: "alice", Password: "secret123", Role: entity.RoleStaff},
	)
	assert.True(t, errors.Is(err, domainerror.ErrUsernameAlreadyExists))
	assert.Equal(t, domainerror.KindConflict, domainerror.KindOf(err))
}

func TestRegisterUser_OwnerCapOnlyLimitsOwners(t *testing.T) {
	db := testdb.Open(t)
	register(t, db, "owner1", entity.RoleOwner)
	register(t, db, "owner2", entity.RoleOwner)
	uc := NewRegisterUserUseCase(persistence.NewUserRepository(db), newPasswordService())

	_, err := uc.Execute(context.Background(), RegisterUserInput{Username: "owner3", Password: "secret123", Role: entity.RoleOwner})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerror.ErrOwnerLimitReached))

	var coded domainerror.Coded
	require.True(t, errors.As(err, &coded))
	assert.Equal(t, "Maximum number of owners (2) already reached", coded.ErrorMessage())

	register(t, db, "staff1", entity.RoleStaff)
}

func TestRegisterUser_ConcurrentOwnersCapped(t *testing.T) {
	db := testdb.Open(t)
	uc := NewRegisterUserUseCase(persistence.NewUserRepository(db), newPasswordService())

	var (
		wg      sync.WaitGroup
		created atomic.Int32
	)
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), RegisterUserInput{
				Username: fmt.Sprintf("owner%d", i),
				Password: "secret123",
				Role:     entity.RoleOwner,
			})
			if err == nil {
				created.Add(1)
				return
			}
			assert.True(t, errors.Is(err, domainerror.ErrOwnerLimitReached), "unexpected error: %v", err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(entity.MaxOwners), created.Load())
	var owners int64
	require.NoError(t, db.Table("users").Where("role = ?", "owner").Count(&owners).Error)
	assert.Equal(t, int64(entity.MaxOwners), owners)
}

func TestLoginUser(t *testing.T) {
	db := testdb.Open(t)
	user := register(t, db, "alice", entity.RoleOwner)
	tokens := adapters.NewTokenService("test-secret", time.Hour, "shop-ledger")
	uc := NewLoginUserUseCase(persistence.NewUserRepository(db), newPasswordService(), tokens)
	ctx := context.Background()

	out, err := uc.Execute(ctx, LoginUserInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)

	claims, err := tokens.ValidateAccessToken(ctx, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleOwner, claims.Role)

	_, err = uc.Execute(ctx, LoginUserInput{Username: "alice", Password: "wrong-password"})
	assert.True(t, errors.Is(err, domainerror.ErrInvalidCredentials))

	_, err = uc.Execute(ctx, LoginUserInput{Username: "nobody", Password: "secret123"})
	assert.True(t, errors.Is(err, domainerror.ErrInvalidCredentials))
	assert.Equal(t, domainerror.KindUnauthorized, domainerror.KindOf(err))
}

func TestDeleteUser(t *testing.T) {
	db := testdb.Open(t)
	owner := register(t, db, "owner1", entity.RoleOwner)
	staff := register(t, db, "staff1", entity.RoleStaff)
	uc := NewDeleteUserUseCase(persistence.NewUserRepository(db))
	ctx := context.Background()

	err := uc.Execute(ctx, DeleteUserInput{ActorID: owner.ID, TargetID: owner.ID})
	assert.True(t, errors.Is(err, domainerror.ErrCannotDeleteSelf))

	require.NoError(t, uc.Execute(ctx, DeleteUserInput{ActorID: owner.ID, TargetID: staff.ID}))

	err = uc.Execute(ctx, DeleteUserInput{ActorID: owner.ID, TargetID: staff.ID})
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))
}

func TestChangePassword(t *testing.T) {
	db := testdb.Open(t)
	user := register(t, db, "alice", entity.RoleStaff)
	passwords := newPasswordService()
	uc := NewChangePasswordUseCase(persistence.NewUserRepository(db), passwords)
	ctx := context.Background()

	err := uc.Execute(ctx, ChangePasswordInput{UserID: user.ID, CurrentPassword: "nope", NewPassword: "another123"})
	assert.True(t, errors.Is(err, domainerror.ErrIncorrectPassword))

	err = uc.Execute(ctx, ChangePasswordInput{UserID: user.ID, CurrentPassword: "secret123", NewPassword: "abc"})
	assert.True(t, errors.Is(err, domainerror.ErrWeakPassword))

	require.NoError(t, uc.Execute(ctx, ChangePasswordInput{UserID: user.ID, CurrentPassword: "secret123", NewPassword: "another123"}))

	stored, err := persistence.NewUserRepository(db).FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NoError(t, passwords.VerifyPassword(stored.PasswordHash, "another123"))
}

func TestListUsers_OldestFirst(t *testing.T) {
	db := testdb.Open(t)
	register(t, db, "alice", entity.RoleOwner)
	register(t, db, "bobby", entity.RoleStaff)

	users, err := NewListUsersUseCase(persistence.NewUserRepository(db)).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bobby", users[1].Username)
}
