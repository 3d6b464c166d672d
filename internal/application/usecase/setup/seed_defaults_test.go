package setup

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shop-ledger/backend/internal/domain/entity"
	"github.com/shop-ledger/backend/internal/integration/adapters"
	"github.com/shop-ledger/backend/internal/integration/persistence"
	"github.com/shop-ledger/backend/internal/integration/persistence/testdb"
)

func TestSeedDefaults_Idempotent(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	passwords := adapters.NewPasswordService(bcrypt.MinCost)
	userRepo := persistence.NewUserRepository(db)
	partnerRepo := persistence.NewPartnerRepository(db)
	uc := NewSeedDefaultsUseCase(userRepo, partnerRepo, passwords)

	out, err := uc.Execute(ctx, SeedDefaultsInput{OwnerPassword: "changeme"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.OwnersCreated)
	assert.Equal(t, 2, out.PartnersCreated)

	again, err := uc.Execute(ctx, SeedDefaultsInput{OwnerPassword: "changeme"})
	require.NoError(t, err)
	assert.Zero(t, again.OwnersCreated)
	assert.Zero(t, again.PartnersCreated)

	users, err := userRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Equal(t, entity.RoleOwner, u.Role)
		assert.NoError(t, passwords.VerifyPassword(u.PasswordHash, "changeme"))
	}

	partners, err := partnerRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, partners, 2)
	for _, p := range partners {
		assert.True(t, decimal.NewFromInt(50).Equal(p.SharePercentage))
	}
}

func TestSeedDefaults_SkipsPopulatedTables(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	partnerRepo := persistence.NewPartnerRepository(db)
	require.NoError(t, partnerRepo.Create(ctx, entity.NewPartner("Existing", entity.MaxTotalShare), nil))

	uc := NewSeedDefaultsUseCase(persistence.NewUserRepository(db), partnerRepo, adapters.NewPasswordService(bcrypt.MinCost))
	out, err := uc.Execute(ctx, SeedDefaultsInput{OwnerPassword: "changeme"})
	require.NoError(t, err)

	assert.Equal(t, 2, out.OwnersCreated)
	assert.Zero(t, out.PartnersCreated)
}
