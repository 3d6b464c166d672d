// Package setup contains first-run use cases.
package setup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// Default accounts and partners created on an empty database.
var (
	DefaultOwners   = []string{"owner1", "owner2"}
	DefaultPartners = []string{"Partner A", "Partner B"}
)

// SeedDefaultsInput represents the input for seeding.
type SeedDefaultsInput struct {
	OwnerPassword string
}

// SeedDefaultsOutput reports what was created.
type SeedDefaultsOutput struct {
	OwnersCreated   int
	PartnersCreated int
}

// SeedDefaultsUseCase creates the default owners and partners when their tables are empty.
type SeedDefaultsUseCase struct {
	userRepo        adapter.UserRepository
	partnerRepo     adapter.PartnerRepository
	passwordService adapter.PasswordService
}

// NewSeedDefaultsUseCase creates a new SeedDefaultsUseCase instance.
func NewSeedDefaultsUseCase(
	userRepo adapter.UserRepository,
	partnerRepo adapter.PartnerRepository,
	passwordService adapter.PasswordService,
) *SeedDefaultsUseCase {
	return &SeedDefaultsUseCase{
		userRepo:        userRepo,
		partnerRepo:     partnerRepo,
		passwordService: passwordService,
	}
}

// Execute seeds the defaults. Running it again on a populated database does nothing.
func (uc *SeedDefaultsUseCase) Execute(ctx context.Context, input SeedDefaultsInput) (*SeedDefaultsOutput, error) {
	out := &SeedDefaultsOutput{}

	users, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if users == 0 {
		hash, err := uc.passwordService.HashPassword(input.OwnerPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		for _, username := range DefaultOwners {
			owner := entity.NewUser(username, hash, entity.RoleOwner)
			if err := uc.userRepo.Create(ctx, owner, ownerSeedGuard); err != nil {
				return nil, fmt.Errorf("failed to seed owner %s: %w", username, err)
			}
			out.OwnersCreated++
		}
	}

	partners, err := uc.partnerRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count partners: %w", err)
	}
	if partners == 0 {
		share := entity.MaxTotalShare.Div(decimal.NewFromInt(int64(len(DefaultPartners))))
		for _, name := range DefaultPartners {
			p := entity.NewPartner(name, share)
			if err := uc.partnerRepo.Create(ctx, p, partnerSeedGuard(share)); err != nil {
				return nil, fmt.Errorf("failed to seed partner %s: %w", name, err)
			}
			out.PartnersCreated++
		}
	}

	if out.OwnersCreated > 0 || out.PartnersCreated > 0 {
		slog.InfoContext(ctx, "Default data seeded",
			"owners", out.OwnersCreated,
			"partners", out.PartnersCreated,
		)
	}
	return out, nil
}

func ownerSeedGuard(ownerCount int64, usernameTaken bool) error {
	if usernameTaken || ownerCount >= entity.MaxOwners {
		return fmt.Errorf("default owners conflict with existing accounts")
	}
	return nil
}

func partnerSeedGuard(share decimal.Decimal) adapter.ShareGuard {
	return func(othersTotal decimal.Decimal) error {
		if othersTotal.Add(share).GreaterThan(entity.MaxTotalShare) {
			return fmt.Errorf("default partners would exceed the share total")
		}
		return nil
	}
}
