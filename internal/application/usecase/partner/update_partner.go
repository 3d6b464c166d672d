package partner

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// UpdatePartnerInput represents the input for a partial partner update.
type UpdatePartnerInput struct {
	PartnerID int64
	Patch     entity.PartnerPatch
}

// UpdatePartnerUseCase handles partner updates.
type UpdatePartnerUseCase struct {
	partnerRepo adapter.PartnerRepository
}

// NewUpdatePartnerUseCase creates a new UpdatePartnerUseCase instance.
func NewUpdatePartnerUseCase(partnerRepo adapter.PartnerRepository) *UpdatePartnerUseCase {
	return &UpdatePartnerUseCase{
		partnerRepo: partnerRepo,
	}
}

// Execute applies the supplied fields. A new share is checked against the
// total of every other partner.
func (uc *UpdatePartnerUseCase) Execute(ctx context.Context, input UpdatePartnerInput) (*entity.Partner, error) {
	candidate := entity.Partner{Name: "-", SharePercentage: decimal.Zero}
	input.Patch.Apply(&candidate)
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	var guard adapter.ShareGuard
	if input.Patch.SharePercentage != nil {
		guard = shareGuard(candidate.SharePercentage)
	}

	partner, err := uc.partnerRepo.Update(ctx, input.PartnerID, input.Patch, guard)
	if err != nil {
		return nil, wrapStoreError("update partner", err)
	}
	return partner, nil
}
