package partner

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// CreatePartnerInput represents the input for partner creation.
type CreatePartnerInput struct {
	Name            string
	SharePercentage decimal.Decimal
}

// CreatePartnerUseCase handles partner creation.
type CreatePartnerUseCase struct {
	partnerRepo adapter.PartnerRepository
}

// NewCreatePartnerUseCase creates a new CreatePartnerUseCase instance.
func NewCreatePartnerUseCase(partnerRepo adapter.PartnerRepository) *CreatePartnerUseCase {
	return &CreatePartnerUseCase{
		partnerRepo: partnerRepo,
	}
}

// Execute stores the partner unless the share total would exceed 100.
func (uc *CreatePartnerUseCase) Execute(ctx context.Context, input CreatePartnerInput) (*entity.Partner, error) {
	partner := entity.NewPartner(input.Name, input.SharePercentage)
	if err := partner.Validate(); err != nil {
		return nil, err
	}

	if err := uc.partnerRepo.Create(ctx, partner, shareGuard(partner.SharePercentage)); err != nil {
		return nil, wrapStoreError("create partner", err)
	}

	slog.InfoContext(ctx, "Partner created", "partner_id", partner.ID, "share_percentage", partner.SharePercentage.String())
	return partner, nil
}
