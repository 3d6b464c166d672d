package partner

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
)

// DeletePartnerUseCase handles partner deletion.
type DeletePartnerUseCase struct {
	partnerRepo adapter.PartnerRepository
}

// NewDeletePartnerUseCase creates a new DeletePartnerUseCase instance.
func NewDeletePartnerUseCase(partnerRepo adapter.PartnerRepository) *DeletePartnerUseCase {
	return &DeletePartnerUseCase{
		partnerRepo: partnerRepo,
	}
}

// Execute removes the partner.
func (uc *DeletePartnerUseCase) Execute(ctx context.Context, partnerID int64) error {
	if err := uc.partnerRepo.Delete(ctx, partnerID); err != nil {
		return wrapStoreError("delete partner", err)
	}
	return nil
}
