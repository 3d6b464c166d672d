package partner

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// ListPartnersUseCase lists partners.
type ListPartnersUseCase struct {
	partnerRepo adapter.PartnerRepository
}

// NewListPartnersUseCase creates a new ListPartnersUseCase instance.
func NewListPartnersUseCase(partnerRepo adapter.PartnerRepository) *ListPartnersUseCase {
	return &ListPartnersUseCase{
		partnerRepo: partnerRepo,
	}
}

// Execute returns every partner, newest first.
func (uc *ListPartnersUseCase) Execute(ctx context.Context) ([]*entity.Partner, error) {
	partners, err := uc.partnerRepo.List(ctx)
	if err != nil {
		return nil, wrapStoreError("list partners", err)
	}
	return partners, nil
}
