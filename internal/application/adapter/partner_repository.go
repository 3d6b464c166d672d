package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/domain/entity"
)

// ShareGuard decides, inside the write transaction, whether a partner write may proceed.
// othersTotal is the sum of every other partner's share at that moment.
type ShareGuard func(othersTotal decimal.Decimal) error

// PartnerRepository defines the interface for partner persistence operations.
// Create and Update evaluate the guard and write atomically, so the share sum
// cannot be pushed over the limit by concurrent writers.
type PartnerRepository interface {
	// Create inserts a partner if guard accepts the current share total.
	Create(ctx context.Context, partner *entity.Partner, guard ShareGuard) error

	// Update loads the partner, applies patch and saves it if guard accepts the total of the others.
	Update(ctx context.Context, id int64, patch entity.PartnerPatch, guard ShareGuard) (*entity.Partner, error)

	// Delete removes a partner from the database.
	Delete(ctx context.Context, id int64) error

	// FindByID retrieves a partner by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Partner, error)

	// List retrieves all partners, newest first.
	List(ctx context.Context) ([]*entity.Partner, error)

	// ListOldestFirst retrieves all partners in creation order.
	ListOldestFirst(ctx context.Context) ([]*entity.Partner, error)

	// ListByShare retrieves all partners, largest share first.
	ListByShare(ctx context.Context) ([]*entity.Partner, error)

	// Count returns the number of partners.
	Count(ctx context.Context) (int64, error)
}
