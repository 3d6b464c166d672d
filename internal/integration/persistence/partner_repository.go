package persistence

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
	"github.com/shop-ledger/backend/internal/integration/persistence/model"
)

// partnerRepository implements the adapter.PartnerRepository interface.
type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository creates a new partner repository instance.
func NewPartnerRepository(db *gorm.DB) adapter.PartnerRepository {
	return &partnerRepository{
		db: db,
	}
}

// Create inserts a partner if guard accepts the share total of the existing partners.
func (r *partnerRepository) Create(ctx context.Context, partner *entity.Partner, guard adapter.ShareGuard) error {
	return guardedTransaction(ctx, r.db, func(tx *gorm.DB) error {
		total, err := shareTotal(tx, 0)
		if err != nil {
			return err
		}
		if guard != nil {
			if err := guard(total); err != nil {
				return err
			}
		}

		partnerModel := model.PartnerFromEntity(partner)
		if err := tx.Create(partnerModel).Error; err != nil {
			return err
		}
		partner.ID = partnerModel.ID
		return nil
	})
}

// Update applies patch to the partner if guard accepts the share total of the other partners.
func (r *partnerRepository) Update(ctx context.Context, id int64, patch entity.PartnerPatch, guard adapter.ShareGuard) (*entity.Partner, error) {
	var updated *entity.Partner

	err := guardedTransaction(ctx, r.db, func(tx *gorm.DB) error {
		var partnerModel model.PartnerModel
		if err := tx.Where("id = ?", id).First(&partnerModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrPartnerNotFound
			}
			return err
		}

		others, err := shareTotal(tx, id)
		if err != nil {
			return err
		}
		if guard != nil {
			if err := guard(others); err != nil {
				return err
			}
		}

		partner := partnerModel.ToEntity()
		patch.Apply(partner)
		if err := partner.Validate(); err != nil {
			return err
		}

		saved := model.PartnerFromEntity(partner)
		if err := tx.Save(saved).Error; err != nil {
			return err
		}
		updated = saved.ToEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// shareTotal sums the share of every partner except excludeID (0 excludes none).
func shareTotal(tx *gorm.DB, excludeID int64) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	query := tx.Model(&model.PartnerModel{})
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Select("COALESCE(SUM(share_percentage), 0) as total").Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total.Round(model.DecimalScale), nil
}

// Delete removes a partner from the database.
func (r *partnerRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PartnerModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPartnerNotFound
	}
	return nil
}

// FindByID retrieves a partner by its ID.
func (r *partnerRepository) FindByID(ctx context.Context, id int64) (*entity.Partner, error) {
	var partnerModel model.PartnerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&partnerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPartnerNotFound
		}
		return nil, result.Error
	}
	return partnerModel.ToEntity(), nil
}

// List retrieves all partners, newest first.
func (r *partnerRepository) List(ctx context.Context) ([]*entity.Partner, error) {
	return r.find(r.db.WithContext(ctx).Order("created_at DESC, id DESC"))
}

// ListOldestFirst retrieves all partners in creation order.
func (r *partnerRepository) ListOldestFirst(ctx context.Context) ([]*entity.Partner, error) {
	return r.find(r.db.WithContext(ctx).Order("created_at ASC, id ASC"))
}

// ListByShare retrieves all partners, largest share first.
func (r *partnerRepository) ListByShare(ctx context.Context) ([]*entity.Partner, error) {
	return r.find(r.db.WithContext(ctx).Order("share_percentage DESC, id ASC"))
}

// Count returns the number of partners.
func (r *partnerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.PartnerModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *partnerRepository) find(query *gorm.DB) ([]*entity.Partner, error) {
	var partnerModels []model.PartnerModel
	if err := query.Find(&partnerModels).Error; err != nil {
		return nil, err
	}

	partners := make([]*entity.Partner, len(partnerModels))
	for i := range partnerModels {
		partners[i] = partnerModels[i].ToEntity()
	}
	return partners, nil
}
