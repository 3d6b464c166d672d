// Package partner contains partner use cases and the share total rule.
package partner

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

// shareGuard rejects a write that would lift the share total above 100.
// It is evaluated by the repository inside the write transaction.
func shareGuard(share decimal.Decimal) adapter.ShareGuard {
	return func(othersTotal decimal.Decimal) error {
		if othersTotal.Add(share).GreaterThan(entity.MaxTotalShare) {
			return domainerror.NewPartnerError(
				domainerror.ErrCodeShareTotalExceeded,
				fmt.Sprintf("Total share percentage cannot exceed 100%%. Current total: %s%%", othersTotal.String()),
				domainerror.ErrShareTotalExceeded,
			)
		}
		return nil
	}
}

func notFoundError() error {
	return domainerror.NewPartnerError(
		domainerror.ErrCodePartnerNotFound,
		"Partner not found",
		domainerror.ErrPartnerNotFound,
	)
}

func wrapStoreError(action string, err error) error {
	var coded domainerror.Coded
	if errors.As(err, &coded) {
		return err
	}
	if errors.Is(err, domainerror.ErrPartnerNotFound) {
		return notFoundError()
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
