package finance

import (
	"errors"
	"fmt"

	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

// DefaultMonths is the look-back window used when the caller gives none.
const DefaultMonths = 6

// MaxMonths bounds the look-back window.
const MaxMonths = 120

// NormalizeMonths applies the default window and rejects values outside 1..MaxMonths.
func NormalizeMonths(months int) (int, error) {
	if months == 0 {
		return DefaultMonths, nil
	}
	if months < 1 || months > MaxMonths {
		return 0, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidMonths,
			fmt.Sprintf("months must be between 1 and %d", MaxMonths),
			domainerror.ErrInvalidMonths,
		)
	}
	return months, nil
}

func wrapStoreError(action string, err error) error {
	var coded domainerror.Coded
	if errors.As(err, &coded) {
		return err
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
