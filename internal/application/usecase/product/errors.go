package product

import (
	"errors"
	"fmt"

	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

func notFoundError() error {
	return domainerror.NewProductError(
		domainerror.ErrCodeProductNotFound,
		"Product not found",
		domainerror.ErrProductNotFound,
	)
}

// wrapStoreError maps repository failures to product errors, keeping typed domain errors intact.
func wrapStoreError(action string, err error) error {
	var coded domainerror.Coded
	if errors.As(err, &coded) {
		return err
	}
	if errors.Is(err, domainerror.ErrProductNotFound) {
		return notFoundError()
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
