package services

import (
	"errors"
	"fmt"

	apierrors "github.com/SirClappington/ecommerce-admin-backend/internal/errors"
	"github.com/SirClappington/ecommerce-admin-backend/internal/store"
)

// storeError translates store sentinels into API errors.
func storeError(resource, id string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return apierrors.NewNotFoundError(resource, id)
	case errors.Is(err, store.ErrInvalidID):
		return apierrors.NewValidationError(err.Error())
	default:
		return fmt.Errorf("%s store: %w", resource, err)
	}
}
