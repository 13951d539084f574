package services

import (
	"errors"

	apierrors "github.com/SirClappington/ecommerce-admin-backend/internal/errors"
)

// errorType returns the APIError type carried by err, or "" when there is none.
func errorType(err error) apierrors.ErrorType {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type
	}
	return ""
}
