package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	apierrors "github.com/SirClappington/ecommerce-admin-backend/internal/errors"
	"github.com/SirClappington/ecommerce-admin-backend/internal/models"
	"github.com/SirClappington/ecommerce-admin-backend/internal/store"
)

var errGeocodingDisabled = errors.New("geocoding is not configured")

type Geocoder interface {
	Geocode(ctx context.Context, address string) (*models.OrderLocation, error)
}

type OrderService struct {
	store    store.OrderStore
	geocoder Geocoder
	logger   *zap.Logger
}

// NewOrderService wires the order listing. geocoder may be nil, in which
// case Locate reports an external error.
func NewOrderService(store store.OrderStore, geocoder Geocoder, logger *zap.Logger) *OrderService {
	return &OrderService{
		store:    store,
		geocoder: geocoder,
		logger:   logger,
	}
}

// List returns all orders, newest first.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, storeError("order", "", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// Locate geocodes the shipping address of one order.
func (s *OrderService) Locate(ctx context.Context, id string) (*models.OrderLocation, error) {
	if s.geocoder == nil {
		return nil, apierrors.NewExternalError("google maps", errGeocodingDisabled)
	}

	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, storeError("order", id, err)
	}
	address := order.ShippingAddress()
	if address == "" {
		return nil, apierrors.NewValidationError("order has no shipping address")
	}

	loc, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		s.logger.Warn("geocoding failed", zap.String("order_id", id), zap.Error(err))
		return nil, apierrors.NewExternalError("google maps", err)
	}
	loc.OrderID = order.ID
	return loc, nil
}
