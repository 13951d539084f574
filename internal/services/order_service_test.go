package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apierrors "github.com/SirClappington/ecommerce-admin-backend/internal/errors"
	"github.com/SirClappington/ecommerce-admin-backend/internal/models"
	"github.com/SirClappington/ecommerce-admin-backend/internal/store"
)

type fakeGeocoder struct {
	address string
	err     error
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) (*models.OrderLocation, error) {
	f.address = address
	if f.err != nil {
		return nil, f.err
	}
	return &models.OrderLocation{Address: address, FormattedAddress: "formatted", Lat: 1.5, Lng: 2.5}, nil
}

func TestOrderService_ListNewestFirst(t *testing.T) {
	db := store.NewMemoryStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	db.AddOrder(models.Order{Name: "old", CreatedAt: base})
	db.AddOrder(models.Order{Name: "new", CreatedAt: base.Add(48 * time.Hour)})
	db.AddOrder(models.Order{Name: "mid", CreatedAt: base.Add(24 * time.Hour)})

	svc := NewOrderService(db, nil, zap.NewNop())
	orders, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{orders[0].Name, orders[1].Name, orders[2].Name})
}

func TestOrderService_Locate(t *testing.T) {
	db := store.NewMemoryStore()
	order := db.AddOrder(models.Order{StreetAddress: "1 Main St", City: "Pune", PostalCode: "411001", Country: "India"})
	empty := db.AddOrder(models.Order{})
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		svc := NewOrderService(db, nil, zap.NewNop())
		_, err := svc.Locate(ctx, order.ID)
		assert.Equal(t, apierrors.ErrorTypeExternal, errorType(err))
	})

	t.Run("geocoded", func(t *testing.T) {
		geo := &fakeGeocoder{}
		svc := NewOrderService(db, geo, zap.NewNop())
		loc, err := svc.Locate(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, "1 Main St, Pune, 411001, India", geo.address)
		assert.Equal(t, order.ID, loc.OrderID)
		assert.Equal(t, 1.5, loc.Lat)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc := NewOrderService(db, &fakeGeocoder{}, zap.NewNop())
		_, err := svc.Locate(ctx, "missing")
		assert.Equal(t, apierrors.ErrorTypeNotFound, errorType(err))
	})

	t.Run("no address", func(t *testing.T) {
		svc := NewOrderService(db, &fakeGeocoder{}, zap.NewNop())
		_, err := svc.Locate(ctx, empty.ID)
		assert.Equal(t, apierrors.ErrorTypeValidation, errorType(err))
	})

	t.Run("maps failure", func(t *testing.T) {
		svc := NewOrderService(db, &fakeGeocoder{err: errors.New("quota")}, zap.NewNop())
		_, err := svc.Locate(ctx, order.ID)
		assert.Equal(t, apierrors.ErrorTypeExternal, errorType(err))
	})
}
