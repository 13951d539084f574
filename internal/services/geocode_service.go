package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"github.com/SirClappington/ecommerce-admin-backend/internal/models"
)

var errNoGeocodeResult = errors.New("address could not be geocoded")

// MapsGeocoder resolves shipping addresses with the Google Maps Geocoding API.
type MapsGeocoder struct {
	Client *maps.Client
}

func NewMapsGeocoder(apiKey string) (*MapsGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Maps client: %w", err)
	}
	return &MapsGeocoder{Client: client}, nil
}

func (g *MapsGeocoder) Geocode(ctx context.Context, address string) (*models.OrderLocation, error) {
	var loc *models.OrderLocation
	err := retry(ctx, func() error {
		results, err := g.Client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return errNoGeocodeResult
		}
		best := results[0]
		loc = &models.OrderLocation{
			Address:          address,
			FormattedAddress: best.FormattedAddress,
			PlaceID:          best.PlaceID,
			Lat:              best.Geometry.Location.Lat,
			Lng:              best.Geometry.Location.Lng,
		}
		return nil
	})
	return loc, err
}

// retry gives transient Maps failures two more attempts with a linear
// backoff. An empty result is final.
func retry(ctx context.Context, operation func() error) error {
	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err := operation()
		if err == nil || errors.Is(err, errNoGeocodeResult) {
			return err
		}
		if i == maxRetries-1 {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(i+1) * time.Second):
		}
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
