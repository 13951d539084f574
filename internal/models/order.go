package models

import (
	"strings"
	"time"
)

// Order is written by the storefront checkout; the admin panel only reads it.
type Order struct {
	ID            string     `json:"_id"`
	LineItems     []LineItem `json:"line_items"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	City          string     `json:"city"`
	PostalCode    string     `json:"postalCode"`
	State         string     `json:"state"`
	StreetAddress string     `json:"streetAddress"`
	Country       string     `json:"country"`
	Paid          bool       `json:"paid"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type LineItem struct {
	Quantity  int       `json:"quantity"`
	PriceData PriceData `json:"price_data"`
}

type PriceData struct {
	Currency    string      `json:"currency"`
	UnitAmount  int64       `json:"unit_amount"`
	ProductData ProductData `json:"product_data"`
}

type ProductData struct {
	Name string `json:"name"`
}

// ShippingAddress joins the non-empty address parts in postal order.
func (o Order) ShippingAddress() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{o.StreetAddress, o.City, o.PostalCode, o.State, o.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// OrderLocation is a geocoded shipping address.
type OrderLocation struct {
	OrderID          string  `json:"orderId"`
	Address          string  `json:"address"`
	FormattedAddress string  `json:"formattedAddress"`
	PlaceID          string  `json:"placeId"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
}
