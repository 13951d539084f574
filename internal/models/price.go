package models

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Price is a product price. Admin forms post it either as a JSON number or
// as a numeric string; it is always written back as a number.
type Price struct {
	decimal.Decimal
}

func NewPrice(value string) (Price, error) {
	if value == "" {
		return Price{}, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", value, err)
	}
	return Price{Decimal: d}, nil
}

// PriceFromFloat converts a stored price. NaN and infinities read as zero.
func PriceFromFloat(f float64) Price {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Price{}
	}
	return Price{Decimal: decimal.NewFromFloat(f)}
}

// Finite reports whether the price survives conversion to a float64.
func (p Price) Finite() bool {
	f := p.InexactFloat64()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*p = Price{}
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid price %s: %w", raw, err)
		}
		raw = unquoted
	}
	parsed, err := NewPrice(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
