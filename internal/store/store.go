// Package store persists categories, products and orders. Each driver keeps
// the collection names of the original admin database: categories, products
// and orders.
package store

import (
	"context"
	"errors"

	"github.com/SirClappington/ecommerce-admin-backend/internal/models"
)

var (
	ErrNotFound  = errors.New("store: document not found")
	ErrInvalidID = errors.New("store: invalid document id")
)

const (
	categoriesCollection = "categories"
	productsCollection   = "products"
	ordersCollection     = "orders"
)

type CategoryStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	UpdateCategory(ctx context.Context, c *models.Category) error
	DeleteCategory(ctx context.Context, id string) error
}

type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// OrderStore lists orders newest first.
type OrderStore interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
}

type Store interface {
	CategoryStore
	ProductStore
	OrderStore
	Close(ctx context.Context) error
}

// Documents written before images or properties existed decode as nil;
// products always carry [] and {}.
func emptyImages(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}

func emptyProperties(props map[string]string) map[string]string {
	if props == nil {
		return map[string]string{}
	}
	return props
}
