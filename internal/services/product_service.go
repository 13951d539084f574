package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	apierrors "github.com/SirClappington/ecommerce-admin-backend/internal/errors"
	"github.com/SirClappington/ecommerce-admin-backend/internal/models"
	"github.com/SirClappington/ecommerce-admin-backend/internal/store"
)

// ProductInput is the payload of POST and PUT /api/products.
type ProductInput struct {
	ID          string            `json:"_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       models.Price      `json:"price"`
	Images      []string          `json:"images"`
	Category    string            `json:"category"`
	Properties  map[string]string `json:"properties"`
}

type ProductService struct {
	store  store.ProductStore
	logger *zap.Logger
	now    func() time.Time
}

func NewProductService(store store.ProductStore, logger *zap.Logger) *ProductService {
	return &ProductService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, storeError("product", "", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, storeError("product", id, err)
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	p, err := productFromInput(input)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now

	if err := s.store.CreateProduct(ctx, p); err != nil {
		return nil, storeError("product", "", err)
	}

	s.logger.Info("product created", zap.String("product_id", p.ID), zap.String("title", p.Title))
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, input ProductInput) (*models.Product, error) {
	if input.ID == "" {
		return nil, apierrors.NewValidationError("_id is required")
	}
	p, err := productFromInput(input)
	if err != nil {
		return nil, err
	}
	p.ID = input.ID
	p.UpdatedAt = s.now().UTC()

	if err := s.store.UpdateProduct(ctx, p); err != nil {
		return nil, storeError("product", input.ID, err)
	}

	s.logger.Info("product updated", zap.String("product_id", p.ID))
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apierrors.NewValidationError("_id is required")
	}
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return storeError("product", id, err)
	}

	s.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}

// productFromInput keeps images in submitted order and the property map
// as-is, including keys no longer offered by the category.
func productFromInput(input ProductInput) (*models.Product, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apierrors.NewValidationError("title is required")
	}
	if input.Price.IsNegative() {
		return nil, apierrors.NewValidationError("price must not be negative")
	}
	if !input.Price.Finite() {
		return nil, apierrors.NewValidationError("price is out of range")
	}

	images := make([]string, 0, len(input.Images))
	for _, link := range input.Images {
		if link != "" {
			images = append(images, link)
		}
	}
	props := make(map[string]string, len(input.Properties))
	for k, v := range input.Properties {
		props[k] = v
	}

	return &models.Product{
		Title:       title,
		Description: input.Description,
		Price:       input.Price,
		Images:      images,
		Category:    strings.TrimSpace(input.Category),
		Properties:  props,
	}, nil
}
