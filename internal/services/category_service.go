package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	apierrors "github.com/SirClappington/ecommerce-admin-backend/internal/errors"
	"github.com/SirClappington/ecommerce-admin-backend/internal/models"
	"github.com/SirClappington/ecommerce-admin-backend/internal/store"
)

// CategoryInput is the payload of POST and PUT /api/categories.
type CategoryInput struct {
	ID             string                      `json:"_id"`
	Name           string                      `json:"name"`
	ParentCategory string                      `json:"parentCategory"`
	Properties     []models.PropertyDefinition `json:"properties"`
}

type CategoryService struct {
	store  store.CategoryStore
	logger *zap.Logger
}

func NewCategoryService(store store.CategoryStore, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		store:  store,
		logger: logger,
	}
}

// List returns every category with its parent populated from the same
// snapshot. A parent that no longer exists is left as a bare id.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, storeError("category", "", err)
	}

	byID := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		if _, dup := byID[c.ID]; !dup {
			byID[c.ID] = c
		}
	}
	for i := range categories {
		if parent, ok := byID[categories[i].ParentID]; ok {
			categories[i].Parent = &parent
		}
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*models.Category, error) {
	cat, err := categoryFromInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateCategory(ctx, cat); err != nil {
		return nil, storeError("category", "", err)
	}

	s.logger.Info("category created", zap.String("category_id", cat.ID), zap.String("name", cat.Name))
	return cat, nil
}

func (s *CategoryService) Update(ctx context.Context, input CategoryInput) (*models.Category, error) {
	if input.ID == "" {
		return nil, apierrors.NewValidationError("_id is required")
	}
	cat, err := categoryFromInput(input)
	if err != nil {
		return nil, err
	}
	cat.ID = input.ID
	if err := s.store.UpdateCategory(ctx, cat); err != nil {
		return nil, storeError("category", input.ID, err)
	}

	s.logger.Info("category updated", zap.String("category_id", cat.ID))
	return cat, nil
}

// Delete removes a category. Products and child categories that still
// reference it are left untouched.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apierrors.NewValidationError("_id is required")
	}
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return storeError("category", id, err)
	}

	s.logger.Info("category deleted", zap.String("category_id", id))
	return nil
}

// Properties resolves the property definitions inherited by categoryID.
// Unknown categories resolve to an empty list.
func (s *CategoryService) Properties(ctx context.Context, categoryID string) ([]models.PropertyDefinition, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, storeError("category", categoryID, err)
	}

	chain, cyclic := CategoryChain(categoryID, categories)
	if cyclic {
		ids := make([]string, len(chain))
		for i, c := range chain {
			ids[i] = c.ID
		}
		s.logger.Warn("category parent chain is cyclic", zap.String("category_id", categoryID), zap.Strings("chain", ids))
	}

	return chainProperties(chain), nil
}

func categoryFromInput(input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apierrors.NewValidationError("name is required")
	}
	return &models.Category{
		Name:       name,
		ParentID:   strings.TrimSpace(input.ParentCategory),
		Properties: normalizeProperties(input.Properties),
	}, nil
}

// normalizeProperties drops unnamed definitions and blank values, keeping
// the submitted order.
func normalizeProperties(in []models.PropertyDefinition) []models.PropertyDefinition {
	out := make([]models.PropertyDefinition, 0, len(in))
	for _, p := range in {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		values := make([]string, 0, len(p.Values))
		for _, v := range p.Values {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		out = append(out, models.PropertyDefinition{Name: name, Values: values})
	}
	return out
}
