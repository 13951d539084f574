package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SirClappington/ecommerce-admin-backend/internal/models"
)

func TestMemoryStore_CategoriesAreCopied(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	cat := &models.Category{Name: "Shirts", Properties: []models.PropertyDefinition{{Name: "size", Values: []string{"S"}}}}
	require.NoError(t, s.CreateCategory(ctx, cat))
	require.NotEmpty(t, cat.ID)

	cat.Properties[0].Values[0] = "mutated"

	list, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "S", list[0].Properties[0].Values[0])
}

func TestMemoryStore_NotFound(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.ErrorIs(t, s.UpdateCategory(ctx, &models.Category{ID: "x"}), ErrNotFound)
	assert.ErrorIs(t, s.UpdateProduct(ctx, &models.Product{ID: "x"}), ErrNotFound)
	_, err := s.GetProduct(ctx, "x")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetOrder(ctx, "x")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.DeleteCategory(ctx, "x"))
	assert.NoError(t, s.DeleteProduct(ctx, "x"))
}

func TestMemoryStore_DeleteKeepsInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		p := &models.Product{Title: title}
		require.NoError(t, s.CreateProduct(ctx, p))
		ids = append(ids, p.ID)
	}
	require.NoError(t, s.DeleteProduct(ctx, ids[1]))

	list, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Title)
	assert.Equal(t, "c", list[1].Title)
}
