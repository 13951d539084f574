package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apierrors "github.com/SirClappington/ecommerce-admin-backend/internal/errors"
	"github.com/SirClappington/ecommerce-admin-backend/internal/models"
	"github.com/SirClappington/ecommerce-admin-backend/internal/store"
)

func newCategoryService(t *testing.T) (*CategoryService, *store.MemoryStore) {
	t.Helper()
	db := store.NewMemoryStore()
	return NewCategoryService(db, zap.NewNop()), db
}

func TestCategoryService_CreateNormalizesInput(t *testing.T) {
	svc, _ := newCategoryService(t)

	cat, err := svc.Create(context.Background(), CategoryInput{
		Name: "  Shirts ",
		Properties: []models.PropertyDefinition{
			{Name: "size", Values: []string{"S", " M ", ""}},
			{Name: "  ", Values: []string{"ignored"}},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, cat.ID)
	assert.Equal(t, "Shirts", cat.Name)
	assert.Empty(t, cat.ParentID)
	assert.Equal(t, []models.PropertyDefinition{{Name: "size", Values: []string{"S", "M"}}}, cat.Properties)
}

func TestCategoryService_CreateRequiresName(t *testing.T) {
	svc, _ := newCategoryService(t)

	_, err := svc.Create(context.Background(), CategoryInput{Name: " "})

	assert.Equal(t, apierrors.ErrorTypeValidation, errorType(err))
}

func TestCategoryService_ListPopulatesParent(t *testing.T) {
	svc, _ := newCategoryService(t)
	ctx := context.Background()

	parent, err := svc.Create(ctx, CategoryInput{Name: "Clothing"})
	require.NoError(t, err)
	child, err := svc.Create(ctx, CategoryInput{Name: "Shirts", ParentCategory: parent.ID})
	require.NoError(t, err)
	orphan, err := svc.Create(ctx, CategoryInput{Name: "Orphan", ParentCategory: "gone"})
	require.NoError(t, err)

	categories, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)

	byID := map[string]models.Category{}
	for _, c := range categories {
		byID[c.ID] = c
	}
	assert.Nil(t, byID[parent.ID].Parent)
	require.NotNil(t, byID[child.ID].Parent)
	assert.Equal(t, "Clothing", byID[child.ID].Parent.Name)
	assert.Nil(t, byID[orphan.ID].Parent)
	assert.Equal(t, "gone", byID[orphan.ID].ParentID)
}

func TestCategoryService_UpdateUnknownIsNotFound(t *testing.T) {
	svc, _ := newCategoryService(t)

	_, err := svc.Update(context.Background(), CategoryInput{ID: "nope", Name: "x"})

	assert.Equal(t, apierrors.ErrorTypeNotFound, errorType(err))
}

func TestCategoryService_UpdateClearsParent(t *testing.T) {
	svc, db := newCategoryService(t)
	ctx := context.Background()

	parent, err := svc.Create(ctx, CategoryInput{Name: "Clothing"})
	require.NoError(t, err)
	child, err := svc.Create(ctx, CategoryInput{Name: "Shirts", ParentCategory: parent.ID})
	require.NoError(t, err)

	_, err = svc.Update(ctx, CategoryInput{ID: child.ID, Name: "Shirts"})
	require.NoError(t, err)

	stored, err := db.ListCategories(ctx)
	require.NoError(t, err)
	for _, c := range stored {
		assert.Empty(t, c.ParentID, c.Name)
	}
}

func TestCategoryService_DeleteLeavesDanglingReferences(t *testing.T) {
	svc, _ := newCategoryService(t)
	ctx := context.Background()

	parent, err := svc.Create(ctx, CategoryInput{Name: "Clothing", Properties: []models.PropertyDefinition{{Name: "brand", Values: []string{"x"}}}})
	require.NoError(t, err)
	child, err := svc.Create(ctx, CategoryInput{Name: "Shirts", ParentCategory: parent.ID, Properties: []models.PropertyDefinition{{Name: "size", Values: []string{"S"}}}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, parent.ID))
	require.NoError(t, svc.Delete(ctx, parent.ID))

	props, err := svc.Properties(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.PropertyDefinition{{Name: "size", Values: []string{"S"}}}, props)
}

func TestCategoryService_DeleteRequiresID(t *testing.T) {
	svc, _ := newCategoryService(t)

	err := svc.Delete(context.Background(), "")

	assert.Equal(t, apierrors.ErrorTypeValidation, errorType(err))
}

func TestCategoryService_PropertiesFollowsChain(t *testing.T) {
	svc, _ := newCategoryService(t)
	ctx := context.Background()

	shirts, err := svc.Create(ctx, CategoryInput{Name: "Shirts", Properties: []models.PropertyDefinition{{Name: "size", Values: []string{"S", "M", "L"}}}})
	require.NoError(t, err)
	tees, err := svc.Create(ctx, CategoryInput{Name: "T-Shirts", ParentCategory: shirts.ID, Properties: []models.PropertyDefinition{{Name: "color", Values: []string{"red", "blue"}}}})
	require.NoError(t, err)

	props, err := svc.Properties(ctx, tees.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.PropertyDefinition{
		{Name: "color", Values: []string{"red", "blue"}},
		{Name: "size", Values: []string{"S", "M", "L"}},
	}, props)

	props, err = svc.Properties(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestCategoryService_PropertiesOnCycle(t *testing.T) {
	svc, _ := newCategoryService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, CategoryInput{Name: "A", Properties: []models.PropertyDefinition{{Name: "color", Values: []string{"red"}}}})
	require.NoError(t, err)
	b, err := svc.Create(ctx, CategoryInput{Name: "B", ParentCategory: a.ID, Properties: []models.PropertyDefinition{{Name: "size", Values: []string{"S"}}}})
	require.NoError(t, err)
	_, err = svc.Update(ctx, CategoryInput{ID: a.ID, Name: "A", ParentCategory: b.ID, Properties: a.Properties})
	require.NoError(t, err)

	props, err := svc.Properties(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.PropertyDefinition{
		{Name: "color", Values: []string{"red"}},
		{Name: "size", Values: []string{"S"}},
	}, props)
}
