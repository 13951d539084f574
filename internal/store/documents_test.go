package store

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SirClappington/ecommerce-admin-backend/internal/models"
)

func TestProductDocuments_LegacyFieldsReadAsEmpty(t *testing.T) {
	products := map[string]models.Product{
		"firestore": productDoc{Title: "Tee"}.toModel("p1"),
		"mongo":     productBSON{ID: primitive.NewObjectID(), Title: "Tee"}.toModel(),
	}

	for name, p := range products {
		t.Run(name, func(t *testing.T) {
			out, err := json.Marshal(p)
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal(out, &decoded))
			assert.Equal(t, []any{}, decoded["images"])
			assert.Equal(t, map[string]any{}, decoded["properties"])
		})
	}
}

func TestProductDocuments_NonFinitePriceDoesNotPanic(t *testing.T) {
	for _, f := range []float64{math.Inf(1), math.NaN()} {
		assert.NotPanics(t, func() {
			assert.True(t, productDoc{Title: "Tee", Price: f}.toModel("p1").Price.IsZero())
			assert.True(t, productBSON{ID: primitive.NewObjectID(), Title: "Tee", Price: f}.toModel().Price.IsZero())
		})
	}
}

func TestOrderDocuments_KeepState(t *testing.T) {
	fs := orderDoc{City: "Pune", State: "Maharashtra"}.toModel("o1")
	assert.Equal(t, "Maharashtra", fs.State)

	mg := orderBSON{ID: primitive.NewObjectID(), City: "Pune", State: "Maharashtra"}.toModel()
	assert.Equal(t, "Maharashtra", mg.State)
}
