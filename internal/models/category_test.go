package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_MarshalJSON(t *testing.T) {
	root := Category{ID: "1", Name: "Shirts"}
	child := Category{ID: "2", Name: "T-Shirts", ParentID: "1", Parent: &root,
		Properties: []PropertyDefinition{{Name: "color", Values: []string{"red"}}}}
	dangling := Category{ID: "3", Name: "Orphan", ParentID: "gone"}

	out, err := json.Marshal([]Category{root, child, dangling})
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"_id": "1", "name": "Shirts", "properties": []},
		{"_id": "2", "name": "T-Shirts", "parent": {"_id": "1", "name": "Shirts", "properties": []},
		 "properties": [{"name": "color", "values": ["red"]}]},
		{"_id": "3", "name": "Orphan", "parent": "gone", "properties": []}
	]`, string(out))
}

func TestCategory_UnmarshalJSONParentForms(t *testing.T) {
	var byID Category
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"2","name":"T","parent":"1"}`), &byID))
	assert.Equal(t, "1", byID.ParentID)
	assert.Nil(t, byID.Parent)

	var populated Category
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"2","name":"T","parent":{"_id":"1","name":"S"}}`), &populated))
	assert.Equal(t, "1", populated.ParentID)
	require.NotNil(t, populated.Parent)
	assert.Equal(t, "S", populated.Parent.Name)

	var none Category
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"1","name":"S","parent":null}`), &none))
	assert.Empty(t, none.ParentID)
}

func TestOrder_ShippingAddress(t *testing.T) {
	o := Order{StreetAddress: " 1 Main St ", City: "Pune", Country: "India"}
	assert.Equal(t, "1 Main St, Pune, India", o.ShippingAddress())

	o = Order{StreetAddress: "1 Main St", City: "Pune", PostalCode: "411001", State: "Maharashtra", Country: "India"}
	assert.Equal(t, "1 Main St, Pune, 411001, Maharashtra, India", o.ShippingAddress())
	assert.Empty(t, Order{}.ShippingAddress())
}
