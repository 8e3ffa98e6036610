package inventory

import (
	"encoding/json"
	"testing"

	"github.com/angelmondragon/inventory-service/pkg/db/models"
	"github.com/angelmondragon/inventory-service/pkg/enums"
	pkgerrors "github.com/angelmondragon/inventory-service/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	for _, condition := range enums.Conditions() {
		original := &models.InventoryItem{
			ID:           7,
			Name:         "Widget",
			Quantity:     12,
			Condition:    condition,
			RestockLevel: 3,
		}
		raw, err := json.Marshal(Serialize(original))
		require.NoError(t, err)

		var decoded models.InventoryItem
		require.NoError(t, Deserialize(raw, &decoded))

		assert.Equal(t, original.Name, decoded.Name)
		assert.Equal(t, original.Quantity, decoded.Quantity)
		assert.Equal(t, original.Condition, decoded.Condition)
		assert.Equal(t, original.RestockLevel, decoded.RestockLevel)
		assert.Zero(t, decoded.ID, "id in the payload is ignored")
	}
}

func TestSerializeShape(t *testing.T) {
	raw, err := json.Marshal(Serialize(&models.InventoryItem{ID: 1, Name: "Widget", Quantity: 2, Condition: enums.ConditionUsed, RestockLevel: 1}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Widget","quantity":2,"condition":"used","restock_level":1}`, string(raw))

	category := "tools"
	raw, err = json.Marshal(Serialize(&models.InventoryItem{ID: 1, Name: "Widget", Condition: enums.ConditionNew, Category: &category}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"category":"tools"`)
}

func TestDeserializeRejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		field string
	}{
		{name: "empty body", raw: ``},
		{name: "array", raw: `[1, 2]`},
		{name: "string", raw: `"widget"`},
		{name: "malformed", raw: `{"name": `},
		{name: "missing name", raw: `{"quantity":1,"condition":"new","restock_level":1}`, field: "name"},
		{name: "missing quantity", raw: `{"name":"W","condition":"new","restock_level":1}`, field: "quantity"},
		{name: "missing condition", raw: `{"name":"W","quantity":1,"restock_level":1}`, field: "condition"},
		{name: "missing restock_level", raw: `{"name":"W","quantity":1,"condition":"new"}`, field: "restock_level"},
		{name: "null quantity", raw: `{"name":"W","quantity":null,"condition":"new","restock_level":1}`, field: "quantity"},
		{name: "string quantity", raw: `{"name":"W","quantity":"ten","condition":"new","restock_level":1}`, field: "quantity"},
		{name: "fractional restock", raw: `{"name":"W","quantity":1,"condition":"new","restock_level":1.5}`, field: "restock_level"},
		{name: "numeric name", raw: `{"name":5,"quantity":1,"condition":"new","restock_level":1}`, field: "name"},
		{name: "unknown condition", raw: `{"name":"W","quantity":1,"condition":"mint","restock_level":1}`, field: "condition"},
		{name: "empty name", raw: `{"name":"","quantity":1,"condition":"new","restock_level":1}`, field: "name"},
		{name: "negative quantity", raw: `{"name":"W","quantity":-4,"condition":"new","restock_level":1}`, field: "quantity"},
		{name: "numeric category", raw: `{"name":"W","quantity":1,"condition":"new","restock_level":1,"category":3}`, field: "category"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := &models.InventoryItem{ID: 3, Name: "Original", Quantity: 9, Condition: enums.ConditionUsed, RestockLevel: 2}
			before := *item

			err := Deserialize([]byte(tc.raw), item)
			require.Error(t, err)

			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
			if tc.field != "" {
				assert.Contains(t, typed.Message(), tc.field)
			}
			assert.Equal(t, before, *item, "item must be untouched on failure")
		})
	}
}

func TestDeserializeCategory(t *testing.T) {
	category := "old"
	item := &models.InventoryItem{Category: &category}

	require.NoError(t, Deserialize([]byte(`{"name":"W","quantity":1,"condition":"new","restock_level":1,"category":"tools"}`), item))
	require.NotNil(t, item.Category)
	assert.Equal(t, "tools", *item.Category)

	require.NoError(t, Deserialize([]byte(`{"name":"W","quantity":1,"condition":"new","restock_level":1}`), item))
	require.NotNil(t, item.Category, "absent category keeps the current value")

	require.NoError(t, Deserialize([]byte(`{"name":"W","quantity":1,"condition":"new","restock_level":1,"category":null}`), item))
	assert.Nil(t, item.Category)
}

func TestDeserializeIgnoresUnknownFields(t *testing.T) {
	item := &models.InventoryItem{}
	require.NoError(t, Deserialize([]byte(`{"id":99,"name":"W","quantity":1,"condition":"open_box","restock_level":0,"color":"red"}`), item))
	assert.Zero(t, item.ID)
	assert.Equal(t, enums.ConditionOpenBox, item.Condition)
}
