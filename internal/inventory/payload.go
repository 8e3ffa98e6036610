package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/angelmondragon/inventory-service/pkg/db/models"
	"github.com/angelmondragon/inventory-service/pkg/enums"
	pkgerrors "github.com/angelmondragon/inventory-service/pkg/errors"
)

// LowStockStatus is attached to every entry of the low-stock report.
const LowStockStatus = "Alert! Product is Low Stock"

// ItemDTO is the wire representation of an inventory item.
type ItemDTO struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	Condition    string  `json:"condition"`
	RestockLevel int     `json:"restock_level"`
	Category     *string `json:"category,omitempty"`
}

// StockLevel is one row of the stock report.
type StockLevel struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// LowStockDTO is one row of the low-stock report.
type LowStockDTO struct {
	ProductID    uint   `json:"product_id"`
	Quantity     int    `json:"quantity"`
	RestockLevel int    `json:"restock_level"`
	AlertStatus  string `json:"alert_status"`
}

// AlertDTO exposes a recorded low-stock alert.
type AlertDTO struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"product_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Serialize converts an item into its wire form.
func Serialize(item *models.InventoryItem) ItemDTO {
	return ItemDTO{
		ID:           item.ID,
		Name:         item.Name,
		Quantity:     item.Quantity,
		Condition:    item.Condition.String(),
		RestockLevel: item.RestockLevel,
		Category:     item.Category,
	}
}

// SerializeAll converts a slice of items, never returning nil.
func SerializeAll(items []models.InventoryItem) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for i := range items {
		out = append(out, Serialize(&items[i]))
	}
	return out
}

var requiredFields = []string{"name", "quantity", "condition", "restock_level"}

// Deserialize checks raw against the item schema and, when it conforms,
// copies the fields onto item. Any id in the payload is ignored. On failure
// item is left untouched and a validation error naming the field is returned.
func Deserialize(raw []byte, item *models.InventoryItem) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return pkgerrors.New(pkgerrors.CodeValidation, "Invalid Inventory: body of request contained bad or no data")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid Inventory: body of request contained bad or no data").
			WithDetails(map[string]any{"error": err.Error()})
	}

	for _, name := range requiredFields {
		value, ok := fields[name]
		if !ok || isNull(value) {
			return missingField(name)
		}
	}

	next := *item

	if err := json.Unmarshal(fields["name"], &next.Name); err != nil {
		return badType("name", "a string")
	}
	if err := json.Unmarshal(fields["quantity"], &next.Quantity); err != nil {
		return badType("quantity", "an integer")
	}
	var condition string
	if err := json.Unmarshal(fields["condition"], &condition); err != nil {
		return badType("condition", "a string")
	}
	parsed, err := enums.ParseCondition(condition)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "Invalid Inventory: invalid attribute: condition").
			WithDetails(map[string]string{"condition": fmt.Sprintf("must be one of %v", enums.Conditions())})
	}
	next.Condition = parsed
	if err := json.Unmarshal(fields["restock_level"], &next.RestockLevel); err != nil {
		return badType("restock_level", "an integer")
	}

	if value, ok := fields["category"]; ok {
		if isNull(value) {
			next.Category = nil
		} else {
			var category string
			if err := json.Unmarshal(value, &category); err != nil {
				return badType("category", "a string")
			}
			next.Category = &category
		}
	}

	if err := validateItem(&next); err != nil {
		return err
	}

	*item = next
	return nil
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func missingField(name string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "Invalid Inventory: missing "+name).
		WithDetails(map[string]string{name: "is required"})
}

func badType(name, want string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("Invalid Inventory: %s must be %s", name, want)).
		WithDetails(map[string]string{name: "must be " + want})
}
