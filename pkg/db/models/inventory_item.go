package models

import (
	"time"

	"github.com/angelmondragon/inventory-service/pkg/enums"
)

// InventoryItem is a tracked stock record.
type InventoryItem struct {
	ID           uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string          `gorm:"column:name;size:63;not null" validate:"required,max=63"`
	Quantity     int             `gorm:"column:quantity;not null;default:0" validate:"min=0"`
	Condition    enums.Condition `gorm:"column:condition;size:16;not null" validate:"required,condition"`
	RestockLevel int             `gorm:"column:restock_level;not null;default:0" validate:"min=0"`
	Category     *string         `gorm:"column:category;size:63"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}

// BelowRestockLevel reports whether the item is understocked.
func (i InventoryItem) BelowRestockLevel() bool {
	return i.Quantity < i.RestockLevel
}
