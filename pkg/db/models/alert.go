package models

import "time"

// Alert is a low-stock notice raised by a restock check. Rows are append-only.
type Alert struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID uint      `gorm:"column:product_id;not null;index"`
	Message   string    `gorm:"column:message;size:255;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	Product *InventoryItem `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Alert) TableName() string {
	return "alert"
}
