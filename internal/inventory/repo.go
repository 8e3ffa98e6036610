package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/inventory-service/pkg/db/models"
	"github.com/angelmondragon/inventory-service/pkg/enums"
	pkgerrors "github.com/angelmondragon/inventory-service/pkg/errors"
	"gorm.io/gorm"
)

// ErrNoRows is returned by Update when the identified record does not exist.
var ErrNoRows = errors.New("inventory: no rows affected")

// Repository persists inventory items and their low-stock alerts.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create validates and inserts the item. The database assigns the id.
func (r *Repository) Create(ctx context.Context, item *models.InventoryItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	item.ID = 0
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// Find loads an item by id. A missing row yields (nil, nil).
func (r *Repository) Find(ctx context.Context, id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find inventory %d: %w", id, err)
	}
	return &item, nil
}

// All returns every item.
func (r *Repository) All(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return items, nil
}

// FindByName returns items whose name matches exactly.
func (r *Repository) FindByName(ctx context.Context, name string) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list inventory by name: %w", err)
	}
	return items, nil
}

// FindByCondition returns items in the given condition.
func (r *Repository) FindByCondition(ctx context.Context, condition enums.Condition) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).Where("condition = ?", condition).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list inventory by condition: %w", err)
	}
	return items, nil
}

// FindByCategory is a stub: category lookups always come back empty, even for
// items that carry a matching category.
func (r *Repository) FindByCategory(_ context.Context, _ string) ([]models.InventoryItem, error) {
	return []models.InventoryItem{}, nil
}

// Update overwrites every mutable column of the identified record.
func (r *Repository) Update(ctx context.Context, item *models.InventoryItem) error {
	if item == nil || item.ID == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Update called with empty ID field")
	}
	if err := validateItem(item); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(item).
		Select("*").
		Omit("id", "created_at").
		Updates(item)
	if res.Error != nil {
		return fmt.Errorf("update inventory %d: %w", item.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update inventory %d: %w", item.ID, ErrNoRows)
	}
	return nil
}

// Delete removes the record if present. Deleting a missing id is not an error.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.InventoryItem{}).Error; err != nil {
		return fmt.Errorf("delete inventory %d: %w", id, err)
	}
	return nil
}

// CreateAlert inserts a low-stock alert.
func (r *Repository) CreateAlert(ctx context.Context, alert *models.Alert) error {
	if err := r.db.WithContext(ctx).Omit("Product").Create(alert).Error; err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// ListAlerts returns the alerts raised for one item, oldest first.
func (r *Repository) ListAlerts(ctx context.Context, productID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id").Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return alerts, nil
}

// StockLevels returns the quantity on hand for every item.
func (r *Repository) StockLevels(ctx context.Context) ([]StockLevel, error) {
	levels := []StockLevel{}
	if err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Select("id AS product_id, quantity").
		Order("id").
		Scan(&levels).Error; err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	return levels, nil
}

// LowStock returns items whose quantity is below their restock level.
func (r *Repository) LowStock(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).Where("quantity < restock_level").Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return items, nil
}
