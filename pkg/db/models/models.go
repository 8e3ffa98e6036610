package models

// All returns the persisted models in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&InventoryItem{},
		&Alert{},
	}
}
