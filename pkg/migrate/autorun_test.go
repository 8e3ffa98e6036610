package migrate

import (
	"context"
	"testing"

	"github.com/angelmondragon/inventory-service/pkg/config"
	"github.com/angelmondragon/inventory-service/pkg/db"
	"github.com/angelmondragon/inventory-service/pkg/db/models"
	"github.com/angelmondragon/inventory-service/pkg/logger"
	"github.com/stretchr/testify/require"
)

func newSQLiteClient(t *testing.T) *db.Client {
	t.Helper()
	client, err := db.New(context.Background(), config.DBConfig{DSN: "sqlite://:memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestMaybeRunSkipsWhenDisabled(t *testing.T) {
	client := newSQLiteClient(t)
	cfg := &config.Config{FeatureFlags: config.FeatureFlagsConfig{AutoMigrate: false}}

	require.NoError(t, MaybeRun(context.Background(), cfg, logger.Nop(), client))
	require.False(t, client.DB().Migrator().HasTable(&models.InventoryItem{}))
}

func TestMaybeRunCreatesSQLiteSchema(t *testing.T) {
	client := newSQLiteClient(t)
	cfg := &config.Config{FeatureFlags: config.FeatureFlagsConfig{AutoMigrate: true}}

	require.NoError(t, MaybeRun(context.Background(), cfg, logger.Nop(), client))
	require.True(t, client.DB().Migrator().HasTable("inventory"))
	require.True(t, client.DB().Migrator().HasTable("alert"))
}

func TestResetSQLiteEmptiesTables(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()
	require.NoError(t, client.DB().AutoMigrate(models.All()...))
	require.NoError(t, client.DB().Create(&models.InventoryItem{Name: "Widget", Quantity: 1, Condition: "new"}).Error)

	require.NoError(t, ResetSQLite(ctx, client))

	var count int64
	require.NoError(t, client.DB().Model(&models.InventoryItem{}).Count(&count).Error)
	require.Zero(t, count)
}
