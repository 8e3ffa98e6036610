package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/inventory-service/pkg/db"
	"github.com/angelmondragon/inventory-service/pkg/db/models"
	"github.com/angelmondragon/inventory-service/pkg/enums"
	pkgerrors "github.com/angelmondragon/inventory-service/pkg/errors"
	"github.com/angelmondragon/inventory-service/pkg/logger"
	"github.com/angelmondragon/inventory-service/pkg/metrics"
	"gorm.io/gorm"
)

// Service exposes inventory management operations.
type Service interface {
	Create(ctx context.Context, raw []byte) (*ItemDTO, error)
	Get(ctx context.Context, id uint) (*ItemDTO, error)
	Update(ctx context.Context, id uint, raw []byte) (*ItemDTO, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]ItemDTO, error)
	MarkDamaged(ctx context.Context, id uint) (*ItemDTO, error)
	RestockCheck(ctx context.Context, id uint, quantity int) (*ItemDTO, error)
	Alerts(ctx context.Context, id uint) ([]AlertDTO, error)
	StockLevels(ctx context.Context) ([]StockLevel, error)
	LowStockAlerts(ctx context.Context) ([]LowStockDTO, error)
}

// ListFilter selects a subset of items. Condition wins over Category, which
// wins over Name. An empty filter lists everything.
type ListFilter struct {
	Condition string
	Category  string
	Name      string
}

type service struct {
	repo     *Repository
	dbClient *db.Client
	metrics  *metrics.InventoryMetrics
	logg     *logger.Logger
}

// NewService wires the inventory service.
func NewService(repo *Repository, dbClient *db.Client, m *metrics.InventoryMetrics, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{repo: repo, dbClient: dbClient, metrics: m, logg: logg}, nil
}

func notFound(id uint) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("Inventory with id '%d' was not found.", id))
}

// persistence maps storage failures onto the error taxonomy, leaving typed
// errors alone.
func persistence(err error, msg string) error {
	if pkgerrors.As(err) != nil {
		return err
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, msg)
}

func (s *service) Create(ctx context.Context, raw []byte) (*ItemDTO, error) {
	item := &models.InventoryItem{}
	if err := Deserialize(raw, item); err != nil {
		return nil, err
	}
	if !item.Condition.IsIntake() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid Inventory: condition must be new, used or open_box").
			WithDetails(map[string]string{"condition": "damaged items cannot be created"})
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, persistence(err, "create inventory")
	}
	dto := Serialize(item)
	return &dto, nil
}

func (s *service) Get(ctx context.Context, id uint) (*ItemDTO, error) {
	item, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, persistence(err, "load inventory")
	}
	if item == nil {
		return nil, notFound(id)
	}
	dto := Serialize(item)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id uint, raw []byte) (*ItemDTO, error) {
	item, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, persistence(err, "load inventory")
	}
	if item == nil {
		return nil, notFound(id)
	}
	if err := Deserialize(raw, item); err != nil {
		return nil, err
	}
	item.ID = id
	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, notFound(id)
		}
		return nil, persistence(err, "update inventory")
	}
	dto := Serialize(item)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return persistence(err, "delete inventory")
	}
	return nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]ItemDTO, error) {
	var (
		items []models.InventoryItem
		err   error
	)
	switch {
	case filter.Condition != "":
		items, err = s.repo.FindByCondition(ctx, enums.Condition(filter.Condition))
	case filter.Category != "":
		items, err = s.repo.FindByCategory(ctx, filter.Category)
	case filter.Name != "":
		items, err = s.repo.FindByName(ctx, filter.Name)
	default:
		items, err = s.repo.All(ctx)
	}
	if err != nil {
		return nil, persistence(err, "list inventory")
	}
	return SerializeAll(items), nil
}

func (s *service) MarkDamaged(ctx context.Context, id uint) (*ItemDTO, error) {
	item, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, persistence(err, "load inventory")
	}
	if item == nil {
		return nil, notFound(id)
	}
	item.Condition = enums.ConditionDamaged
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, persistence(err, "mark inventory damaged")
	}
	s.metrics.IncMarkedDamaged()
	dto := Serialize(item)
	return &dto, nil
}

// RestockCheck records a new quantity and raises an alert when it falls
// below the restock level. The item update and the alert commit together.
func (s *service) RestockCheck(ctx context.Context, id uint, quantity int) (*ItemDTO, error) {
	var (
		item    *models.InventoryItem
		alerted bool
	)
	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		found, err := txRepo.Find(ctx, id)
		if err != nil {
			return err
		}
		if found == nil {
			return notFound(id)
		}

		found.Quantity = quantity
		if err := txRepo.Update(ctx, found); err != nil {
			return err
		}

		if found.BelowRestockLevel() {
			alert := &models.Alert{
				ProductID: found.ID,
				Message:   alertMessage(found),
			}
			if err := txRepo.CreateAlert(ctx, alert); err != nil {
				return err
			}
			alerted = true
		}
		item = found
		return nil
	}); err != nil {
		return nil, persistence(err, "restock check")
	}

	if alerted {
		s.metrics.IncLowStockAlert(item.Condition.String())
		ctx = s.logg.WithItemID(ctx, item.ID)
		s.logg.Warn(ctx, "inventory.restock_alert")
	}

	dto := Serialize(item)
	return &dto, nil
}

func alertMessage(item *models.InventoryItem) string {
	return fmt.Sprintf("Low Stock Alert: %s has %d units, below the restock level of %d", item.Name, item.Quantity, item.RestockLevel)
}

func (s *service) Alerts(ctx context.Context, id uint) ([]AlertDTO, error) {
	item, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, persistence(err, "load inventory")
	}
	if item == nil {
		return nil, notFound(id)
	}
	alerts, err := s.repo.ListAlerts(ctx, id)
	if err != nil {
		return nil, persistence(err, "list alerts")
	}
	out := make([]AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, AlertDTO{ID: a.ID, ProductID: a.ProductID, Message: a.Message, CreatedAt: a.CreatedAt})
	}
	return out, nil
}

func (s *service) StockLevels(ctx context.Context) ([]StockLevel, error) {
	levels, err := s.repo.StockLevels(ctx)
	if err != nil {
		return nil, persistence(err, "stock levels")
	}
	return levels, nil
}

func (s *service) LowStockAlerts(ctx context.Context) ([]LowStockDTO, error) {
	items, err := s.repo.LowStock(ctx)
	if err != nil {
		return nil, persistence(err, "low stock")
	}
	out := make([]LowStockDTO, 0, len(items))
	for _, item := range items {
		out = append(out, LowStockDTO{
			ProductID:    item.ID,
			Quantity:     item.Quantity,
			RestockLevel: item.RestockLevel,
			AlertStatus:  LowStockStatus,
		})
	}
	return out, nil
}
