package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/inventory-service/api/controllers"
	"github.com/angelmondragon/inventory-service/api/middleware"
	"github.com/angelmondragon/inventory-service/api/responses"
	"github.com/angelmondragon/inventory-service/internal/inventory"
	"github.com/angelmondragon/inventory-service/pkg/config"
	"github.com/angelmondragon/inventory-service/pkg/db"
	pkgerrors "github.com/angelmondragon/inventory-service/pkg/errors"
	"github.com/angelmondragon/inventory-service/pkg/logger"
	"github.com/angelmondragon/inventory-service/pkg/metrics"
	"github.com/angelmondragon/inventory-service/web"
)

const jsonContentType = "application/json"

// NewRouter builds the route table. A nil gatherer leaves /metrics unmounted.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	inventoryService inventory.Service,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	if logg == nil {
		logg = logger.Nop()
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.HTTP.CORSOrigins),
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "The requested URL was not found on the server."))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "The method is not allowed for the requested URL."))
	})

	requireJSON := middleware.RequireContentType(jsonContentType, logg)

	r.Get("/", controllers.Index(logg))
	r.Get("/health", controllers.Health(cfg))
	r.Get("/health/ready", controllers.HealthReady(cfg, logg, dbP))

	r.Get("/inventory", controllers.ListInventory(inventoryService, logg))
	r.With(requireJSON).Post("/inventory", controllers.CreateInventory(inventoryService, logg))
	r.Get("/inventory/stock", controllers.StockLevels(inventoryService, logg))
	r.Get("/inventory/low-stock", controllers.LowStock(inventoryService, logg))
	r.Get("/inventory/{id:[0-9]+}", controllers.GetInventory(inventoryService, logg))
	r.With(requireJSON).Put("/inventory/{id:[0-9]+}", controllers.UpdateInventory(inventoryService, logg))
	r.Delete("/inventory/{id:[0-9]+}", controllers.DeleteInventory(inventoryService, logg))
	r.Put("/inventory/{id:[0-9]+}/mark_damaged", controllers.MarkDamaged(inventoryService, logg))
	r.Put("/inventory/{id:[0-9]+}/restock_check", controllers.RestockCheck(inventoryService, logg))
	r.Get("/inventory/{id:[0-9]+}/alerts", controllers.InventoryAlerts(inventoryService, logg))

	tmpl, err := web.Templates()
	if err != nil {
		logg.Error(context.Background(), "admin template parse failed", err)
	}
	r.Get("/admin", controllers.Admin(tmpl, logg))
	r.Handle("/static/*", http.StripPrefix("/static/", web.Static()))

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
