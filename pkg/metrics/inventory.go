package metrics

import "github.com/prometheus/client_golang/prometheus"

// InventoryMetrics tracks stock events raised by the inventory service.
type InventoryMetrics struct {
	lowStockAlerts *prometheus.CounterVec
	markedDamaged  prometheus.Counter
}

// NewInventoryMetrics registers the inventory metrics on the provided registerer.
func NewInventoryMetrics(reg prometheus.Registerer) *InventoryMetrics {
	if reg == nil {
		return &InventoryMetrics{}
	}
	alerts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_low_stock_alerts_total",
		Help: "Low stock alerts recorded by restock checks.",
	}, []string{"condition"})
	damaged := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "inventory_items_marked_damaged_total",
		Help: "Items moved to the damaged condition.",
	})
	reg.MustRegister(alerts, damaged)
	return &InventoryMetrics{lowStockAlerts: alerts, markedDamaged: damaged}
}

// IncLowStockAlert counts an alert for an item in the given condition.
func (m *InventoryMetrics) IncLowStockAlert(condition string) {
	if m == nil || m.lowStockAlerts == nil {
		return
	}
	m.lowStockAlerts.WithLabelValues(normalizeLabel(condition)).Inc()
}

// IncMarkedDamaged counts an item moved to damaged.
func (m *InventoryMetrics) IncMarkedDamaged() {
	if m == nil || m.markedDamaged == nil {
		return
	}
	m.markedDamaged.Inc()
}
