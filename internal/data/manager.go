// Package data holds the Manager, the single write path for every
// domain collection. Views (HTTP handlers) never touch the store
// directly: they call the Manager, which persists through the store
// adapter, keeps derived state consistent and publishes a change event
// for the collection it touched.
package data

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"replenishhq/internal/events"
	"replenishhq/internal/models"
	"replenishhq/internal/storage"
)

// Storage keys, one per collection. The same keys the browser build
// used, so an exported data file stays readable.
const (
	keyProducts       = "replenishhq_products"
	keyOrders         = "replenishhq_orders"
	keySuppliers      = "replenishhq_suppliers"
	keySales          = "replenishhq_sales"
	keyCustomers      = "replenishhq_customers"
	keyCategories     = "replenishhq_categories"
	keyNotifications  = "replenishhq_notifications"
	keySettings       = "replenishhq_business_settings"
	keyAdjustments    = "replenishhq_adjustments"
	keyTransfers      = "replenishhq_transfers"
	keyReturns        = "replenishhq_returns"
	keyStockAlerts    = "replenishhq_stock_alerts"
	keyProfilePicture = "replenishhq_profile_picture"
	keySessionUser    = "replenishhq_user"
	keySessionToken   = "replenishhq_token"
)

// Manager coordinates all reads and writes of the domain collections.
// Construct one per process and inject it; there is no hidden global.
type Manager struct {
	store *storage.Store
	bus   *events.Bus
	log   *slog.Logger

	// mu serializes read-modify-write cycles so two mutations cannot
	// interleave between read and write-back.
	mu sync.Mutex
}

func New(store *storage.Store, bus *events.Bus, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	m := &Manager{store: store, bus: bus, log: log}
	m.initializeData()
	return m
}

// initializeData seeds the collections that must exist from the first
// request. Collections not seeded here fall back to their seed on read.
func (m *Manager) initializeData() {
	if _, ok := m.store.Get(keyProducts); !ok {
		writeJSON(m, keyProducts, models.SeedProducts())
	}
	if _, ok := m.store.Get(keyOrders); !ok {
		writeJSON(m, keyOrders, models.SeedOrders())
	}
	if _, ok := m.store.Get(keySuppliers); !ok {
		writeJSON(m, keySuppliers, models.SeedSuppliers())
	}
}

// readJSON decodes the collection at key, falling back to the seed when
// the key is missing or its value does not parse. Storage failures are
// never surfaced to callers; a bad blob just means seed data.
func readJSON[T any](m *Manager, key string, fallback func() T) T {
	raw, ok := m.store.Get(key)
	if !ok {
		return fallback()
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		m.log.Warn("corrupt collection, using seed", "key", key, "error", err)
		return fallback()
	}
	return out
}

func writeJSON[T any](m *Manager, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		// Plain records never fail to marshal; log and keep going.
		m.log.Error("marshal collection failed", "key", key, "error", err)
		return
	}
	m.store.Set(key, string(raw))
}

func emptySlice[T any]() []T { return []T{} }

// --- Products ---

func (m *Manager) GetProducts() []models.Product {
	return readJSON(m, keyProducts, models.SeedProducts)
}

// SaveProducts writes the full product list through the store and
// publishes the change. Status is re-derived for every product so no
// caller can persist a status inconsistent with stock and threshold.
func (m *Manager) SaveProducts(products []models.Product) {
	m.mu.Lock()
	m.saveProductsLocked(products)
	m.mu.Unlock()
	m.bus.Publish(events.TopicProducts)
}

func (m *Manager) saveProductsLocked(products []models.Product) {
	for i := range products {
		products[i].Status = models.StockStatusFor(products[i].Stock, products[i].Threshold)
	}
	writeJSON(m, keyProducts, products)
}

// AddProduct assigns the next id, derives status and appends.
func (m *Manager) AddProduct(p models.Product) models.Product {
	m.mu.Lock()
	products := m.GetProducts()
	maxID := 0
	for _, existing := range products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	products = append(products, p)
	m.saveProductsLocked(products)
	m.mu.Unlock()

	m.bus.Publish(events.TopicProducts)
	return p
}

// UpdateProduct replaces the product with the same id.
func (m *Manager) UpdateProduct(p models.Product) error {
	m.mu.Lock()
	products := m.GetProducts()
	found := false
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			found = true
			break
		}
	}
	if !found {
		m.mu.Unlock()
		return fmt.Errorf("product %d: %w", p.ID, ErrNotFound)
	}
	m.saveProductsLocked(products)
	m.mu.Unlock()

	m.bus.Publish(events.TopicProducts)
	return nil
}

func (m *Manager) DeleteProduct(id int) error {
	m.mu.Lock()
	products := m.GetProducts()
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		m.mu.Unlock()
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	m.saveProductsLocked(kept)
	m.mu.Unlock()

	m.bus.Publish(events.TopicProducts)
	return nil
}

// GetProduct returns a single product by id.
func (m *Manager) GetProduct(id int) (models.Product, error) {
	for _, p := range m.GetProducts() {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
}

// UpdateProductStock applies a stock delta, clamping the result at zero
// and re-deriving status. Every inventory-affecting flow (checkout,
// adjustments) goes through here or through CompleteSale so the
// derivation stays centralized.
func (m *Manager) UpdateProductStock(id, delta int) (models.Product, error) {
	m.mu.Lock()
	products := m.GetProducts()
	var updated models.Product
	found := false
	for i := range products {
		if products[i].ID == id {
			newStock := products[i].Stock + delta
			if newStock < 0 {
				newStock = 0
			}
			products[i].Stock = newStock
			updated = products[i]
			found = true
			break
		}
	}
	if !found {
		m.mu.Unlock()
		return models.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	m.saveProductsLocked(products)
	// saveProductsLocked re-derived the status; pick it back up.
	updated.Status = models.StockStatusFor(updated.Stock, updated.Threshold)
	m.mu.Unlock()

	m.bus.Publish(events.TopicProducts)
	return updated, nil
}

// --- Purchase orders ---

func (m *Manager) GetOrders() []models.PurchaseOrder {
	return readJSON(m, keyOrders, models.SeedOrders)
}

func (m *Manager) SaveOrders(orders []models.PurchaseOrder) {
	m.mu.Lock()
	writeJSON(m, keyOrders, orders)
	m.mu.Unlock()
	m.bus.Publish(events.TopicOrders)
}

// AddOrder appends a purchase order, assigning the next sequential
// human-readable id (PO-001, PO-002, ...) when none is set.
func (m *Manager) AddOrder(order models.PurchaseOrder) models.PurchaseOrder {
	m.mu.Lock()
	orders := m.GetOrders()
	if order.ID == "" {
		order.ID = fmt.Sprintf("PO-%03d", len(orders)+1)
	}
	if order.Status == "" {
		order.Status = models.OrderPending
	}
	if order.Total == 0 {
		for _, item := range order.Items {
			order.Total += item.Total
		}
	}
	orders = append(orders, order)
	writeJSON(m, keyOrders, orders)
	m.mu.Unlock()

	m.bus.Publish(events.TopicOrders)
	return order
}

// UpdateOrderStatus transitions a pending order to received or
// cancelled. Receiving does NOT apply any inventory change; stock from
// delivered goods is reconciled through RecordAdjustment.
func (m *Manager) UpdateOrderStatus(id, status string) error {
	if status != models.OrderReceived && status != models.OrderCancelled {
		return fmt.Errorf("status %q: %w", status, ErrBadTransition)
	}

	m.mu.Lock()
	orders := m.GetOrders()
	found := false
	for i := range orders {
		if orders[i].ID == id {
			if orders[i].Status != models.OrderPending {
				m.mu.Unlock()
				return fmt.Errorf("order %s is %s: %w", id, orders[i].Status, ErrBadTransition)
			}
			orders[i].Status = status
			found = true
			break
		}
	}
	if !found {
		m.mu.Unlock()
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	writeJSON(m, keyOrders, orders)
	m.mu.Unlock()

	m.bus.Publish(events.TopicOrders)
	if status == models.OrderReceived {
		m.PushNotification(models.Notification{
			Message:   fmt.Sprintf("%s has been received", id),
			Type:      models.NotifSuccess,
			ActionURL: "/dashboard?page=orders",
		})
	}
	return nil
}

// --- Suppliers ---

func (m *Manager) GetSuppliers() []models.Supplier {
	return readJSON(m, keySuppliers, models.SeedSuppliers)
}

func (m *Manager) SaveSuppliers(suppliers []models.Supplier) {
	m.mu.Lock()
	writeJSON(m, keySuppliers, suppliers)
	m.mu.Unlock()
	m.bus.Publish(events.TopicSuppliers)
}

func (m *Manager) AddSupplier(s models.Supplier) models.Supplier {
	m.mu.Lock()
	suppliers := m.GetSuppliers()
	maxID := 0
	for _, existing := range suppliers {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	s.ID = maxID + 1
	suppliers = append(suppliers, s)
	writeJSON(m, keySuppliers, suppliers)
	m.mu.Unlock()

	m.bus.Publish(events.TopicSuppliers)
	return s
}

func (m *Manager) UpdateSupplier(s models.Supplier) error {
	m.mu.Lock()
	suppliers := m.GetSuppliers()
	found := false
	for i := range suppliers {
		if suppliers[i].ID == s.ID {
			suppliers[i] = s
			found = true
			break
		}
	}
	if !found {
		m.mu.Unlock()
		return fmt.Errorf("supplier %d: %w", s.ID, ErrNotFound)
	}
	writeJSON(m, keySuppliers, suppliers)
	m.mu.Unlock()

	m.bus.Publish(events.TopicSuppliers)
	return nil
}

func (m *Manager) DeleteSupplier(id int) error {
	m.mu.Lock()
	suppliers := m.GetSuppliers()
	kept := suppliers[:0]
	for _, s := range suppliers {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(suppliers) {
		m.mu.Unlock()
		return fmt.Errorf("supplier %d: %w", id, ErrNotFound)
	}
	writeJSON(m, keySuppliers, kept)
	m.mu.Unlock()

	m.bus.Publish(events.TopicSuppliers)
	return nil
}

// --- Reset ---

// Reset wipes every collection and session key, then notifies all
// topics so mounted views drop back to seed data. Destructive: handlers
// require explicit confirmation before calling this.
func (m *Manager) Reset() {
	m.mu.Lock()
	for _, key := range []string{
		keyProducts, keyOrders, keySuppliers, keySales, keyCustomers,
		keyCategories, keyNotifications, keySettings, keyAdjustments,
		keyTransfers, keyReturns, keyStockAlerts, keyProfilePicture,
		keySessionUser, keySessionToken,
	} {
		m.store.Remove(key)
	}
	m.initializeData()
	m.mu.Unlock()

	for _, topic := range []events.Topic{
		events.TopicProducts, events.TopicOrders, events.TopicSales,
		events.TopicSuppliers, events.TopicCustomers,
		events.TopicNotifications, events.TopicSettings, events.TopicProfile,
	} {
		m.bus.Publish(topic)
	}
	m.log.Info("all data cleared and reseeded")
}
