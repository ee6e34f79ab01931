package data

import (
	"fmt"
	"strings"
	"time"

	"replenishhq/internal/events"
	"replenishhq/internal/models"
	"replenishhq/internal/utils"
)

// --- Customers ---

func (m *Manager) GetCustomers() []models.Customer {
	return readJSON(m, keyCustomers, models.SeedCustomers)
}

func (m *Manager) SaveCustomers(customers []models.Customer) {
	m.mu.Lock()
	writeJSON(m, keyCustomers, customers)
	m.mu.Unlock()
	m.bus.Publish(events.TopicCustomers)
}

func (m *Manager) AddCustomer(c models.Customer) models.Customer {
	m.mu.Lock()
	customers := m.GetCustomers()
	maxID := 0
	for _, existing := range customers {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	c.ID = maxID + 1
	customers = append(customers, c)
	writeJSON(m, keyCustomers, customers)
	m.mu.Unlock()

	m.bus.Publish(events.TopicCustomers)
	return c
}

func (m *Manager) UpdateCustomer(c models.Customer) error {
	m.mu.Lock()
	customers := m.GetCustomers()
	found := false
	for i := range customers {
		if customers[i].ID == c.ID {
			customers[i] = c
			found = true
			break
		}
	}
	if !found {
		m.mu.Unlock()
		return fmt.Errorf("customer %d: %w", c.ID, ErrNotFound)
	}
	writeJSON(m, keyCustomers, customers)
	m.mu.Unlock()

	m.bus.Publish(events.TopicCustomers)
	return nil
}

func (m *Manager) DeleteCustomer(id int) error {
	m.mu.Lock()
	customers := m.GetCustomers()
	kept := customers[:0]
	for _, c := range customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(customers) {
		m.mu.Unlock()
		return fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	writeJSON(m, keyCustomers, kept)
	m.mu.Unlock()

	m.bus.Publish(events.TopicCustomers)
	return nil
}

// --- Categories ---

// GetCategories returns the category list with ProductCount recomputed
// from the live Products collection, never from a stored counter.
func (m *Manager) GetCategories() []models.Category {
	categories := readJSON(m, keyCategories, models.SeedCategories)
	counts := make(map[string]int)
	for _, p := range m.GetProducts() {
		counts[strings.ToLower(p.Category)]++
	}
	for i := range categories {
		categories[i].ProductCount = counts[strings.ToLower(categories[i].Name)]
	}
	return categories
}

func (m *Manager) AddCategory(name, description string) (models.Category, error) {
	m.mu.Lock()
	categories := readJSON(m, keyCategories, models.SeedCategories)
	maxID := 0
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			m.mu.Unlock()
			return models.Category{}, ErrDuplicateCategory
		}
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	category := models.Category{ID: maxID + 1, Name: name, Description: description}
	categories = append(categories, category)
	writeJSON(m, keyCategories, categories)
	m.mu.Unlock()
	return category, nil
}

func (m *Manager) UpdateCategory(id int, name, description string) error {
	m.mu.Lock()
	categories := readJSON(m, keyCategories, models.SeedCategories)
	found := false
	for i := range categories {
		if strings.EqualFold(categories[i].Name, name) && categories[i].ID != id {
			m.mu.Unlock()
			return ErrDuplicateCategory
		}
		if categories[i].ID == id {
			categories[i].Name = name
			categories[i].Description = description
			found = true
		}
	}
	if !found {
		m.mu.Unlock()
		return fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	writeJSON(m, keyCategories, categories)
	m.mu.Unlock()
	return nil
}

// DeleteCategory refuses to remove a category that still has products.
func (m *Manager) DeleteCategory(id int) error {
	m.mu.Lock()
	categories := readJSON(m, keyCategories, models.SeedCategories)
	var target *models.Category
	for i := range categories {
		if categories[i].ID == id {
			target = &categories[i]
			break
		}
	}
	if target == nil {
		m.mu.Unlock()
		return fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	for _, p := range m.GetProducts() {
		if strings.EqualFold(p.Category, target.Name) {
			m.mu.Unlock()
			return fmt.Errorf("category %s: %w", target.Name, ErrCategoryInUse)
		}
	}
	kept := make([]models.Category, 0, len(categories)-1)
	for _, c := range categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	writeJSON(m, keyCategories, kept)
	m.mu.Unlock()
	return nil
}

// --- Notifications ---

func (m *Manager) GetNotifications() []models.Notification {
	return readJSON(m, keyNotifications, models.SeedNotifications)
}

// PushNotification assigns the next id and prepends. Returns the stored
// notification.
func (m *Manager) PushNotification(n models.Notification) models.Notification {
	m.mu.Lock()
	n = m.pushNotificationLocked(n)
	m.mu.Unlock()
	m.bus.Publish(events.TopicNotifications)
	return n
}

func (m *Manager) pushNotificationLocked(n models.Notification) models.Notification {
	notifications := m.GetNotifications()
	maxID := 0
	for _, existing := range notifications {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	n.ID = maxID + 1
	if n.CreatedAt == 0 {
		n.CreatedAt = time.Now().Unix()
	}
	if n.Time == "" {
		n.Time = "Just now"
	}
	notifications = append([]models.Notification{n}, notifications...)
	writeJSON(m, keyNotifications, notifications)
	return n
}

func (m *Manager) MarkNotificationRead(id int) error {
	m.mu.Lock()
	notifications := m.GetNotifications()
	found := false
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].Read = true
			found = true
			break
		}
	}
	if !found {
		m.mu.Unlock()
		return fmt.Errorf("notification %d: %w", id, ErrNotFound)
	}
	writeJSON(m, keyNotifications, notifications)
	m.mu.Unlock()

	m.bus.Publish(events.TopicNotifications)
	return nil
}

func (m *Manager) MarkAllNotificationsRead() {
	m.mu.Lock()
	notifications := m.GetNotifications()
	for i := range notifications {
		notifications[i].Read = true
	}
	writeJSON(m, keyNotifications, notifications)
	m.mu.Unlock()

	m.bus.Publish(events.TopicNotifications)
}

func (m *Manager) ClearNotifications() {
	m.mu.Lock()
	writeJSON(m, keyNotifications, []models.Notification{})
	m.mu.Unlock()

	m.bus.Publish(events.TopicNotifications)
}

// EnsureStockAlert pushes a notification exactly once per alert key
// (e.g. "low-stock-2"). A key already seen never re-fires, even after
// its notification was read or cleared. Reports whether a notification
// was created.
func (m *Manager) EnsureStockAlert(key string, n models.Notification) bool {
	m.mu.Lock()
	seen := readJSON(m, keyStockAlerts, emptySlice[string])
	for _, s := range seen {
		if s == key {
			m.mu.Unlock()
			return false
		}
	}
	m.pushNotificationLocked(n)
	writeJSON(m, keyStockAlerts, append(seen, key))
	m.mu.Unlock()

	m.bus.Publish(events.TopicNotifications)
	return true
}

// --- Settings ---

func (m *Manager) GetSettings() models.BusinessSettings {
	return readJSON(m, keySettings, models.DefaultSettings)
}

func (m *Manager) SaveSettings(s models.BusinessSettings) {
	m.mu.Lock()
	writeJSON(m, keySettings, s)
	m.mu.Unlock()
	m.bus.Publish(events.TopicSettings)
}

// --- Stock adjustments ---

func (m *Manager) GetAdjustments() []models.StockAdjustment {
	return readJSON(m, keyAdjustments, emptySlice[models.StockAdjustment])
}

// RecordAdjustment applies the delta to the product's stock (clamped at
// zero, status re-derived) and prepends the audit record. Unlike
// transfers and returns, adjustments are a real inventory mutation.
func (m *Manager) RecordAdjustment(productID, adjustment int, adjType, reason, performedBy string) (models.StockAdjustment, error) {
	previous, err := m.GetProduct(productID)
	if err != nil {
		return models.StockAdjustment{}, err
	}
	updated, err := m.UpdateProductStock(productID, adjustment)
	if err != nil {
		return models.StockAdjustment{}, err
	}

	m.mu.Lock()
	adjustments := m.GetAdjustments()
	record := models.StockAdjustment{
		ID:            fmt.Sprintf("ADJ-%03d", len(adjustments)+1),
		Date:          utils.DateLabel(time.Now()),
		ProductID:     productID,
		ProductName:   previous.Name,
		SKU:           previous.SKU,
		PreviousStock: previous.Stock,
		NewStock:      updated.Stock,
		Adjustment:    adjustment,
		Reason:        reason,
		Type:          adjType,
		PerformedBy:   performedBy,
	}
	adjustments = append([]models.StockAdjustment{record}, adjustments...)
	writeJSON(m, keyAdjustments, adjustments)
	m.mu.Unlock()

	return record, nil
}

// --- Stock transfers (advisory: no inventory effect) ---

func (m *Manager) GetTransfers() []models.StockTransfer {
	return readJSON(m, keyTransfers, emptySlice[models.StockTransfer])
}

func (m *Manager) RecordTransfer(t models.StockTransfer) models.StockTransfer {
	m.mu.Lock()
	transfers := m.GetTransfers()
	t.ID = fmt.Sprintf("TRF-%03d", len(transfers)+1)
	if t.Date == "" {
		t.Date = utils.DateLabel(time.Now())
	}
	if t.Status == "" {
		t.Status = "pending"
	}
	transfers = append([]models.StockTransfer{t}, transfers...)
	writeJSON(m, keyTransfers, transfers)
	m.mu.Unlock()
	return t
}

func (m *Manager) UpdateTransferStatus(id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	transfers := m.GetTransfers()
	for i := range transfers {
		if transfers[i].ID == id {
			transfers[i].Status = status
			writeJSON(m, keyTransfers, transfers)
			return nil
		}
	}
	return fmt.Errorf("transfer %s: %w", id, ErrNotFound)
}

// --- Returns / refunds (advisory: no inventory effect) ---

func (m *Manager) GetReturns() []models.ReturnRefund {
	return readJSON(m, keyReturns, emptySlice[models.ReturnRefund])
}

func (m *Manager) RecordReturn(r models.ReturnRefund) models.ReturnRefund {
	m.mu.Lock()
	returns := m.GetReturns()
	r.ID = fmt.Sprintf("RET-%03d", len(returns)+1)
	if r.Date == "" {
		r.Date = utils.DateLabel(time.Now())
	}
	if r.Status == "" {
		r.Status = "pending"
	}
	returns = append([]models.ReturnRefund{r}, returns...)
	writeJSON(m, keyReturns, returns)
	m.mu.Unlock()
	return r
}

func (m *Manager) UpdateReturnStatus(id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	returns := m.GetReturns()
	for i := range returns {
		if returns[i].ID == id {
			returns[i].Status = status
			writeJSON(m, keyReturns, returns)
			return nil
		}
	}
	return fmt.Errorf("return %s: %w", id, ErrNotFound)
}

// --- Profile / weekly analytics ---

func (m *Manager) GetProfilePicture() (string, bool) {
	return m.store.Get(keyProfilePicture)
}

func (m *Manager) SetProfilePicture(data string) {
	m.store.Set(keyProfilePicture, data)
	m.bus.Publish(events.TopicProfile)
}

func (m *Manager) RemoveProfilePicture() {
	m.store.Remove(keyProfilePicture)
	m.bus.Publish(events.TopicProfile)
}

// GetWeeklySales serves the analytics chart series. Static seed data,
// matching the source system.
func (m *Manager) GetWeeklySales() []models.SalesData {
	return models.SeedWeeklySales()
}
