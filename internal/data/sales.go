package data

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"replenishhq/internal/events"
	"replenishhq/internal/models"
	"replenishhq/internal/utils"
)

// The sales collection is append-only and capped at the most recent
// entries to keep the persisted blob bounded.
const maxSales = 100

func (m *Manager) GetSales() []models.Sale {
	return readJSON(m, keySales, emptySlice[models.Sale])
}

// AddSale prepends the sale, truncates to the newest maxSales entries
// and, when the sale references a customer, accrues that customer's
// purchase history as a side effect of this one write path.
func (m *Manager) AddSale(sale models.Sale) {
	m.mu.Lock()
	customerTouched := m.addSaleLocked(sale)
	m.mu.Unlock()

	m.bus.Publish(events.TopicSales)
	if customerTouched {
		m.bus.Publish(events.TopicCustomers)
	}
}

func (m *Manager) addSaleLocked(sale models.Sale) (customerTouched bool) {
	sales := m.GetSales()
	sales = append([]models.Sale{sale}, sales...)
	if len(sales) > maxSales {
		sales = sales[:maxSales]
	}
	writeJSON(m, keySales, sales)

	if sale.CustomerID == 0 {
		return false // walk-in customer, nothing to accrue
	}

	customers := readJSON(m, keyCustomers, models.SeedCustomers)
	for i := range customers {
		if customers[i].ID != sale.CustomerID {
			continue
		}
		total := decimal.NewFromFloat(sale.Total)
		customers[i].TotalPurchases = decimal.NewFromFloat(customers[i].TotalPurchases).
			Add(total).InexactFloat64()
		customers[i].LastPurchaseDate = sale.Date
		// Loyalty accrues at 1 point per 10 currency units, floored.
		customers[i].LoyaltyPoints += int(total.Div(decimal.NewFromInt(10)).IntPart())
		writeJSON(m, keyCustomers, customers)
		return true
	}
	m.log.Warn("sale references unknown customer", "sale", sale.ID, "customer", sale.CustomerID)
	return false
}

// CompleteSale is the checkout commit: it re-validates every line
// against live stock and either applies all deductions and records the
// sale, or mutates nothing. The returned error names the offending
// product on a stock failure.
func (m *Manager) CompleteSale(sale models.Sale) error {
	m.mu.Lock()

	products := m.GetProducts()
	index := make(map[int]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}

	// Validate every line before touching any stock.
	for _, item := range sale.Items {
		i, ok := index[item.ProductID]
		if !ok {
			m.mu.Unlock()
			return fmt.Errorf("product %d: %w", item.ProductID, ErrNotFound)
		}
		if products[i].Stock < item.Quantity {
			name := products[i].Name
			m.mu.Unlock()
			return fmt.Errorf("%w for %s", ErrInsufficientStock, name)
		}
	}

	for _, item := range sale.Items {
		products[index[item.ProductID]].Stock -= item.Quantity
	}
	m.saveProductsLocked(products)
	customerTouched := m.addSaleLocked(sale)
	m.mu.Unlock()

	m.bus.Publish(events.TopicProducts)
	m.bus.Publish(events.TopicSales)
	if customerTouched {
		m.bus.Publish(events.TopicCustomers)
	}
	m.log.Info("sale completed", "sale", sale.ID, "lines", len(sale.Items), "total", sale.Total)
	return nil
}

// GetTodayRevenue sums totals over sales whose date label equals
// today's label, string-exact.
func (m *Manager) GetTodayRevenue() float64 {
	today := utils.DateLabel(time.Now())
	sum := decimal.Zero
	for _, sale := range m.GetSales() {
		if sale.Date == today {
			sum = sum.Add(decimal.NewFromFloat(sale.Total))
		}
	}
	return sum.InexactFloat64()
}

// GetRecentTransactions projects the n newest sales into the dashboard
// summary shape.
func (m *Manager) GetRecentTransactions(n int) []models.Transaction {
	sales := m.GetSales()
	if n > len(sales) {
		n = len(sales)
	}
	out := make([]models.Transaction, 0, n)
	for _, sale := range sales[:n] {
		product := "Multiple items"
		if len(sale.Items) > 0 {
			product = sale.Items[0].ProductName
		}
		qty := 0
		for _, item := range sale.Items {
			qty += item.Quantity
		}
		out = append(out, models.Transaction{
			Product: product,
			Qty:     qty,
			Amount:  sale.Total,
			Time:    sale.Time,
		})
	}
	return out
}
