package models

// StockStatus is the derived stock level of a product. It is never set
// directly: every write path recomputes it from stock and threshold.
type StockStatus string

const (
	StatusOK  StockStatus = "ok"
	StatusLow StockStatus = "low"
	StatusOut StockStatus = "out"
)

// StockStatusFor derives the status from the current stock and reorder
// threshold. Out beats low: zero stock is "out" even when threshold is 0.
func StockStatusFor(stock, threshold int) StockStatus {
	switch {
	case stock == 0:
		return StatusOut
	case stock <= threshold:
		return StatusLow
	default:
		return StatusOK
	}
}

// Product - The Inventory
type Product struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	SKU       string      `json:"sku"`
	Price     float64     `json:"price"`
	Cost      float64     `json:"cost"`
	Stock     int         `json:"stock"`
	Category  string      `json:"category"`
	Threshold int         `json:"threshold"`
	Status    StockStatus `json:"status"`
	Barcode   string      `json:"barcode,omitempty"`
	Image     string      `json:"image,omitempty"`
}

// Supplier - Where the inventory comes from
type Supplier struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// Purchase order statuses.
const (
	OrderPending   = "pending"
	OrderReceived  = "received"
	OrderCancelled = "cancelled"
)

// PurchaseOrder - Restock orders placed with a supplier.
// Marking an order "received" does NOT touch Product stock; physical
// goods are reconciled through Stock Adjustments (see DESIGN.md).
type PurchaseOrder struct {
	ID       string              `json:"id"`
	Supplier string              `json:"supplier"`
	Date     string              `json:"date"`
	Status   string              `json:"status"`
	Total    float64             `json:"total"`
	Items    []PurchaseOrderItem `json:"items,omitempty"`
}

type PurchaseOrderItem struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Sale - A completed POS transaction. Append-only; the collection keeps
// the most recent 100 entries, newest first.
type Sale struct {
	ID            string     `json:"id"`
	Date          string     `json:"date"`
	Time          string     `json:"time"`
	CustomerID    int        `json:"customerId,omitempty"`
	CustomerName  string     `json:"customerName,omitempty"`
	Items         []SaleItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax"`
	Discount      float64    `json:"discount"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"paymentMethod"` // cash | card | mobile | other
	Status        string     `json:"status"`        // completed | refunded | partial
}

type SaleItem struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	SKU         string  `json:"sku"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Transaction is the dashboard projection of a sale.
type Transaction struct {
	Product string  `json:"product"`
	Qty     int     `json:"qty"`
	Amount  float64 `json:"amount"`
	Time    string  `json:"time"`
}

// SalesData is one point of the weekly sales chart.
type SalesData struct {
	Day     string  `json:"day"`
	Sales   float64 `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// Customer - Loyalty fields are maintained only by Manager.AddSale.
type Customer struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Address          string  `json:"address,omitempty"`
	TotalPurchases   float64 `json:"totalPurchases"`
	LastPurchaseDate string  `json:"lastPurchaseDate,omitempty"`
	LoyaltyPoints    int     `json:"loyaltyPoints"`
}

// Category - ProductCount is recomputed from the Products collection on
// read, never stored as a source of truth.
type Category struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ProductCount int    `json:"productCount"`
	ParentID     int    `json:"parentId,omitempty"`
}

// StockAdjustment - Audit record of a manual stock correction. This is
// the one audit flow that actually applies its delta to Product stock.
type StockAdjustment struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	ProductID     int    `json:"productId"`
	ProductName   string `json:"productName"`
	SKU           string `json:"sku"`
	PreviousStock int    `json:"previousStock"`
	NewStock      int    `json:"newStock"`
	Adjustment    int    `json:"adjustment"`
	Reason        string `json:"reason"`
	Type          string `json:"type"` // increase | decrease | correction
	PerformedBy   string `json:"performedBy"`
}

// StockTransfer - Advisory movement record; records intent only.
type StockTransfer struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	FromLocation string `json:"fromLocation"`
	ToLocation   string `json:"toLocation"`
	ProductID    int    `json:"productId"`
	ProductName  string `json:"productName"`
	SKU          string `json:"sku"`
	Quantity     int    `json:"quantity"`
	Status       string `json:"status"` // pending | in-transit | completed | cancelled
	Notes        string `json:"notes,omitempty"`
}

// ReturnRefund - Advisory return record; records intent only.
type ReturnRefund struct {
	ID           string       `json:"id"`
	SaleID       string       `json:"saleId"`
	Date         string       `json:"date"`
	CustomerID   int          `json:"customerId,omitempty"`
	CustomerName string       `json:"customerName,omitempty"`
	Items        []ReturnItem `json:"items"`
	Reason       string       `json:"reason"`
	Type         string       `json:"type"`   // return | refund | exchange
	Amount       float64      `json:"amount"`
	Status       string       `json:"status"` // pending | approved | rejected | completed
}

type ReturnItem struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Reason      string  `json:"reason"`
}

// Notification severities.
const (
	NotifWarning  = "warning"
	NotifCritical = "critical"
	NotifSuccess  = "success"
	NotifInfo     = "info"
)

type Notification struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	Read      bool   `json:"read"`
	ActionURL string `json:"actionUrl,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"` // unix seconds; 0 for seeded entries
}

// User - The person interacting with the system. The session only ever
// carries name and role; passwords are never persisted.
type User struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Roles, highest privilege first.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleStaff   = "Staff"
	RoleViewer  = "Viewer"
)

// BusinessSettings - The Settings view's persisted blob. TaxRate is a
// whole percentage (15 means 15%).
type BusinessSettings struct {
	BusinessName  string  `json:"businessName"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	Currency      string  `json:"currency"`
	TaxRate       float64 `json:"taxRate"`
	ReceiptHeader string  `json:"receiptHeader"`
	AutoBackup    bool    `json:"autoBackup"`
	EmailNotif    bool    `json:"emailNotif"`
	LowStockNotif bool    `json:"lowStockNotif"`
	OrderNotif    bool    `json:"orderNotif"`
	DailyNotif    bool    `json:"dailyNotif"`
}
