package models

// Seed data used on first run and whenever a persisted collection is
// missing or unreadable. Each function returns a fresh slice so callers
// can mutate their copy freely.

func SeedProducts() []Product {
	return []Product{
		{ID: 1, Name: "Laptop", SKU: "LAP001", Price: 1200, Cost: 800, Stock: 5, Category: "Electronics", Threshold: 3, Status: StatusOK},
		{ID: 2, Name: "Mouse", SKU: "MOU001", Price: 25, Cost: 10, Stock: 2, Category: "Accessories", Threshold: 10, Status: StatusLow},
		{ID: 3, Name: "Keyboard", SKU: "KEY001", Price: 75, Cost: 30, Stock: 0, Category: "Accessories", Threshold: 5, Status: StatusOut},
		{ID: 4, Name: "Monitor", SKU: "MON001", Price: 300, Cost: 150, Stock: 8, Category: "Electronics", Threshold: 2, Status: StatusOK},
		{ID: 5, Name: "USB Cable", SKU: "USB001", Price: 5, Cost: 1, Stock: 50, Category: "Accessories", Threshold: 20, Status: StatusOK},
	}
}

func SeedSuppliers() []Supplier {
	return []Supplier{
		{ID: 1, Name: "Tech Supplies Co", Email: "contact@techsupplies.com", Phone: "+234-801-234-5678"},
		{ID: 2, Name: "Global Electronics", Email: "sales@globalelec.com", Phone: "+234-802-345-6789"},
	}
}

func SeedOrders() []PurchaseOrder {
	return []PurchaseOrder{
		{ID: "PO-001", Supplier: "Tech Supplies Co", Date: "2024-01-15", Status: OrderPending, Total: 5000},
		{ID: "PO-002", Supplier: "Global Electronics", Date: "2024-01-14", Status: OrderReceived, Total: 8500},
	}
}

func SeedCustomers() []Customer {
	return []Customer{
		{ID: 1, Name: "John Smith", Email: "john.smith@email.com", Phone: "+234-801-234-5678", Address: "123 Main Street, Lagos", TotalPurchases: 5437.5, LastPurchaseDate: "2024-01-15", LoyaltyPoints: 543},
		{ID: 2, Name: "Jane Doe", Email: "jane.doe@email.com", Phone: "+234-802-345-6789", Address: "456 Oak Avenue, Abuja", TotalPurchases: 2315.0, LastPurchaseDate: "2024-01-14", LoyaltyPoints: 231},
	}
}

func SeedCategories() []Category {
	return []Category{
		{ID: 1, Name: "Electronics", Description: "Electronic devices and accessories", ProductCount: 2},
		{ID: 2, Name: "Accessories", Description: "Computer and device accessories", ProductCount: 3},
		{ID: 3, Name: "Other", Description: "Miscellaneous items", ProductCount: 0},
	}
}

func SeedNotifications() []Notification {
	return []Notification{
		{ID: 1, Message: "Mouse stock is low (2 units)", Time: "10 min ago", Type: NotifWarning, ActionURL: "/dashboard?page=products"},
		{ID: 2, Message: "Keyboard is out of stock", Time: "2 hours ago", Type: NotifCritical, ActionURL: "/dashboard?page=products"},
		{ID: 3, Message: "PO-001 has been received", Time: "5 hours ago", Type: NotifSuccess, ActionURL: "/dashboard?page=orders"},
	}
}

// SeedWeeklySales backs the analytics chart until enough live sales
// history exists to replace it.
func SeedWeeklySales() []SalesData {
	return []SalesData{
		{Day: "Mon", Sales: 4200, Revenue: 24000},
		{Day: "Tue", Sales: 3800, Revenue: 21500},
		{Day: "Wed", Sales: 5200, Revenue: 29400},
		{Day: "Thu", Sales: 4800, Revenue: 27200},
		{Day: "Fri", Sales: 6200, Revenue: 35000},
		{Day: "Sat", Sales: 7100, Revenue: 40200},
	}
}

func DefaultSettings() BusinessSettings {
	return BusinessSettings{
		BusinessName:  "ReplenishHQ Store",
		Email:         "info@replenishhq.com",
		Phone:         "+234-801-234-5678",
		Address:       "123 Commerce Street, Abuja, Nigeria",
		Currency:      "NGN",
		TaxRate:       15,
		ReceiptHeader: "Welcome to ReplenishHQ",
		AutoBackup:    true,
		EmailNotif:    true,
		LowStockNotif: true,
		OrderNotif:    true,
		DailyNotif:    false,
	}
}
