package alerts

import (
	"strings"
	"testing"

	"replenishhq/internal/data"
	"replenishhq/internal/events"
	"replenishhq/internal/models"
	"replenishhq/internal/storage"
)

func newTestScanner(t *testing.T) (*Scanner, *data.Manager) {
	t.Helper()
	mgr := data.New(storage.NewMemory(), events.NewBus(), nil)
	// Start from an empty notification list so the seeded welcome
	// notices don't collide with the alerts under test.
	mgr.ClearNotifications()
	return NewScanner(mgr, nil), mgr
}

func countMatching(notifs []models.Notification, substr string) int {
	n := 0
	for _, notif := range notifs {
		if strings.Contains(notif.Message, substr) {
			n++
		}
	}
	return n
}

func TestScanRaisesLowAndOutAlerts(t *testing.T) {
	s, mgr := newTestScanner(t)
	// Seed: Mouse low (2<=10), Keyboard out (0), others ok.
	raised := s.Scan()
	if raised != 2 {
		t.Fatalf("raised = %d, want 2", raised)
	}

	notifs := mgr.GetNotifications()
	if countMatching(notifs, "Mouse stock is low (2 units)") != 1 {
		t.Fatalf("missing low-stock alert: %+v", notifs)
	}
	if countMatching(notifs, "Keyboard is out of stock") != 1 {
		t.Fatalf("missing out-of-stock alert: %+v", notifs)
	}
}

func TestScanIsIdempotent(t *testing.T) {
	s, mgr := newTestScanner(t)

	first := s.Scan()
	second := s.Scan()

	if second != 0 {
		t.Fatalf("second scan raised %d, want 0", second)
	}
	notifs := mgr.GetNotifications()
	if first != 2 || countMatching(notifs, "out of stock") != 1 {
		t.Fatalf("first=%d notifications=%+v", first, notifs)
	}
}

func TestReadAlertNotResurrected(t *testing.T) {
	s, mgr := newTestScanner(t)
	s.Scan()

	// Read and clear everything; a rescan of the unchanged collection
	// must not bring the alerts back.
	mgr.MarkAllNotificationsRead()
	mgr.ClearNotifications()
	if raised := s.Scan(); raised != 0 {
		t.Fatalf("raised = %d after clear, want 0", raised)
	}
	if len(mgr.GetNotifications()) != 0 {
		t.Fatal("cleared alerts were resurrected")
	}
}

func TestLowProductGoingOutRaisesExactlyOnce(t *testing.T) {
	s, mgr := newTestScanner(t)
	mgr.SaveProducts([]models.Product{
		{ID: 1, Name: "Gadget", SKU: "GAD001", Price: 50, Stock: 2, Threshold: 10},
	})

	s.Scan() // raises low-stock-1

	// Sell the remaining two units; status goes low -> out.
	sale := models.Sale{
		ID: "RCP-1", Date: "1/1/2024", Time: "10:00:00 AM", Status: "completed", PaymentMethod: "cash",
		Items: []models.SaleItem{{ProductID: 1, ProductName: "Gadget", Quantity: 2, UnitPrice: 50, Total: 100}},
		Total: 100, Subtotal: 100,
	}
	if err := mgr.CompleteSale(sale); err != nil {
		t.Fatal(err)
	}
	p, _ := mgr.GetProduct(1)
	if p.Status != models.StatusOut {
		t.Fatalf("status = %q, want out", p.Status)
	}

	s.Scan()
	s.Scan()

	notifs := mgr.GetNotifications()
	if got := countMatching(notifs, "Gadget is out of stock"); got != 1 {
		t.Fatalf("out-of-stock alerts = %d, want exactly 1", got)
	}
}

func TestScanHonorsSettingsToggle(t *testing.T) {
	s, mgr := newTestScanner(t)
	settings := mgr.GetSettings()
	settings.LowStockNotif = false
	mgr.SaveSettings(settings)

	if raised := s.Scan(); raised != 0 {
		t.Fatalf("raised = %d with notifications disabled, want 0", raised)
	}
}
