package pos

import (
	"errors"
	"testing"

	"replenishhq/internal/data"
	"replenishhq/internal/events"
	"replenishhq/internal/models"
	"replenishhq/internal/storage"
)

func newTestCart(t *testing.T) (*Cart, *data.Manager) {
	t.Helper()
	mgr := data.New(storage.NewMemory(), events.NewBus(), nil)
	return NewCart(mgr), mgr
}

func TestReviewTotals(t *testing.T) {
	cart, mgr := newTestCart(t)
	// qty 2 @ 25 (Mouse) and qty 1 @ 300 (Monitor).
	mgr.SaveProducts([]models.Product{
		{ID: 2, Name: "Mouse", SKU: "MOU001", Price: 25, Stock: 10, Threshold: 2},
		{ID: 4, Name: "Monitor", SKU: "MON001", Price: 300, Stock: 8, Threshold: 2},
	})
	if err := cart.AddItem(2, 2); err != nil {
		t.Fatal(err)
	}
	if err := cart.AddItem(4, 1); err != nil {
		t.Fatal(err)
	}

	receipt, err := cart.Review()
	if err != nil {
		t.Fatal(err)
	}
	if receipt.Subtotal != 350 {
		t.Errorf("subtotal = %v, want 350", receipt.Subtotal)
	}
	if receipt.Tax != 52.5 {
		t.Errorf("tax = %v, want 52.5 (15%%)", receipt.Tax)
	}
	if receipt.Total != 402.5 {
		t.Errorf("total = %v, want 402.5", receipt.Total)
	}
}

func TestAddItemRejectsBeyondStock(t *testing.T) {
	cart, _ := newTestCart(t)
	// Seeded Mouse has stock 2.
	if err := cart.AddItem(2, 2); err != nil {
		t.Fatal(err)
	}
	err := cart.AddItem(2, 1)
	if !errors.Is(err, data.ErrInsufficientStock) {
		t.Fatalf("err = %v, want ErrInsufficientStock", err)
	}
	// Out-of-stock product can never enter the cart.
	if err := cart.AddItem(3, 1); !errors.Is(err, data.ErrInsufficientStock) {
		t.Fatalf("err = %v, want ErrInsufficientStock", err)
	}
}

func TestSetQuantityBelowOneRemovesLine(t *testing.T) {
	cart, _ := newTestCart(t)
	if err := cart.AddItem(1, 1); err != nil {
		t.Fatal(err)
	}
	cart.SetQuantity(1, 0)
	if len(cart.Lines()) != 0 {
		t.Fatalf("lines = %+v, want empty", cart.Lines())
	}
}

func TestReviewEmptyCart(t *testing.T) {
	cart, _ := newTestCart(t)
	if _, err := cart.Review(); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
}

func TestCommitDeductsStockAndResets(t *testing.T) {
	cart, mgr := newTestCart(t)
	if err := cart.AddItem(1, 2); err != nil { // Laptop, stock 5
		t.Fatal(err)
	}
	if _, err := cart.Review(); err != nil {
		t.Fatal(err)
	}

	sale, err := cart.Commit(nil, "card")
	if err != nil {
		t.Fatal(err)
	}
	if sale.CustomerName != "Walk-in Customer" || sale.PaymentMethod != "card" {
		t.Fatalf("sale = %+v", sale)
	}

	laptop, _ := mgr.GetProduct(1)
	if laptop.Stock != 3 {
		t.Fatalf("stock = %d, want 3", laptop.Stock)
	}
	if len(cart.Lines()) != 0 {
		t.Fatal("cart not reset after commit")
	}
	if len(mgr.GetSales()) != 1 {
		t.Fatal("sale not recorded")
	}
}

func TestCommitRevalidatesAgainstLiveStock(t *testing.T) {
	cart, mgr := newTestCart(t)
	if err := cart.AddItem(1, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := cart.Review(); err != nil {
		t.Fatal(err)
	}

	// Stock changes between review and commit (another sale won).
	if _, err := mgr.UpdateProductStock(1, -4); err != nil {
		t.Fatal(err)
	}

	_, err := cart.Commit(nil, "")
	if !errors.Is(err, data.ErrInsufficientStock) {
		t.Fatalf("err = %v, want ErrInsufficientStock", err)
	}
	// Draft and cart survive for another attempt.
	if len(cart.Lines()) != 1 {
		t.Fatal("cart lost after failed commit")
	}
	if _, err := cart.Commit(nil, ""); !errors.Is(err, data.ErrInsufficientStock) {
		t.Fatal("draft should still be committable after failure")
	}
}

func TestCancelKeepsCart(t *testing.T) {
	cart, _ := newTestCart(t)
	if err := cart.AddItem(1, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := cart.Review(); err != nil {
		t.Fatal(err)
	}

	cart.Cancel()

	if len(cart.Lines()) != 1 {
		t.Fatal("cancel must preserve the cart")
	}
	if _, err := cart.Commit(nil, ""); !errors.Is(err, ErrNoDraft) {
		t.Fatalf("err = %v, want ErrNoDraft after cancel", err)
	}
}

func TestSaleDrivesProductToOut(t *testing.T) {
	cart, mgr := newTestCart(t)
	mgr.SaveProducts([]models.Product{
		{ID: 10, Name: "Gadget", SKU: "GAD001", Price: 50, Stock: 2, Threshold: 10},
	})
	p, _ := mgr.GetProduct(10)
	if p.Status != models.StatusLow {
		t.Fatalf("precondition: status = %q, want low", p.Status)
	}

	if err := cart.AddItem(10, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := cart.Review(); err != nil {
		t.Fatal(err)
	}
	if _, err := cart.Commit(nil, ""); err != nil {
		t.Fatal(err)
	}

	p, _ = mgr.GetProduct(10)
	if p.Stock != 0 || p.Status != models.StatusOut {
		t.Fatalf("after sale: stock %d status %q, want 0/out", p.Stock, p.Status)
	}
}
