package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"replenishhq/internal/auth"
	"replenishhq/internal/data"
	"replenishhq/internal/events"
	"replenishhq/internal/handlers"
	"replenishhq/internal/models"
	"replenishhq/internal/routes"
	"replenishhq/internal/storage"

	"github.com/gin-gonic/gin"
)

func newTestServer(t *testing.T) (*gin.Engine, *data.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := storage.NewMemory()
	mgr := data.New(store, events.NewBus(), logger)
	svc := auth.NewService(store, "test-secret", logger)
	h := handlers.New(mgr, svc, logger)
	return routes.SetupRouter(h, "http://localhost:5173"), mgr
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/login", "", gin.H{"email": email, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	return resp.Token
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/login", "", gin.H{"email": "admin@replenishhq.com", "password": "admin123"})
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.User.Name != "John Doe" || resp.User.Role != models.RoleAdmin {
		t.Errorf("user = %+v", resp.User)
	}

	w = doJSON(t, router, http.MethodPost, "/login", "", gin.H{"email": "admin@replenishhq.com", "password": "nope"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password returned %d", w.Code)
	}
}

func TestProtectedRoutesNeedAToken(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/products", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: code = %d", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, "/api/products", "not-a-real-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: code = %d", w.Code)
	}
}

func TestProductValidationErrorsAreListed(t *testing.T) {
	router, _ := newTestServer(t)
	token := login(t, router, "admin@replenishhq.com", "admin123")

	w := doJSON(t, router, http.MethodPost, "/api/products", token, gin.H{"name": "", "sku": "", "price": 0})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Errors) < 3 {
		t.Errorf("expected several validation errors, got %v", resp.Errors)
	}
}

func TestProductCRUDOverHTTP(t *testing.T) {
	router, mgr := newTestServer(t)
	token := login(t, router, "admin@replenishhq.com", "admin123")

	// Create
	w := doJSON(t, router, http.MethodPost, "/api/products", token, gin.H{
		"name": "Webcam", "sku": "WEB-001", "price": 79.99, "cost": 45.0,
		"stock": 12, "threshold": 4, "category": "Electronics",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: code = %d, body = %s", w.Code, w.Body.String())
	}
	var created models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 || created.Status != models.StatusOK {
		t.Errorf("created = %+v", created)
	}

	// Update
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/products/%d", created.ID), token, gin.H{
		"name": "Webcam HD", "sku": "WEB-001", "price": 89.99, "cost": 45.0,
		"stock": 3, "threshold": 4, "category": "Electronics",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: code = %d, body = %s", w.Code, w.Body.String())
	}
	got, err := mgr.GetProduct(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Webcam HD" || got.Status != models.StatusLow {
		t.Errorf("after update: %+v", got)
	}

	// Delete (admin only)
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/products/%d", created.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: code = %d, body = %s", w.Code, w.Body.String())
	}
	if _, err := mgr.GetProduct(created.ID); err == nil {
		t.Error("product should be gone")
	}
}

func TestDeleteRequiresElevatedRole(t *testing.T) {
	router, _ := newTestServer(t)

	// Sign up a plain staff account
	w := doJSON(t, router, http.MethodPost, "/signup", "", gin.H{
		"name": "Temp Staff", "email": "temp@replenishhq.com",
		"password": "secret1", "confirmPassword": "secret1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup: code = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	// Staff can read products but cannot delete them
	if w := doJSON(t, router, http.MethodGet, "/api/products", resp.Token, nil); w.Code != http.StatusOK {
		t.Errorf("staff read: code = %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodDelete, "/api/products/1", resp.Token, nil); w.Code != http.StatusForbidden {
		t.Errorf("staff delete: code = %d, want 403", w.Code)
	}
}

func TestCheckoutDeductsStock(t *testing.T) {
	router, mgr := newTestServer(t)
	token := login(t, router, "manager@replenishhq.com", "manager123")

	before, err := mgr.GetProduct(1)
	if err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, router, http.MethodPost, "/api/pos/checkout", token, gin.H{
		"items":         []gin.H{{"productId": 1, "quantity": 2}},
		"paymentMethod": "cash",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout: code = %d, body = %s", w.Code, w.Body.String())
	}
	var sale models.Sale
	if err := json.Unmarshal(w.Body.Bytes(), &sale); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(sale.ID, "RCP-") {
		t.Errorf("sale id = %q", sale.ID)
	}
	if sale.CustomerName != "Walk-in Customer" {
		t.Errorf("customer = %q", sale.CustomerName)
	}

	after, _ := mgr.GetProduct(1)
	if after.Stock != before.Stock-2 {
		t.Errorf("stock = %d, want %d", after.Stock, before.Stock-2)
	}
}

func TestCheckoutRejectsOverselling(t *testing.T) {
	router, mgr := newTestServer(t)
	token := login(t, router, "manager@replenishhq.com", "manager123")

	product, err := mgr.GetProduct(1)
	if err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, router, http.MethodPost, "/api/pos/checkout", token, gin.H{
		"items": []gin.H{{"productId": 1, "quantity": product.Stock + 1}},
	})
	if w.Code != http.StatusConflict {
		t.Errorf("code = %d, body = %s", w.Code, w.Body.String())
	}

	after, _ := mgr.GetProduct(1)
	if after.Stock != product.Stock {
		t.Errorf("stock changed on a rejected checkout: %d -> %d", product.Stock, after.Stock)
	}
}

func TestReceiptRendersHTML(t *testing.T) {
	router, _ := newTestServer(t)
	token := login(t, router, "admin@replenishhq.com", "admin123")

	w := doJSON(t, router, http.MethodPost, "/api/pos/checkout", token, gin.H{
		"items": []gin.H{{"productId": 2, "quantity": 1}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout: code = %d", w.Code)
	}
	var sale models.Sale
	if err := json.Unmarshal(w.Body.Bytes(), &sale); err != nil {
		t.Fatal(err)
	}

	w = doJSON(t, router, http.MethodGet, "/api/sales/"+sale.ID+"/receipt", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("receipt: code = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), sale.ID) {
		t.Error("receipt should mention the sale id")
	}
}

func TestSettingsGuardedByRole(t *testing.T) {
	router, _ := newTestServer(t)
	admin := login(t, router, "admin@replenishhq.com", "admin123")

	w := doJSON(t, router, http.MethodGet, "/api/settings", admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get settings: code = %d", w.Code)
	}
	var settings models.BusinessSettings
	if err := json.Unmarshal(w.Body.Bytes(), &settings); err != nil {
		t.Fatal(err)
	}
	if settings.TaxRate != 15 {
		t.Errorf("default tax rate = %v, want 15", settings.TaxRate)
	}

	settings.TaxRate = 200
	if w := doJSON(t, router, http.MethodPut, "/api/settings", admin, settings); w.Code != http.StatusBadRequest {
		t.Errorf("absurd tax rate accepted: code = %d", w.Code)
	}
}

func TestOrderStatusEndpoint(t *testing.T) {
	router, mgr := newTestServer(t)
	token := login(t, router, "admin@replenishhq.com", "admin123")

	w := doJSON(t, router, http.MethodPost, "/api/orders", token, gin.H{"supplier": "TechSupply Co"})
	if w.Code != http.StatusCreated {
		t.Fatalf("add order: code = %d, body = %s", w.Code, w.Body.String())
	}
	var order models.PurchaseOrder
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatal(err)
	}

	product, _ := mgr.GetProduct(1)
	stockBefore := product.Stock

	w = doJSON(t, router, http.MethodPatch, "/api/orders/"+order.ID+"/status", token, gin.H{"status": "received"})
	if w.Code != http.StatusOK {
		t.Fatalf("receive: code = %d, body = %s", w.Code, w.Body.String())
	}

	// Receiving is paperwork only
	product, _ = mgr.GetProduct(1)
	if product.Stock != stockBefore {
		t.Errorf("receiving an order changed stock: %d -> %d", stockBefore, product.Stock)
	}

	// Already received, second transition must fail
	w = doJSON(t, router, http.MethodPatch, "/api/orders/"+order.ID+"/status", token, gin.H{"status": "cancelled"})
	if w.Code != http.StatusConflict {
		t.Errorf("double transition: code = %d", w.Code)
	}
}

func TestSystemResetRequiresConfirmation(t *testing.T) {
	router, mgr := newTestServer(t)
	token := login(t, router, "admin@replenishhq.com", "admin123")

	mgr.AddProduct(models.Product{Name: "Extra", SKU: "EXT-001", Price: 1, Stock: 1, Category: "Misc"})
	countBefore := len(mgr.GetProducts())

	if w := doJSON(t, router, http.MethodPost, "/api/system/reset", token, gin.H{}); w.Code != http.StatusBadRequest {
		t.Errorf("unconfirmed reset: code = %d", w.Code)
	}
	if len(mgr.GetProducts()) != countBefore {
		t.Fatal("unconfirmed reset wiped data")
	}

	if w := doJSON(t, router, http.MethodPost, "/api/system/reset", token, gin.H{"confirm": "RESET"}); w.Code != http.StatusOK {
		t.Errorf("confirmed reset: code = %d", w.Code)
	}
	if len(mgr.GetProducts()) == countBefore {
		t.Error("reset should drop the extra product and reseed")
	}
}
