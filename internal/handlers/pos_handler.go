package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"replenishhq/internal/data"
	"replenishhq/internal/models"
	"replenishhq/internal/pos"
	"replenishhq/internal/utils"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest is what the POS screen sends us
type CheckoutRequest struct {
	Items []struct {
		ProductID int `json:"productId" binding:"required"`
		Quantity  int `json:"quantity" binding:"required"`
	} `json:"items" binding:"required"`
	CustomerID    int    `json:"customerId"`
	PaymentMethod string `json:"paymentMethod"`
}

// buildCart replays the request lines into a fresh cart so every
// quantity is checked against live stock.
func (h *Handlers) buildCart(req CheckoutRequest) (*pos.Cart, error) {
	cart := pos.NewCart(h.Data)
	for _, item := range req.Items {
		if err := cart.AddItem(item.ProductID, item.Quantity); err != nil {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, err)
		}
	}
	return cart, nil
}

func (h *Handlers) lookupCustomer(id int) *models.Customer {
	if id == 0 {
		return nil
	}
	for _, cust := range h.Data.GetCustomers() {
		if cust.ID == id {
			return &cust
		}
	}
	return nil
}

// --- POST: Price a cart without committing anything ---
func (h *Handlers) ReviewSale(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	cart, err := h.buildCart(req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	receipt, err := cart.Review()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// --- POST: Commit a sale ---
// Stock is deducted for every line or for none of them.
func (h *Handlers) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// 1. Rebuild and price the cart against current stock
	cart, err := h.buildCart(req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if _, err := cart.Review(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	// 2. Commit: deduct stock, record the sale, update loyalty
	sale, err := cart.Commit(h.lookupCustomer(req.CustomerID), req.PaymentMethod)
	if err != nil {
		if errors.Is(err, data.ErrInsufficientStock) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete sale"})
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// --- GET: Sales history (newest first, capped at 100) ---
func (h *Handlers) GetSales(c *gin.Context) {
	c.JSON(http.StatusOK, h.Data.GetSales())
}

var receiptTmpl = template.Must(template.New("receipt").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>Receipt {{.ID}}</title>
<style>body{font-family:monospace;max-width:320px;margin:0 auto}table{width:100%}td:last-child{text-align:right}hr{border:none;border-top:1px dashed #000}</style>
</head><body>
<h3 style="text-align:center">{{.BusinessName}}</h3>
{{if .Header}}<p style="text-align:center">{{.Header}}</p>{{end}}
<p>{{.ID}}<br>{{.Date}} {{.Time}}<br>Customer: {{.Customer}}</p>
<hr>
<table>
{{range .Lines}}<tr><td>{{.Label}}</td><td>{{.Amount}}</td></tr>
{{end}}</table>
<hr>
<table>
<tr><td>Subtotal</td><td>{{.Subtotal}}</td></tr>
<tr><td>Tax</td><td>{{.Tax}}</td></tr>
<tr><td><b>Total</b></td><td><b>{{.Total}}</b></td></tr>
</table>
<p style="text-align:center">Thank you for your purchase!</p>
</body></html>`))

type receiptLine struct {
	Label  string
	Amount string
}

type receiptView struct {
	BusinessName string
	Header       string
	ID           string
	Date         string
	Time         string
	Customer     string
	Lines        []receiptLine
	Subtotal     string
	Tax          string
	Total        string
}

// --- GET: Printable receipt for a past sale ---
// Amounts are pre-formatted with the configured currency so the
// template stays dumb.
func (h *Handlers) GetReceipt(c *gin.Context) {
	id := c.Param("id")
	for _, sale := range h.Data.GetSales() {
		if sale.ID != id {
			continue
		}

		settings := h.Data.GetSettings()
		view := receiptView{
			BusinessName: settings.BusinessName,
			Header:       settings.ReceiptHeader,
			ID:           sale.ID,
			Date:         sale.Date,
			Time:         sale.Time,
			Customer:     sale.CustomerName,
			Subtotal:     utils.FormatCurrency(sale.Subtotal, settings.Currency),
			Tax:          utils.FormatCurrency(sale.Tax, settings.Currency),
			Total:        utils.FormatCurrency(sale.Total, settings.Currency),
		}
		for _, item := range sale.Items {
			view.Lines = append(view.Lines, receiptLine{
				Label:  fmt.Sprintf("%s x%d", item.ProductName, item.Quantity),
				Amount: utils.FormatCurrency(item.Total, settings.Currency),
			})
		}

		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		_ = receiptTmpl.Execute(c.Writer, view)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
}
