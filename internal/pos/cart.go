// Package pos implements the point-of-sale checkout flow as an explicit
// state machine: Browsing -> Cart-populated -> Checkout-review ->
// Completed | Cancelled. Carts live in memory only; nothing about an
// in-progress cart is ever persisted.
package pos

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"replenishhq/internal/data"
	"replenishhq/internal/models"
	"replenishhq/internal/utils"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNoDraft   = errors.New("no receipt drafted")
)

// Line is one cart entry: the product as seen when it was added, plus
// the requested quantity.
type Line struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Receipt is the checkout-review draft. Nothing is committed until the
// cart's Commit succeeds.
type Receipt struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Lines    []Line  `json:"lines"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	TaxRate  float64 `json:"taxRate"`
	Total    float64 `json:"total"`
}

// Cart drives one checkout. Not safe for concurrent use; each checkout
// flow owns its cart.
type Cart struct {
	mgr   *data.Manager
	lines []Line
	draft *Receipt
}

func NewCart(mgr *data.Manager) *Cart {
	return &Cart{mgr: mgr}
}

// AddItem puts qty units of a product in the cart, merging with an
// existing line. Rejected if the combined quantity would exceed the
// product's current stock (no backorders).
func (c *Cart) AddItem(productID, qty int) error {
	if qty < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	product, err := c.mgr.GetProduct(productID)
	if err != nil {
		return err
	}

	have := 0
	for _, line := range c.lines {
		if line.Product.ID == productID {
			have = line.Quantity
			break
		}
	}
	if have+qty > product.Stock {
		return fmt.Errorf("%w for %s", data.ErrInsufficientStock, product.Name)
	}

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity += qty
			return nil
		}
	}
	c.lines = append(c.lines, Line{Product: product, Quantity: qty})
	return nil
}

// SetQuantity updates a line; a quantity below 1 removes the line.
func (c *Cart) SetQuantity(productID, qty int) {
	if qty < 1 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) RemoveItem(productID int) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
}

func (c *Cart) Clear() {
	c.lines = nil
	c.draft = nil
}

// Lines returns the current cart contents.
func (c *Cart) Lines() []Line {
	return c.lines
}

// Review moves the cart to checkout-review: it drafts a receipt with
// subtotal, tax at the configured rate and grand total. Requires a
// non-empty cart.
func (c *Cart) Review() (*Receipt, error) {
	if len(c.lines) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := decimal.Zero
	for _, line := range c.lines {
		subtotal = subtotal.Add(
			decimal.NewFromFloat(line.Product.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	taxRate := decimal.NewFromFloat(c.mgr.GetSettings().TaxRate).Div(decimal.NewFromInt(100))
	tax := subtotal.Mul(taxRate)
	total := subtotal.Add(tax)

	now := time.Now()
	c.draft = &Receipt{
		ID:       fmt.Sprintf("RCP-%d", now.UnixMilli()),
		Date:     utils.DateLabel(now),
		Time:     utils.TimeLabel(now),
		Lines:    append([]Line(nil), c.lines...),
		Subtotal: subtotal.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		TaxRate:  taxRate.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
	return c.draft, nil
}

// Cancel discards the drafted receipt. The cart is preserved for
// further editing.
func (c *Cart) Cancel() {
	c.draft = nil
}

// Commit completes the drafted checkout. Stock is re-validated against
// live products inside the manager (it may have changed since the cart
// was built); on any failure no stock is mutated and the draft stays
// available for another attempt. On success the sale is recorded and
// the cart resets to Browsing.
func (c *Cart) Commit(customer *models.Customer, paymentMethod string) (models.Sale, error) {
	if c.draft == nil {
		return models.Sale{}, ErrNoDraft
	}
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	items := make([]models.SaleItem, 0, len(c.draft.Lines))
	for _, line := range c.draft.Lines {
		lineTotal := decimal.NewFromFloat(line.Product.Price).
			Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, models.SaleItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			SKU:         line.Product.SKU,
			Quantity:    line.Quantity,
			UnitPrice:   line.Product.Price,
			Total:       lineTotal.InexactFloat64(),
		})
	}

	sale := models.Sale{
		ID:            c.draft.ID,
		Date:          c.draft.Date,
		Time:          c.draft.Time,
		CustomerName:  "Walk-in Customer",
		Items:         items,
		Subtotal:      c.draft.Subtotal,
		Tax:           c.draft.Tax,
		Discount:      0,
		Total:         c.draft.Total,
		PaymentMethod: paymentMethod,
		Status:        "completed",
	}
	if customer != nil {
		sale.CustomerID = customer.ID
		sale.CustomerName = customer.Name
	}

	if err := c.mgr.CompleteSale(sale); err != nil {
		// Back to checkout-review; the caller decides what to edit.
		return models.Sale{}, err
	}

	c.lines = nil
	c.draft = nil
	return sale, nil
}
