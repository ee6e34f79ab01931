package handlers

import (
	"errors"
	"net/http"
	"strings"

	"replenishhq/internal/data"
	"replenishhq/internal/models"

	"github.com/gin-gonic/gin"
)

// --- GET: List purchase orders ---
func (h *Handlers) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.Data.GetOrders())
}

// --- POST: Place a restock order with a supplier ---
func (h *Handlers) AddOrder(c *gin.Context) {
	var order models.PurchaseOrder

	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if strings.TrimSpace(order.Supplier) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Supplier is required"})
		return
	}

	// The manager assigns the id, the date and the pending status
	created := h.Data.AddOrder(order)
	c.JSON(http.StatusCreated, created)
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --- PATCH: Move a pending order to received or cancelled ---
// Receiving an order does not change any product stock; physical
// goods are booked in through stock adjustments.
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	var input OrderStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if input.Status != models.OrderReceived && input.Status != models.OrderCancelled {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be received or cancelled"})
		return
	}

	err := h.Data.UpdateOrderStatus(c.Param("id"), input.Status)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": "Only pending orders can change status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully"})
}
