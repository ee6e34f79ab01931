package handlers

import (
	"errors"
	"net/http"

	"replenishhq/internal/data"
	"replenishhq/internal/models"

	"github.com/gin-gonic/gin"
)

// --- Stock Adjustments ---
// The one audit flow that actually changes product stock.

func (h *Handlers) GetAdjustments(c *gin.Context) {
	c.JSON(http.StatusOK, h.Data.GetAdjustments())
}

type AdjustmentRequest struct {
	ProductID  int    `json:"productId" binding:"required"`
	Adjustment int    `json:"adjustment" binding:"required"`
	Type       string `json:"type" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

func (h *Handlers) AddAdjustment(c *gin.Context) {
	var input AdjustmentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// The adjuster is whoever owns the session token
	performedBy := c.GetString("userName")
	if performedBy == "" {
		performedBy = "Unknown"
	}

	adj, err := h.Data.RecordAdjustment(input.ProductID, input.Adjustment, input.Type, input.Reason, performedBy)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record adjustment"})
		return
	}
	c.JSON(http.StatusCreated, adj)
}

// --- Stock Transfers ---
// Transfers are movement paperwork; they never change stock levels.

func (h *Handlers) GetTransfers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Data.GetTransfers())
}

func (h *Handlers) AddTransfer(c *gin.Context) {
	var transfer models.StockTransfer
	if err := c.ShouldBindJSON(&transfer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if transfer.ProductID == 0 || transfer.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product and a positive quantity are required"})
		return
	}
	if transfer.FromLocation == "" || transfer.ToLocation == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both locations are required"})
		return
	}

	created := h.Data.RecordTransfer(transfer)
	c.JSON(http.StatusCreated, created)
}

type TransferStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handlers) UpdateTransferStatus(c *gin.Context) {
	var input TransferStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := h.Data.UpdateTransferStatus(c.Param("id"), input.Status); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transfer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transfer updated successfully"})
}
