package handlers

import (
	"net/http"

	"replenishhq/internal/utils"

	"github.com/gin-gonic/gin"
)

// --- GET: /api/system/status ---
// Reports the device identity and store health so the frontend can
// show where this install's data lives.
func (h *Handlers) GetSystemStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "online",
		"deviceId": utils.DeviceID(),
		"products": len(h.Data.GetProducts()),
		"sales":    len(h.Data.GetSales()),
	})
}

type ResetRequest struct {
	Confirm string `json:"confirm" binding:"required"`
}

// --- POST: /api/system/reset ---
// Wipes every collection and reseeds the demo data. The caller has to
// spell out the confirmation phrase; a bare POST is not enough.
func (h *Handlers) ResetData(c *gin.Context) {
	var input ResetRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.Confirm != "RESET" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Send {\"confirm\": \"RESET\"} to wipe all data"})
		return
	}

	h.Data.Reset()
	h.Log.Warn("all data reset to seed state", "by", c.GetString("userName"))
	c.JSON(http.StatusOK, gin.H{"message": "All data has been reset"})
}
