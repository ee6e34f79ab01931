package handlers

import (
	"net/http"

	"replenishhq/internal/models"

	"github.com/gin-gonic/gin"
)

// Returns are advisory records like transfers; approving one does not
// restock anything.

func (h *Handlers) GetReturns(c *gin.Context) {
	c.JSON(http.StatusOK, h.Data.GetReturns())
}

func (h *Handlers) AddReturn(c *gin.Context) {
	var ret models.ReturnRefund
	if err := c.ShouldBindJSON(&ret); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if ret.SaleID == "" || len(ret.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sale and at least one item are required"})
		return
	}

	created := h.Data.RecordReturn(ret)
	c.JSON(http.StatusCreated, created)
}

type ReturnStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handlers) UpdateReturnStatus(c *gin.Context) {
	var input ReturnStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := h.Data.UpdateReturnStatus(c.Param("id"), input.Status); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Return not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Return updated successfully"})
}
