package handlers

import (
	"net/http"

	"replenishhq/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Data.GetSettings())
}

// UpdateSettings replaces the whole settings blob, mirroring how the
// settings form saves everything at once.
func (h *Handlers) UpdateSettings(c *gin.Context) {
	var settings models.BusinessSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if settings.TaxRate < 0 || settings.TaxRate > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tax rate must be between 0 and 100"})
		return
	}

	h.Data.SaveSettings(settings)
	c.JSON(http.StatusOK, gin.H{"message": "Settings saved successfully", "settings": settings})
}
