package handlers

import (
	"net/http"
	"strconv"

	"replenishhq/internal/models"
	"replenishhq/internal/validate"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) GetSuppliers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Data.GetSuppliers())
}

func (h *Handlers) AddSupplier(c *gin.Context) {
	var supplier models.Supplier

	if err := c.ShouldBindJSON(&supplier); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if errs := validate.Supplier(supplier); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	created := h.Data.AddSupplier(supplier)
	c.JSON(http.StatusCreated, created)
}

func (h *Handlers) UpdateSupplier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Supplier ID"})
		return
	}

	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	supplier.ID = id

	if errs := validate.Supplier(supplier); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if err := h.Data.UpdateSupplier(supplier); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier updated successfully", "supplier": supplier})
}

func (h *Handlers) DeleteSupplier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Supplier ID"})
		return
	}

	if err := h.Data.DeleteSupplier(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
}
