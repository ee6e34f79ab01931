package handlers

import (
	"net/http"
	"strconv"

	"replenishhq/internal/models"
	"replenishhq/internal/validate"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) GetCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Data.GetCustomers())
}

func (h *Handlers) AddCustomer(c *gin.Context) {
	var customer models.Customer

	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if errs := validate.Customer(customer); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	// New customers start with a clean purchase history; loyalty is
	// only ever earned through sales.
	customer.TotalPurchases = 0
	customer.LoyaltyPoints = 0
	customer.LastPurchaseDate = ""

	created := h.Data.AddCustomer(customer)
	c.JSON(http.StatusCreated, created)
}

func (h *Handlers) UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Customer ID"})
		return
	}

	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	customer.ID = id

	if errs := validate.Customer(customer); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if err := h.Data.UpdateCustomer(customer); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer updated successfully", "customer": customer})
}

func (h *Handlers) DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Customer ID"})
		return
	}

	if err := h.Data.DeleteCustomer(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
