package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"replenishhq/internal/data"
	"replenishhq/internal/models"
	"replenishhq/internal/validate"

	"github.com/gin-gonic/gin"
)

// --- GET: List all products ---
func (h *Handlers) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Data.GetProducts())
}

func (h *Handlers) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	product, err := h.Data.GetProduct(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// --- POST: Add a new product ---
func (h *Handlers) AddProduct(c *gin.Context) {
	var newProduct models.Product

	// 1. Parse JSON Input
	if err := c.ShouldBindJSON(&newProduct); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// 2. Run the form checks and return every problem at once
	if errs := validate.Product(newProduct); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	// 3. Save (the manager assigns the id and derives the status)
	created := h.Data.AddProduct(newProduct)
	c.JSON(http.StatusCreated, created)
}

// --- PUT: Update a product ---
func (h *Handlers) UpdateProduct(c *gin.Context) {
	// 1. Get ID from URL (e.g., /products/5)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	// 2. Parse the full record
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	product.ID = id

	if errs := validate.Product(product); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	// 3. Save updates
	if err := h.Data.UpdateProduct(product); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	updated, _ := h.Data.GetProduct(id)
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": updated})
}

// --- DELETE: Remove a product ---
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	if err := h.Data.DeleteProduct(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

type StockUpdateRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// --- PATCH: Nudge stock up or down ---
// Stock never goes below zero; the manager clamps it.
func (h *Handlers) UpdateProductStock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	var input StockUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, err := h.Data.UpdateProductStock(id, input.Delta)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
		return
	}
	c.JSON(http.StatusOK, product)
}
