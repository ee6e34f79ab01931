package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"replenishhq/internal/data"

	"github.com/gin-gonic/gin"
)

// GetCategories returns the list with product counts computed from the
// live product collection.
func (h *Handlers) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Data.GetCategories())
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *Handlers) AddCategory(c *gin.Context) {
	var input CategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}
	if strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	category, err := h.Data.AddCategory(input.Name, input.Description)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A category with this name already exists"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *Handlers) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Category ID"})
		return
	}

	var input CategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	if err := h.Data.UpdateCategory(id, input.Name, input.Description); err != nil {
		if errors.Is(err, data.ErrDuplicateCategory) {
			c.JSON(http.StatusConflict, gin.H{"error": "A category with this name already exists"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

// DeleteCategory refuses to remove a category that still has products
// assigned to it.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Category ID"})
		return
	}

	if err := h.Data.DeleteCategory(id); err != nil {
		if errors.Is(err, data.ErrCategoryInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete a category that still has products"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
