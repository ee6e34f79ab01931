package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ProfileNameRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateProfileName renames the signed-in user for display purposes.
// The change applies to the stored session, not the login accounts.
func (h *Handlers) UpdateProfileName(c *gin.Context) {
	var input ProfileNameRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	user, err := h.Auth.UpdateName(input.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
}

// The profile picture is stored as a data URL, the same way the
// browser's file reader produces it.

func (h *Handlers) GetProfilePicture(c *gin.Context) {
	picture, ok := h.Data.GetProfilePicture()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No profile picture set"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"picture": picture})
}

type ProfilePictureRequest struct {
	Picture string `json:"picture" binding:"required"`
}

func (h *Handlers) SetProfilePicture(c *gin.Context) {
	var input ProfilePictureRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if !strings.HasPrefix(input.Picture, "data:image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Picture must be an image data URL"})
		return
	}

	h.Data.SetProfilePicture(input.Picture)
	c.JSON(http.StatusOK, gin.H{"message": "Profile picture updated"})
}

func (h *Handlers) RemoveProfilePicture(c *gin.Context) {
	h.Data.RemoveProfilePicture()
	c.JSON(http.StatusOK, gin.H{"message": "Profile picture removed"})
}
