package handlers

import (
	"net/http"
	"strconv"
	"time"

	"replenishhq/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) GetNotifications(c *gin.Context) {
	notifications := h.Data.GetNotifications()

	now := time.Now()
	unread := 0
	for i, n := range notifications {
		// Seeded entries carry a fixed label; everything else shows
		// how long ago it happened.
		if n.CreatedAt != 0 {
			notifications[i].Time = utils.RelativeTime(time.Unix(n.CreatedAt, 0), now)
		}
		if !n.Read {
			unread++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unreadCount":   unread,
	})
}

func (h *Handlers) MarkNotificationRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Notification ID"})
		return
	}

	if err := h.Data.MarkNotificationRead(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (h *Handlers) MarkAllNotificationsRead(c *gin.Context) {
	h.Data.MarkAllNotificationsRead()
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// ClearNotifications wipes the list. Cleared stock alerts stay cleared;
// the scanner remembers what it has already raised.
func (h *Handlers) ClearNotifications(c *gin.Context) {
	h.Data.ClearNotifications()
	c.JSON(http.StatusOK, gin.H{"message": "Notifications cleared"})
}
