package handlers

import (
	"net/http"

	"beautymatch/models"
	"beautymatch/services/notification"
	"beautymatch/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the recipient-side notification endpoints.
type NotificationHandler struct {
	NotificationService notification.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler instance.
func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{NotificationService: svc}
}

// ListNotificationsHandler handles GET /api/notifications.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	notifications, err := h.NotificationService.ListForUser(c, userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list notifications", err.Error())
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkReadHandler handles POST /api/notifications/read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	if err := h.NotificationService.MarkRead(c, req.IDs); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to mark notifications read", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notifications marked read"})
}
