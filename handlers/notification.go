package handlers

import (
	"net/http"

	"eventparadise/models"
	"eventparadise/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler serves the notification inbox endpoints.
type NotificationHandler struct {
	Notifier notification.NotificationService
}

func NewNotificationHandler(notifier notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Notifier: notifier}
}

// Unread returns the caller's unread notifications, newest first.
func (h *NotificationHandler) Unread(c *gin.Context) {
	logger := getLogger(c)

	items, err := h.Notifier.UnreadForUser(currentUserID(c))
	if err != nil {
		logger.Error("Failed to load unread notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// MarkRead flags one of the caller's notifications as read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.Notifier.MarkRead(currentUserID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

type broadcastRequest struct {
	Subtype string         `json:"subtype" binding:"required"`
	Data    map[string]any `json:"data"`
	Role    string         `json:"role"`
}

// Broadcast pushes a system notification to every connected user. Admin only.
func (h *NotificationHandler) Broadcast(c *gin.Context) {
	var req broadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reached := h.Notifier.Broadcast(models.NotificationKindSystem, req.Subtype, req.Data, req.Role)
	c.JSON(http.StatusOK, gin.H{"reached": reached})
}

// Connected lists the IDs of currently connected users. Admin only.
func (h *NotificationHandler) Connected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"connected": h.Notifier.ConnectedUsers()})
}
