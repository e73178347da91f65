package notificationRepo

import (
	"time"

	"eventparadise/models"
)

// NotificationRepository defines methods for notification persistence.
type NotificationRepository interface {
	// Create inserts a new notification record.
	Create(n *models.Notification) error
	// MarkDelivered flags the notification as delivered.
	MarkDelivered(id string) error
	// MarkRead flags the notification as read for the given user.
	MarkRead(userID, id string) error
	// UnreadForUser retrieves up to limit unread notifications for the user,
	// newest first.
	UnreadForUser(userID string, limit int64) ([]models.Notification, error)
	// DeleteOlderThan removes notifications created before the cutoff and
	// returns the number of deleted records.
	DeleteOlderThan(cutoff time.Time) (int64, error)
}
