package notification

import "eventparadise/models"

// Channel is a live realtime connection handle for one user. The coordinator
// is transport-agnostic beyond this single operation; the websocket handler
// provides the production implementation.
type Channel interface {
	Push(n *models.Notification) error
}

// NotificationService decides notification routing and queuing: who gets
// notified about a domain event, through which channel, with store-and-forward
// when the target user is offline.
type NotificationService interface {
	// Notify builds and routes a notification to a single user. It returns
	// true when the notification was pushed through a live channel, false when
	// it was queued for later delivery or the push failed. It never returns an
	// error: notifications are a best-effort side channel.
	Notify(userID, kind, subtype string, data map[string]any) bool

	// Broadcast pushes an identical payload to every connected user,
	// optionally filtered by role, and returns the number of users reached.
	// Offline users are not queued; broadcasts are fire-and-forget.
	Broadcast(kind, subtype string, data map[string]any, roleFilter string) int

	// Connect registers a live channel for the user and drains any pending
	// notifications to it in FIFO order.
	Connect(userID string, ch Channel)

	// Disconnect drops the user's channel, but only if the registry still
	// holds ch: tearing down a stale connection after the user reconnected
	// must not unregister the newer channel. Once the entry is removed,
	// subsequent notifies queue.
	Disconnect(userID string, ch Channel)

	// ConnectedUsers returns the IDs of currently connected users.
	ConnectedUsers() []string

	// UnreadForUser lists the user's unread notifications, newest first.
	UnreadForUser(userID string) ([]models.Notification, error)

	// MarkRead flags one notification as read.
	MarkRead(userID, id string) error

	// CleanupOlderThan purges notifications older than the given number of
	// days and returns how many were removed.
	CleanupOlderThan(days int) int64
}
