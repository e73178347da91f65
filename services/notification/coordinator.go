package notification

import (
	"sync"
	"time"

	notificationRepo "eventparadise/database/repository/notification"
	userRepo "eventparadise/database/repository/user"
	"eventparadise/models"
	"eventparadise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const unreadFetchLimit = 50

// Coordinator is the production NotificationService. It owns the connection
// registry and the per-user pending queues; both are process-local state,
// rebuilt empty on restart. Persisted Notification records are the recovery
// path for anything queued at crash time.
type Coordinator struct {
	repo  notificationRepo.NotificationRepository
	users userRepo.UserRepository

	mu       sync.Mutex
	registry map[string]Channel
	pending  map[string][]*models.Notification
}

// NewCoordinator creates a Coordinator backed by the given repositories.
func NewCoordinator(repo notificationRepo.NotificationRepository, users userRepo.UserRepository) *Coordinator {
	return &Coordinator{
		repo:     repo,
		users:    users,
		registry: make(map[string]Channel),
		pending:  make(map[string][]*models.Notification),
	}
}

// Notify builds a notification for one user and attempts delivery. If the
// user has a live channel the notification is pushed immediately, otherwise
// it is appended to the user's pending queue. At most one push attempt is
// made per call; a failed push is logged and reported as false without
// queuing or retrying.
func (c *Coordinator) Notify(userID, kind, subtype string, data map[string]any) bool {
	logger := utils.GetLogger()

	title, message := RenderMessage(kind, subtype, data)
	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Kind:      kind,
		Subtype:   subtype,
		Title:     title,
		Message:   message,
		Data:      data,
		CreatedAt: time.Now(),
	}

	c.persist(n)

	c.mu.Lock()
	ch, online := c.registry[userID]
	if !online {
		c.pending[userID] = append(c.pending[userID], n)
		c.mu.Unlock()
		logger.Debug("Notification queued for offline user",
			zap.String("userId", userID), zap.String("subtype", subtype))
		return false
	}
	c.mu.Unlock()

	if err := ch.Push(n); err != nil {
		logger.Error("Failed to push notification",
			zap.String("userId", userID), zap.String("subtype", subtype), zap.Error(err))
		return false
	}

	n.Delivered = true
	c.markDelivered(n.ID)
	logger.Debug("Notification delivered",
		zap.String("userId", userID), zap.String("subtype", subtype))
	return true
}

// Broadcast pushes an identical payload to every connected user, optionally
// restricted to one role. Nothing is persisted and nothing is queued for
// offline users.
func (c *Coordinator) Broadcast(kind, subtype string, data map[string]any, roleFilter string) int {
	logger := utils.GetLogger()
	title, message := RenderMessage(kind, subtype, data)
	now := time.Now()

	c.mu.Lock()
	targets := make(map[string]Channel, len(c.registry))
	for id, ch := range c.registry {
		targets[id] = ch
	}
	c.mu.Unlock()

	reached := 0
	for userID, ch := range targets {
		if roleFilter != "" && !c.hasRole(userID, roleFilter) {
			continue
		}
		n := &models.Notification{
			ID:        uuid.New().String(),
			UserID:    userID,
			Kind:      kind,
			Subtype:   subtype,
			Title:     title,
			Message:   message,
			Data:      data,
			Delivered: true,
			CreatedAt: now,
		}
		if err := ch.Push(n); err != nil {
			logger.Warn("Broadcast push failed",
				zap.String("userId", userID), zap.Error(err))
			continue
		}
		reached++
	}

	logger.Info("Broadcast sent",
		zap.String("subtype", subtype), zap.Int("reached", reached))
	return reached
}

// Connect registers the channel for a user and drains that user's pending
// queue in FIFO order. Each drained notification is pushed once and then
// discarded, whether or not the push succeeded. Draining an empty queue is
// a no-op.
func (c *Coordinator) Connect(userID string, ch Channel) {
	logger := utils.GetLogger()

	c.mu.Lock()
	c.registry[userID] = ch
	queued := c.pending[userID]
	delete(c.pending, userID)
	c.mu.Unlock()

	for _, n := range queued {
		if err := ch.Push(n); err != nil {
			logger.Warn("Failed to deliver queued notification",
				zap.String("userId", userID), zap.String("id", n.ID), zap.Error(err))
			continue
		}
		n.Delivered = true
		c.markDelivered(n.ID)
	}

	logger.Info("User connected",
		zap.String("userId", userID), zap.Int("drained", len(queued)))
}

// Disconnect drops the user's registry entry if it still maps to ch. A user
// who reconnects before the old connection finishes dying would otherwise
// lose the live channel when the stale one tears down. Safe to call for
// users that were never connected.
func (c *Coordinator) Disconnect(userID string, ch Channel) {
	c.mu.Lock()
	current, ok := c.registry[userID]
	if !ok || current != ch {
		c.mu.Unlock()
		return
	}
	delete(c.registry, userID)
	c.mu.Unlock()

	utils.GetLogger().Info("User disconnected", zap.String("userId", userID))
}

// ConnectedUsers returns the IDs of currently connected users.
func (c *Coordinator) ConnectedUsers() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]string, 0, len(c.registry))
	for id := range c.registry {
		ids = append(ids, id)
	}
	return ids
}

// UnreadForUser lists the user's unread notifications, newest first.
func (c *Coordinator) UnreadForUser(userID string) ([]models.Notification, error) {
	return c.repo.UnreadForUser(userID, unreadFetchLimit)
}

// MarkRead flags one notification as read.
func (c *Coordinator) MarkRead(userID, id string) error {
	return c.repo.MarkRead(userID, id)
}

// CleanupOlderThan purges notifications older than the given number of days.
func (c *Coordinator) CleanupOlderThan(days int) int64 {
	cutoff := time.Now().AddDate(0, 0, -days)
	count, err := c.repo.DeleteOlderThan(cutoff)
	if err != nil {
		utils.GetLogger().Error("Failed to clean up old notifications", zap.Error(err))
		return 0
	}
	return count
}

// persist writes the notification record. Persistence is best-effort: a
// store failure must not block delivery.
func (c *Coordinator) persist(n *models.Notification) {
	if c.repo == nil {
		return
	}
	if err := c.repo.Create(n); err != nil {
		utils.GetLogger().Error("Failed to persist notification",
			zap.String("id", n.ID), zap.Error(err))
	}
}

func (c *Coordinator) markDelivered(id string) {
	if c.repo == nil {
		return
	}
	if err := c.repo.MarkDelivered(id); err != nil {
		utils.GetLogger().Warn("Failed to mark notification delivered",
			zap.String("id", id), zap.Error(err))
	}
}

func (c *Coordinator) hasRole(userID, role string) bool {
	if c.users == nil {
		return false
	}
	u, err := c.users.GetByID(userID)
	if err != nil || u == nil {
		return false
	}
	return u.Role == role
}
