package handlers

import (
	"net/http"
	"time"

	eventRepo "eventparadise/database/repository/event"
	"eventparadise/models"
	"eventparadise/services/calendar"
	"eventparadise/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventHandler serves the event CRUD endpoints.
type EventHandler struct {
	Events   eventRepo.EventRepository
	Calendar calendar.Sync
	Notifier notification.NotificationService
}

func NewEventHandler(events eventRepo.EventRepository, cal calendar.Sync, notifier notification.NotificationService) *EventHandler {
	return &EventHandler{Events: events, Calendar: cal, Notifier: notifier}
}

type eventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Venue       string    `json:"venue" binding:"required"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	Budget      float64   `json:"budget"`
}

// List returns the caller's events. Admins see all events.
func (h *EventHandler) List(c *gin.Context) {
	logger := getLogger(c)

	var (
		events []models.Event
		err    error
	)
	if role, _ := c.Get("role"); role == models.RoleAdmin {
		events, err = h.Events.GetAll()
	} else {
		events, err = h.Events.GetByOrganizer(currentUserID(c))
	}
	if err != nil {
		logger.Error("Failed to list events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// Get returns one event by ID.
func (h *EventHandler) Get(c *gin.Context) {
	event, ok := h.loadOwned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, event)
}

// Create stores a new event, mirrors it to the calendar best-effort and
// notifies the organizer.
func (h *EventHandler) Create(c *gin.Context) {
	logger := getLogger(c)

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if !req.EndDate.After(req.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must be after start date"})
		return
	}

	now := time.Now()
	event := &models.Event{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      models.EventStatusPlanned,
		Budget:      req.Budget,
		OrganizerID: currentUserID(c),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Calendar sync is best-effort; the event is created either way.
	if calID, err := h.Calendar.CreateEvent(c.Request.Context(), event); err != nil {
		logger.Warn("Calendar sync failed", zap.String("eventId", event.ID), zap.Error(err))
	} else {
		event.CalendarEventID = calID
	}

	if err := h.Events.Create(event); err != nil {
		logger.Error("Failed to create event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	notification.NotifyEventActivity(h.Notifier, event, notification.SubtypeEventCreated)
	logger.Info("Event created", zap.String("eventId", event.ID))
	c.JSON(http.StatusCreated, event)
}

type eventUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Venue       *string    `json:"venue"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Status      *string    `json:"status"`
	Budget      *float64   `json:"budget"`
}

// Update applies a partial update and re-syncs the calendar entry.
func (h *EventHandler) Update(c *gin.Context) {
	logger := getLogger(c)

	event, ok := h.loadOwned(c)
	if !ok {
		return
	}

	var req eventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.Status != nil {
		if !validEventStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event status"})
			return
		}
		event.Status = *req.Status
	}
	if req.Budget != nil {
		event.Budget = *req.Budget
	}
	if !event.EndDate.After(event.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must be after start date"})
		return
	}
	event.UpdatedAt = time.Now()

	if err := h.Events.Update(event); err != nil {
		logger.Error("Failed to update event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	if event.CalendarEventID != "" {
		if err := h.Calendar.UpdateEvent(c.Request.Context(), event); err != nil {
			logger.Warn("Calendar sync failed", zap.String("eventId", event.ID), zap.Error(err))
		}
	}

	subtype := notification.SubtypeEventUpdated
	if event.Status == models.EventStatusCancelled {
		subtype = notification.SubtypeEventCancelled
	}
	notification.NotifyEventActivity(h.Notifier, event, subtype)
	c.JSON(http.StatusOK, event)
}

// Delete removes the event and its calendar mirror.
func (h *EventHandler) Delete(c *gin.Context) {
	logger := getLogger(c)

	event, ok := h.loadOwned(c)
	if !ok {
		return
	}

	if err := h.Events.Delete(event.ID); err != nil {
		logger.Error("Failed to delete event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	if event.CalendarEventID != "" {
		if err := h.Calendar.DeleteEvent(c.Request.Context(), event.CalendarEventID); err != nil {
			logger.Warn("Calendar cleanup failed", zap.String("eventId", event.ID), zap.Error(err))
		}
	}

	logger.Info("Event deleted", zap.String("eventId", event.ID))
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// loadOwned fetches the event in the "id" path param and enforces that the
// caller owns it (admins bypass the ownership check). On failure it writes
// the error response and returns ok=false.
func (h *EventHandler) loadOwned(c *gin.Context) (*models.Event, bool) {
	logger := getLogger(c)

	event, err := h.Events.GetByID(c.Param("eventId"))
	if err != nil {
		logger.Error("Failed to load event", zap.String("eventId", c.Param("eventId")), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return nil, false
	}

	role, _ := c.Get("role")
	if role != models.RoleAdmin && event.OrganizerID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your event"})
		return nil, false
	}
	return event, true
}

func validEventStatus(status string) bool {
	switch status {
	case models.EventStatusPlanned, models.EventStatusOngoing,
		models.EventStatusCompleted, models.EventStatusCancelled:
		return true
	}
	return false
}
