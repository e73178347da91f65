package handlers

import (
	"net/http"
	"time"

	feedbackRepo "eventparadise/database/repository/feedback"
	guestRepo "eventparadise/database/repository/guest"
	"eventparadise/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FeedbackHandler serves event feedback submission and listing.
type FeedbackHandler struct {
	Feedback feedbackRepo.FeedbackRepository
	Guests   guestRepo.GuestRepository
}

func NewFeedbackHandler(feedback feedbackRepo.FeedbackRepository, guests guestRepo.GuestRepository) *FeedbackHandler {
	return &FeedbackHandler{Feedback: feedback, Guests: guests}
}

type submitFeedbackRequest struct {
	TicketNumber string `json:"ticketNumber" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comments     string `json:"comments"`
}

// Submit records a guest's rating, keyed by their ticket number.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	logger := getLogger(c)

	var req submitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	guest, err := h.Guests.GetByTicketNumber(req.TicketNumber)
	if err != nil || guest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}
	if guest.EventID != c.Param("eventId") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticket does not belong to this event"})
		return
	}

	fb := &models.Feedback{
		ID:        uuid.New().String(),
		EventID:   guest.EventID,
		GuestID:   guest.ID,
		Rating:    req.Rating,
		Comments:  req.Comments,
		CreatedAt: time.Now(),
	}
	if err := h.Feedback.Create(fb); err != nil {
		logger.Error("Failed to store feedback", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit feedback"})
		return
	}

	c.JSON(http.StatusCreated, fb)
}

// List returns all feedback of an event.
func (h *FeedbackHandler) List(c *gin.Context) {
	logger := getLogger(c)

	entries, err := h.Feedback.GetByEvent(c.Param("eventId"))
	if err != nil {
		logger.Error("Failed to list feedback", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve feedback"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
