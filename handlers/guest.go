package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	eventRepo "eventparadise/database/repository/event"
	guestRepo "eventparadise/database/repository/guest"
	"eventparadise/models"
	"eventparadise/services/mailer"
	"eventparadise/services/notification"
	"eventparadise/services/qr"
	"eventparadise/services/sms"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GuestHandler serves guest registration, RSVP and check-in.
type GuestHandler struct {
	Guests   guestRepo.GuestRepository
	Events   eventRepo.EventRepository
	Mail     mailer.Mailer
	SMS      sms.Sender
	Notifier notification.NotificationService
}

func NewGuestHandler(guests guestRepo.GuestRepository, events eventRepo.EventRepository,
	mail mailer.Mailer, sender sms.Sender, notifier notification.NotificationService) *GuestHandler {
	return &GuestHandler{Guests: guests, Events: events, Mail: mail, SMS: sender, Notifier: notifier}
}

type addGuestRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// Add registers a guest for an event: generates the ticket and its QR code,
// emails the invitation, texts a welcome message when a phone number is
// present, and notifies the organizer. Email, SMS and notification are all
// best-effort side effects of the registration.
func (h *GuestHandler) Add(c *gin.Context) {
	logger := getLogger(c)

	event, err := h.Events.GetByID(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var req addGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	guest := &models.Guest{
		ID:           uuid.New().String(),
		EventID:      event.ID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		RSVPStatus:   models.RSVPPending,
		TicketNumber: newTicketNumber(),
		CreatedAt:    time.Now(),
	}

	if path, err := qr.TicketQR(guest, event); err != nil {
		logger.Warn("Failed to generate ticket QR code",
			zap.String("ticket", guest.TicketNumber), zap.Error(err))
	} else {
		guest.QRCodePath = path
	}

	if err := h.Guests.Create(guest); err != nil {
		logger.Error("Failed to create guest", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register guest"})
		return
	}

	ctx := c.Request.Context()
	subject, body := mailer.InvitationEmail(guest, event)
	h.Mail.Send(ctx, guest.Email, subject, body)
	if guest.Phone != "" {
		h.SMS.Send(ctx, guest.Phone, sms.WelcomeMessage(guest, event))
	}
	notification.NotifyGuestActivity(h.Notifier, guest, event, notification.SubtypeGuestRegistered)

	logger.Info("Guest registered",
		zap.String("eventId", event.ID), zap.String("ticket", guest.TicketNumber))
	c.JSON(http.StatusCreated, guest)
}

// List returns all guests of an event.
func (h *GuestHandler) List(c *gin.Context) {
	logger := getLogger(c)

	guests, err := h.Guests.GetByEvent(c.Param("eventId"))
	if err != nil {
		logger.Error("Failed to list guests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve guests"})
		return
	}
	c.JSON(http.StatusOK, guests)
}

type rsvpRequest struct {
	TicketNumber string `json:"ticketNumber" binding:"required"`
	Status       string `json:"status" binding:"required"`
}

// RSVP records a guest's RSVP response, confirms it by email and SMS and
// notifies the organizer. Guests hold no accounts; the ticket number from
// the invitation is their credential.
func (h *GuestHandler) RSVP(c *gin.Context) {
	logger := getLogger(c)

	var req rsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Status != models.RSVPConfirmed && req.Status != models.RSVPDeclined {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be confirmed or declined"})
		return
	}

	guest, err := h.Guests.GetByID(c.Param("guestId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}
	if !strings.EqualFold(strings.TrimSpace(req.TicketNumber), guest.TicketNumber) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Ticket number does not match"})
		return
	}
	event, err := h.Events.GetByID(guest.EventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	guest.RSVPStatus = req.Status
	if err := h.Guests.Update(guest); err != nil {
		logger.Error("Failed to update RSVP", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update RSVP"})
		return
	}

	ctx := c.Request.Context()
	subject, body := mailer.RSVPConfirmationEmail(guest, event, req.Status)
	h.Mail.Send(ctx, guest.Email, subject, body)
	if guest.Phone != "" {
		h.SMS.Send(ctx, guest.Phone, sms.RSVPConfirmationMessage(guest, event, req.Status))
	}

	subtype := notification.SubtypeGuestRSVPConfirmed
	if req.Status == models.RSVPDeclined {
		subtype = notification.SubtypeGuestRSVPDeclined
	}
	notification.NotifyGuestActivity(h.Notifier, guest, event, subtype)

	c.JSON(http.StatusOK, guest)
}

type checkInRequest struct {
	TicketNumber string `json:"ticketNumber" binding:"required"`
}

// CheckIn marks the guest holding the ticket as arrived. Checking in twice
// is rejected.
func (h *GuestHandler) CheckIn(c *gin.Context) {
	logger := getLogger(c)

	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	guest, err := h.Guests.GetByTicketNumber(strings.TrimSpace(req.TicketNumber))
	if err != nil || guest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}
	if guest.CheckedIn {
		c.JSON(http.StatusConflict, gin.H{"error": "Guest already checked in"})
		return
	}
	event, err := h.Events.GetByID(guest.EventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	guest.CheckedIn = true
	if err := h.Guests.Update(guest); err != nil {
		logger.Error("Failed to check in guest", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check in guest"})
		return
	}

	if guest.Phone != "" {
		h.SMS.Send(c.Request.Context(), guest.Phone, sms.CheckInMessage(guest, event))
	}
	notification.NotifyGuestActivity(h.Notifier, guest, event, notification.SubtypeGuestCheckedIn)

	logger.Info("Guest checked in",
		zap.String("eventId", event.ID), zap.String("ticket", guest.TicketNumber))
	c.JSON(http.StatusOK, guest)
}

// Delete removes a guest from an event.
func (h *GuestHandler) Delete(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Guests.Delete(c.Param("guestId")); err != nil {
		logger.Error("Failed to delete guest", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete guest"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Guest removed"})
}

func newTicketNumber() string {
	return fmt.Sprintf("EP-%s", strings.ToUpper(uuid.New().String()[:8]))
}
