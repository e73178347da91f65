package handlers

import (
	"io"
	"net/http"
	"time"

	eventRepo "eventparadise/database/repository/event"
	paymentRepo "eventparadise/database/repository/payment"
	userRepo "eventparadise/database/repository/user"
	"eventparadise/models"
	"eventparadise/services/mailer"
	"eventparadise/services/notification"
	"eventparadise/services/payment"
	"eventparadise/services/qr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentHandler serves payment recording, Stripe intents and webhooks.
type PaymentHandler struct {
	Payments  paymentRepo.PaymentRepository
	Events    eventRepo.EventRepository
	Users     userRepo.UserRepository
	Processor payment.Processor
	Mail      mailer.Mailer
	Notifier  notification.NotificationService
}

func NewPaymentHandler(payments paymentRepo.PaymentRepository, events eventRepo.EventRepository,
	users userRepo.UserRepository, processor payment.Processor,
	mail mailer.Mailer, notifier notification.NotificationService) *PaymentHandler {
	return &PaymentHandler{
		Payments: payments, Events: events, Users: users,
		Processor: processor, Mail: mail, Notifier: notifier,
	}
}

type recordPaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentType   string  `json:"paymentType" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
	TransactionID string  `json:"transactionId"`
}

// Record stores a completed out-of-band payment (cash, bank transfer),
// writes a receipt QR, emails the organizer a receipt and notifies them.
func (h *PaymentHandler) Record(c *gin.Context) {
	logger := getLogger(c)

	event, err := h.Events.GetByID(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	pay := &models.Payment{
		ID:            uuid.New().String(),
		EventID:       event.ID,
		Amount:        req.Amount,
		PaymentType:   req.PaymentType,
		PaymentMethod: req.PaymentMethod,
		Status:        models.PaymentStatusCompleted,
		TransactionID: req.TransactionID,
		CreatedAt:     time.Now(),
	}
	if pay.TransactionID == "" {
		pay.TransactionID = "txn_" + uuid.New().String()
	}

	if err := h.Payments.Create(pay); err != nil {
		logger.Error("Failed to record payment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	if _, err := qr.ReceiptQR(pay); err != nil {
		logger.Warn("Failed to generate receipt QR code", zap.String("paymentId", pay.ID), zap.Error(err))
	}

	if organizer, err := h.Users.GetByID(event.OrganizerID); err == nil && organizer != nil {
		subject, body := mailer.PaymentReceiptEmail(pay, event)
		h.Mail.Send(c.Request.Context(), organizer.Email, subject, body)
	}
	notification.NotifyPaymentActivity(h.Notifier, pay, event.OrganizerID, notification.SubtypePaymentReceived)

	logger.Info("Payment recorded",
		zap.String("eventId", event.ID), zap.Float64("amount", pay.Amount))
	c.JSON(http.StatusCreated, pay)
}

// List returns all payments of an event.
func (h *PaymentHandler) List(c *gin.Context) {
	logger := getLogger(c)

	payments, err := h.Payments.GetByEvent(c.Param("eventId"))
	if err != nil {
		logger.Error("Failed to list payments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

type createIntentRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Currency    string  `json:"currency"`
	PaymentType string  `json:"paymentType" binding:"required"`
}

// CreateIntent opens a card payment through the processor and stores a
// pending payment record carrying the intent ID.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	logger := getLogger(c)

	event, err := h.Events.GetByID(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	intent, err := h.Processor.CreateIntent(c.Request.Context(), req.Amount, currency, event.ID)
	if err != nil {
		logger.Error("Failed to create payment intent", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable"})
		return
	}

	pay := &models.Payment{
		ID:                    uuid.New().String(),
		EventID:               event.ID,
		Amount:                req.Amount,
		PaymentType:           req.PaymentType,
		PaymentMethod:         "card",
		Status:                models.PaymentStatusPending,
		TransactionID:         intent.ID,
		StripePaymentIntentID: intent.ID,
		CreatedAt:             time.Now(),
	}
	if err := h.Payments.Create(pay); err != nil {
		logger.Error("Failed to store pending payment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store payment"})
		return
	}

	notification.NotifyPaymentActivity(h.Notifier, pay, event.OrganizerID, notification.SubtypePaymentPending)
	c.JSON(http.StatusCreated, gin.H{"paymentId": pay.ID, "clientSecret": intent.ClientSecret})
}

// Webhook receives provider callbacks and settles the matching payment.
// The endpoint is unauthenticated; the signature header is the trust anchor.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	logger := getLogger(c)

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read payload"})
		return
	}

	event, err := h.Processor.ParseWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		logger.Warn("Rejected payment webhook", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook"})
		return
	}

	switch event.Type {
	case payment.WebhookIntentSucceeded:
		if err := h.Payments.UpdateStatusByIntentID(event.IntentID, models.PaymentStatusCompleted); err != nil {
			logger.Error("Failed to settle payment",
				zap.String("intentId", event.IntentID), zap.Error(err))
		}
	case payment.WebhookIntentFailed:
		if err := h.Payments.UpdateStatusByIntentID(event.IntentID, models.PaymentStatusFailed); err != nil {
			logger.Error("Failed to mark payment failed",
				zap.String("intentId", event.IntentID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
