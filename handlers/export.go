package handlers

import (
	"fmt"
	"net/http"

	guestRepo "eventparadise/database/repository/guest"
	paymentRepo "eventparadise/database/repository/payment"
	"eventparadise/services/export"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExportHandler serves CSV downloads of event data.
type ExportHandler struct {
	Guests   guestRepo.GuestRepository
	Payments paymentRepo.PaymentRepository
}

func NewExportHandler(guests guestRepo.GuestRepository, payments paymentRepo.PaymentRepository) *ExportHandler {
	return &ExportHandler{Guests: guests, Payments: payments}
}

// GuestsCSV streams the event's guest list as a CSV attachment.
func (h *ExportHandler) GuestsCSV(c *gin.Context) {
	logger := getLogger(c)
	eventID := c.Param("eventId")

	guests, err := h.Guests.GetByEvent(eventID)
	if err != nil {
		logger.Error("Failed to load guests for export", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export guests"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=guests_%s.csv", eventID))
	c.Header("Content-Type", "text/csv")
	if err := export.GuestCSV(c.Writer, guests); err != nil {
		logger.Error("Failed to write guest CSV", zap.Error(err))
	}
}

// PaymentsCSV streams the event's payment ledger as a CSV attachment.
func (h *ExportHandler) PaymentsCSV(c *gin.Context) {
	logger := getLogger(c)
	eventID := c.Param("eventId")

	payments, err := h.Payments.GetByEvent(eventID)
	if err != nil {
		logger.Error("Failed to load payments for export", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export payments"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payments_%s.csv", eventID))
	c.Header("Content-Type", "text/csv")
	if err := export.PaymentCSV(c.Writer, payments); err != nil {
		logger.Error("Failed to write payment CSV", zap.Error(err))
	}
}
