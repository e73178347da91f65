package handlers

import (
	"net/http"
	"time"

	eventRepo "eventparadise/database/repository/event"
	vendorRepo "eventparadise/database/repository/vendor"
	"eventparadise/models"
	"eventparadise/services/mailer"
	"eventparadise/services/qr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VendorHandler serves the vendor endpoints.
type VendorHandler struct {
	Vendors vendorRepo.VendorRepository
	Events  eventRepo.EventRepository
	Mail    mailer.Mailer
}

func NewVendorHandler(vendors vendorRepo.VendorRepository, events eventRepo.EventRepository, mail mailer.Mailer) *VendorHandler {
	return &VendorHandler{Vendors: vendors, Events: events, Mail: mail}
}

type addVendorRequest struct {
	Name           string  `json:"name" binding:"required"`
	ServiceType    string  `json:"serviceType" binding:"required"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	ContractAmount float64 `json:"contractAmount"`
}

// Add assigns a vendor to an event, generates a badge QR code and sends the
// confirmation email when an address is present.
func (h *VendorHandler) Add(c *gin.Context) {
	logger := getLogger(c)

	event, err := h.Events.GetByID(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var req addVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	vendor := &models.Vendor{
		ID:             uuid.New().String(),
		EventID:        event.ID,
		Name:           req.Name,
		ServiceType:    req.ServiceType,
		Email:          req.Email,
		Phone:          req.Phone,
		ContractAmount: req.ContractAmount,
		PaymentStatus:  models.VendorPaymentPending,
		CreatedAt:      time.Now(),
	}
	if err := h.Vendors.Create(vendor); err != nil {
		logger.Error("Failed to create vendor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add vendor"})
		return
	}

	if _, err := qr.BadgeQR(vendor, event); err != nil {
		logger.Warn("Failed to generate vendor badge", zap.String("vendorId", vendor.ID), zap.Error(err))
	}
	if vendor.Email != "" {
		subject, body := mailer.VendorWelcomeEmail(vendor, event)
		h.Mail.Send(c.Request.Context(), vendor.Email, subject, body)
	}

	logger.Info("Vendor added", zap.String("eventId", event.ID), zap.String("vendorId", vendor.ID))
	c.JSON(http.StatusCreated, vendor)
}

// List returns all vendors of an event.
func (h *VendorHandler) List(c *gin.Context) {
	logger := getLogger(c)

	vendors, err := h.Vendors.GetByEvent(c.Param("eventId"))
	if err != nil {
		logger.Error("Failed to list vendors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vendors"})
		return
	}
	c.JSON(http.StatusOK, vendors)
}

type vendorUpdateRequest struct {
	Name           *string  `json:"name"`
	ServiceType    *string  `json:"serviceType"`
	Email          *string  `json:"email"`
	Phone          *string  `json:"phone"`
	ContractAmount *float64 `json:"contractAmount"`
	PaymentStatus  *string  `json:"paymentStatus"`
}

// Update applies a partial update to a vendor record.
func (h *VendorHandler) Update(c *gin.Context) {
	logger := getLogger(c)

	vendor, err := h.Vendors.GetByID(c.Param("vendorId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	var req vendorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.ServiceType != nil {
		vendor.ServiceType = *req.ServiceType
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.ContractAmount != nil {
		vendor.ContractAmount = *req.ContractAmount
	}
	if req.PaymentStatus != nil {
		switch *req.PaymentStatus {
		case models.VendorPaymentPending, models.VendorPaymentPartial, models.VendorPaymentPaid:
			vendor.PaymentStatus = *req.PaymentStatus
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment status"})
			return
		}
	}

	if err := h.Vendors.Update(vendor); err != nil {
		logger.Error("Failed to update vendor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vendor"})
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// Delete removes a vendor from an event.
func (h *VendorHandler) Delete(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Vendors.Delete(c.Param("vendorId")); err != nil {
		logger.Error("Failed to delete vendor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vendor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vendor removed"})
}
