package paymentRepo

import (
	"time"

	"eventparadise/models"
)

// PaymentRepository defines methods for payment data access.
type PaymentRepository interface {
	// GetByID retrieves a payment by its unique ID.
	GetByID(id string) (*models.Payment, error)
	// GetByEvent retrieves all payments of the given event.
	GetByEvent(eventID string) ([]models.Payment, error)
	// CountByEvent counts the payments of the given event.
	CountByEvent(eventID string) (int64, error)
	// CountCompletedBetween counts completed payments created inside the window.
	CountCompletedBetween(from, to time.Time) (int64, error)
	// SumCompletedBetween sums completed payment amounts created inside the window.
	SumCompletedBetween(from, to time.Time) (float64, error)
	// Create inserts a new payment record.
	Create(payment *models.Payment) error
	// UpdateStatusByIntentID sets the status of the payment holding the given
	// Stripe PaymentIntent ID.
	UpdateStatusByIntentID(intentID, status string) error
	// Count returns the total number of payments.
	Count() (int64, error)
}
