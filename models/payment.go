package models

import "time"

// Payment status values.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Payment records money received or spent for an event.
type Payment struct {
	ID                    string    `bson:"id" json:"id"`
	EventID               string    `bson:"eventId" json:"eventId"`
	Amount                float64   `bson:"amount" json:"amount"`
	PaymentType           string    `bson:"paymentType" json:"paymentType"`
	PaymentMethod         string    `bson:"paymentMethod" json:"paymentMethod"`
	Status                string    `bson:"status" json:"status"`
	TransactionID         string    `bson:"transactionId" json:"transactionId"`
	StripePaymentIntentID string    `bson:"stripePaymentIntentId,omitempty" json:"stripePaymentIntentId,omitempty"`
	CreatedAt             time.Time `bson:"createdAt" json:"createdAt"`
}
