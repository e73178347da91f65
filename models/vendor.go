package models

import "time"

// Vendor payment status values.
const (
	VendorPaymentPending = "pending"
	VendorPaymentPartial = "partial"
	VendorPaymentPaid    = "paid"
)

// Vendor is a service provider contracted for an event.
type Vendor struct {
	ID             string    `bson:"id" json:"id"`
	EventID        string    `bson:"eventId" json:"eventId"`
	Name           string    `bson:"name" json:"name"`
	ServiceType    string    `bson:"serviceType" json:"serviceType"`
	Email          string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`
	ContractAmount float64   `bson:"contractAmount" json:"contractAmount"`
	PaymentStatus  string    `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}
