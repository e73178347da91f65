package models

import "time"

// Notification kind values.
const (
	NotificationKindEvent   = "event"
	NotificationKindPayment = "payment"
	NotificationKindGuest   = "guest"
	NotificationKindSystem  = "system"
)

// Notification is a store-and-forward message targeted at a single user.
// It is created by the coordinator on a domain event, marked delivered once
// pushed through a realtime channel, and purged by the cleanup job.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	UserID    string         `bson:"userId" json:"userId"`
	Kind      string         `bson:"kind" json:"kind"`
	Subtype   string         `bson:"subtype" json:"subtype"`
	Title     string         `bson:"title" json:"title"`
	Message   string         `bson:"message" json:"message"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	Delivered bool           `bson:"delivered" json:"delivered"`
	Read      bool           `bson:"read" json:"read"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}
