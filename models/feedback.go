package models

import "time"

// Feedback is a guest rating for a completed event.
type Feedback struct {
	ID        string    `bson:"id" json:"id"`
	EventID   string    `bson:"eventId" json:"eventId"`
	GuestID   string    `bson:"guestId" json:"guestId"`
	Rating    int       `bson:"rating" json:"rating"`
	Comments  string    `bson:"comments,omitempty" json:"comments,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
