package models

import "time"

// Event status values.
const (
	EventStatusPlanned   = "planned"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// Event is an organizer-owned event with guests, vendors and payments
// attached by eventID.
type Event struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Venue           string    `bson:"venue" json:"venue"`
	StartDate       time.Time `bson:"startDate" json:"startDate"`
	EndDate         time.Time `bson:"endDate" json:"endDate"`
	Status          string    `bson:"status" json:"status"`
	Budget          float64   `bson:"budget" json:"budget"`
	OrganizerID     string    `bson:"organizerId" json:"organizerId"`
	CalendarEventID string    `bson:"calendarEventId,omitempty" json:"calendarEventId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
