package models

import "time"

// RSVP status values for Guest.RSVPStatus.
const (
	RSVPPending   = "pending"
	RSVPConfirmed = "confirmed"
	RSVPDeclined  = "declined"
)

// Guest is an invitee of a single event, identified by a ticket number.
type Guest struct {
	ID           string    `bson:"id" json:"id"`
	EventID      string    `bson:"eventId" json:"eventId"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	RSVPStatus   string    `bson:"rsvpStatus" json:"rsvpStatus"`
	CheckedIn    bool      `bson:"checkedIn" json:"checkedIn"`
	TicketNumber string    `bson:"ticketNumber" json:"ticketNumber"`
	QRCodePath   string    `bson:"qrCodePath,omitempty" json:"qrCodePath,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
