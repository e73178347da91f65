package guestRepo

import (
	"time"

	"eventparadise/models"
)

// GuestRepository defines methods for guest data access.
type GuestRepository interface {
	// GetByID retrieves a guest by its unique ID.
	GetByID(id string) (*models.Guest, error)
	// GetByEvent retrieves all guests of the given event.
	GetByEvent(eventID string) ([]models.Guest, error)
	// GetByTicketNumber retrieves a guest by its ticket number.
	GetByTicketNumber(ticket string) (*models.Guest, error)
	// CountByEvent counts the guests of the given event.
	CountByEvent(eventID string) (int64, error)
	// CountCreatedBetween counts guests registered inside the window.
	CountCreatedBetween(from, to time.Time) (int64, error)
	// Create inserts a new guest record.
	Create(guest *models.Guest) error
	// Update modifies an existing guest record.
	Update(guest *models.Guest) error
	// Delete removes a guest record by its ID.
	Delete(id string) error
	// Count returns the total number of guests.
	Count() (int64, error)
}
