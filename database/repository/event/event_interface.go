package eventRepo

import (
	"time"

	"eventparadise/models"
)

// EventRepository defines methods for event data access.
type EventRepository interface {
	// GetByID retrieves an event by its unique ID.
	GetByID(id string) (*models.Event, error)
	// GetByOrganizer retrieves all events owned by the given organizer.
	GetByOrganizer(organizerID string) ([]models.Event, error)
	// GetAll retrieves all events.
	GetAll() ([]models.Event, error)
	// GetStartingBetween retrieves events whose start date falls inside the
	// window, optionally restricted to the given statuses.
	GetStartingBetween(from, to time.Time, statuses ...string) ([]models.Event, error)
	// GetEndedBetween retrieves events with the given status whose end date
	// falls inside the window.
	GetEndedBetween(from, to time.Time, status string) ([]models.Event, error)
	// CountCreatedBetween counts events created inside the window.
	CountCreatedBetween(from, to time.Time) (int64, error)
	// Create inserts a new event record.
	Create(event *models.Event) error
	// Update modifies an existing event record.
	Update(event *models.Event) error
	// Delete removes an event record by its ID.
	Delete(id string) error
	// Count returns the total number of events.
	Count() (int64, error)
}
