package feedbackRepo

import (
	"time"

	"eventparadise/models"
)

// FeedbackRepository defines methods for feedback data access.
type FeedbackRepository interface {
	// GetByEvent retrieves all feedback entries of the given event.
	GetByEvent(eventID string) ([]models.Feedback, error)
	// Create inserts a new feedback record.
	Create(feedback *models.Feedback) error
	// DeleteOlderThan removes feedback created before the cutoff and returns
	// the number of deleted records.
	DeleteOlderThan(cutoff time.Time) (int64, error)
}
