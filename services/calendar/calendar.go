package calendar

import (
	"context"

	"eventparadise/config"
	"eventparadise/models"
	"eventparadise/utils"

	"go.uber.org/zap"
)

// Sync mirrors events into an external calendar. All methods return the
// external calendar event ID so it can be stored on the event record.
type Sync interface {
	CreateEvent(ctx context.Context, event *models.Event) (string, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, calendarEventID string) error
}

// NewFromConfig returns the Google Calendar sync when credentials are
// configured, and the in-memory sync otherwise.
func NewFromConfig(ctx context.Context) Sync {
	cfg := config.AppConfig
	if cfg.GoogleCredentialsFile != "" && cfg.GoogleCalendarID != "" {
		sync, err := NewGoogleSync(ctx, cfg.GoogleCredentialsFile, cfg.GoogleCalendarID)
		if err != nil {
			utils.GetLogger().Error("Failed to initialize Google Calendar sync, falling back to in-memory",
				zap.Error(err))
			return NewMemorySync()
		}
		return sync
	}
	return NewMemorySync()
}
