package calendar

import (
	"context"
	"fmt"
	"time"

	"eventparadise/models"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleSync mirrors events into a Google Calendar via a service account.
type GoogleSync struct {
	svc        *gcal.Service
	calendarID string
}

func NewGoogleSync(ctx context.Context, credentialsFile, calendarID string) (*GoogleSync, error) {
	svc, err := gcal.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &GoogleSync{svc: svc, calendarID: calendarID}, nil
}

func (g *GoogleSync) CreateEvent(ctx context.Context, event *models.Event) (string, error) {
	created, err := g.svc.Events.Insert(g.calendarID, toCalendarEvent(event)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created.Id, nil
}

func (g *GoogleSync) UpdateEvent(ctx context.Context, event *models.Event) error {
	if event.CalendarEventID == "" {
		return fmt.Errorf("event %s has no calendar event ID", event.ID)
	}
	_, err := g.svc.Events.Update(g.calendarID, event.CalendarEventID, toCalendarEvent(event)).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update calendar event: %w", err)
	}
	return nil
}

func (g *GoogleSync) DeleteEvent(ctx context.Context, calendarEventID string) error {
	if err := g.svc.Events.Delete(g.calendarID, calendarEventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

func toCalendarEvent(event *models.Event) *gcal.Event {
	return &gcal.Event{
		Summary:     event.Title,
		Description: event.Description,
		Location:    event.Venue,
		Start:       &gcal.EventDateTime{DateTime: event.StartDate.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: event.EndDate.Format(time.RFC3339)},
	}
}
