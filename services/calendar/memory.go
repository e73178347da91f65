package calendar

import (
	"context"
	"fmt"
	"sync"

	"eventparadise/models"

	"github.com/google/uuid"
)

// MemorySync keeps calendar entries in memory. Used in development and in
// tests when no Google credentials are configured.
type MemorySync struct {
	mu      sync.Mutex
	entries map[string]models.Event
}

func NewMemorySync() *MemorySync {
	return &MemorySync{entries: make(map[string]models.Event)}
}

func (m *MemorySync) CreateEvent(ctx context.Context, event *models.Event) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := "cal_" + uuid.New().String()
	m.entries[id] = *event
	return id, nil
}

func (m *MemorySync) UpdateEvent(ctx context.Context, event *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[event.CalendarEventID]; !ok {
		return fmt.Errorf("calendar event %s not found", event.CalendarEventID)
	}
	m.entries[event.CalendarEventID] = *event
	return nil
}

func (m *MemorySync) DeleteEvent(ctx context.Context, calendarEventID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, calendarEventID)
	return nil
}
