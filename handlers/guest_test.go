package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventparadise/config"
	"eventparadise/models"
	"eventparadise/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGuestStore struct {
	byID     map[string]*models.Guest
	byTicket map[string]*models.Guest
}

func newFakeGuestStore() *fakeGuestStore {
	return &fakeGuestStore{
		byID:     make(map[string]*models.Guest),
		byTicket: make(map[string]*models.Guest),
	}
}

func (s *fakeGuestStore) GetByID(id string) (*models.Guest, error) {
	if g, ok := s.byID[id]; ok {
		return g, nil
	}
	return nil, assert.AnError
}

func (s *fakeGuestStore) GetByEvent(eventID string) ([]models.Guest, error) {
	var out []models.Guest
	for _, g := range s.byID {
		if g.EventID == eventID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (s *fakeGuestStore) GetByTicketNumber(ticket string) (*models.Guest, error) {
	return s.byTicket[ticket], nil
}

func (s *fakeGuestStore) CountByEvent(eventID string) (int64, error)            { return 0, nil }
func (s *fakeGuestStore) CountCreatedBetween(from, to time.Time) (int64, error) { return 0, nil }

func (s *fakeGuestStore) Create(guest *models.Guest) error {
	s.byID[guest.ID] = guest
	s.byTicket[guest.TicketNumber] = guest
	return nil
}

func (s *fakeGuestStore) Update(guest *models.Guest) error {
	s.byID[guest.ID] = guest
	s.byTicket[guest.TicketNumber] = guest
	return nil
}

func (s *fakeGuestStore) Delete(id string) error {
	delete(s.byID, id)
	return nil
}

func (s *fakeGuestStore) Count() (int64, error) { return 0, nil }

type fakeEventStore struct {
	events map[string]*models.Event
}

func (s *fakeEventStore) GetByID(id string) (*models.Event, error) {
	if e, ok := s.events[id]; ok {
		return e, nil
	}
	return nil, assert.AnError
}

func (s *fakeEventStore) GetByOrganizer(organizerID string) ([]models.Event, error) { return nil, nil }
func (s *fakeEventStore) GetAll() ([]models.Event, error)                           { return nil, nil }
func (s *fakeEventStore) GetStartingBetween(from, to time.Time, statuses ...string) ([]models.Event, error) {
	return nil, nil
}
func (s *fakeEventStore) GetEndedBetween(from, to time.Time, status string) ([]models.Event, error) {
	return nil, nil
}
func (s *fakeEventStore) CountCreatedBetween(from, to time.Time) (int64, error) { return 0, nil }
func (s *fakeEventStore) Create(event *models.Event) error                      { return nil }
func (s *fakeEventStore) Update(event *models.Event) error                      { return nil }
func (s *fakeEventStore) Delete(id string) error                                { return nil }
func (s *fakeEventStore) Count() (int64, error)                                 { return 0, nil }

type recordedMail struct {
	to      string
	subject string
}

type recordingMailer struct {
	sent []recordedMail
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, body string) bool {
	m.sent = append(m.sent, recordedMail{to: to, subject: subject})
	return true
}

type recordingSMS struct {
	sent []string
}

func (s *recordingSMS) Send(ctx context.Context, to, message string) bool {
	s.sent = append(s.sent, to)
	return true
}

type recordedNotify struct {
	userID  string
	subtype string
}

type recordingNotifier struct {
	notified []recordedNotify
}

func (n *recordingNotifier) Notify(userID, kind, subtype string, data map[string]any) bool {
	n.notified = append(n.notified, recordedNotify{userID: userID, subtype: subtype})
	return true
}
func (n *recordingNotifier) Broadcast(kind, subtype string, data map[string]any, roleFilter string) int {
	return 0
}
func (n *recordingNotifier) Connect(userID string, ch notification.Channel)        {}
func (n *recordingNotifier) Disconnect(userID string, ch notification.Channel)     {}
func (n *recordingNotifier) ConnectedUsers() []string                              { return nil }
func (n *recordingNotifier) UnreadForUser(userID string) ([]models.Notification, error) {
	return nil, nil
}
func (n *recordingNotifier) MarkRead(userID, id string) error { return nil }
func (n *recordingNotifier) CleanupOlderThan(days int) int64  { return 0 }

func newGuestTestRouter(t *testing.T) (*gin.Engine, *fakeGuestStore, *recordingMailer, *recordingSMS, *recordingNotifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig.QRCodeDir = t.TempDir()

	guests := newFakeGuestStore()
	events := &fakeEventStore{events: map[string]*models.Event{
		"ev-1": {
			ID:          "ev-1",
			Title:       "Launch Party",
			Venue:       "Main Hall",
			StartDate:   time.Now().Add(48 * time.Hour),
			EndDate:     time.Now().Add(52 * time.Hour),
			Status:      models.EventStatusPlanned,
			OrganizerID: "org-1",
		},
	}}
	mail := &recordingMailer{}
	texts := &recordingSMS{}
	notifier := &recordingNotifier{}

	h := NewGuestHandler(guests, events, mail, texts, notifier)
	r := gin.New()
	r.POST("/api/events/:eventId/guests", h.Add)
	r.POST("/api/events/:eventId/checkin", h.CheckIn)
	r.PUT("/api/guests/:guestId/rsvp", h.RSVP)
	return r, guests, mail, texts, notifier
}

func TestAddGuestSendsInvitationAndNotifiesOrganizer(t *testing.T) {
	r, guests, mail, texts, notifier := newGuestTestRouter(t)

	body := `{"name":"Alice","email":"alice@example.com","phone":"+100"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events/ev-1/guests", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var guest models.Guest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &guest))
	assert.Equal(t, models.RSVPPending, guest.RSVPStatus)
	assert.NotEmpty(t, guest.TicketNumber)
	require.Len(t, guests.byID, 1)

	// One invitation email, one welcome text, one organizer notification.
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "alice@example.com", mail.sent[0].to)
	assert.Contains(t, mail.sent[0].subject, "Launch Party")
	require.Len(t, texts.sent, 1)
	assert.Equal(t, "+100", texts.sent[0])
	require.Len(t, notifier.notified, 1)
	assert.Equal(t, "org-1", notifier.notified[0].userID)
	assert.Equal(t, notification.SubtypeGuestRegistered, notifier.notified[0].subtype)
}

func TestAddGuestWithoutPhoneSkipsSMS(t *testing.T) {
	r, _, mail, texts, _ := newGuestTestRouter(t)

	body := `{"name":"Bob","email":"bob@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events/ev-1/guests", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, mail.sent, 1)
	assert.Empty(t, texts.sent)
}

func TestCheckInRejectsSecondAttempt(t *testing.T) {
	r, guests, _, _, notifier := newGuestTestRouter(t)

	guest := &models.Guest{
		ID:           "g-1",
		EventID:      "ev-1",
		Name:         "Alice",
		Email:        "alice@example.com",
		TicketNumber: "EP-TEST1234",
		RSVPStatus:   models.RSVPConfirmed,
	}
	require.NoError(t, guests.Create(guest))

	body := `{"ticketNumber":"EP-TEST1234"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events/ev-1/checkin", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, guests.byID["g-1"].CheckedIn)
	require.Len(t, notifier.notified, 1)
	assert.Equal(t, notification.SubtypeGuestCheckedIn, notifier.notified[0].subtype)

	// Second scan of the same ticket is rejected.
	req = httptest.NewRequest(http.MethodPost, "/api/events/ev-1/checkin", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRSVPDeclinedNotifiesOrganizer(t *testing.T) {
	r, guests, mail, _, notifier := newGuestTestRouter(t)

	guest := &models.Guest{
		ID:           "g-1",
		EventID:      "ev-1",
		Name:         "Alice",
		Email:        "alice@example.com",
		TicketNumber: "EP-TEST1234",
		RSVPStatus:   models.RSVPPending,
	}
	require.NoError(t, guests.Create(guest))

	body := `{"ticketNumber":"EP-TEST1234","status":"declined"}`
	req := httptest.NewRequest(http.MethodPut, "/api/guests/g-1/rsvp", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RSVPDeclined, guests.byID["g-1"].RSVPStatus)
	require.Len(t, mail.sent, 1)
	require.Len(t, notifier.notified, 1)
	assert.Equal(t, notification.SubtypeGuestRSVPDeclined, notifier.notified[0].subtype)
}

func TestRSVPRejectsInvalidStatus(t *testing.T) {
	r, _, _, _, _ := newGuestTestRouter(t)

	body := `{"ticketNumber":"EP-TEST1234","status":"maybe"}`
	req := httptest.NewRequest(http.MethodPut, "/api/guests/g-1/rsvp", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRSVPRejectsWrongTicketNumber(t *testing.T) {
	r, guests, mail, _, notifier := newGuestTestRouter(t)

	guest := &models.Guest{
		ID:           "g-1",
		EventID:      "ev-1",
		Name:         "Alice",
		Email:        "alice@example.com",
		TicketNumber: "EP-TEST1234",
		RSVPStatus:   models.RSVPPending,
	}
	require.NoError(t, guests.Create(guest))

	body := `{"ticketNumber":"EP-WRONG0000","status":"confirmed"}`
	req := httptest.NewRequest(http.MethodPut, "/api/guests/g-1/rsvp", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, models.RSVPPending, guests.byID["g-1"].RSVPStatus)
	assert.Empty(t, mail.sent)
	assert.Empty(t, notifier.notified)
}
