package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"eventparadise/models"
	"eventparadise/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	starting []models.Event
	ended    []models.Event
	created  int64
}

func (r *fakeEventRepo) GetByID(id string) (*models.Event, error)                 { return nil, nil }
func (r *fakeEventRepo) GetByOrganizer(organizerID string) ([]models.Event, error) { return nil, nil }
func (r *fakeEventRepo) GetAll() ([]models.Event, error)                          { return nil, nil }
func (r *fakeEventRepo) GetStartingBetween(from, to time.Time, statuses ...string) ([]models.Event, error) {
	return r.starting, nil
}
func (r *fakeEventRepo) GetEndedBetween(from, to time.Time, status string) ([]models.Event, error) {
	return r.ended, nil
}
func (r *fakeEventRepo) CountCreatedBetween(from, to time.Time) (int64, error) { return r.created, nil }
func (r *fakeEventRepo) Create(event *models.Event) error                      { return nil }
func (r *fakeEventRepo) Update(event *models.Event) error                      { return nil }
func (r *fakeEventRepo) Delete(id string) error                                { return nil }
func (r *fakeEventRepo) Count() (int64, error)                                 { return 0, nil }

type fakeGuestRepo struct {
	byEvent map[string][]models.Guest
	created int64
}

func (r *fakeGuestRepo) GetByID(id string) (*models.Guest, error) { return nil, nil }
func (r *fakeGuestRepo) GetByEvent(eventID string) ([]models.Guest, error) {
	return r.byEvent[eventID], nil
}
func (r *fakeGuestRepo) GetByTicketNumber(ticket string) (*models.Guest, error) { return nil, nil }
func (r *fakeGuestRepo) CountByEvent(eventID string) (int64, error)             { return 0, nil }
func (r *fakeGuestRepo) CountCreatedBetween(from, to time.Time) (int64, error)  { return r.created, nil }
func (r *fakeGuestRepo) Create(guest *models.Guest) error                       { return nil }
func (r *fakeGuestRepo) Update(guest *models.Guest) error                       { return nil }
func (r *fakeGuestRepo) Delete(id string) error                                 { return nil }
func (r *fakeGuestRepo) Count() (int64, error)                                  { return 0, nil }

type fakeVendorRepo struct {
	byEvent map[string][]models.Vendor
}

func (r *fakeVendorRepo) GetByID(id string) (*models.Vendor, error) { return nil, nil }
func (r *fakeVendorRepo) GetByEvent(eventID string) ([]models.Vendor, error) {
	return r.byEvent[eventID], nil
}
func (r *fakeVendorRepo) Create(vendor *models.Vendor) error { return nil }
func (r *fakeVendorRepo) Update(vendor *models.Vendor) error { return nil }
func (r *fakeVendorRepo) Delete(id string) error             { return nil }

type fakePaymentRepo struct {
	completed int64
	revenue   float64
}

func (r *fakePaymentRepo) GetByID(id string) (*models.Payment, error)          { return nil, nil }
func (r *fakePaymentRepo) GetByEvent(eventID string) ([]models.Payment, error) { return nil, nil }
func (r *fakePaymentRepo) CountByEvent(eventID string) (int64, error)          { return 0, nil }
func (r *fakePaymentRepo) CountCompletedBetween(from, to time.Time) (int64, error) {
	return r.completed, nil
}
func (r *fakePaymentRepo) SumCompletedBetween(from, to time.Time) (float64, error) {
	return r.revenue, nil
}
func (r *fakePaymentRepo) Create(payment *models.Payment) error                  { return nil }
func (r *fakePaymentRepo) UpdateStatusByIntentID(intentID, status string) error  { return nil }
func (r *fakePaymentRepo) Count() (int64, error)                                 { return 0, nil }

type fakeFeedbackRepo struct {
	deleted   int64
	gotCutoff time.Time
}

func (r *fakeFeedbackRepo) GetByEvent(eventID string) ([]models.Feedback, error) { return nil, nil }
func (r *fakeFeedbackRepo) Create(feedback *models.Feedback) error               { return nil }
func (r *fakeFeedbackRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	r.gotCutoff = cutoff
	return r.deleted, nil
}

type fakeUserRepo struct {
	admins []models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error)       { return nil, nil }
func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) GetAll() ([]models.User, error)                { return nil, nil }
func (r *fakeUserRepo) GetByRole(role string) ([]models.User, error)  { return r.admins, nil }
func (r *fakeUserRepo) Create(u *models.User) error                   { return nil }
func (r *fakeUserRepo) Update(u *models.User) error                   { return nil }
func (r *fakeUserRepo) Delete(id string) error                        { return nil }
func (r *fakeUserRepo) Count() (int64, error)                         { return 0, nil }

type sentMail struct {
	to      string
	subject string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject})
	return true
}

type fakeSMSSender struct {
	mu   sync.Mutex
	sent []string
}

func (s *fakeSMSSender) Send(ctx context.Context, to, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, to)
	return true
}

type notifyCall struct {
	userID  string
	subtype string
}

type fakeNotifier struct {
	calls        []notifyCall
	cleanupDays  int
	cleanupCount int64
}

func (n *fakeNotifier) Notify(userID, kind, subtype string, data map[string]any) bool {
	n.calls = append(n.calls, notifyCall{userID: userID, subtype: subtype})
	return true
}
func (n *fakeNotifier) Broadcast(kind, subtype string, data map[string]any, roleFilter string) int {
	return 0
}
func (n *fakeNotifier) Connect(userID string, ch notification.Channel) {}
func (n *fakeNotifier) Disconnect(userID string, ch notification.Channel) {}
func (n *fakeNotifier) ConnectedUsers() []string                       { return nil }
func (n *fakeNotifier) UnreadForUser(userID string) ([]models.Notification, error) {
	return nil, nil
}
func (n *fakeNotifier) MarkRead(userID, id string) error { return nil }
func (n *fakeNotifier) CleanupOlderThan(days int) int64 {
	n.cleanupDays = days
	return n.cleanupCount
}

func newTestJobs() (*Jobs, *fakeEventRepo, *fakeGuestRepo, *fakeMailer, *fakeSMSSender, *fakeNotifier) {
	events := &fakeEventRepo{}
	guests := &fakeGuestRepo{byEvent: make(map[string][]models.Guest)}
	mail := &fakeMailer{}
	texts := &fakeSMSSender{}
	notifier := &fakeNotifier{}
	j := &Jobs{
		Events:   events,
		Guests:   guests,
		Vendors:  &fakeVendorRepo{byEvent: make(map[string][]models.Vendor)},
		Payments: &fakePaymentRepo{},
		Feedback: &fakeFeedbackRepo{},
		Users:    &fakeUserRepo{},
		Notifier: notifier,
		Mail:     mail,
		SMS:      texts,
	}
	return j, events, guests, mail, texts, notifier
}

func TestDailyEventRemindersFiltersGuests(t *testing.T) {
	j, events, guests, mail, texts, notifier := newTestJobs()

	events.starting = []models.Event{{
		ID:          "ev-1",
		Title:       "Launch Party",
		OrganizerID: "org-1",
		StartDate:   time.Now().Add(48 * time.Hour),
	}}
	guests.byEvent["ev-1"] = []models.Guest{
		{ID: "g-1", Name: "Alice", Email: "alice@example.com", Phone: "+100", RSVPStatus: models.RSVPConfirmed},
		{ID: "g-2", Name: "Bob", Email: "bob@example.com", RSVPStatus: models.RSVPConfirmed},
		{ID: "g-3", Name: "Carol", Email: "carol@example.com", RSVPStatus: models.RSVPPending},
		{ID: "g-4", Name: "Dan", Email: "dan@example.com", RSVPStatus: models.RSVPConfirmed, CheckedIn: true},
	}

	j.DailyEventReminders()

	// Confirmed and not checked in: Alice and Bob get email, only Alice has a phone.
	require.Len(t, mail.sent, 2)
	assert.Equal(t, "alice@example.com", mail.sent[0].to)
	assert.Equal(t, "bob@example.com", mail.sent[1].to)
	require.Len(t, texts.sent, 1)
	assert.Equal(t, "+100", texts.sent[0])

	// The organizer is notified once per event.
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "org-1", notifier.calls[0].userID)
	assert.Equal(t, notification.SubtypeEventReminder, notifier.calls[0].subtype)
}

func TestVendorRemindersSkipPaidVendors(t *testing.T) {
	j, events, _, mail, texts, _ := newTestJobs()

	events.starting = []models.Event{{ID: "ev-1", Title: "Gala", StartDate: time.Now().Add(72 * time.Hour)}}
	j.Vendors = &fakeVendorRepo{byEvent: map[string][]models.Vendor{
		"ev-1": {
			{ID: "v-1", Name: "Catering Co", Phone: "+200", Email: "cater@example.com", PaymentStatus: models.VendorPaymentPending},
			{ID: "v-2", Name: "Sound Co", Phone: "+201", PaymentStatus: models.VendorPaymentPaid},
		},
	}}

	j.VendorReminders()

	require.Len(t, texts.sent, 1)
	assert.Equal(t, "+200", texts.sent[0])
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "cater@example.com", mail.sent[0].to)
	assert.Contains(t, mail.sent[0].subject, "Payment Reminder")
}

func TestFeedbackRequestsOnlyConfirmedGuests(t *testing.T) {
	j, events, guests, mail, _, _ := newTestJobs()

	events.ended = []models.Event{{ID: "ev-1", Title: "Gala", Status: models.EventStatusCompleted}}
	guests.byEvent["ev-1"] = []models.Guest{
		{ID: "g-1", Name: "Alice", Email: "alice@example.com", RSVPStatus: models.RSVPConfirmed},
		{ID: "g-2", Name: "Bob", Email: "bob@example.com", RSVPStatus: models.RSVPPending},
	}

	j.FeedbackRequests()

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "alice@example.com", mail.sent[0].to)
	assert.Contains(t, mail.sent[0].subject, "Gala")
}

func TestDailyReportEmailsEveryAdmin(t *testing.T) {
	j, events, guests, mail, _, _ := newTestJobs()

	events.created = 3
	guests.created = 12
	j.Payments = &fakePaymentRepo{completed: 5, revenue: 1500}
	j.Users = &fakeUserRepo{admins: []models.User{
		{ID: "a-1", Email: "admin1@example.com", Role: models.RoleAdmin},
		{ID: "a-2", Email: "admin2@example.com", Role: models.RoleAdmin},
	}}

	j.DailyReport()

	require.Len(t, mail.sent, 2)
	assert.Contains(t, mail.sent[0].subject, "Daily Report")
	assert.Equal(t, "admin1@example.com", mail.sent[0].to)
	assert.Equal(t, "admin2@example.com", mail.sent[1].to)
}

func TestDataCleanupUsesRetentionCutoff(t *testing.T) {
	j, _, _, _, _, _ := newTestJobs()
	feedback := &fakeFeedbackRepo{deleted: 7}
	j.Feedback = feedback

	j.DataCleanup()

	wantCutoff := time.Now().AddDate(0, 0, -feedbackRetentionDays)
	assert.WithinDuration(t, wantCutoff, feedback.gotCutoff, time.Minute)
}

func TestNotificationCleanupUsesRetentionDays(t *testing.T) {
	j, _, _, _, _, notifier := newTestJobs()
	notifier.cleanupCount = 4

	j.NotificationCleanup()

	assert.Equal(t, notificationRetentionDays, notifier.cleanupDays)
}

func TestSchedulerRegistersFullCatalog(t *testing.T) {
	j, _, _, _, _, _ := newTestJobs()

	s, err := New(j.Catalog())
	require.NoError(t, err)

	status := s.Status()
	require.Len(t, status, 8)

	names := make(map[string]string, len(status))
	for _, info := range status {
		names[info.Name] = info.Spec
	}
	assert.Equal(t, "0 8 * * *", names["daily_event_reminders"])
	assert.Equal(t, "0 8 * * MON", names["weekly_report"])
	assert.Equal(t, "@every 6h", names["notification_cleanup"])
}
