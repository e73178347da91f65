package notification

import (
	"errors"
	"sync"
	"testing"
	"time"

	"eventparadise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChannel records pushed notifications and can be told to fail.
type fakeChannel struct {
	mu     sync.Mutex
	pushed []*models.Notification
	fail   bool
}

func (f *fakeChannel) Push(n *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("transport down")
	}
	f.pushed = append(f.pushed, n)
	return nil
}

func (f *fakeChannel) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pushed)
}

// memoryNotificationRepo is an in-memory NotificationRepository.
type memoryNotificationRepo struct {
	mu      sync.Mutex
	records map[string]*models.Notification
}

func newMemoryNotificationRepo() *memoryNotificationRepo {
	return &memoryNotificationRepo{records: make(map[string]*models.Notification)}
}

func (r *memoryNotificationRepo) Create(n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *n
	r.records[n.ID] = &clone
	return nil
}

func (r *memoryNotificationRepo) MarkDelivered(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.records[id]; ok {
		n.Delivered = true
		return nil
	}
	return errors.New("not found")
}

func (r *memoryNotificationRepo) MarkRead(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.records[id]; ok && n.UserID == userID {
		n.Read = true
		return nil
	}
	return errors.New("not found")
}

func (r *memoryNotificationRepo) UnreadForUser(userID string, limit int64) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for _, n := range r.records {
		if n.UserID == userID && !n.Read {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *memoryNotificationRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, n := range r.records {
		if n.CreatedAt.Before(cutoff) {
			delete(r.records, id)
			deleted++
		}
	}
	return deleted, nil
}

// memoryUserRepo is an in-memory UserRepository carrying only roles.
type memoryUserRepo struct {
	roles map[string]string
}

func (r *memoryUserRepo) GetByID(id string) (*models.User, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &models.User{ID: id, Role: role}, nil
}

func (r *memoryUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (r *memoryUserRepo) GetAll() ([]models.User, error)               { return nil, nil }
func (r *memoryUserRepo) GetByRole(role string) ([]models.User, error) { return nil, nil }
func (r *memoryUserRepo) Create(u *models.User) error                  { return nil }
func (r *memoryUserRepo) Update(u *models.User) error                  { return nil }
func (r *memoryUserRepo) Delete(id string) error                       { return nil }
func (r *memoryUserRepo) Count() (int64, error)                        { return 0, nil }

func newTestCoordinator() (*Coordinator, *memoryNotificationRepo) {
	repo := newMemoryNotificationRepo()
	users := &memoryUserRepo{roles: map[string]string{
		"org-1":   models.RoleUser,
		"org-2":   models.RoleUser,
		"admin-1": models.RoleAdmin,
	}}
	return NewCoordinator(repo, users), repo
}

func TestNotifyOfflineUserQueues(t *testing.T) {
	c, _ := newTestCoordinator()

	delivered := c.Notify("org-1", models.NotificationKindGuest, SubtypeGuestRegistered, map[string]any{
		"guestName":  "Alice",
		"eventTitle": "Launch Party",
	})

	assert.False(t, delivered)
	c.mu.Lock()
	require.Len(t, c.pending["org-1"], 1)
	assert.Equal(t, SubtypeGuestRegistered, c.pending["org-1"][0].Subtype)
	c.mu.Unlock()
}

func TestNotifyOnlineUserPushesOnce(t *testing.T) {
	c, _ := newTestCoordinator()
	ch := &fakeChannel{}
	c.Connect("org-1", ch)

	delivered := c.Notify("org-1", models.NotificationKindPayment, SubtypePaymentReceived, map[string]any{
		"amount": 120.0,
	})

	assert.True(t, delivered)
	require.Equal(t, 1, ch.count())
	assert.Equal(t, "Payment Received", ch.pushed[0].Title)
	assert.True(t, ch.pushed[0].Delivered)

	// Nothing must be left in the pending queue.
	c.mu.Lock()
	assert.Empty(t, c.pending["org-1"])
	c.mu.Unlock()
}

func TestNotifyPushFailureReturnsFalseWithoutQueuing(t *testing.T) {
	c, _ := newTestCoordinator()
	ch := &fakeChannel{fail: true}
	c.Connect("org-1", ch)

	delivered := c.Notify("org-1", models.NotificationKindEvent, SubtypeEventUpdated, nil)

	assert.False(t, delivered)
	c.mu.Lock()
	assert.Empty(t, c.pending["org-1"], "failed push must not be queued")
	c.mu.Unlock()
}

func TestConnectDrainsPendingInFIFOOrder(t *testing.T) {
	c, repo := newTestCoordinator()

	for _, title := range []string{"First", "Second", "Third"} {
		c.Notify("org-1", models.NotificationKindEvent, SubtypeEventUpdated, map[string]any{
			"eventTitle": title,
		})
	}

	ch := &fakeChannel{}
	c.Connect("org-1", ch)

	require.Equal(t, 3, ch.count())
	assert.Contains(t, ch.pushed[0].Message, "First")
	assert.Contains(t, ch.pushed[1].Message, "Second")
	assert.Contains(t, ch.pushed[2].Message, "Third")

	// Queue is empty afterwards and records are marked delivered.
	c.mu.Lock()
	assert.Empty(t, c.pending["org-1"])
	c.mu.Unlock()
	for _, n := range ch.pushed {
		assert.True(t, repo.records[n.ID].Delivered)
	}
}

func TestConnectWithEmptyQueueIsNoOp(t *testing.T) {
	c, _ := newTestCoordinator()
	ch := &fakeChannel{}

	c.Connect("org-1", ch)

	assert.Equal(t, 0, ch.count())
}

func TestNotifyAfterDisconnectQueues(t *testing.T) {
	c, _ := newTestCoordinator()
	ch := &fakeChannel{}
	c.Connect("org-1", ch)
	c.Disconnect("org-1", ch)

	delivered := c.Notify("org-1", models.NotificationKindEvent, SubtypeEventCancelled, nil)

	assert.False(t, delivered)
	assert.Equal(t, 0, ch.count())
}

func TestDisconnectStaleChannelKeepsNewConnection(t *testing.T) {
	c, _ := newTestCoordinator()
	old := &fakeChannel{}
	fresh := &fakeChannel{}
	c.Connect("org-1", old)
	c.Connect("org-1", fresh)

	// The replaced connection tears down after the reconnect; the live
	// channel must stay registered.
	c.Disconnect("org-1", old)

	assert.Equal(t, []string{"org-1"}, c.ConnectedUsers())
	delivered := c.Notify("org-1", models.NotificationKindEvent, SubtypeEventUpdated, nil)
	assert.True(t, delivered)
	assert.Equal(t, 0, old.count())
	assert.Equal(t, 1, fresh.count())

	// Disconnecting the live channel still works.
	c.Disconnect("org-1", fresh)
	assert.Empty(t, c.ConnectedUsers())
}

func TestBroadcastReachesOnlyConnectedUsers(t *testing.T) {
	c, _ := newTestCoordinator()
	ch1 := &fakeChannel{}
	ch2 := &fakeChannel{}
	c.Connect("org-1", ch1)
	c.Connect("org-2", ch2)
	// org-3 stays offline.

	reached := c.Broadcast(models.NotificationKindSystem, "maintenance", nil, "")

	assert.Equal(t, 2, reached)
	assert.Equal(t, 1, ch1.count())
	assert.Equal(t, 1, ch2.count())

	// Nothing queued for the offline user.
	c.mu.Lock()
	assert.Empty(t, c.pending["org-3"])
	c.mu.Unlock()
}

func TestBroadcastRoleFilter(t *testing.T) {
	c, _ := newTestCoordinator()
	userCh := &fakeChannel{}
	adminCh := &fakeChannel{}
	c.Connect("org-1", userCh)
	c.Connect("admin-1", adminCh)

	reached := c.Broadcast(models.NotificationKindSystem, "maintenance", nil, models.RoleAdmin)

	assert.Equal(t, 1, reached)
	assert.Equal(t, 0, userCh.count())
	assert.Equal(t, 1, adminCh.count())
}

func TestCleanupOlderThan(t *testing.T) {
	c, repo := newTestCoordinator()

	old := &models.Notification{ID: "old", UserID: "org-1", CreatedAt: time.Now().AddDate(0, 0, -40)}
	fresh := &models.Notification{ID: "fresh", UserID: "org-1", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(old))
	require.NoError(t, repo.Create(fresh))

	removed := c.CleanupOlderThan(30)

	assert.Equal(t, int64(1), removed)
	_, oldExists := repo.records["old"]
	_, freshExists := repo.records["fresh"]
	assert.False(t, oldExists)
	assert.True(t, freshExists)
}
