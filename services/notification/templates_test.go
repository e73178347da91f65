package notification

import (
	"testing"

	"eventparadise/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderMessageKnownSubtypes(t *testing.T) {
	title, message := RenderMessage(models.NotificationKindGuest, SubtypeGuestRegistered, map[string]any{
		"guestName":  "Alice",
		"eventTitle": "Launch Party",
	})
	assert.Equal(t, "Guest Registered", title)
	assert.Equal(t, `Alice has registered for "Launch Party".`, message)

	title, message = RenderMessage(models.NotificationKindPayment, SubtypePaymentReceived, map[string]any{
		"amount": 250.5,
	})
	assert.Equal(t, "Payment Received", title)
	assert.Equal(t, "Payment of $250.50 has been received.", message)

	title, _ = RenderMessage(models.NotificationKindEvent, SubtypeEventReminder, map[string]any{
		"eventTitle": "Gala",
	})
	assert.Equal(t, "Event Update: Gala", title)
}

func TestRenderMessageUnknownSubtypeFallsBack(t *testing.T) {
	title, message := RenderMessage(models.NotificationKindEvent, "totally_new_subtype", nil)
	assert.Equal(t, "Notification", title)
	assert.Equal(t, "You have a new notification.", message)
}

func TestRenderMessageNilDataDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		RenderMessage(models.NotificationKindGuest, SubtypeGuestCheckedIn, nil)
	})
}
