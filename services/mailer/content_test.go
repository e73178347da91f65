package mailer

import (
	"testing"
	"time"

	"eventparadise/models"

	"github.com/stretchr/testify/assert"
)

func testEvent() *models.Event {
	return &models.Event{
		ID:        "ev-1",
		Title:     "Launch Party",
		Venue:     "Main Hall",
		StartDate: time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
	}
}

func TestInvitationEmail(t *testing.T) {
	guest := &models.Guest{Name: "Alice", TicketNumber: "EP-ABCD1234"}
	subject, body := InvitationEmail(guest, testEvent())

	assert.Equal(t, "You're Invited: Launch Party", subject)
	assert.Contains(t, body, "Hi Alice,")
	assert.Contains(t, body, "EP-ABCD1234")
	assert.Contains(t, body, "Main Hall")
}

func TestRSVPConfirmationEmailClosingVariesByStatus(t *testing.T) {
	guest := &models.Guest{Name: "Alice", TicketNumber: "EP-ABCD1234"}

	_, confirmed := RSVPConfirmationEmail(guest, testEvent(), models.RSVPConfirmed)
	assert.Contains(t, confirmed, "See you there!")

	_, declined := RSVPConfirmationEmail(guest, testEvent(), models.RSVPDeclined)
	assert.Contains(t, declined, "Thank you for letting us know.")
}

func TestVendorReminderEmail(t *testing.T) {
	vendor := &models.Vendor{
		Name:           "Catering Co",
		ServiceType:    "catering",
		ContractAmount: 1200,
		PaymentStatus:  models.VendorPaymentPartial,
	}
	subject, body := VendorReminderEmail(vendor, testEvent())

	assert.Equal(t, "Payment Reminder: Launch Party", subject)
	assert.Contains(t, body, "Hi Catering Co,")
	assert.Contains(t, body, "not fully paid")
	assert.Contains(t, body, "$1200.00")
	assert.Contains(t, body, models.VendorPaymentPartial)
}

func TestReportEmail(t *testing.T) {
	stats := ReportStats{
		From:              time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		To:                time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		EventsCreated:     3,
		GuestsRegistered:  12,
		PaymentsProcessed: 5,
		TotalRevenue:      1500.50,
	}
	subject, body := ReportEmail("Daily", stats)

	assert.Equal(t, "Daily Report - 2026-08-27", subject)
	assert.Contains(t, body, "Events created: 3")
	assert.Contains(t, body, "Guests registered: 12")
	assert.Contains(t, body, "Total revenue: $1500.50")
}
