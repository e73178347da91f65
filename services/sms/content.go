package sms

import (
	"fmt"

	"eventparadise/models"
)

// Message builders for the texts the app sends. Pure functions, kept short
// to fit a single SMS segment where possible.

const smsDateLayout = "Jan 2, 3:04 PM"

// WelcomeMessage is sent when a guest with a phone number is registered.
func WelcomeMessage(guest *models.Guest, event *models.Event) string {
	return fmt.Sprintf("Welcome %s! You are registered for %s on %s. Ticket: %s.",
		guest.Name, event.Title, event.StartDate.Format(smsDateLayout), guest.TicketNumber)
}

// ReminderMessage is the upcoming-event reminder for a confirmed guest.
func ReminderMessage(guest *models.Guest, event *models.Event) string {
	return fmt.Sprintf("REMINDER: %s is coming up! Date: %s, Venue: %s. Ticket: %s. We look forward to seeing you!",
		event.Title, event.StartDate.Format(smsDateLayout), event.Venue, guest.TicketNumber)
}

// RSVPConfirmationMessage confirms an RSVP update.
func RSVPConfirmationMessage(guest *models.Guest, event *models.Event, status string) string {
	closing := "See you there!"
	if status != models.RSVPConfirmed {
		closing = "Thank you for letting us know."
	}
	return fmt.Sprintf("RSVP %s for %s. Date: %s. Ticket: %s. %s",
		status, event.Title, event.StartDate.Format(smsDateLayout), guest.TicketNumber, closing)
}

// CheckInMessage confirms a successful check-in.
func CheckInMessage(guest *models.Guest, event *models.Event) string {
	return fmt.Sprintf("Checked in successfully! Welcome to %s. Enjoy the event! Ticket: %s",
		event.Title, guest.TicketNumber)
}

// UpdateMessage wraps a free-form event update.
func UpdateMessage(event *models.Event, update string) string {
	return fmt.Sprintf("%s: %s", event.Title, update)
}

// VendorReminderMessage reminds an unpaid vendor of an upcoming event.
func VendorReminderMessage(vendor *models.Vendor, event *models.Event) string {
	return fmt.Sprintf("Reminder: you are providing %s for %s on %s. Payment status: %s.",
		vendor.ServiceType, event.Title, event.StartDate.Format(smsDateLayout), vendor.PaymentStatus)
}
