package mailer

import (
	"fmt"
	"time"

	"eventparadise/models"
)

// Subject/body builders for the transactional emails the app sends. Kept as
// pure functions so jobs and handlers can be tested without a transport.

const dateLayout = "January 2, 2006 at 3:04 PM"

// InvitationEmail builds the invitation sent when a guest is registered.
func InvitationEmail(guest *models.Guest, event *models.Event) (subject, body string) {
	subject = fmt.Sprintf("You're Invited: %s", event.Title)
	body = fmt.Sprintf(
		"Hi %s,\n\nYou are invited to %s.\n\n%s\n\nVenue: %s\nDate: %s\nTicket: %s\n\nWe look forward to seeing you!",
		guest.Name, event.Title, event.Description, event.Venue,
		event.StartDate.Format(dateLayout), guest.TicketNumber,
	)
	return subject, body
}

// RSVPConfirmationEmail builds the confirmation sent after an RSVP update.
func RSVPConfirmationEmail(guest *models.Guest, event *models.Event, status string) (subject, body string) {
	subject = fmt.Sprintf("RSVP Confirmation: %s", event.Title)
	closing := "See you there!"
	if status != models.RSVPConfirmed {
		closing = "Thank you for letting us know."
	}
	body = fmt.Sprintf(
		"Hi %s,\n\nYour RSVP for %s has been recorded as %q.\n\nDate: %s\nVenue: %s\nTicket: %s\n\n%s",
		guest.Name, event.Title, status,
		event.StartDate.Format(dateLayout), event.Venue, guest.TicketNumber, closing,
	)
	return subject, body
}

// PaymentReceiptEmail builds the receipt sent to the organizer after a payment.
func PaymentReceiptEmail(payment *models.Payment, event *models.Event) (subject, body string) {
	subject = fmt.Sprintf("Payment Receipt: %s", event.Title)
	body = fmt.Sprintf(
		"A payment of $%.2f (%s via %s) was recorded for %s.\n\nTransaction: %s\nDate: %s",
		payment.Amount, payment.PaymentType, payment.PaymentMethod,
		event.Title, payment.TransactionID, payment.CreatedAt.Format(dateLayout),
	)
	return subject, body
}

// ReminderEmail builds the upcoming-event reminder for a confirmed guest.
func ReminderEmail(guest *models.Guest, event *models.Event) (subject, body string) {
	subject = fmt.Sprintf("Reminder: %s is coming up", event.Title)
	body = fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder that %s starts on %s at %s.\n\nTicket: %s\n\nWe look forward to seeing you!",
		guest.Name, event.Title, event.StartDate.Format(dateLayout), event.Venue, guest.TicketNumber,
	)
	return subject, body
}

// FeedbackRequestEmail builds the post-event feedback request.
func FeedbackRequestEmail(guest *models.Guest, event *models.Event) (subject, body string) {
	subject = fmt.Sprintf("How was %s?", event.Title)
	body = fmt.Sprintf(
		"Hi %s,\n\nThank you for attending %s! We would love to hear your thoughts.\nPlease take a minute to share your feedback.",
		guest.Name, event.Title,
	)
	return subject, body
}

// VendorWelcomeEmail builds the welcome mail for a newly assigned vendor.
func VendorWelcomeEmail(vendor *models.Vendor, event *models.Event) (subject, body string) {
	subject = fmt.Sprintf("Service Confirmation: %s", event.Title)
	body = fmt.Sprintf(
		"Hi %s,\n\nYou have been assigned as %s vendor for %s.\n\nVenue: %s\nDate: %s\nContract amount: $%.2f",
		vendor.Name, vendor.ServiceType, event.Title, event.Venue,
		event.StartDate.Format(dateLayout), vendor.ContractAmount,
	)
	return subject, body
}

// VendorReminderEmail builds the payment reminder for a vendor whose
// contract is not settled before an upcoming event.
func VendorReminderEmail(vendor *models.Vendor, event *models.Event) (subject, body string) {
	subject = fmt.Sprintf("Payment Reminder: %s", event.Title)
	body = fmt.Sprintf(
		"Hi %s,\n\n%s is coming up on %s and your %s contract is not fully paid.\n\nContract amount: $%.2f\nPayment status: %s\n\nPlease settle the outstanding balance before the event.",
		vendor.Name, event.Title, event.StartDate.Format(dateLayout),
		vendor.ServiceType, vendor.ContractAmount, vendor.PaymentStatus,
	)
	return subject, body
}

// ReportStats carries the aggregate counts for admin reports.
type ReportStats struct {
	From              time.Time
	To                time.Time
	EventsCreated     int64
	GuestsRegistered  int64
	PaymentsProcessed int64
	TotalRevenue      float64
}

// ReportEmail builds the daily or weekly admin report.
func ReportEmail(period string, stats ReportStats) (subject, body string) {
	subject = fmt.Sprintf("%s Report - %s", period, stats.From.Format("2006-01-02"))
	body = fmt.Sprintf(
		"%s report for %s to %s:\n\nEvents created: %d\nGuests registered: %d\nPayments processed: %d\nTotal revenue: $%.2f",
		period, stats.From.Format("2006-01-02"), stats.To.Format("2006-01-02"),
		stats.EventsCreated, stats.GuestsRegistered, stats.PaymentsProcessed, stats.TotalRevenue,
	)
	return subject, body
}

// HealthAlertEmail builds the alert sent to admins when a health probe fails.
func HealthAlertEmail(mongoOK, redisOK bool, checkedAt time.Time) (subject, body string) {
	subject = "System Health Alert"
	body = fmt.Sprintf(
		"A health check at %s reported a problem.\n\nMongoDB healthy: %t\nRedis healthy: %t\n\nPlease investigate.",
		checkedAt.Format(time.RFC3339), mongoOK, redisOK,
	)
	return subject, body
}
