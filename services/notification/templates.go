package notification

import "fmt"

// Notification subtypes. The set is closed: anything else renders the
// generic fallback instead of failing.
const (
	SubtypeEventCreated   = "event_created"
	SubtypeEventUpdated   = "event_updated"
	SubtypeEventCancelled = "event_cancelled"
	SubtypeEventReminder  = "event_reminder"
	SubtypeEventStarted   = "event_started"
	SubtypeEventCompleted = "event_completed"

	SubtypeGuestRegistered    = "guest_registered"
	SubtypeGuestCheckedIn     = "guest_checked_in"
	SubtypeGuestRSVPConfirmed = "guest_rsvp_confirmed"
	SubtypeGuestRSVPDeclined  = "guest_rsvp_declined"

	SubtypePaymentReceived = "payment_received"
	SubtypePaymentFailed   = "payment_failed"
	SubtypePaymentRefunded = "payment_refunded"
	SubtypePaymentPending  = "payment_pending"
)

// RenderMessage maps a kind/subtype pair to a title and message, pulling
// display values from the data map. It is a pure function with no side
// effects; unknown subtypes fall back to a generic message.
func RenderMessage(kind, subtype string, data map[string]any) (title, message string) {
	eventTitle := dataString(data, "eventTitle")
	guestName := dataString(data, "guestName")
	amount := dataFloat(data, "amount")

	switch subtype {
	case SubtypeEventCreated:
		return eventHeader(eventTitle), fmt.Sprintf("New event %q has been created.", eventTitle)
	case SubtypeEventUpdated:
		return eventHeader(eventTitle), fmt.Sprintf("Event %q has been updated.", eventTitle)
	case SubtypeEventCancelled:
		return eventHeader(eventTitle), fmt.Sprintf("Event %q has been cancelled.", eventTitle)
	case SubtypeEventReminder:
		return eventHeader(eventTitle), fmt.Sprintf("Reminder: event %q is coming up soon.", eventTitle)
	case SubtypeEventStarted:
		return eventHeader(eventTitle), fmt.Sprintf("Event %q has started.", eventTitle)
	case SubtypeEventCompleted:
		return eventHeader(eventTitle), fmt.Sprintf("Event %q has been completed.", eventTitle)

	case SubtypeGuestRegistered:
		return "Guest Registered", fmt.Sprintf("%s has registered for %q.", guestName, eventTitle)
	case SubtypeGuestCheckedIn:
		return "Guest Checked In", fmt.Sprintf("%s has checked in for %q.", guestName, eventTitle)
	case SubtypeGuestRSVPConfirmed:
		return "RSVP Confirmed", fmt.Sprintf("%s has confirmed RSVP for %q.", guestName, eventTitle)
	case SubtypeGuestRSVPDeclined:
		return "RSVP Declined", fmt.Sprintf("%s has declined RSVP for %q.", guestName, eventTitle)

	case SubtypePaymentReceived:
		return "Payment Received", fmt.Sprintf("Payment of $%.2f has been received.", amount)
	case SubtypePaymentFailed:
		return "Payment Failed", fmt.Sprintf("Payment of $%.2f has failed.", amount)
	case SubtypePaymentRefunded:
		return "Payment Refunded", fmt.Sprintf("Payment of $%.2f has been refunded.", amount)
	case SubtypePaymentPending:
		return "Payment Pending", fmt.Sprintf("Payment of $%.2f is pending.", amount)
	}

	// Unknown subtype: fail closed to a generic message.
	return "Notification", "You have a new notification."
}

func eventHeader(eventTitle string) string {
	return fmt.Sprintf("Event Update: %s", eventTitle)
}

func dataString(data map[string]any, key string) string {
	if data == nil {
		return ""
	}
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func dataFloat(data map[string]any, key string) float64 {
	if data == nil {
		return 0
	}
	switch v := data[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}
