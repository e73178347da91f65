package notification

import "eventparadise/models"

// Convenience wrappers building the typed payloads for the common domain
// events. The recipient is always the event organizer; guests are not
// first-class accounts in this design.

// NotifyGuestActivity notifies the organizer about a guest-related event.
func NotifyGuestActivity(svc NotificationService, guest *models.Guest, event *models.Event, subtype string) bool {
	if event.OrganizerID == "" {
		return false
	}
	return svc.Notify(event.OrganizerID, models.NotificationKindGuest, subtype, map[string]any{
		"guestId":      guest.ID,
		"guestName":    guest.Name,
		"eventId":      event.ID,
		"eventTitle":   event.Title,
		"ticketNumber": guest.TicketNumber,
	})
}

// NotifyPaymentActivity notifies a user about a payment-related event.
func NotifyPaymentActivity(svc NotificationService, payment *models.Payment, userID, subtype string) bool {
	return svc.Notify(userID, models.NotificationKindPayment, subtype, map[string]any{
		"paymentId":     payment.ID,
		"amount":        payment.Amount,
		"paymentType":   payment.PaymentType,
		"transactionId": payment.TransactionID,
		"status":        payment.Status,
	})
}

// NotifyEventActivity notifies the organizer about an event lifecycle change.
func NotifyEventActivity(svc NotificationService, event *models.Event, subtype string) bool {
	if event.OrganizerID == "" {
		return false
	}
	return svc.Notify(event.OrganizerID, models.NotificationKindEvent, subtype, map[string]any{
		"eventId":     event.ID,
		"eventTitle":  event.Title,
		"eventStatus": event.Status,
	})
}
