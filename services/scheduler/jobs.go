package scheduler

import (
	"context"
	"time"

	"eventparadise/database"
	eventRepo "eventparadise/database/repository/event"
	feedbackRepo "eventparadise/database/repository/feedback"
	guestRepo "eventparadise/database/repository/guest"
	paymentRepo "eventparadise/database/repository/payment"
	userRepo "eventparadise/database/repository/user"
	vendorRepo "eventparadise/database/repository/vendor"
	"eventparadise/models"
	"eventparadise/services/mailer"
	"eventparadise/services/notification"
	"eventparadise/services/sms"
	"eventparadise/utils"

	"go.uber.org/zap"
)

// Retention windows for the cleanup jobs.
const (
	feedbackRetentionDays     = 365
	notificationRetentionDays = 30
)

// Jobs holds the dependencies the background jobs operate on.
type Jobs struct {
	Events   eventRepo.EventRepository
	Guests   guestRepo.GuestRepository
	Vendors  vendorRepo.VendorRepository
	Payments paymentRepo.PaymentRepository
	Feedback feedbackRepo.FeedbackRepository
	Users    userRepo.UserRepository

	Notifier notification.NotificationService
	Mail     mailer.Mailer
	SMS      sms.Sender
}

// Catalog returns the full job table with its schedules.
func (j *Jobs) Catalog() []Job {
	return []Job{
		{Name: "daily_event_reminders", Spec: "0 8 * * *", Run: j.DailyEventReminders},
		{Name: "vendor_reminders", Spec: "0 9 * * *", Run: j.VendorReminders},
		{Name: "feedback_requests", Spec: "30 9 * * *", Run: j.FeedbackRequests},
		{Name: "daily_report", Spec: "0 18 * * *", Run: j.DailyReport},
		{Name: "weekly_report", Spec: "0 8 * * MON", Run: j.WeeklyReport},
		{Name: "data_cleanup", Spec: "0 2 * * SUN", Run: j.DataCleanup},
		{Name: "health_check", Spec: "@every 1h", Run: j.HealthCheck},
		{Name: "notification_cleanup", Spec: "@every 6h", Run: j.NotificationCleanup},
	}
}

// DailyEventReminders texts and emails confirmed, not-yet-checked-in guests
// of events starting within the next one to three days, and notifies the
// organizer.
func (j *Jobs) DailyEventReminders() {
	logger := utils.GetLogger()
	now := time.Now()

	events, err := j.Events.GetStartingBetween(
		now.Add(24*time.Hour), now.Add(72*time.Hour),
		models.EventStatusPlanned, models.EventStatusOngoing,
	)
	if err != nil {
		logger.Error("Failed to load upcoming events for reminders", zap.Error(err))
		return
	}

	ctx, cancel := jobContext()
	defer cancel()

	reminded := 0
	for i := range events {
		event := &events[i]
		guests, err := j.Guests.GetByEvent(event.ID)
		if err != nil {
			logger.Error("Failed to load guests for reminders",
				zap.String("eventId", event.ID), zap.Error(err))
			continue
		}
		for g := range guests {
			guest := &guests[g]
			if guest.RSVPStatus != models.RSVPConfirmed || guest.CheckedIn {
				continue
			}
			subject, body := mailer.ReminderEmail(guest, event)
			j.Mail.Send(ctx, guest.Email, subject, body)
			if guest.Phone != "" {
				j.SMS.Send(ctx, guest.Phone, sms.ReminderMessage(guest, event))
			}
			reminded++
		}
		notification.NotifyEventActivity(j.Notifier, event, notification.SubtypeEventReminder)
	}

	logger.Info("Event reminders sent",
		zap.Int("events", len(events)), zap.Int("guests", reminded))
}

// VendorReminders texts vendors that are not fully paid for events starting
// within the next two to seven days.
func (j *Jobs) VendorReminders() {
	logger := utils.GetLogger()
	now := time.Now()

	events, err := j.Events.GetStartingBetween(
		now.Add(48*time.Hour), now.Add(7*24*time.Hour),
		models.EventStatusPlanned,
	)
	if err != nil {
		logger.Error("Failed to load events for vendor reminders", zap.Error(err))
		return
	}

	ctx, cancel := jobContext()
	defer cancel()

	reminded := 0
	for i := range events {
		event := &events[i]
		vendors, err := j.Vendors.GetByEvent(event.ID)
		if err != nil {
			logger.Error("Failed to load vendors",
				zap.String("eventId", event.ID), zap.Error(err))
			continue
		}
		for v := range vendors {
			vendor := &vendors[v]
			if vendor.PaymentStatus == models.VendorPaymentPaid {
				continue
			}
			if vendor.Phone != "" {
				j.SMS.Send(ctx, vendor.Phone, sms.VendorReminderMessage(vendor, event))
			}
			if vendor.Email != "" {
				subject, body := mailer.VendorReminderEmail(vendor, event)
				j.Mail.Send(ctx, vendor.Email, subject, body)
			}
			reminded++
		}
	}

	logger.Info("Vendor reminders sent", zap.Int("vendors", reminded))
}

// FeedbackRequests emails confirmed guests of events completed one to two
// days ago.
func (j *Jobs) FeedbackRequests() {
	logger := utils.GetLogger()
	now := time.Now()

	events, err := j.Events.GetEndedBetween(
		now.Add(-48*time.Hour), now.Add(-24*time.Hour),
		models.EventStatusCompleted,
	)
	if err != nil {
		logger.Error("Failed to load completed events for feedback requests", zap.Error(err))
		return
	}

	ctx, cancel := jobContext()
	defer cancel()

	requested := 0
	for i := range events {
		event := &events[i]
		guests, err := j.Guests.GetByEvent(event.ID)
		if err != nil {
			logger.Error("Failed to load guests for feedback requests",
				zap.String("eventId", event.ID), zap.Error(err))
			continue
		}
		for g := range guests {
			guest := &guests[g]
			if guest.RSVPStatus != models.RSVPConfirmed {
				continue
			}
			subject, body := mailer.FeedbackRequestEmail(guest, event)
			j.Mail.Send(ctx, guest.Email, subject, body)
			requested++
		}
	}

	logger.Info("Feedback requests sent", zap.Int("guests", requested))
}

// DailyReport emails admins the aggregate numbers of the last 24 hours.
func (j *Jobs) DailyReport() {
	now := time.Now()
	j.sendReport("Daily", now.Add(-24*time.Hour), now)
}

// WeeklyReport emails admins the aggregate numbers of the last 7 days.
func (j *Jobs) WeeklyReport() {
	now := time.Now()
	j.sendReport("Weekly", now.Add(-7*24*time.Hour), now)
}

func (j *Jobs) sendReport(period string, from, to time.Time) {
	logger := utils.GetLogger()
	stats := mailer.ReportStats{From: from, To: to}

	var err error
	if stats.EventsCreated, err = j.Events.CountCreatedBetween(from, to); err != nil {
		logger.Error("Failed to count events for report", zap.Error(err))
	}
	if stats.GuestsRegistered, err = j.Guests.CountCreatedBetween(from, to); err != nil {
		logger.Error("Failed to count guests for report", zap.Error(err))
	}
	if stats.PaymentsProcessed, err = j.Payments.CountCompletedBetween(from, to); err != nil {
		logger.Error("Failed to count payments for report", zap.Error(err))
	}
	if stats.TotalRevenue, err = j.Payments.SumCompletedBetween(from, to); err != nil {
		logger.Error("Failed to sum revenue for report", zap.Error(err))
	}

	subject, body := mailer.ReportEmail(period, stats)
	j.emailAdmins(subject, body)
	logger.Info("Report sent", zap.String("period", period))
}

// DataCleanup purges feedback older than the retention window.
func (j *Jobs) DataCleanup() {
	logger := utils.GetLogger()
	cutoff := time.Now().AddDate(0, 0, -feedbackRetentionDays)
	deleted, err := j.Feedback.DeleteOlderThan(cutoff)
	if err != nil {
		logger.Error("Feedback cleanup failed", zap.Error(err))
		return
	}
	logger.Info("Feedback cleanup finished", zap.Int64("deleted", deleted))
}

// HealthCheck probes Mongo and Redis and alerts admins when either fails.
func (j *Jobs) HealthCheck() {
	ctx, cancel := jobContext()
	defer cancel()

	status := utils.CheckHealth(ctx, utils.GetCacheClient(), database.MongoClient)
	if status.Healthy() {
		return
	}

	utils.GetLogger().Warn("Health check failed",
		zap.Bool("mongo", status.Mongo), zap.Bool("redis", status.Redis))
	subject, body := mailer.HealthAlertEmail(status.Mongo, status.Redis, status.CheckedAt)
	j.emailAdmins(subject, body)
}

// NotificationCleanup purges notifications older than the retention window.
func (j *Jobs) NotificationCleanup() {
	deleted := j.Notifier.CleanupOlderThan(notificationRetentionDays)
	utils.GetLogger().Info("Notification cleanup finished", zap.Int64("deleted", deleted))
}

func (j *Jobs) emailAdmins(subject, body string) {
	logger := utils.GetLogger()
	admins, err := j.Users.GetByRole(models.RoleAdmin)
	if err != nil {
		logger.Error("Failed to load admins", zap.Error(err))
		return
	}

	ctx, cancel := jobContext()
	defer cancel()
	for i := range admins {
		j.Mail.Send(ctx, admins[i].Email, subject, body)
	}
}

func jobContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Minute)
}
