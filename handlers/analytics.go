package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	eventRepo "eventparadise/database/repository/event"
	feedbackRepo "eventparadise/database/repository/feedback"
	guestRepo "eventparadise/database/repository/guest"
	paymentRepo "eventparadise/database/repository/payment"
	"eventparadise/models"
	"eventparadise/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	dashboardCacheKey = "analytics:dashboard"
	dashboardCacheTTL = time.Minute
)

// AnalyticsHandler serves per-event statistics and the admin dashboard.
type AnalyticsHandler struct {
	Events   eventRepo.EventRepository
	Guests   guestRepo.GuestRepository
	Payments paymentRepo.PaymentRepository
	Feedback feedbackRepo.FeedbackRepository
	Cache    *redis.Client
}

func NewAnalyticsHandler(events eventRepo.EventRepository, guests guestRepo.GuestRepository,
	payments paymentRepo.PaymentRepository, feedback feedbackRepo.FeedbackRepository,
	cache *redis.Client) *AnalyticsHandler {
	return &AnalyticsHandler{
		Events: events, Guests: guests, Payments: payments, Feedback: feedback, Cache: cache,
	}
}

type eventStats struct {
	EventID        string  `json:"eventId"`
	GuestCount     int     `json:"guestCount"`
	CheckedInCount int     `json:"checkedInCount"`
	ConfirmedCount int     `json:"confirmedCount"`
	TotalPaid      float64 `json:"totalPaid"`
	AverageRating  float64 `json:"averageRating"`
	FeedbackCount  int     `json:"feedbackCount"`
}

// EventStats aggregates one event's guest, payment and feedback numbers.
func (h *AnalyticsHandler) EventStats(c *gin.Context) {
	logger := getLogger(c)
	eventID := c.Param("eventId")

	if _, err := h.Events.GetByID(eventID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	stats := eventStats{EventID: eventID}

	guests, err := h.Guests.GetByEvent(eventID)
	if err != nil {
		logger.Error("Failed to load guests for stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	stats.GuestCount = len(guests)
	for _, g := range guests {
		if g.CheckedIn {
			stats.CheckedInCount++
		}
		if g.RSVPStatus == models.RSVPConfirmed {
			stats.ConfirmedCount++
		}
	}

	payments, err := h.Payments.GetByEvent(eventID)
	if err != nil {
		logger.Error("Failed to load payments for stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	for _, p := range payments {
		if p.Status == models.PaymentStatusCompleted {
			stats.TotalPaid += p.Amount
		}
	}

	entries, err := h.Feedback.GetByEvent(eventID)
	if err != nil {
		logger.Error("Failed to load feedback for stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	stats.FeedbackCount = len(entries)
	if len(entries) > 0 {
		total := 0
		for _, f := range entries {
			total += f.Rating
		}
		stats.AverageRating = float64(total) / float64(len(entries))
	}

	c.JSON(http.StatusOK, stats)
}

type dashboardStats struct {
	TotalEvents    int64   `json:"totalEvents"`
	TotalGuests    int64   `json:"totalGuests"`
	TotalPayments  int64   `json:"totalPayments"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	GeneratedAt    string  `json:"generatedAt"`
}

// Dashboard returns platform-wide totals. The result is cached in Redis for
// one minute; a cache outage degrades to computing on every request.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	logger := getLogger(c)
	ctx := c.Request.Context()

	if cached := h.readCache(ctx); cached != nil {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	stats := dashboardStats{GeneratedAt: time.Now().Format(time.RFC3339)}
	var err error
	if stats.TotalEvents, err = h.Events.Count(); err != nil {
		logger.Error("Failed to count events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	if stats.TotalGuests, err = h.Guests.Count(); err != nil {
		logger.Error("Failed to count guests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	if stats.TotalPayments, err = h.Payments.Count(); err != nil {
		logger.Error("Failed to count payments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	now := time.Now()
	if stats.MonthlyRevenue, err = h.Payments.SumCompletedBetween(now.AddDate(0, -1, 0), now); err != nil {
		logger.Error("Failed to sum revenue", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	h.writeCache(ctx, stats)
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) readCache(ctx context.Context) []byte {
	if h.Cache == nil {
		return nil
	}
	data, err := h.Cache.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("Dashboard cache read failed", zap.Error(err))
		}
		return nil
	}
	return data
}

func (h *AnalyticsHandler) writeCache(ctx context.Context, stats dashboardStats) {
	if h.Cache == nil {
		return
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := h.Cache.Set(ctx, dashboardCacheKey, data, dashboardCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Dashboard cache write failed", zap.Error(err))
	}
}
