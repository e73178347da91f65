package routes

import (
	"time"

	"eventparadise/handlers"
	"eventparadise/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
	}
}

// RegisterEventRoutes registers the event CRUD endpoints and everything
// nested under an event: guests, vendors, payments, feedback, analytics
// and exports.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("", hb.Events.List)
		api.POST("", hb.Events.Create)
		api.GET("/:eventId", hb.Events.Get)
		api.PATCH("/:eventId", hb.Events.Update)
		api.DELETE("/:eventId", hb.Events.Delete)
	}

	nested := r.Group("/api/events/:eventId")
	nested.Use(middleware.JWTAuthMiddleware())
	{
		nested.GET("/guests", hb.Guests.List)
		nested.POST("/guests", hb.Guests.Add)
		nested.POST("/checkin", hb.Guests.CheckIn)

		nested.GET("/vendors", hb.Vendors.List)
		nested.POST("/vendors", hb.Vendors.Add)

		nested.GET("/payments", hb.Payments.List)
		nested.POST("/payments", hb.Payments.Record)
		nested.POST("/payments/intent", hb.Payments.CreateIntent)

		nested.GET("/feedback", hb.Feedback.List)

		nested.GET("/stats", hb.Analytics.EventStats)
		nested.GET("/export/guests", hb.Export.GuestsCSV)
		nested.GET("/export/payments", hb.Export.PaymentsCSV)
	}

	// Feedback submission is public: guests identify by ticket number and
	// do not hold accounts.
	r.POST("/api/events/:eventId/feedback", hb.Feedback.Submit)
}

// RegisterGuestRoutes registers the guest endpoints addressed by guest ID.
func RegisterGuestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/guests")
	{
		// RSVP links arrive by email; the guest has no account to log in
		// with and authenticates with the ticket number instead.
		api.PUT("/:guestId/rsvp", hb.Guests.RSVP)

		api.DELETE("/:guestId", middleware.JWTAuthMiddleware(), hb.Guests.Delete)
	}
}

// RegisterVendorRoutes registers the vendor endpoints addressed by vendor ID.
func RegisterVendorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vendors")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.PATCH("/:vendorId", hb.Vendors.Update)
		api.DELETE("/:vendorId", hb.Vendors.Delete)
	}
}

// RegisterNotificationRoutes registers the notification inbox and the
// realtime websocket endpoint.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("/unread", hb.Notifications.Unread)
		api.PUT("/:id/read", hb.Notifications.MarkRead)
	}

	// The websocket handler authenticates the token itself; browsers cannot
	// set an Authorization header on the upgrade request.
	r.GET("/ws/notifications", hb.WS.Connect)
}

// RegisterStorageRoutes registers the file upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/files")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("/upload/:folder", hb.Storage.Upload)
		api.DELETE("/:publicId", hb.Storage.Delete)
	}
}

// RegisterAdminRoutes registers the admin-only endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnly())
	{
		api.GET("/dashboard", hb.Analytics.Dashboard)
		api.GET("/scheduler/status", hb.System.SchedulerStatus)
		api.POST("/broadcast", hb.Notifications.Broadcast)
		api.GET("/connected", hb.Notifications.Connected)
	}
}

// RegisterSystemRoutes registers health and webhook endpoints.
func RegisterSystemRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.System.Health)

	// Stripe calls this endpoint directly; the signature header is verified
	// inside the handler.
	r.POST("/api/webhooks/stripe", hb.Payments.Webhook)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterGuestRoutes(r, hb)
	RegisterVendorRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterSystemRoutes(r, hb)
}
