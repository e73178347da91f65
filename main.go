package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventparadise/config"
	"eventparadise/database"
	eventRepoPkg "eventparadise/database/repository/event"
	feedbackRepoPkg "eventparadise/database/repository/feedback"
	guestRepoPkg "eventparadise/database/repository/guest"
	notificationRepoPkg "eventparadise/database/repository/notification"
	paymentRepoPkg "eventparadise/database/repository/payment"
	userRepoPkg "eventparadise/database/repository/user"
	vendorRepoPkg "eventparadise/database/repository/vendor"
	"eventparadise/handlers"
	"eventparadise/routes"
	"eventparadise/services/calendar"
	"eventparadise/services/mailer"
	"eventparadise/services/notification"
	"eventparadise/services/payment"
	"eventparadise/services/scheduler"
	"eventparadise/services/sms"
	"eventparadise/services/storage"
	"eventparadise/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Seed the health snapshot so /health answers correctly before the
	// hourly probe first fires.
	healthCtx, healthCancel := context.WithTimeout(context.Background(), 5*time.Second)
	utils.CheckHealth(healthCtx, utils.GetCacheClient(), database.MongoClient)
	healthCancel()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	guestRepo := guestRepoPkg.NewMongoGuestRepo()
	vendorRepo := vendorRepoPkg.NewMongoVendorRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	feedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// services.
	mail := mailer.NewFromConfig()
	texter := sms.NewFromConfig()
	processor := payment.NewFromConfig()
	calendarSync := calendar.NewFromConfig(context.Background())
	storageSvc := storage.NewFromConfig()
	notifier := notification.NewCoordinator(notificationRepo, userRepo)

	// background jobs.
	jobs := &scheduler.Jobs{
		Events:   eventRepo,
		Guests:   guestRepo,
		Vendors:  vendorRepo,
		Payments: paymentRepo,
		Feedback: feedbackRepo,
		Users:    userRepo,
		Notifier: notifier,
		Mail:     mail,
		SMS:      texter,
	}
	sched, err := scheduler.New(jobs.Catalog())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build scheduler: %v", err)
	}
	sched.Start()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:          handlers.NewAuthHandler(userRepo),
		Events:        handlers.NewEventHandler(eventRepo, calendarSync, notifier),
		Guests:        handlers.NewGuestHandler(guestRepo, eventRepo, mail, texter, notifier),
		Vendors:       handlers.NewVendorHandler(vendorRepo, eventRepo, mail),
		Payments:      handlers.NewPaymentHandler(paymentRepo, eventRepo, userRepo, processor, mail, notifier),
		Feedback:      handlers.NewFeedbackHandler(feedbackRepo, guestRepo),
		Notifications: handlers.NewNotificationHandler(notifier),
		WS:            handlers.NewWSHandler(notifier),
		Analytics:     handlers.NewAnalyticsHandler(eventRepo, guestRepo, paymentRepo, feedbackRepo, utils.GetCacheClient()),
		Export:        handlers.NewExportHandler(guestRepo, paymentRepo),
		Storage:       handlers.NewStorageHandler(storageSvc),
		System:        handlers.NewSystemHandler(sched),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	// Let in-flight scheduler jobs finish before stopping the server.
	<-sched.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
