package handlers

// HandlerBundle groups all endpoint handlers into one struct that route
// registration consumes.
type HandlerBundle struct {
	Auth          *AuthHandler
	Events        *EventHandler
	Guests        *GuestHandler
	Vendors       *VendorHandler
	Payments      *PaymentHandler
	Feedback      *FeedbackHandler
	Notifications *NotificationHandler
	WS            *WSHandler
	Analytics     *AnalyticsHandler
	Export        *ExportHandler
	Storage       *StorageHandler
	System        *SystemHandler
}
