package payment

import (
	"context"

	"eventparadise/config"
)

// Intent is the provider-agnostic view of a created payment intent.
type Intent struct {
	ID           string  `json:"id"`
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

// WebhookEvent is a normalized payment provider webhook.
type WebhookEvent struct {
	Type     string
	IntentID string
	Amount   float64
}

// Webhook event types surfaced to handlers.
const (
	WebhookIntentSucceeded = "payment_intent.succeeded"
	WebhookIntentFailed    = "payment_intent.payment_failed"
)

// Processor creates payment intents and verifies provider webhooks.
type Processor interface {
	CreateIntent(ctx context.Context, amount float64, currency, eventID string) (*Intent, error)
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

// NewFromConfig returns the Stripe processor when a secret key is
// configured, and the simulated processor otherwise.
func NewFromConfig() Processor {
	if config.AppConfig.StripeKey != "" {
		return NewStripeProcessor(config.AppConfig.StripeKey, config.AppConfig.StripeWebhookSecret)
	}
	return &SimulatedProcessor{}
}
