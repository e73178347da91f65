package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"eventparadise/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// StripeProcessor charges cards through Stripe payment intents.
type StripeProcessor struct {
	webhookSecret string
}

// NewStripeProcessor sets the global Stripe key and returns a processor.
func NewStripeProcessor(secretKey, webhookSecret string) *StripeProcessor {
	stripe.Key = secretKey
	return &StripeProcessor{webhookSecret: webhookSecret}
}

// CreateIntent creates a Stripe payment intent for the given amount. The
// eventID is attached as metadata so webhooks can be traced back.
func (p *StripeProcessor) CreateIntent(ctx context.Context, amount float64, currency, eventID string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("eventId", eventID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	utils.GetLogger().Info("Created payment intent",
		zap.String("intentId", pi.ID), zap.Float64("amount", amount))

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       amount,
		Currency:     currency,
	}, nil
}

// ParseWebhook verifies the Stripe signature and normalizes the event.
func (p *StripeProcessor) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	switch event.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("failed to parse payment intent payload: %w", err)
		}
		return &WebhookEvent{
			Type:     string(event.Type),
			IntentID: pi.ID,
			Amount:   float64(pi.Amount) / 100,
		}, nil
	}

	// Other event types are acknowledged but carry no intent.
	return &WebhookEvent{Type: string(event.Type)}, nil
}
