package payment

import (
	"context"
	"fmt"

	"eventparadise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SimulatedProcessor approves every intent locally. Used in development
// when no Stripe key is configured.
type SimulatedProcessor struct{}

func (p *SimulatedProcessor) CreateIntent(ctx context.Context, amount float64, currency, eventID string) (*Intent, error) {
	id := "pi_sim_" + uuid.New().String()
	utils.GetLogger().Info("[SIMULATED] Created payment intent",
		zap.String("intentId", id), zap.Float64("amount", amount), zap.String("eventId", eventID))
	return &Intent{
		ID:           id,
		ClientSecret: id + "_secret",
		Amount:       amount,
		Currency:     currency,
	}, nil
}

// ParseWebhook trusts the payload as-is. The simulated processor performs
// no signature verification.
func (p *SimulatedProcessor) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("empty webhook payload")
	}
	return &WebhookEvent{Type: WebhookIntentSucceeded}, nil
}
