package sms

import (
	"context"
	"time"

	"eventparadise/config"
	"eventparadise/utils"

	"go.uber.org/zap"
)

// Sender sends a single SMS. Implementations swallow and log transport
// errors; a failed text never fails the calling workflow.
type Sender interface {
	Send(ctx context.Context, to, message string) bool
}

// NewFromConfig returns the SNS sender when a region is configured, otherwise
// the simulated sender that only logs outgoing messages.
func NewFromConfig() Sender {
	if config.AppConfig.SNSRegion != "" {
		sender, err := NewSNSSender(config.AppConfig.SNSRegion)
		if err == nil {
			return sender
		}
		utils.GetLogger().Error("Failed to initialize SNS sender, falling back to simulation", zap.Error(err))
	} else {
		utils.GetLogger().Warn("SNS not configured, SMS sends will be simulated")
	}
	return NewSimulatedSender()
}

// sendWithRetry runs fn once and retries once after a short delay.
func sendWithRetry(fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	time.Sleep(500 * time.Millisecond)
	return fn()
}
