package sms

import (
	"context"

	"eventparadise/utils"

	"go.uber.org/zap"
)

// SimulatedSender logs outgoing messages instead of sending them. Used in
// development and whenever SNS credentials are absent.
type SimulatedSender struct{}

// NewSimulatedSender creates a sender that only logs.
func NewSimulatedSender() *SimulatedSender {
	return &SimulatedSender{}
}

// Send logs the message and reports success.
func (s *SimulatedSender) Send(ctx context.Context, to, message string) bool {
	utils.GetLogger().Info("[SMS simulation]",
		zap.String("to", to),
		zap.String("message", message))
	return true
}
