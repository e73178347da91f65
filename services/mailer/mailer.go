package mailer

import (
	"context"
	"time"

	"eventparadise/config"
	"eventparadise/utils"

	"go.uber.org/zap"
)

// Mailer sends a single email. Implementations swallow and log transport
// errors; notification failure must never interrupt the primary workflow.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) bool
}

// NewFromConfig returns the Postmark mailer when a server token is configured,
// otherwise the dev sender that writes emails to disk.
func NewFromConfig() Mailer {
	if config.AppConfig.PostmarkServerToken != "" {
		return NewPostmarkMailer(
			config.AppConfig.PostmarkServerToken,
			config.AppConfig.PostmarkAccountToken,
			config.AppConfig.MailSender,
		)
	}
	utils.GetLogger().Warn("Postmark not configured, emails will be written to disk",
		zap.String("dir", config.AppConfig.MailOutboxDir))
	return NewDevMailer(config.AppConfig.MailOutboxDir)
}

// sendWithRetry runs fn once and retries once after a short delay. The
// contract stays boolean either way.
func sendWithRetry(fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	time.Sleep(500 * time.Millisecond)
	return fn()
}
