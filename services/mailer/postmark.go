package mailer

import (
	"context"
	"fmt"

	"eventparadise/utils"

	"github.com/mrz1836/postmark"
	"go.uber.org/zap"
)

// PostmarkMailer sends mail through the Postmark transactional API.
type PostmarkMailer struct {
	client *postmark.Client
	sender string
}

// NewPostmarkMailer creates a Postmark-backed mailer.
func NewPostmarkMailer(serverToken, accountToken, sender string) *PostmarkMailer {
	return &PostmarkMailer{
		client: postmark.NewClient(serverToken, accountToken),
		sender: sender,
	}
}

// Send delivers one email. Transport errors are logged and reported as false.
func (m *PostmarkMailer) Send(ctx context.Context, to, subject, body string) bool {
	logger := utils.GetLogger()

	err := sendWithRetry(func() error {
		resp, err := m.client.SendEmail(ctx, postmark.Email{
			From:     m.sender,
			To:       to,
			Subject:  subject,
			TextBody: body,
		})
		if err != nil {
			return err
		}
		if resp.ErrorCode > 0 {
			return fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return false
	}

	logger.Debug("Email sent", zap.String("to", to), zap.String("subject", subject))
	return true
}
