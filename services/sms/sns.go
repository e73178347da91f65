package sms

import (
	"context"
	"fmt"

	"eventparadise/utils"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"
)

// SNSSender sends SMS messages via AWS SNS.
type SNSSender struct {
	client *sns.Client
}

// NewSNSSender creates an SNS-backed SMS sender for the given region.
func NewSNSSender(region string) (*SNSSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &SNSSender{client: sns.NewFromConfig(awsCfg)}, nil
}

// Send publishes one SMS. Transport errors are logged and reported as false.
func (s *SNSSender) Send(ctx context.Context, to, message string) bool {
	logger := utils.GetLogger()

	err := sendWithRetry(func() error {
		_, err := s.client.Publish(ctx, &sns.PublishInput{
			PhoneNumber: &to,
			Message:     &message,
		})
		return err
	})
	if err != nil {
		logger.Error("Failed to send SMS", zap.String("to", to), zap.Error(err))
		return false
	}

	logger.Debug("SMS sent", zap.String("to", to))
	return true
}
