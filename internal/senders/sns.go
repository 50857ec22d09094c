package senders

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"binday-scheduler/internal/common/errors"
	"binday-scheduler/internal/common/logger"
)

// snsAPI is the slice of the SNS client we use, extracted for mocking.
type snsAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSSender delivers SMS through AWS SNS. SNS has no scheduled delivery, so
// ScheduleMessage always fails; the dispatcher logs that per attempt and
// other senders still receive the notification.
type SNSSender struct {
	api        snsAPI
	recipients []string
	log        logger.Logger
}

func NewSNSSender(ctx context.Context, region string, recipients []string, log logger.Logger) (*SNSSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, errors.NewConfigError("load AWS config failed", err.Error())
	}
	return &SNSSender{
		api:        sns.NewFromConfig(cfg),
		recipients: recipients,
		log:        log.WithFields(map[string]interface{}{"sender": "sns"}),
	}, nil
}

func (s *SNSSender) Name() string {
	return "sns"
}

func (s *SNSSender) SendMessage(ctx context.Context, text string) error {
	for _, recipient := range s.recipients {
		_, err := s.api.Publish(ctx, &sns.PublishInput{
			PhoneNumber: aws.String(recipient),
			Message:     aws.String(text),
		})
		if err != nil {
			return errors.NewSenderError(s.Name(), err)
		}
		s.log.Debug("sms published", map[string]interface{}{"to": recipient})
	}
	return nil
}

func (s *SNSSender) ScheduleMessage(_ context.Context, _ string, _ time.Time) error {
	return errors.NewSenderError(s.Name(), errScheduleUnsupported)
}

var errScheduleUnsupported = stderrors.New("scheduled delivery not supported")
