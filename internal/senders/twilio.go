package senders

import (
	"context"
	"time"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"binday-scheduler/internal/common/errors"
	"binday-scheduler/internal/common/logger"
)

// twilioAPI is the slice of the Twilio client we use, extracted for mocking.
type twilioAPI interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// TwilioSender delivers SMS through a Twilio messaging service. Scheduled
// sends use Twilio's fixed schedule type, which requires the messaging
// service SID.
type TwilioSender struct {
	api                 twilioAPI
	messagingServiceSID string
	recipients          []string
	log                 logger.Logger
}

func NewTwilioSender(accountSID, authToken, messagingServiceSID string, recipients []string, log logger.Logger) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{
		api:                 client.Api,
		messagingServiceSID: messagingServiceSID,
		recipients:          recipients,
		log:                 log.WithFields(map[string]interface{}{"sender": "twilio"}),
	}
}

func (t *TwilioSender) Name() string {
	return "twilio"
}

func (t *TwilioSender) SendMessage(_ context.Context, text string) error {
	for _, recipient := range t.recipients {
		params := &openapi.CreateMessageParams{}
		params.SetTo(recipient)
		params.SetMessagingServiceSid(t.messagingServiceSID)
		params.SetBody(text)

		if _, err := t.api.CreateMessage(params); err != nil {
			return errors.NewSenderError(t.Name(), err)
		}
		t.log.Debug("sms sent", map[string]interface{}{"to": recipient})
	}
	return nil
}

func (t *TwilioSender) ScheduleMessage(_ context.Context, text string, sendAt time.Time) error {
	for _, recipient := range t.recipients {
		params := &openapi.CreateMessageParams{}
		params.SetTo(recipient)
		params.SetMessagingServiceSid(t.messagingServiceSID)
		params.SetBody(text)
		params.SetScheduleType("fixed")
		params.SetSendAt(sendAt.UTC())

		if _, err := t.api.CreateMessage(params); err != nil {
			return errors.NewSenderError(t.Name(), err)
		}
		t.log.Debug("sms scheduled", map[string]interface{}{
			"to":     recipient,
			"sendAt": sendAt.UTC().Format(time.RFC3339),
		})
	}
	return nil
}
