package senders

import (
	"context"
	"strconv"
	"time"

	"github.com/slack-go/slack"

	"binday-scheduler/internal/common/errors"
	"binday-scheduler/internal/common/logger"
)

// slackAPI is the slice of the Slack client we use, extracted for mocking.
type slackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	ScheduleMessageContext(ctx context.Context, channelID, postAt string, options ...slack.MsgOption) (string, string, error)
}

// SlackSender posts to one or more Slack channels. Scheduled sends use
// chat.scheduleMessage, so delivery timing is Slack's responsibility.
type SlackSender struct {
	api        slackAPI
	recipients []string
	log        logger.Logger
}

func NewSlackSender(accessToken string, recipients []string, log logger.Logger) *SlackSender {
	return &SlackSender{
		api:        slack.New(accessToken),
		recipients: recipients,
		log:        log.WithFields(map[string]interface{}{"sender": "slack"}),
	}
}

func (s *SlackSender) Name() string {
	return "slack"
}

func (s *SlackSender) SendMessage(ctx context.Context, text string) error {
	for _, channel := range s.recipients {
		_, _, err := s.api.PostMessageContext(ctx, channel, slack.MsgOptionText(text, false))
		if err != nil {
			return errors.NewSenderError(s.Name(), err)
		}
		s.log.Debug("message posted", map[string]interface{}{"channel": channel})
	}
	return nil
}

func (s *SlackSender) ScheduleMessage(ctx context.Context, text string, sendAt time.Time) error {
	postAt := strconv.FormatInt(sendAt.Unix(), 10)
	for _, channel := range s.recipients {
		_, _, err := s.api.ScheduleMessageContext(ctx, channel, postAt, slack.MsgOptionText(text, false))
		if err != nil {
			return errors.NewSenderError(s.Name(), err)
		}
		s.log.Debug("message scheduled", map[string]interface{}{
			"channel": channel,
			"postAt":  postAt,
		})
	}
	return nil
}
