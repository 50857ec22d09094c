package senders

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binday-scheduler/internal/common/logger"
	"binday-scheduler/internal/models"
)

type fakeSender struct {
	name      string
	sent      []string
	scheduled []time.Time
	fail      bool
}

func (f *fakeSender) Name() string {
	return f.name
}

func (f *fakeSender) SendMessage(_ context.Context, text string) error {
	if f.fail {
		return stderrors.New("provider exploded")
	}
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeSender) ScheduleMessage(_ context.Context, text string, sendAt time.Time) error {
	if f.fail {
		return stderrors.New("provider exploded")
	}
	f.scheduled = append(f.scheduled, sendAt)
	return nil
}

func mustNotification(t *testing.T, message string, sendAt time.Time) models.Notification {
	t.Helper()
	n, err := models.NewNotification(message, sendAt)
	require.NoError(t, err)
	return n
}

func TestDispatch_ImmediateAndScheduledRouting(t *testing.T) {
	sender := &fakeSender{name: "fake"}
	dispatcher := NewDispatcher(logger.NewTestLogger(t), sender)

	future := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)
	notifications := []models.Notification{
		mustNotification(t, "Black bin day tomorrow", time.Time{}),
		mustNotification(t, "Black bin day today!", future),
	}

	failures := dispatcher.Dispatch(context.Background(), notifications)
	assert.Zero(t, failures)
	assert.Equal(t, []string{"Black bin day tomorrow"}, sender.sent)
	assert.Equal(t, []time.Time{future}, sender.scheduled)
}

func TestDispatch_SenderFailureDoesNotBlockOthers(t *testing.T) {
	failing := &fakeSender{name: "a", fail: true}
	healthy := &fakeSender{name: "b"}
	dispatcher := NewDispatcher(logger.NewTestLogger(t), failing, healthy)

	notifications := []models.Notification{
		mustNotification(t, "Blue bin day tomorrow", time.Time{}),
	}

	failures := dispatcher.Dispatch(context.Background(), notifications)
	assert.Equal(t, 1, failures)
	assert.Equal(t, []string{"Blue bin day tomorrow"}, healthy.sent)
}

func TestDispatch_NoSenders(t *testing.T) {
	dispatcher := NewDispatcher(logger.NewTestLogger(t))
	failures := dispatcher.Dispatch(context.Background(), []models.Notification{
		mustNotification(t, "Green bin day tomorrow", time.Time{}),
	})
	assert.Zero(t, failures)
}
