package senders

import (
	"context"

	"github.com/google/uuid"

	"binday-scheduler/internal/common/logger"
	"binday-scheduler/internal/models"
)

// Dispatcher fans each notification out to every configured sender in
// configuration order. Senders are independent: one failing does not stop
// the rest, and nothing is atomic across channels.
type Dispatcher struct {
	senders []Sender
	log     logger.Logger
}

func NewDispatcher(log logger.Logger, senders ...Sender) *Dispatcher {
	return &Dispatcher{senders: senders, log: log}
}

// Dispatch delivers every notification on every sender and returns the
// number of failed send attempts. Failures are logged, never fatal.
func (d *Dispatcher) Dispatch(ctx context.Context, notifications []models.Notification) int {
	failures := 0
	for _, notification := range notifications {
		dispatchID := uuid.New().String()
		for _, sender := range d.senders {
			if err := d.send(ctx, sender, notification); err != nil {
				failures++
				d.log.Error("dispatch failed", map[string]interface{}{
					"sender":     sender.Name(),
					"dispatchId": dispatchID,
					"error":      err.Error(),
				})
				continue
			}
			d.log.Info("notification dispatched", map[string]interface{}{
				"sender":     sender.Name(),
				"dispatchId": dispatchID,
				"scheduled":  notification.IsScheduled(),
			})
		}
	}
	return failures
}

func (d *Dispatcher) send(ctx context.Context, sender Sender, notification models.Notification) error {
	if notification.IsScheduled() {
		return sender.ScheduleMessage(ctx, notification.Message, notification.SendAtUTC)
	}
	return sender.SendMessage(ctx, notification.Message)
}
