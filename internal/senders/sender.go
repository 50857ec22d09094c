// Package senders holds the delivery channels a notification can go out on,
// and the dispatcher that fans each notification out across them.
package senders

import (
	"context"
	"time"
)

// Sender is a delivery channel capable of immediate and scheduled sends.
// Each implementation owns its own credentials and recipient list. Failures
// are provider-specific errors; the dispatcher logs them and carries on.
type Sender interface {
	Name() string
	SendMessage(ctx context.Context, text string) error
	ScheduleMessage(ctx context.Context, text string, sendAt time.Time) error
}
