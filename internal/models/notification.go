package models

import (
	"time"

	"binday-scheduler/internal/common/errors"
)

// Notification is a renderable message with an optional future send time.
// A zero SendAtUTC means immediate delivery.
type Notification struct {
	Message   string
	SendAtUTC time.Time
}

// NewNotification validates the message and coerces the send time to UTC.
func NewNotification(message string, sendAt time.Time) (Notification, error) {
	if message == "" {
		return Notification{}, errors.NewValidationError("notification message is required", "")
	}

	n := Notification{Message: message}
	if !sendAt.IsZero() {
		n.SendAtUTC = sendAt.UTC()
	}
	return n, nil
}

// IsScheduled reports whether the notification has a send time strictly in
// the future. Past send times fall back to immediate delivery.
func (n Notification) IsScheduled() bool {
	return n.IsScheduledAt(time.Now())
}

// IsScheduledAt is IsScheduled against an explicit clock.
func (n Notification) IsScheduledAt(now time.Time) bool {
	return !n.SendAtUTC.IsZero() && n.SendAtUTC.After(now)
}
