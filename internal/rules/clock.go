package rules

import (
	"fmt"
	"time"

	"binday-scheduler/internal/common/errors"
)

// Clock is a wall-clock time of day used for scheduled sends.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses an "HH:MM" string.
func ParseClock(value string) (Clock, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return Clock{}, errors.NewConfigError(
			fmt.Sprintf("time '%s' not supported", value),
			"expected HH:MM",
		)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// On anchors the clock time to the given date in the given location.
func (c Clock) On(date time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, loc)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
