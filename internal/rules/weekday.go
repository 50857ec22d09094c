package rules

import (
	"fmt"
	"strings"
	"time"

	"binday-scheduler/internal/common/errors"
)

var weekdayTokens = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

// ParseWeekdays maps day tokens (full names or 3-letter abbreviations,
// case-insensitive) to a weekday set. "any", "all" or "*" anywhere in the
// list means no restriction and yields a nil set.
func ParseWeekdays(tokens []string) (map[time.Weekday]struct{}, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	for _, token := range tokens {
		switch strings.ToLower(strings.TrimSpace(token)) {
		case "any", "all", "*":
			return nil, nil
		}
	}

	days := make(map[time.Weekday]struct{}, len(tokens))
	for _, token := range tokens {
		day, ok := weekdayTokens[strings.ToLower(strings.TrimSpace(token))]
		if !ok {
			return nil, errors.NewConfigError(
				fmt.Sprintf("day '%s' not supported", token),
				"expected a weekday name or 3-letter abbreviation",
			)
		}
		days[day] = struct{}{}
	}
	return days, nil
}
