package rules

import (
	"time"

	"binday-scheduler/internal/common/logger"
	"binday-scheduler/internal/models"
)

// Set is the fixed, ordered list of rules applied against each run's event
// list. Rule order is preserved in the output.
type Set struct {
	rules []*Rule
	log   logger.Logger
}

func NewSet(log logger.Logger, rules ...*Rule) *Set {
	return &Set{rules: rules, log: log}
}

// Rules returns the rules in evaluation order.
func (s *Set) Rules() []*Rule {
	return s.rules
}

// Evaluate applies every rule and concatenates the results.
func (s *Set) Evaluate(events []models.CollectionEvent) []models.Notification {
	return s.EvaluateAt(events, time.Now())
}

// EvaluateAt is Evaluate against an explicit clock.
func (s *Set) EvaluateAt(events []models.CollectionEvent, now time.Time) []models.Notification {
	var notifications []models.Notification
	for _, rule := range s.rules {
		produced := rule.EvaluateAt(events, now)
		s.log.Debug("rule evaluated", map[string]interface{}{
			"rule":          rule.Name(),
			"events":        len(events),
			"notifications": len(produced),
		})
		notifications = append(notifications, produced...)
	}
	return notifications
}

// Preferences carries the reminder settings the default rule set is built
// from.
type Preferences struct {
	Location          *time.Location
	ImmediateReminder bool

	// DayBeforeTime is when the evening-before reminder goes out (today).
	DayBeforeTime string

	// DayOfTime is when the morning-of reminder goes out (tomorrow).
	DayOfTime string
}

// DefaultSet builds the built-in rules: a Monday-only 14-day advance notice,
// an optional immediate reminder, and the scheduled day-before and day-of
// reminders. Each rule owns its own send schedule.
func DefaultSet(log logger.Logger, prefs Preferences) (*Set, error) {
	loc := prefs.Location
	if loc == nil {
		loc = time.UTC
	}
	if prefs.DayBeforeTime == "" {
		prefs.DayBeforeTime = "20:30"
	}
	if prefs.DayOfTime == "" {
		prefs.DayOfTime = "07:30"
	}

	configs := []RuleConfig{
		{
			Name:       "advance notice",
			Template:   "Collections in the next two weeks:\n{{GROUP_MESSAGE}}",
			Location:   loc,
			EventRange: 14 * 24 * time.Hour,
			Days:       []string{"monday"},
			Operator:   string(OpGreaterOrEqual),
		},
	}

	if prefs.ImmediateReminder {
		configs = append(configs, RuleConfig{
			Name:          "immediate reminder",
			GroupTemplate: "{{BIN_NAMES}} {{BIN_TYPE}} day tomorrow",
			Location:      loc,
			EventRange:    DefaultEventRange,
		})
	}

	configs = append(configs,
		RuleConfig{
			Name:          "day before reminder",
			GroupTemplate: "{{BIN_NAMES}} {{BIN_TYPE}} day tomorrow",
			Location:      loc,
			EventRange:    DefaultEventRange,
			SendTime:      prefs.DayBeforeTime,
			SendDayOffset: 0,
		},
		RuleConfig{
			Name:          "day of reminder",
			GroupTemplate: "{{BIN_NAMES}} {{BIN_TYPE}} day today!",
			Location:      loc,
			EventRange:    DefaultEventRange,
			SendTime:      prefs.DayOfTime,
			SendDayOffset: 1,
		},
	)

	rules := make([]*Rule, 0, len(configs))
	for _, cfg := range configs {
		rule, err := NewRule(cfg)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return NewSet(log, rules...), nil
}
