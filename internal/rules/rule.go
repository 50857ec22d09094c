// Package rules implements the notification rule engine: each rule filters
// upcoming collection events by a date-range/day-of-week gate, groups the
// survivors, and renders them into at most one templated notification.
package rules

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"binday-scheduler/internal/common/errors"
	"binday-scheduler/internal/models"
)

const (
	// DefaultTemplate is the top-level message template.
	DefaultTemplate = "{{GROUP_MESSAGE}}"

	// DefaultGroupTemplate renders one line per (date, kind) group.
	DefaultGroupTemplate = "{{BIN_NAMES}} {{BIN_TYPE}} collection on {{COLLECTION_DAY}} {{COLLECTION_DATE}}"

	// DefaultEventRange looks one day ahead. A zero EventRange is meaningful
	// (threshold = today), so NewRule does not apply this default itself.
	DefaultEventRange = 24 * time.Hour
)

// RuleConfig describes a rule before validation. Zero values fall back to
// the defaults above, UTC, and the "=" operator.
type RuleConfig struct {
	Name          string
	Template      string
	GroupTemplate string
	Location      *time.Location
	EventRange    time.Duration
	Days          []string
	Operator      string

	// SendTime schedules the produced notification instead of sending it
	// immediately: the send timestamp is SendTime on today+SendDayOffset in
	// the rule's location.
	SendTime      string
	SendDayOffset int
}

// Rule is a validated, immutable notification rule.
type Rule struct {
	name          string
	template      string
	groupTemplate string
	loc           *time.Location
	eventRange    time.Duration
	days          map[time.Weekday]struct{}
	op            Operator
	sendTime      *Clock
	sendDayOffset int
}

// NewRule validates a RuleConfig. Unknown operators, unknown day tokens, a
// missing name, and malformed send times all fail with a config error.
func NewRule(cfg RuleConfig) (*Rule, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		return nil, errors.NewConfigError("rule name is required", "")
	}

	if cfg.Template == "" {
		cfg.Template = DefaultTemplate
	}
	if cfg.GroupTemplate == "" {
		cfg.GroupTemplate = DefaultGroupTemplate
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Operator == "" {
		cfg.Operator = string(OpEqual)
	}

	op, err := ParseOperator(cfg.Operator)
	if err != nil {
		return nil, err
	}

	days, err := ParseWeekdays(cfg.Days)
	if err != nil {
		return nil, err
	}

	r := &Rule{
		name:          strings.TrimSpace(cfg.Name),
		template:      strings.TrimSpace(cfg.Template),
		groupTemplate: strings.TrimSpace(cfg.GroupTemplate),
		loc:           cfg.Location,
		eventRange:    cfg.EventRange,
		days:          days,
		op:            op,
		sendDayOffset: cfg.SendDayOffset,
	}

	if cfg.SendTime != "" {
		clock, err := ParseClock(cfg.SendTime)
		if err != nil {
			return nil, err
		}
		r.sendTime = &clock
	}

	return r, nil
}

// Name returns the rule name.
func (r *Rule) Name() string {
	return r.name
}

// Evaluate runs the rule against the full event list at the current
// wall-clock time.
func (r *Rule) Evaluate(events []models.CollectionEvent) []models.Notification {
	return r.EvaluateAt(events, time.Now())
}

// EvaluateAt runs the rule at an explicit "now". It yields zero or one
// notification; absence of matches is an empty result, never an error.
func (r *Rule) EvaluateAt(events []models.CollectionEvent, now time.Time) []models.Notification {
	local := now.In(r.loc)

	if len(r.days) > 0 {
		if _, ok := r.days[local.Weekday()]; !ok {
			return nil
		}
	}

	relevant := r.filter(events, now)
	if len(relevant) == 0 {
		return nil
	}

	message := r.render(relevant, now)

	var sendAt time.Time
	if r.sendTime != nil {
		sendAt = r.sendTime.On(local.AddDate(0, 0, r.sendDayOffset), r.loc).UTC()
	}

	n, err := models.NewNotification(message, sendAt)
	if err != nil {
		// Unreachable: templates are non-empty after validation.
		return nil
	}
	return []models.Notification{n}
}

// filter keeps events whose date, in the rule's location, satisfies
// operator(threshold, eventDate). Time of day is discarded before comparing.
func (r *Rule) filter(events []models.CollectionEvent, now time.Time) []models.CollectionEvent {
	horizon := now.In(r.loc).Add(r.eventRange)
	threshold := time.Date(horizon.Year(), horizon.Month(), horizon.Day(), 0, 0, 0, 0, r.loc)

	var relevant []models.CollectionEvent
	for _, event := range events {
		if r.op.Compare(threshold, event.Date(r.loc)) {
			relevant = append(relevant, event)
		}
	}
	return relevant
}

// render groups the filtered events and builds the final message.
//
// Grouping is by the event's UTC calendar date, while the range filter above
// compares dates in the rule's location. The mismatch is inherited behavior:
// groups always break on UTC midnight regardless of the recipient's day
// boundary.
func (r *Rule) render(relevant []models.CollectionEvent, now time.Time) string {
	shared := r.sharedValues(now)

	sorted := make([]models.CollectionEvent, len(relevant))
	copy(sorted, relevant)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateUTC().Before(sorted[j].DateUTC())
	})

	var lines []string
	for start := 0; start < len(sorted); {
		end := start
		for end < len(sorted) && sorted[end].DateUTC().Equal(sorted[start].DateUTC()) {
			end++
		}
		group := sorted[start:end]
		start = end

		binsByKind := make(map[string][]string)
		for _, event := range group {
			binsByKind[event.Kind()] = append(binsByKind[event.Kind()], titleCase(event.BinCategory()))
		}

		kinds := make([]string, 0, len(binsByKind))
		for kind := range binsByKind {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)

		for _, kind := range kinds {
			bins := binsByKind[kind]
			sort.Strings(bins)

			values := map[string]string{
				"BIN_NAMES":       strings.Join(bins, " & "),
				"BIN_TYPE":        kind,
				"COLLECTION_DAY":  group[0].DayName(r.loc),
				"COLLECTION_DATE": ordinal(group[0].Day(r.loc)),
				"COLLECTION_SUM":  strconv.Itoa(len(relevant)),
			}
			for k, v := range shared {
				values[k] = v
			}
			lines = append(lines, renderTemplate(r.groupTemplate, values))
		}
	}

	values := map[string]string{
		"GROUP_MESSAGE": strings.Join(lines, "\n"),
	}
	for k, v := range shared {
		values[k] = v
	}
	return renderTemplate(r.template, values)
}

// sharedValues are the placeholders available in every template, rendered at
// the current wall-clock time in the rule's location.
func (r *Rule) sharedValues(now time.Time) map[string]string {
	local := now.In(r.loc)
	return map[string]string{
		"NOTIFICATION_NAME": r.name,
		"TIMESTAMP":         local.Format("15:04:05"),
		"DATE_SHORT":        local.Format("01/02/2006"),
		"DATE_LONG":         local.Format("01/02/2006 15:04:05"),
	}
}
