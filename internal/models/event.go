// Package models holds the domain objects shared across the scheduler.
package models

import (
	"strings"
	"time"

	"binday-scheduler/internal/common/errors"
)

// DefaultKind is used when the collection API gives no bin kind.
const DefaultKind = "bin"

// binCategoryReplacer maps the vendor's round-type codes to bin colours.
// Unrecognized codes pass through unchanged.
var binCategoryReplacer = strings.NewReplacer(
	"DOMESTIC", "Black",
	"RECYCLE", "Blue",
	"ORGANIC", "Green",
)

// CollectionEvent represents a single waste collection occurrence.
// Immutable after construction.
type CollectionEvent struct {
	occursAtUTC time.Time
	binCategory string
	kind        string
}

// NewCollectionEvent validates and normalizes a collection row. The timestamp
// must be set and the bin name non-empty; the stored timestamp is coerced to
// UTC.
func NewCollectionEvent(occursAt time.Time, binName, kind string) (CollectionEvent, error) {
	if occursAt.IsZero() {
		return CollectionEvent{}, errors.NewValidationError("collection timestamp is required", "")
	}

	category := strings.TrimSpace(binCategoryReplacer.Replace(binName))
	if category == "" {
		return CollectionEvent{}, errors.NewValidationError("bin name is required", "")
	}

	kind = strings.TrimSpace(kind)
	if kind == "" {
		kind = DefaultKind
	}

	return CollectionEvent{
		occursAtUTC: occursAt.UTC(),
		binCategory: category,
		kind:        kind,
	}, nil
}

// OccursAtUTC returns the collection timestamp in UTC.
func (e CollectionEvent) OccursAtUTC() time.Time {
	return e.occursAtUTC
}

// BinCategory returns the normalized bin colour/name.
func (e CollectionEvent) BinCategory() string {
	return e.binCategory
}

// Kind returns the bin kind, e.g. "bin".
func (e CollectionEvent) Kind() string {
	return e.kind
}

// Description renders the event as "{category} {kind} day".
func (e CollectionEvent) Description() string {
	return e.binCategory + " " + e.kind + " day"
}

// In returns the collection timestamp in the given location, UTC when nil.
func (e CollectionEvent) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return e.occursAtUTC.In(loc)
}

// Date returns the calendar date (midnight) in the given location.
func (e CollectionEvent) Date(loc *time.Location) time.Time {
	t := e.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateUTC returns the calendar date of the stored UTC timestamp.
func (e CollectionEvent) DateUTC() time.Time {
	return e.Date(time.UTC)
}

// Day returns the day of month in the given location.
func (e CollectionEvent) Day(loc *time.Location) int {
	return e.In(loc).Day()
}

// DayName returns the weekday name, e.g. "Tuesday", in the given location.
func (e CollectionEvent) DayName(loc *time.Location) string {
	return e.In(loc).Weekday().String()
}

// Weekday returns the weekday in the given location.
func (e CollectionEvent) Weekday(loc *time.Location) time.Weekday {
	return e.In(loc).Weekday()
}
