package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// dueTimeLayouts are tried in order; the first match wins. Month, day and
// clock fields accept one or two digits, so "2025-3-14T9:26" parses too.
var dueTimeLayouts = []string{
	"2006-1-2T15:4",
	"2006-1-2 15:4",
	"2006-1-2T15:4:5",
	"2006-1-2 15:4:5",
}

// isoLayouts cover the remaining ISO-8601 shapes: fractional seconds and
// date-only values.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseDueTime turns a stored due time into a wall-clock timestamp in loc.
// Blank input means the task has no deadline and returns ok == false with a
// nil error. Values carrying a UTC offset or zone are rejected: due times are
// wall-clock values and are never converted between zones.
func ParseDueTime(raw string, loc *time.Location) (due time.Time, ok bool, err error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false, nil
	}

	for _, layout := range dueTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true, nil
		}
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true, nil
		}
	}

	return time.Time{}, false, fmt.Errorf("%w: %q", ErrDueTimeParse, raw)
}

// MinutesUntil returns the whole minutes from now until due, rounded down.
// A due time 30 seconds in the past yields -1.
func MinutesUntil(due, now time.Time) int {
	return int(math.Floor(due.Sub(now).Minutes()))
}

// InReminderWindow reports whether deltaMinutes falls inside the inclusive
// window [threshold-ReminderWindowMinutes, threshold].
func InReminderWindow(deltaMinutes, threshold int) bool {
	return deltaMinutes >= threshold-ReminderWindowMinutes && deltaMinutes <= threshold
}
