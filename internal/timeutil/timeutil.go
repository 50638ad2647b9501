package timeutil

import (
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CommenceLayout is the odds feed start-time format; values are always UTC.
const CommenceLayout = "2006-01-02T15:04:05Z"

const lineupDateLayout = "2006-Jan-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseCommenceTime parses an odds feed start time (e.g. 2025-07-04T23:05:00Z).
func ParseCommenceTime(value string) (time.Time, error) {
	t, err := time.Parse(CommenceLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// CalendarDate returns midnight of t's calendar date as observed in loc.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// LineupDate formats a date the way the lineup feed expects it (2025-JUL-04).
func LineupDate(t time.Time) string {
	return strings.ToUpper(t.Format(lineupDateLayout))
}

// ResolveTimezone returns a location for a tz string, or nil if empty or invalid.
func ResolveTimezone(tz string) *time.Location {
	if strings.TrimSpace(tz) == "" {
		return nil
	}
	loc, err := time.LoadLocation(strings.TrimSpace(tz))
	if err != nil {
		return nil
	}
	return loc
}
