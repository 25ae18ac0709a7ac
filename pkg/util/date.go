package util

import "time"

const (
	// DateFormat is the canonical calendar-day format used across
	// persisted tables and API responses.
	DateFormat = "2006-01-02"
	// TimestampFormat is the canonical format for news timestamps.
	TimestampFormat = "2006-01-02T15:04:05Z"
)

// ParseDate parses a calendar date in the canonical format. Returns (t, true)
// if it worked.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseTimestamp tries the canonical timestamp format, RFC3339, and a bare
// date. Timestamps are treated as timezone-naive: any zone offset is dropped.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{TimestampFormat, time.RFC3339, "2006-01-02 15:04:05", DateFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// Day truncates a timestamp to its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
