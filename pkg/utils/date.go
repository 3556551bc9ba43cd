package utils

import (
	"strings"
	"time"
)

// ParseBackendDate parses a date string as delivered by the content backend.
// Plain dates ("2006-01-02") are anchored to midnight UTC so the calendar day
// never shifts with the host timezone; full timestamps are accepted as-is.
func ParseBackendDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	// FastAPI omits the zone marker on naive datetimes.
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// TimeNowUTC returns the current time in UTC.
func TimeNowUTC() time.Time {
	return time.Now().UTC()
}
