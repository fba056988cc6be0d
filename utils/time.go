package utils

import (
	"os"
	"sync"
	"time"
)

var (
	locOnce sync.Once
	loc     *time.Location
)

// Location returns the timezone appointments and working-hours windows are
// interpreted in, from the TIMEZONE env var (e.g. "America/Sao_Paulo").
// Defaults to UTC when unset or unknown.
func Location() *time.Location {
	locOnce.Do(func() {
		loc = time.UTC
		if tz := os.Getenv("TIMEZONE"); tz != "" {
			if l, err := time.LoadLocation(tz); err == nil {
				loc = l
			}
		}
	})
	return loc
}

// ParseDate parses a "YYYY-MM-DD" calendar date in the configured timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location())
}

// DayRange returns the [start,end) instants covering the date's calendar day.
func DayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}
