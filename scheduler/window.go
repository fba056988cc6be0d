package scheduler

import (
	"fmt"
	"time"

	"github.com/agendafacil/backend/models"
)

// Window is the open/close instant pair a company is bookable in on a
// concrete date.
type Window struct {
	Open  time.Time
	Close time.Time
}

// Contains reports whether [start,end) fits entirely inside the window.
func (w Window) Contains(start, end time.Time) bool {
	return !start.Before(w.Open) && !end.After(w.Close)
}

func parseClock(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// ResolveWindow maps a calendar date and a company's working-hours entries to
// the open/close instants for that date, anchored to the date's location.
// ok is false when no entry matches the weekday: the company is closed that
// day, which is not an error.
func ResolveWindow(date time.Time, hours []models.WorkingHours) (Window, bool, error) {
	day := models.DayOfWeek(date.Weekday())
	for _, wh := range hours {
		if wh.DayOfWeek != day {
			continue
		}
		open, err := parseClock(date, wh.OpenTime)
		if err != nil {
			return Window{}, false, err
		}
		close, err := parseClock(date, wh.CloseTime)
		if err != nil {
			return Window{}, false, err
		}
		return Window{Open: open, Close: close}, true, nil
	}
	return Window{}, false, nil
}
