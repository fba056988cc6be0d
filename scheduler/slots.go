package scheduler

import "time"

// Interval is an occupied [Start,End) range on a professional's calendar.
// End reflects the occupying appointment's own service duration, which may
// differ from the duration being enumerated.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Slot is a candidate bookable start time with its availability flag.
type Slot struct {
	Time      time.Time `json:"time"`
	Available bool      `json:"available"`
}

// EnumerateSlots produces the candidate start times for the given windows,
// stepping by the duration being booked, so the grid shifts with the selected
// service: a 90-minute service yields fewer, wider slots than a 15-minute
// one. A slot is available iff it overlaps none of the busy intervals.
//
// The result is recomputed from the inputs on every call; nothing is cached.
// No windows means no slots.
func EnumerateSlots(windows []Window, duration time.Duration, busy []Interval) []Slot {
	if duration <= 0 {
		return nil
	}

	var slots []Slot
	for _, w := range windows {
		for cur := w.Open; !cur.Add(duration).After(w.Close); cur = cur.Add(duration) {
			slots = append(slots, Slot{
				Time:      cur,
				Available: !overlapsAny(cur, cur.Add(duration), busy),
			})
		}
	}
	return slots
}

func overlapsAny(start, end time.Time, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}
