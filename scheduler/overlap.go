package scheduler

import "time"

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching boundaries do not overlap: a slot ending at 10:00 and
// an appointment starting at 10:00 can coexist.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
