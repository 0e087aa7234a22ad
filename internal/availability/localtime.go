package availability

import "time"

// dateKeyFormat keys holiday lookups by local calendar date.
const dateKeyFormat = "2006-01-02"

// localClock captures the wall-clock fields of an instant in a given zone.
// All business-hour, weekday, and holiday decisions go through this single
// conversion so that instant vs. wall-clock handling cannot drift between
// the window resolver, the filter, and the display formatting.
type localClock struct {
	t       time.Time
	weekday time.Weekday
	hour    int
	minute  int
}

func localClockOf(t time.Time, loc *time.Location) localClock {
	lt := t.In(loc)
	return localClock{
		t:       lt,
		weekday: lt.Weekday(),
		hour:    lt.Hour(),
		minute:  lt.Minute(),
	}
}

// dateKey returns the local calendar date in dateKeyFormat.
func (lc localClock) dateKey() string {
	return lc.t.Format(dateKeyFormat)
}

// isWeekend reports whether the local weekday is Saturday or Sunday.
func (lc localClock) isWeekend() bool {
	return lc.weekday == time.Saturday || lc.weekday == time.Sunday
}

// HolidaySet is a set of calendar dates on which no meetings are scheduled.
// Dates are keyed by their year-month-day as supplied; the engine compares
// them against the candidate's local calendar date in the request timezone.
type HolidaySet map[string]struct{}

// NewHolidaySet builds a HolidaySet from a list of dates. Only the
// year, month, and day of each value are significant.
func NewHolidaySet(days ...time.Time) HolidaySet {
	set := make(HolidaySet, len(days))
	for _, d := range days {
		set[d.Format(dateKeyFormat)] = struct{}{}
	}
	return set
}

// Contains reports whether the local calendar date is in the set.
func (s HolidaySet) Contains(lc localClock) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[lc.dateKey()]
	return ok
}
