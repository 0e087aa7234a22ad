package availability

import "time"

// Defaults for constraint values that a request leaves unset.
const (
	DefaultBusinessStartHour = 9
	DefaultBusinessEndHour   = 17
	DefaultStep              = 15 * time.Minute
	DefaultMaxResults        = 5

	// maxOpeningLookahead bounds the advance-to-next-business-day loop so
	// that a misconfigured holiday set (every day a holiday) cannot spin
	// forever. Exceeding it is a ConfigurationError.
	maxOpeningLookahead = 14
)

// Constraints is the immutable configuration for a single slot search.
// It is computed once per request and read-only thereafter.
type Constraints struct {
	// BusinessStartHour and BusinessEndHour bound the local-time window
	// within which meetings may be scheduled. A slot must start at or after
	// BusinessStartHour:00 and end at or before BusinessEndHour:00.
	BusinessStartHour int
	BusinessEndHour   int

	// ExcludedWeekdays are weekdays on which no slot may be scheduled,
	// in addition to the built-in weekend exclusion.
	ExcludedWeekdays map[time.Weekday]bool

	// Holidays are local calendar dates on which no slot may be scheduled.
	Holidays HolidaySet

	// Location is the timezone in which business hours, weekdays, and
	// holidays are interpreted.
	Location *time.Location

	// SlotDuration is the exact length of every candidate slot.
	SlotDuration time.Duration

	// Step is the distance between consecutive raw candidate starts.
	Step time.Duration

	// MaxResults caps the ranked result list.
	MaxResults int
}

// Validate checks the constraint invariants. It returns a
// *ConfigurationError describing the first violation found.
func (c Constraints) Validate() error {
	if c.Location == nil {
		return configErrorf("timezone", "location must be set")
	}
	if c.BusinessStartHour >= c.BusinessEndHour {
		return configErrorf("businessHours", "start hour %d must be before end hour %d",
			c.BusinessStartHour, c.BusinessEndHour)
	}
	if c.BusinessStartHour < 0 || c.BusinessEndHour > 24 {
		return configErrorf("businessHours", "hours %d-%d out of range", c.BusinessStartHour, c.BusinessEndHour)
	}
	if c.SlotDuration <= 0 {
		return configErrorf("slotDuration", "must be positive, got %s", c.SlotDuration)
	}
	if c.Step <= 0 {
		return configErrorf("step", "must be positive, got %s", c.Step)
	}
	if c.MaxResults <= 0 {
		return configErrorf("maxResults", "must be positive, got %d", c.MaxResults)
	}
	return nil
}

// isBusinessDay reports whether the local date is schedulable at all:
// not a weekend, not a holiday, not an excluded weekday.
func (c Constraints) isBusinessDay(lc localClock) bool {
	if lc.isWeekend() {
		return false
	}
	if c.Holidays.Contains(lc) {
		return false
	}
	return !c.ExcludedWeekdays[lc.weekday]
}

// withinBusinessHours reports whether an instant falls inside the
// business-hour window (inclusive of opening, exclusive of closing).
func (c Constraints) withinBusinessHours(lc localClock) bool {
	return lc.hour >= c.BusinessStartHour && lc.hour < c.BusinessEndHour
}
