package availability

import (
	"fmt"
	"strings"
	"time"
)

// Horizon is the breadth of the search window measured from the search start.
type Horizon string

// Supported horizons.
const (
	HorizonDay   Horizon = "day"
	HorizonWeek  Horizon = "week"
	HorizonMonth Horizon = "month"
)

// ParseHorizon converts a string into a Horizon.
// An empty string defaults to HorizonWeek.
func ParseHorizon(s string) (Horizon, error) {
	switch Horizon(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return HorizonWeek, nil
	case HorizonDay:
		return HorizonDay, nil
	case HorizonWeek:
		return HorizonWeek, nil
	case HorizonMonth:
		return HorizonMonth, nil
	}
	return "", fmt.Errorf("unknown horizon %q, must be one of: day, week, month", s)
}

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid reports whether the interval is well formed (Start < End).
func (iv Interval) IsValid() bool {
	return iv.Start.Before(iv.End)
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps reports whether two half-open intervals intersect.
// Touching boundaries do not count: a slot ending exactly when a busy
// period starts is not an overlap, and vice versa.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// BusyPeriod is an interval during which a participant is already committed
// and unavailable. Participant identifies the owning calendar.
type BusyPeriod struct {
	Interval
	Participant string
}

// Slot is a candidate meeting interval of the requested duration.
// The local display fields are derived from the request timezone; Score is
// assigned during ranking.
type Slot struct {
	Start time.Time
	End   time.Time
	Score float64

	LocalWeekday      string
	LocalStartDisplay string
	LocalEndDisplay   string
}

// Interval returns the slot's time range.
func (s Slot) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}
