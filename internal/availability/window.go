package availability

import "time"

// ResolveWindow derives the search window from "now" and the requested
// horizon. The window start is the next instant at or after now that falls
// on a business day within business hours; if now is outside business hours
// or on an excluded day, the start advances to the next valid business
// day's opening hour. The window end is the start plus the horizon,
// calendar-accurate: a month lands on the same day-of-month in the
// following month, clamped to the last day if that month is shorter.
func ResolveWindow(now time.Time, horizon Horizon, c Constraints) (Interval, error) {
	lc := localClockOf(now, c.Location)

	start := now
	if !c.isBusinessDay(lc) || !c.withinBusinessHours(lc) {
		opening, ok := nextOpening(now, c)
		if !ok {
			return Interval{}, configErrorf("searchWindow",
				"no valid business day within %d days of %s", maxOpeningLookahead, now.Format(time.RFC3339))
		}
		start = opening
	}

	end, err := addHorizon(start, horizon, c.Location)
	if err != nil {
		return Interval{}, err
	}

	return Interval{Start: start, End: end}, nil
}

// nextOpening returns the earliest business-day opening (business start
// hour, zero minutes, in the constraint timezone) at or after t. The
// second return value is false when no valid business day exists within
// maxOpeningLookahead days.
func nextOpening(t time.Time, c Constraints) (time.Time, bool) {
	lt := t.In(c.Location)

	candidate := time.Date(lt.Year(), lt.Month(), lt.Day(), c.BusinessStartHour, 0, 0, 0, c.Location)
	if !candidate.After(lt) {
		// Today's opening has passed; start with tomorrow's.
		candidate = candidate.AddDate(0, 0, 1)
	}

	for i := 0; i <= maxOpeningLookahead; i++ {
		if c.isBusinessDay(localClockOf(candidate, c.Location)) {
			return candidate, true
		}
		candidate = candidate.AddDate(0, 0, 1)
	}
	return time.Time{}, false
}

// addHorizon advances t by the given horizon. The calendar arithmetic runs
// in the constraint timezone: t may still carry the caller's zone when now
// was already a valid business instant.
func addHorizon(t time.Time, horizon Horizon, loc *time.Location) (time.Time, error) {
	lt := t.In(loc)
	switch horizon {
	case HorizonDay:
		return lt.AddDate(0, 0, 1), nil
	case HorizonWeek:
		return lt.AddDate(0, 0, 7), nil
	case HorizonMonth:
		return addMonthClamped(lt), nil
	}
	return time.Time{}, configErrorf("horizon", "unknown horizon %q", horizon)
}

// addMonthClamped adds one calendar month, clamping the day-of-month to the
// last valid day of the target month. Unlike time.AddDate, Jan 31 + 1 month
// yields Feb 28 (or 29), not Mar 2.
func addMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	// Day 0 of month+2 is the last day of month+1.
	lastDay := time.Date(year, month+2, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month+1, day, hour, min, sec, t.Nanosecond(), t.Location())
}
