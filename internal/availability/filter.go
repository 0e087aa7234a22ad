package availability

import "time"

// RejectReason explains why the filter turned a candidate down.
type RejectReason string

// Rejection reasons, in the order the checks run.
const (
	ReasonOutsideBusinessHours RejectReason = "outside_business_hours"
	ReasonWeekend              RejectReason = "weekend"
	ReasonHoliday              RejectReason = "holiday"
	ReasonExcludedWeekday      RejectReason = "excluded_weekday"
	ReasonBusy                 RejectReason = "busy"
)

// Verdict is the filter's decision for a single candidate.
// FastForwardTo, when non-zero, tells the generator that the remainder of
// the candidate's day cannot produce an accepted slot and where to resume.
type Verdict struct {
	Accepted      bool
	Reason        RejectReason
	FastForwardTo time.Time
}

func accept() Verdict {
	return Verdict{Accepted: true}
}

// rejectDay rejects a candidate for a reason that invalidates its whole
// remaining day and points the generator at the next business opening.
func rejectDay(reason RejectReason, cand Interval, c Constraints) Verdict {
	v := Verdict{Reason: reason}
	if opening, ok := nextOpening(cand.Start, c); ok {
		v.FastForwardTo = opening
	}
	return v
}

// evaluate applies the constraint checks to a candidate in a fixed order,
// short-circuiting on the first failure: business hours, weekend, holiday,
// excluded weekday, busy overlap. The first four rejections invalidate the
// rest of the candidate's day; a busy-overlap rejection does not, since the
// very next step-sized candidate may already be free.
func evaluate(cand Interval, c Constraints, busy []BusyPeriod) Verdict {
	start := localClockOf(cand.Start, c.Location)

	// Both ends are checked: a slot may not start before opening and may
	// not end after the closing instant of its own local day. Ending
	// exactly at closing is allowed. Comparing against the instant rather
	// than the end's hour-of-day also catches slots long enough to wrap
	// past midnight into the next day.
	if start.hour < c.BusinessStartHour || cand.End.After(closingOf(start, c)) {
		return rejectDay(ReasonOutsideBusinessHours, cand, c)
	}

	if start.isWeekend() {
		return rejectDay(ReasonWeekend, cand, c)
	}

	if c.Holidays.Contains(start) {
		return rejectDay(ReasonHoliday, cand, c)
	}

	if c.ExcludedWeekdays[start.weekday] {
		return rejectDay(ReasonExcludedWeekday, cand, c)
	}

	for _, bp := range busy {
		if cand.Overlaps(bp.Interval) {
			return Verdict{Reason: ReasonBusy}
		}
	}

	return accept()
}

// closingOf returns the closing instant (BusinessEndHour:00) of the
// candidate's local start day.
func closingOf(start localClock, c Constraints) time.Time {
	return time.Date(start.t.Year(), start.t.Month(), start.t.Day(), c.BusinessEndHour, 0, 0, 0, c.Location)
}
