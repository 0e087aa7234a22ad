package availability

import (
	"fmt"
	"time"
)

// Display formats for the local slot fields, matching the rendering used
// by the CLI and MCP tool output.
const (
	displayStartFormat = "Mon, Jan 2 at 3:04 PM"
	displayEndFormat   = "3:04 PM"
)

// Request describes a single slot search. BusyPeriods must already be
// fetched and merged across all attendees; the engine performs no I/O.
// Zero values for the optional fields fall back to the package defaults.
type Request struct {
	// Now is the instant the search starts from.
	Now time.Time

	// TimeZone is the IANA zone in which business hours, weekdays, and
	// holidays are interpreted. Empty defaults to UTC.
	TimeZone string

	// Horizon is the breadth of the search window. Empty defaults to week.
	Horizon Horizon

	// SlotDuration is the exact meeting length requested.
	SlotDuration time.Duration

	// ExcludeFridays removes Fridays from consideration.
	ExcludeFridays bool

	// BusyPeriods are the committed intervals of all attendees.
	BusyPeriods []BusyPeriod

	// Holidays are calendar dates on which no meeting may be scheduled.
	Holidays []time.Time

	// MaxResults caps the ranked result list. Zero defaults to 5.
	MaxResults int

	// BusinessStartHour and BusinessEndHour override the default 9-17
	// local business-hour window when both are set.
	BusinessStartHour int
	BusinessEndHour   int

	// StepMinutes overrides the default 15-minute candidate step.
	StepMinutes int
}

// SearchStats reports how much work a search did, for callers that record
// search metrics.
type SearchStats struct {
	// Candidates is the number of candidate slots the filter evaluated.
	Candidates int

	// Accepted is the number of candidates that passed every check,
	// before ranking truncated the list.
	Accepted int
}

// FindSlots enumerates, filters, scores, and ranks candidate meeting slots
// for the request. It returns at most MaxResults slots ordered by
// descending desirability. An empty slice with a nil error means no
// availability was found; a *ConfigurationError means the request itself
// was invalid.
//
// FindSlots is pure and safe for concurrent use: all state is
// request-scoped and nothing is shared or retained across calls.
func FindSlots(req Request) ([]Slot, error) {
	slots, _, err := FindSlotsWithStats(req)
	return slots, err
}

// FindSlotsWithStats is FindSlots plus search statistics.
func FindSlotsWithStats(req Request) ([]Slot, SearchStats, error) {
	var stats SearchStats

	c, err := req.constraints()
	if err != nil {
		return nil, stats, err
	}

	horizon := req.Horizon
	if horizon == "" {
		horizon = HorizonWeek
	}

	window, err := ResolveWindow(req.Now, horizon, c)
	if err != nil {
		return nil, stats, err
	}

	var accepted []Slot
	gen := newGenerator(window, c)
	for {
		cand, ok := gen.next()
		if !ok {
			break
		}
		stats.Candidates++

		verdict := evaluate(cand, c, req.BusyPeriods)
		if verdict.Accepted {
			accepted = append(accepted, makeSlot(cand, window.Start, c))
			continue
		}
		if !verdict.FastForwardTo.IsZero() {
			gen.fastForward(verdict.FastForwardTo)
		}
	}
	stats.Accepted = len(accepted)

	return rank(accepted, c.MaxResults), stats, nil
}

// constraints materializes the request into a validated Constraints value,
// applying package defaults for unset fields.
func (req Request) constraints() (Constraints, error) {
	zone := req.TimeZone
	if zone == "" {
		zone = "UTC"
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Constraints{}, configErrorf("timezone", "unknown timezone %q: %v", zone, err)
	}

	c := Constraints{
		BusinessStartHour: DefaultBusinessStartHour,
		BusinessEndHour:   DefaultBusinessEndHour,
		Location:          loc,
		SlotDuration:      req.SlotDuration,
		Step:              DefaultStep,
		MaxResults:        DefaultMaxResults,
		Holidays:          NewHolidaySet(req.Holidays...),
	}
	if req.BusinessStartHour != 0 || req.BusinessEndHour != 0 {
		c.BusinessStartHour = req.BusinessStartHour
		c.BusinessEndHour = req.BusinessEndHour
	}
	if req.StepMinutes != 0 {
		c.Step = time.Duration(req.StepMinutes) * time.Minute
	}
	if req.MaxResults != 0 {
		c.MaxResults = req.MaxResults
	}
	if req.ExcludeFridays {
		c.ExcludedWeekdays = map[time.Weekday]bool{time.Friday: true}
	}

	if err := c.Validate(); err != nil {
		return Constraints{}, err
	}
	return c, nil
}

// makeSlot derives the local display fields and score for an accepted
// candidate.
func makeSlot(cand Interval, windowStart time.Time, c Constraints) Slot {
	localStart := cand.Start.In(c.Location)
	localEnd := cand.End.In(c.Location)

	return Slot{
		Start:             cand.Start,
		End:               cand.End,
		Score:             scoreSlot(cand, windowStart, c),
		LocalWeekday:      localStart.Weekday().String(),
		LocalStartDisplay: localStart.Format(displayStartFormat),
		LocalEndDisplay:   localEnd.Format(displayEndFormat),
	}
}

// String renders a slot the way the CLI prints it.
func (s Slot) String() string {
	return fmt.Sprintf("%s to %s (%s)", s.LocalStartDisplay, s.LocalEndDisplay, s.LocalWeekday)
}
