// Package availability implements the engine that locates open meeting
// slots for a group of attendees.
//
// The engine intersects already-fetched busy periods against a set of
// scheduling constraints (business hours, weekends, holidays, per-request
// weekday exclusions) and returns a scored, ranked list of candidate slots.
// It is pure computation: no network calls, no token management, no retained
// state between requests. Busy periods and the user's timezone are supplied
// by the caller, typically via the calendar package.
//
// The pipeline is a single pass: a search window is resolved from "now" and
// the requested horizon, a generator walks candidate slots forward through
// the window, a filter accepts or rejects each candidate (optionally telling
// the generator to fast-forward past a known-invalid day), and a scorer
// ranks the survivors.
//
// Example usage:
//
//	slots, err := availability.FindSlots(availability.Request{
//	    Now:          time.Now(),
//	    TimeZone:     "Europe/Berlin",
//	    Horizon:      availability.HorizonWeek,
//	    SlotDuration: 30 * time.Minute,
//	    BusyPeriods:  busy,
//	})
package availability
