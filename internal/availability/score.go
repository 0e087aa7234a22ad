package availability

import (
	"sort"
	"time"
)

// Scoring weights. Sooner-is-better dominates: the recency decay is steep
// enough that a time-of-day bonus can lift a slot at most two hours ahead
// of an earlier plain slot, and a day boundary always outweighs every
// bonus combined, so results stay sooner-first across days.
const (
	baseScore      = 100.0
	recencyDecay   = 130.0 // points lost per day of distance from the search start
	morningBonus   = 10.0  // mid-morning, 10:00-11:59 local
	afternoonBonus = 8.0   // mid-afternoon, 14:00-15:59 local
	lunchPenalty   = 15.0  // 12:00-12:59 local
	weekdayWeight  = 2.0   // per weekday earlier in the week, Monday-leaning
)

// scoreSlot assigns a desirability score to an accepted candidate.
// Pure and deterministic: equal inputs always yield the same score.
func scoreSlot(cand Interval, windowStart time.Time, c Constraints) float64 {
	days := cand.Start.Sub(windowStart).Hours() / 24
	score := baseScore - recencyDecay*days

	lc := localClockOf(cand.Start, c.Location)
	switch lc.hour {
	case 10, 11:
		score += morningBonus
	case 14, 15:
		score += afternoonBonus
	case 12:
		score -= lunchPenalty
	}

	// Monday scores highest, Friday lowest. Weekend candidates never reach
	// the scorer, the zero bonus for them is just a safe default.
	switch lc.weekday {
	case time.Monday:
		score += 4 * weekdayWeight
	case time.Tuesday:
		score += 3 * weekdayWeight
	case time.Wednesday:
		score += 2 * weekdayWeight
	case time.Thursday:
		score += 1 * weekdayWeight
	}

	return score
}

// rank sorts slots descending by score, breaking ties by earliest start so
// that coinciding float scores still produce a deterministic order, and
// truncates to max results.
func rank(slots []Slot, max int) []Slot {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Score != slots[j].Score {
			return slots[i].Score > slots[j].Score
		}
		return slots[i].Start.Before(slots[j].Start)
	})
	if len(slots) > max {
		slots = slots[:max]
	}
	return slots
}
