package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScoreSoonerBeatsLater(t *testing.T) {
	c := testConstraints()
	windowStart := utc(2025, time.January, 6, 9, 0) // Monday

	today := scoreSlot(slotAt(utc(2025, time.January, 6, 15, 0), 30*time.Minute), windowStart, c)
	tomorrow := scoreSlot(slotAt(utc(2025, time.January, 7, 10, 0), 30*time.Minute), windowStart, c)

	assert.Greater(t, today, tomorrow,
		"a slot today must outrank any slot tomorrow regardless of time-of-day bonuses")
}

func TestScoreTimeOfDayPreferences(t *testing.T) {
	c := testConstraints()
	windowStart := utc(2025, time.January, 6, 9, 0)

	nineAM := scoreSlot(slotAt(utc(2025, time.January, 6, 9, 0), 30*time.Minute), windowStart, c)
	tenAM := scoreSlot(slotAt(utc(2025, time.January, 6, 10, 0), 30*time.Minute), windowStart, c)
	noon := scoreSlot(slotAt(utc(2025, time.January, 6, 12, 0), 30*time.Minute), windowStart, c)
	onePM := scoreSlot(slotAt(utc(2025, time.January, 6, 13, 0), 30*time.Minute), windowStart, c)
	twoPM := scoreSlot(slotAt(utc(2025, time.January, 6, 14, 0), 30*time.Minute), windowStart, c)

	assert.Greater(t, tenAM, nineAM, "mid-morning bonus should lift 10:00 above 09:00")
	assert.Greater(t, onePM, noon, "lunch penalty should push 12:00 below 13:00")
	assert.Greater(t, twoPM, onePM, "mid-afternoon bonus should lift 14:00 above 13:00")
}

func TestScoreWeekdayPreference(t *testing.T) {
	c := testConstraints()

	// Zero recency distance isolates the day-of-week bonus.
	monday := slotAt(utc(2025, time.January, 6, 10, 0), 30*time.Minute)
	thursday := slotAt(utc(2025, time.January, 9, 10, 0), 30*time.Minute)

	assert.Greater(t,
		scoreSlot(monday, monday.Start, c),
		scoreSlot(thursday, thursday.Start, c),
		"earlier weekdays score a bonus over later ones")
}

func TestRankOrderingAndTruncation(t *testing.T) {
	a := Slot{Start: utc(2025, time.January, 6, 9, 0), Score: 50}
	b := Slot{Start: utc(2025, time.January, 6, 10, 0), Score: 80}
	tied1 := Slot{Start: utc(2025, time.January, 6, 11, 0), Score: 70}
	tied2 := Slot{Start: utc(2025, time.January, 6, 12, 0), Score: 70}

	ranked := rank([]Slot{a, tied2, b, tied1}, 3)

	assert.Len(t, ranked, 3)
	assert.True(t, ranked[0].Start.Equal(b.Start))
	assert.True(t, ranked[1].Start.Equal(tied1.Start), "ties break by earliest start")
	assert.True(t, ranked[2].Start.Equal(tied2.Start))
}

func TestRankIsDeterministic(t *testing.T) {
	mk := func() []Slot {
		return []Slot{
			{Start: utc(2025, time.January, 6, 9, 0), Score: 70},
			{Start: utc(2025, time.January, 6, 10, 0), Score: 70},
			{Start: utc(2025, time.January, 6, 11, 0), Score: 70},
			{Start: utc(2025, time.January, 6, 12, 0), Score: 90},
		}
	}

	first := rank(mk(), 5)
	second := rank(mk(), 5)
	assert.Equal(t, first, second, "equal inputs must always produce the same order")
}
