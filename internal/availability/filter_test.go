package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotAt(start time.Time, d time.Duration) Interval {
	return Interval{Start: start, End: start.Add(d)}
}

func TestEvaluateOrderAndFastForward(t *testing.T) {
	c := testConstraints()
	c.Holidays = NewHolidaySet(utc(2025, time.January, 9, 0, 0)) // Thursday
	c.ExcludedWeekdays = map[time.Weekday]bool{time.Friday: true}

	tests := []struct {
		name     string
		cand     Interval
		busy     []BusyPeriod
		accepted bool
		reason   RejectReason
		wantFF   time.Time
	}{
		{
			name:     "clean weekday slot is accepted",
			cand:     slotAt(utc(2025, time.January, 8, 10, 0), 30*time.Minute),
			accepted: true,
		},
		{
			name:   "before opening fast-forwards to same day opening",
			cand:   slotAt(utc(2025, time.January, 8, 8, 30), 30*time.Minute),
			reason: ReasonOutsideBusinessHours,
			wantFF: utc(2025, time.January, 8, 9, 0),
		},
		{
			name:   "slot spilling past closing is rejected",
			cand:   slotAt(utc(2025, time.January, 8, 16, 30), time.Hour),
			reason: ReasonOutsideBusinessHours,
			// Thursday is a holiday and Friday excluded, so the next
			// opening is Monday.
			wantFF: utc(2025, time.January, 13, 9, 0),
		},
		{
			name:   "saturday is rejected as weekend",
			cand:   slotAt(utc(2025, time.January, 4, 10, 0), 30*time.Minute),
			reason: ReasonWeekend,
			wantFF: utc(2025, time.January, 6, 9, 0),
		},
		{
			name:   "holiday is rejected",
			cand:   slotAt(utc(2025, time.January, 9, 10, 0), 30*time.Minute),
			reason: ReasonHoliday,
			wantFF: utc(2025, time.January, 13, 9, 0),
		},
		{
			name:   "excluded weekday is rejected",
			cand:   slotAt(utc(2025, time.January, 10, 10, 0), 30*time.Minute),
			reason: ReasonExcludedWeekday,
			wantFF: utc(2025, time.January, 13, 9, 0),
		},
		{
			name: "start inside busy period is rejected without fast-forward",
			cand: slotAt(utc(2025, time.January, 8, 10, 0), 30*time.Minute),
			busy: []BusyPeriod{{Interval: slotAt(utc(2025, time.January, 8, 9, 45), time.Hour)}},
			reason: ReasonBusy,
		},
		{
			name: "end inside busy period is rejected",
			cand: slotAt(utc(2025, time.January, 8, 10, 0), 30*time.Minute),
			busy: []BusyPeriod{{Interval: slotAt(utc(2025, time.January, 8, 10, 15), time.Hour)}},
			reason: ReasonBusy,
		},
		{
			name: "candidate containing a busy period is rejected",
			cand: slotAt(utc(2025, time.January, 8, 10, 0), time.Hour),
			busy: []BusyPeriod{{Interval: slotAt(utc(2025, time.January, 8, 10, 15), 15*time.Minute)}},
			reason: ReasonBusy,
		},
		{
			name:     "slot ending exactly when busy starts is not an overlap",
			cand:     slotAt(utc(2025, time.January, 8, 10, 0), 30*time.Minute),
			busy:     []BusyPeriod{{Interval: slotAt(utc(2025, time.January, 8, 10, 30), time.Hour)}},
			accepted: true,
		},
		{
			name:     "slot starting exactly when busy ends is not an overlap",
			cand:     slotAt(utc(2025, time.January, 8, 11, 0), 30*time.Minute),
			busy:     []BusyPeriod{{Interval: slotAt(utc(2025, time.January, 8, 10, 0), time.Hour)}},
			accepted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := evaluate(tt.cand, c, tt.busy)

			assert.Equal(t, tt.accepted, v.Accepted)
			if tt.accepted {
				return
			}

			assert.Equal(t, tt.reason, v.Reason)
			if tt.reason == ReasonBusy {
				assert.True(t, v.FastForwardTo.IsZero(), "busy rejection must not fast-forward")
			} else {
				require.False(t, v.FastForwardTo.IsZero(), "day-level rejection must fast-forward")
				assert.True(t, v.FastForwardTo.Equal(tt.wantFF),
					"fast-forward: got %v, want %v", v.FastForwardTo, tt.wantFF)
			}
		})
	}
}

func TestEvaluateSlotEndingExactlyAtClosing(t *testing.T) {
	c := testConstraints()
	c.SlotDuration = time.Hour

	// 16:00-17:00 ends exactly at closing and is valid.
	v := evaluate(slotAt(utc(2025, time.January, 8, 16, 0), time.Hour), c, nil)
	assert.True(t, v.Accepted)

	// 16:15-17:15 spills past closing.
	v = evaluate(slotAt(utc(2025, time.January, 8, 16, 15), time.Hour), c, nil)
	assert.False(t, v.Accepted)
	assert.Equal(t, ReasonOutsideBusinessHours, v.Reason)
}

func TestEvaluateSlotWrappingPastMidnight(t *testing.T) {
	c := testConstraints()
	c.SlotDuration = 17 * time.Hour

	// 9:00 plus 17 hours ends at 2:00 the next morning. The end's
	// hour-of-day is before closing, but the slot still crosses its own
	// day's closing instant and must be rejected.
	v := evaluate(slotAt(utc(2025, time.January, 8, 9, 0), 17*time.Hour), c, nil)
	assert.False(t, v.Accepted)
	assert.Equal(t, ReasonOutsideBusinessHours, v.Reason)
}
