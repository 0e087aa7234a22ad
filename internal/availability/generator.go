package availability

import "time"

// generator walks candidate slots forward through the search window in
// ascending start order. It has no hidden state: the emitted sequence is a
// pure function of the cursor position, so restarting from any cursor
// yields the same remaining candidates.
type generator struct {
	window Interval
	c      Constraints
	cursor time.Time
}

func newGenerator(window Interval, c Constraints) *generator {
	return &generator{window: window, c: c, cursor: window.Start}
}

// next returns the next raw candidate slot, or false when the window is
// exhausted. A candidate must fit entirely inside [window.Start, window.End).
func (g *generator) next() (Interval, bool) {
	end := g.cursor.Add(g.c.SlotDuration)
	if end.After(g.window.End) {
		return Interval{}, false
	}
	candidate := Interval{Start: g.cursor, End: end}
	g.cursor = g.cursor.Add(g.c.Step)
	return candidate, true
}

// fastForward jumps the cursor to target if that is further ahead than the
// cursor already is. The filter hands out targets that are never past the
// next instant that could possibly be accepted, so fast-forwarding is an
// optimization over minute-stepping, never a correctness change.
func (g *generator) fastForward(target time.Time) {
	if target.After(g.cursor) {
		g.cursor = target
	}
}
