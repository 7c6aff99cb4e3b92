package breakout

import "math"

// tickDuration is the fixed step in float64 so that repeated float32 inputs
// of TickSeconds never fall short of a whole tick.
const tickDuration = 1.0 / TicksPerSecond

// Clock converts variable host frame times into whole fixed ticks.
// It holds the sub-tick remainder between calls.
type Clock struct {
	acc     float64
	dropped uint64
}

// Accumulate adds elapsed seconds and returns how many ticks are due now,
// at most MaxCatchUpSteps. If more are owed, the whole-tick backlog is
// discarded and counted in Dropped; the sub-tick remainder is kept.
// Non-positive and NaN inputs add nothing.
func (c *Clock) Accumulate(elapsed float32) int {
	if elapsed > 0 && !math.IsInf(float64(elapsed), 1) {
		c.acc += float64(elapsed)
	}

	steps := 0
	for c.acc >= tickDuration && steps < MaxCatchUpSteps {
		c.acc -= tickDuration
		steps++
	}

	if c.acc >= tickDuration {
		owed := math.Floor(c.acc / tickDuration)
		c.dropped += uint64(owed)
		c.acc -= owed * tickDuration
		if c.acc < 0 {
			c.acc = 0
		}
	}
	return steps
}

// pending returns the accumulated time not yet consumed by a tick.
func (c *Clock) pending() float32 {
	return float32(c.acc)
}

// Dropped returns the total number of ticks discarded by the catch-up cap.
func (c *Clock) Dropped() uint64 {
	return c.dropped
}
