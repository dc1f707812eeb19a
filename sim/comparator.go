package sim

import (
	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/power"
)

// comparatorDelay is the fixed tick delay between a comparator's inputs
// changing and its output updating (spec §4.6 Output).
const comparatorDelay = 2

// updateComparator applies a due scheduled output change, resamples rear
// and side inputs, and schedules an output change to the newly desired
// value. Rapid input changes re-schedule only when no change is already
// pending; a change already in flight keeps its original fire tick rather
// than being pushed later by every subsequent input wobble (spec §4.6).
func (e *Engine) updateComparator(c *block.Comparator) {
	tick := e.sched.CurrentTick()
	if c.ScheduledOutput >= 0 && tick >= c.ScheduledOutput {
		c.OutputSignal = c.PendingOutput
		c.ScheduledOutput = -1
		e.sched.Trigger(c.Pos)
		e.notifyObservers(c.Pos)
	}

	c.Rear = power.ComparatorRear(e.grid, c.Pos, c.Facing)
	c.Left, c.Right = power.ComparatorSides(e.grid, c.Pos, c.Facing)
	side := c.Left
	if c.Right > side {
		side = c.Right
	}

	var desired uint8
	switch {
	case c.Mode == block.ComparatorSubtraction && c.Rear > side:
		desired = c.Rear - side
	case c.Mode == block.ComparatorComparison && c.Rear >= side:
		desired = c.Rear
	}

	if desired == c.OutputSignal {
		if c.ScheduledOutput >= 0 {
			e.sched.Cancel(c.ScheduledOutput, c.Pos)
			c.ScheduledOutput = -1
		}
		return
	}
	c.PendingOutput = desired
	if c.ScheduledOutput < 0 {
		c.ScheduledOutput = tick + comparatorDelay
		e.sched.Schedule(c.ScheduledOutput, c.Pos)
	}
}
