package sim

import (
	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/power"
)

// updateRepeater applies a due scheduled output flip, resamples its rear
// input and lock state, and schedules a new flip if the desired output has
// changed (spec §4.5). A locked repeater ignores input changes until it
// unlocks, but a flip already in flight when locking began still fires.
// Pulse extension: a pending switch-on is never cancelled, so an input
// pulse shorter than the delay still turns the output on, and the
// switch-off that follows is scheduled a full delay after that. A pending
// switch-off is cancelled if the input comes back on before it fires.
func (e *Engine) updateRepeater(r *block.Repeater) {
	tick := e.sched.CurrentTick()
	if r.ScheduledOutput >= 0 && tick >= r.ScheduledOutput {
		r.OutputOn = r.PendingOutput
		r.ScheduledOutput = -1
		e.sched.Trigger(r.Pos)
		e.notifyObservers(r.Pos)
	}

	r.Powered = power.RepeaterInput(e.grid, r.Pos, r.Facing)
	r.Locked = power.RepeaterLocked(e.grid, r.Pos, r.Facing)
	if r.Locked {
		return
	}

	desired := r.Powered
	switch {
	case desired == r.OutputOn && r.ScheduledOutput >= 0 && !r.PendingOutput:
		e.sched.Cancel(r.ScheduledOutput, r.Pos)
		r.ScheduledOutput = -1
	case desired != r.OutputOn && r.ScheduledOutput < 0:
		r.PendingOutput = desired
		r.ScheduledOutput = tick + int64(r.Delay)
		e.sched.Schedule(r.ScheduledOutput, r.Pos)
	}
}
