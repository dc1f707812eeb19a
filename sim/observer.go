package sim

import (
	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/voxel"
)

// notifyObservers schedules a pulse start on any observer whose watched
// cell is pos, whenever pos changes (spec §4.8: placement, removal, move,
// or a conducting block's power state flipping all count as a change).
func (e *Engine) notifyObservers(pos voxel.Vector) {
	for _, d := range voxel.AllDirections {
		n := pos.Side(d)
		b, ok := e.grid.At(n)
		if !ok {
			continue
		}
		obs, isObserver := b.(*block.Observer)
		if !isObserver {
			continue
		}
		// obs.Facing must point from n back at pos: pos == n.Side(obs.Facing).
		if obs.Facing != d.Opposite() {
			continue
		}
		e.startObserverPulse(obs)
	}
}

func (e *Engine) startObserverPulse(obs *block.Observer) {
	if obs.OutputOn || obs.ScheduledPulseStart >= 0 {
		return
	}
	tick := e.sched.CurrentTick()
	obs.ScheduledPulseStart = tick + 2
	obs.ScheduledPulseEnd = tick + 4
	e.sched.Schedule(obs.ScheduledPulseStart, obs.Pos)
	e.sched.Schedule(obs.ScheduledPulseEnd, obs.Pos)
}

// updateObserver advances the observer's pulse state machine: off -> on at
// ScheduledPulseStart, on -> off at ScheduledPulseEnd, both scheduled
// together when the watched cell changed (spec §4.8: output-on two ticks
// after the change, output-off two ticks after that).
func (e *Engine) updateObserver(obs *block.Observer) {
	tick := e.sched.CurrentTick()
	switch {
	case !obs.OutputOn && obs.ScheduledPulseStart >= 0 && tick >= obs.ScheduledPulseStart:
		obs.OutputOn = true
		obs.ScheduledPulseStart = -1
		e.sched.Trigger(obs.Pos)
	case obs.OutputOn && obs.ScheduledPulseEnd >= 0 && tick >= obs.ScheduledPulseEnd:
		obs.OutputOn = false
		obs.ScheduledPulseEnd = -1
		e.sched.Trigger(obs.Pos)
	}
}
