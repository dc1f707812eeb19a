package sim

import (
	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/power"
)

// torchToggleDelay is the number of ticks between a torch detecting its
// attachment's power changed and the resulting lit-state flip taking
// effect (spec §4.7 Output).
const torchToggleDelay = 2

// updateTorch applies a due scheduled toggle, then samples its attachment
// and schedules a new toggle if the desired state has changed (spec §4.7).
// A burned-out torch ignores further input entirely.
func (e *Engine) updateTorch(t *block.Torch) {
	if t.BurnedOut {
		return
	}
	tick := e.sched.CurrentTick()
	if t.ScheduledToggle >= 0 && tick >= t.ScheduledToggle {
		t.Lit = t.PendingLit
		t.ScheduledToggle = -1
		if t.RecordToggle(tick) {
			t.Lit = false
		}
		e.sched.Trigger(t.Pos)
		e.notifyObservers(t.Pos)
	}

	attachment := t.Pos.Side(t.Face)
	desired := !power.ReceivesWeakPower(e.grid, attachment)
	if desired == t.Lit {
		if t.ScheduledToggle >= 0 && t.PendingLit != desired {
			e.sched.Cancel(t.ScheduledToggle, t.Pos)
			t.ScheduledToggle = -1
		}
		return
	}
	if t.ScheduledToggle < 0 {
		t.PendingLit = desired
		t.ScheduledToggle = tick + torchToggleDelay
		e.sched.Schedule(t.ScheduledToggle, t.Pos)
	}
}

// updateButton auto-releases a pressed button once its scheduled release
// tick arrives (spec §4.10 Button).
func (e *Engine) updateButton(b *block.Button) {
	if b.Pressed && b.ScheduledRelease >= 0 && e.sched.CurrentTick() >= b.ScheduledRelease {
		b.Pressed = false
		b.ScheduledRelease = -1
		e.sched.Trigger(b.Pos)
		e.notifyObservers(b.Pos)
	}
}

// updatePlate activates a plate as soon as an occupant is reported, and
// re-checks occupancy on its variant's check delay thereafter, deactivating
// once the plate is empty (spec §4.10 Pressure plate).
func (e *Engine) updatePlate(p *block.PressurePlate) {
	tick := e.sched.CurrentTick()
	if !p.Active {
		if p.EntityCount > 0 {
			p.Active = true
			p.ScheduledCheck = tick + p.Variant.CheckDelay()
			e.sched.Schedule(p.ScheduledCheck, p.Pos)
			e.sched.Trigger(p.Pos)
			e.notifyObservers(p.Pos)
		}
		return
	}
	if p.ScheduledCheck < 0 || tick < p.ScheduledCheck {
		return
	}
	if p.EntityCount > 0 {
		p.ScheduledCheck = tick + p.Variant.CheckDelay()
		e.sched.Schedule(p.ScheduledCheck, p.Pos)
		return
	}
	p.Active = false
	p.ScheduledCheck = -1
	e.sched.Trigger(p.Pos)
	e.notifyObservers(p.Pos)
}
