package sim

import (
	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/power"
	"github.com/voxred/redstone/voxel"
)

// updateDust recomputes a dust's carried signal (spec §4.4 Signal) and
// re-triggers neighbours when it changes, including the eight diagonal-Y
// offsets a step connection can reach (spec §4.2 trigger note: dust
// changes must wake step-up/step-down neighbours one level above and
// below, not just the six axis-adjacent cells).
func (e *Engine) updateDust(d *block.Dust) {
	next := power.ComputeDustSignal(e.grid, d.Pos)
	if next == d.Signal {
		return
	}
	d.Signal = next
	e.sched.Trigger(d.Pos)
	e.notifyObservers(d.Pos)
	for _, n := range d.Pos.Neighbours() {
		e.sched.Enqueue(n.Side(voxel.PosY))
		e.sched.Enqueue(n.Side(voxel.NegY))
	}
}
