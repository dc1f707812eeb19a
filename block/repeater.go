package block

import "github.com/voxred/redstone/voxel"

// Repeater is a directional power relay with a configurable delay, a
// locking input and output pulse extension (spec §4.5).
type Repeater struct {
	Base
	// Facing is the direction the repeater's front points (toward its
	// output); the rear input is read from pos.Side(Facing.Opposite()).
	Facing voxel.Direction
	// Delay is one of {2,4,6,8} game ticks.
	Delay int
	// Powered reflects the current rear input reading.
	Powered bool
	// Locked reports whether a perpendicular side input is holding the
	// repeater's output frozen.
	Locked bool
	// OutputOn is the repeater's current output state.
	OutputOn bool
	// ScheduledOutput is the tick a pending output flip fires at, or -1
	// when no change is pending.
	ScheduledOutput int64
	// PendingOutput is the target OutputOn value for ScheduledOutput.
	PendingOutput bool
}

func (*Repeater) Kind() Kind { return KindRepeater }

func (r *Repeater) ShouldDrop(lookup Lookup) bool {
	return !belowSupportValid(lookup, r.Pos)
}

// CycleDelay advances the repeater's delay 2->4->6->8->2 (right-click
// behaviour, spec §4.5 Delay).
func (r *Repeater) CycleDelay() {
	switch r.Delay {
	case 2:
		r.Delay = 4
	case 4:
		r.Delay = 6
	case 6:
		r.Delay = 8
	default:
		r.Delay = 2
	}
}
