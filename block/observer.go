package block

import "github.com/voxred/redstone/voxel"

// Observer watches the cell it Faces and pulses its back cell whenever that
// cell changes (spec §4.8).
type Observer struct {
	Base
	// Facing is the direction of the observed cell; the output emerges
	// from pos.Side(Facing.Opposite()).
	Facing voxel.Direction
	// OutputOn is the observer's current output state.
	OutputOn bool
	// ScheduledPulseStart/End are the ticks the pending pulse begins/ends,
	// or -1 when no pulse is scheduled.
	ScheduledPulseStart int64
	ScheduledPulseEnd   int64
}

func (*Observer) Kind() Kind { return KindObserver }

// ShouldDrop is always false: spec §3 lists no support/attachment
// requirement for observers (they are not in the "support-requiring" set).
func (*Observer) ShouldDrop(Lookup) bool { return false }
