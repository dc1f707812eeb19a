package block

import "github.com/voxred/redstone/voxel"

// BurnoutWindow is the tick window within which toggles are counted toward
// burnout, and BurnoutLimit is the count at which a torch is forced off and
// flagged burned-out (spec §4.7 Burnout).
const (
	BurnoutWindow = 60
	BurnoutLimit  = 8
)

// Torch is an inverting redstone power source (spec §4.7).
type Torch struct {
	Base
	// Face is the direction from the torch's position to its attachment
	// (Down/NegY == on top of a block; a horizontal face == wall-mounted).
	Face voxel.Direction
	// Lit reports the torch's current output state.
	Lit bool
	// ScheduledToggle is the tick at which a pending lit-state flip fires,
	// or -1 when none is pending.
	ScheduledToggle int64
	// PendingLit is the target Lit value for ScheduledToggle.
	PendingLit bool
	// StateChangeTimes holds up to BurnoutLimit most recent toggle tick
	// timestamps, used to detect rapid flickering.
	StateChangeTimes []int64
	// BurnedOut is true once the torch has been forced unlit by excessive
	// toggling; it then ignores further toggles.
	BurnedOut bool
}

func (*Torch) Kind() Kind { return KindTorch }

// ShouldDrop reports true once the attachment is invalid: never attached
// to the underside of a block; solid/slime may support any other face;
// piston/sticky piston support only the top face (spec §4.7 Attachment).
func (t *Torch) ShouldDrop(lookup Lookup) bool {
	if t.Face == voxel.PosY {
		return true
	}
	b, ok := lookup.At(t.Pos.Side(t.Face))
	if !ok {
		return true
	}
	switch b.Kind() {
	case KindSolid, KindSlime:
		return false
	case KindPiston, KindStickyPiston:
		return t.Face != voxel.NegY
	default:
		return true
	}
}

// RecordToggle appends tick to the recent-toggle history, trimming entries
// older than BurnoutWindow, and reports whether the torch has now burned
// out (spec §4.7 Burnout).
func (t *Torch) RecordToggle(tick int64) bool {
	t.StateChangeTimes = append(t.StateChangeTimes, tick)
	cutoff := tick - BurnoutWindow
	kept := t.StateChangeTimes[:0]
	for _, ts := range t.StateChangeTimes {
		if ts > cutoff {
			kept = append(kept, ts)
		}
	}
	t.StateChangeTimes = kept
	if len(t.StateChangeTimes) >= BurnoutLimit {
		t.BurnedOut = true
	}
	return t.BurnedOut
}
