package block

import "github.com/voxred/redstone/voxel"

// ComparatorMode selects comparison or subtraction output behaviour (spec
// §4.6 Output).
type ComparatorMode uint8

const (
	ComparatorComparison ComparatorMode = iota
	ComparatorSubtraction
)

// Comparator reads a rear signal and up to two side signals and emits a
// derived signal strength (spec §4.6).
type Comparator struct {
	Base
	// Facing is the direction the comparator's front points.
	Facing voxel.Direction
	Mode   ComparatorMode
	// Rear, Left, Right cache the most recently read input strengths.
	Rear, Left, Right uint8
	// OutputSignal is the comparator's current output strength, 0-15.
	OutputSignal uint8
	// ScheduledOutput is the tick a pending output change fires at, or -1.
	ScheduledOutput int64
	// PendingOutput is the target OutputSignal for ScheduledOutput.
	PendingOutput uint8
}

func (*Comparator) Kind() Kind { return KindComparator }

func (c *Comparator) ShouldDrop(lookup Lookup) bool {
	return !belowSupportValid(lookup, c.Pos)
}

// ToggleMode flips comparison<->subtraction (right-click behaviour).
func (c *Comparator) ToggleMode() {
	if c.Mode == ComparatorComparison {
		c.Mode = ComparatorSubtraction
	} else {
		c.Mode = ComparatorComparison
	}
}
