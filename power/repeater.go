package power

import (
	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/voxel"
)

// RepeaterInput reports whether the cell behind a repeater facing dir is
// currently delivering it a signal (spec §4.5 Input): the rear cell is
// itself a source (lever/button/torch/redstone-block/active plate), a
// dust carrying a signal, an aligned repeater/comparator/observer output,
// or a conducting block that is itself powered by something further back.
func RepeaterInput(lookup block.Lookup, pos voxel.Vector, facing voxel.Direction) bool {
	rear := pos.Side(facing.Opposite())
	if generalSignalAt(lookup, rear, pos) > 0 {
		return true
	}
	if b, ok := lookup.At(rear); ok && isConductor(b) {
		return ReceivesWeakPower(lookup, rear)
	}
	return false
}

// RepeaterLocked reports whether either perpendicular neighbour holds a
// powered-on repeater or comparator whose front faces this repeater (spec
// §4.5 Lock).
func RepeaterLocked(lookup block.Lookup, pos voxel.Vector, facing voxel.Direction) bool {
	for _, d := range facing.Perpendiculars() {
		side := pos.Side(d)
		b, ok := lookup.At(side)
		if !ok {
			continue
		}
		switch v := b.(type) {
		case *block.Repeater:
			if v.Facing == d.Opposite() && v.OutputOn {
				return true
			}
		case *block.Comparator:
			if v.Facing == d.Opposite() && v.OutputSignal > 0 {
				return true
			}
		}
	}
	return false
}

// ComparatorRear returns the signal strength read from the cell directly
// behind a comparator facing dir (spec §4.6 Rear input).
func ComparatorRear(lookup block.Lookup, pos voxel.Vector, facing voxel.Direction) uint8 {
	rear := pos.Side(facing.Opposite())
	return generalSignalAt(lookup, rear, pos)
}

// ComparatorSides returns the signal strengths read from the two cells
// perpendicular to a comparator facing dir, in voxel.Perpendiculars order
// (spec §4.6 Side inputs). Side inputs are restricted to dust, redstone
// blocks and directional outputs aimed at the comparator; non-directional
// sources (lever, torch, button, plate) do not feed a comparator's side.
func ComparatorSides(lookup block.Lookup, pos voxel.Vector, facing voxel.Direction) (left, right uint8) {
	sides := facing.Perpendiculars()
	vals := [2]uint8{}
	for i, d := range sides {
		sidePos := pos.Side(d)
		b, ok := lookup.At(sidePos)
		if !ok {
			continue
		}
		switch v := b.(type) {
		case *block.Dust:
			vals[i] = v.Signal
		case *block.RedstoneBlock:
			vals[i] = 15
		case *block.Repeater, *block.Comparator, *block.Observer:
			vals[i] = OutputsTo(b, pos)
		}
	}
	return vals[0], vals[1]
}
