package power

import (
	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/voxel"
)

// PistonActivated reports whether a piston at pos facing facing should be
// extended, per the quasi-connectivity rule (spec §4.9 Activation): the
// piston reacts to power at its own cell (excluding its own front face, so
// a block it just pushed can't re-trigger it) and, quasi-connectively, at
// the cell directly above it.
func PistonActivated(lookup block.Lookup, pos voxel.Vector, facing voxel.Direction) bool {
	return activatedAt(lookup, pos, facing, true) || activatedAt(lookup, pos.Side(voxel.PosY), facing, false)
}

func activatedAt(lookup block.Lookup, cell voxel.Vector, excludeDir voxel.Direction, excludeFront bool) bool {
	for _, d := range voxel.AllDirections {
		if excludeFront && d == excludeDir {
			continue
		}
		n := cell.Side(d)
		nb, ok := lookup.At(n)
		if !ok {
			continue
		}
		back := d.Opposite()
		switch v := nb.(type) {
		case *block.Torch:
			if v.Lit {
				return true
			}
		case *block.Lever:
			if v.On {
				return true
			}
		case *block.Button:
			if v.Pressed {
				return true
			}
		case *block.PressurePlate:
			if v.Active {
				return true
			}
		case *block.RedstoneBlock:
			return true
		case *block.Solid:
			if v.State != block.Unpowered {
				return true
			}
		case *block.Slime:
			if v.State != block.Unpowered {
				return true
			}
		case *block.Repeater:
			if v.Facing == back && v.OutputOn {
				return true
			}
		case *block.Observer:
			if v.Facing.Opposite() == back && v.OutputOn {
				return true
			}
		case *block.Comparator:
			if v.Facing == back && v.OutputSignal > 0 {
				return true
			}
		case *block.Dust:
			if v.Signal < 1 {
				continue
			}
			if n == cell.Side(voxel.PosY) {
				return true
			}
			if d.IsHorizontal() && DustPointsAt(lookup, v, cell) {
				return true
			}
		}
	}
	return false
}
