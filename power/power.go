// Package power implements the kernel's power-inference layer (spec §4.3,
// §4.4): pure query functions over a block.Lookup. None of these functions
// mutate anything, which is what makes them unit-testable in isolation from
// the simulation loop (spec §9 design note "Power inference separation").
package power

import (
	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/voxel"
)

// OutputsTo returns the signal b contributes to target through a
// directional output only (spec §4.3 outputs-to): a repeater's front, an
// observer's back, or a comparator's front. Every other kind contributes 0
// here even if it is itself a source — non-directional sources (lever,
// torch, button, redstone-block, plate) are handled by
// ReceivesStrongPower/ReceivesWeakPower/HasFullSignal instead.
func OutputsTo(b block.Block, target voxel.Vector) uint8 {
	switch v := b.(type) {
	case *block.Repeater:
		if v.OutputOn && v.Pos.Side(v.Facing) == target {
			return 15
		}
	case *block.Observer:
		if v.OutputOn && v.Pos.Side(v.Facing.Opposite()) == target {
			return 15
		}
	case *block.Comparator:
		if v.Pos.Side(v.Facing) == target {
			return v.OutputSignal
		}
	}
	return 0
}

// ReceivesStrongPower reports whether pos is strongly powered (spec §4.3).
func ReceivesStrongPower(lookup block.Lookup, pos voxel.Vector) bool {
	for _, d := range voxel.AllDirections {
		n := pos.Side(d)
		nb, ok := lookup.At(n)
		if !ok {
			continue
		}
		switch v := nb.(type) {
		case *block.Lever:
			if v.On && v.Pos.Side(v.Face) == pos {
				return true
			}
		case *block.Button:
			if v.Pressed && v.Pos.Side(v.Face) == pos {
				return true
			}
		}
		if OutputsTo(nb, pos) > 0 {
			return true
		}
	}
	if t, ok := lookup.At(pos.Side(voxel.NegY)); ok {
		if torch, isTorch := t.(*block.Torch); isTorch && torch.Lit {
			return true
		}
	}
	if p, ok := lookup.At(pos.Side(voxel.PosY)); ok {
		if plate, isPlate := p.(*block.PressurePlate); isPlate && plate.Active {
			return true
		}
	}
	return false
}

// ReceivesWeakPower reports whether pos is weakly powered (spec §4.3).
func ReceivesWeakPower(lookup block.Lookup, pos voxel.Vector) bool {
	if ReceivesStrongPower(lookup, pos) {
		return true
	}
	for _, d := range voxel.Horizontal {
		n := pos.Side(d)
		nb, ok := lookup.At(n)
		if !ok {
			continue
		}
		dust, isDust := nb.(*block.Dust)
		if isDust && dust.Signal >= 1 && DustPointsAt(lookup, dust, pos) {
			return true
		}
	}
	for _, d := range voxel.AllDirections {
		n := pos.Side(d)
		nb, ok := lookup.At(n)
		if !ok {
			continue
		}
		torch, isTorch := nb.(*block.Torch)
		if !isTorch || !torch.Lit {
			continue
		}
		// Exclude the torch's own attachment cell and the cell directly
		// above it (that's the strong-power case, handled separately).
		if pos == torch.Pos.Side(torch.Face) || pos == torch.Pos.Side(voxel.PosY) {
			continue
		}
		return true
	}
	if d, ok := lookup.At(pos.Side(voxel.PosY)); ok {
		if dust, isDust := d.(*block.Dust); isDust && dust.Signal >= 1 {
			return true
		}
	}
	return false
}

// HasFullSignal reports whether any adjacent source delivers a full (15)
// signal to pos (spec §4.3).
func HasFullSignal(lookup block.Lookup, pos voxel.Vector) bool {
	for _, d := range voxel.AllDirections {
		n := pos.Side(d)
		nb, ok := lookup.At(n)
		if !ok {
			continue
		}
		switch v := nb.(type) {
		case *block.Lever:
			if v.On {
				return true
			}
		case *block.Button:
			if v.Pressed {
				return true
			}
		case *block.RedstoneBlock:
			return true
		case *block.PressurePlate:
			if v.Active && v.OutputSignal() == 15 {
				return true
			}
		case *block.Torch:
			if v.Lit && pos != v.Pos.Side(v.Face) {
				return true
			}
		case *block.Solid:
			if v.State == block.StronglyPowered {
				return true
			}
		case *block.Slime:
			if v.State == block.StronglyPowered {
				return true
			}
		}
		if OutputsTo(nb, pos) == 15 {
			return true
		}
	}
	return false
}

// generalSignalAt returns the signal strength the block at from contributes
// toward target, used by RepeaterInput and ComparatorRear (spec §4.5
// Input, §4.6 Rear input). It generalizes over every source kind: dust
// reads its own signal; redstone-block is an unconditional 15; aligned
// repeater/comparator/observer use their directional output; lever/button/
// torch contribute 15 (subject to the torch attachment exclusion); an
// active plate contributes its weighted OutputSignal; a strongly-powered
// solid/slime conducts 15.
func generalSignalAt(lookup block.Lookup, from, target voxel.Vector) uint8 {
	b, ok := lookup.At(from)
	if !ok {
		return 0
	}
	switch v := b.(type) {
	case *block.Dust:
		return v.Signal
	case *block.RedstoneBlock:
		return 15
	case *block.Repeater, *block.Comparator, *block.Observer:
		return OutputsTo(b, target)
	case *block.Torch:
		if v.Lit && target != v.Pos.Side(v.Face) {
			return 15
		}
	case *block.Lever:
		if v.On {
			return 15
		}
	case *block.Button:
		if v.Pressed {
			return 15
		}
	case *block.PressurePlate:
		if v.Active {
			return v.OutputSignal()
		}
	case *block.Solid:
		if v.State == block.StronglyPowered {
			return 15
		}
	case *block.Slime:
		if v.State == block.StronglyPowered {
			return 15
		}
	}
	return 0
}
