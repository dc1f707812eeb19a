package power

import (
	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/voxel"
)

// blocksVerticalConduction reports whether b would block a dust step
// connection from forming through it (spec §4.4 Step-down/Step-up: solid,
// slime and observer all occupy their cell fully enough to block a wire
// running past at the same level).
func blocksVerticalConduction(b block.Block) bool {
	switch b.Kind() {
	case block.KindSolid, block.KindSlime, block.KindObserver:
		return true
	default:
		return false
	}
}

func isConductor(b block.Block) bool {
	return b.Kind() == block.KindSolid || b.Kind() == block.KindSlime
}

// dustConnects reports whether the dust at pos has a topological connection
// in direction d, per the five rules of spec §4.4 Connections. This is
// shape-independent: neighbouring dust still connects to, and pulls signal
// from, a dot-shaped dust. The shape is applied elsewhere: ComputeDustSignal
// gives a dot no signal pulled from its neighbours, and DustPointsAt never
// lets a dot point at a target.
func dustConnects(lookup block.Lookup, pos voxel.Vector, d voxel.Direction) bool {
	neighborPos := pos.Side(d)
	nb, ok := lookup.At(neighborPos)
	if ok {
		switch nb.Kind() {
		case block.KindDust, block.KindLever, block.KindTorch:
			return true
		}
		switch v := nb.(type) {
		case *block.Repeater:
			if v.Facing == d || v.Facing == d.Opposite() {
				return true
			}
		case *block.Comparator:
			if v.Facing == d || v.Facing == d.Opposite() {
				return true
			}
		case *block.Observer:
			if v.Facing == d {
				return true
			}
		}
	}
	// Step-down: the same-level cell must not block vertical conduction,
	// and a dust must sit one below it.
	if !ok || !blocksVerticalConduction(nb) {
		if lower, found := lookup.At(neighborPos.Side(voxel.NegY)); found && lower.Kind() == block.KindDust {
			return true
		}
	}
	// Step-up: the same-level cell must be a conductor, a dust must sit one
	// above it, and the cell directly above pos must not itself be a
	// conductor (or the step would be blocked from above).
	if ok && isConductor(nb) {
		if upper, found := lookup.At(neighborPos.Side(voxel.PosY)); found && upper.Kind() == block.KindDust {
			above, aboveOk := lookup.At(pos.Side(voxel.PosY))
			if !(aboveOk && isConductor(above)) {
				return true
			}
		}
	}
	return false
}

// DustConnections reports, for each of the four horizontal directions (in
// voxel.Horizontal order), whether pos's dust has a connection there.
func DustConnections(lookup block.Lookup, pos voxel.Vector) [4]bool {
	var conn [4]bool
	for i, d := range voxel.Horizontal {
		conn[i] = dustConnects(lookup, pos, d)
	}
	return conn
}

// connectedDust returns the *block.Dust that forms pos's connection in
// direction d, if that connection exists and terminates on a dust block
// (same-level, step-down or step-up). Connections to a lever/torch/
// repeater/comparator/observer neighbour have no .Signal to pull from, so
// they're irrelevant to ComputeDustSignal and are not returned here.
func connectedDust(lookup block.Lookup, pos voxel.Vector, d voxel.Direction) (*block.Dust, bool) {
	if !dustConnects(lookup, pos, d) {
		return nil, false
	}
	neighborPos := pos.Side(d)
	if nb, ok := lookup.At(neighborPos); ok {
		if dust, isDust := nb.(*block.Dust); isDust {
			return dust, true
		}
	}
	if lower, ok := lookup.At(neighborPos.Side(voxel.NegY)); ok {
		if dust, isDust := lower.(*block.Dust); isDust {
			return dust, true
		}
	}
	if upper, ok := lookup.At(neighborPos.Side(voxel.PosY)); ok {
		if dust, isDust := upper.(*block.Dust); isDust {
			return dust, true
		}
	}
	return nil, false
}

// unitDirection returns the Direction whose unit vector equals delta, if
// any.
func unitDirection(delta voxel.Vector) (voxel.Direction, bool) {
	for _, d := range voxel.AllDirections {
		if d.Vector() == delta {
			return d, true
		}
	}
	return voxel.Direction(0), false
}

// DustPointsAt reports whether d points at target (spec §4.4 Pointing): a
// cross-shaped dust points at every horizontally-adjacent same-Y cell it
// has no connections at all (an isolated cross radiates in all four
// directions), or specifically in the directions it is connected.
// Dot-shaped dust never points at anything.
func DustPointsAt(lookup block.Lookup, d *block.Dust, target voxel.Vector) bool {
	if d.Shape != block.ShapeCross {
		return false
	}
	if target.Y != d.Pos.Y {
		return false
	}
	dir, ok := unitDirection(target.Sub(d.Pos))
	if !ok || !dir.IsHorizontal() {
		return false
	}
	conn := DustConnections(lookup, d.Pos)
	anyConn := false
	for _, c := range conn {
		if c {
			anyConn = true
			break
		}
	}
	if !anyConn {
		return true
	}
	for i, hd := range voxel.Horizontal {
		if hd == dir {
			return conn[i]
		}
	}
	return false
}

// ComputeDustSignal computes the signal a dust at pos should carry (spec
// §4.4 Signal): 15 if any adjacent source delivers full signal, otherwise
// one less than the strongest dust-connected neighbour's signal, floored at
// 0. A dot-shaped dust has zero effective connections (spec §4.4 Shape) and
// so never pulls signal from a neighbour, only from a full-signal source.
func ComputeDustSignal(lookup block.Lookup, pos voxel.Vector) uint8 {
	if HasFullSignal(lookup, pos) {
		return 15
	}
	self, ok := lookup.At(pos)
	if ok {
		if dust, isDust := self.(*block.Dust); isDust && dust.Shape != block.ShapeCross {
			return 0
		}
	}
	best := 0
	for _, d := range voxel.Horizontal {
		dust, ok := connectedDust(lookup, pos, d)
		if !ok {
			continue
		}
		if s := int(dust.Signal) - 1; s > best {
			best = s
		}
	}
	return voxel.ClampSignal(best)
}
