package block

import "github.com/voxred/redstone/voxel"

// validAttachedSupport reports whether the block found in direction face
// from pos (i.e. at pos.Side(face)) is an acceptable support for an
// attachable component, given the allowed kinds and whether the "bottom"
// direction (face == PosY, meaning the support sits above — a ceiling
// attachment) is permitted.
func validAttachedSupport(lookup Lookup, pos voxel.Vector, face voxel.Direction, allowCeiling bool, kinds ...Kind) bool {
	if !allowCeiling && face == voxel.PosY {
		return false
	}
	b, ok := lookup.At(pos.Side(face))
	if !ok {
		return false
	}
	for _, k := range kinds {
		if b.Kind() == k {
			return true
		}
	}
	return false
}

// belowSupportValid reports whether the block directly beneath pos is an
// acceptable support, the shared rule for dust, repeaters, comparators and
// pressure plates (spec §3 Relationships, §9 Open Question (i): solid or
// slime only, no piston/observer).
func belowSupportValid(lookup Lookup, pos voxel.Vector) bool {
	return solidSupport(lookup, pos.Side(voxel.NegY))
}
