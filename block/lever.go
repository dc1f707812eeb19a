package block

import "github.com/voxred/redstone/voxel"

// Lever is a persistent, interactable redstone power source.
type Lever struct {
	Base
	// Face is the direction from the lever's position to its support block
	// (attached-position = position + Face, per spec §3 Relationships).
	Face voxel.Direction
	// On specifies whether the lever currently outputs power.
	On bool
}

func (*Lever) Kind() Kind { return KindLever }

// ShouldDrop reports true once the support block is no longer solid, slime,
// piston or sticky piston (spec §4.10 Lever).
func (l *Lever) ShouldDrop(lookup Lookup) bool {
	return !validAttachedSupport(lookup, l.Pos, l.Face, true, KindSolid, KindSlime, KindPiston, KindStickyPiston)
}
