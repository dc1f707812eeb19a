package block

import "github.com/voxred/redstone/voxel"

// ButtonVariant distinguishes release-timing behaviour (spec §4.10 Button).
type ButtonVariant uint8

const (
	ButtonStone ButtonVariant = iota
	ButtonWood
)

// ReleaseDelay returns the number of ticks after pressing before the button
// auto-releases (20 for stone, 30 for wood).
func (v ButtonVariant) ReleaseDelay() int64 {
	if v == ButtonWood {
		return 30
	}
	return 20
}

// Button is a momentary, self-releasing redstone power source.
type Button struct {
	Base
	Variant ButtonVariant
	// Face is the direction from the button's position to its support.
	Face voxel.Direction
	// Pressed reports whether the button is currently outputting power.
	Pressed bool
	// ScheduledRelease is the tick at which the button will auto-release,
	// or -1 when no release is pending.
	ScheduledRelease int64
}

func (*Button) Kind() Kind { return KindButton }

// ShouldDrop reports true once the supporting solid block is gone (spec
// §4.10 Button: "Attaches to any face of a solid.").
func (b *Button) ShouldDrop(lookup Lookup) bool {
	return !validAttachedSupport(lookup, b.Pos, b.Face, true, KindSolid)
}
