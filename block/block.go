// Package block defines the closed catalog of 13 redstone-relevant block
// variants (spec §3) as a tagged sum type: a single Kind enum plus one
// concrete Go type per variant, each carrying its own mutable state. Per the
// design note in spec §9, there is no capability-interface dispatch inside
// the catalog itself — callers type-switch on Kind (or use a Go type
// switch on the concrete pointer type) at the single match point that needs
// per-variant behaviour (the simulation loop in package sim).
package block

import "github.com/voxred/redstone/voxel"

// Kind identifies which of the 13 variants a Block is.
type Kind uint8

const (
	KindSolid Kind = iota
	KindSlime
	KindRedstoneBlock
	KindDust
	KindLever
	KindButton
	KindTorch
	KindRepeater
	KindComparator
	KindObserver
	KindPiston
	KindStickyPiston
	KindPressurePlate
)

// String gives a stable lower-case name for logging and snapshot encoding.
func (k Kind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindSlime:
		return "slime"
	case KindRedstoneBlock:
		return "redstone_block"
	case KindDust:
		return "dust"
	case KindLever:
		return "lever"
	case KindButton:
		return "button"
	case KindTorch:
		return "torch"
	case KindRepeater:
		return "repeater"
	case KindComparator:
		return "comparator"
	case KindObserver:
		return "observer"
	case KindPiston:
		return "piston"
	case KindStickyPiston:
		return "sticky_piston"
	case KindPressurePlate:
		return "pressure_plate"
	default:
		return "unknown"
	}
}

// Lookup resolves a position to the block occupying it, if any. Grid
// implements this; the block package depends only on this narrow interface
// so it never imports the grid package (which stores Blocks).
type Lookup interface {
	At(v voxel.Vector) (Block, bool)
}

// Block is implemented by every concrete variant. It is intentionally
// minimal: position bookkeeping and structural-validity. All simulation
// behaviour lives in package sim, dispatched by Kind.
type Block interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Position returns the block's current grid position.
	Position() voxel.Vector
	// SetPosition updates the block's stored position; used only by the
	// grid store when moving a block (e.g. a piston push).
	SetPosition(v voxel.Vector)
	// ShouldDrop reports whether this block's support/attachment is
	// currently absent or invalid (spec §3: "structurally invalid").
	ShouldDrop(lookup Lookup) bool
}

// Base holds the fields common to every variant and gives them the
// Position/SetPosition methods via embedding.
type Base struct {
	Pos voxel.Vector
}

func (b *Base) Position() voxel.Vector     { return b.Pos }
func (b *Base) SetPosition(v voxel.Vector) { b.Pos = v }

// solidSupport reports whether the block at v is Solid or Slime, the
// support set shared by dust, repeaters, comparators and pressure plates
// (spec §4.4 Support, §4.5 Support, §4.6 Support; Open Question (i)).
func solidSupport(lookup Lookup, v voxel.Vector) bool {
	b, ok := lookup.At(v)
	if !ok {
		return false
	}
	switch b.Kind() {
	case KindSolid, KindSlime:
		return true
	default:
		return false
	}
}

// IsSolidOrSlime reports whether b is a Solid or Slime block; a nil b
// reports false.
func IsSolidOrSlime(b Block) bool {
	if b == nil {
		return false
	}
	return b.Kind() == KindSolid || b.Kind() == KindSlime
}

// IsFragile reports whether b belongs to the destructible set a piston may
// crush or destroy on push (spec §4.9 Destructible set, glossary).
func IsFragile(b Block) bool {
	if b == nil {
		return false
	}
	switch b.Kind() {
	case KindDust, KindLever, KindRepeater, KindTorch, KindButton, KindPressurePlate, KindComparator:
		return true
	default:
		return false
	}
}

// IsMovable reports whether b belongs to the movable set a piston may push
// (spec §4.9 Movable set).
func IsMovable(b Block) bool {
	if b == nil {
		return false
	}
	switch b.Kind() {
	case KindSolid, KindSlime, KindObserver, KindRedstoneBlock:
		return true
	case KindPiston, KindStickyPiston:
		p, ok := b.(interface{ IsExtended() bool })
		return ok && !p.IsExtended()
	default:
		return false
	}
}
