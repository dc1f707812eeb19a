package block

import "github.com/voxred/redstone/voxel"

// PistonState is the piston's position in its extend/retract state machine
// (spec §4.9 State machine).
type PistonState uint8

const (
	PistonRetracted PistonState = iota
	PistonExtending
	PistonExtended
	PistonRetracting
)

// Piston is a directional pusher; Sticky is modelled as the same struct
// with Sticky == true so the push/pull logic in package sim shares a single
// type switch case (spec §9 design note: tight coupling per operation).
type Piston struct {
	Base
	Facing voxel.Direction
	State  PistonState
	// Extended reports whether the piston's head is currently out.
	Extended bool
	// Sticky selects sticky-piston pull-on-retract behaviour.
	Sticky bool
	// ActivationTick is the tick after the one the current extend/retract
	// transition began at; an extension deactivated at or before this tick
	// is aborted as a short pulse. It is -1 when the piston is idle (fully
	// retracted or extended).
	ActivationTick int64
	// ScheduledTransition is the tick the current extend/retract transition
	// completes at, or -1 when the piston is idle.
	ScheduledTransition int64
	// ShortPulse marks an aborted extension (spec §4.9 Short pulse): the
	// piston settled straight back to retracted without a retraction
	// phase, so a sticky piston pulled nothing back. It is cleared when the
	// next extend/retract transition begins.
	ShortPulse bool
}

func (p *Piston) Kind() Kind {
	if p.Sticky {
		return KindStickyPiston
	}
	return KindPiston
}

// ShouldDrop is always false: pistons have no support requirement in this
// kernel (spec §3 lists no support/attachment rule for pistons).
func (*Piston) ShouldDrop(Lookup) bool { return false }

// IsExtended reports whether the piston head currently occupies its front
// cell, used by IsMovable to exclude extended pistons from the movable set.
func (p *Piston) IsExtended() bool { return p.Extended }
