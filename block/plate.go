package block

import "github.com/voxred/redstone/voxel"

// PlateVariant selects the weighting behaviour of a pressure plate (spec
// §4.10 Pressure plate).
type PlateVariant uint8

const (
	PlateWood PlateVariant = iota
	PlateStone
	PlateLight
	PlateHeavy
)

// CheckDelay returns the number of ticks between activation and the
// re-arm/deactivation check (20 for wood/stone, 10 for weighted variants).
func (v PlateVariant) CheckDelay() int64 {
	switch v {
	case PlateLight, PlateHeavy:
		return 10
	default:
		return 20
	}
}

// PressurePlate outputs a signal derived from the number of entities on it
// (spec §4.10 Pressure plate).
type PressurePlate struct {
	Base
	Variant PlateVariant
	// EntityCount is the last reported occupant count (host-supplied, spec
	// §6 set-entity-count).
	EntityCount int
	// Active reports whether the plate is currently outputting power.
	Active bool
	// ScheduledCheck is the tick the next activation/deactivation check
	// runs at, or -1 when none is pending.
	ScheduledCheck int64
}

func (*PressurePlate) Kind() Kind { return KindPressurePlate }

func (p *PressurePlate) ShouldDrop(lookup Lookup) bool {
	return !belowSupportValid(lookup, p.Pos)
}

// OutputSignal computes the plate's output strength from EntityCount per
// its variant's formula (spec §4.10).
func (p *PressurePlate) OutputSignal() uint8 {
	if p.EntityCount <= 0 {
		return 0
	}
	switch p.Variant {
	case PlateLight:
		return voxel.ClampSignal(p.EntityCount)
	case PlateHeavy:
		return voxel.ClampSignal((p.EntityCount + 9) / 10)
	default: // wood, stone
		return 15
	}
}
