package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voxred/redstone/voxel"
)

// fakeLookup is a minimal in-memory Lookup for unit tests that don't need a
// full grid.Grid.
type fakeLookup map[voxel.Vector]Block

func (f fakeLookup) At(v voxel.Vector) (Block, bool) {
	b, ok := f[v]
	return b, ok
}

func TestDustShouldDrop(t *testing.T) {
	pos := voxel.Vec(0, 1, 0)
	d := &Dust{Base: Base{Pos: pos}}

	lookup := fakeLookup{}
	assert.True(t, d.ShouldDrop(lookup), "no support block at all")

	lookup[voxel.Vec(0, 0, 0)] = &Solid{}
	assert.False(t, d.ShouldDrop(lookup), "solid support present")

	lookup[voxel.Vec(0, 0, 0)] = &Dust{}
	assert.True(t, d.ShouldDrop(lookup), "dust is not a valid support")
}

func TestLeverSupportAllowsPistons(t *testing.T) {
	pos := voxel.Vec(0, 0, 0)
	l := &Lever{Base: Base{Pos: pos}, Face: voxel.NegX}
	lookup := fakeLookup{voxel.Vec(-1, 0, 0): &Piston{Sticky: true}}
	assert.False(t, l.ShouldDrop(lookup))
}

func TestButtonRequiresSolidOnly(t *testing.T) {
	pos := voxel.Vec(0, 0, 0)
	b := &Button{Base: Base{Pos: pos}, Face: voxel.NegX}
	lookup := fakeLookup{voxel.Vec(-1, 0, 0): &Slime{}}
	assert.True(t, b.ShouldDrop(lookup), "slime is not a valid button support")
}

func TestTorchNeverAttachesToCeiling(t *testing.T) {
	pos := voxel.Vec(0, 0, 0)
	tc := &Torch{Base: Base{Pos: pos}, Face: voxel.PosY}
	lookup := fakeLookup{voxel.Vec(0, 1, 0): &Solid{}}
	assert.True(t, tc.ShouldDrop(lookup))
}

func TestTorchBurnout(t *testing.T) {
	tc := &Torch{}
	var tick int64
	for i := 0; i < BurnoutLimit-1; i++ {
		tick += 4
		assert.False(t, tc.RecordToggle(tick))
	}
	tick += 4
	assert.True(t, tc.RecordToggle(tick))
	assert.True(t, tc.BurnedOut)
}

func TestPlateOutputSignal(t *testing.T) {
	wood := &PressurePlate{Variant: PlateWood, EntityCount: 1}
	assert.Equal(t, uint8(15), wood.OutputSignal())

	light := &PressurePlate{Variant: PlateLight, EntityCount: 3}
	assert.Equal(t, uint8(3), light.OutputSignal())

	heavy := &PressurePlate{Variant: PlateHeavy, EntityCount: 25}
	assert.Equal(t, uint8(3), heavy.OutputSignal())

	empty := &PressurePlate{Variant: PlateWood, EntityCount: 0}
	assert.Equal(t, uint8(0), empty.OutputSignal())
}

func TestIsMovableExcludesExtendedPiston(t *testing.T) {
	p := &Piston{Extended: true}
	assert.False(t, IsMovable(p))
	p.Extended = false
	assert.True(t, IsMovable(p))
}

func TestRepeaterCycleDelay(t *testing.T) {
	r := &Repeater{Delay: 2}
	r.CycleDelay()
	assert.Equal(t, 4, r.Delay)
	r.CycleDelay()
	r.CycleDelay()
	r.CycleDelay()
	assert.Equal(t, 2, r.Delay)
}
