package power

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/voxel"
)

type fakeLookup map[voxel.Vector]block.Block

func (f fakeLookup) At(v voxel.Vector) (block.Block, bool) {
	b, ok := f[v]
	return b, ok
}

func (f fakeLookup) put(b block.Block) fakeLookup {
	f[b.Position()] = b
	return f
}

func TestOutputsToDirectionalOnly(t *testing.T) {
	p := voxel.Vec(0, 0, 0)
	r := &block.Repeater{Base: block.Base{Pos: p}, Facing: voxel.PosX, OutputOn: true}
	assert.Equal(t, uint8(15), OutputsTo(r, voxel.Vec(1, 0, 0)))
	assert.Equal(t, uint8(0), OutputsTo(r, voxel.Vec(-1, 0, 0)))

	c := &block.Comparator{Base: block.Base{Pos: p}, Facing: voxel.PosX, OutputSignal: 7}
	assert.Equal(t, uint8(7), OutputsTo(c, voxel.Vec(1, 0, 0)))

	o := &block.Observer{Base: block.Base{Pos: p}, Facing: voxel.PosX, OutputOn: true}
	assert.Equal(t, uint8(15), OutputsTo(o, voxel.Vec(-1, 0, 0)))
	assert.Equal(t, uint8(0), OutputsTo(o, voxel.Vec(1, 0, 0)))
}

func TestReceivesStrongPowerFromAttachedLever(t *testing.T) {
	support := voxel.Vec(0, 0, 0)
	leverPos := support.Side(voxel.PosX)
	lookup := fakeLookup{}.
		put(&block.Solid{Base: block.Base{Pos: support}}).
		put(&block.Lever{Base: block.Base{Pos: leverPos}, Face: voxel.NegX, On: true})

	assert.True(t, ReceivesStrongPower(lookup, support))
}

func TestReceivesStrongPowerFromTorchBelow(t *testing.T) {
	above := voxel.Vec(0, 1, 0)
	torchPos := voxel.Vec(0, 0, 0)
	lookup := fakeLookup{}.put(&block.Torch{Base: block.Base{Pos: torchPos}, Face: voxel.NegY, Lit: true})
	assert.True(t, ReceivesStrongPower(lookup, above))
}

func TestReceivesWeakPowerFromPointingDust(t *testing.T) {
	dustPos := voxel.Vec(0, 0, 0)
	target := voxel.Vec(1, 0, 0)
	lookup := fakeLookup{}.put(&block.Dust{Base: block.Base{Pos: dustPos}, Signal: 10, Shape: block.ShapeCross})
	assert.True(t, ReceivesWeakPower(lookup, target))
}

func TestHasFullSignalFromRedstoneBlock(t *testing.T) {
	rb := voxel.Vec(0, 0, 0)
	target := voxel.Vec(1, 0, 0)
	lookup := fakeLookup{}.put(&block.RedstoneBlock{Base: block.Base{Pos: rb}})
	assert.True(t, HasFullSignal(lookup, target))
}

func TestDustConnectsToAdjacentDustAndLever(t *testing.T) {
	pos := voxel.Vec(0, 0, 0)
	lookup := fakeLookup{}.
		put(&block.Dust{Base: block.Base{Pos: pos.Side(voxel.PosX)}}).
		put(&block.Lever{Base: block.Base{Pos: pos.Side(voxel.NegX)}, Face: voxel.NegY})

	assert.True(t, dustConnects(lookup, pos, voxel.PosX))
	assert.True(t, dustConnects(lookup, pos, voxel.NegX))
	assert.False(t, dustConnects(lookup, pos, voxel.PosZ))
}

func TestDustStepDownConnection(t *testing.T) {
	pos := voxel.Vec(0, 0, 0)
	lowerDust := pos.Side(voxel.PosX).Side(voxel.NegY)
	lookup := fakeLookup{}.put(&block.Dust{Base: block.Base{Pos: lowerDust}})

	assert.True(t, dustConnects(lookup, pos, voxel.PosX))
}

func TestDustStepDownBlockedBySolidInWay(t *testing.T) {
	pos := voxel.Vec(0, 0, 0)
	samelevel := pos.Side(voxel.PosX)
	lowerDust := samelevel.Side(voxel.NegY)
	lookup := fakeLookup{}.
		put(&block.Solid{Base: block.Base{Pos: samelevel}}).
		put(&block.Dust{Base: block.Base{Pos: lowerDust}})

	assert.False(t, dustConnects(lookup, pos, voxel.PosX))
}

func TestDustStepUpConnection(t *testing.T) {
	pos := voxel.Vec(0, 0, 0)
	samelevel := pos.Side(voxel.PosX)
	upperDust := samelevel.Side(voxel.PosY)
	lookup := fakeLookup{}.
		put(&block.Solid{Base: block.Base{Pos: samelevel}}).
		put(&block.Dust{Base: block.Base{Pos: upperDust}})

	assert.True(t, dustConnects(lookup, pos, voxel.PosX))
}

func TestDustStepUpBlockedWhenCeilingAbove(t *testing.T) {
	pos := voxel.Vec(0, 0, 0)
	samelevel := pos.Side(voxel.PosX)
	upperDust := samelevel.Side(voxel.PosY)
	lookup := fakeLookup{}.
		put(&block.Solid{Base: block.Base{Pos: samelevel}}).
		put(&block.Dust{Base: block.Base{Pos: upperDust}}).
		put(&block.Solid{Base: block.Base{Pos: pos.Side(voxel.PosY)}})

	assert.False(t, dustConnects(lookup, pos, voxel.PosX))
}

func TestDustPointsAtIsolatedCrossPointsAllFour(t *testing.T) {
	pos := voxel.Vec(0, 0, 0)
	d := &block.Dust{Base: block.Base{Pos: pos}, Shape: block.ShapeCross}
	lookup := fakeLookup{}
	for _, dir := range voxel.Horizontal {
		assert.True(t, DustPointsAt(lookup, d, pos.Side(dir)))
	}
}

func TestDustPointsAtDotNeverPoints(t *testing.T) {
	pos := voxel.Vec(0, 0, 0)
	d := &block.Dust{Base: block.Base{Pos: pos}, Shape: block.ShapeDot}
	lookup := fakeLookup{}
	assert.False(t, DustPointsAt(lookup, d, pos.Side(voxel.PosX)))
}

func TestDustPointsAtRestrictedByConnection(t *testing.T) {
	pos := voxel.Vec(0, 0, 0)
	d := &block.Dust{Base: block.Base{Pos: pos}, Shape: block.ShapeCross}
	lookup := fakeLookup{}.put(&block.Dust{Base: block.Base{Pos: pos.Side(voxel.PosX)}})

	assert.True(t, DustPointsAt(lookup, d, pos.Side(voxel.PosX)))
	assert.False(t, DustPointsAt(lookup, d, pos.Side(voxel.PosZ)))
}

func TestComputeDustSignalDecaysByOne(t *testing.T) {
	source := voxel.Vec(0, 0, 0)
	target := source.Side(voxel.PosX)
	lookup := fakeLookup{}.put(&block.Dust{Base: block.Base{Pos: source}, Signal: 10})

	assert.Equal(t, uint8(9), ComputeDustSignal(lookup, target))
}

func TestRepeaterLockedByPerpendicularRepeater(t *testing.T) {
	pos := voxel.Vec(0, 0, 0)
	sidePos := pos.Side(voxel.PosZ)
	lookup := fakeLookup{}.put(&block.Repeater{
		Base: block.Base{Pos: sidePos}, Facing: voxel.NegZ, OutputOn: true,
	})
	assert.True(t, RepeaterLocked(lookup, pos, voxel.PosX))
}

func TestComparatorRearReadsRedstoneBlock(t *testing.T) {
	pos := voxel.Vec(0, 0, 0)
	rearPos := pos.Side(voxel.NegX)
	lookup := fakeLookup{}.put(&block.RedstoneBlock{Base: block.Base{Pos: rearPos}})
	assert.Equal(t, uint8(15), ComparatorRear(lookup, pos, voxel.PosX))
}

func TestComparatorSidesReadDust(t *testing.T) {
	pos := voxel.Vec(0, 0, 0)
	left := pos.Side(voxel.PosZ)
	lookup := fakeLookup{}.put(&block.Dust{Base: block.Base{Pos: left}, Signal: 6})

	l, r := ComparatorSides(lookup, pos, voxel.PosX)
	assert.Equal(t, uint8(6), l)
	assert.Equal(t, uint8(0), r)
}

func TestPistonActivatedByLeverExcludesFrontFace(t *testing.T) {
	piston := voxel.Vec(0, 0, 0)
	front := piston.Side(voxel.PosX)
	back := piston.Side(voxel.NegX)

	frontLookup := fakeLookup{}.put(&block.Lever{Base: block.Base{Pos: front}, On: true})
	assert.False(t, PistonActivated(frontLookup, piston, voxel.PosX))

	backLookup := fakeLookup{}.put(&block.Lever{Base: block.Base{Pos: back}, On: true})
	assert.True(t, PistonActivated(backLookup, piston, voxel.PosX))
}

func TestPistonActivatedQuasiConnectedAboveCell(t *testing.T) {
	piston := voxel.Vec(0, 0, 0)
	aboveFront := piston.Side(voxel.PosY).Side(voxel.PosX)
	lookup := fakeLookup{}.put(&block.Lever{Base: block.Base{Pos: aboveFront}, On: true})
	assert.True(t, PistonActivated(lookup, piston, voxel.PosX))
}
