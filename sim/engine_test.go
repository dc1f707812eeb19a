package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/voxel"
)

func newTestEngine() *Engine {
	return New(Config{}, nil)
}

func placeSolid(t *testing.T, e *Engine, pos voxel.Vector) *block.Solid {
	t.Helper()
	s := &block.Solid{Base: block.Base{Pos: pos}}
	require.NoError(t, e.Place(s))
	return s
}

// buildDustChain places a RedstoneBlock source and a straight run of
// supported dust blocks between it and origin (exclusive of the source),
// walking backward from the source toward origin along -dir. The dust
// block nearest origin (one step away, in direction dir) ends up carrying
// signal 16-length once the chain converges.
func buildDustChain(t *testing.T, e *Engine, origin voxel.Vector, dir voxel.Direction, length int) {
	t.Helper()
	source := origin.Side(dir)
	for i := 1; i < length+1; i++ {
		source = source.Side(dir)
	}
	placeRedstoneBlock(t, e, source)

	cell := origin.Side(dir)
	for i := 0; i < length; i++ {
		placeSolid(t, e, cell.Side(voxel.NegY))
		require.NoError(t, e.Place(&block.Dust{Base: block.Base{Pos: cell}}))
		cell = cell.Side(dir)
	}
}

func placeRedstoneBlock(t *testing.T, e *Engine, pos voxel.Vector) {
	t.Helper()
	require.NoError(t, e.Place(&block.RedstoneBlock{Base: block.Base{Pos: pos}}))
}

func TestSignalDecayLine(t *testing.T) {
	e := newTestEngine()
	support := voxel.Vec(-1, 0, 0)
	placeSolid(t, e, support)
	lever := &block.Lever{Base: block.Base{Pos: voxel.Vec(-1, 1, 0)}, Face: voxel.NegY, On: true}
	require.NoError(t, e.Place(lever))

	for x := 0; x <= 15; x++ {
		placeSolid(t, e, voxel.Vec(x, -1, 0))
		require.NoError(t, e.Place(&block.Dust{Base: block.Base{Pos: voxel.Vec(x, 0, 0)}}))
	}

	e.Tick(1)

	for x := 0; x <= 15; x++ {
		b, ok := e.Get(voxel.Vec(x, 0, 0))
		require.True(t, ok)
		d := b.(*block.Dust)
		assert.Equal(t, uint8(15-x), d.Signal, "x=%d", x)
	}
}

func TestPistonPushRefusesOversizedCluster(t *testing.T) {
	e := newTestEngine()
	pistonPos := voxel.Vec(0, 0, 0)
	piston := &block.Piston{Base: block.Base{Pos: pistonPos}, Facing: voxel.PosX}
	require.NoError(t, e.Place(piston))

	const blockCount = 13 // one over the default MaxPistonClusterSize of 12
	for i := 1; i <= blockCount; i++ {
		placeSolid(t, e, voxel.Vec(i, 0, 0))
	}
	lever := &block.Lever{Base: block.Base{Pos: voxel.Vec(-1, 0, 0)}, On: true}
	require.NoError(t, e.Place(lever))

	// Placing the lever already drains the piston into its extending
	// transition (activation at tick 1, completion scheduled at tick 3);
	// advance to the completion tick to exercise the cluster-size check.
	e.Tick(3)

	got, ok := e.Get(pistonPos)
	require.True(t, ok)
	assert.False(t, got.(*block.Piston).Extended)
	for i := 1; i <= blockCount; i++ {
		b, ok := e.Get(voxel.Vec(i, 0, 0))
		require.True(t, ok, "block at %d should not have moved", i)
		assert.Equal(t, block.KindSolid, b.Kind())
	}
}

func TestRepeaterLockHoldsOutputOff(t *testing.T) {
	e := newTestEngine()
	a := &block.Repeater{Base: block.Base{Pos: voxel.Vec(0, 0, 0)}, Facing: voxel.PosX, Delay: 2}
	placeSolid(t, e, voxel.Vec(0, -1, 0))
	require.NoError(t, e.Place(a))

	b := &block.Repeater{Base: block.Base{Pos: voxel.Vec(0, 0, 1)}, Facing: voxel.NegZ, Delay: 2, OutputOn: true}
	placeSolid(t, e, voxel.Vec(0, -1, 1))
	require.NoError(t, e.Place(b))
	// Sustain b's own output indefinitely so it keeps locking a, independent
	// of b's own input-to-output delay.
	placeRedstoneBlock(t, e, voxel.Vec(0, 0, 2))

	lever := &block.Lever{Base: block.Base{Pos: voxel.Vec(-1, 0, 0)}, On: true}
	require.NoError(t, e.Place(lever))

	e.Tick(4)

	got, _ := e.Get(voxel.Vec(0, 0, 0))
	r := got.(*block.Repeater)
	assert.True(t, r.Locked)
	assert.False(t, r.OutputOn)
}

func TestTorchBurnsOutAfterRapidToggling(t *testing.T) {
	e := newTestEngine()
	support := voxel.Vec(0, 0, 0)
	placeSolid(t, e, support)
	torch := &block.Torch{Base: block.Base{Pos: voxel.Vec(1, 0, 0)}, Face: voxel.NegX}
	require.NoError(t, e.Place(torch))
	lever := &block.Lever{Base: block.Base{Pos: voxel.Vec(-1, 0, 0)}, Face: voxel.PosX}
	require.NoError(t, e.Place(lever))

	e.Tick(1)

	for i := 0; i < 9; i++ {
		require.NoError(t, e.Interact(lever.Pos))
		e.Tick(2)
	}

	got, _ := e.Get(torch.Pos)
	assert.True(t, got.(*block.Torch).BurnedOut)
}

func TestObserverPulsesWhenWatchedCellChanges(t *testing.T) {
	e := newTestEngine()
	pistonPos := voxel.Vec(0, 0, 0)
	piston := &block.Piston{Base: block.Base{Pos: pistonPos}, Facing: voxel.PosX}
	require.NoError(t, e.Place(piston))
	placeSolid(t, e, voxel.Vec(1, 0, 0))

	observer := &block.Observer{Base: block.Base{Pos: voxel.Vec(3, 0, 0)}, Facing: voxel.NegX}
	require.NoError(t, e.Place(observer))

	lever := &block.Lever{Base: block.Base{Pos: voxel.Vec(-1, 0, 0)}, On: true}
	require.NoError(t, e.Place(lever))

	// Placing the lever already drains the piston into its extending
	// transition; completion (the push) fires at tick 3.
	e.Tick(3) // piston extends, pushes the solid from (1,0,0) to (2,0,0)

	got, _ := e.Get(voxel.Vec(2, 0, 0))
	require.Equal(t, block.KindSolid, got.Kind())

	e.Tick(2) // observer's scheduled pulse start fires two ticks after the push
	obs, _ := e.Get(observer.Pos)
	assert.True(t, obs.(*block.Observer).OutputOn)

	e.Tick(2) // pulse ends two ticks after it started
	obs, _ = e.Get(observer.Pos)
	assert.False(t, obs.(*block.Observer).OutputOn)
}

func TestComparatorSubtractionMode(t *testing.T) {
	e := newTestEngine()
	c := &block.Comparator{Base: block.Base{Pos: voxel.Vec(0, 0, 0)}, Facing: voxel.PosX, Mode: block.ComparatorSubtraction}
	placeSolid(t, e, voxel.Vec(0, -1, 0))
	require.NoError(t, e.Place(c))

	buildDustChain(t, e, c.Pos, voxel.NegX, 6)  // rear settles at 16-6=10
	buildDustChain(t, e, c.Pos, voxel.PosZ, 13) // side settles at 16-13=3

	e.Tick(1)
	e.Tick(2)

	got, _ := e.Get(c.Pos)
	out := got.(*block.Comparator)
	assert.Equal(t, uint8(10), out.Rear)
	assert.Equal(t, uint8(3), out.Left)
	assert.Equal(t, uint8(7), out.OutputSignal)
}
