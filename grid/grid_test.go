package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/voxel"
)

func TestPlaceGetRemove(t *testing.T) {
	g := New()
	pos := voxel.Vec(1, 2, 3)
	s := &block.Solid{Base: block.Base{Pos: pos}}

	require.NoError(t, g.Place(s))
	got, ok := g.At(pos)
	require.True(t, ok)
	assert.Same(t, block.Block(s), got)

	err := g.Place(&block.Solid{Base: block.Base{Pos: pos}})
	assert.ErrorIs(t, err, ErrOccupied)

	g.Remove(pos)
	_, ok = g.At(pos)
	assert.False(t, ok)

	// Removing an already-empty cell is a no-op.
	g.Remove(pos)
}

func TestMoveUpdatesPosition(t *testing.T) {
	g := New()
	from := voxel.Vec(0, 0, 0)
	to := voxel.Vec(1, 0, 0)
	s := &block.Solid{Base: block.Base{Pos: from}}
	require.NoError(t, g.Place(s))

	require.NoError(t, g.Move(from, to))
	assert.Equal(t, to, s.Position())

	_, ok := g.At(from)
	assert.False(t, ok)
	got, ok := g.At(to)
	require.True(t, ok)
	assert.Same(t, block.Block(s), got)
}

func TestMoveIntoOccupiedFails(t *testing.T) {
	g := New()
	require.NoError(t, g.Place(&block.Solid{Base: block.Base{Pos: voxel.Vec(0, 0, 0)}}))
	require.NoError(t, g.Place(&block.Solid{Base: block.Base{Pos: voxel.Vec(1, 0, 0)}}))
	err := g.Move(voxel.Vec(0, 0, 0), voxel.Vec(1, 0, 0))
	assert.ErrorIs(t, err, ErrOccupied)
}

func TestHookFiresOnEveryMutation(t *testing.T) {
	g := New()
	var kinds []ChangeKind
	g.Hook = func(c Change) { kinds = append(kinds, c.Kind) }

	pos := voxel.Vec(0, 0, 0)
	require.NoError(t, g.Place(&block.Solid{Base: block.Base{Pos: pos}}))
	require.NoError(t, g.Move(pos, voxel.Vec(1, 0, 0)))
	g.Remove(voxel.Vec(1, 0, 0))

	assert.Equal(t, []ChangeKind{ChangeSet, ChangeMoveFrom, ChangeMoveTo, ChangeRemove}, kinds)
}

func TestAllReturnsEveryBlock(t *testing.T) {
	g := New()
	require.NoError(t, g.Place(&block.Solid{Base: block.Base{Pos: voxel.Vec(0, 0, 0)}}))
	require.NoError(t, g.Place(&block.Dust{Base: block.Base{Pos: voxel.Vec(1, 0, 0)}}))
	g.Remove(voxel.Vec(1, 0, 0))

	all := g.All()
	require.Len(t, all, 1)
	assert.Equal(t, block.KindSolid, all[0].Kind())
}
