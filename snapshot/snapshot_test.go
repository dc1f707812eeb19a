package snapshot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/sim"
	"github.com/voxred/redstone/voxel"
)

func buildEngine(t *testing.T) *sim.Engine {
	t.Helper()
	e := sim.New(sim.Config{}, nil)
	require.NoError(t, e.Place(&block.Solid{Base: block.Base{Pos: voxel.Vec(0, -1, 0)}}))
	require.NoError(t, e.Place(&block.Lever{Base: block.Base{Pos: voxel.Vec(-1, 0, 0)}, Face: voxel.PosX, On: true}))
	require.NoError(t, e.Place(&block.Repeater{Base: block.Base{Pos: voxel.Vec(0, 0, 0)}, Facing: voxel.PosX, Delay: 4}))
	require.NoError(t, e.Place(&block.Torch{Base: block.Base{Pos: voxel.Vec(2, -1, 1)}, Face: voxel.NegY}))
	e.Tick(3)
	return e
}

func TestRoundTripJSON(t *testing.T) {
	e := buildEngine(t)
	before := Capture(e)

	data, err := before.Encode()
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	restored := sim.New(sim.Config{}, nil)
	require.NoError(t, decoded.Restore(restored))
	after := Capture(restored)

	if diff := cmp.Diff(before.Blocks, after.Blocks); diff != "" {
		t.Fatalf("blocks changed across round trip (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(before.Future, after.Future); diff != "" {
		t.Fatalf("future schedule changed across round trip (-before +after):\n%s", diff)
	}
	require.Equal(t, before.Tick, after.Tick)
}

func TestRoundTripBase64(t *testing.T) {
	e := buildEngine(t)
	before := Capture(e)

	encoded, err := before.EncodeBase64()
	require.NoError(t, err)

	decoded, err := DecodeBase64(encoded)
	require.NoError(t, err)

	restored := sim.New(sim.Config{}, nil)
	require.NoError(t, decoded.Restore(restored))
	after := Capture(restored)

	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("snapshot changed across base64 round trip (-before +after):\n%s", diff)
	}
}

func TestRestoreIntoEmptyEngineOnly(t *testing.T) {
	e := buildEngine(t)
	snap := Capture(e)

	other := sim.New(sim.Config{}, nil)
	require.NoError(t, other.Place(&block.Solid{Base: block.Base{Pos: voxel.Vec(0, 0, 0)}}))

	err := snap.Restore(other)
	require.Error(t, err, "restoring into an occupied position should fail rather than silently overwrite")
}
