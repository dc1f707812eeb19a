// Package grid implements the kernel's sparse 3D block store (spec §4.1):
// the single source of truth mapping positions to blocks, with every
// mutation notifying a caller-supplied hook.
package grid

import (
	"errors"
	"fmt"

	"github.com/brentp/intintmap"
	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/voxel"
)

// ErrOccupied is returned by Place when the target position already holds a
// block (spec §6 "placing into an occupied cell").
var ErrOccupied = errors.New("grid: position already occupied")

const defaultCapacity = 1024

// ChangeKind describes which grid mutation triggered a Hook callback.
type ChangeKind uint8

const (
	// ChangeSet fires when a block is placed or replaced at a position.
	ChangeSet ChangeKind = iota
	// ChangeRemove fires when a block is removed from a position.
	ChangeRemove
	// ChangeMoveFrom fires on the source position of a Move.
	ChangeMoveFrom
	// ChangeMoveTo fires on the destination position of a Move.
	ChangeMoveTo
)

// Change describes a single grid mutation passed to a Hook.
type Change struct {
	Kind ChangeKind
	Pos  voxel.Vector
}

// Grid is the sparse position -> block.Block store. It owns a packed-key
// index (intintmap) into a flat block slice, per the kernel's design note
// on dense hashing of 64-bit packed positions (spec §9). The zero value is
// not usable; construct with New.
type Grid struct {
	index  *intintmap.Map
	blocks []block.Block
	free   []int

	// Hook, if non-nil, is invoked synchronously after every mutation. The
	// simulation engine uses this to enqueue scheduler updates and observer
	// notifications (spec §4.2 trigger, §4.8 Implementation) without the
	// grid package needing to know about scheduling or observers.
	Hook func(Change)
}

// New creates an empty Grid.
func New() *Grid {
	return &Grid{
		index: intintmap.New(defaultCapacity, 0.75),
	}
}

// At implements block.Lookup.
func (g *Grid) At(v voxel.Vector) (block.Block, bool) {
	slot, ok := g.index.Get(v.Key())
	if !ok {
		return nil, false
	}
	b := g.blocks[slot]
	if b == nil {
		return nil, false
	}
	return b, true
}

// Get is an alias for At kept for readability at call sites mirroring
// spec §4.1's get(p) operation name.
func (g *Grid) Get(v voxel.Vector) (block.Block, bool) { return g.At(v) }

// Place inserts b at its own Position(). It fails with ErrOccupied if the
// position is already taken (spec §3 "Exactly one block occupies any
// position").
func (g *Grid) Place(b block.Block) error {
	pos := b.Position()
	if _, ok := g.At(pos); ok {
		return fmt.Errorf("%w: %v", ErrOccupied, pos)
	}
	slot := g.alloc()
	g.blocks[slot] = b
	g.index.Put(pos.Key(), int64(slot))
	g.notify(Change{Kind: ChangeSet, Pos: pos})
	return nil
}

// Remove deletes the block at pos, if any. It is a no-op if pos is empty
// (spec §6 remove(position)).
func (g *Grid) Remove(pos voxel.Vector) {
	slot, ok := g.index.Get(pos.Key())
	if !ok {
		return
	}
	g.blocks[slot] = nil
	g.free = append(g.free, int(slot))
	g.index.Del(pos.Key())
	g.notify(Change{Kind: ChangeRemove, Pos: pos})
}

// Move atomically relocates the block at from to to: it deletes the source
// index entry, mutates the block's stored position, and inserts it at the
// destination (spec §4.1 move). to must be empty; from must be occupied.
func (g *Grid) Move(from, to voxel.Vector) error {
	slot, ok := g.index.Get(from.Key())
	if !ok {
		return fmt.Errorf("grid: move: no block at %v", from)
	}
	if _, occupied := g.At(to); occupied {
		return fmt.Errorf("%w: %v", ErrOccupied, to)
	}
	g.index.Del(from.Key())
	b := g.blocks[slot]
	b.SetPosition(to)
	g.index.Put(to.Key(), int64(slot))
	g.notify(Change{Kind: ChangeMoveFrom, Pos: from})
	g.notify(Change{Kind: ChangeMoveTo, Pos: to})
	return nil
}

// All returns every block currently stored, in unspecified order. Callers
// that need determinism (snapshotting) should sort by position themselves.
func (g *Grid) All() []block.Block {
	out := make([]block.Block, 0, len(g.blocks)-len(g.free))
	for _, b := range g.blocks {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}

func (g *Grid) alloc() int {
	if n := len(g.free); n > 0 {
		slot := g.free[n-1]
		g.free = g.free[:n-1]
		return slot
	}
	g.blocks = append(g.blocks, nil)
	return len(g.blocks) - 1
}

func (g *Grid) notify(c Change) {
	if g.Hook != nil {
		g.Hook(c)
	}
}
