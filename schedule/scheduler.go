// Package schedule implements the kernel's two scheduling structures (spec
// §4.2): an in-tick update queue and a future-tick schedule, driven by a
// single-threaded Scheduler. Unlike the teacher's chunk-sharded
// router/worker pair (which exists to distribute load across goroutines
// per chunk), this kernel has no chunk boundary and no concurrency (spec
// §5: "Single-threaded cooperative simulation. There is no parallelism
// inside the kernel."), so the scheduler here is a plain queue plus a map
// from future tick to the set of positions due at that tick.
package schedule

import (
	"log/slog"

	"github.com/voxred/redstone/voxel"
)

// Scheduler owns the update queue and the future schedule and advances the
// tick counter.
type Scheduler struct {
	log *slog.Logger

	currentTick int64

	pending map[voxel.Vector]struct{}
	order   []voxel.Vector

	future map[int64]map[voxel.Vector]struct{}
}

// New creates an empty Scheduler. A nil logger is replaced with
// slog.Default(), matching the teacher's nil-safe component construction.
func New(log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		log:     log,
		pending: make(map[voxel.Vector]struct{}),
		future:  make(map[int64]map[voxel.Vector]struct{}),
	}
}

// CurrentTick returns the tick the scheduler last advanced to.
func (s *Scheduler) CurrentTick() int64 { return s.currentTick }

// Enqueue inserts p into the current update queue if it is not already
// pending.
func (s *Scheduler) Enqueue(p voxel.Vector) {
	if _, ok := s.pending[p]; ok {
		return
	}
	s.pending[p] = struct{}{}
	s.order = append(s.order, p)
}

// Trigger inserts p and all six of its neighbours into the update queue
// (spec §4.2 trigger(p)).
func (s *Scheduler) Trigger(p voxel.Vector) {
	s.Enqueue(p)
	for _, n := range p.Neighbours() {
		s.Enqueue(n)
	}
}

// Schedule arranges for p to be enqueued when tick t is reached (spec §4.2
// schedule(t, p)). t must be strictly greater than the current tick; a
// caller scheduling into the past or present is a programmer error (spec
// §7.4 internal invariant violations fail fast).
func (s *Scheduler) Schedule(t int64, p voxel.Vector) {
	if t <= s.currentTick {
		panic("schedule: cannot schedule at or before the current tick")
	}
	set, ok := s.future[t]
	if !ok {
		set = make(map[voxel.Vector]struct{})
		s.future[t] = set
	}
	set[p] = struct{}{}
}

// Cancel removes a pending future-schedule entry for p at tick t, if any
// (used by repeaters, comparators, torches and pistons to supersede a
// stale scheduled change, spec §4.5 "cancel it").
func (s *Scheduler) Cancel(t int64, p voxel.Vector) {
	if set, ok := s.future[t]; ok {
		delete(set, p)
		if len(set) == 0 {
			delete(s.future, t)
		}
	}
}

// Pending reports whether p currently sits in the update queue.
func (s *Scheduler) Pending(p voxel.Vector) bool {
	_, ok := s.pending[p]
	return ok
}

// Advance increments the tick counter to t and moves every position
// scheduled for exactly t into the update queue (spec §4.2 tick() step 2,
// §5 ordering guarantee step 1-2). t must be s.currentTick+1 or greater;
// the simulation engine always calls it with currentTick+1.
func (s *Scheduler) Advance(t int64) {
	s.currentTick = t
	if set, ok := s.future[t]; ok {
		for p := range set {
			s.Enqueue(p)
		}
		delete(s.future, t)
	}
}

// Drain repeatedly snapshots the update queue, clears it, and invokes
// process for every position in the snapshot, until the queue is empty
// (spec §4.2 tick(), §5 ordering guarantee step 3). process may re-enqueue
// positions (directly or via Trigger/Schedule-into-this-tick) which will be
// picked up by a subsequent round; per-position update functions must be
// idempotent when inputs are unchanged for this to converge (spec §4.2).
func (s *Scheduler) Drain(process func(p voxel.Vector)) {
	for len(s.order) > 0 {
		round := s.order
		s.order = nil
		s.pending = make(map[voxel.Vector]struct{})
		for _, p := range round {
			process(p)
		}
	}
}

// FutureTicks returns every tick with at least one pending scheduled
// position, in unspecified order, for snapshotting and for checking the
// schedule invariant (spec
// §8: every (t,p) has t > current-tick or is being drained this tick).
func (s *Scheduler) FutureTicks() []int64 {
	ticks := make([]int64, 0, len(s.future))
	for t := range s.future {
		ticks = append(ticks, t)
	}
	return ticks
}

// FutureAt returns the positions scheduled for tick t, for snapshotting.
func (s *Scheduler) FutureAt(t int64) []voxel.Vector {
	set, ok := s.future[t]
	if !ok {
		return nil
	}
	out := make([]voxel.Vector, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	return out
}

// LoadFuture installs a future-schedule entry directly, used when
// restoring a snapshot (spec §6 Snapshot).
func (s *Scheduler) LoadFuture(t int64, positions []voxel.Vector) {
	if len(positions) == 0 {
		return
	}
	set, ok := s.future[t]
	if !ok {
		set = make(map[voxel.Vector]struct{}, len(positions))
		s.future[t] = set
	}
	for _, p := range positions {
		set[p] = struct{}{}
	}
}

// SetCurrentTick restores the tick counter without touching the future
// schedule, used when loading a snapshot.
func (s *Scheduler) SetCurrentTick(t int64) { s.currentTick = t }
