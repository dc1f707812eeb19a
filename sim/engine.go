// Package sim implements the kernel's simulation loop (spec §4.2, §5, §6):
// the Engine ties grid, schedule and power together behind the external
// interface (place, remove, interact, set-entity-count, tick, get,
// all-blocks, current-tick) and owns every per-variant update procedure.
// Grounded on the teacher's server/world/redstone system.go (the component
// that wires scheduler+graph+processor behind a single entry point) and
// tick.go (the per-tick driving loop), generalised from chunk-sharded
// concurrency to this kernel's single-threaded model (spec §5).
package sim

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/grid"
	"github.com/voxred/redstone/power"
	"github.com/voxred/redstone/schedule"
	"github.com/voxred/redstone/voxel"
)

// Engine is the simulation kernel: a sparse grid of blocks driven by a
// single-threaded update queue and future schedule.
type Engine struct {
	log *slog.Logger
	id  uuid.UUID
	cfg Config

	grid  *grid.Grid
	sched *schedule.Scheduler
}

// New constructs an Engine. A nil logger falls back to slog.Default(); the
// engine tags every log line with a generated instance id the way the
// teacher's server tags logs with a listener address, for correlating
// multiple concurrent engine instances in a host process's logs.
func New(cfg Config, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	cfg = cfg.withDefaults()
	id := uuid.New()
	log = log.With(slog.String("engine", id.String()))

	e := &Engine{
		log:   log,
		id:    id,
		cfg:   cfg,
		grid:  grid.New(),
		sched: schedule.New(log),
	}
	e.grid.Hook = e.onGridChange
	return e
}

// ID returns the engine's generated instance identifier.
func (e *Engine) ID() uuid.UUID { return e.id }

// CurrentTick returns the tick the simulation has advanced to (spec §6
// current-tick).
func (e *Engine) CurrentTick() int64 { return e.sched.CurrentTick() }

// Get returns the block at pos, if any (spec §6 get(position)).
func (e *Engine) Get(pos voxel.Vector) (block.Block, bool) { return e.grid.At(pos) }

// AllBlocks returns every block currently in the grid, in unspecified order
// (spec §6 all-blocks()).
func (e *Engine) AllBlocks() []block.Block { return e.grid.All() }

// Place inserts b at its own position (spec §6 place(position, kind)). Any
// Scheduled*/pending fields the caller set on b are reset, since a freshly
// placed block cannot already have an in-flight schedule entry. A repeater
// placed with an out-of-range Delay is normalized to the default 2 rather
// than carrying a zero value into the scheduler. The placement then drains
// to convergence before returning (spec §5, §6: place/remove/interact/
// set-entity-count each enqueue updates and settle before returning).
func (e *Engine) Place(b block.Block) error {
	resetSchedule(b)
	normalizeRepeaterDelay(b)
	if err := e.grid.Place(b); err != nil {
		return err
	}
	e.sched.Drain(e.update)
	return nil
}

// normalizeRepeaterDelay clamps a freshly placed repeater's Delay into the
// valid {2,4,6,8} set; a caller-supplied zero value would otherwise schedule
// its first toggle at tick+0, which the scheduler rejects as scheduling into
// the past (spec §4.5 Delay).
func normalizeRepeaterDelay(b block.Block) {
	r, ok := b.(*block.Repeater)
	if !ok {
		return
	}
	switch r.Delay {
	case 2, 4, 6, 8:
	default:
		r.Delay = 2
	}
}

// Remove deletes the block at pos, if any, and drains to convergence (spec
// §6 remove(position)).
func (e *Engine) Remove(pos voxel.Vector) {
	e.grid.Remove(pos)
	e.sched.Drain(e.update)
}

// LoadBlock inserts b at its own position without touching its Scheduled*/
// pending fields, used by package snapshot to restore a block exactly as
// it was captured, in-flight schedule state included.
func (e *Engine) LoadBlock(b block.Block) error { return e.grid.Place(b) }

// FutureTicks returns every tick with at least one pending scheduled
// position, for snapshotting (spec §6 Snapshot).
func (e *Engine) FutureTicks() []int64 { return e.sched.FutureTicks() }

// FutureAt returns the positions scheduled for tick t, for snapshotting.
func (e *Engine) FutureAt(t int64) []voxel.Vector { return e.sched.FutureAt(t) }

// LoadFuture installs a future-schedule entry directly, used when
// restoring a snapshot.
func (e *Engine) LoadFuture(t int64, positions []voxel.Vector) { e.sched.LoadFuture(t, positions) }

// SetCurrentTick restores the tick counter without touching the future
// schedule, used when loading a snapshot.
func (e *Engine) SetCurrentTick(t int64) { e.sched.SetCurrentTick(t) }

// Interact applies the player-facing toggle for the block at pos: flips a
// lever, presses a button, cycles a repeater's delay, toggles a
// comparator's mode, or flips a dust's shape (spec §4.5, §4.6, §4.10
// Interact). Blocks with no interact behaviour return ErrNotInteractable.
// Pressing an already-pressed button returns ErrAlreadyPressed rather than
// silently ignoring the press (spec §6, §7.1).
func (e *Engine) Interact(pos voxel.Vector) error {
	b, ok := e.grid.At(pos)
	if !ok {
		return ErrNoBlockAt
	}
	switch v := b.(type) {
	case *block.Lever:
		v.On = !v.On
		e.sched.Trigger(pos)
		e.notifyObservers(pos)
	case *block.Button:
		if v.Pressed {
			return ErrAlreadyPressed
		}
		v.Pressed = true
		v.ScheduledRelease = e.sched.CurrentTick() + v.Variant.ReleaseDelay()
		e.sched.Schedule(v.ScheduledRelease, pos)
		e.sched.Trigger(pos)
		e.notifyObservers(pos)
	case *block.Repeater:
		v.CycleDelay()
		e.sched.Trigger(pos)
		e.notifyObservers(pos)
	case *block.Comparator:
		v.ToggleMode()
		e.sched.Trigger(pos)
	case *block.Dust:
		if v.Shape == block.ShapeCross {
			v.Shape = block.ShapeDot
		} else {
			v.Shape = block.ShapeCross
		}
		e.sched.Trigger(pos)
	default:
		return ErrNotInteractable
	}
	e.sched.Drain(e.update)
	return nil
}

// SetEntityCount reports the number of entities currently standing on the
// pressure plate at pos (spec §6 set-entity-count(position, count)).
func (e *Engine) SetEntityCount(pos voxel.Vector, count int) error {
	b, ok := e.grid.At(pos)
	if !ok {
		return ErrNoBlockAt
	}
	plate, isPlate := b.(*block.PressurePlate)
	if !isPlate {
		return ErrNotPlate
	}
	plate.EntityCount = count
	e.sched.Trigger(pos)
	e.sched.Drain(e.update)
	return nil
}

// Tick advances the simulation by n game ticks (spec §6 tick(n), §4.2
// tick(), §5 ordering guarantee). Each of the n ticks advances the future
// schedule by one and drains the update queue to convergence before the
// next tick begins.
func (e *Engine) Tick(n int) {
	for i := 0; i < n; i++ {
		e.sched.Advance(e.sched.CurrentTick() + 1)
		e.sched.Drain(e.update)
	}
}

// onGridChange is the grid.Grid Hook: every placement, removal or move
// triggers the changed position and its neighbours for re-evaluation, and
// notifies any observer watching the changed cell (spec §4.8 Trigger).
func (e *Engine) onGridChange(c grid.Change) {
	e.sched.Trigger(c.Pos)
	e.notifyObservers(c.Pos)
}

// update is the scheduler's single per-position dispatch point (spec §9
// design note: one type-switch match point in the simulation layer). It
// first checks structural validity, then dispatches to the per-variant
// update procedure.
func (e *Engine) update(pos voxel.Vector) {
	b, ok := e.grid.At(pos)
	if !ok {
		return
	}
	if b.ShouldDrop(e.grid) {
		e.grid.Remove(pos)
		return
	}
	switch v := b.(type) {
	case *block.Dust:
		e.updateDust(v)
	case *block.Button:
		e.updateButton(v)
	case *block.Torch:
		e.updateTorch(v)
	case *block.Repeater:
		e.updateRepeater(v)
	case *block.Comparator:
		e.updateComparator(v)
	case *block.Observer:
		e.updateObserver(v)
	case *block.PressurePlate:
		e.updatePlate(v)
	case *block.Piston:
		e.updatePiston(v)
	case *block.Solid:
		e.updateConductor(pos, &v.State)
	case *block.Slime:
		e.updateConductor(pos, &v.State)
	}
}

// updateConductor recomputes a Solid/Slime block's power state (spec §3
// Block table: conducting blocks track strong/weak/unpowered).
func (e *Engine) updateConductor(pos voxel.Vector, state *block.PowerState) {
	var next block.PowerState
	switch {
	case power.ReceivesStrongPower(e.grid, pos):
		next = block.StronglyPowered
	case power.ReceivesWeakPower(e.grid, pos):
		next = block.WeaklyPowered
	default:
		next = block.Unpowered
	}
	if next != *state {
		*state = next
		e.sched.Trigger(pos)
		e.notifyObservers(pos)
	}
}

// resetSchedule clears every Scheduled*/pending field on a block being
// freshly placed, so a caller can't hand the engine a block carrying stale
// schedule state from a previous grid.
func resetSchedule(b block.Block) {
	switch v := b.(type) {
	case *block.Torch:
		v.ScheduledToggle = -1
	case *block.Button:
		v.ScheduledRelease = -1
	case *block.Repeater:
		v.ScheduledOutput = -1
	case *block.Comparator:
		v.ScheduledOutput = -1
	case *block.Observer:
		v.ScheduledPulseStart = -1
		v.ScheduledPulseEnd = -1
	case *block.PressurePlate:
		v.ScheduledCheck = -1
	case *block.Piston:
		v.ActivationTick = -1
		v.ScheduledTransition = -1
	}
}
