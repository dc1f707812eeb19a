package sim

import (
	"sort"

	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/power"
	"github.com/voxred/redstone/voxel"
)

// pistonActivationDelay and pistonCompletionDelay fix the piston's
// extend/retract transition timing (spec §4.9 State machine): a transition
// starting at tick now sets its activation-tick to now+pistonActivationDelay
// and completes at now+pistonCompletionDelay.
const (
	pistonActivationDelay = 1
	pistonCompletionDelay = 3
)

// updatePiston advances the piston's extend/retract state machine against
// its quasi-connected activation state (spec §4.9).
func (e *Engine) updatePiston(p *block.Piston) {
	activated := power.PistonActivated(e.grid, p.Pos, p.Facing)
	tick := e.sched.CurrentTick()

	switch p.State {
	case block.PistonRetracted:
		if activated {
			e.beginPistonTransition(p, block.PistonExtending, tick)
		}
	case block.PistonExtended:
		if !activated {
			e.beginPistonTransition(p, block.PistonRetracting, tick)
		}
	case block.PistonExtending:
		if !activated && tick <= p.ActivationTick {
			e.abortPistonExtension(p)
			return
		}
		if tick >= p.ScheduledTransition {
			e.completeExtend(p)
		}
	case block.PistonRetracting:
		if tick >= p.ScheduledTransition {
			e.completeRetract(p)
		}
	}
}

// beginPistonTransition starts an extend or retract transition (spec §4.9
// State machine: retracted -> extending and extended -> retracting both set
// activation-tick to now+1 and schedule completion at now+3).
func (e *Engine) beginPistonTransition(p *block.Piston, next block.PistonState, tick int64) {
	p.State = next
	p.ShortPulse = false
	p.ActivationTick = tick + pistonActivationDelay
	p.ScheduledTransition = tick + pistonCompletionDelay
	e.sched.Schedule(p.ScheduledTransition, p.Pos)
}

// abortPistonExtension handles a short pulse (spec §4.9 Short pulse):
// deactivation arrives while the piston is still extending and at or before
// its own activation tick. The push still executes — the blocks end up at
// their destination — but the piston itself never reaches PistonExtended,
// settling back to retracted with ShortPulse recorded.
func (e *Engine) abortPistonExtension(p *block.Piston) {
	e.sched.Cancel(p.ScheduledTransition, p.Pos)
	p.ScheduledTransition = -1
	p.ActivationTick = -1
	e.performPush(p)
	p.Extended = false
	p.State = block.PistonRetracted
	p.ShortPulse = true
	e.sched.Trigger(p.Pos)
	e.notifyObservers(p.Pos)
}

// completeExtend fires at a pending extension's ScheduledTransition: it
// performs the push and, if the push succeeds, settles the piston into
// PistonExtended (spec §4.9 extending -> extended).
func (e *Engine) completeExtend(p *block.Piston) {
	p.ScheduledTransition = -1
	ok := e.performPush(p)
	p.ActivationTick = -1
	if !ok {
		p.State = block.PistonRetracted
		return
	}
	p.Extended = true
	p.State = block.PistonExtended
	e.sched.Trigger(p.Pos)
	e.notifyObservers(p.Pos)
}

// completeRetract fires at a pending retraction's ScheduledTransition: a
// sticky piston pulls the block now directly in front of its head back with
// it, unless the preceding extension was a short pulse that never produced a
// stable extended state (spec §4.9 retracting -> retracted, Sticky
// retraction).
func (e *Engine) completeRetract(p *block.Piston) {
	if p.Sticky && !p.ShortPulse {
		pulled := p.Pos.Side(p.Facing).Side(p.Facing)
		dest := p.Pos.Side(p.Facing)
		if b, ok := e.grid.At(pulled); ok && block.IsMovable(b) {
			if _, occupied := e.grid.At(dest); !occupied {
				e.grid.Move(pulled, dest)
			}
		}
	}

	p.Extended = false
	p.State = block.PistonRetracted
	p.ActivationTick = -1
	p.ScheduledTransition = -1
	p.ShortPulse = false
	e.sched.Trigger(p.Pos)
	e.notifyObservers(p.Pos)
}

// performPush computes the push (spec §4.9 Push algorithm) and, if it
// succeeds, destroys any fragile blocks in the way and shifts every movable
// block in the cluster one cell along Facing, farthest first.
func (e *Engine) performPush(p *block.Piston) bool {
	move, destroy, ok := e.computePush(p.Pos, p.Facing)
	if !ok {
		return false
	}
	for _, pos := range destroy {
		e.grid.Remove(pos)
	}
	for _, pos := range move {
		e.grid.Move(pos, pos.Side(p.Facing))
	}
	return true
}

// computePush walks outward from the piston's front cell along facing,
// collecting the contiguous chain of movable blocks to shift (spec §4.9
// Movable set) plus, for any slime block encountered, every block stuck to
// its other five faces (spec §4.9 Slime cohesion). Fragile blocks in the
// path are collected separately for destruction rather than movement and
// do not propagate the chain further. A hard obstruction, or a cluster
// exceeding the configured size limit, fails the whole push.
func (e *Engine) computePush(pistonPos voxel.Vector, facing voxel.Direction) (move, destroy []voxel.Vector, ok bool) {
	queued := map[voxel.Vector]bool{}
	movedSet := map[voxel.Vector]bool{}
	destroyedSet := map[voxel.Vector]bool{}

	start := pistonPos.Side(facing)
	queue := []voxel.Vector{start}
	queued[start] = true
	queued[pistonPos] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		b, has := e.grid.At(cur)
		if !has {
			continue
		}
		if block.IsFragile(b) {
			if !destroyedSet[cur] {
				destroyedSet[cur] = true
				destroy = append(destroy, cur)
			}
			continue
		}
		if !block.IsMovable(b) {
			return nil, nil, false
		}
		if movedSet[cur] {
			continue
		}
		movedSet[cur] = true
		move = append(move, cur)
		if len(move) > e.cfg.MaxPistonClusterSize {
			return nil, nil, false
		}

		next := cur.Side(facing)
		if !queued[next] {
			queue = append(queue, next)
			queued[next] = true
		}
		if b.Kind() == block.KindSlime {
			for _, d := range voxel.AllDirections {
				n := cur.Side(d)
				if !queued[n] {
					queue = append(queue, n)
					queued[n] = true
				}
			}
		}
	}

	axis := facing.Vector()
	sort.Slice(move, func(i, j int) bool { return move[i].Dot(axis) > move[j].Dot(axis) })
	return move, destroy, true
}
