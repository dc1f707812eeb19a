// Package snapshot serializes an engine's complete state, every placed
// block and its in-flight schedule included, to a JSON value object and
// back (spec §6 Snapshot). It depends on package sim only for the Engine
// type it reads from and writes to; it has no simulation logic of its own.
package snapshot

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/sim"
	"github.com/voxred/redstone/voxel"
)

// Snapshot is the complete, serializable state of an Engine at a point in
// time: the tick counter, every block in the grid, and every pending
// future-schedule entry (spec §6: "A value object capturing tick, block
// states and the future schedule").
type Snapshot struct {
	Tick   int64         `json:"tick"`
	Blocks []BlockRecord `json:"blocks"`
	Future []FutureEntry `json:"future,omitempty"`
}

// FutureEntry is the set of positions scheduled for a single future tick.
type FutureEntry struct {
	Tick      int64       `json:"tick"`
	Positions []PosRecord `json:"positions"`
}

// PosRecord is a JSON-friendly position, encoded as an object with X, Y
// and Z fields. A named type keeps the wire shape explicit and stable.
type PosRecord struct {
	X, Y, Z int
}

func fromVector(v voxel.Vector) PosRecord { return PosRecord{X: v.X, Y: v.Y, Z: v.Z} }
func (p PosRecord) toVector() voxel.Vector { return voxel.Vec(p.X, p.Y, p.Z) }

// BlockRecord is the flattened field set of every block variant. Only the
// fields relevant to Kind are populated; the rest are left at their zero
// value and omitted by omitempty. One flat struct, rather than one type per
// variant plus a discriminated wrapper, keeps the JSON schema simple at the
// cost of unused fields per record — an acceptable tradeoff for a closed,
// 13-variant catalog.
type BlockRecord struct {
	Kind string    `json:"kind"`
	Pos  PosRecord `json:"pos"`

	// Solid, Slime.
	State uint8 `json:"state,omitempty"`

	// Dust.
	Signal uint8 `json:"signal,omitempty"`
	Shape  uint8 `json:"shape,omitempty"`

	// Lever, Button, Torch: attachment face.
	Face uint8 `json:"face,omitempty"`
	// Lever.
	On bool `json:"on,omitempty"`

	// Button.
	ButtonVariant    uint8 `json:"button_variant,omitempty"`
	Pressed          bool  `json:"pressed,omitempty"`
	ScheduledRelease int64 `json:"scheduled_release,omitempty"`

	// Torch.
	Lit              bool    `json:"lit,omitempty"`
	ScheduledToggle  int64   `json:"scheduled_toggle,omitempty"`
	PendingLit       bool    `json:"pending_lit,omitempty"`
	StateChangeTimes []int64 `json:"state_change_times,omitempty"`
	BurnedOut        bool    `json:"burned_out,omitempty"`

	// Repeater, Comparator, Observer, Piston, StickyPiston: front direction.
	Facing uint8 `json:"facing,omitempty"`

	// Repeater.
	Delay                 int   `json:"delay,omitempty"`
	Powered               bool  `json:"powered,omitempty"`
	Locked                bool  `json:"locked,omitempty"`
	OutputOn              bool  `json:"output_on,omitempty"`
	ScheduledOutput       int64 `json:"scheduled_output,omitempty"`
	RepeaterPendingOutput bool  `json:"repeater_pending_output,omitempty"`

	// Comparator.
	ComparatorMode          uint8 `json:"comparator_mode,omitempty"`
	Rear                    uint8 `json:"rear,omitempty"`
	Left                    uint8 `json:"left,omitempty"`
	Right                   uint8 `json:"right,omitempty"`
	OutputSignal            uint8 `json:"output_signal,omitempty"`
	ComparatorPendingOutput uint8 `json:"comparator_pending_output,omitempty"`

	// Observer.
	ScheduledPulseStart int64 `json:"scheduled_pulse_start,omitempty"`
	ScheduledPulseEnd   int64 `json:"scheduled_pulse_end,omitempty"`

	// Piston, StickyPiston.
	PistonState         uint8 `json:"piston_state,omitempty"`
	Extended            bool  `json:"extended,omitempty"`
	Sticky              bool  `json:"sticky,omitempty"`
	ActivationTick      int64 `json:"activation_tick,omitempty"`
	ScheduledTransition int64 `json:"scheduled_transition,omitempty"`
	ShortPulse          bool  `json:"short_pulse,omitempty"`

	// PressurePlate.
	PlateVariant   uint8 `json:"plate_variant,omitempty"`
	EntityCount    int   `json:"entity_count,omitempty"`
	Active         bool  `json:"active,omitempty"`
	ScheduledCheck int64 `json:"scheduled_check,omitempty"`
}

// Capture builds a Snapshot of e's entire current state.
func Capture(e *sim.Engine) Snapshot {
	all := e.AllBlocks()
	records := make([]BlockRecord, 0, len(all))
	for _, b := range all {
		records = append(records, toRecord(b))
	}
	// Blocks come back from Grid.All in unspecified order; sort for a
	// deterministic, diffable encoding.
	sort.Slice(records, func(i, j int) bool { return records[i].less(records[j]) })

	ticks := e.FutureTicks()
	sort.Slice(ticks, func(i, j int) bool { return ticks[i] < ticks[j] })
	future := make([]FutureEntry, 0, len(ticks))
	for _, t := range ticks {
		positions := e.FutureAt(t)
		sort.Slice(positions, func(i, j int) bool { return vectorLess(positions[i], positions[j]) })
		recs := make([]PosRecord, len(positions))
		for i, p := range positions {
			recs[i] = fromVector(p)
		}
		future = append(future, FutureEntry{Tick: t, Positions: recs})
	}

	return Snapshot{Tick: e.CurrentTick(), Blocks: records, Future: future}
}

// Restore populates e with the state in s. e must be empty: Restore loads
// blocks directly into the grid and does not attempt to merge with
// whatever e already contains.
func (s Snapshot) Restore(e *sim.Engine) error {
	for _, rec := range s.Blocks {
		b, err := rec.toBlock()
		if err != nil {
			return err
		}
		if err := e.LoadBlock(b); err != nil {
			return fmt.Errorf("snapshot: restore %v: %w", rec.Pos.toVector(), err)
		}
	}
	for _, f := range s.Future {
		positions := make([]voxel.Vector, len(f.Positions))
		for i, p := range f.Positions {
			positions[i] = p.toVector()
		}
		e.LoadFuture(f.Tick, positions)
	}
	e.SetCurrentTick(s.Tick)
	return nil
}

// Encode marshals s to JSON.
func (s Snapshot) Encode() ([]byte, error) { return json.Marshal(s) }

// Decode unmarshals JSON produced by Encode into a Snapshot.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// EncodeBase64 marshals s to JSON and then URL-safe base64, for embedding
// a snapshot in a single text field (a URL, an environment variable, a
// single line of a log).
func (s Snapshot) EncodeBase64() (string, error) {
	data, err := s.Encode()
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// DecodeBase64 reverses EncodeBase64.
func DecodeBase64(s string) (Snapshot, error) {
	data, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return Snapshot{}, err
	}
	return Decode(data)
}

func (r BlockRecord) less(o BlockRecord) bool {
	return vectorLess(r.Pos.toVector(), o.Pos.toVector())
}

func vectorLess(a, b voxel.Vector) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

func toRecord(b block.Block) BlockRecord {
	pos := fromVector(b.Position())
	switch v := b.(type) {
	case *block.Solid:
		return BlockRecord{Kind: block.KindSolid.String(), Pos: pos, State: uint8(v.State)}
	case *block.Slime:
		return BlockRecord{Kind: block.KindSlime.String(), Pos: pos, State: uint8(v.State)}
	case *block.RedstoneBlock:
		return BlockRecord{Kind: block.KindRedstoneBlock.String(), Pos: pos}
	case *block.Dust:
		return BlockRecord{Kind: block.KindDust.String(), Pos: pos, Signal: v.Signal, Shape: uint8(v.Shape)}
	case *block.Lever:
		return BlockRecord{Kind: block.KindLever.String(), Pos: pos, Face: uint8(v.Face), On: v.On}
	case *block.Button:
		return BlockRecord{
			Kind: block.KindButton.String(), Pos: pos,
			ButtonVariant: uint8(v.Variant), Face: uint8(v.Face),
			Pressed: v.Pressed, ScheduledRelease: v.ScheduledRelease,
		}
	case *block.Torch:
		return BlockRecord{
			Kind: block.KindTorch.String(), Pos: pos,
			Face: uint8(v.Face), Lit: v.Lit,
			ScheduledToggle: v.ScheduledToggle, PendingLit: v.PendingLit,
			StateChangeTimes: append([]int64(nil), v.StateChangeTimes...),
			BurnedOut:        v.BurnedOut,
		}
	case *block.Repeater:
		return BlockRecord{
			Kind: block.KindRepeater.String(), Pos: pos,
			Facing: uint8(v.Facing), Delay: v.Delay, Powered: v.Powered,
			Locked: v.Locked, OutputOn: v.OutputOn,
			ScheduledOutput: v.ScheduledOutput, RepeaterPendingOutput: v.PendingOutput,
		}
	case *block.Comparator:
		return BlockRecord{
			Kind: block.KindComparator.String(), Pos: pos,
			Facing: uint8(v.Facing), ComparatorMode: uint8(v.Mode),
			Rear: v.Rear, Left: v.Left, Right: v.Right,
			OutputSignal: v.OutputSignal, ScheduledOutput: v.ScheduledOutput,
			ComparatorPendingOutput: v.PendingOutput,
		}
	case *block.Observer:
		return BlockRecord{
			Kind: block.KindObserver.String(), Pos: pos,
			Facing: uint8(v.Facing), OutputOn: v.OutputOn,
			ScheduledPulseStart: v.ScheduledPulseStart, ScheduledPulseEnd: v.ScheduledPulseEnd,
		}
	case *block.Piston:
		return BlockRecord{
			Kind: v.Kind().String(), Pos: pos,
			Facing: uint8(v.Facing), PistonState: uint8(v.State),
			Extended: v.Extended, Sticky: v.Sticky,
			ActivationTick: v.ActivationTick, ScheduledTransition: v.ScheduledTransition,
			ShortPulse: v.ShortPulse,
		}
	case *block.PressurePlate:
		return BlockRecord{
			Kind: block.KindPressurePlate.String(), Pos: pos,
			PlateVariant: uint8(v.Variant), EntityCount: v.EntityCount,
			Active: v.Active, ScheduledCheck: v.ScheduledCheck,
		}
	default:
		panic(fmt.Sprintf("snapshot: unhandled block type %T", b))
	}
}

func (r BlockRecord) toBlock() (block.Block, error) {
	pos := r.Pos.toVector()
	base := block.Base{Pos: pos}
	switch r.Kind {
	case block.KindSolid.String():
		return &block.Solid{Base: base, State: block.PowerState(r.State)}, nil
	case block.KindSlime.String():
		return &block.Slime{Base: base, State: block.PowerState(r.State)}, nil
	case block.KindRedstoneBlock.String():
		return &block.RedstoneBlock{Base: base}, nil
	case block.KindDust.String():
		return &block.Dust{Base: base, Signal: r.Signal, Shape: block.DustShape(r.Shape)}, nil
	case block.KindLever.String():
		return &block.Lever{Base: base, Face: voxel.Direction(r.Face), On: r.On}, nil
	case block.KindButton.String():
		return &block.Button{
			Base: base, Variant: block.ButtonVariant(r.ButtonVariant), Face: voxel.Direction(r.Face),
			Pressed: r.Pressed, ScheduledRelease: r.ScheduledRelease,
		}, nil
	case block.KindTorch.String():
		return &block.Torch{
			Base: base, Face: voxel.Direction(r.Face), Lit: r.Lit,
			ScheduledToggle: r.ScheduledToggle, PendingLit: r.PendingLit,
			StateChangeTimes: append([]int64(nil), r.StateChangeTimes...),
			BurnedOut:        r.BurnedOut,
		}, nil
	case block.KindRepeater.String():
		return &block.Repeater{
			Base: base, Facing: voxel.Direction(r.Facing), Delay: r.Delay,
			Powered: r.Powered, Locked: r.Locked, OutputOn: r.OutputOn,
			ScheduledOutput: r.ScheduledOutput, PendingOutput: r.RepeaterPendingOutput,
		}, nil
	case block.KindComparator.String():
		return &block.Comparator{
			Base: base, Facing: voxel.Direction(r.Facing), Mode: block.ComparatorMode(r.ComparatorMode),
			Rear: r.Rear, Left: r.Left, Right: r.Right,
			OutputSignal: r.OutputSignal, ScheduledOutput: r.ScheduledOutput,
			PendingOutput: r.ComparatorPendingOutput,
		}, nil
	case block.KindObserver.String():
		return &block.Observer{
			Base: base, Facing: voxel.Direction(r.Facing), OutputOn: r.OutputOn,
			ScheduledPulseStart: r.ScheduledPulseStart, ScheduledPulseEnd: r.ScheduledPulseEnd,
		}, nil
	case block.KindPiston.String(), block.KindStickyPiston.String():
		return &block.Piston{
			Base: base, Facing: voxel.Direction(r.Facing), State: block.PistonState(r.PistonState),
			Extended: r.Extended, Sticky: r.Kind == block.KindStickyPiston.String(),
			ActivationTick: r.ActivationTick, ScheduledTransition: r.ScheduledTransition,
			ShortPulse: r.ShortPulse,
		}, nil
	case block.KindPressurePlate.String():
		return &block.PressurePlate{
			Base: base, Variant: block.PlateVariant(r.PlateVariant), EntityCount: r.EntityCount,
			Active: r.Active, ScheduledCheck: r.ScheduledCheck,
		}, nil
	default:
		return nil, fmt.Errorf("snapshot: unknown block kind %q", r.Kind)
	}
}
