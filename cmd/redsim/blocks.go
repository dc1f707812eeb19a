package main

import (
	"fmt"
	"strconv"

	"github.com/voxred/redstone/block"
	"github.com/voxred/redstone/voxel"
)

func parsePos(args []string) (voxel.Vector, error) {
	if len(args) != 3 {
		return voxel.Vector{}, fmt.Errorf("expected 3 coordinates (x y z), got %d", len(args))
	}
	var c [3]int
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return voxel.Vector{}, fmt.Errorf("coordinate %q: %w", a, err)
		}
		c[i] = v
	}
	return voxel.Vec(c[0], c[1], c[2]), nil
}

func parseDirection(s string) (voxel.Direction, error) {
	switch s {
	case "+x", "posx":
		return voxel.PosX, nil
	case "-x", "negx":
		return voxel.NegX, nil
	case "+y", "posy", "up":
		return voxel.PosY, nil
	case "-y", "negy", "down":
		return voxel.NegY, nil
	case "+z", "posz":
		return voxel.PosZ, nil
	case "-z", "negz":
		return voxel.NegZ, nil
	default:
		return 0, fmt.Errorf("unrecognised direction %q (want one of +x -x +y -y +z -z)", s)
	}
}

// blockFlags holds every optional attribute any variant's place command
// might supply; only the ones relevant to --kind are read.
type blockFlags struct {
	face, facing string
	on           bool
	sticky       bool
	delay        int
	variant      string
	mode         string
}

// newBlock constructs the concrete block for kind at pos from the flags
// supplied on the command line, applying each variant's own zero-value
// defaults for anything left unset.
func newBlock(kind string, pos voxel.Vector, f blockFlags) (block.Block, error) {
	base := block.Base{Pos: pos}
	switch kind {
	case "solid":
		return &block.Solid{Base: base}, nil
	case "slime":
		return &block.Slime{Base: base}, nil
	case "redstone_block":
		return &block.RedstoneBlock{Base: base}, nil
	case "dust":
		return &block.Dust{Base: base}, nil
	case "lever":
		face, err := faceOrDefault(f.face, voxel.NegY)
		if err != nil {
			return nil, err
		}
		return &block.Lever{Base: base, Face: face, On: f.on}, nil
	case "button":
		face, err := faceOrDefault(f.face, voxel.NegY)
		if err != nil {
			return nil, err
		}
		variant := block.ButtonStone
		if f.variant == "wood" {
			variant = block.ButtonWood
		}
		return &block.Button{Base: base, Variant: variant, Face: face, ScheduledRelease: -1}, nil
	case "torch":
		face, err := faceOrDefault(f.face, voxel.NegY)
		if err != nil {
			return nil, err
		}
		return &block.Torch{Base: base, Face: face, ScheduledToggle: -1}, nil
	case "repeater":
		facing, err := faceOrDefault(f.facing, voxel.PosX)
		if err != nil {
			return nil, err
		}
		delay := f.delay
		if delay == 0 {
			delay = 2
		}
		return &block.Repeater{Base: base, Facing: facing, Delay: delay, ScheduledOutput: -1}, nil
	case "comparator":
		facing, err := faceOrDefault(f.facing, voxel.PosX)
		if err != nil {
			return nil, err
		}
		mode := block.ComparatorComparison
		if f.mode == "subtraction" {
			mode = block.ComparatorSubtraction
		}
		return &block.Comparator{Base: base, Facing: facing, Mode: mode, ScheduledOutput: -1}, nil
	case "observer":
		facing, err := faceOrDefault(f.facing, voxel.PosX)
		if err != nil {
			return nil, err
		}
		return &block.Observer{Base: base, Facing: facing, ScheduledPulseStart: -1, ScheduledPulseEnd: -1}, nil
	case "piston", "sticky_piston":
		facing, err := faceOrDefault(f.facing, voxel.PosX)
		if err != nil {
			return nil, err
		}
		return &block.Piston{Base: base, Facing: facing, Sticky: kind == "sticky_piston" || f.sticky, ActivationTick: -1}, nil
	case "pressure_plate":
		variant := plateVariant(f.variant)
		return &block.PressurePlate{Base: base, Variant: variant, ScheduledCheck: -1}, nil
	default:
		return nil, fmt.Errorf("unknown block kind %q", kind)
	}
}

func faceOrDefault(s string, def voxel.Direction) (voxel.Direction, error) {
	if s == "" {
		return def, nil
	}
	return parseDirection(s)
}

func plateVariant(s string) block.PlateVariant {
	switch s {
	case "stone":
		return block.PlateStone
	case "light":
		return block.PlateLight
	case "heavy":
		return block.PlateHeavy
	default:
		return block.PlateWood
	}
}
