package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/voxred/redstone/block"
)

func placeCmd(env *cliEnv) *cobra.Command {
	var f blockFlags
	cmd := &cobra.Command{
		Use:   "place <kind> <x> <y> <z>",
		Short: "place a block at a position",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePos(args[1:])
			if err != nil {
				return err
			}
			b, err := newBlock(args[0], pos, f)
			if err != nil {
				return err
			}
			engine, err := env.openEngine()
			if err != nil {
				return err
			}
			if err := engine.Place(b); err != nil {
				return err
			}
			return env.saveEngine(engine)
		},
	}
	cmd.Flags().StringVar(&f.face, "face", "", "attachment face for lever/button/torch (e.g. -y, +x)")
	cmd.Flags().StringVar(&f.facing, "facing", "", "output direction for repeater/comparator/observer/piston")
	cmd.Flags().BoolVar(&f.on, "on", false, "initial lever state")
	cmd.Flags().BoolVar(&f.sticky, "sticky", false, "treat a piston as sticky")
	cmd.Flags().IntVar(&f.delay, "delay", 0, "repeater delay in ticks (2, 4, 6 or 8; default 2)")
	cmd.Flags().StringVar(&f.variant, "variant", "", "button (stone|wood) or pressure plate (wood|stone|light|heavy) variant")
	cmd.Flags().StringVar(&f.mode, "mode", "", "comparator mode (comparison|subtraction)")
	return cmd
}

func removeCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <x> <y> <z>",
		Short: "remove the block at a position, if any",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePos(args)
			if err != nil {
				return err
			}
			engine, err := env.openEngine()
			if err != nil {
				return err
			}
			engine.Remove(pos)
			return env.saveEngine(engine)
		},
	}
}

func interactCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "interact <x> <y> <z>",
		Short: "apply the player-facing toggle for the block at a position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePos(args)
			if err != nil {
				return err
			}
			engine, err := env.openEngine()
			if err != nil {
				return err
			}
			if err := engine.Interact(pos); err != nil {
				return err
			}
			return env.saveEngine(engine)
		},
	}
}

func tickCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "tick [n]",
		Short: "advance the simulation by n ticks (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 1
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("tick count %q: %w", args[0], err)
				}
				n = v
			}
			engine, err := env.openEngine()
			if err != nil {
				return err
			}
			engine.Tick(n)
			if err := env.saveEngine(engine); err != nil {
				return err
			}
			fmt.Println(engine.CurrentTick())
			return nil
		},
	}
}

func setEntityCountCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "set-entity-count <x> <y> <z> <count>",
		Short: "report the occupant count for a pressure plate",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePos(args[:3])
			if err != nil {
				return err
			}
			count, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("count %q: %w", args[3], err)
			}
			engine, err := env.openEngine()
			if err != nil {
				return err
			}
			if err := engine.SetEntityCount(pos, count); err != nil {
				return err
			}
			return env.saveEngine(engine)
		},
	}
}

func getCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "get <x> <y> <z>",
		Short: "print the block at a position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePos(args)
			if err != nil {
				return err
			}
			engine, err := env.openEngine()
			if err != nil {
				return err
			}
			b, ok := engine.Get(pos)
			if !ok {
				fmt.Println("empty")
				return nil
			}
			fmt.Println(describeBlock(b))
			return nil
		},
	}
}

func allBlocksCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "all-blocks",
		Short: "list every block currently in the grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := env.openEngine()
			if err != nil {
				return err
			}
			for _, b := range engine.AllBlocks() {
				fmt.Println(describeBlock(b))
			}
			return nil
		},
	}
}

func currentTickCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "current-tick",
		Short: "print the current tick counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := env.openEngine()
			if err != nil {
				return err
			}
			fmt.Println(engine.CurrentTick())
			return nil
		},
	}
}

// describeBlock formats a single block as a one-line summary for scripting
// use; it is not a grid renderer, just a readable query result.
func describeBlock(b block.Block) string {
	pos := b.Position()
	switch v := b.(type) {
	case *block.Solid:
		return fmt.Sprintf("%v solid state=%d", pos, v.State)
	case *block.Slime:
		return fmt.Sprintf("%v slime state=%d", pos, v.State)
	case *block.RedstoneBlock:
		return fmt.Sprintf("%v redstone_block", pos)
	case *block.Dust:
		return fmt.Sprintf("%v dust signal=%d shape=%d", pos, v.Signal, v.Shape)
	case *block.Lever:
		return fmt.Sprintf("%v lever on=%t face=%v", pos, v.On, v.Face)
	case *block.Button:
		return fmt.Sprintf("%v button pressed=%t", pos, v.Pressed)
	case *block.Torch:
		return fmt.Sprintf("%v torch lit=%t burned_out=%t", pos, v.Lit, v.BurnedOut)
	case *block.Repeater:
		return fmt.Sprintf("%v repeater facing=%v delay=%d output=%t locked=%t", pos, v.Facing, v.Delay, v.OutputOn, v.Locked)
	case *block.Comparator:
		return fmt.Sprintf("%v comparator facing=%v output=%d", pos, v.Facing, v.OutputSignal)
	case *block.Observer:
		return fmt.Sprintf("%v observer facing=%v output=%t", pos, v.Facing, v.OutputOn)
	case *block.Piston:
		return fmt.Sprintf("%v %s facing=%v extended=%t", pos, v.Kind(), v.Facing, v.Extended)
	case *block.PressurePlate:
		return fmt.Sprintf("%v pressure_plate entities=%d active=%t", pos, v.EntityCount, v.Active)
	default:
		return fmt.Sprintf("%v unknown", pos)
	}
}
