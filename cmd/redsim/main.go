// Command redsim is a thin scripting front-end over the simulation engine:
// it loads a JSON snapshot, applies one mutation or query, saves the
// snapshot back out, and prints the result. It has no interactive mode and
// does not render the grid — that is left to an external visualizer
// shelling out to this binary.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var statePath, configPath, logLevel string

	root := &cobra.Command{
		Use:           "redsim",
		Short:         "drive a redstone simulation engine from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&statePath, "state", "redsim.json", "path to the snapshot file")
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional TOML engine config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the config's log level (debug, info, warn, error)")

	env := &cliEnv{statePath: &statePath, configPath: &configPath, logLevel: &logLevel}

	root.AddCommand(
		placeCmd(env),
		removeCmd(env),
		interactCmd(env),
		tickCmd(env),
		setEntityCountCmd(env),
		getCmd(env),
		allBlocksCmd(env),
		currentTickCmd(env),
	)
	return root
}

// cliEnv carries the persistent flag values every subcommand needs to open
// the engine against the right state file and config.
type cliEnv struct {
	statePath, configPath, logLevel *string
}

func (e *cliEnv) logger() *slog.Logger {
	level := slog.LevelInfo
	switch *e.logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
