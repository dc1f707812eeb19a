package main

import (
	"fmt"
	"os"

	"github.com/voxred/redstone/sim"
	"github.com/voxred/redstone/snapshot"
)

// openEngine loads the config (if any) and the snapshot at statePath (if
// it exists), returning a ready-to-use Engine. A missing state file yields
// a freshly constructed empty engine rather than an error, so the first
// `place` on a new project doesn't need a separate `init` step.
func (e *cliEnv) openEngine() (*sim.Engine, error) {
	cfg := sim.Config{}
	if *e.configPath != "" {
		loaded, err := sim.LoadConfig(*e.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if *e.logLevel == "" {
		*e.logLevel = cfg.LogLevel
	}

	engine := sim.New(cfg, e.logger())

	data, err := os.ReadFile(*e.statePath)
	if os.IsNotExist(err) {
		return engine, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	snap, err := snapshot.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	if err := snap.Restore(engine); err != nil {
		return nil, fmt.Errorf("restore state: %w", err)
	}
	return engine, nil
}

// saveEngine captures the engine's current state and writes it to
// statePath, overwriting whatever was there.
func (e *cliEnv) saveEngine(engine *sim.Engine) error {
	data, err := snapshot.Capture(engine).Encode()
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(*e.statePath, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}
