package sim

import (
	"os"

	"github.com/pelletier/go-toml"
)

// Config holds engine tuning knobs loadable from a TOML file, mirroring the
// teacher's server.LoadWhitelist TOML-loading convention.
type Config struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
	// MaxPistonClusterSize caps how many blocks a single piston push may
	// move in one extension before the push is refused (spec §4.9 Cluster
	// limit; vanilla Minecraft uses 12).
	MaxPistonClusterSize int `toml:"max_piston_cluster_size"`
}

func (c Config) withDefaults() Config {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.MaxPistonClusterSize <= 0 {
		c.MaxPistonClusterSize = 12
	}
	return c
}

// LoadConfig reads a TOML config file from path, applying defaults to any
// field left unset.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	return c.withDefaults(), nil
}
