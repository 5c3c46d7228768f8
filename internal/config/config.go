// Package config loads the optional TOML file that tunes the knobs spec.md
// otherwise pins as constants (annealing schedule, default RNG seed). File
// values override the built-in defaults; CLI flags override the file.
//
// Absence of a config file is not an error: every field has a default that
// reproduces spec.md's stated constants exactly.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Annealing holds the simulated-annealing schedule knobs from spec.md
// section 4.2 ("Annealing schedule").
type Annealing struct {
	// InitialTempPerBlock is the per-block multiplier for the starting
	// temperature (spec.md: "initial temperature = 100000 * n").
	InitialTempPerBlock float64 `toml:"initial_temp_per_block"`
	// CoolingFactor shrinks the temperature after each stage (default 0.85).
	CoolingFactor float64 `toml:"cooling_factor"`
	// MovesPerTempPerBlock scales moves-per-temperature by block count
	// (spec.md: "moves per temperature = n").
	MovesPerTempPerBlock float64 `toml:"moves_per_temp_per_block"`
	// FreezeTemp stops annealing once the temperature drops below it.
	FreezeTemp float64 `toml:"freeze_temp"`
	// RejectThreshold stops annealing once the reject ratio exceeds it.
	RejectThreshold float64 `toml:"reject_threshold"`
}

// DefaultAnnealing returns spec.md's stated defaults.
func DefaultAnnealing() Annealing {
	return Annealing{
		InitialTempPerBlock:  100000,
		CoolingFactor:        0.85,
		MovesPerTempPerBlock: 1,
		FreezeTemp:           10,
		RejectThreshold:      0.95,
	}
}

// Config is the top-level run configuration shared by all four engines.
// Each engine only reads the sections it needs.
type Config struct {
	Seed      int64     `toml:"seed"`
	Annealing Annealing `toml:"annealing"`
}

// Default returns the built-in configuration (seed 0, spec.md's annealing
// constants).
func Default() Config {
	return Config{Annealing: DefaultAnnealing()}
}

// Load reads a TOML config file at path, starting from Default() so any
// field the file omits keeps its built-in value.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %q: %w", path, err)
	}
	return cfg, nil
}
