// Package cliutil holds the cobra plumbing shared by the four engine
// binaries (cmd/partition, cmd/floorplan, cmd/routing, cmd/pathfind): each
// is a single command taking a positional IN/OUT file pair plus a common
// set of flags, not a root command with subcommands, per spec.md's
// "parsers/formatters are boundary glue" framing — this package is that
// glue's common part, grounded on matzehuels-stacktower's internal/cli
// (root.go's PersistentPreRun logger wiring, log.go's newLogger).
package cliutil

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-physdesign/physdesign/internal/config"
	"github.com/go-physdesign/physdesign/internal/logctx"
	"github.com/go-physdesign/physdesign/internal/rng"
)

// Flags are the options every engine binary accepts.
type Flags struct {
	Verbose    bool
	Seed       int64
	ConfigPath string
}

// Bind registers the common flags on cmd and returns the struct they write
// into once cmd.Execute parses the command line.
func Bind(cmd *cobra.Command) *Flags {
	f := &Flags{}
	cmd.Flags().BoolVarP(&f.Verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().Int64Var(&f.Seed, "seed", 0, "RNG seed (0 selects the default deterministic seed)")
	cmd.Flags().StringVar(&f.ConfigPath, "config", "", "optional TOML config file")
	return f
}

// Setup loads f's config file and builds the logger and RNG an engine's
// Run needs, tagging the logger with engine for the --verbose/run_id
// contract spec.md's ambient logging section describes.
func Setup(engine string, f *Flags) (*log.Logger, config.Config, *rand.Rand, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	seed := f.Seed
	if seed == 0 {
		seed = cfg.Seed
	}
	logger := logctx.New(engine, f.Verbose)
	return logger, cfg, rng.New(seed), nil
}

// OpenFiles opens inPath for reading and outPath for writing, returning a
// single cleanup func that closes whichever of the two actually opened
// (callers defer it unconditionally). "-" selects stdin/stdout, matching
// the teacher's CLI convention of treating a dash as "the standard stream".
func OpenFiles(inPath, outPath string) (io.ReadCloser, io.WriteCloser, func(), error) {
	var in io.ReadCloser = os.Stdin
	if inPath != "-" {
		f, err := os.Open(inPath)
		if err != nil {
			return nil, nil, func() {}, fmt.Errorf("open input: %w", err)
		}
		in = f
	}
	var out io.WriteCloser = os.Stdout
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			in.Close()
			return nil, nil, func() {}, fmt.Errorf("open output: %w", err)
		}
		out = f
	}
	return in, out, func() {
		in.Close()
		out.Close()
	}, nil
}

// Main runs a cobra command and translates a returned error into exit code
// 1, per spec.md's "no panics in the library surface" framing carried
// through to the CLI layer.
func Main(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
