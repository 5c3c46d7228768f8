// Command pathfind pairs PMOS/NMOS transistors by gate, searches a
// Hamiltonian path over the pairing graph, and writes the path's instance
// order, net sequence, and HPWL.
package main

import (
	"github.com/spf13/cobra"

	"github.com/go-physdesign/physdesign/internal/cliutil"
	"github.com/go-physdesign/physdesign/pathfind"
)

func main() {
	cmd := &cobra.Command{
		Use:   "pathfind IN OUT",
		Short: "PMOS/NMOS Hamiltonian-path transistor pairing",
		Args:  cobra.ExactArgs(2),
	}
	flags := cliutil.Bind(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(args[0], args[1], flags)
	}
	cliutil.Main(cmd)
}

func run(inPath, outPath string, flags *cliutil.Flags) error {
	logger, _, rng, err := cliutil.Setup("pathfind", flags)
	if err != nil {
		return err
	}

	in, out, cleanup, err := cliutil.OpenFiles(inPath, outPath)
	if err != nil {
		return err
	}
	defer cleanup()

	circuit, err := pathfind.Parse(in)
	if err != nil {
		return err
	}

	res, err := pathfind.Find(circuit, rng, logger)
	if err != nil {
		return err
	}

	return pathfind.WriteResult(out, res)
}
