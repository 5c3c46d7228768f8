// Command floorplan runs slicing-tree simulated-annealing floorplanning
// over a block/aspect-ratio instance file and writes the placed layout.
package main

import (
	"github.com/spf13/cobra"

	"github.com/go-physdesign/physdesign/floorplan"
	"github.com/go-physdesign/physdesign/internal/cliutil"
)

func main() {
	var areaOnly bool

	cmd := &cobra.Command{
		Use:   "floorplan [-a] IN OUT",
		Short: "slicing-tree simulated-annealing floorplanner",
		Args:  cobra.ExactArgs(2),
	}
	cmd.Flags().BoolVarP(&areaOnly, "area-only", "a", false, "print only the final area")
	flags := cliutil.Bind(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(args[0], args[1], areaOnly, flags)
	}
	cliutil.Main(cmd)
}

func run(inPath, outPath string, areaOnly bool, flags *cliutil.Flags) error {
	logger, cfg, rng, err := cliutil.Setup("floorplan", flags)
	if err != nil {
		return err
	}

	in, out, cleanup, err := cliutil.OpenFiles(inPath, outPath)
	if err != nil {
		return err
	}
	defer cleanup()

	input, err := floorplan.Parse(in)
	if err != nil {
		return err
	}

	tree, err := floorplan.NewTree(input.Blocks, rng)
	if err != nil {
		return err
	}
	if err := floorplan.Anneal(tree, input.Constraint, cfg.Annealing, logger); err != nil {
		return err
	}

	return floorplan.WriteResult(out, tree, areaOnly)
}
