// Command routing runs left-edge channel routing over a column-pin
// instance file and writes the resulting track assignment.
package main

import (
	"github.com/spf13/cobra"

	"github.com/go-physdesign/physdesign/internal/cliutil"
	"github.com/go-physdesign/physdesign/routing"
)

func main() {
	cmd := &cobra.Command{
		Use:   "routing IN OUT",
		Short: "left-edge channel router",
		Args:  cobra.ExactArgs(2),
	}
	flags := cliutil.Bind(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(args[0], args[1], flags)
	}
	cliutil.Main(cmd)
}

func run(inPath, outPath string, flags *cliutil.Flags) error {
	logger, _, _, err := cliutil.Setup("routing", flags)
	if err != nil {
		return err
	}

	in, out, cleanup, err := cliutil.OpenFiles(inPath, outPath)
	if err != nil {
		return err
	}
	defer cleanup()

	inst, err := routing.Parse(in)
	if err != nil {
		return err
	}

	router, err := routing.New(inst, logger)
	if err != nil {
		return err
	}
	res, err := router.Route()
	if err != nil {
		return err
	}

	return routing.WriteResult(out, res)
}
