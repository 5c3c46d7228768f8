package partition

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteResult formats res as:
//
//	Cutsize = <n>
//	G1: <cell> <cell> ...
//	G2: <cell> <cell> ...
//
// Cell names within each group are sorted for a stable, diffable report;
// the underlying Result.BlockA/BlockB preserve cell-array order for callers
// that want it instead.
func WriteResult(w io.Writer, res Result) error {
	g1 := append([]string(nil), res.BlockA...)
	g2 := append([]string(nil), res.BlockB...)
	sort.Strings(g1)
	sort.Strings(g2)

	_, err := fmt.Fprintf(w, "Cutsize = %d\nG1: %s\nG2: %s\n",
		res.CutSize, strings.Join(g1, " "), strings.Join(g2, " "))
	return err
}
