package floorplan

import (
	"fmt"
	"io"
	"strings"
)

// WriteResult formats t's current layout as:
//
//	A = <area>
//	R = <width/height ratio>
//	<block> <x> <y>
//	...
//
// with no trailing newline after the last block line, matching
// output_formatter.cc's documented "no end of file newline" contract.
// areaOnly trims the output to just the "A = " line, for the CLI's
// -a/--area-only flag.
func WriteResult(w io.Writer, t *Tree, areaOnly bool) error {
	width, height := t.Dims()
	if areaOnly {
		_, err := fmt.Fprintf(w, "A = %d\n", width*height)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "A = %d\n", width*height)
	fmt.Fprintf(&b, "R = %v\n", float64(width)/float64(height))
	blocks := t.Blocks()
	for i, blk := range blocks {
		fmt.Fprintf(&b, "%s %d %d", blk.Name, blk.X, blk.Y)
		if i != len(blocks)-1 {
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
