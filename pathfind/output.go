package pathfind

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteResult formats res as spec.md §6 describes: HPWL on line 1, then
// PMOS instance names, PMOS net names, NMOS instance names, NMOS net
// names, one sequence per line. Consecutive repeated "Dummy" entries
// collapse to a single occurrence, per the external output contract.
//
// The instance-name lines walk one entry per vertex on the path; the
// net-name lines walk res.Edges (free-start, gate, inter-vertex edge,
// gate, ..., free-end — GetEdgesOf's full sequence), since that is the
// sequence spec.md's worked example enumerates.
func WriteResult(w io.Writer, res Result) error {
	if _, err := fmt.Fprintf(w, "%s\n", formatHpwl(res.HPWL)); err != nil {
		return err
	}

	pNames := make([]string, len(res.Path))
	nNames := make([]string, len(res.Path))
	for i, frag := range res.Path {
		pNames[i] = res.Circuit.Mos[frag.Vertex.P].Name
		nNames[i] = res.Circuit.Mos[frag.Vertex.N].Name
	}
	pNets := make([]string, len(res.Edges))
	nNets := make([]string, len(res.Edges))
	for i, e := range res.Edges {
		pNets[i] = netName(res.Circuit, e.P)
		nNets[i] = netName(res.Circuit, e.N)
	}

	lines := []string{
		collapseDummies(pNames),
		collapseDummies(pNets),
		collapseDummies(nNames),
		collapseDummies(nNets),
	}
	for i, line := range lines {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if i != len(lines)-1 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// collapseDummies joins entries with a space, folding runs of
// consecutive "Dummy" entries into one.
func collapseDummies(entries []string) string {
	var out []string
	for _, e := range entries {
		if e == "Dummy" && len(out) > 0 && out[len(out)-1] == "Dummy" {
			continue
		}
		out = append(out, e)
	}
	return strings.Join(out, " ")
}

func formatHpwl(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func netName(c *Circuit, netIdx int) string {
	if netIdx == noNet {
		return "-"
	}
	return c.Nets[netIdx].Name
}
