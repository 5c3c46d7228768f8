package routing

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-physdesign/physdesign/core"
	"github.com/go-physdesign/physdesign/dfs"
)

// hcgEntry is one row of the horizontal constraint graph: a net's column
// span plus its id, kept sorted by span.Lo.
type hcgEntry struct {
	span  Interval
	netID int
}

// buildHCG computes, for every net, the smallest column interval covering
// every column where it appears on either boundary, then sorts the result
// by left endpoint. Ported directly from router.cc's
// ConstructHorizontalConstraintGraph_.
func buildHCG(inst Instance, numNets int) []hcgEntry {
	spans := make([]Interval, numNets+1)
	for i := range spans {
		spans[i] = Interval{Lo: len(inst.TopNetIDs), Hi: -1}
	}
	touch := func(netID, col int) {
		if netID == emptySlot {
			return
		}
		s := &spans[netID]
		if col < s.Lo {
			s.Lo = col
		}
		if col > s.Hi {
			s.Hi = col
		}
	}
	for col := range inst.TopNetIDs {
		touch(inst.TopNetIDs[col], col)
		touch(inst.BottomNetIDs[col], col)
	}

	hcg := make([]hcgEntry, 0, numNets)
	for id := 1; id <= numNets; id++ {
		if spans[id].Hi < spans[id].Lo {
			continue // net id never appears (ids need not be dense)
		}
		hcg = append(hcg, hcgEntry{span: spans[id], netID: id})
	}
	sort.Slice(hcg, func(i, j int) bool { return hcg[i].span.Lo < hcg[j].span.Lo })
	return hcg
}

// vcgName renders a net id as a core.Graph vertex id.
func vcgName(netID int) string { return strconv.Itoa(netID) }

// buildVCG constructs the vertical constraint graph (an edge parent->child
// means child cannot be routed above parent in the channel) and its
// inversion (child->parent), whose out-edges give a net's parents for
// Phase T and Phase C; Phase B, routing outward from the bottom boundary
// where the roles of parent and child swap, reads the un-inverted graph.
// Ported from router.cc's ConstructVerticalConstraintGraph_.
func buildVCG(inst Instance, numNets int) (vcg, inverted *core.Graph, err error) {
	vcg = core.NewGraph(core.WithDirected(true))
	inverted = core.NewGraph(core.WithDirected(true))
	for id := 1; id <= numNets; id++ {
		if err := vcg.AddVertex(vcgName(id)); err != nil {
			return nil, nil, fmt.Errorf("routing: build VCG: %w", err)
		}
		if err := inverted.AddVertex(vcgName(id)); err != nil {
			return nil, nil, fmt.Errorf("routing: build VCG: %w", err)
		}
	}

	seen := make(map[[2]int]bool)
	for col := range inst.TopNetIDs {
		top, bottom := inst.TopNetIDs[col], inst.BottomNetIDs[col]
		if top == emptySlot || bottom == emptySlot || top == bottom {
			continue
		}
		key := [2]int{top, bottom}
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, err := vcg.AddEdge(vcgName(top), vcgName(bottom), 1); err != nil {
			return nil, nil, fmt.Errorf("routing: build VCG: %w", err)
		}
		if _, err := inverted.AddEdge(vcgName(bottom), vcgName(top), 1); err != nil {
			return nil, nil, fmt.Errorf("routing: build VCG: %w", err)
		}
	}
	return vcg, inverted, nil
}

// checkAcyclic reports ErrCyclicConstraint if g contains a cycle.
func checkAcyclic(g *core.Graph) error {
	if _, err := dfs.TopologicalSort(g); err != nil {
		return fmt.Errorf("%w: %v", ErrCyclicConstraint, err)
	}
	return nil
}

// vcgNeighbors returns netID's out-edge targets in g as net ids. Phase T
// and Phase C call this on the inverted graph to find netID's VCG parents
// (core.Graph.Neighbors only surfaces outgoing edges on a directed graph,
// so the inversion is what makes "parents" reachable as "neighbors").
// Phase B calls it on the un-inverted graph, since routing outward from
// the bottom boundary swaps which side counts as the parent.
func vcgNeighbors(g *core.Graph, netID int) []int {
	edges, err := g.Neighbors(vcgName(netID))
	if err != nil {
		return nil
	}
	out := make([]int, 0, len(edges))
	for _, e := range edges {
		id, convErr := strconv.Atoi(e.To)
		if convErr == nil {
			out = append(out, id)
		}
	}
	return out
}
