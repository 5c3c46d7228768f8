// Package generate synthesizes random problem instances for all four
// engines, for use in property and fuzz tests. It is builder.RandomSparse's
// Bernoulli-trial shape (builder/impl_random_sparse.go) generalized from
// "which vertex pairs get an edge" to this domain's four membership
// questions (which cells sit on which net, which net ids occupy which
// channel column, which PMOS/NMOS stage follows which).
//
// Every generator takes its own *rand.Rand and is otherwise side-effect
// free, matching builder's determinism contract: same rng state in, same
// instance out.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/go-physdesign/physdesign/floorplan"
	"github.com/go-physdesign/physdesign/pathfind"
	"github.com/go-physdesign/physdesign/partition"
	"github.com/go-physdesign/physdesign/routing"
)

// RandomHypergraph synthesizes a partition.Instance with the given cell and
// net counts, each net drawing its members by an independent Bernoulli
// trial per cell with probability avgDegree/cells (RandomSparse's edge-trial
// loop, generalized from vertex pairs to cell-net membership). Every net is
// topped up to at least two members if the trials leave it with fewer,
// since a net with 0 or 1 members can never be cut and only pads the
// instance without exercising the cut-size machinery.
func RandomHypergraph(cells, nets, avgDegree int, rng *rand.Rand) (*partition.Instance, error) {
	if cells < 2 {
		return nil, fmt.Errorf("generate: cells must be >= 2, got %d", cells)
	}
	if nets < 1 {
		return nil, fmt.Errorf("generate: nets must be >= 1, got %d", nets)
	}
	p := float64(avgDegree) / float64(cells)

	inst := &partition.Instance{BalanceFactor: 0.5}
	inst.Cells = make([]partition.Cell, cells)
	for i := range inst.Cells {
		inst.Cells[i].Name = fmt.Sprintf("c%d", i)
	}

	for n := 0; n < nets; n++ {
		netIdx := len(inst.Nets)
		inst.Nets = append(inst.Nets, partition.Net{Name: fmt.Sprintf("n%d", n)})
		net := &inst.Nets[netIdx]
		for c := 0; c < cells; c++ {
			if rng.Float64() < p {
				net.CellIdx = append(net.CellIdx, c)
				inst.Cells[c].NetIdx = append(inst.Cells[c].NetIdx, netIdx)
			}
		}
		for len(net.CellIdx) < 2 {
			c := rng.Intn(cells)
			already := false
			for _, existing := range net.CellIdx {
				if existing == c {
					already = true
					break
				}
			}
			if already {
				continue
			}
			net.CellIdx = append(net.CellIdx, c)
			inst.Cells[c].NetIdx = append(inst.Cells[c].NetIdx, netIdx)
		}
	}
	return inst, nil
}

// RandomBlockSet draws n blocks with independent uniform width/height in
// [1, maxDim], adapted from builder's per-item uniform-draw pattern
// (impl_random_sparse.go's weightFn(rng) call site) generalized to a pair of
// dimension draws per block instead of one weight draw per edge.
func RandomBlockSet(n, maxDim int, rng *rand.Rand) ([]floorplan.Block, error) {
	if n < 2 {
		return nil, fmt.Errorf("generate: n must be >= 2, got %d", n)
	}
	if maxDim < 1 {
		return nil, fmt.Errorf("generate: maxDim must be >= 1, got %d", maxDim)
	}
	blocks := make([]floorplan.Block, n)
	for i := range blocks {
		blocks[i] = floorplan.Block{
			Name:   fmt.Sprintf("b%d", i),
			Width:  1 + rng.Intn(maxDim),
			Height: 1 + rng.Intn(maxDim),
		}
	}
	return blocks, nil
}

// RandomChannelInstance synthesizes a routing.Instance: columns columns,
// each boundary's pin row drawing a net id uniformly from [0, netCount]
// (0 is emptySlot), plus boundaryDepth layers of pre-existing notches on
// each boundary, built as a running disjoint-interval union so no two
// generated intervals on the same layer overlap or touch -- the same
// invariant routing/types.go's mergeInterval (built on Union/IsAdjacent)
// maintains at routing time, exercised here at generation time instead.
func RandomChannelInstance(columns, netCount, boundaryDepth int, rng *rand.Rand) (routing.Instance, error) {
	if columns < 1 {
		return routing.Instance{}, fmt.Errorf("generate: columns must be >= 1, got %d", columns)
	}
	if netCount < 1 {
		return routing.Instance{}, fmt.Errorf("generate: netCount must be >= 1, got %d", netCount)
	}

	inst := routing.Instance{
		TopNetIDs:    make([]int, columns),
		BottomNetIDs: make([]int, columns),
	}
	for col := 0; col < columns; col++ {
		inst.TopNetIDs[col] = rng.Intn(netCount + 1)
		inst.BottomNetIDs[col] = rng.Intn(netCount + 1)
	}

	inst.TopBoundary = randomBoundaryStack(columns, boundaryDepth, rng)
	inst.BottomBoundary = randomBoundaryStack(columns, boundaryDepth, rng)
	return inst, nil
}

// randomBoundaryStack builds depth layers of non-overlapping, non-adjacent
// intervals over column range [0, columns-1], each layer sampled
// independently by repeatedly proposing a short interval and discarding it
// on any overlap/adjacency with what the layer already holds.
func randomBoundaryStack(columns, depth int, rng *rand.Rand) [][]routing.Interval {
	if depth <= 0 || columns < 3 {
		return nil
	}
	layers := make([][]routing.Interval, depth)
	for d := 0; d < depth; d++ {
		var layer []routing.Interval
		for attempt := 0; attempt < columns; attempt++ {
			lo := rng.Intn(columns)
			width := rng.Intn(3)
			hi := lo + width
			if hi >= columns {
				continue
			}
			candidate := routing.Interval{Lo: lo, Hi: hi}
			fits := true
			for _, existing := range layer {
				overlaps := candidate.Lo <= existing.Hi && existing.Lo <= candidate.Hi
				if overlaps || routing.IsAdjacent(candidate, existing) {
					fits = false
					break
				}
			}
			if fits {
				layer = append(layer, candidate)
			}
		}
		layers[d] = layer
	}
	return layers
}

// RandomNetlist synthesizes stages paired PMOS/NMOS inverter-like stages
// chained drain-to-source (mirroring spec.md's worked scenarios 4 and 5),
// plus one disconnected extra island every third stage to exercise
// pathfind's dummy-splicing path. The chained stages share one VDD and
// one GND net and get fresh IN/OUT nets per stage; each island gets its
// own rail and I/O nets, named with a github.com/google/uuid fragment, so
// an island is never wired to the chain through a shared "VDD".
func RandomNetlist(stages int, rng *rand.Rand) (*pathfind.Circuit, error) {
	if stages < 1 {
		return nil, fmt.Errorf("generate: stages must be >= 1, got %d", stages)
	}
	c := &pathfind.Circuit{}

	net := func(name string) int {
		c.Nets = append(c.Nets, pathfind.Net{Name: name})
		return len(c.Nets) - 1
	}
	mos := func(name string, t pathfind.MosType, drain, gate, source, substrate int) {
		c.Mos = append(c.Mos, pathfind.Mos{
			Name: name, Type: t,
			Drain: drain, Gate: gate, Source: source, Substrate: substrate,
			Width:  float64(10 + rng.Intn(40)),
			Length: 1,
		})
	}

	vdd := net("VDD")
	gnd := net("GND")
	prevOut := vdd
	for i := 0; i < stages; i++ {
		in := net(fmt.Sprintf("IN%d", i+1))
		out := net(fmt.Sprintf("OUT%d", i+1))
		mos(fmt.Sprintf("P%d", i+1), pathfind.PMOS, out, in, prevOut, vdd)
		mos(fmt.Sprintf("N%d", i+1), pathfind.NMOS, out, in, gnd, gnd)
		prevOut = out

		if (i+1)%3 == 0 {
			island := uuid.NewString()[:8]
			islandVDD := net("VDD_" + island)
			islandGND := net("GND_" + island)
			islandIn := net("IN_" + island)
			islandOut := net("OUT_" + island)
			mos("P_"+island, pathfind.PMOS, islandOut, islandIn, islandVDD, islandVDD)
			mos("N_"+island, pathfind.NMOS, islandOut, islandIn, islandGND, islandGND)
		}
	}
	return c, nil
}
