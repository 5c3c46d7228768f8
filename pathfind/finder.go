package pathfind

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/go-physdesign/physdesign/internal/logctx"
)

// Fragment is one slot of the joined Hamiltonian path: a vertex and the
// edge used to reach the next slot. The arena-plus-index pattern
// (spec.md §9) applies here as a flat slice rather than a linked list of
// owning/weak pointers: Fragment i's implicit "next" is i+1, its implicit
// "prev" is i-1, so no pointer bookkeeping is needed at all. The last
// fragment's EdgeToNext is the zero Edge and carries no meaning.
type Fragment struct {
	Vertex     Vertex
	EdgeToNext Edge
}

// Result is one completed run: the circuit as left after dummy splicing
// (it may have gained synthetic "Dummy" transistors and nets), the
// vertices referenced by Path, the joined path itself, the full
// external edge sequence (free nets and gates included, per GetEdgesOf
// — this is what the output's net-name lines walk) and its HPWL.
type Result struct {
	Circuit  *Circuit
	Vertices []Vertex
	Path     []Fragment
	Edges    []Edge
	HPWL     float64
}

// Find runs the full pipeline described in spec.md §4.4: pair PMOS/NMOS
// by gate into vertices, build their adjacency graph, search a
// Hamiltonian path per connected component with Pósa rotation, splice
// the components together with dummies, and score the result with HPWL.
func Find(c *Circuit, r *rand.Rand, logger *log.Logger) (Result, error) {
	logger = logctx.OrDiscard(logger)
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}

	vertices, err := groupVertices(c)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("paired transistors", "vertices", len(vertices))

	g, _, err := buildGraph(c, vertices)
	if err != nil {
		return Result{}, err
	}
	adj, err := buildAdjacency(c, g, vertices)
	if err != nil {
		return Result{}, err
	}

	componentPaths := findHamiltonPaths(adj, r)
	logger.Debug("found Hamilton paths over components", "count", len(componentPaths))

	joined := connectSubpathsWithDummy(c, &vertices, componentPaths)

	edges := edgesOf(c, vertices, joined)
	// edgesOf returns 2 slots per vertex (gate, inter-vertex) plus the
	// two free-net bookends; edge_to_next for fragment i is the
	// inter-vertex edge that follows it, i.e. edges[2*i+2].
	path := make([]Fragment, len(joined))
	for i, vIdx := range joined {
		path[i] = Fragment{Vertex: vertices[vIdx]}
		if i < len(joined)-1 {
			path[i].EdgeToNext = edges[2*i+2]
		}
	}

	hpwl := calculateHpwl(c, vertices, joined)
	logger.Debug("computed HPWL", "value", hpwl)

	return Result{Circuit: c, Vertices: vertices, Path: path, Edges: edges, HPWL: hpwl}, nil
}
