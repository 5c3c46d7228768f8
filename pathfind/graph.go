package pathfind

import (
	"fmt"

	"github.com/go-physdesign/physdesign/core"
)

// vertexID names a vertex for the adjacency graph. Two different gate
// groupings never produce the same (P,N) pair, so the MOS name pair is a
// stable, collision-free key.
func vertexID(c *Circuit, v Vertex) string {
	return fmt.Sprintf("%s.%s", c.Mos[v.P].Name, c.Mos[v.N].Name)
}

// buildGraph connects every pair of vertices that are neighbours (shared
// diffusion on both the PMOS and the NMOS halves) into an undirected
// graph, with exactly one edge per neighbouring pair. The graph is built
// WithMultiEdges, but the pairwise scan below never adds a second edge
// between the same two vertices, however many nets they share.
func buildGraph(c *Circuit, vertices []Vertex) (*core.Graph, map[string]Vertex, error) {
	g := core.NewGraph(core.WithMultiEdges())
	byID := make(map[string]Vertex, len(vertices))
	ids := make([]string, len(vertices))
	for i, v := range vertices {
		id := vertexID(c, v)
		ids[i] = id
		byID[id] = v
		if err := g.AddVertex(id); err != nil {
			return nil, nil, fmt.Errorf("pathfind: build graph: %w", err)
		}
	}
	for i := range vertices {
		for j := i + 1; j < len(vertices); j++ {
			if c.connected(vertices[i], vertices[j]) {
				if _, err := g.AddEdge(ids[i], ids[j], 1); err != nil {
					return nil, nil, fmt.Errorf("pathfind: build graph: %w", err)
				}
			}
		}
	}
	return g, byID, nil
}
