package pathfind

import (
	"math/rand"

	"github.com/go-physdesign/physdesign/core"
)

// buildAdjacency flattens the core.Graph built by buildGraph into
// neighbour index lists over vertices, in NeighborIDs' deterministic
// (vertex-ID sorted) neighbour order. The search loop below only ever asks
// "who is adjacent to vertex i", so resolving that once up front is
// cheaper than repeated graph queries during the search.
func buildAdjacency(c *Circuit, g *core.Graph, vertices []Vertex) ([][]int, error) {
	indexOf := make(map[Vertex]int, len(vertices))
	for i, v := range vertices {
		indexOf[v] = i
	}
	idOf := make([]string, len(vertices))
	idToIndex := make(map[string]int, len(vertices))
	for i, v := range vertices {
		id := vertexID(c, v)
		idOf[i] = id
		idToIndex[id] = i
	}

	adj := make([][]int, len(vertices))
	for i := range vertices {
		neighborIDs, err := g.NeighborIDs(idOf[i])
		if err != nil {
			return nil, err
		}
		for _, nid := range neighborIDs {
			adj[i] = append(adj[i], idToIndex[nid])
		}
	}
	return adj, nil
}

// findHamiltonPaths partitions vertices into one or more vertex-disjoint
// Hamiltonian paths over adj, growing each with extend and, once stuck,
// trying every Pósa rotation of the current path before giving up on it.
// Ported from FindHamiltonPaths_ in path_finder.cc; path_finder.cc's own
// comment admits it wanted a random start vertex and settled for "the
// first one for simplicity" — this port takes the random start it asked
// for, which is also where spec.md's discrete-uniform requirement for
// this engine is spent.
func findHamiltonPaths(adj [][]int, rng *rand.Rand) [][]int {
	n := len(adj)
	visited := make([]bool, n)
	remaining := n

	var paths [][]int
	for remaining > 0 {
		var unvisited []int
		for i := 0; i < n; i++ {
			if !visited[i] {
				unvisited = append(unvisited, i)
			}
		}
		start := unvisited[rng.Intn(len(unvisited))]
		visited[start] = true
		remaining--
		path := []int{start}

		for {
			if ext, ok := extend(path, adj, visited); ok {
				path = ext
				remaining--
				continue
			}

			grew := false
			for _, rotated := range rotate(path, adj) {
				if ext, ok := extend(rotated, adj, visited); ok {
					path = ext
					remaining--
					grew = true
					break
				}
			}
			if grew {
				continue
			}
			break
		}
		paths = append(paths, path)
	}
	return paths
}

// extend tries to attach one unvisited neighbour to path's tail, then,
// failing that, to its head. It mutates visited on success and returns
// the grown path. Ported from Extend_.
func extend(path []int, adj [][]int, visited []bool) ([]int, bool) {
	tail := path[len(path)-1]
	for _, nb := range adj[tail] {
		if !visited[nb] {
			visited[nb] = true
			extended := make([]int, len(path)+1)
			copy(extended, path)
			extended[len(path)] = nb
			return extended, true
		}
	}
	head := path[0]
	for _, nb := range adj[head] {
		if !visited[nb] {
			visited[nb] = true
			extended := make([]int, len(path)+1)
			extended[0] = nb
			copy(extended[1:], path)
			return extended, true
		}
	}
	return nil, false
}

// rotate returns every Pósa transformation of path: for each interior
// vertex connected to the head, the path with everything before that
// vertex reversed, making the vertex just before it the new head;
// symmetrically for vertices connected to the tail (everything after the
// vertex reversed, the vertex just after it becoming the new tail).
// Ported from Rotate_.
func rotate(path []int, adj [][]int) [][]int {
	if len(path) <= 2 {
		return nil
	}
	connected := func(a, b int) bool {
		for _, nb := range adj[a] {
			if nb == b {
				return true
			}
		}
		return false
	}

	var rotated [][]int
	for i := 2; i < len(path); i++ {
		if connected(path[0], path[i]) {
			r := append([]int(nil), path...)
			reverse(r[:i])
			rotated = append(rotated, r)
		}
	}
	for i := 0; i < len(path)-2; i++ {
		if connected(path[len(path)-1], path[i]) {
			r := append([]int(nil), path...)
			reverse(r[i+1:])
			rotated = append(rotated, r)
		}
	}
	return rotated
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
