package pathfind

// edgeBetween returns the net shared between two neighbouring vertices on
// each half, P and N independently. Ported from FindEdgeOfTwoNeighborVertices;
// the candidate net set per transistor includes its gate (matching the
// original's NetsOf helper), since the diffusion connection guaranteed by
// graph adjacency is always found first in practice and a coincidental
// gate match is the original's behaviour too, not a Go-specific choice.
func edgeBetween(c *Circuit, a, b Vertex) Edge {
	return Edge{
		P: firstCommonNet(c.netsOf(a.P), c.netsOf(b.P)),
		N: firstCommonNet(c.netsOf(a.N), c.netsOf(b.N)),
	}
}

func firstCommonNet(a, b [3]int) int {
	for _, x := range a {
		if x == noNet {
			continue
		}
		for _, y := range b {
			if y == x {
				return x
			}
		}
	}
	return noNet
}

// freeNetOfStart finds the net on each half of path's first vertex that is
// neither its gate nor the connection to the next vertex (or, for a
// length-1 path, neither its gate nor anything else — gate is the only
// excluded net). Ported from FindFreeNetOfStartingVertex.
func freeNetOfStart(c *Circuit, vertices []Vertex, path []int) Edge {
	v := vertices[path[0]]
	gate := Edge{P: c.Mos[v.P].Gate, N: c.Mos[v.N].Gate}
	conn := gate
	if len(path) != 1 {
		conn = edgeBetween(c, v, vertices[path[1]])
	}
	return firstFreeNet(c, v, gate, conn, Edge{P: noNet, N: noNet})
}

// freeNetOfEnd is freeNetOfStart's mirror image for the last vertex of a
// path. Ported from FindFreeNetOfEndingVertex, with one generalization:
// for a length-1 path the start and end are the same vertex with the
// same exclusions, so the literal port would hand both ends the same
// free net. A single vertex that hasn't consumed a diffusion connection
// yet has two free nets available (its drain and its source, gate
// excluded) per the free-net accounting in spec.md §4.4, so the end is
// additionally barred from repeating whatever the start already claimed.
func freeNetOfEnd(c *Circuit, vertices []Vertex, path []int) Edge {
	last := len(path) - 1
	v := vertices[path[last]]
	gate := Edge{P: c.Mos[v.P].Gate, N: c.Mos[v.N].Gate}
	conn := gate
	extra := Edge{P: noNet, N: noNet}
	if len(path) != 1 {
		conn = edgeBetween(c, v, vertices[path[last-1]])
	} else {
		extra = freeNetOfStart(c, vertices, path)
	}
	return firstFreeNet(c, v, gate, conn, extra)
}

func firstFreeNet(c *Circuit, v Vertex, gate, conn, extra Edge) Edge {
	free := Edge{P: noNet, N: noNet}
	for _, n := range c.netsOf(v.P) {
		if n != noNet && n != gate.P && n != conn.P && n != extra.P {
			free.P = n
			break
		}
	}
	for _, n := range c.netsOf(v.N) {
		if n != noNet && n != gate.N && n != conn.N && n != extra.N {
			free.N = n
			break
		}
	}
	return free
}

// edgesOf walks path producing the free-net, gate, and inter-vertex edges
// in traversal order: free-start, gate0, edge(0,1), gate1, edge(1,2), ...,
// free-end. Ported from GetEdgesOf.
func edgesOf(c *Circuit, vertices []Vertex, path []int) []Edge {
	edges := []Edge{freeNetOfStart(c, vertices, path)}
	v0 := vertices[path[0]]
	edges = append(edges, Edge{P: c.Mos[v0.P].Gate, N: c.Mos[v0.N].Gate})
	for i := 1; i < len(path); i++ {
		edges = append(edges, edgeBetween(c, vertices[path[i-1]], vertices[path[i]]))
		vi := vertices[path[i]]
		edges = append(edges, Edge{P: c.Mos[vi.P].Gate, N: c.Mos[vi.N].Gate})
	}
	edges = append(edges, freeNetOfEnd(c, vertices, path))
	return edges
}

// interiorEdges lists the net shared between every consecutive pair of
// real vertices on path — gate slots and the two free-net bookends
// excluded. Grounded on GetEdgesWithGateExcludedOf, with one
// generalization: the original also bookends the sequence with the
// start/end free nets, which are by definition not yet wired to
// anything (they exist only so a future dummy can claim one). Scoring
// them in HPWL would charge wire length for a connection that doesn't
// exist — a length-1 path, which has no interior edges at all, must
// score exactly zero, and does under this reading.
func interiorEdges(c *Circuit, vertices []Vertex, path []int) []Edge {
	var edges []Edge
	for i := 1; i < len(path); i++ {
		edges = append(edges, edgeBetween(c, vertices[path[i-1]], vertices[path[i]]))
	}
	return edges
}

// connectSubpathsWithDummy splices disjoint Hamiltonian paths (each a
// slice of indices into vertices) into one, inserting a pair of dummy
// vertices — tied together by a fresh "Dummy" net — between every two
// consecutive subpaths. vertices grows as dummies are appended; the
// returned path indexes into the grown slice. Ported from
// ConnectHamiltonPathOfSubgraphsWithDummy.
func connectSubpathsWithDummy(c *Circuit, vertices *[]Vertex, paths [][]int) []int {
	if len(paths) == 1 {
		return paths[0]
	}
	joined := append([]int(nil), paths[0]...)
	for i := 1; i < len(paths); i++ {
		dummyNet := c.newNet("Dummy")

		endingVertex := (*vertices)[joined[len(joined)-1]]
		endingFree := freeNetOfEnd(c, *vertices, joined)
		endingDummyP := c.newMos("Dummy", PMOS, endingFree.P, dummyNet, dummyNet, dummyNet,
			c.Mos[endingVertex.P].Width, c.Mos[endingVertex.P].Length)
		endingDummyN := c.newMos("Dummy", NMOS, endingFree.N, dummyNet, dummyNet, dummyNet,
			c.Mos[endingVertex.N].Width, c.Mos[endingVertex.N].Length)
		*vertices = append(*vertices, Vertex{P: endingDummyP, N: endingDummyN})
		endingDummyIdx := len(*vertices) - 1

		next := paths[i]
		startingVertex := (*vertices)[next[0]]
		startingFree := freeNetOfStart(c, *vertices, next)
		startingDummyP := c.newMos("Dummy", PMOS, startingFree.P, dummyNet, dummyNet, dummyNet,
			c.Mos[startingVertex.P].Width, c.Mos[startingVertex.P].Length)
		startingDummyN := c.newMos("Dummy", NMOS, startingFree.N, dummyNet, dummyNet, dummyNet,
			c.Mos[startingVertex.N].Width, c.Mos[startingVertex.N].Length)
		*vertices = append(*vertices, Vertex{P: startingDummyP, N: startingDummyN})
		startingDummyIdx := len(*vertices) - 1

		joined = append(joined, endingDummyIdx, startingDummyIdx)
		joined = append(joined, next...)
	}
	return joined
}
