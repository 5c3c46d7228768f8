package pathfind

// groupVertices pairs each PMOS with one NMOS sharing its gate net,
// following path_finder.cc's GroupVertices_: a single PMOS/NMOS pair on a
// gate pairs trivially; among several, prefer pairs that additionally
// share a drain or source net; anything left over pairs in discovery
// order.
func groupVertices(c *Circuit) ([]Vertex, error) {
	if len(c.Mos) == 0 {
		return nil, ErrNoMos
	}

	pByGate := map[int][]int{}
	nByGate := map[int][]int{}
	var gateOrder []int
	seenGate := map[int]bool{}
	for i, m := range c.Mos {
		if !seenGate[m.Gate] {
			seenGate[m.Gate] = true
			gateOrder = append(gateOrder, m.Gate)
		}
		if m.Type == PMOS {
			pByGate[m.Gate] = append(pByGate[m.Gate], i)
		} else {
			nByGate[m.Gate] = append(nByGate[m.Gate], i)
		}
	}

	var vertices []Vertex
	for _, gate := range gateOrder {
		ps := pByGate[gate]
		ns := nByGate[gate]
		if len(ps) == 0 && len(ns) == 0 {
			continue
		}
		if len(ps) != len(ns) {
			return nil, ErrUnpairedGate
		}

		if len(ps) == 1 {
			vertices = append(vertices, Vertex{P: ps[0], N: ns[0]})
			continue
		}

		usedP := make(map[int]bool, len(ps))
		usedN := make(map[int]bool, len(ns))
		for _, n := range ns {
			for _, p := range ps {
				if usedP[p] {
					continue
				}
				if c.sharedDiffusion(p, n) {
					vertices = append(vertices, Vertex{P: p, N: n})
					usedP[p] = true
					usedN[n] = true
					break
				}
			}
		}

		var remP, remN []int
		for _, p := range ps {
			if !usedP[p] {
				remP = append(remP, p)
			}
		}
		for _, n := range ns {
			if !usedN[n] {
				remN = append(remN, n)
			}
		}
		for i := range remP {
			vertices = append(vertices, Vertex{P: remP[i], N: remN[i]})
		}
	}
	return vertices, nil
}
