package pathfind

// Design-rule constants behind calculateHpwl, named exactly as spec.md §4.4
// lists them.
const (
	verticalIncrement    = 27.0
	horizontalExtension  = 25.0
	gateSpacing          = 34.0
	horizontalGateWidth  = 20.0
	unitHorizontalWidth  = gateSpacing + horizontalGateWidth
)

// calculateHpwl scores a joined path by half-perimeter wire length.
// Ported from CalculateHpwl_: for every net (excluding gates and the
// path's two free-net bookends, see interiorEdges), the P-track and
// N-track slot indices where it appears determine a horizontal run;
// nets straddling both tracks also pay a vertical crossing. Ported
// term-for-term from path_finder.cc, including the -4.5 per-covered-end
// boundary adjustment, which must stay a float and never round to an
// integer.
func calculateHpwl(c *Circuit, vertices []Vertex, path []int) float64 {
	order := interiorEdges(c, vertices, path)
	slots := len(order)
	if slots == 0 {
		return 0
	}

	v0 := vertices[path[0]]
	verticalWire := verticalIncrement + (c.Mos[v0.P].Width+c.Mos[v0.N].Width)/2

	hpwl := 0.0
	for netID := range c.Nets {
		var idxP, idxN []int
		for i, e := range order {
			if e.P == netID {
				idxP = append(idxP, i)
			}
			if e.N == netID {
				idxN = append(idxN, i)
			}
		}

		var adjustment float64
		switch {
		case len(idxP) == 1 && len(idxN) == 1:
			hi, lo := maxInt(idxP[0], idxN[0]), minInt(idxP[0], idxN[0])
			hpwl += unitHorizontalWidth*float64(hi-lo) + verticalWire
			adjustment = boolF(hi == slots-1) + boolF(lo == 0)

		case len(idxP) > 1 && len(idxN) == 1:
			augmented := append(append([]int(nil), idxP...), idxN[0])
			hi, lo := maxOf(augmented), minOf(augmented)
			hpwl += unitHorizontalWidth*float64(hi-lo) + verticalWire
			adjustment = boolF(hi == slots-1) + boolF(lo == 0)

		case len(idxP) == 1 && len(idxN) > 1:
			augmented := append(append([]int(nil), idxN...), idxP[0])
			hi, lo := maxOf(augmented), minOf(augmented)
			hpwl += unitHorizontalWidth*float64(hi-lo) + verticalWire
			adjustment = boolF(hi == slots-1) + boolF(lo == 0)

		case len(idxP) > 1 && len(idxN) > 1:
			hiP, loP := maxOf(idxP), minOf(idxP)
			hiN, loN := maxOf(idxN), minOf(idxN)
			hpwl += unitHorizontalWidth*float64(hiP-loP+hiN-loN) + verticalWire
			switch {
			case loP > hiN:
				hpwl += unitHorizontalWidth * float64(loP-hiN)
			case loN > hiP:
				hpwl += unitHorizontalWidth * float64(loN-hiP)
			}
			adjustment = boolF(hiP == slots-1) + boolF(loP == 0) + boolF(hiN == slots-1) + boolF(loN == 0)

		case len(idxP) > 1 && len(idxN) == 0, len(idxN) > 1 && len(idxP) == 0:
			// Several slots on one track only: a horizontal run with no
			// vertical crossing.
			idx := idxP
			if len(idx) == 0 {
				idx = idxN
			}
			hi, lo := maxOf(idx), minOf(idx)
			hpwl += unitHorizontalWidth * float64(hi-lo)
			adjustment = boolF(hi == slots-1) + boolF(lo == 0)

		default:
			// At most a single point in one track and nothing in the
			// other: no wire length contributed by this net.
			continue
		}
		hpwl += (horizontalExtension - gateSpacing) / 2.0 * adjustment
	}
	return hpwl
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxOf(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func minOf(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
