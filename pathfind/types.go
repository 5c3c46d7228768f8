// Package pathfind pairs PMOS/NMOS transistors sharing a gate, searches a
// Hamiltonian path over the resulting vertex graph with a Pósa-rotation
// heuristic, and scores the result with half-perimeter wire length.
package pathfind

import "errors"

// MosType distinguishes the two transistor polarities that make up one
// pairing vertex.
type MosType int8

const (
	PMOS MosType = iota
	NMOS
)

func (t MosType) String() string {
	if t == PMOS {
		return "P"
	}
	return "N"
}

// noNet marks the absence of a net: an Edge side for which no common or
// free net was found, and hence also a dummy transistor's borrowed
// terminal when the vertex it borrows from had no free net left (dummies
// tie their other three terminals to the splice net).
const noNet = -1

// Mos is one transistor. Drain/Gate/Source/Substrate are indices into the
// owning Circuit's Nets slice, or noNet.
type Mos struct {
	Name                            string
	Type                            MosType
	Drain, Gate, Source, Substrate  int
	Width, Length                   float64
	Dummy                           bool
}

// Net is a wire. Circuits keep nets in an arena and refer to them by
// index everywhere else, per the owner-plus-backref convention used
// throughout this module: a Mos owns no net, it only borrows an index.
type Net struct {
	Name string
}

// Vertex pairs one PMOS with one NMOS, indices into Circuit.Mos.
type Vertex struct {
	P, N int
}

// Edge is the (P-net, N-net) pair consumed when two vertices sit next to
// each other on a path, or borrowed as a free net at a path's open end.
// A noNet component means that side has no net (e.g. a free-net bookend
// on a vertex whose non-gate nets are all already claimed).
type Edge struct {
	P, N int
}

// Circuit is the parsed netlist: every transistor and every net it can
// reference, addressed by index.
type Circuit struct {
	Mos  []Mos
	Nets []Net
}

var (
	ErrNoMos          = errors.New("pathfind: circuit has no transistors")
	ErrUnpairedGate   = errors.New("pathfind: gate has mismatched PMOS/NMOS counts")
	ErrUndefinedNet   = errors.New("pathfind: reference to undefined net")
	ErrDisconnected   = errors.New("pathfind: vertex graph has an unreachable vertex with no rotation available")
)

// netID returns the index of name in c.Nets, creating the net if it is
// not yet known. Parsing uses this: two pins spelled the same way are the
// same net.
func (c *Circuit) netID(name string) int {
	for i, n := range c.Nets {
		if n.Name == name {
			return i
		}
	}
	c.Nets = append(c.Nets, Net{Name: name})
	return len(c.Nets) - 1
}

// newNet always appends a fresh net, bypassing netID's dedup-by-name.
// Dummy splice nets are all named "Dummy" but must stay distinct: each
// join gets its own, exactly as path_finder.cc allocates a new
// std::make_shared<Net>("Dummy") per join rather than reusing one.
func (c *Circuit) newNet(name string) int {
	c.Nets = append(c.Nets, Net{Name: name})
	return len(c.Nets) - 1
}

// newMos appends a synthetic transistor (used only for dummy splicing)
// and returns its index.
func (c *Circuit) newMos(name string, t MosType, drain, gate, source, substrate int, width, length float64) int {
	c.Mos = append(c.Mos, Mos{
		Name: name, Type: t,
		Drain: drain, Gate: gate, Source: source, Substrate: substrate,
		Width: width, Length: length, Dummy: true,
	})
	return len(c.Mos) - 1
}

// netsOf returns the drain/gate/source net indices of the transistor at
// mosIdx, substrate excluded: substrate is tied per-polarity to a single
// rail and carries no information about diffusion sharing.
func (c *Circuit) netsOf(mosIdx int) [3]int {
	m := c.Mos[mosIdx]
	return [3]int{m.Drain, m.Gate, m.Source}
}

// sharedDiffusion reports whether transistors a and b are neighbours: one's
// drain or source lands on the other's drain or source. The gate never
// counts toward this relation. connected applies it to two transistors of
// the same polarity; groupVertices applies it to a PMOS/NMOS candidate
// pair.
func (c *Circuit) sharedDiffusion(a, b int) bool {
	ma, mb := c.Mos[a], c.Mos[b]
	bNets := [2]int{mb.Drain, mb.Source}
	for _, n := range [2]int{ma.Drain, ma.Source} {
		if n == noNet {
			continue
		}
		for _, n2 := range bNets {
			if n2 != noNet && n == n2 {
				return true
			}
		}
	}
	return false
}

// connected reports whether vertices a and b are neighbours in the
// pairing graph: both their PMOS halves and both their NMOS halves must
// share a diffusion net.
func (c *Circuit) connected(a, b Vertex) bool {
	return c.sharedDiffusion(a.P, b.P) && c.sharedDiffusion(a.N, b.N)
}
