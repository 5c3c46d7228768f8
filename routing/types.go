// Package routing implements left-edge channel routing against rectilinear
// top/bottom boundaries: nets are assigned first to existing notches in the
// boundaries (Phase T, Phase B), then to fresh tracks inside the channel
// itself (Phase C), subject to the vertical constraints pin mismatches
// impose between nets.
//
// Grounded on original_source/routing: instance.h/result.h for the data
// model, router.cc for the horizontal/vertical constraint graph
// construction (the only two phases the original actually implements), and
// util.cc for the interval relations the phases place nets with.
package routing

import (
	"errors"
	"sort"
)

// Sentinel errors surfaced at the routing package boundary.
var (
	// ErrMismatchedColumns is returned when the top and bottom net-id rows
	// have different lengths.
	ErrMismatchedColumns = errors.New("routing: top and bottom pin rows must have the same number of columns")
	// ErrNoNets is returned when every column is empty on both boundaries.
	ErrNoNets = errors.New("routing: instance names no nets")
	// ErrCyclicConstraint is returned when the vertical constraint graph
	// contains a cycle, making the instance unroutable in a single pass.
	ErrCyclicConstraint = errors.New("routing: vertical constraint graph has a cycle")
)

// emptySlot is the net id used for "no pin in this column".
const emptySlot = 0

// Interval is an inclusive column range [Lo, Hi].
type Interval struct {
	Lo, Hi int
}

// overlaps reports whether two intervals share a column.
func (a Interval) overlaps(b Interval) bool {
	return a.Lo <= b.Hi && b.Lo <= a.Hi
}

// IsContainedBy reports whether b is a proper subset of a.
func IsContainedBy(b, a Interval) bool {
	return a.Lo < b.Lo && a.Hi > b.Hi
}

// IsAdjacent reports whether a and b touch end to end without overlapping.
func IsAdjacent(a, b Interval) bool {
	return a.Lo == b.Hi+1 || a.Hi == b.Lo-1
}

// Union returns the smallest interval covering both a and b.
func Union(a, b Interval) Interval {
	lo, hi := a.Lo, a.Hi
	if b.Lo < lo {
		lo = b.Lo
	}
	if b.Hi > hi {
		hi = b.Hi
	}
	return Interval{Lo: lo, Hi: hi}
}

// mergeInterval inserts iv into merged, a sorted disjoint-interval union,
// coalescing iv with any existing interval it overlaps or touches
// (IsAdjacent), and returns the updated, still-sorted union. Used to build
// up Phase T/B's "running sorted union of disjoint, possibly-adjacent
// intervals" one boundary distance at a time.
func mergeInterval(merged []Interval, iv Interval) []Interval {
	out := make([]Interval, 0, len(merged)+1)
	for _, m := range merged {
		if m.overlaps(iv) || IsAdjacent(m, iv) {
			iv = Union(m, iv)
			continue
		}
		out = append(out, m)
	}
	out = append(out, iv)
	sort.Slice(out, func(i, j int) bool { return out[i].Lo < out[j].Lo })
	return out
}

// containedInAny reports whether span is strictly contained in some
// interval of merged.
func containedInAny(span Interval, merged []Interval) bool {
	for _, m := range merged {
		if IsContainedBy(span, m) {
			return true
		}
	}
	return false
}

// Instance is a channel-routing problem: one net id per column on the top
// and bottom boundary (emptySlot for no pin), plus whatever pre-existing
// notches the rectilinear top/bottom boundaries already have, ordered
// innermost-first (closest to the channel).
type Instance struct {
	TopNetIDs, BottomNetIDs []int
	TopBoundary, BottomBoundary [][]Interval
}

// Segment is one net's placement on one track: the column span it occupies
// and which net occupies it.
type Segment struct {
	Span  Interval
	NetID int
}

// Result is where every net ended up: top-boundary notches, in-channel
// tracks (both ordered innermost first), and bottom-boundary notches.
type Result struct {
	TopTracks    [][]Segment
	Tracks       [][]Segment
	BottomTracks [][]Segment
}
