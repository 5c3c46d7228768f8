// Package dfs provides topological sorting over core.Graph, used by
// routing to detect vertical-constraint-graph cycles.
package dfs

import "errors"

// Vertex visitation state used by TopologicalSort.
const (
	White = iota // not yet visited
	Gray         // on the current recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)
