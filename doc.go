// Package physdesign collects four classical VLSI CAD physical-design
// algorithms as independent, synchronous, file-in/file-out engines:
//
//	partition/ — Fiduccia-Mattheyses two-way hypergraph partitioning
//	floorplan/ — slicing-tree simulated-annealing floorplanning
//	routing/   — left-edge channel routing against rectilinear boundaries
//	pathfind/  — PMOS/NMOS Hamiltonian-path transistor pairing + HPWL
//
// Each engine is a standalone library package plus a thin cmd/<engine>
// binary; none of the four shares run-time state with another, and none
// does its own I/O beyond what its Parse/WriteResult pair defines. The
// ambient concerns common to all four — logging, configuration, RNG
// determinism, and CLI plumbing — live under internal/.
//
// This file carries no code; see each subpackage's doc comment for its
// algorithm and invariants.
package physdesign
