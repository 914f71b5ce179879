// SPDX-License-Identifier: MIT

// Package rips builds Vietoris-Rips filtrations over a point cloud and
// records how their homology changes with the scale ε.
//
// What is it?
//
//	At scale ε the Vietoris-Rips complex contains an edge {i,j} whenever
//	L1(p_i, p_j) ≤ ε, and every triangle (and, for 3-D clouds, every
//	tetrahedron) whose edges are all present. As ε grows the complex only
//	gains simplices; Analyze samples ε = 0, step, 2·step, … ≤ end and emits
//	a Record for each plateau on which the Betti numbers and torsion of
//	H_0..H_{T−1} stay constant.
//
// State:
//
//	A Builder owns the scan state (ε, the 1-skeleton, the accumulated
//	simplex list and the triangle/tetrahedron sets). All of it only grows
//	during a scan; each Analyze call starts a fresh scan.
//
// Options:
//
//	WithDegrees(T)              – number of homology degrees (default 3).
//	WithIndex(idx)              – spatial.Index to query (default kd-tree).
//	WithLogger(l)               – zerolog logger (default disabled).
//	WithParallelHomology(bool)  – compute the T degrees concurrently.
//	WithIncrementalNeighbors(b) – accept edges by distance band instead of
//	                              checking the skeleton.
//	WithContext(ctx)            – abort between ε-steps on cancellation.
//	WithOnStep(fn)              – observe each ε-step.
//
// Invalid options are reported by New as ErrOptionViolation.
package rips
