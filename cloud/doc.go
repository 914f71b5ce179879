// SPDX-License-Identifier: MIT

// Package cloud holds validated point clouds: an ordered, immutable list of
// points sharing one ambient dimension D ∈ {2, 3}.
//
// Point index i is the vertex index every simplex refers to, so order is
// significant and preserved by all loaders.
//
// Loaders:
//
//	ReadCSV  – one point per record, '#' comments, blank lines skipped.
//	ReadJSON – an array of coordinate arrays, e.g. [[0,0],[1,0.5]].
//
// Distances are L1 (Manhattan), matching the filtration's metric.
package cloud
