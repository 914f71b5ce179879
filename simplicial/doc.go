// SPDX-License-Identifier: MIT

// Package simplicial models abstract simplicial complexes and their boundary
// operators.
//
// What is it?
//
//	A k-simplex is an ordered list of k+1 distinct vertex indices. A complex
//	groups its simplices by dimension into chain groups C_0, C_1, …, C_dim,
//	each an ordered basis of a free module over the complex's coefficient
//	Ring. The boundary operator ∂_n : C_n → C_{n−1} maps a simplex to the
//	signed sum of its codimension-1 faces.
//
// Conventions:
//
//	• Vertices inside a Simplex are strictly ascending; NewSimplex rejects
//	  anything else (ErrUnsorted). Face lookups are by exact vertex-list
//	  equality, so this ordering is what keeps them correct.
//	• Chain groups preserve input order per dimension; column j of ∂_n is
//	  Chain(n)[j], row i is Chain(n−1)[i].
//	• ∂_0 is the 1×|C_0| zero matrix; ∂_n for n > Dimension() is the 1×1 zero
//	  matrix.
//	• The column of σ carries (−1)^i at the row of the face obtained by
//	  deleting vertex i. A missing face is an invariant violation and is
//	  reported as ErrMissingFace (marked as an assertion failure).
//
// Complexity:
//
//	NewComplex O(N·k); Boundary(n) O(|C_n|·(n+1)) with hashed face lookup.
package simplicial
