// Package homology extracts Betti numbers and torsion coefficients from a
// simplicial.Complex.
//
// For 0 ≤ n ≤ dim the n-th Betti number follows from rank–nullity:
//
//	b_n = dim C_n − rank ∂_n − rank ∂_{n+1}
//
// where ranks are numeric (singular values above Tolerance). Over Z the
// torsion of H_n is read from the Smith normal form of ∂_{n+1}: every
// elementary divisor ≥ 2, in extraction order, duplicates kept. Over R there
// is no torsion. The Trivial ring computes nothing and is rejected with
// ErrUnsupportedRing.
//
// All evaluates degrees 0..T−1 and can fan them out over an errgroup; results
// are merged by degree, so the output never depends on scheduling.
package homology
