// SPDX-License-Identifier: MIT

// Package spatial answers exact fixed-radius neighbor queries over a
// cloud.Cloud under the L1 metric.
//
// Index is the only capability the filtration needs:
//
//	Within(i, r) → every other point j with L1(p_i, p_j) ≤ r, sorted by j.
//
// Two implementations are provided:
//
//	KDTree     – gonum spatial/kdtree with an exact L1 radius keeper.
//	BruteForce – O(n) scan per query; the reference the tree is tested against.
//
// Both compute distances with cloud.Cloud.Distance, so results agree bit for
// bit, including points exactly on the radius.
package spatial
