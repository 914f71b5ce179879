// Package snf reduces integer matrices to Smith normal form and returns their
// elementary divisors.
//
// What is it?
//
//	Every integer matrix M can be brought to a diagonal form D = U·M·V with
//	unimodular U, V. The nonzero diagonal entries are the elementary
//	divisors; over the integers the ones ≥ 2 are the torsion coefficients of
//	the homology the boundary matrix M describes.
//
// How it works:
//
//	The reduction is an explicit state machine. Each Step picks the smallest
//	nonzero |entry| as pivot and reports one Signal:
//	  • NextStep    – pivot divides its row/column; they are cleared and the
//	                  pivot is emitted. The live block shrinks by one.
//	  • GoToInitial – a remainder was pushed next to the pivot; the smaller
//	                  remainder becomes the next pivot (gcd extraction).
//	  • Halt        – the live block is all zero; nothing left to emit.
//
//	Arithmetic is exact int64 with overflow detection (matrix.ErrOverflow).
//
// Usage:
//
//	m, _ := matrix.NewIntFromRows([][]int64{{2, 4}, {6, 8}})
//	divs, err := snf.Compute(m) // [2 4]
package snf
