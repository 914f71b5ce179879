// Package matrix offers the dense linear-algebra primitives behind the
// homology engine.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and a
//     finite-value numeric policy. Boundary operators are materialized as Dense.
//   - IntDense: an exact int64 matrix with overflow-checked elementary row and
//     column operations, the input of Smith normal form reduction.
//   - Kernels: Mul, Transpose, Eigen (symmetric Jacobi) and SingularValues
//     (one-sided Jacobi), plus Rank(m, tol), the numeric rank primitive that
//     counts singular values above tol.
//
// All kernels validate inputs through validators.go and return sentinel
// errors from errors.go; match them with errors.Is.
//
//	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 4}})
//	r, _ := matrix.Rank(m, 1e-6) // r == 1
package matrix
