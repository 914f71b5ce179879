// SPDX-License-Identifier: MIT
// Package matrix - singular values and numeric rank.
//
// Purpose:
//   - SingularValues: one-sided (Hestenes) Jacobi SVD. Pairs of columns are
//     rotated until mutually orthogonal; the column norms are then the
//     singular values. The rotation parameters are the same (θ, t, c, s)
//     used by Eigen, applied to the Gram entries of a column pair.
//   - Rank: number of singular values strictly above a tolerance.
//   - A column whose squared norm is below (rows·ε·‖A‖_F)² is treated as
//     already converged. Rank-deficient inputs collapse columns to round-off
//     size, and the relative orthogonality test can never pass for them.
//
// Determinism:
//   - Cyclic (p<q) sweep order; identical inputs give bitwise identical output.
//
// Complexity:
//   - One sweep is O(m·n²) for an m×n input with n ≤ m (wide inputs are transposed).

package matrix

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
)

// machineEpsilon is the float64 machine epsilon, 2⁻⁵².
const machineEpsilon = 0x1p-52

// SingularValues returns the singular values of m in descending order.
// The result has min(Rows, Cols) entries; an empty shape yields nil.
//
// Errors:
//   - ErrNilMatrix, ErrMatrixEigenFailed when the sweep cap is reached
//     before the columns are orthogonal.
func SingularValues(m Matrix, opts ...Option) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	o := gatherOptions(opts...)

	var (
		w   *Dense
		err error
	)
	// Work on the orientation with fewer columns: fewer pairs per sweep.
	if m.Cols() > m.Rows() {
		var t Matrix
		if t, err = Transpose(m); err != nil {
			return nil, matrixErrorf(opSVD, err)
		}
		w = t.(*Dense)
	} else if w, err = toDense(m); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	rows, cols := w.r, w.c
	if rows == 0 || cols == 0 {
		return nil, nil
	}

	var (
		sweep, p, q, k     int
		alpha, beta, gamma float64
		zeta, t, c, s      float64
		up, uq             float64
		rotated            bool
		converged          bool
		frob               float64
	)
	for _, v := range w.data {
		frob += v * v
	}
	negligible := float64(rows) * machineEpsilon * math.Sqrt(frob)
	negligible *= negligible

	for sweep = 0; sweep < o.maxSweeps; sweep++ {
		rotated = false
		for p = 0; p < cols-1; p++ {
			for q = p + 1; q < cols; q++ {
				alpha, beta, gamma = ZeroSum, ZeroSum, ZeroSum
				for k = 0; k < rows; k++ {
					up = w.data[k*cols+p]
					uq = w.data[k*cols+q]
					alpha += up * up
					beta += uq * uq
					gamma += up * uq
				}
				if alpha <= negligible || beta <= negligible {
					continue
				}
				if gamma == 0 || math.Abs(gamma) <= o.orthTol*math.Sqrt(alpha*beta) {
					continue
				}
				rotated = true
				zeta = (beta - alpha) / (2 * gamma)
				t = math.Copysign(1.0/(math.Abs(zeta)+math.Hypot(zeta, 1)), zeta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = c * t
				for k = 0; k < rows; k++ {
					up = w.data[k*cols+p]
					uq = w.data[k*cols+q]
					w.data[k*cols+p] = c*up - s*uq
					w.data[k*cols+q] = s*up + c*uq
				}
			}
		}
		if !rotated {
			converged = true
			break
		}
	}
	if !converged {
		return nil, matrixErrorf(opSVD, errors.Wrapf(ErrMatrixEigenFailed, "no convergence after %d sweeps", o.maxSweeps))
	}

	sv := make([]float64, cols)
	var norm float64
	for q = 0; q < cols; q++ {
		norm = NormZero
		for k = 0; k < rows; k++ {
			norm += w.data[k*cols+q] * w.data[k*cols+q]
		}
		sv[q] = math.Sqrt(norm)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sv)))

	return sv, nil
}

// Rank returns the numeric rank of m: the number of singular values > tol.
// Zero-area matrices have rank 0.
//
// Errors: ErrNilMatrix, ErrBadTolerance, and SingularValues failures.
func Rank(m Matrix, tol float64, opts ...Option) (int, error) {
	if err := ValidateTolerance(tol); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	if d, ok := m.(*Dense); ok && d != nil && d.IsZero() {
		return 0, nil // zero sentinels (∂_0, out-of-range ∂_n) skip the sweep
	}
	sv, err := SingularValues(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	r := 0
	for _, v := range sv {
		if v > tol {
			r++
		}
	}

	return r, nil
}
