// SPDX-License-Identifier: MIT
// Package: matrix
//
// options.go: numeric policy defaults and functional options for the
// spectral kernels (SingularValues, Rank).
//
// Contract (strict):
//   • Options are functional (type Option func(*Options)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     kernels themselves MUST NOT panic.
//   • No hidden globals; everything flows through Options.

package matrix

import "math"

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultMaxSweeps caps the number of one-sided Jacobi sweeps in SingularValues.
	// Quadratic convergence makes 10–15 sweeps typical for n ≤ 512.
	DefaultMaxSweeps = 100

	// DefaultOrthTol is the relative column-orthogonality threshold that ends a sweep.
	DefaultOrthTol = 1e-12
)

// Options carries the resolved settings of the spectral kernels.
type Options struct {
	maxSweeps int     // > 0
	orthTol   float64 // > 0, relative
}

// Option mutates Options before a kernel starts.
type Option func(*Options)

// WithMaxSweeps bounds the number of Jacobi sweeps. Panics on n <= 0.
func WithMaxSweeps(n int) Option {
	if n <= 0 {
		panic("matrix: WithMaxSweeps(n<=0)")
	}

	return func(o *Options) { o.maxSweeps = n }
}

// WithOrthTol sets the relative orthogonality threshold.
// Panics on non-positive or non-finite values.
func WithOrthTol(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("matrix: WithOrthTol(tol) requires a finite tol > 0")
	}

	return func(o *Options) { o.orthTol = tol }
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{maxSweeps: DefaultMaxSweeps, orthTol: DefaultOrthTol}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
