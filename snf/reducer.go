package snf

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlath-persistence/matrix"
	"github.com/katalvlaran/lvlath-persistence/metrics"
)

// Reducer owns a private copy of the input and the reduction state.
// The live block is rows/cols [off, Rows) × [off, Cols); everything above and
// left of it is already diagonal.
type Reducer struct {
	m          *matrix.IntDense
	off        int
	invariants []int64
	stats      Stats
	done       bool
}

// NewReducer clones m so the caller's matrix is never mutated.
func NewReducer(m *matrix.IntDense) (*Reducer, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return &Reducer{m: m.Clone()}, nil
}

// Compute returns the nonzero elementary divisors of m (absolute values) in
// extraction order. Divisors equal to 1 are kept; filtering to torsion is the
// caller's job. A 1×1 zero matrix yields an empty list.
func Compute(m *matrix.IntDense) ([]int64, error) {
	r, err := NewReducer(m)
	if err != nil {
		return nil, err
	}

	return r.Run()
}

// ComputeMatrix converts an integral real matrix (e.g. a boundary operator)
// and runs Compute on it.
func ComputeMatrix(m matrix.Matrix) ([]int64, error) {
	im, err := matrix.IntFromMatrix(m)
	if err != nil {
		return nil, errors.Wrap(err, "snf")
	}

	return Compute(im)
}

// Run drives Step until Halt or until the live block is empty.
func (r *Reducer) Run() ([]int64, error) {
	for !r.done {
		if _, _, err := r.Step(); err != nil {
			return nil, err
		}
	}

	return r.Invariants(), nil
}

// Invariants returns a copy of the divisors emitted so far.
func (r *Reducer) Invariants() []int64 {
	out := make([]int64, len(r.invariants))
	copy(out, r.invariants)

	return out
}

// Stats returns the counters accumulated so far.
func (r *Reducer) Stats() Stats { return r.stats }

// live returns the current live block shape (p rows, q cols).
func (r *Reducer) live() (int, int) {
	return r.m.Rows() - r.off, r.m.Cols() - r.off
}

// at reads live-block coordinates; indices are always in range here.
func (r *Reducer) at(i, j int) int64 {
	v, _ := r.m.At(r.off+i, r.off+j)

	return v
}

// Step performs one transition of the reduction and reports the signal.
// On NextStep the second result is the emitted divisor (absolute value).
//
// When an interior entry is not divisible by the pivot, Step adds its row to
// the pivot row and signals GoToInitial rather than NextStep. No divisor is
// emitted on that transition; the next pass reduces the pulled-in entry
// modulo the pivot. diag(2, 3) takes two GoToInitial steps before emitting 1.
func (r *Reducer) Step() (Signal, int64, error) {
	if r.done {
		return Halt, 0, ErrExhausted
	}
	p, q := r.live()
	if p <= 0 || q <= 0 {
		r.done = true
		return Halt, 0, nil
	}

	i, j, a, ok := r.minPos(p, q)
	if !ok {
		r.done = true
		r.stats.Halted = true
		metrics.SNFHaltsTotal.Inc()
		return Halt, 0, nil
	}
	if err := r.swapToTop(i, j); err != nil {
		return Halt, 0, err
	}

	bi, bj, found := r.badEntry(a, p, q)
	switch {
	case !found:
		// Pivot divides everything: clear row/col 0 and emit.
		if err := r.blockDiagonal(a, p, q); err != nil {
			return Halt, 0, err
		}
		return r.emit(a), abs(a), nil

	case bi == 0:
		// Row 0: column op reduces m[0,j] modulo a.
		k := divEuclid(r.at(0, bj), a)
		if err := r.m.AddColMultiple(r.off+bj, r.off, -k); err != nil {
			return Halt, 0, err
		}
		return r.retry(), 0, nil

	case bj == 0:
		// Column 0: row op reduces m[i,0] modulo a.
		k := divEuclid(r.at(bi, 0), a)
		if err := r.m.AddRowMultiple(r.off+bi, r.off, -k); err != nil {
			return Halt, 0, err
		}
		return r.retry(), 0, nil

	default:
		// Interior entry: clear row/col 0 first, then re-check.
		if err := r.blockDiagonal(a, p, q); err != nil {
			return Halt, 0, err
		}
		if ri, _, still := r.badEntry(a, p, q); still {
			// Pull the offending row into the pivot row; its entry now sits in
			// row 0 and the next pass reduces it modulo a.
			if err := r.m.AddRowMultiple(r.off, r.off+ri, 1); err != nil {
				return Halt, 0, err
			}
			return r.retry(), 0, nil
		}
		return r.emit(a), abs(a), nil
	}
}

// emit records |a|, shrinks the live block and signals NextStep.
func (r *Reducer) emit(a int64) Signal {
	r.invariants = append(r.invariants, abs(a))
	r.off++
	r.stats.Pivots++
	metrics.SNFPivotsTotal.Inc()

	return NextStep
}

func (r *Reducer) retry() Signal {
	r.stats.Retries++
	metrics.SNFRetriesTotal.Inc()

	return GoToInitial
}

// minPos finds the entry of minimal nonzero |value|, first in row-major order.
func (r *Reducer) minPos(p, q int) (int, int, int64, bool) {
	var (
		i, j       int
		bi, bj     int
		best, v, w int64
		found      bool
	)
	for i = 0; i < p; i++ {
		for j = 0; j < q; j++ {
			v = r.at(i, j)
			if v == 0 {
				continue
			}
			w = abs(v)
			if !found || w < best {
				bi, bj, best, found = i, j, w, true
			}
		}
	}
	if !found {
		return 0, 0, 0, false
	}

	return bi, bj, r.at(bi, bj), true
}

// swapToTop moves the live entry (i,j) to live (0,0).
func (r *Reducer) swapToTop(i, j int) error {
	if err := r.m.SwapRows(r.off+i, r.off); err != nil {
		return err
	}

	return r.m.SwapCols(r.off+j, r.off)
}

// badEntry finds an entry not divisible by a: row 0 first, then column 0,
// then the interior in row-major order.
func (r *Reducer) badEntry(a int64, p, q int) (int, int, bool) {
	var i, j int
	for j = 1; j < q; j++ {
		if r.at(0, j)%a != 0 {
			return 0, j, true
		}
	}
	for i = 1; i < p; i++ {
		if r.at(i, 0)%a != 0 {
			return i, 0, true
		}
	}
	for i = 1; i < p; i++ {
		for j = 1; j < q; j++ {
			if r.at(i, j)%a != 0 {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// blockDiagonal zeroes the rest of row 0 and column 0. Every entry there
// must be a multiple of a, so the quotients are exact.
func (r *Reducer) blockDiagonal(a int64, p, q int) error {
	var i, j int
	for i = 1; i < p; i++ {
		if v := r.at(i, 0); v != 0 {
			if err := r.m.AddRowMultiple(r.off+i, r.off, -(v / a)); err != nil {
				return err
			}
		}
	}
	for j = 1; j < q; j++ {
		if v := r.at(0, j); v != 0 {
			if err := r.m.AddColMultiple(r.off+j, r.off, -(v / a)); err != nil {
				return err
			}
		}
	}

	return nil
}

// divEuclid returns the Euclidean quotient k with x - k*a in [0, |a|).
func divEuclid(x, a int64) int64 {
	k := x / a
	if x%a < 0 {
		if a > 0 {
			k--
		} else {
			k++
		}
	}

	return k
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
