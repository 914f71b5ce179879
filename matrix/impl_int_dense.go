// SPDX-License-Identifier: MIT

// Package matrix - IntDense: exact int64 storage for integer reductions.
//
// Purpose:
//   - Hold integer-valued matrices (boundary operators over Z) without any
//     floating-point rounding.
//   - Provide the elementary row/column operations used by Smith normal form:
//     swaps and "add k times one line to another", with overflow detection.
//
// Determinism:
//   - Fixed row-major layout and loop order; operations are exact or fail.

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/JohnCGriffin/overflow"
	"github.com/cockroachdb/errors"
)

const (
	ctxIntAt  = "At"
	ctxIntSet = "Set"
	ctxAddRow = "AddRowMultiple"
	ctxAddCol = "AddColMultiple"
	ctxSwap   = "Swap"
	ctxToInt  = "IntFromMatrix"
)

// IntDense is a row-major matrix of int64 values.
// Zero-sized shapes are legal (they arise when a reduction shrinks to nothing).
type IntDense struct {
	r, c int
	data []int64
}

var _ fmt.Stringer = (*IntDense)(nil)

// NewIntDense creates an r×c zero integer matrix. Negative sizes → ErrInvalidDimensions.
func NewIntDense(rows, cols int) (*IntDense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &IntDense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewIntFromRows copies a rectangular [][]int64 into a fresh IntDense.
func NewIntFromRows(rows [][]int64) (*IntDense, error) {
	if len(rows) == 0 {
		return NewIntDense(0, 0)
	}
	c := len(rows[0])
	m, err := NewIntDense(len(rows), c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, errors.Wrapf(ErrDimensionMismatch, "row %d has %d cols, want %d", i, len(row), c)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// IntFromMatrix converts a real matrix with integral entries into an IntDense.
// Any non-integral or out-of-int64-range entry yields ErrNonInteger.
func IntFromMatrix(m Matrix) (*IntDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, errors.Wrap(err, ctxToInt)
	}
	out, err := NewIntDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, errors.Wrap(err, ctxToInt)
	}
	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, errors.Wrap(err, ctxToInt)
			}
			if v != math.Trunc(v) || math.Abs(v) >= math.MaxInt64 {
				return nil, errors.Wrapf(ErrNonInteger, "%s: (%d,%d)=%g", ctxToInt, i, j, v)
			}
			out.data[i*out.c+j] = int64(v)
		}
	}

	return out, nil
}

// Rows returns the row count.
func (m *IntDense) Rows() int { return m.r }

// Cols returns the column count.
func (m *IntDense) Cols() int { return m.c }

// At returns the value at (row, col) or ErrOutOfRange.
func (m *IntDense) At(row, col int) (int64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, errors.Wrapf(ErrOutOfRange, "IntDense.%s(%d,%d)", ctxIntAt, row, col)
	}

	return m.data[row*m.c+col], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *IntDense) Set(row, col int, v int64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return errors.Wrapf(ErrOutOfRange, "IntDense.%s(%d,%d)", ctxIntSet, row, col)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Clone returns a deep copy.
func (m *IntDense) Clone() *IntDense {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &IntDense{r: m.r, c: m.c, data: cp}
}

// SwapRows exchanges rows i and j in place.
func (m *IntDense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return errors.Wrapf(ErrOutOfRange, "IntDense.%sRows(%d,%d)", ctxSwap, i, j)
	}
	if i == j {
		return nil
	}
	var k int
	bi, bj := i*m.c, j*m.c
	for k = 0; k < m.c; k++ {
		m.data[bi+k], m.data[bj+k] = m.data[bj+k], m.data[bi+k]
	}

	return nil
}

// SwapCols exchanges columns i and j in place.
func (m *IntDense) SwapCols(i, j int) error {
	if i < 0 || i >= m.c || j < 0 || j >= m.c {
		return errors.Wrapf(ErrOutOfRange, "IntDense.%sCols(%d,%d)", ctxSwap, i, j)
	}
	if i == j {
		return nil
	}
	var k, base int
	for k = 0; k < m.r; k++ {
		base = k * m.c
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}

	return nil
}

// AddRowMultiple performs row[dst] += k * row[src] exactly.
// Returns ErrOverflow (leaving the matrix partially updated) if any entry
// leaves the int64 range; callers treat that as fatal for the reduction.
func (m *IntDense) AddRowMultiple(dst, src int, k int64) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r {
		return errors.Wrapf(ErrOutOfRange, "IntDense.%s(%d,%d)", ctxAddRow, dst, src)
	}
	if k == 0 {
		return nil
	}
	var j int
	bd, bs := dst*m.c, src*m.c
	for j = 0; j < m.c; j++ {
		v, err := mulAdd(m.data[bd+j], m.data[bs+j], k)
		if err != nil {
			return errors.Wrapf(err, "IntDense.%s(%d,%d) col %d", ctxAddRow, dst, src, j)
		}
		m.data[bd+j] = v
	}

	return nil
}

// AddColMultiple performs col[dst] += k * col[src] exactly.
func (m *IntDense) AddColMultiple(dst, src int, k int64) error {
	if dst < 0 || dst >= m.c || src < 0 || src >= m.c {
		return errors.Wrapf(ErrOutOfRange, "IntDense.%s(%d,%d)", ctxAddCol, dst, src)
	}
	if k == 0 {
		return nil
	}
	var i, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		v, err := mulAdd(m.data[base+dst], m.data[base+src], k)
		if err != nil {
			return errors.Wrapf(err, "IntDense.%s(%d,%d) row %d", ctxAddCol, dst, src, i)
		}
		m.data[base+dst] = v
	}

	return nil
}

// mulAdd returns acc + x*k or ErrOverflow.
func mulAdd(acc, x, k int64) (int64, error) {
	if x == 0 {
		return acc, nil
	}
	p, ok := overflow.Mul64(x, k)
	if !ok {
		return 0, ErrOverflow
	}
	s, ok := overflow.Add64(acc, p)
	if !ok {
		return 0, ErrOverflow
	}

	return s, nil
}

// String provides a readable row-wise dump for diagnostics.
func (m *IntDense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%d", m.data[i*m.c+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
