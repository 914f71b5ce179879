// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-persistence/matrix"
)

func mustInt(t *testing.T, rows [][]int64) *matrix.IntDense {
	t.Helper()
	m, err := matrix.NewIntFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestIntDense_SwapAndAdd(t *testing.T) {
	m := mustInt(t, [][]int64{{1, 2}, {3, 4}})
	require.NoError(t, m.SwapRows(0, 1))
	require.Equal(t, "[3, 4]\n[1, 2]\n", m.String())
	require.NoError(t, m.SwapCols(0, 1))
	require.Equal(t, "[4, 3]\n[2, 1]\n", m.String())

	require.NoError(t, m.AddRowMultiple(0, 1, -2)) // row0 = [4-4, 3-2]
	require.Equal(t, "[0, 1]\n[2, 1]\n", m.String())
	require.NoError(t, m.AddColMultiple(1, 0, 3)) // col1 += 3*col0
	require.Equal(t, "[0, 1]\n[2, 7]\n", m.String())
}

func TestIntDense_Overflow(t *testing.T) {
	m := mustInt(t, [][]int64{{math.MaxInt64, 1}, {1, 1}})
	err := m.AddRowMultiple(0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrOverflow)
	err = m.AddColMultiple(1, 0, 2)
	require.ErrorIs(t, err, matrix.ErrOverflow)
}

func TestIntDense_Bounds(t *testing.T) {
	m := mustInt(t, [][]int64{{1}})
	require.ErrorIs(t, m.SwapRows(0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddColMultiple(0, 2, 1), matrix.ErrOutOfRange)
	_, err := m.At(1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.NewIntFromRows([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIntFromMatrix(t *testing.T) {
	d := MustFromRows(t, [][]float64{{1, -1}, {0, 2}})
	m, err := matrix.IntFromMatrix(d)
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	v, _ = m.At(0, 0)
	require.Equal(t, int64(1), v)

	_, err = matrix.IntFromMatrix(MustFromRows(t, [][]float64{{0.5}}))
	require.ErrorIs(t, err, matrix.ErrNonInteger)
}
