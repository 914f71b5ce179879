package snf_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-persistence/matrix"
	"github.com/katalvlaran/lvlath-persistence/snf"
)

func mustInt(t *testing.T, rows [][]int64) *matrix.IntDense {
	t.Helper()
	m, err := matrix.NewIntFromRows(rows)
	require.NoError(t, err)

	return m
}

func sorted(v []int64) []int64 {
	out := append([]int64(nil), v...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func TestCompute(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int64
		want []int64
	}{
		{"1x1 zero", [][]int64{{0}}, []int64{}},
		{"all zero", [][]int64{{0, 0}, {0, 0}}, []int64{}},
		{"single", [][]int64{{-5}}, []int64{5}},
		{"2 4 6 8", [][]int64{{2, 4}, {6, 8}}, []int64{2, 4}},
		{"diag 2 3 needs gcd pass", [][]int64{{2, 0}, {0, 3}}, []int64{1, 6}},
		{"diag 4 6", [][]int64{{4, 0}, {0, 6}}, []int64{2, 12}},
		{"row reduction", [][]int64{{3, 5}}, []int64{1}},
		{"column reduction", [][]int64{{4}, {6}}, []int64{2}},
		{"rank deficient", [][]int64{{1, 2, 3}, {2, 4, 6}}, []int64{1}},
		{"ones kept", [][]int64{{1, 0}, {0, 1}}, []int64{1, 1}},
		{"classic 3x3", [][]int64{{2, 4, 4}, {-6, 6, 12}, {10, -4, -16}}, []int64{2, 6, 12}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := snf.Compute(mustInt(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, append([]int64{}, got...))
		})
	}
}

func TestCompute_FirstDivisorIsGCD(t *testing.T) {
	got, err := snf.Compute(mustInt(t, [][]int64{{2, 4}, {6, 8}}))
	require.NoError(t, err)
	require.LessOrEqual(t, len(got), 2)
	require.Equal(t, int64(2), got[0])
}

// The divisor multiset is invariant under row and column permutations.
func TestCompute_PermutationInvariant(t *testing.T) {
	base := [][]int64{
		{2, 0, 4, 1},
		{0, 6, 0, 3},
		{4, 3, 8, 2},
	}
	ref, err := snf.Compute(mustInt(t, base))
	require.NoError(t, err)

	rowPerms := [][]int{{2, 0, 1}, {1, 2, 0}}
	colPerms := [][]int{{3, 1, 0, 2}, {1, 0, 3, 2}}
	for _, rp := range rowPerms {
		for _, cp := range colPerms {
			perm := make([][]int64, len(base))
			for i, ri := range rp {
				perm[i] = make([]int64, len(cp))
				for j, cj := range cp {
					perm[i][j] = base[ri][cj]
				}
			}
			got, err := snf.Compute(mustInt(t, perm))
			require.NoError(t, err)
			require.Equal(t, sorted(ref), sorted(got), "rows %v cols %v", rp, cp)
		}
	}
}

func TestCompute_DoesNotMutateAndIsRepeatable(t *testing.T) {
	m := mustInt(t, [][]int64{{2, 4}, {6, 8}})
	before := m.String()
	a, err := snf.Compute(m)
	require.NoError(t, err)
	b, err := snf.Compute(m)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, before, m.String())
}

func TestCompute_ProductIsAbsDeterminant(t *testing.T) {
	// det = 1*(5*10-6*8) - 2*(4*10-6*7) + 3*(4*8-5*7) = 2 + 4 - 9 = -3
	got, err := snf.Compute(mustInt(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}))
	require.NoError(t, err)
	prod := int64(1)
	for _, d := range got {
		prod *= d
	}
	require.Equal(t, int64(3), prod)
	require.Len(t, got, 3)
}

func TestReducer_Signals(t *testing.T) {
	r, err := snf.NewReducer(mustInt(t, [][]int64{{2, 0}, {0, 3}}))
	require.NoError(t, err)

	var trace []snf.Signal
	for {
		sig, _, err := r.Step()
		require.NoError(t, err)
		trace = append(trace, sig)
		if sig == snf.Halt {
			break
		}
	}
	require.Equal(t, []snf.Signal{snf.GoToInitial, snf.GoToInitial, snf.NextStep, snf.NextStep, snf.Halt}, trace)
	require.Equal(t, []int64{1, 6}, r.Invariants())
	require.Equal(t, snf.Stats{Pivots: 2, Retries: 2}, r.Stats())

	_, _, err = r.Step()
	require.ErrorIs(t, err, snf.ErrExhausted)
	require.Equal(t, "GoToInitial", snf.GoToInitial.String())
}

func TestReducer_HaltOnZeroBlock(t *testing.T) {
	r, err := snf.NewReducer(mustInt(t, [][]int64{{3, 0}, {0, 0}}))
	require.NoError(t, err)
	got, err := r.Run()
	require.NoError(t, err)
	require.Equal(t, []int64{3}, got)
	require.True(t, r.Stats().Halted)
}

func TestComputeMatrix(t *testing.T) {
	// ∂_1 of a triangle over Z: divisors 1, 1 (no torsion).
	d, err := matrix.NewFromRows([][]float64{{-1, -1, 0}, {1, 0, -1}, {0, 1, 1}})
	require.NoError(t, err)
	got, err := snf.ComputeMatrix(d)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 1}, got)

	bad, err := matrix.NewFromRows([][]float64{{0.5}})
	require.NoError(t, err)
	_, err = snf.ComputeMatrix(bad)
	require.ErrorIs(t, err, matrix.ErrNonInteger)

	_, err = snf.Compute(nil)
	require.ErrorIs(t, err, snf.ErrNilMatrix)
}
