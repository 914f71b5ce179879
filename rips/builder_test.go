// SPDX-License-Identifier: MIT
package rips_test

import (
	"bytes"
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-persistence/cloud"
	"github.com/katalvlaran/lvlath-persistence/homology"
	"github.com/katalvlaran/lvlath-persistence/rips"
	"github.com/katalvlaran/lvlath-persistence/simplicial"
	"github.com/katalvlaran/lvlath-persistence/spatial"
)

func mustCloud(t *testing.T, pts ...cloud.Point) *cloud.Cloud {
	t.Helper()
	c, err := cloud.New(pts)
	require.NoError(t, err)

	return c
}

func mustBuilder(t *testing.T, c *cloud.Cloud, opts ...rips.Option) *rips.Builder {
	t.Helper()
	b, err := rips.New(c, opts...)
	require.NoError(t, err)

	return b
}

func noTorsion(t int) [][]int64 {
	out := make([][]int64, t)
	for i := range out {
		out[i] = []int64{}
	}

	return out
}

// Three points at pairwise L1 distance 1: components merge and the
// triangle closes at the same ε.
func TestAnalyze_Triangle(t *testing.T) {
	c := mustCloud(t, cloud.Point{0, 0}, cloud.Point{1, 0}, cloud.Point{0.5, 0.5})
	for _, ring := range []simplicial.Ring{simplicial.R, simplicial.Z} {
		b := mustBuilder(t, c)
		got, err := b.Analyze(ring, 1.5, 0.25)
		require.NoError(t, err)
		require.Equal(t, []rips.Record{
			{Start: 0, End: 1, Ranks: []int{3, 0, 0}, Torsions: noTorsion(3)},
			{Start: 1, End: 1.75, Ranks: []int{1, 0, 0}, Torsions: noTorsion(3)},
		}, got)
		require.Equal(t, 1.75, b.Epsilon())
		require.Len(t, b.Simplices(), 7)
		require.Equal(t, 3, b.Skeleton().Edges())
	}
}

func TestAnalyze_SinglePoint(t *testing.T) {
	b := mustBuilder(t, mustCloud(t, cloud.Point{2, -1, 4}))
	got, err := b.Analyze(simplicial.Z, 1, 0.25)
	require.NoError(t, err)
	require.Equal(t, []rips.Record{
		{Start: 0, End: 1.25, Ranks: []int{1, 0, 0}, Torsions: noTorsion(3)},
	}, got)
}

// A unit square opens a 1-cycle at ε=1; at ε=2 the diagonals fill in four
// triangles but no tetrahedron (D=2), leaving a hollow 2-sphere.
func TestAnalyze_SquareIn2D(t *testing.T) {
	c := mustCloud(t, cloud.Point{0, 0}, cloud.Point{1, 0}, cloud.Point{1, 1}, cloud.Point{0, 1})
	got, err := mustBuilder(t, c).Analyze(simplicial.R, 2.5, 0.5)
	require.NoError(t, err)
	require.Equal(t, []rips.Record{
		{Start: 0, End: 1, Ranks: []int{4, 0, 0}, Torsions: noTorsion(3)},
		{Start: 1, End: 2, Ranks: []int{1, 1, 0}, Torsions: noTorsion(3)},
		{Start: 2, End: 3, Ranks: []int{1, 0, 1}, Torsions: noTorsion(3)},
	}, got)
}

// In 3-D the same clique is filled by a tetrahedron.
func TestAnalyze_TetrahedronIn3D(t *testing.T) {
	c := mustCloud(t,
		cloud.Point{0, 0, 0}, cloud.Point{1, 1, 0}, cloud.Point{1, 0, 1}, cloud.Point{0, 1, 1})
	b := mustBuilder(t, c)
	got, err := b.Analyze(simplicial.Z, 2, 1)
	require.NoError(t, err)
	require.Equal(t, []rips.Record{
		{Start: 0, End: 2, Ranks: []int{4, 0, 0}, Torsions: noTorsion(3)},
		{Start: 2, End: 3, Ranks: []int{1, 0, 0}, Torsions: noTorsion(3)},
	}, got)

	cx, err := b.Complex(simplicial.Z)
	require.NoError(t, err)
	require.Equal(t, 3, cx.Dimension())
	require.Equal(t, 1, cx.DimC(3))
}

func TestAnalyze_Errors(t *testing.T) {
	b := mustBuilder(t, mustCloud(t, cloud.Point{0, 0}, cloud.Point{1, 1}))
	for _, step := range []float64{0, -0.5, math.NaN(), math.Inf(1)} {
		_, err := b.Analyze(simplicial.R, 1, step)
		require.ErrorIs(t, err, rips.ErrBadStep, "step=%g", step)
	}
	_, err := b.Analyze(simplicial.R, -1, 0.1)
	require.ErrorIs(t, err, rips.ErrBadEnd)
	_, err = b.Analyze(simplicial.R, math.NaN(), 0.1)
	require.ErrorIs(t, err, rips.ErrBadEnd)
	_, err = b.Analyze(simplicial.Trivial, 1, 0.1)
	require.ErrorIs(t, err, homology.ErrUnsupportedRing)
	require.Len(t, b.Simplices(), 2, "rejected scans leave state untouched")
}

func TestNew_Errors(t *testing.T) {
	c := mustCloud(t, cloud.Point{0, 0}, cloud.Point{1, 1})
	_, err := rips.New(nil)
	require.ErrorIs(t, err, rips.ErrNilCloud)
	_, err = rips.New(c, rips.WithDegrees(0))
	require.ErrorIs(t, err, rips.ErrOptionViolation)
	_, err = rips.New(c, rips.WithIndex(nil))
	require.ErrorIs(t, err, rips.ErrOptionViolation)

	other := mustCloud(t, cloud.Point{0, 0})
	_, err = rips.New(c, rips.WithIndex(spatial.NewBruteForce(other)))
	require.ErrorIs(t, err, rips.ErrIndexMismatch)
}

func randomCloud(t *testing.T, seed int64, n, dim int, grid bool) *cloud.Cloud {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	pts := make([]cloud.Point, n)
	for i := range pts {
		pts[i] = make(cloud.Point, dim)
		for k := range pts[i] {
			if grid {
				pts[i][k] = float64(rng.Intn(8)) / 4
			} else {
				pts[i][k] = rng.Float64() * 2
			}
		}
	}

	return mustCloud(t, pts...)
}

// The distance-band rule and the skeleton rule must produce the same scan.
func TestAnalyze_IncrementalMatchesReference(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		for _, grid := range []bool{true, false} {
			c := randomCloud(t, seed, 8, 2+int(seed%2), grid)
			ref := mustBuilder(t, c)
			inc := mustBuilder(t, c, rips.WithIncrementalNeighbors(true), rips.WithIndex(spatial.NewBruteForce(c)))

			want, err := ref.Analyze(simplicial.R, 3, 0.25)
			require.NoError(t, err)
			got, err := inc.Analyze(simplicial.R, 3, 0.25)
			require.NoError(t, err)
			require.Equal(t, want, got, "seed=%d grid=%v", seed, grid)
			require.Equal(t, ref.Simplices(), inc.Simplices())
		}
	}
}

// Two triangles sharing an edge appear at ε=0.3; ∂_1 is rank deficient there.
func TestAnalyze_SharedEdgeTriangles(t *testing.T) {
	c := mustCloud(t, cloud.Point{.2, .2}, cloud.Point{.3, .1}, cloud.Point{.1, 0}, cloud.Point{.3, .2})
	eps := func(k int) float64 { return float64(k) * 0.1 }

	got, err := mustBuilder(t, c).Analyze(simplicial.R, 1.2, 0.1)
	require.NoError(t, err)
	require.Equal(t, []rips.Record{
		{Start: eps(0), End: eps(1), Ranks: []int{4, 0, 0}, Torsions: noTorsion(3)},
		{Start: eps(1), End: eps(3), Ranks: []int{2, 0, 0}, Torsions: noTorsion(3)},
		{Start: eps(3), End: eps(4), Ranks: []int{1, 0, 0}, Torsions: noTorsion(3)},
		{Start: eps(4), End: eps(12), Ranks: []int{1, 0, 1}, Torsions: noTorsion(3)},
	}, got)
}

// Small clouds on a coarse lattice produce many coincident distances and
// rank-deficient boundaries at every step.
func TestAnalyze_CoarseLatticeClouds(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	levels := []float64{0, .1, .2, .3}
	for i := 0; i < 300; i++ {
		n, dim := 3+rng.Intn(7), 2+rng.Intn(2)
		pts := make([]cloud.Point, n)
		for j := range pts {
			pts[j] = make(cloud.Point, dim)
			for k := range pts[j] {
				pts[j][k] = levels[rng.Intn(len(levels))]
			}
		}
		c := mustCloud(t, pts...)
		b := mustBuilder(t, c)
		for _, ring := range []simplicial.Ring{simplicial.R, simplicial.Z} {
			got, err := b.Analyze(ring, 1.2, 0.1)
			require.NoError(t, err, "cloud %d: %v", i, pts)
			require.Equal(t, b.Skeleton().Components(), got[len(got)-1].Ranks[0], "cloud %d", i)
		}
	}
}

func TestAnalyze_ParallelHomologyIsDeterministic(t *testing.T) {
	c := randomCloud(t, 11, 7, 3, true)
	seq, err := mustBuilder(t, c).Analyze(simplicial.Z, 2, 0.25)
	require.NoError(t, err)
	par, err := mustBuilder(t, c, rips.WithParallelHomology(true)).Analyze(simplicial.Z, 2, 0.25)
	require.NoError(t, err)
	require.Equal(t, seq, par)
}

// Records tile [0, ε_final) and consecutive records differ.
func TestAnalyze_RecordsTileTheScan(t *testing.T) {
	c := randomCloud(t, 5, 10, 2, false)
	b := mustBuilder(t, c, rips.WithDegrees(2))
	got, err := b.Analyze(simplicial.R, 2.2, 0.1)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	require.Equal(t, 0.0, got[0].Start)
	require.Equal(t, b.Epsilon(), got[len(got)-1].End)
	for i, r := range got {
		require.Len(t, r.Ranks, 2)
		require.Less(t, r.Start, r.End)
		if i > 0 {
			require.Equal(t, got[i-1].End, r.Start)
			require.NotEqual(t, got[i-1].Ranks, r.Ranks)
		}
	}
	require.Equal(t, b.Skeleton().Components(), got[len(got)-1].Ranks[0])
}

func TestAnalyze_Monotone(t *testing.T) {
	c := randomCloud(t, 3, 9, 3, true)
	var (
		b     *rips.Builder
		skels []*rips.Skeleton
		sizes []int
		steps []rips.Step
	)
	b = mustBuilder(t, c, rips.WithOnStep(func(s rips.Step) {
		skels = append(skels, b.Skeleton())
		sizes = append(sizes, len(b.Simplices()))
		steps = append(steps, s)
	}))
	_, err := b.Analyze(simplicial.R, 2, 0.25)
	require.NoError(t, err)
	require.Len(t, steps, 9)
	for k := 1; k < len(skels); k++ {
		require.True(t, skels[k-1].Subset(skels[k]), "skeleton shrank at step %d", k)
		require.GreaterOrEqual(t, sizes[k], sizes[k-1])
		require.Equal(t, sizes[k]-sizes[k-1], steps[k].Edges+steps[k].Triangles+steps[k].Tetrahedra)
		require.Equal(t, float64(k)*0.25, steps[k].Epsilon)
	}
}

func TestAnalyze_RepeatableFreshScan(t *testing.T) {
	c := randomCloud(t, 9, 7, 2, true)
	b := mustBuilder(t, c)
	first, err := b.Analyze(simplicial.Z, 1.5, 0.25)
	require.NoError(t, err)
	second, err := b.Analyze(simplicial.Z, 1.5, 0.25)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestAnalyze_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := mustBuilder(t, mustCloud(t, cloud.Point{0, 0}), rips.WithContext(ctx))
	_, err := b.Analyze(simplicial.R, 1, 0.5)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	c := mustCloud(t, cloud.Point{0, 0}, cloud.Point{1, 0}, cloud.Point{0.5, 0.5})
	_, err := mustBuilder(t, c, rips.WithLogger(log)).Analyze(simplicial.R, 1, 0.5)
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, `"message":"starting filtration scan"`)
	require.Contains(t, out, `"message":"homology changed"`)
	require.Contains(t, out, `"message":"filtration scan complete"`)
	require.Contains(t, out, `"component":"rips"`)
}
