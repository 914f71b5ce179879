// SPDX-License-Identifier: MIT
package spatial_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-persistence/cloud"
	"github.com/katalvlaran/lvlath-persistence/spatial"
)

func randomCloud(t *testing.T, rng *rand.Rand, n, dim int) *cloud.Cloud {
	t.Helper()
	pts := make([]cloud.Point, n)
	for i := range pts {
		pts[i] = make(cloud.Point, dim)
		for k := range pts[i] {
			// coarse grid so that ties and exact-radius hits happen
			pts[i][k] = float64(rng.Intn(20)) / 4
		}
	}
	c, err := cloud.New(pts)
	require.NoError(t, err)

	return c
}

func TestKDTree_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, dim := range []int{2, 3} {
		for _, n := range []int{1, 2, 9, 120} {
			c := randomCloud(t, rng, n, dim)
			tree := spatial.NewKDTree(c)
			ref := spatial.NewBruteForce(c)
			require.Equal(t, c.Len(), tree.Len())
			for _, r := range []float64{0, 0.25, 1, 2.5, 100} {
				for i := 0; i < c.Len(); i += 7 {
					require.Equal(t, ref.Within(i, r), tree.Within(i, r), "dim=%d n=%d r=%g i=%d", dim, n, r, i)
				}
			}
		}
	}
}

func TestWithin_Semantics(t *testing.T) {
	c, err := cloud.New([]cloud.Point{{0, 0}, {1, 0}, {0.5, 0.5}, {0, 0}, {3, 3}})
	require.NoError(t, err)
	for _, idx := range []spatial.Index{spatial.NewBruteForce(c), spatial.NewKDTree(c)} {
		got := idx.Within(0, 1)
		require.Equal(t, []spatial.Neighbor{
			{Index: 1, Distance: 1},
			{Index: 2, Distance: 1},
			{Index: 3, Distance: 0},
		}, got)
		require.Empty(t, idx.Within(4, 0.5))
		require.Empty(t, idx.Within(0, -1))
	}
}

// Points on an L1 sphere of radius r around the query sit exactly on the
// boundary; the split-plane offset equals r for the axis-aligned ones.
func TestKDTree_ExactRadiusTies(t *testing.T) {
	pts := []cloud.Point{{0.3, 0.3}}
	for _, d := range [][2]float64{
		{0.3, 0}, {-0.3, 0}, {0, 0.3}, {0, -0.3},
		{0.1, 0.2}, {-0.2, 0.1}, {0.2, -0.1}, {-0.1, -0.2},
		{0.3, 0.1}, {0, 0.4}, {0.25, 0.25},
	} {
		pts = append(pts, cloud.Point{0.3 + d[0], 0.3 + d[1]})
	}
	c, err := cloud.New(pts)
	require.NoError(t, err)
	tree, ref := spatial.NewKDTree(c), spatial.NewBruteForce(c)
	for _, r := range []float64{0.1, 0.2, 0.3, 0.4, 0.5} {
		for i := 0; i < c.Len(); i++ {
			require.Equal(t, ref.Within(i, r), tree.Within(i, r), "r=%g i=%d", r, i)
		}
	}
	got := tree.Within(0, 0.3)
	for j := 1; j <= 4; j++ {
		require.Contains(t, got, spatial.Neighbor{Index: j, Distance: 0.3})
	}
}
