// SPDX-License-Identifier: MIT
package samples_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-persistence/cloud"
	"github.com/katalvlaran/lvlath-persistence/samples"
)

func norm2(p cloud.Point) float64 {
	var s float64
	for _, v := range p {
		s += v * v
	}

	return math.Sqrt(s)
}

func TestCircle(t *testing.T) {
	c, err := samples.Build(samples.Circle(12, 2))
	require.NoError(t, err)
	require.Equal(t, 12, c.Len())
	require.Equal(t, 2, c.Dim())
	for i := 0; i < c.Len(); i++ {
		require.InDelta(t, 2.0, norm2(c.At(i)), 1e-12)
	}
	require.Equal(t, cloud.Point{2, 0}, c.At(0))

	_, err = samples.Build(samples.Circle(2, 1))
	require.ErrorIs(t, err, samples.ErrTooFewPoints)
	_, err = samples.Build(samples.Circle(5, 0))
	require.ErrorIs(t, err, samples.ErrOptionViolation)
}

func TestGrid(t *testing.T) {
	c, err := samples.Build(samples.Grid(2, 3, 0.5))
	require.NoError(t, err)
	require.Equal(t, []cloud.Point{{0, 0}, {0.5, 0}, {1, 0}, {0, 0.5}, {0.5, 0.5}, {1, 0.5}}, c.Points())

	_, err = samples.Build(samples.Grid(0, 3, 1))
	require.ErrorIs(t, err, samples.ErrTooFewPoints)
}

func TestPlatonic(t *testing.T) {
	counts := map[samples.PlatonicName]int{
		samples.Tetrahedron: 4, samples.Cube: 8, samples.Octahedron: 6,
		samples.Dodecahedron: 20, samples.Icosahedron: 12,
	}
	for name, n := range counts {
		c, err := samples.Build(samples.Platonic(name))
		require.NoError(t, err, name.String())
		require.Equal(t, n, c.Len(), name.String())
		require.Equal(t, 3, c.Dim())

		// every vertex lies on one circumsphere
		r := norm2(c.At(0))
		for i := 1; i < c.Len(); i++ {
			require.InDelta(t, r, norm2(c.At(i)), 1e-12, "%s vertex %d", name, i)
		}
		back, err := samples.ParsePlatonic(name.String())
		require.NoError(t, err)
		require.Equal(t, name, back)
	}
	_, err := samples.Build(samples.Platonic(samples.PlatonicName(42)))
	require.ErrorIs(t, err, samples.ErrOptionViolation)
	_, err = samples.ParsePlatonic("Hypercube")
	require.ErrorIs(t, err, samples.ErrOptionViolation)
}

func TestSphereAndTorus(t *testing.T) {
	s, err := samples.Build(samples.Sphere(50))
	require.NoError(t, err)
	require.Equal(t, 50, s.Len())
	for i := 0; i < s.Len(); i++ {
		require.InDelta(t, 1.0, norm2(s.At(i)), 1e-12)
	}

	tor, err := samples.Build(samples.Torus(6, 4, 3, 1))
	require.NoError(t, err)
	require.Equal(t, 24, tor.Len())
	for i := 0; i < tor.Len(); i++ {
		p := tor.At(i)
		// distance from the core circle equals the minor radius
		ring := math.Hypot(p[0], p[1]) - 3
		require.InDelta(t, 1.0, math.Hypot(ring, p[2]), 1e-12)
	}
	_, err = samples.Build(samples.Torus(6, 4, 1, 3))
	require.ErrorIs(t, err, samples.ErrOptionViolation)
}

func TestUniformIsSeeded(t *testing.T) {
	_, err := samples.Build(samples.Uniform(5, 2))
	require.ErrorIs(t, err, samples.ErrNeedRandSource)
	_, err = samples.Build(samples.Uniform(5, 4), samples.WithSeed(1))
	require.ErrorIs(t, err, cloud.ErrUnsupportedDimension)

	a, err := samples.Build(samples.Uniform(20, 3), samples.WithSeed(42))
	require.NoError(t, err)
	b, err := samples.Build(samples.Uniform(20, 3), samples.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, a.Points(), b.Points())
	for _, p := range a.Points() {
		for _, v := range p {
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
		}
	}
}

func TestOptions(t *testing.T) {
	c, err := samples.Build(samples.Grid(1, 2, 1), samples.WithScale(3), samples.WithOffset(cloud.Point{1, -1}))
	require.NoError(t, err)
	require.Equal(t, []cloud.Point{{1, -1}, {4, -1}}, c.Points())

	_, err = samples.Build(samples.Grid(1, 2, 1), samples.WithOffset(cloud.Point{1, 2, 3}))
	require.ErrorIs(t, err, samples.ErrOptionViolation)
	_, err = samples.Build(samples.Circle(4, 1), samples.WithNoise(0.1))
	require.ErrorIs(t, err, samples.ErrNeedRandSource)

	noisy, err := samples.Build(samples.Circle(8, 1), samples.WithNoise(0.05), samples.WithSeed(3))
	require.NoError(t, err)
	clean, err := samples.Build(samples.Circle(8, 1))
	require.NoError(t, err)
	require.NotEqual(t, clean.Points(), noisy.Points())

	require.Panics(t, func() { samples.WithScale(0) })
	require.Panics(t, func() { samples.WithNoise(-1) })
	require.Panics(t, func() { samples.WithRand(nil) })
}
