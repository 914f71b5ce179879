// SPDX-License-Identifier: MIT
package simplicial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-persistence/simplicial"
)

func TestNewSimplex(t *testing.T) {
	s, err := simplicial.NewSimplex(0, 2, 5)
	require.NoError(t, err)
	require.Equal(t, 2, s.Dimension())
	require.Equal(t, []int{0, 2, 5}, s.Vertices())

	_, err = simplicial.NewSimplex()
	require.ErrorIs(t, err, simplicial.ErrEmptySimplex)
	for _, bad := range [][]int{{1, 0}, {2, 2}, {-1, 3}} {
		_, err = simplicial.NewSimplex(bad...)
		require.ErrorIs(t, err, simplicial.ErrUnsorted, "%v", bad)
	}
	require.Panics(t, func() { simplicial.MustSimplex(3, 1) })
}

func TestSimplex_VerticesIsACopy(t *testing.T) {
	in := []int{1, 4}
	s := simplicial.MustSimplex(in...)
	in[0] = 9
	vs := s.Vertices()
	vs[1] = 7
	require.Equal(t, []int{1, 4}, s.Vertices())
}

func TestSimplex_Face(t *testing.T) {
	s := simplicial.MustSimplex(0, 1, 3)
	want := [][]int{{1, 3}, {0, 3}, {0, 1}}
	for i, w := range want {
		f, err := s.Face(i)
		require.NoError(t, err)
		require.Equal(t, w, f.Vertices())
	}
	_, err := s.Face(3)
	require.ErrorIs(t, err, simplicial.ErrFaceIndex)
	_, err = simplicial.MustSimplex(4).Face(0)
	require.ErrorIs(t, err, simplicial.ErrFaceIndex)

	require.True(t, s.Equal(simplicial.MustSimplex(0, 1, 3)))
	require.False(t, s.Equal(simplicial.MustSimplex(0, 1)))
}

func TestSimplex_String(t *testing.T) {
	require.Equal(t, "0-simplex '[7]'", simplicial.MustSimplex(7).String())
	require.Equal(t, "2-simplex '[0, 1, 3]'", simplicial.MustSimplex(0, 1, 3).String())
}

func TestParseRing(t *testing.T) {
	for in, want := range map[string]simplicial.Ring{"0": simplicial.Trivial, "R": simplicial.R, "z": simplicial.Z} {
		got, err := simplicial.ParseRing(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := simplicial.ParseRing("Q")
	require.ErrorIs(t, err, simplicial.ErrUnknownRing)

	require.Equal(t, "R", simplicial.R.String())
	require.Equal(t, "Z", simplicial.Z.String())
	require.Equal(t, "0", simplicial.Trivial.String())
}
