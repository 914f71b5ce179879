// SPDX-License-Identifier: MIT

package simplicial

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Simplex is an immutable, strictly ascending list of vertex indices.
// The zero value is not a valid simplex; use NewSimplex.
type Simplex struct {
	vertices []int
}

// NewSimplex validates and copies vs.
func NewSimplex(vs ...int) (Simplex, error) {
	if len(vs) == 0 {
		return Simplex{}, ErrEmptySimplex
	}
	for i, v := range vs {
		if v < 0 || (i > 0 && vs[i-1] >= v) {
			return Simplex{}, errors.Wrapf(ErrUnsorted, "%v", vs)
		}
	}
	out := make([]int, len(vs))
	copy(out, vs)

	return Simplex{vertices: out}, nil
}

// MustSimplex is NewSimplex for literals known to be valid; it panics otherwise.
func MustSimplex(vs ...int) Simplex {
	s, err := NewSimplex(vs...)
	if err != nil {
		panic(err)
	}

	return s
}

// Dimension is len(vertices)-1.
func (s Simplex) Dimension() int { return len(s.vertices) - 1 }

// Vertices returns a copy of the vertex list.
func (s Simplex) Vertices() []int {
	out := make([]int, len(s.vertices))
	copy(out, s.vertices)

	return out
}

// Face returns the simplex with vertex position i removed.
// A 0-simplex has no faces.
func (s Simplex) Face(i int) (Simplex, error) {
	if i < 0 || i >= len(s.vertices) || len(s.vertices) < 2 {
		return Simplex{}, errors.Wrapf(ErrFaceIndex, "face %d of %s", i, s)
	}
	out := make([]int, 0, len(s.vertices)-1)
	out = append(out, s.vertices[:i]...)
	out = append(out, s.vertices[i+1:]...)

	return Simplex{vertices: out}, nil
}

// Equal reports exact vertex-list equality.
func (s Simplex) Equal(o Simplex) bool {
	if len(s.vertices) != len(o.vertices) {
		return false
	}
	for i := range s.vertices {
		if s.vertices[i] != o.vertices[i] {
			return false
		}
	}

	return true
}

// key is the map key used for face lookups.
func (s Simplex) key() string {
	var b strings.Builder
	for i, v := range s.vertices {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// String renders e.g. "2-simplex '[0, 1, 3]'".
func (s Simplex) String() string {
	return fmt.Sprintf("%d-simplex '[%s]'", s.Dimension(), strings.ReplaceAll(s.key(), ",", ", "))
}
