// SPDX-License-Identifier: MIT

package samples

import (
	"math"

	"github.com/katalvlaran/lvlath-persistence/cloud"
)

const methodPlatonic = "Platonic"

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4
	Cube                             // V=8
	Octahedron                       // V=6
	Dodecahedron                     // V=20
	Icosahedron                      // V=12
)

// String names the solid.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// ParsePlatonic is the inverse of String.
func ParsePlatonic(s string) (PlatonicName, error) {
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if p.String() == s {
			return p, nil
		}
	}

	return 0, samplesErrorf(methodPlatonic, ErrOptionViolation, "unknown solid %q", s)
}

// Platonic returns the canonical vertex coordinates of the solid, centered
// at the origin.
func Platonic(name PlatonicName) Generator {
	return func(config) ([]cloud.Point, error) {
		pts, ok := platonicVertices(name)
		if !ok {
			return nil, samplesErrorf(methodPlatonic, ErrOptionViolation, "unknown solid %d", int(name))
		}

		return pts, nil
	}
}

// signs enumerates {-1,+1}^k in lexicographic order.
func signs(k int) [][]float64 {
	out := make([][]float64, 0, 1<<k)
	for m := 0; m < 1<<k; m++ {
		s := make([]float64, k)
		for i := 0; i < k; i++ {
			s[i] = -1
			if m&(1<<(k-1-i)) != 0 {
				s[i] = 1
			}
		}
		out = append(out, s)
	}

	return out
}

func platonicVertices(name PlatonicName) ([]cloud.Point, bool) {
	phi := (1 + math.Sqrt(5)) / 2
	var pts []cloud.Point
	switch name {
	case Tetrahedron:
		pts = []cloud.Point{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}
	case Cube:
		for _, s := range signs(3) {
			pts = append(pts, cloud.Point{s[0], s[1], s[2]})
		}
	case Octahedron:
		pts = []cloud.Point{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	case Icosahedron:
		for _, s := range signs(2) {
			a, b := s[0], s[1]*phi
			pts = append(pts, cloud.Point{0, a, b}, cloud.Point{a, b, 0}, cloud.Point{b, 0, a})
		}
	case Dodecahedron:
		for _, s := range signs(3) {
			pts = append(pts, cloud.Point{s[0], s[1], s[2]})
		}
		for _, s := range signs(2) {
			a, b := s[0]/phi, s[1]*phi
			pts = append(pts, cloud.Point{0, a, b}, cloud.Point{a, b, 0}, cloud.Point{b, 0, a})
		}
	default:
		return nil, false
	}

	return pts, true
}
