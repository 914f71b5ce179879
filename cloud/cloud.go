// SPDX-License-Identifier: MIT

package cloud

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Point is a coordinate vector. Points handed out by a Cloud are copies.
type Point []float64

// Cloud is an immutable point cloud with a fixed ambient dimension.
type Cloud struct {
	dim    int
	points []Point
}

// New validates and deep-copies points.
//
// Errors: ErrEmptyCloud, ErrUnsupportedDimension, ErrRaggedPoint, ErrNaNInf.
func New(points []Point) (*Cloud, error) {
	if len(points) == 0 {
		return nil, ErrEmptyCloud
	}
	d := len(points[0])
	if d != 2 && d != 3 {
		return nil, errors.Wrapf(ErrUnsupportedDimension, "got %d", d)
	}

	c := &Cloud{dim: d, points: make([]Point, len(points))}
	var (
		i, k int
		p    Point
	)
	for i, p = range points {
		if len(p) != d {
			return nil, errors.Wrapf(ErrRaggedPoint, "point %d has %d coordinates, want %d", i, len(p), d)
		}
		for k = range p {
			if math.IsNaN(p[k]) || math.IsInf(p[k], 0) {
				return nil, errors.Wrapf(ErrNaNInf, "point %d coordinate %d", i, k)
			}
		}
		c.points[i] = append(Point(nil), p...)
	}

	return c, nil
}

// Dim is the ambient dimension (2 or 3).
func (c *Cloud) Dim() int { return c.dim }

// Len is the number of points.
func (c *Cloud) Len() int { return len(c.points) }

// At returns a copy of point i. Panics if i is out of range, like a slice.
func (c *Cloud) At(i int) Point {
	return append(Point(nil), c.points[i]...)
}

// Coord reads one coordinate without copying.
func (c *Cloud) Coord(i, k int) float64 { return c.points[i][k] }

// Points returns a deep copy of all points.
func (c *Cloud) Points() []Point {
	out := make([]Point, len(c.points))
	for i, p := range c.points {
		out[i] = append(Point(nil), p...)
	}

	return out
}

// Distance is the L1 distance between points i and j.
func (c *Cloud) Distance(i, j int) float64 {
	return L1(c.points[i], c.points[j])
}

// L1 returns Σ|a_k − b_k| over the shorter of the two lengths.
func L1(a, b Point) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var s float64
	for k := 0; k < n; k++ {
		s += math.Abs(a[k] - b[k])
	}

	return s
}
