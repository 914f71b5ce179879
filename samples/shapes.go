// SPDX-License-Identifier: MIT

package samples

import (
	"math"

	"github.com/katalvlaran/lvlath-persistence/cloud"
)

const (
	methodCircle  = "Circle"
	methodGrid    = "Grid"
	methodSphere  = "Sphere"
	methodTorus   = "Torus"
	methodUniform = "Uniform"

	minCirclePoints = 3
	minSpherePoints = 4
	minTorusRing    = 3
	tau             = 2 * math.Pi
)

// Circle places n points at angles 2πk/n on a circle of radius r.
func Circle(n int, r float64) Generator {
	return func(config) ([]cloud.Point, error) {
		if n < minCirclePoints {
			return nil, samplesErrorf(methodCircle, ErrTooFewPoints, "n=%d < %d", n, minCirclePoints)
		}
		if !(r > 0) {
			return nil, samplesErrorf(methodCircle, ErrOptionViolation, "radius %g", r)
		}
		pts := make([]cloud.Point, n)
		for k := range pts {
			theta := tau * float64(k) / float64(n)
			pts[k] = cloud.Point{r * math.Cos(theta), r * math.Sin(theta)}
		}

		return pts, nil
	}
}

// Grid places rows×cols points at spacing h, row-major from the origin.
func Grid(rows, cols int, h float64) Generator {
	return func(config) ([]cloud.Point, error) {
		if rows < 1 || cols < 1 {
			return nil, samplesErrorf(methodGrid, ErrTooFewPoints, "%dx%d", rows, cols)
		}
		if !(h > 0) {
			return nil, samplesErrorf(methodGrid, ErrOptionViolation, "spacing %g", h)
		}
		pts := make([]cloud.Point, 0, rows*cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				pts = append(pts, cloud.Point{float64(j) * h, float64(i) * h})
			}
		}

		return pts, nil
	}
}

// Sphere places n points on the unit sphere along a Fibonacci spiral.
func Sphere(n int) Generator {
	return func(config) ([]cloud.Point, error) {
		if n < minSpherePoints {
			return nil, samplesErrorf(methodSphere, ErrTooFewPoints, "n=%d < %d", n, minSpherePoints)
		}
		golden := math.Pi * (3 - math.Sqrt(5))
		pts := make([]cloud.Point, n)
		for k := range pts {
			y := 1 - 2*(float64(k)+0.5)/float64(n)
			rho := math.Sqrt(1 - y*y)
			phi := golden * float64(k)
			pts[k] = cloud.Point{rho * math.Cos(phi), y, rho * math.Sin(phi)}
		}

		return pts, nil
	}
}

// Torus samples nu×nv points on a torus with major radius big and minor
// radius small (big > small > 0).
func Torus(nu, nv int, big, small float64) Generator {
	return func(config) ([]cloud.Point, error) {
		if nu < minTorusRing || nv < minTorusRing {
			return nil, samplesErrorf(methodTorus, ErrTooFewPoints, "%dx%d", nu, nv)
		}
		if !(small > 0) || !(big > small) {
			return nil, samplesErrorf(methodTorus, ErrOptionViolation, "radii R=%g r=%g", big, small)
		}
		pts := make([]cloud.Point, 0, nu*nv)
		for i := 0; i < nu; i++ {
			u := tau * float64(i) / float64(nu)
			for j := 0; j < nv; j++ {
				v := tau * float64(j) / float64(nv)
				w := big + small*math.Cos(v)
				pts = append(pts, cloud.Point{w * math.Cos(u), w * math.Sin(u), small * math.Sin(v)})
			}
		}

		return pts, nil
	}
}

// Uniform draws n points uniformly from [0,1)^dim.
func Uniform(n, dim int) Generator {
	return func(cfg config) ([]cloud.Point, error) {
		if n < 1 {
			return nil, samplesErrorf(methodUniform, ErrTooFewPoints, "n=%d", n)
		}
		if dim != 2 && dim != 3 {
			return nil, samplesErrorf(methodUniform, cloud.ErrUnsupportedDimension, "dim=%d", dim)
		}
		if cfg.rng == nil {
			return nil, samplesErrorf(methodUniform, ErrNeedRandSource, "use WithSeed or WithRand")
		}
		pts := make([]cloud.Point, n)
		for i := range pts {
			pts[i] = make(cloud.Point, dim)
			for k := range pts[i] {
				pts[i][k] = cfg.rng.Float64()
			}
		}

		return pts, nil
	}
}
