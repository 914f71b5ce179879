package homology

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlath-persistence/matrix"
	"github.com/katalvlaran/lvlath-persistence/metrics"
	"github.com/katalvlaran/lvlath-persistence/simplicial"
	"github.com/katalvlaran/lvlath-persistence/snf"
)

// Tolerance separates zero from nonzero singular values in rank computations.
const Tolerance = 1e-6

// Group summarizes H_n: its rank (Betti number) and torsion coefficients.
// Torsion is never nil so that equal groups compare equal.
type Group struct {
	Rank    int     `json:"rank"`
	Torsion []int64 `json:"torsion"`
}

// Equal compares rank and torsion element-wise.
func (g Group) Equal(o Group) bool {
	if g.Rank != o.Rank || len(g.Torsion) != len(o.Torsion) {
		return false
	}
	for i := range g.Torsion {
		if g.Torsion[i] != o.Torsion[i] {
			return false
		}
	}

	return true
}

func rankOf(c *simplicial.Complex, n int) (int, error) {
	d, err := c.Boundary(n)
	if err != nil {
		return 0, err
	}
	r, err := matrix.Rank(d, Tolerance)
	if err != nil {
		return 0, errors.Wrapf(err, "rank ∂_%d", n)
	}

	return r, nil
}

// Betti returns b_n(c); 0 for n beyond the complex dimension.
func Betti(c *simplicial.Complex, n int) (int, error) {
	if c == nil {
		return 0, ErrNilComplex
	}
	if n < 0 {
		return 0, errors.Wrapf(ErrBadDegree, "n=%d", n)
	}
	if n > c.Dimension() {
		return 0, nil
	}
	rn, err := rankOf(c, n)
	if err != nil {
		return 0, err
	}
	rn1, err := rankOf(c, n+1)
	if err != nil {
		return 0, err
	}
	b := c.DimC(n) - rn - rn1
	if b < 0 {
		return 0, errors.WithAssertionFailure(
			errors.Wrapf(ErrNegativeBetti, "dim C_%d=%d, rank ∂_%d=%d, rank ∂_%d=%d", n, c.DimC(n), n, rn, n+1, rn1))
	}

	return b, nil
}

// Homology returns H_n(c) over the complex's ring.
func Homology(c *simplicial.Complex, n int) (Group, error) {
	if c == nil {
		return Group{}, ErrNilComplex
	}
	ring := c.Ring()
	if ring != simplicial.R && ring != simplicial.Z {
		return Group{}, errors.Wrapf(ErrUnsupportedRing, "H(-,%s)", ring)
	}
	metrics.HomologyComputationsTotal.WithLabelValues(ring.String()).Inc()

	g := Group{Torsion: []int64{}}
	if n > c.Dimension() {
		return g, nil
	}
	b, err := Betti(c, n)
	if err != nil {
		return Group{}, err
	}
	g.Rank = b
	if ring == simplicial.R {
		return g, nil
	}

	d, err := c.Boundary(n + 1)
	if err != nil {
		return Group{}, err
	}
	divisors, err := snf.ComputeMatrix(d)
	if err != nil {
		return Group{}, errors.Wrapf(err, "torsion of H_%d", n)
	}
	for _, v := range divisors {
		if v >= 2 {
			g.Torsion = append(g.Torsion, v)
		}
	}

	return g, nil
}

// All returns H_0..H_{degrees-1}. With parallel set, degrees are computed
// concurrently and stored by index; the first error wins.
func All(c *simplicial.Complex, degrees int, parallel bool) ([]Group, error) {
	if degrees < 0 {
		return nil, errors.Wrapf(ErrBadDegree, "degrees=%d", degrees)
	}
	out := make([]Group, degrees)
	if !parallel {
		var err error
		for k := 0; k < degrees; k++ {
			if out[k], err = Homology(c, k); err != nil {
				return nil, err
			}
		}

		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k := 0; k < degrees; k++ {
		k := k
		g.Go(func() error {
			h, err := Homology(c, k)
			if err != nil {
				return err
			}
			out[k] = h

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
