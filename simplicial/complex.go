// SPDX-License-Identifier: MIT

package simplicial

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlath-persistence/matrix"
)

// Complex is an immutable simplicial complex over a coefficient Ring.
//   - simplices keeps the input order (used by String).
//   - chains[n] is C_n in input order.
//   - index[n] maps a simplex key to its first position in chains[n].
type Complex struct {
	ring      Ring
	simplices []Simplex
	chains    [][]Simplex
	index     []map[string]int
	dim       int
}

// NewComplex partitions simplices into chain groups. Faces are not checked
// here; Boundary reports the first missing one.
// An empty list yields a complex of dimension 0 with an empty C_0.
func NewComplex(ring Ring, simplices []Simplex) (*Complex, error) {
	c := &Complex{
		ring:      ring,
		simplices: make([]Simplex, len(simplices)),
		chains:    [][]Simplex{nil},
		index:     []map[string]int{{}},
	}
	copy(c.simplices, simplices)

	var (
		s   Simplex
		d   int
		k   string
		pos int
	)
	for pos, s = range simplices {
		d = s.Dimension()
		if d < 0 {
			return nil, errors.Wrapf(ErrEmptySimplex, "simplex #%d", pos)
		}
		for len(c.chains) <= d {
			c.chains = append(c.chains, nil)
			c.index = append(c.index, map[string]int{})
		}
		k = s.key()
		if _, seen := c.index[d][k]; !seen {
			c.index[d][k] = len(c.chains[d])
		}
		c.chains[d] = append(c.chains[d], s)
		if d > c.dim {
			c.dim = d
		}
	}

	return c, nil
}

// Ring returns the coefficient ring tag.
func (c *Complex) Ring() Ring { return c.ring }

// Dimension is the maximum simplex dimension present (0 when empty).
func (c *Complex) Dimension() int { return c.dim }

// Len is the total number of simplices.
func (c *Complex) Len() int { return len(c.simplices) }

// DimC returns |C_n|; 0 for n outside [0, Dimension()].
func (c *Complex) DimC(n int) int {
	if n < 0 || n >= len(c.chains) {
		return 0
	}

	return len(c.chains[n])
}

// Chain returns a copy of C_n.
func (c *Complex) Chain(n int) []Simplex {
	if n < 0 || n >= len(c.chains) {
		return nil
	}
	out := make([]Simplex, len(c.chains[n]))
	copy(out, c.chains[n])

	return out
}

// Simplices returns a copy of all simplices in input order.
func (c *Complex) Simplices() []Simplex {
	out := make([]Simplex, len(c.simplices))
	copy(out, c.simplices)

	return out
}

// Boundary builds the real matrix of ∂_n, |C_{n-1}| × |C_n|.
func (c *Complex) Boundary(n int) (*matrix.Dense, error) {
	switch {
	case n < 0:
		return nil, errors.Wrapf(ErrNegativeDegree, "Boundary(%d)", n)
	case n == 0:
		return matrix.NewZeros(1, c.DimC(0))
	case n > c.dim:
		return matrix.NewZeros(1, 1)
	}

	rows, cols := c.DimC(n-1), c.DimC(n)
	m, err := matrix.NewZeros(rows, cols)
	if err != nil {
		return nil, err
	}

	var (
		j, i, row int
		ok        bool
		sigma     Simplex
		face      Simplex
		sign      float64
	)
	for j, sigma = range c.chains[n] {
		for i = 0; i <= n; i++ {
			if face, err = sigma.Face(i); err != nil {
				return nil, err
			}
			if row, ok = c.index[n-1][face.key()]; !ok {
				return nil, errors.WithAssertionFailure(
					errors.Wrapf(ErrMissingFace, "%s of %s", face, sigma))
			}
			sign = 1
			if i%2 == 1 {
				sign = -1
			}
			if err = m.Set(row, j, sign); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// String renders the complex in input order:
//
//	simplicial 1-complex {
//		0-simplex '[0]'
//		...
//	}
func (c *Complex) String() string {
	var b strings.Builder
	b.WriteString("simplicial ")
	b.WriteString(strconv.Itoa(c.dim))
	b.WriteString("-complex {\n")
	for _, s := range c.simplices {
		b.WriteByte('\t')
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	b.WriteByte('}')

	return b.String()
}
