// SPDX-License-Identifier: MIT

package simplicial

import "github.com/cockroachdb/errors"

// Ring tags the coefficient domain of a complex.
type Ring int

const (
	// Trivial is the zero ring; it is representable but computes nothing.
	Trivial Ring = iota
	// R is the real field: Betti numbers only.
	R
	// Z is the integers: Betti numbers plus torsion coefficients.
	Z
)

// String renders the ring the way it is written in homology notation.
func (r Ring) String() string {
	switch r {
	case R:
		return "R"
	case Z:
		return "Z"
	case Trivial:
		return "0"
	default:
		return "Ring(?)"
	}
}

// ParseRing accepts "0", "R" or "Z" (lower case too).
func ParseRing(s string) (Ring, error) {
	switch s {
	case "0", "trivial":
		return Trivial, nil
	case "R", "r":
		return R, nil
	case "Z", "z":
		return Z, nil
	}

	return Trivial, errors.Wrapf(ErrUnknownRing, "%q", s)
}
