package homology

import "github.com/cockroachdb/errors"

var (
	// ErrUnsupportedRing is returned for homology over the Trivial ring.
	ErrUnsupportedRing = errors.New("homology: unsupported coefficient ring")

	// ErrNilComplex indicates a nil complex.
	ErrNilComplex = errors.New("homology: nil complex")

	// ErrNegativeBetti is an assertion failure: ranks exceeded dim C_n.
	ErrNegativeBetti = errors.New("homology: rank–nullity violated")

	// ErrBadDegree indicates a negative degree or degree count.
	ErrBadDegree = errors.New("homology: bad degree")
)
