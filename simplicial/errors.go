// SPDX-License-Identifier: MIT

package simplicial

import "github.com/cockroachdb/errors"

// Sentinel errors for simplex and complex construction.
var (
	// ErrEmptySimplex indicates a simplex with no vertices.
	ErrEmptySimplex = errors.New("simplicial: simplex has no vertices")

	// ErrUnsorted indicates vertices that are not strictly ascending or negative.
	ErrUnsorted = errors.New("simplicial: vertices must be non-negative and strictly ascending")

	// ErrFaceIndex indicates a face position outside [0, Dimension()].
	ErrFaceIndex = errors.New("simplicial: face index out of range")

	// ErrNegativeDegree indicates a negative chain degree.
	ErrNegativeDegree = errors.New("simplicial: negative degree")

	// ErrMissingFace indicates a simplex whose codimension-1 face is absent
	// from the lower chain group.
	ErrMissingFace = errors.New("simplicial: face not present in lower chain group")

	// ErrUnknownRing indicates a ring name ParseRing does not recognize.
	ErrUnknownRing = errors.New("simplicial: unknown coefficient ring")
)
