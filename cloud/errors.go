// SPDX-License-Identifier: MIT

package cloud

import "github.com/cockroachdb/errors"

// Sentinel errors for point-cloud construction and loading.
var (
	// ErrEmptyCloud indicates a cloud with no points.
	ErrEmptyCloud = errors.New("cloud: no points")

	// ErrUnsupportedDimension indicates an ambient dimension other than 2 or 3.
	ErrUnsupportedDimension = errors.New("cloud: supported dimensions: 2, 3")

	// ErrRaggedPoint indicates a point whose dimension differs from the first.
	ErrRaggedPoint = errors.New("cloud: point dimension mismatch")

	// ErrNaNInf indicates a NaN or infinite coordinate.
	ErrNaNInf = errors.New("cloud: NaN or Inf coordinate")

	// ErrParse indicates malformed loader input.
	ErrParse = errors.New("cloud: parse error")
)
