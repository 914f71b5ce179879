// SPDX-License-Identifier: MIT

package rips

import "github.com/cockroachdb/errors"

var (
	// ErrNilCloud indicates New was given a nil cloud.
	ErrNilCloud = errors.New("rips: cloud is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("rips: invalid option supplied")

	// ErrIndexMismatch indicates a spatial index built over a different cloud size.
	ErrIndexMismatch = errors.New("rips: index size does not match cloud")

	// ErrBadStep indicates a non-positive or non-finite step.
	ErrBadStep = errors.New("rips: step must be positive and finite")

	// ErrBadEnd indicates a negative or non-finite end scale.
	ErrBadEnd = errors.New("rips: end must be non-negative and finite")
)
