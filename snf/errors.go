package snf

import "github.com/cockroachdb/errors"

// Sentinel errors for Smith normal form reduction.
var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("snf: nil matrix")

	// ErrExhausted is returned by Step after the reduction has finished.
	ErrExhausted = errors.New("snf: reduction already finished")
)
