// SPDX-License-Identifier: MIT

package samples

import "github.com/cockroachdb/errors"

var (
	// ErrTooFewPoints indicates a size parameter below the generator minimum.
	ErrTooFewPoints = errors.New("samples: parameter too small")

	// ErrNeedRandSource indicates a stochastic generator or option without a source.
	ErrNeedRandSource = errors.New("samples: rng is required")

	// ErrOptionViolation indicates an invalid generator parameter.
	ErrOptionViolation = errors.New("samples: invalid parameter")
)

// samplesErrorf prefixes a sentinel with the generator name.
func samplesErrorf(method string, err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, method+": "+format, args...)
}
