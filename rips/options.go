// SPDX-License-Identifier: MIT

package rips

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlath-persistence/spatial"
)

// DefaultDegrees is the number of homology degrees tracked when WithDegrees
// is not given.
const DefaultDegrees = 3

// Step describes one processed ε value, as passed to an OnStep hook.
type Step struct {
	K          int     // step number, ε = K·step
	Epsilon    float64 // current scale
	Edges      int     // 1-simplices added at this step
	Triangles  int     // 2-simplices added at this step
	Tetrahedra int     // 3-simplices added at this step
	Changed    bool    // a record was closed at this step
}

// Options holds Builder configuration. Use DefaultOptions and Option funcs.
type Options struct {
	Ctx         context.Context
	Degrees     int
	Index       spatial.Index
	Logger      zerolog.Logger
	Parallel    bool
	Incremental bool
	OnStep      func(Step)

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns T=3, sequential homology, reference edge inclusion
// and a disabled logger. Index stays nil; New builds a kd-tree.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Degrees: DefaultDegrees,
		Logger:  zerolog.Nop(),
		OnStep:  func(Step) {},
	}
}

// WithDegrees sets T, the number of homology degrees H_0..H_{T−1}.
func WithDegrees(t int) Option {
	return func(o *Options) {
		if t < 1 {
			o.err = errors.Wrapf(ErrOptionViolation, "degrees must be >= 1 (%d)", t)
			return
		}
		o.Degrees = t
	}
}

// WithIndex replaces the default kd-tree.
func WithIndex(idx spatial.Index) Option {
	return func(o *Options) {
		if idx == nil {
			o.err = errors.Wrap(ErrOptionViolation, "nil index")
			return
		}
		o.Index = idx
	}
}

// WithLogger sets the scan logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithParallelHomology computes the T degrees concurrently at each change.
func WithParallelHomology(on bool) Option {
	return func(o *Options) { o.Parallel = on }
}

// WithIncrementalNeighbors accepts a neighbor at step k when its distance
// lies in ((k−1)·step, k·step] instead of consulting the skeleton. The two
// rules agree whenever the index is exact.
func WithIncrementalNeighbors(on bool) Option {
	return func(o *Options) { o.Incremental = on }
}

// WithContext makes Analyze return ctx.Err() between ε-steps once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a hook called after every ε-step.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
