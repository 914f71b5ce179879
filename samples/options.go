// SPDX-License-Identifier: MIT

package samples

import (
	"math/rand"

	"github.com/katalvlaran/lvlath-persistence/cloud"
)

// config is the single source of truth for generator knobs; passed by value.
type config struct {
	rng    *rand.Rand
	scale  float64
	offset cloud.Point
	noise  float64
}

const defaultScale = 1.0

func newConfig(opts ...Option) config {
	cfg := config{scale: defaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option customizes Build.
type Option func(*config)

// WithRand supplies an explicit source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("samples: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a seeded source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithScale multiplies all coordinates. Panics if s <= 0.
func WithScale(s float64) Option {
	if !(s > 0) {
		panic("samples: WithScale(s<=0)")
	}

	return func(c *config) { c.scale = s }
}

// WithOffset translates all points; its length must match the cloud dimension.
func WithOffset(p cloud.Point) Option {
	off := append(cloud.Point(nil), p...)

	return func(c *config) { c.offset = off }
}

// WithNoise adds Gaussian jitter with standard deviation sigma. Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("samples: WithNoise(sigma<0)")
	}

	return func(c *config) { c.noise = sigma }
}
