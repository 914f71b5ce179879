// SPDX-License-Identifier: MIT

package samples

import (
	"github.com/katalvlaran/lvlath-persistence/cloud"
)

const methodBuild = "Build"

// Generator produces raw points for a config.
type Generator func(cfg config) ([]cloud.Point, error)

// Build runs gen, then applies noise, scale and offset in that order, and
// validates the result as a cloud.
func Build(gen Generator, opts ...Option) (*cloud.Cloud, error) {
	cfg := newConfig(opts...)
	pts, err := gen(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.noise > 0 && cfg.rng == nil {
		return nil, samplesErrorf(methodBuild, ErrNeedRandSource, "WithNoise needs WithSeed or WithRand")
	}
	if cfg.offset != nil && len(pts) > 0 && len(cfg.offset) != len(pts[0]) {
		return nil, samplesErrorf(methodBuild, ErrOptionViolation, "offset has %d coordinates, points %d", len(cfg.offset), len(pts[0]))
	}

	var i, k int
	for i = range pts {
		for k = range pts[i] {
			if cfg.noise > 0 {
				pts[i][k] += cfg.rng.NormFloat64() * cfg.noise
			}
			pts[i][k] *= cfg.scale
			if cfg.offset != nil {
				pts[i][k] += cfg.offset[k]
			}
		}
	}

	return cloud.New(pts)
}
