// SPDX-License-Identifier: MIT

// Package samples generates deterministic point clouds with known topology,
// for tests, examples and the ripsbar CLI.
//
// Usage:
//
//	c, err := samples.Build(samples.Circle(12, 1), samples.WithNoise(0.01), samples.WithSeed(7))
//
// Generators:
//
//	Circle(n, r)            – n points on a circle (2-D); one 1-cycle.
//	Grid(rows, cols, h)     – axis-aligned lattice (2-D).
//	Platonic(name)          – vertices of a Platonic solid (3-D).
//	Sphere(n)               – Fibonacci sphere (3-D); one 2-cycle.
//	Torus(nu, nv, R, r)     – regular torus sampling (3-D).
//	Uniform(n, dim)         – uniform in the unit box; needs WithSeed/WithRand.
//
// Options (panic on meaningless values, like the rest of the option
// constructors in this module):
//
//	WithSeed / WithRand – randomness source.
//	WithScale(s)        – multiply every coordinate by s > 0.
//	WithOffset(p)       – translate by p after scaling.
//	WithNoise(σ)        – add N(0, σ²) jitter per coordinate; needs a source.
//
// Generators are pure given the config; point order is part of the contract.
package samples
