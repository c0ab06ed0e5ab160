// SPDX-License-Identifier: MIT
// Package: lvmesh/primitive
//
// options.go — functional options shared by every generator.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless input.
//     Generators themselves never panic.
//   • Later options override earlier ones.

package primitive

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Option customizes a generator by mutating its config before emission.
type Option func(*config)

// WithScale multiplies every emitted position by s (circumradius for
// solids and spheres, cell size for grids). Panics unless s is finite and > 0.
func WithScale(s float64) Option {
	if !(s > 0) || math.IsInf(s, 0) {
		// Fail fast: a zero or negative scale collapses or mirrors the mesh.
		panic("primitive: WithScale needs a finite positive value")
	}
	return func(c *config) {
		c.scale = s // applied before translation
	}
}

// WithCenter translates every emitted position by p.
func WithCenter(p vec3.T) Option {
	return func(c *config) {
		c.center = p // applied after scaling
	}
}

// WithIDOffset shifts every emitted vertex ID by off. Useful when several
// generators feed one polygon stream and their IDs must not collide.
// Panics on negative offsets.
func WithIDOffset(off int) Option {
	if off < 0 {
		panic("primitive: WithIDOffset(negative)")
	}
	return func(c *config) {
		c.idOffset = off // added to every local vertex index
	}
}
