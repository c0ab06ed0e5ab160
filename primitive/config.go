// SPDX-License-Identifier: MIT
// Package: lvmesh/primitive
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • scale    = 1.0   (unit circumradius / unit cells)
//   • center   = origin
//   • idOffset = 0     (IDs are 0..n-1)

package primitive

import (
	"iter"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Polygon is the polygon type every generator yields: integer vertex IDs
// with vec3.T positions as payload.
type Polygon = mesh.Polygon[int, vec3.T]

// config aggregates all knobs used by generators. Passed by value.
type config struct {
	scale    float64 // > 0
	center   vec3.T  // translation
	idOffset int     // >= 0
}

const defaultScale = 1.0 // unit size

// newConfig resolves options over the defaults, in order.
func newConfig(opts ...Option) config {
	cfg := config{
		scale:    defaultScale, // 1.0
		center:   vec3.Zero,    // origin
		idOffset: 0,            // IDs start at 0
	}
	for _, opt := range opts {
		opt(&cfg) // last-wins
	}
	return cfg
}

// place scales then translates a local position.
func (c config) place(p vec3.T) vec3.T {
	s := p.Scaled(c.scale)
	return vec3.Add(&s, &c.center)
}

// corner builds one polygon corner from a local index and position.
func (c config) corner(i int, p vec3.T) mesh.Corner[int, vec3.T] {
	return mesh.Corner[int, vec3.T]{ID: c.idOffset + i, Payload: c.place(p)}
}

// emit turns an index-based face list into a restartable polygon stream.
// Every range over the result walks faces from the start.
func (c config) emit(positions []vec3.T, faces [][]int) iter.Seq[Polygon] {
	return func(yield func(Polygon) bool) {
		for _, f := range faces {
			poly := make(Polygon, len(f))
			for k, idx := range f {
				poly[k] = c.corner(idx, positions[idx]) // fresh slice per polygon
			}
			if !yield(poly) {
				return // consumer stopped early
			}
		}
	}
}
