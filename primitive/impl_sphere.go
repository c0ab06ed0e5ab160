// SPDX-License-Identifier: MIT
// Package: lvmesh/primitive
//
// impl_sphere.go — UVSphere(segments, rings) generator.
//
// Layout:
//   • ID 0 is the north pole (+Z), the last ID is the south pole.
//   • Ring r ∈ [1, rings-1] holds `segments` vertices at polar angle
//     π·r/rings; ID = 1 + (r-1)·segments + s.
//   • Polar caps are triangle fans; the belts between rings are quads.
//   • All faces are wound CCW seen from outside.
//
// Counts: V = segments·(rings-1) + 2, F = segments·rings,
//         E = segments·(2·rings - 1).

package primitive

import (
	"fmt"
	"iter"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

const methodUVSphere = "UVSphere"

// Minimum resolutions for a closed sphere.
const (
	minSphereSegments = 3
	minSphereRings    = 2
)

// UVSphere returns a restartable polygon stream for a latitude/longitude
// sphere with `segments` meridians and `rings` latitude bands.
func UVSphere(segments, rings int, opts ...Option) (iter.Seq[Polygon], error) {
	if segments < minSphereSegments {
		return nil, fmt.Errorf("%s: segments=%d (min %d): %w", methodUVSphere, segments, minSphereSegments, ErrTooFewSegments)
	}
	if rings < minSphereRings {
		return nil, fmt.Errorf("%s: rings=%d (min %d): %w", methodUVSphere, rings, minSphereRings, ErrTooFewSegments)
	}
	cfg := newConfig(opts...)

	// positions: pole, rings, pole
	positions := make([]vec3.T, 0, segments*(rings-1)+2)
	positions = append(positions, vec3.T{0, 0, 1})
	for r := 1; r < rings; r++ {
		theta := math.Pi * float64(r) / float64(rings) // polar angle
		for s := 0; s < segments; s++ {
			ph := 2 * math.Pi * float64(s) / float64(segments) // azimuth
			positions = append(positions, vec3.T{
				math.Sin(theta) * math.Cos(ph),
				math.Sin(theta) * math.Sin(ph),
				math.Cos(theta),
			})
		}
	}
	positions = append(positions, vec3.T{0, 0, -1})
	south := len(positions) - 1

	at := func(r, s int) int { return 1 + (r-1)*segments + s%segments }

	faces := make([][]int, 0, segments*rings)
	for s := 0; s < segments; s++ {
		faces = append(faces, []int{0, at(1, s), at(1, s+1)}) // north cap
	}
	for r := 1; r < rings-1; r++ {
		for s := 0; s < segments; s++ {
			faces = append(faces, []int{at(r, s), at(r+1, s), at(r+1, s+1), at(r, s+1)}) // belt quad
		}
	}
	for s := 0; s < segments; s++ {
		faces = append(faces, []int{south, at(rings-1, s+1), at(rings-1, s)}) // south cap
	}
	return cfg.emit(positions, faces), nil
}
