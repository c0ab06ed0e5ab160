// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// policy.go — triangulation policies choosing the next diagonal.
//
// Contract:
//   • A policy returns two corners whose cyclic distance is in [2, len(ring)-2].

package mesh

import (
	"fmt"
	"math"
)

// TriangulationPolicy chooses the next diagonal to cut from a face loop.
//
// Diagonal receives the corners of a face with arity > 3 in winding order
// and returns two corner indices i and j. The corners ring[i], ring[i+1], …,
// ring[j] (indices taken cyclically) become a new face; the rest stays. The
// cyclic distance from i to j must lie in [2, len(ring)-2].
type TriangulationPolicy[V any] interface {
	Diagonal(ring []RingVertex[V]) (i, j int, err error)
}

// Fan cuts triangles off the first corner: every diagonal starts at ring[0].
// It is exact for convex faces and needs no geometry, but may produce
// slivers or overlapping triangles on non-convex faces.
type Fan[V any] struct{}

// Diagonal implements TriangulationPolicy.
func (Fan[V]) Diagonal(ring []RingVertex[V]) (int, int, error) {
	return 0, 2, nil
}

// EarClipping cuts the shortest valid ear: a convex corner whose triangle
// contains no other corner of the loop. It handles simple non-convex faces
// and needs geometry to read positions.
type EarClipping[V, P any] struct {
	Geometry Geometry[V, P]
	// Epsilon bounds the signed area below which a corner counts as
	// collinear. Zero means 1e-12.
	Epsilon float64
}

// Diagonal implements TriangulationPolicy.
func (ec EarClipping[V, P]) Diagonal(ring []RingVertex[V]) (int, int, error) {
	geo := ec.Geometry
	if geo == nil {
		return 0, 0, fmt.Errorf("%w: ear clipping", ErrGeometryRequired)
	}
	eps := ec.Epsilon
	if eps == 0 {
		eps = 1e-12
	}
	n := len(ring)
	pts := make([]P, n)
	for i, rv := range ring {
		pts[i] = geo.Position(rv.Payload)
	}
	normal, ok := geo.Normalize(areaVector(geo, pts))
	if !ok {
		return 0, 0, ErrZeroNormal
	}

	best, bestLen := -1, math.Inf(1)
	for k := range n {
		i, j := (k+n-1)%n, (k+1)%n
		if !ec.isEar(pts, normal, i, k, j, eps) {
			continue
		}
		d := geo.Sub(pts[j], pts[i])
		if l := geo.Dot(d, d); l < bestLen {
			best, bestLen = k, l
		}
	}
	if best < 0 {
		return 0, 0, ErrNoEar
	}
	return (best + n - 1) % n, (best + 1) % n, nil
}

// isEar reports whether corner k, between i and j, is convex and its
// triangle holds no other corner.
func (ec EarClipping[V, P]) isEar(pts []P, normal P, i, k, j int, eps float64) bool {
	geo := ec.Geometry
	if turn(geo, pts[i], pts[k], pts[j], normal) <= eps {
		return false
	}
	for m := range pts {
		if m == i || m == k || m == j {
			continue
		}
		if inTriangle(geo, pts[m], pts[i], pts[k], pts[j], normal, eps) {
			return false
		}
	}
	return true
}

// turn returns the signed area of (a,b,c) measured along normal; positive
// for a counter-clockwise turn.
func turn[V, P any](geo Geometry[V, P], a, b, c, normal P) float64 {
	return geo.Dot(geo.Cross(geo.Sub(b, a), geo.Sub(c, b)), normal)
}

// inTriangle reports whether p lies inside or on the CCW triangle (a,b,c).
func inTriangle[V, P any](geo Geometry[V, P], p, a, b, c, normal P, eps float64) bool {
	return turn(geo, a, b, p, normal) >= -eps &&
		turn(geo, b, c, p, normal) >= -eps &&
		turn(geo, c, a, p, normal) >= -eps
}
