// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// geometry.go — the Geometry seam between topology and points.
//
// Contract:
//   • The graph never inspects points; operators needing numbers require Geometry.

package mesh

import "fmt"

// Geometry maps vertex payloads V to points P and supplies the vector
// operations operators need. It is the only seam between topology and
// numbers; the graph itself never inspects P.
type Geometry[V, P any] interface {
	// Position reads the point stored in a payload.
	Position(v V) P
	// SetPosition returns a copy of v moved to p.
	SetPosition(v V, p P) V

	Add(a, b P) P
	Sub(a, b P) P
	Scale(p P, s float64) P
	Dot(a, b P) float64
	Cross(a, b P) P
	Midpoint(a, b P) P

	// Normalize returns p scaled to unit length, or false when p is too
	// short to normalise.
	Normalize(p P) (P, bool)
}

// vertexGeometry is the point-type-erased view of a Geometry used inside
// the graph, which is not parameterised by P.
type vertexGeometry[V any] interface {
	// offsetRing returns copies of ring moved by dist along its normal.
	offsetRing(ring []V, dist float64) ([]V, error)
	// lerp returns a copy of a moved to a + (b-a)*t.
	lerp(a, b V, t float64) V
	// dist2 returns the squared distance between two payloads.
	dist2(a, b V) float64
}

type geometryAdapter[V, P any] struct {
	geo Geometry[V, P]
}

func (ga geometryAdapter[V, P]) offsetRing(ring []V, dist float64) ([]V, error) {
	pts := make([]P, len(ring))
	for i, v := range ring {
		pts[i] = ga.geo.Position(v)
	}
	n, ok := ga.geo.Normalize(areaVector(ga.geo, pts))
	if !ok {
		return nil, ErrZeroNormal
	}
	shift := ga.geo.Scale(n, dist)
	out := make([]V, len(ring))
	for i, v := range ring {
		out[i] = ga.geo.SetPosition(v, ga.geo.Add(pts[i], shift))
	}
	return out, nil
}

func (ga geometryAdapter[V, P]) lerp(a, b V, t float64) V {
	pa, pb := ga.geo.Position(a), ga.geo.Position(b)
	if t == 0.5 {
		return ga.geo.SetPosition(a, ga.geo.Midpoint(pa, pb))
	}
	return ga.geo.SetPosition(a, ga.geo.Add(pa, ga.geo.Scale(ga.geo.Sub(pb, pa), t)))
}

func (ga geometryAdapter[V, P]) dist2(a, b V) float64 {
	d := ga.geo.Sub(ga.geo.Position(b), ga.geo.Position(a))
	return ga.geo.Dot(d, d)
}

// areaVector returns the Newell vector of a closed polygon: twice its
// area along its normal. It is robust for non-convex and slightly
// non-planar loops.
func areaVector[V, P any](geo Geometry[V, P], pts []P) P {
	sum := geo.Scale(pts[0], 0)
	for i := range pts {
		sum = geo.Add(sum, geo.Cross(pts[i], pts[(i+1)%len(pts)]))
	}
	return sum
}

// FacePositions returns the points of a face's vertices in loop order.
func FacePositions[V, E, F, P any](g *Graph[V, E, F], geo Geometry[V, P], f FaceKey) ([]P, error) {
	ring, err := g.FaceRing(f)
	if err != nil {
		return nil, err
	}
	pts := make([]P, len(ring))
	for i, rv := range ring {
		pts[i] = geo.Position(rv.Payload)
	}
	return pts, nil
}

// FaceNormal returns the unit normal of a face. A collinear or zero-area
// face yields a degenerate-result error.
func FaceNormal[V, E, F, P any](g *Graph[V, E, F], geo Geometry[V, P], f FaceKey) (P, error) {
	pts, err := FacePositions(g, geo, f)
	if err != nil {
		var zero P
		return zero, err
	}
	n, ok := geo.Normalize(areaVector(geo, pts))
	if !ok {
		var zero P
		return zero, newError("FaceNormal", ErrDegenerateResult, fmt.Errorf("%w: face %s", ErrZeroNormal, f))
	}
	return n, nil
}

// FaceCentroid returns the average of a face's vertex positions.
func FaceCentroid[V, E, F, P any](g *Graph[V, E, F], geo Geometry[V, P], f FaceKey) (P, error) {
	pts, err := FacePositions(g, geo, f)
	if err != nil {
		var zero P
		return zero, err
	}
	sum := pts[0]
	for _, p := range pts[1:] {
		sum = geo.Add(sum, p)
	}
	return geo.Scale(sum, 1/float64(len(pts))), nil
}
