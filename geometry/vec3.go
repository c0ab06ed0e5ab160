// Package geometry supplies mesh.Geometry implementations backed by the
// go3d float64 vector package.
//
// Points is the identity adapter for graphs whose vertex payload is a bare
// vec3.T. Vec3 adapts any payload that carries a position, given a getter
// and a setter:
//
//	type Vertex struct {
//		Pos vec3.T
//		UV  [2]float64
//	}
//
//	geo := geometry.Vec3(
//		func(v Vertex) vec3.T { return v.Pos },
//		func(v Vertex, p vec3.T) Vertex { v.Pos = p; return v },
//	)
//	g := mesh.New[Vertex, struct{}, struct{}](mesh.WithGeometry(geo))
package geometry

import (
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// MinLength is the shortest vector Normalize accepts.
const MinLength = 1e-12

// adapter implements mesh.Geometry for vec3.T positions.
type adapter[V any] struct {
	get func(V) vec3.T
	set func(V, vec3.T) V
}

// Vec3 returns a geometry reading and writing vec3.T positions through get
// and set. Panics if either is nil.
func Vec3[V any](get func(V) vec3.T, set func(V, vec3.T) V) mesh.Geometry[V, vec3.T] {
	if get == nil || set == nil {
		panic("geometry: Vec3 needs both accessors")
	}
	return adapter[V]{get: get, set: set}
}

// Points returns the geometry for graphs whose vertex payload is the
// position itself.
func Points() mesh.Geometry[vec3.T, vec3.T] {
	return adapter[vec3.T]{
		get: func(p vec3.T) vec3.T { return p },
		set: func(_ vec3.T, p vec3.T) vec3.T { return p },
	}
}

func (a adapter[V]) Position(v V) vec3.T         { return a.get(v) }
func (a adapter[V]) SetPosition(v V, p vec3.T) V { return a.set(v, p) }

func (adapter[V]) Add(p, q vec3.T) vec3.T { return vec3.Add(&p, &q) }
func (adapter[V]) Sub(p, q vec3.T) vec3.T { return vec3.Sub(&p, &q) }

func (adapter[V]) Scale(p vec3.T, s float64) vec3.T { return p.Scaled(s) }

func (adapter[V]) Dot(p, q vec3.T) float64  { return vec3.Dot(&p, &q) }
func (adapter[V]) Cross(p, q vec3.T) vec3.T { return vec3.Cross(&p, &q) }

func (adapter[V]) Midpoint(p, q vec3.T) vec3.T { return vec3.Interpolate(&p, &q, 0.5) }

func (adapter[V]) Normalize(p vec3.T) (vec3.T, bool) {
	if p.Length() < MinLength {
		return vec3.Zero, false
	}
	return p.Normalized(), true
}
