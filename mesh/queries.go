// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// queries.go — read-only counts, lookups and iterators.
//
// Contract:
//   • Queries never mutate; iteration follows storage order.

package mesh

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvmesh/arena"
)

// VertexCount returns the number of vertices.
func (g *Graph[V, E, F]) VertexCount() int { return g.vertices.len() }

// ArcCount returns the number of arcs (always twice EdgeCount).
func (g *Graph[V, E, F]) ArcCount() int { return g.arcs.len() }

// EdgeCount returns the number of edges.
func (g *Graph[V, E, F]) EdgeCount() int { return g.edges.len() }

// FaceCount returns the number of faces.
func (g *Graph[V, E, F]) FaceCount() int { return g.faces.len() }

// Vertices returns all vertex keys in storage order.
func (g *Graph[V, E, F]) Vertices() []VertexKey { return typed[VertexKey](g.vertices.keys()) }

// Arcs returns all arc keys in storage order.
func (g *Graph[V, E, F]) Arcs() []ArcKey { return typed[ArcKey](g.arcs.keys()) }

// Edges returns all edge keys in storage order.
func (g *Graph[V, E, F]) Edges() []EdgeKey { return typed[EdgeKey](g.edges.keys()) }

// Faces returns all face keys in storage order. For a freshly ingested
// graph this is polygon order.
func (g *Graph[V, E, F]) Faces() []FaceKey { return typed[FaceKey](g.faces.keys()) }

// AllFaces yields (key, payload) for every face in storage order.
func (g *Graph[V, E, F]) AllFaces() iter.Seq2[FaceKey, F] {
	return func(yield func(FaceKey, F) bool) {
		for k, f := range g.faces.store.All() {
			if !yield(FaceKey(k), f.payload) {
				return
			}
		}
	}
}

// ContainsVertex reports whether k names a live vertex of g.
func (g *Graph[V, E, F]) ContainsVertex(k VertexKey) bool {
	return g.vertices.contains(arena.Key(k))
}

// ContainsArc reports whether k names a live arc of g.
func (g *Graph[V, E, F]) ContainsArc(k ArcKey) bool { return g.arcs.contains(arena.Key(k)) }

// ContainsEdge reports whether k names a live edge of g.
func (g *Graph[V, E, F]) ContainsEdge(k EdgeKey) bool { return g.edges.contains(arena.Key(k)) }

// ContainsFace reports whether k names a live face of g.
func (g *Graph[V, E, F]) ContainsFace(k FaceKey) bool { return g.faces.contains(arena.Key(k)) }

// Vertex returns the payload of a vertex.
func (g *Graph[V, E, F]) Vertex(k VertexKey) (V, error) {
	v, err := g.vertex(k)
	if err != nil {
		var zero V
		return zero, keyError("Vertex", "vertex", k, err)
	}
	return v.payload, nil
}

// SetVertex replaces the payload of a vertex. Topology is not affected, so
// outstanding circulators stay valid.
func (g *Graph[V, E, F]) SetVertex(k VertexKey, payload V) error {
	v, err := g.vertex(k)
	if err != nil {
		return keyError("SetVertex", "vertex", k, err)
	}
	v.payload = payload
	return g.setVertex(k, v)
}

// Edge returns the payload of an edge.
func (g *Graph[V, E, F]) Edge(k EdgeKey) (E, error) {
	e, err := g.edge(k)
	if err != nil {
		var zero E
		return zero, keyError("Edge", "edge", k, err)
	}
	return e.payload, nil
}

// SetEdge replaces the payload of an edge.
func (g *Graph[V, E, F]) SetEdge(k EdgeKey, payload E) error {
	e, err := g.edge(k)
	if err != nil {
		return keyError("SetEdge", "edge", k, err)
	}
	e.payload = payload
	return g.setEdge(k, e)
}

// Face returns the payload of a face.
func (g *Graph[V, E, F]) Face(k FaceKey) (F, error) {
	f, err := g.face(k)
	if err != nil {
		var zero F
		return zero, keyError("Face", "face", k, err)
	}
	return f.payload, nil
}

// SetFace replaces the payload of a face.
func (g *Graph[V, E, F]) SetFace(k FaceKey, payload F) error {
	f, err := g.face(k)
	if err != nil {
		return keyError("SetFace", "face", k, err)
	}
	f.payload = payload
	return g.setFace(k, f)
}

// ArcView is a read-only snapshot of an arc's adjacency.
type ArcView struct {
	Key         ArcKey
	Origin      VertexKey
	Destination VertexKey
	Opposite    ArcKey
	Next        ArcKey  // zero on boundary arcs
	Previous    ArcKey  // zero on boundary arcs
	Face        FaceKey // zero on boundary arcs
	Edge        EdgeKey
}

// IsBoundary reports whether the arc bounds no face.
func (v ArcView) IsBoundary() bool { return v.Face.IsZero() }

// Arc returns the adjacency of an arc.
func (g *Graph[V, E, F]) Arc(k ArcKey) (ArcView, error) {
	a, err := g.arc(k)
	if err != nil {
		return ArcView{}, keyError("Arc", "arc", k, err)
	}
	o, err := g.arc(a.opposite)
	if err != nil {
		return ArcView{}, newError("Arc", ErrTopology, broken("opposite of %s: %v", k, err))
	}
	return ArcView{
		Key:         k,
		Origin:      o.dest,
		Destination: a.dest,
		Opposite:    a.opposite,
		Next:        a.next,
		Previous:    a.prev,
		Face:        a.face,
		Edge:        a.edge,
	}, nil
}

// Opposite returns the arc paired with k.
func (g *Graph[V, E, F]) Opposite(k ArcKey) (ArcKey, error) {
	a, err := g.arc(k)
	if err != nil {
		return ArcKey{}, keyError("Opposite", "arc", k, err)
	}
	return a.opposite, nil
}

// EdgeArcs returns the two arcs of an edge. The first one is the arc the
// edge was created with.
func (g *Graph[V, E, F]) EdgeArcs(k EdgeKey) (ArcKey, ArcKey, error) {
	e, err := g.edge(k)
	if err != nil {
		return ArcKey{}, ArcKey{}, keyError("EdgeArcs", "edge", k, err)
	}
	return e.arcs[0], e.arcs[1], nil
}

// EdgeVertices returns the endpoints of an edge, origin of its first arc
// first.
func (g *Graph[V, E, F]) EdgeVertices(k EdgeKey) (VertexKey, VertexKey, error) {
	a, _, err := g.EdgeArcs(k)
	if err != nil {
		return VertexKey{}, VertexKey{}, err
	}
	av, err := g.Arc(a)
	if err != nil {
		return VertexKey{}, VertexKey{}, err
	}
	return av.Origin, av.Destination, nil
}

// FaceArc returns the representative arc of a face.
func (g *Graph[V, E, F]) FaceArc(k FaceKey) (ArcKey, error) {
	f, err := g.face(k)
	if err != nil {
		return ArcKey{}, keyError("FaceArc", "face", k, err)
	}
	return f.arc, nil
}

// VertexArc returns the representative outgoing arc of a vertex, or the
// zero key for an isolated vertex.
func (g *Graph[V, E, F]) VertexArc(k VertexKey) (ArcKey, error) {
	v, err := g.vertex(k)
	if err != nil {
		return ArcKey{}, keyError("VertexArc", "vertex", k, err)
	}
	return v.arc, nil
}

// FindArc returns the arc from u to w, if any.
func (g *Graph[V, E, F]) FindArc(u, w VertexKey) (ArcKey, bool, error) {
	if !g.ContainsVertex(w) {
		_, err := g.vertex(w)
		return ArcKey{}, false, keyError("FindArc", "vertex", w, err)
	}
	c := g.VertexOutgoing(u)
	for c.Next() {
		a, err := g.arc(c.Key())
		if err != nil {
			return ArcKey{}, false, newError("FindArc", ErrTopology, broken("%v", err))
		}
		if a.dest == w {
			return c.Key(), true, nil
		}
	}
	return ArcKey{}, false, c.Err()
}

// Arity returns the number of arcs bounding a face.
func (g *Graph[V, E, F]) Arity(k FaceKey) (int, error) {
	c := g.FaceArcs(k)
	n := 0
	for c.Next() {
		n++
	}
	return n, c.Err()
}

// IsBoundaryVertex reports whether v touches an arc without a face.
func (g *Graph[V, E, F]) IsBoundaryVertex(v VertexKey) (bool, error) {
	c := g.VertexOutgoing(v)
	for c.Next() {
		a, err := g.arc(c.Key())
		if err != nil {
			return false, newError("IsBoundaryVertex", ErrTopology, broken("%v", err))
		}
		if a.boundary() {
			return true, nil
		}
		o, err := g.arc(a.opposite)
		if err != nil {
			return false, newError("IsBoundaryVertex", ErrTopology, broken("%v", err))
		}
		if o.boundary() {
			return true, nil
		}
	}
	return false, c.Err()
}

// BoundaryArcs returns every arc that bounds no face, in storage order.
func (g *Graph[V, E, F]) BoundaryArcs() []ArcKey {
	var out []ArcKey
	for k, a := range g.arcs.store.All() {
		if a.boundary() {
			out = append(out, ArcKey(k))
		}
	}
	return out
}

// RingVertex is one corner of a face loop.
type RingVertex[V any] struct {
	Key     VertexKey
	Payload V
}

// FaceRing returns the corners of a face in winding order, starting at the
// origin of its representative arc.
func (g *Graph[V, E, F]) FaceRing(k FaceKey) ([]RingVertex[V], error) {
	c := g.FaceVertices(k)
	var ring []RingVertex[V]
	for c.Next() {
		v, err := g.vertex(c.Key())
		if err != nil {
			return nil, newError("FaceRing", ErrTopology, broken("%v", err))
		}
		ring = append(ring, RingVertex[V]{Key: c.Key(), Payload: v.payload})
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return ring, nil
}

// CheckConsistency verifies every local invariant over the whole graph,
// plus uniqueness of each (origin, destination) pair. It does not check
// global manifoldness.
func (g *Graph[V, E, F]) CheckConsistency() error {
	const op = "CheckConsistency"
	pairs := make(map[[2]VertexKey]ArcKey, g.arcs.len())
	for _, k := range g.Arcs() {
		if err := g.checkArc(k); err != nil {
			return newError(op, ErrTopology, err)
		}
		av, err := g.Arc(k)
		if err != nil {
			return err
		}
		key := [2]VertexKey{av.Origin, av.Destination}
		if prev, dup := pairs[key]; dup {
			return newError(op, ErrTopology, fmt.Errorf("%w: arcs %s and %s both run %s→%s",
				ErrBrokenTopology, prev, k, av.Origin, av.Destination))
		}
		pairs[key] = k
	}
	for _, k := range g.Edges() {
		if err := g.checkEdge(k); err != nil {
			return newError(op, ErrTopology, err)
		}
	}
	for _, k := range g.Faces() {
		if _, err := g.checkFace(k); err != nil {
			return newError(op, ErrTopology, err)
		}
	}
	for _, k := range g.Vertices() {
		if err := g.checkVertex(k); err != nil {
			return newError(op, ErrTopology, err)
		}
	}
	return nil
}
