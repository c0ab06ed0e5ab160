// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// build.go — graph construction from a polygon stream.
//
// Algorithm:
//   1. For each polygon, resolve external IDs to vertex keys (first
//      occurrence creates the vertex and fixes its payload).
//   2. For each consecutive pair (u,w), claim the boundary arc u→w if the
//      opposite polygon already created it, otherwise create the edge with
//      both arcs. An arc that already bounds a face fails construction.
//   3. Link next/prev around the polygon and create its face.
//   4. Count open boundary arcs leaving each vertex; more than one means
//      several open fans meet there and the input is rejected.
//
// Complexity: O(V + E + F) expected with hashing; O(V + E) extra memory for
// the ID and endpoint maps.

package mesh

import (
	"fmt"
	"iter"
)

// Corner is one vertex reference of an input polygon: an external ID and
// the payload to use if the ID has not been seen before.
type Corner[K comparable, V any] struct {
	ID      K
	Payload V
}

// Polygon is an ordered loop of corners, wound counter-clockwise.
type Polygon[K comparable, V any] []Corner[K, V]

// FromPolygons builds a graph from a finite polygon stream. Edge and face
// payloads start as zero values. Any malformed polygon, or a non-manifold
// configuration, rejects the whole input.
//
// Type parameters are ordered so that only the edge and face payload types
// need spelling out:
//
//	g, err := mesh.FromPolygons[struct{}, struct{}](polys)
func FromPolygons[E, F any, K comparable, V any](polygons iter.Seq[Polygon[K, V]], opts ...Option[V]) (*Graph[V, E, F], error) {
	g, _, err := FromPolygonsIndex[E, F](polygons, opts...)
	return g, err
}

// FromPolygonsIndex is FromPolygons that also returns the vertex key
// assigned to every external ID.
func FromPolygonsIndex[E, F any, K comparable, V any](polygons iter.Seq[Polygon[K, V]], opts ...Option[V]) (*Graph[V, E, F], map[K]VertexKey, error) {
	b := builder[K, V, E, F]{
		g:     New[V, E, F](opts...),
		ids:   make(map[K]VertexKey),
		pairs: make(map[[2]VertexKey]ArcKey),
	}
	n := 0
	for poly := range polygons {
		if err := b.add(n, poly); err != nil {
			return nil, nil, err
		}
		n++
	}
	if err := b.finish(); err != nil {
		return nil, nil, err
	}
	return b.g, b.ids, nil
}

type builder[K comparable, V, E, F any] struct {
	g     *Graph[V, E, F]
	ids   map[K]VertexKey
	pairs map[[2]VertexKey]ArcKey
}

func constructionError(format string, args ...any) error {
	return newError("FromPolygons", ErrConstruction, fmt.Errorf(format, args...))
}

func (b *builder[K, V, E, F]) add(index int, poly Polygon[K, V]) error {
	if len(poly) < 3 {
		return constructionError("polygon %d: %w (%d)", index, ErrArityTooSmall, len(poly))
	}
	seen := make(map[K]struct{}, len(poly))
	keys := make([]VertexKey, len(poly))
	for i, c := range poly {
		if _, dup := seen[c.ID]; dup {
			return constructionError("polygon %d: %w: %v", index, ErrRepeatedVertex, c.ID)
		}
		seen[c.ID] = struct{}{}
		k, ok := b.ids[c.ID]
		if !ok {
			k = b.g.addVertex(vertex[V]{payload: c.Payload})
			b.ids[c.ID] = k
		}
		keys[i] = k
	}

	// check every arc before writing any of them
	ring := make([]ArcKey, len(keys))
	for i, u := range keys {
		w := keys[(i+1)%len(keys)]
		if a, ok := b.pairs[[2]VertexKey{u, w}]; ok {
			rec, _ := b.g.arc(a)
			if !rec.boundary() {
				return constructionError("polygon %d: %w: %v→%v", index, ErrArcClaimed, poly[i].ID, poly[(i+1)%len(poly)].ID)
			}
			ring[i] = a
		}
	}

	f := b.g.addFace(face[F]{})
	for i, u := range keys {
		if !ring[i].IsZero() {
			continue
		}
		w := keys[(i+1)%len(keys)]
		var zero E
		uw, wu, _ := b.g.addEdge(u, w, zero)
		b.pairs[[2]VertexKey{u, w}] = uw
		b.pairs[[2]VertexKey{w, u}] = wu
		ring[i] = uw
		for _, end := range [2]struct {
			v VertexKey
			a ArcKey
		}{{u, uw}, {w, wu}} {
			vx, _ := b.g.vertex(end.v)
			if vx.arc.IsZero() {
				vx.arc = end.a
				_ = b.g.setVertex(end.v, vx)
			}
		}
	}
	for i, k := range ring {
		a, _ := b.g.arc(k)
		a.face = f
		a.next = ring[(i+1)%len(ring)]
		a.prev = ring[(i+len(ring)-1)%len(ring)]
		_ = b.g.setArc(k, a)
	}
	_ = b.g.setFace(f, face[F]{arc: ring[0]})
	return nil
}

// finish rejects vertices where several open fans meet and points every
// boundary vertex at its open outgoing arc so rotation starts at the fan end.
func (b *builder[K, V, E, F]) finish() error {
	open := make(map[VertexKey]ArcKey)
	for k, a := range b.g.arcs.store.All() {
		if !a.boundary() {
			continue
		}
		o, _ := b.g.arc(a.opposite)
		from := o.dest
		if _, dup := open[from]; dup {
			return constructionError("vertex %s: %w: more than one open fan", from, ErrNonManifold)
		}
		open[from] = ArcKey(k)
	}
	for v, a := range open {
		vx, _ := b.g.vertex(v)
		vx.arc = a
		_ = b.g.setVertex(v, vx)
	}
	return nil
}
