// SPDX-License-Identifier: MIT
// Package: lvmesh/buffer
//
// buffer.go — export of a graph into flat buffers and import back.
//
// Determinism:
//   • Vertices are numbered in the graph's key order (mesh.Graph.Vertices).
//   • Faces are written in key order; each run starts at the face's
//     representative arc, so winding is preserved.
//
// Complexity: O(V + A) for export, plus triangulation of the clone when
// Arity is 3; O(len(Indices)) for import.

package buffer

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Index is the set of integer types usable as buffer indices.
type Index interface {
	~uint16 | ~uint32 | ~uint64 | ~int
}

// Buffer is a flat index buffer over a vertex buffer. Every Arity
// consecutive indices describe one face.
type Buffer[I Index, V any] struct {
	Indices  []I
	Vertices []V
	Arity    int
}

const methodFromGraph = "FromGraph"

// FromGraph exports g into a buffer of the given arity. Isolated vertices
// are written to the vertex buffer but referenced by no face.
//
// Arity 3 triangulates every larger face of a clone with g's triangulation
// policy. For any other arity every face must already match.
func FromGraph[I Index, V, E, F any](g *mesh.Graph[V, E, F], arity int) (Buffer[I, V], error) {
	if arity < 3 {
		return Buffer[I, V]{}, fmt.Errorf("%s: arity=%d: %w", methodFromGraph, arity, ErrBadArity)
	}
	src := g
	if arity == 3 {
		src = g.Clone()
		if _, err := src.TriangulateAll(); err != nil {
			return Buffer[I, V]{}, fmt.Errorf("%s: %w", methodFromGraph, err)
		}
	}

	keys := src.Vertices()
	if n := len(keys); n > 0 {
		if _, ok := toIndex[I](n - 1); !ok {
			return Buffer[I, V]{}, fmt.Errorf("%s: %d vertices: %w", methodFromGraph, n, ErrIndexOverflow)
		}
	}
	index := make(map[mesh.VertexKey]I, len(keys))
	buf := Buffer[I, V]{
		Vertices: make([]V, len(keys)),
		Arity:    arity,
	}
	for i, k := range keys {
		p, err := src.Vertex(k)
		if err != nil {
			return Buffer[I, V]{}, fmt.Errorf("%s: %w", methodFromGraph, err)
		}
		index[k], _ = toIndex[I](i)
		buf.Vertices[i] = p
	}

	faces := src.Faces()
	buf.Indices = make([]I, 0, len(faces)*arity)
	for _, f := range faces {
		ring, err := src.FaceVertices(f).Collect()
		if err != nil {
			return Buffer[I, V]{}, fmt.Errorf("%s: %w", methodFromGraph, err)
		}
		if len(ring) != arity {
			return Buffer[I, V]{}, fmt.Errorf("%s: face %s has %d corners, want %d: %w",
				methodFromGraph, f, len(ring), arity, ErrArityMismatch)
		}
		for _, v := range ring {
			buf.Indices = append(buf.Indices, index[v])
		}
	}
	return buf, nil
}

// toIndex converts n to I, reporting false when it does not fit.
func toIndex[I Index](n int) (I, bool) {
	i := I(n)
	return i, n >= 0 && uint64(i) == uint64(n)
}

// FaceCount returns the number of faces described by the index buffer.
func (b Buffer[I, V]) FaceCount() int {
	if b.Arity <= 0 {
		return 0
	}
	return len(b.Indices) / b.Arity
}

// Validate checks that the index buffer splits into whole faces and that
// every index addresses a vertex.
func (b Buffer[I, V]) Validate() error {
	if b.Arity < 3 {
		return fmt.Errorf("Validate: arity=%d: %w", b.Arity, ErrBadArity)
	}
	if len(b.Indices)%b.Arity != 0 {
		return fmt.Errorf("Validate: %d indices for arity %d: %w", len(b.Indices), b.Arity, ErrMalformed)
	}
	for pos, i := range b.Indices {
		if uint64(i) >= uint64(len(b.Vertices)) {
			return fmt.Errorf("Validate: index %d at %d, %d vertices: %w", i, pos, len(b.Vertices), ErrMalformed)
		}
	}
	return nil
}

// Polygons returns the buffer as a restartable polygon stream whose IDs are
// the buffer indices, ready for mesh.FromPolygons. The buffer is validated
// first.
func (b Buffer[I, V]) Polygons() (iter.Seq[mesh.Polygon[I, V]], error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return func(yield func(mesh.Polygon[I, V]) bool) {
		for start := 0; start < len(b.Indices); start += b.Arity {
			poly := make(mesh.Polygon[I, V], b.Arity)
			for k, i := range b.Indices[start : start+b.Arity] {
				poly[k] = mesh.Corner[I, V]{ID: i, Payload: b.Vertices[i]}
			}
			if !yield(poly) {
				return
			}
		}
	}, nil
}
