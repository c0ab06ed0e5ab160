// SPDX-License-Identifier: MIT
// Package: lvmesh/encoding
//
// model.go — the file-format neutral mesh model shared by the encoders.
//
// A Model is what every on-disk format reads into and writes from: a
// position list and faces as index rings. Faces may have any arity ≥ 3 and
// keep their winding. Conversion to and from mesh.Graph goes through
// mesh.FromPolygons, so a Model that decodes cleanly but is not manifold
// fails at Build, not at Decode.

package encoding

import (
	"fmt"
	"iter"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/mesh"
)

// Model is a polygon mesh as index rings over a position list.
type Model struct {
	// Name is an optional object name ("o" record, document name).
	Name string

	// Positions holds one position per vertex; faces index into it.
	Positions []vec3.T

	// Faces lists every face as a counter-clockwise ring of indices.
	Faces [][]int
}

// Validate checks every face has at least three corners and that every
// index addresses a position.
func (m *Model) Validate() error {
	for i, face := range m.Faces {
		if len(face) < 3 {
			return fmt.Errorf("%w: face %d has %d corners", ErrFaceArity, i, len(face))
		}
		for _, idx := range face {
			if idx < 0 || idx >= len(m.Positions) {
				return fmt.Errorf("%w: face %d references %d of %d positions", ErrFaceIndex, i, idx, len(m.Positions))
			}
		}
	}
	return nil
}

// Polygons returns the faces as a restartable polygon stream whose IDs are
// position indices. The model must be valid.
func (m *Model) Polygons() iter.Seq[mesh.Polygon[int, vec3.T]] {
	return func(yield func(mesh.Polygon[int, vec3.T]) bool) {
		for _, face := range m.Faces {
			poly := make(mesh.Polygon[int, vec3.T], len(face))
			for k, idx := range face {
				poly[k] = mesh.Corner[int, vec3.T]{ID: idx, Payload: m.Positions[idx]}
			}
			if !yield(poly) {
				return
			}
		}
	}
}

// Build validates m and ingests it into a new graph carrying vec3 geometry.
// Positions referenced by no face are dropped.
func Build[E, F any](m *Model, opts ...mesh.Option[vec3.T]) (*mesh.Graph[vec3.T, E, F], error) {
	g, _, err := BuildIndex[E, F](m, opts...)
	return g, err
}

// BuildIndex is Build that also returns the vertex key of every referenced
// position index.
func BuildIndex[E, F any](m *Model, opts ...mesh.Option[vec3.T]) (*mesh.Graph[vec3.T, E, F], map[int]mesh.VertexKey, error) {
	if m == nil {
		return nil, nil, ErrNilModel
	}
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}
	opts = append([]mesh.Option[vec3.T]{mesh.WithGeometry(geometry.Points())}, opts...)
	g, ids, err := mesh.FromPolygonsIndex[E, F](m.Polygons(), opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding: build %q: %w", m.Name, err)
	}
	return g, ids, nil
}

// FromGraph flattens g into a Model. Positions follow g.Vertices() order and
// faces follow g.Faces() order, each ring starting at the face's
// representative arc.
func FromGraph[E, F any](g *mesh.Graph[vec3.T, E, F]) (*Model, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	keys := g.Vertices()
	index := make(map[mesh.VertexKey]int, len(keys))
	m := &Model{Positions: make([]vec3.T, len(keys))}
	for i, k := range keys {
		p, err := g.Vertex(k)
		if err != nil {
			return nil, fmt.Errorf("encoding: %w", err)
		}
		index[k] = i
		m.Positions[i] = p
	}

	faces := g.Faces()
	m.Faces = make([][]int, 0, len(faces))
	for _, f := range faces {
		ring, err := g.FaceVertices(f).Collect()
		if err != nil {
			return nil, fmt.Errorf("encoding: %w", err)
		}
		face := make([]int, len(ring))
		for k, v := range ring {
			face[k] = index[v]
		}
		m.Faces = append(m.Faces, face)
	}
	return m, nil
}

// Stats summarises a model: counts plus a histogram of face arities.
type Stats struct {
	Positions int
	Faces     int
	Arity     map[int]int
}

// Stats computes the summary of m.
func (m *Model) Stats() Stats {
	s := Stats{Positions: len(m.Positions), Faces: len(m.Faces), Arity: make(map[int]int)}
	for _, face := range m.Faces {
		s.Arity[len(face)]++
	}
	return s
}
