// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// op_triangulate.go — Triangulate: split a face into triangles.
//
// The face is cut diagonal by diagonal using SplitFace's machinery inside a
// single transaction, so a policy failure half way leaves the graph intact.
// Both halves of each cut go back on the work list until every piece is a
// triangle; an n-gon always yields n-2 triangles and n-3 new edges.

package mesh

import (
	"errors"
	"fmt"
)

// TriangulateResult reports the triangles a face was cut into. The original
// face key survives as one of them.
type TriangulateResult struct {
	Faces []FaceKey
	Changes
}

// Triangulate splits f into triangles with the graph's default policy
// (Fan unless WithTriangulation says otherwise). A triangle is left as is.
func (g *Graph[V, E, F]) Triangulate(f FaceKey) (TriangulateResult, error) {
	return g.TriangulateWith(f, g.policy)
}

// TriangulateWith splits f into triangles using policy p.
func (g *Graph[V, E, F]) TriangulateWith(f FaceKey, p TriangulationPolicy[V]) (TriangulateResult, error) {
	const op = "Triangulate"
	if p == nil {
		p = Fan[V]{}
	}
	if _, err := g.face(f); err != nil {
		return TriangulateResult{}, keyError(op, "face", f, err)
	}
	var res TriangulateResult
	var err error
	res.Changes, err = g.mutate(op, func() error {
		res.Faces, err = g.triangulate(op, f, p)
		return err
	})
	if err != nil {
		return TriangulateResult{}, err
	}
	return res, nil
}

// TriangulateAll triangulates every face of arity > 3 in one transaction
// using the graph's default policy.
func (g *Graph[V, E, F]) TriangulateAll() (TriangulateResult, error) {
	const op = "TriangulateAll"
	var res TriangulateResult
	var err error
	res.Changes, err = g.mutate(op, func() error {
		for _, f := range g.Faces() {
			tris, terr := g.triangulate(op, f, g.policy)
			if terr != nil {
				return terr
			}
			res.Faces = append(res.Faces, tris...)
		}
		return nil
	})
	if err != nil {
		return TriangulateResult{}, err
	}
	return res, nil
}

// triangulate cuts f inside an open transaction and returns all resulting
// triangles.
func (g *Graph[V, E, F]) triangulate(op string, f FaceKey, p TriangulationPolicy[V]) ([]FaceKey, error) {
	var out []FaceKey
	work := []FaceKey{f}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]

		ring, err := g.FaceRing(cur)
		if err != nil {
			return nil, err
		}
		n := len(ring)
		if n <= 3 {
			out = append(out, cur)
			continue
		}
		i, j, err := p.Diagonal(ring)
		if err != nil {
			kind := ErrDegenerateResult
			if errors.Is(err, ErrGeometryRequired) {
				kind = ErrPrecondition
			}
			return nil, newError(op, kind, fmt.Errorf("face %s: %w", cur, err))
		}
		if i < 0 || i >= n || j < 0 || j >= n {
			return nil, newError(op, ErrPrecondition, fmt.Errorf("%w: (%d,%d) of %d", ErrInvalidDiagonal, i, j, n))
		}
		if span := (j - i + n) % n; span < 2 || span > n-2 {
			return nil, newError(op, ErrPrecondition, fmt.Errorf("%w: (%d,%d) of %d", ErrInvalidDiagonal, i, j, n))
		}
		piece, _, err := g.splitFace(op, cur, ring[i].Key, ring[j].Key)
		if err != nil {
			return nil, err
		}
		// piece is usually the triangle; pop it first
		work = append(work, cur, piece)
	}
	return out, nil
}
