// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// op_fill.go — FillBoundary: close a hole with a new face.
//
// From a boundary arc u→v the next boundary arc of the same ring leaves v.
// It is found by rotating around v: start at the opposite of u→v, which
// bounds a face, and step to opposite(prev(·)) until an arc without a face
// turns up. A manifold vertex has exactly one outgoing boundary arc, so the
// ring is unique.
//
// The boundary arcs keep their keys and are linked into the new face, whose
// winding is the reverse of the faces around the hole.

package mesh

import "fmt"

// FillResult reports the face created by FillBoundary.
type FillResult struct {
	Face FaceKey
	Changes
}

// FillBoundary walks the boundary ring containing arc a and turns it into a
// face with a zero payload. a must be a boundary arc. No vertex, arc or edge
// is created.
func (g *Graph[V, E, F]) FillBoundary(a ArcKey) (FillResult, error) {
	const op = "FillBoundary"
	ring, err := g.boundaryRing(op, a)
	if err != nil {
		return FillResult{}, err
	}

	var res FillResult
	res.Changes, err = g.mutate(op, func() error {
		res.Face = g.addFace(face[F]{arc: ring[0]})
		for i := range ring {
			if err := g.link(res.Face, ring[i], ring[(i+1)%len(ring)]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return FillResult{}, err
	}
	return res, nil
}

// boundaryRing lists the boundary arcs of the hole that a borders, starting
// with a.
func (g *Graph[V, E, F]) boundaryRing(op string, a ArcKey) ([]ArcKey, error) {
	start, err := g.arc(a)
	if err != nil {
		return nil, keyError(op, "arc", a, err)
	}
	if !start.boundary() {
		return nil, newError(op, ErrPrecondition, fmt.Errorf("%w: %s bounds %s", ErrNotBoundary, a, start.face))
	}

	limit := g.arcs.len()
	ring := []ArcKey{a}
	seen := map[VertexKey]bool{start.dest: true}
	cur := start
	for {
		next, err := g.boundaryFrom(cur, limit)
		if err != nil {
			return nil, newError(op, ErrTopology, err)
		}
		if next == a {
			break
		}
		nr, err := g.arc(next)
		if err != nil {
			return nil, newError(op, ErrTopology, broken("%v", err))
		}
		if seen[nr.dest] {
			return nil, newError(op, ErrDegenerateResult, fmt.Errorf("%w: %s", ErrRepeatedVertex, nr.dest))
		}
		seen[nr.dest] = true
		ring = append(ring, next)
		cur = nr
		if len(ring) > limit {
			return nil, newError(op, ErrTopology, broken("boundary from %s does not close", a))
		}
	}
	if len(ring) < 3 {
		return nil, newError(op, ErrDegenerateResult, fmt.Errorf("%w: hole of %d arcs", ErrArityTooSmall, len(ring)))
	}
	return ring, nil
}

// boundaryFrom returns the boundary arc leaving the destination of the
// boundary arc x.
func (g *Graph[V, E, F]) boundaryFrom(x arc, limit int) (ArcKey, error) {
	k := x.opposite
	for range limit {
		c, err := g.arc(k)
		if err != nil {
			return ArcKey{}, broken("%v", err)
		}
		if c.boundary() {
			return k, nil
		}
		p, err := g.arc(c.prev)
		if err != nil {
			return ArcKey{}, broken("%v", err)
		}
		k = p.opposite
	}
	return ArcKey{}, broken("no boundary arc around %s", x.dest)
}
