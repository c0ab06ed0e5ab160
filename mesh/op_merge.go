// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// op_merge.go — MergeFaces: remove the edge between two faces.
//
// With x = u→v in face A and y = v→u in face B:
//
//	prev(x) → next(y) … prev(y) → next(x) … prev(x)
//
// forms the merged loop, which keeps A's key. x, y, their edge and B are
// removed.

package mesh

import "fmt"

// MergeResult reports the surviving face of MergeFaces.
type MergeResult struct {
	Face FaceKey
	Changes
}

// MergeFaces joins faces a and b across their single shared edge. The result
// keeps a's key and payload and has arity arity(a)+arity(b)-2. Faces that
// share no edge, or more than one, are rejected, as is any pair whose merged
// boundary would pass through the same vertex twice.
func (g *Graph[V, E, F]) MergeFaces(a, b FaceKey) (MergeResult, error) {
	const op = "MergeFaces"

	fa, err := g.face(a)
	if err != nil {
		return MergeResult{}, keyError(op, "face", a, err)
	}
	if _, err := g.face(b); err != nil {
		return MergeResult{}, keyError(op, "face", b, err)
	}
	if a == b {
		return MergeResult{}, newError(op, ErrPrecondition, fmt.Errorf("%w: %s", ErrSameFace, a))
	}

	arcsA, err := g.FaceArcs(a).Collect()
	if err != nil {
		return MergeResult{}, err
	}
	var x ArcKey
	shared := 0
	for _, k := range arcsA {
		ra, err := g.arc(k)
		if err != nil {
			return MergeResult{}, newError(op, ErrTopology, broken("%v", err))
		}
		ro, err := g.arc(ra.opposite)
		if err != nil {
			return MergeResult{}, newError(op, ErrTopology, broken("%v", err))
		}
		if ro.face == b {
			x = k
			shared++
		}
	}
	if shared != 1 {
		return MergeResult{}, newError(op, ErrPrecondition, fmt.Errorf("%w: %s and %s share %d", ErrNoSharedEdge, a, b, shared))
	}

	vertsA, err := g.FaceVertices(a).Collect()
	if err != nil {
		return MergeResult{}, err
	}
	vertsB, err := g.FaceVertices(b).Collect()
	if err != nil {
		return MergeResult{}, err
	}
	rx, _ := g.arc(x)
	y := rx.opposite
	ry, _ := g.arc(y)
	u, v := ry.dest, rx.dest
	inA := make(map[VertexKey]bool, len(vertsA))
	for _, k := range vertsA {
		inA[k] = true
	}
	for _, k := range vertsB {
		if k != u && k != v && inA[k] {
			return MergeResult{}, newError(op, ErrDegenerateResult, fmt.Errorf("%w: %s would repeat on the merged boundary", ErrRepeatedVertex, k))
		}
	}

	res := MergeResult{Face: a}
	res.Changes, err = g.mutate(op, func() error {
		if err := g.link(a, rx.prev, ry.next); err != nil {
			return err
		}
		if err := g.link(a, ry.prev, rx.next); err != nil {
			return err
		}
		if err := g.assign(a, rx.next); err != nil {
			return err
		}
		if fa.arc == x {
			fa.arc = rx.next
			if err := g.setFace(a, fa); err != nil {
				return err
			}
		}
		// u and v must not keep x or y as their representative
		if err := g.reseat(u, x, ry.next); err != nil {
			return err
		}
		if err := g.reseat(v, y, rx.next); err != nil {
			return err
		}
		if err := g.arcs.remove(arenaKey(x)); err != nil {
			return err
		}
		if err := g.arcs.remove(arenaKey(y)); err != nil {
			return err
		}
		if err := g.edges.remove(arenaKey(rx.edge)); err != nil {
			return err
		}
		return g.faces.remove(arenaKey(b))
	})
	if err != nil {
		return MergeResult{}, err
	}
	return res, nil
}

// reseat points v at repl if its representative arc is old.
func (g *Graph[V, E, F]) reseat(v VertexKey, old, repl ArcKey) error {
	vx, err := g.vertex(v)
	if err != nil {
		return broken("%v", err)
	}
	if vx.arc != old {
		return nil
	}
	vx.arc = repl
	return g.setVertex(v, vx)
}
