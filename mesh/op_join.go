// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// op_join.go — Join: bridge two disjoint faces with a band of quads.
//
// Face A has arcs a_i = v_i→v_{i+1}. Face B is walked backwards from a
// chosen corner to give the partners w_i, so that B owns the arcs
// b_i = w_{i+1}→w_i. One rung edge {up_i, down_i} joins v_i and w_i:
//
//	     w_i ◀──b_i── w_{i+1}          side S_i: a_i, up_{i+1}, b_i, down_i
//	      ▲│            ▲│
//	 up_i ││ down_i     ││
//	      │▼            │▼
//	     v_i ──a_i──▶ v_{i+1}
//
// The arcs of A and B keep their keys and move to the sides; both face keys
// are removed. Faces that point at each other yield an untwisted tube.

package mesh

import (
	"fmt"
	"math"
)

// JoinResult reports the band built by Join.
type JoinResult struct {
	Sides []FaceKey // Sides[i] borders the i-th arc of the first face
	Rungs []EdgeKey // Rungs[i] leaves the i-th corner of the first face
	Changes
}

// Join removes faces a and b and connects their boundaries with one quad
// per corner. Both faces must have the same arity and share no vertex.
//
// With a geometry adapter each corner of a is paired with the corner of b
// that minimises the total rung length; without one, the origin of a's
// representative arc is paired with the origin of b's. A rung that would
// duplicate an existing edge is rejected.
func (g *Graph[V, E, F]) Join(a, b FaceKey) (JoinResult, error) {
	const op = "Join"

	// Phase 1: snapshot and validate, no writes.
	if _, err := g.face(a); err != nil {
		return JoinResult{}, keyError(op, "face", a, err)
	}
	if _, err := g.face(b); err != nil {
		return JoinResult{}, keyError(op, "face", b, err)
	}
	if a == b {
		return JoinResult{}, newError(op, ErrPrecondition, fmt.Errorf("%w: %s", ErrSameFace, a))
	}
	arcsA, err := g.FaceArcs(a).Collect()
	if err != nil {
		return JoinResult{}, err
	}
	arcsB, err := g.FaceArcs(b).Collect()
	if err != nil {
		return JoinResult{}, err
	}
	ringA, err := g.FaceRing(a)
	if err != nil {
		return JoinResult{}, err
	}
	ringB, err := g.FaceRing(b)
	if err != nil {
		return JoinResult{}, err
	}
	n := len(arcsA)
	if len(arcsB) != n {
		return JoinResult{}, newError(op, ErrPrecondition,
			fmt.Errorf("%w: %s has %d corners, %s has %d", ErrArityMismatch, a, n, b, len(arcsB)))
	}
	for _, rv := range ringA {
		if indexOf(ringB, rv.Key) >= 0 {
			return JoinResult{}, newError(op, ErrPrecondition, fmt.Errorf("%w: %s", ErrSharedVertex, rv.Key))
		}
	}

	r := g.joinRotation(ringA, ringB)
	w := make([]VertexKey, n)
	back := make([]ArcKey, n) // b_i: w_{i+1} → w_i
	for i := range n {
		w[i] = ringB[mod(r-i, n)].Key
		back[i] = arcsB[mod(r-i-1, n)]
	}
	for i := range n {
		_, found, err := g.FindArc(ringA[i].Key, w[i])
		if err != nil {
			return JoinResult{}, err
		}
		if found {
			return JoinResult{}, newError(op, ErrPrecondition, fmt.Errorf("%w: %s→%s", ErrArcExists, ringA[i].Key, w[i]))
		}
	}

	// Phase 2: apply.
	res := JoinResult{Sides: make([]FaceKey, n), Rungs: make([]EdgeKey, n)}
	res.Changes, err = g.mutate(op, func() error {
		var zero E
		up := make([]ArcKey, n)   // v_i → w_i
		down := make([]ArcKey, n) // w_i → v_i
		for i := range n {
			up[i], down[i], res.Rungs[i] = g.addEdge(ringA[i].Key, w[i], zero)
		}
		for i := range n {
			res.Sides[i] = g.addFace(face[F]{arc: arcsA[i]})
		}
		for i := range n {
			loop := [4]ArcKey{arcsA[i], up[(i+1)%n], back[i], down[i]}
			for k := range loop {
				if err := g.link(res.Sides[i], loop[k], loop[(k+1)%4]); err != nil {
					return err
				}
			}
		}
		if err := g.faces.remove(arenaKey(a)); err != nil {
			return err
		}
		return g.faces.remove(arenaKey(b))
	})
	if err != nil {
		return JoinResult{}, err
	}
	return res, nil
}

// joinRotation picks the corner of ringB that partners ringA[0].
func (g *Graph[V, E, F]) joinRotation(ringA, ringB []RingVertex[V]) int {
	if g.geo == nil {
		return 0
	}
	n := len(ringA)
	best, bestCost := 0, math.Inf(1)
	for r := range n {
		cost := 0.0
		for i := range n {
			cost += g.geo.dist2(ringA[i].Payload, ringB[mod(r-i, n)].Payload)
		}
		if cost < bestCost {
			best, bestCost = r, cost
		}
	}
	return best
}

func mod(i, n int) int { return ((i % n) + n) % n }
