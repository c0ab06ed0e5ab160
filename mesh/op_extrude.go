// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// op_extrude.go — Extrude: lift a face into a cap joined by a band of quads.
//
// Layout for a face with arcs a_i = v_i→v_{i+1}, i in [0,n):
//
//	     w_i ──c_i──▶ w_{i+1}          cap:  c_0 … c_{n-1}
//	      ▲│            ▲│             side S_i: a_i, up_{i+1}, ĉ_i, down_i
//	 up_i ││ down_i     ││
//	      │▼            │▼
//	     v_i ──a_i──▶ v_{i+1}
//
// ĉ_i is the opposite of c_i. The original arcs a_i keep their keys and
// move to the side faces; the original face key is removed.

package mesh

import "fmt"

// ExtrudeResult reports the keys created by Extrude.
type ExtrudeResult struct {
	Cap      FaceKey     // new face carrying the original payload
	Sides    []FaceKey   // side quads; Sides[i] borders the i-th original arc
	Vertices []VertexKey // duplicated vertices in loop order
	Changes
}

// Extrude duplicates the boundary of face f, offsets the copies by offset
// along the face normal, and joins both loops with one quad per original
// arc. The original face is removed and replaced by the cap.
//
// A zero offset needs no geometry: duplicated vertices copy their source
// payloads. A non-zero offset requires a geometry adapter and a face with a
// well-defined normal.
func (g *Graph[V, E, F]) Extrude(f FaceKey, offset float64) (ExtrudeResult, error) {
	const op = "Extrude"

	// Phase 1: snapshot and validate, no writes.
	fc, err := g.face(f)
	if err != nil {
		return ExtrudeResult{}, keyError(op, "face", f, err)
	}
	arcs, err := g.FaceArcs(f).Collect()
	if err != nil {
		return ExtrudeResult{}, err
	}
	ring, err := g.FaceRing(f)
	if err != nil {
		return ExtrudeResult{}, err
	}
	n := len(arcs)
	payloads := make([]V, n)
	for i, rv := range ring {
		payloads[i] = rv.Payload
	}
	if offset != 0 {
		if g.geo == nil {
			return ExtrudeResult{}, newError(op, ErrPrecondition, fmt.Errorf("%w: non-zero offset", ErrGeometryRequired))
		}
		moved, err := g.geo.offsetRing(payloads, offset)
		if err != nil {
			return ExtrudeResult{}, newError(op, ErrDegenerateResult, fmt.Errorf("face %s: %w", f, err))
		}
		payloads = moved
	}

	// Phase 2: apply.
	res := ExtrudeResult{Sides: make([]FaceKey, n), Vertices: make([]VertexKey, n)}
	res.Changes, err = g.mutate(op, func() error {
		w := res.Vertices
		for i := range n {
			w[i] = g.addVertex(vertex[V]{payload: payloads[i]})
		}

		var zero E
		top := make([]ArcKey, n)  // c_i: w_i → w_{i+1}
		topO := make([]ArcKey, n) // ĉ_i: w_{i+1} → w_i
		up := make([]ArcKey, n)   // up_i: v_i → w_i
		down := make([]ArcKey, n) // down_i: w_i → v_i
		for i := range n {
			top[i], topO[i], _ = g.addEdge(w[i], w[(i+1)%n], zero)
			up[i], down[i], _ = g.addEdge(ring[i].Key, w[i], zero)
		}

		res.Cap = g.addFace(face[F]{arc: top[0], payload: fc.payload})
		for i := range n {
			res.Sides[i] = g.addFace(face[F]{arc: arcs[i]})
		}

		// cap loop
		for i := range n {
			if err := g.link(res.Cap, top[i], top[(i+1)%n]); err != nil {
				return err
			}
		}
		// side loops: a_i → up_{i+1} → ĉ_i → down_i
		for i := range n {
			j := (i + 1) % n
			loop := [4]ArcKey{arcs[i], up[j], topO[i], down[i]}
			for k := range loop {
				if err := g.link(res.Sides[i], loop[k], loop[(k+1)%4]); err != nil {
					return err
				}
			}
		}
		for i := range n {
			if err := g.setVertex(w[i], vertex[V]{arc: top[i], payload: payloads[i]}); err != nil {
				return err
			}
		}
		return g.faces.remove(arenaKey(f))
	})
	if err != nil {
		return ExtrudeResult{}, err
	}
	return res, nil
}
