// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// op_split.go — SplitEdge and SplitFace.
//
// SplitEdge on edge {ab, ba} with new vertex m:
//
//	before:  a ──ab──▶ b        after:  a ──ab──▶ m ──mb──▶ b
//	         a ◀──ba── b                a ◀──ma── m ◀──ba── b
//
// ab and ba keep their keys and now end at m. The original edge holds
// {ab, ma}; a new edge holds {mb, ba}. Both adjacent faces grow by one.
//
// SplitFace on face f between corners from and to adds the arc from→to
// (closing the loop that f keeps) and its opposite to→from (closing the
// loop of the new face).

package mesh

import "fmt"

// SplitEdgeResult reports the keys created by SplitEdge.
type SplitEdgeResult struct {
	Vertex VertexKey // inserted vertex
	Edge   EdgeKey   // new edge from the inserted vertex to the far endpoint
	Changes
}

// SplitEdge inserts a vertex on edge e at parameter t, measured from the
// origin of the edge's first arc. t must lie strictly inside (0,1).
//
// With a geometry adapter the new payload is the source payload moved to
// the interpolated position; without one it is the zero value. The new edge
// copies e's payload. Nothing is removed.
func (g *Graph[V, E, F]) SplitEdge(e EdgeKey, t float64) (SplitEdgeResult, error) {
	const op = "SplitEdge"

	ed, err := g.edge(e)
	if err != nil {
		return SplitEdgeResult{}, keyError(op, "edge", e, err)
	}
	if !(t > 0 && t < 1) {
		return SplitEdgeResult{}, newError(op, ErrDegenerateResult, fmt.Errorf("%w: t=%v", ErrParameter, t))
	}
	abKey, baKey := ed.arcs[0], ed.arcs[1]
	ab, err := g.arc(abKey)
	if err != nil {
		return SplitEdgeResult{}, newError(op, ErrTopology, broken("%v", err))
	}
	ba, err := g.arc(baKey)
	if err != nil {
		return SplitEdgeResult{}, newError(op, ErrTopology, broken("%v", err))
	}
	a, b := ba.dest, ab.dest
	var payload V
	if g.geo != nil {
		va, err := g.vertex(a)
		if err != nil {
			return SplitEdgeResult{}, newError(op, ErrTopology, broken("%v", err))
		}
		vb, err := g.vertex(b)
		if err != nil {
			return SplitEdgeResult{}, newError(op, ErrTopology, broken("%v", err))
		}
		payload = g.geo.lerp(va.payload, vb.payload, t)
	}

	var res SplitEdgeResult
	res.Changes, err = g.mutate(op, func() error {
		m := g.addVertex(vertex[V]{payload: payload})
		res.Vertex = m

		mb := ArcKey(g.arcs.insert(arc{dest: b, face: ab.face}))
		ma := ArcKey(g.arcs.insert(arc{dest: a, face: ba.face}))
		e2 := EdgeKey(g.edges.insert(edge[E]{arcs: [2]ArcKey{mb, baKey}, payload: ed.payload}))
		res.Edge = e2

		ab.dest, ab.opposite = m, ma
		ba.dest, ba.opposite, ba.edge = m, mb, e2
		if err := g.setArc(abKey, ab); err != nil {
			return err
		}
		if err := g.setArc(baKey, ba); err != nil {
			return err
		}
		if err := g.setArc(mb, arc{dest: b, opposite: baKey, face: ab.face, edge: e2}); err != nil {
			return err
		}
		if err := g.setArc(ma, arc{dest: a, opposite: abKey, face: ba.face, edge: e}); err != nil {
			return err
		}
		ed.arcs = [2]ArcKey{abKey, ma}
		if err := g.setEdge(e, ed); err != nil {
			return err
		}

		// splice the new arcs into their faces right after ab / ba
		if !ab.boundary() {
			if err := g.link(ab.face, mb, ab.next); err != nil {
				return err
			}
			if err := g.link(ab.face, abKey, mb); err != nil {
				return err
			}
		}
		if !ba.boundary() {
			if err := g.link(ba.face, ma, ba.next); err != nil {
				return err
			}
			if err := g.link(ba.face, baKey, ma); err != nil {
				return err
			}
		}

		// m leaves on its open side when it has one
		rep := mb
		if ba.boundary() {
			rep = ma
		}
		return g.setVertex(m, vertex[V]{arc: rep, payload: payload})
	})
	if err != nil {
		return SplitEdgeResult{}, err
	}
	return res, nil
}

// SplitFaceResult reports the keys created by SplitFace.
type SplitFaceResult struct {
	Face FaceKey // new face on the to→from side
	Edge EdgeKey // inserted diagonal
	Changes
}

// SplitFace divides face f with a diagonal between two of its corners that
// are not neighbours. f keeps the loop that runs from→to→…→from; the new
// face takes the remaining corners and copies f's payload.
func (g *Graph[V, E, F]) SplitFace(f FaceKey, from, to VertexKey) (SplitFaceResult, error) {
	const op = "SplitFace"
	var res SplitFaceResult
	var err error
	res.Changes, err = g.mutate(op, func() error {
		var serr error
		res.Face, res.Edge, serr = g.splitFace(op, f, from, to)
		return serr
	})
	if err != nil {
		return SplitFaceResult{}, err
	}
	return res, nil
}

// splitFace does the work of SplitFace inside an open transaction.
func (g *Graph[V, E, F]) splitFace(op string, f FaceKey, from, to VertexKey) (FaceKey, EdgeKey, error) {
	fc, err := g.face(f)
	if err != nil {
		return FaceKey{}, EdgeKey{}, keyError(op, "face", f, err)
	}
	arcs, err := g.FaceArcs(f).Collect()
	if err != nil {
		return FaceKey{}, EdgeKey{}, err
	}
	n := len(arcs)
	i, j := -1, -1
	for k, a := range arcs {
		o, err := g.origin(a)
		if err != nil {
			return FaceKey{}, EdgeKey{}, broken("%v", err)
		}
		switch o {
		case from:
			i = k
		case to:
			j = k
		}
	}
	if from == to {
		return FaceKey{}, EdgeKey{}, newError(op, ErrPrecondition, fmt.Errorf("%w: %s to itself", ErrAdjacentVertices, from))
	}
	if i < 0 {
		return FaceKey{}, EdgeKey{}, newError(op, ErrPrecondition, fmt.Errorf("%w: %s on %s", ErrNotInFace, from, f))
	}
	if j < 0 {
		return FaceKey{}, EdgeKey{}, newError(op, ErrPrecondition, fmt.Errorf("%w: %s on %s", ErrNotInFace, to, f))
	}
	if (i+1)%n == j || (j+1)%n == i {
		return FaceKey{}, EdgeKey{}, newError(op, ErrPrecondition, fmt.Errorf("%w: %s and %s", ErrAdjacentVertices, from, to))
	}
	if _, ok, err := g.FindArc(from, to); err != nil {
		return FaceKey{}, EdgeKey{}, err
	} else if ok {
		return FaceKey{}, EdgeKey{}, newError(op, ErrPrecondition, fmt.Errorf("%w: %s→%s", ErrArcExists, from, to))
	}

	var zero E
	d, dOpp, e := g.addEdge(from, to, zero)
	h := g.addFace(face[F]{arc: dOpp, payload: fc.payload})

	// f: d, a_j … a_{i-1}
	prevI := arcs[(i+n-1)%n]
	prevJ := arcs[(j+n-1)%n]
	if err := g.link(f, prevI, d); err != nil {
		return FaceKey{}, EdgeKey{}, err
	}
	if err := g.link(f, d, arcs[j]); err != nil {
		return FaceKey{}, EdgeKey{}, err
	}
	// h: d', a_i … a_{j-1}
	if err := g.link(h, prevJ, dOpp); err != nil {
		return FaceKey{}, EdgeKey{}, err
	}
	if err := g.link(h, dOpp, arcs[i]); err != nil {
		return FaceKey{}, EdgeKey{}, err
	}
	if err := g.assign(h, dOpp); err != nil {
		return FaceKey{}, EdgeKey{}, err
	}
	fc.arc = d
	if err := g.setFace(f, fc); err != nil {
		return FaceKey{}, EdgeKey{}, err
	}
	return h, e, nil
}
