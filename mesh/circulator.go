// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// circulator.go — lazy, restartable traversal around faces and vertices.
//
// Contract:
//   • A Circulator is read-only and bound to the graph version current at
//     creation (or at the last Reset). Any committed mutation after that
//     makes the next step fail with ErrBrokenTopology.
//   • Face circulation follows next from the representative arc; it yields
//     exactly arity keys.
//   • Vertex circulation rotates with next(opposite(a)). When it meets a
//     boundary it resumes backwards from the representative with
//     opposite(prev(a)), so partial fans terminate with every arc listed once.
//   • Every walk is bounded by the arc count; a loop that does not close is
//     reported, never spun on.
//
// Usage:
//
//	c := g.FaceVertices(f)
//	for c.Next() {
//		use(c.Key())
//	}
//	if err := c.Err(); err != nil { ... }

package mesh

import (
	"errors"
	"fmt"
	"iter"
)

// stepFunc yields the next key, false when exhausted, or an error.
type stepFunc[K any] func() (K, bool, error)

// Circulator is a scanner-style cursor over keys adjacent to an anchor.
type Circulator[K comparable] struct {
	op      string
	open    func() (stepFunc[K], error)
	step    stepFunc[K]
	version *uint64
	seen    uint64
	key     K
	err     error
	done    bool
}

func newCirculator[K comparable](op string, version *uint64, open func() (stepFunc[K], error)) *Circulator[K] {
	c := &Circulator[K]{op: op, open: open, version: version}
	_ = c.Reset()
	return c
}

// Reset rewinds the circulator to its anchor and binds it to the current
// graph version. It fails if the anchor no longer exists.
func (c *Circulator[K]) Reset() error {
	var zero K
	c.key = zero
	c.done = false
	c.seen = *c.version
	c.step, c.err = c.open()
	return c.err
}

// Next advances to the next key. It returns false when the sequence is
// exhausted or an error occurred; check Err afterwards.
func (c *Circulator[K]) Next() bool {
	if c.err != nil || c.done {
		return false
	}
	if *c.version != c.seen {
		c.err = newError(c.op, ErrTopology, fmt.Errorf("%w: graph mutated during traversal", ErrBrokenTopology))
		return false
	}
	k, ok, err := c.step()
	if err != nil {
		if !errors.Is(err, ErrBrokenTopology) {
			err = broken("%v", err)
		}
		c.err = newError(c.op, ErrTopology, err)
		return false
	}
	if !ok {
		var zero K
		c.key = zero
		c.done = true
		return false
	}
	c.key = k
	return true
}

// Key returns the key produced by the last successful Next.
func (c *Circulator[K]) Key() K { return c.key }

// Err returns the first error met, if any.
func (c *Circulator[K]) Err() error { return c.err }

// Collect drains the remaining keys into a slice.
func (c *Circulator[K]) Collect() ([]K, error) {
	var out []K
	for c.Next() {
		out = append(out, c.key)
	}
	return out, c.err
}

// All adapts the remaining keys to a range-over-func sequence. Check Err
// after the loop.
func (c *Circulator[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for c.Next() {
			if !yield(c.key) {
				return
			}
		}
	}
}

// broken wraps a failure met mid-walk.
func broken(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrBrokenTopology}, args...)...)
}

// mapStep filters and maps a step function.
func mapStep[A, B any](step stepFunc[A], fn func(A) (B, bool, error)) stepFunc[B] {
	return func() (B, bool, error) {
		var zero B
		for {
			a, ok, err := step()
			if err != nil || !ok {
				return zero, false, err
			}
			b, keep, err := fn(a)
			if err != nil {
				return zero, false, err
			}
			if keep {
				return b, true, nil
			}
		}
	}
}

// faceWalk opens a walk over the arcs of f.
func (g *Graph[V, E, F]) faceWalk(op string, f FaceKey) (stepFunc[ArcKey], error) {
	fc, err := g.face(f)
	if err != nil {
		return nil, keyError(op, "face", f, err)
	}
	rep := fc.arc
	cur := rep
	started := false
	steps, limit := 0, g.arcs.len()
	return func() (ArcKey, bool, error) {
		if started && cur == rep {
			return ArcKey{}, false, nil
		}
		if steps > limit {
			return ArcKey{}, false, broken("loop of %s does not close", f)
		}
		a, err := g.arc(cur)
		if err != nil {
			return ArcKey{}, false, broken("arc %s of %s: %v", cur, f, err)
		}
		if a.face != f {
			return ArcKey{}, false, broken("arc %s left %s", cur, f)
		}
		out := cur
		cur = a.next
		started = true
		steps++
		return out, true, nil
	}, nil
}

// Rotation phases of a vertex walk.
const (
	rotStart = iota
	rotForward
	rotBackward
	rotDone
)

// vertexWalk opens a walk over the outgoing arcs of v.
func (g *Graph[V, E, F]) vertexWalk(op string, v VertexKey) (stepFunc[ArcKey], error) {
	vx, err := g.vertex(v)
	if err != nil {
		return nil, keyError(op, "vertex", v, err)
	}
	rep := vx.arc
	phase := rotStart
	if rep.IsZero() {
		phase = rotDone
	}
	cur := rep
	steps, limit := 0, g.arcs.len()
	return func() (ArcKey, bool, error) {
		for {
			if steps > limit {
				return ArcKey{}, false, broken("fan of %s does not close", v)
			}
			switch phase {
			case rotStart:
				phase = rotForward
				steps++
				return rep, true, nil
			case rotForward:
				a, err := g.arc(cur)
				if err != nil {
					return ArcKey{}, false, broken("arc %s at %s: %v", cur, v, err)
				}
				o, err := g.arc(a.opposite)
				if err != nil {
					return ArcKey{}, false, broken("arc %s at %s: %v", a.opposite, v, err)
				}
				if o.boundary() {
					phase, cur = rotBackward, rep
					continue
				}
				if o.next == rep {
					phase = rotDone
					continue
				}
				cur = o.next
				steps++
				return cur, true, nil
			case rotBackward:
				a, err := g.arc(cur)
				if err != nil {
					return ArcKey{}, false, broken("arc %s at %s: %v", cur, v, err)
				}
				if a.boundary() {
					phase = rotDone
					continue
				}
				p, err := g.arc(a.prev)
				if err != nil {
					return ArcKey{}, false, broken("arc %s at %s: %v", a.prev, v, err)
				}
				if p.opposite == rep {
					phase = rotDone
					continue
				}
				cur = p.opposite
				steps++
				return cur, true, nil
			default:
				return ArcKey{}, false, nil
			}
		}
	}, nil
}

// FaceArcs circulates the arcs bounding f, starting at its representative.
func (g *Graph[V, E, F]) FaceArcs(f FaceKey) *Circulator[ArcKey] {
	return newCirculator(opFaceArcs, &g.version, func() (stepFunc[ArcKey], error) {
		return g.faceWalk(opFaceArcs, f)
	})
}

// FaceVertices circulates the vertices of f in winding order.
func (g *Graph[V, E, F]) FaceVertices(f FaceKey) *Circulator[VertexKey] {
	return newCirculator(opFaceVertices, &g.version, func() (stepFunc[VertexKey], error) {
		walk, err := g.faceWalk(opFaceVertices, f)
		if err != nil {
			return nil, err
		}
		return mapStep(walk, func(a ArcKey) (VertexKey, bool, error) {
			o, err := g.origin(a)
			return o, err == nil, err
		}), nil
	})
}

// FaceNeighbors circulates the faces across each edge of f. Boundary edges
// contribute nothing.
func (g *Graph[V, E, F]) FaceNeighbors(f FaceKey) *Circulator[FaceKey] {
	return newCirculator(opFaceNeighbors, &g.version, func() (stepFunc[FaceKey], error) {
		walk, err := g.faceWalk(opFaceNeighbors, f)
		if err != nil {
			return nil, err
		}
		return mapStep(walk, func(k ArcKey) (FaceKey, bool, error) {
			a, err := g.arc(k)
			if err != nil {
				return FaceKey{}, false, err
			}
			o, err := g.arc(a.opposite)
			if err != nil {
				return FaceKey{}, false, err
			}
			return o.face, !o.boundary(), nil
		}), nil
	})
}

// VertexOutgoing circulates the arcs leaving v.
func (g *Graph[V, E, F]) VertexOutgoing(v VertexKey) *Circulator[ArcKey] {
	return newCirculator(opVertexOutgoing, &g.version, func() (stepFunc[ArcKey], error) {
		return g.vertexWalk(opVertexOutgoing, v)
	})
}

// VertexIncoming circulates the arcs arriving at v.
func (g *Graph[V, E, F]) VertexIncoming(v VertexKey) *Circulator[ArcKey] {
	return newCirculator(opVertexIncoming, &g.version, func() (stepFunc[ArcKey], error) {
		walk, err := g.vertexWalk(opVertexIncoming, v)
		if err != nil {
			return nil, err
		}
		return mapStep(walk, func(k ArcKey) (ArcKey, bool, error) {
			a, err := g.arc(k)
			return a.opposite, err == nil, err
		}), nil
	})
}

// VertexNeighbors circulates the vertices joined to v by an edge.
func (g *Graph[V, E, F]) VertexNeighbors(v VertexKey) *Circulator[VertexKey] {
	return newCirculator(opVertexNeighbors, &g.version, func() (stepFunc[VertexKey], error) {
		walk, err := g.vertexWalk(opVertexNeighbors, v)
		if err != nil {
			return nil, err
		}
		return mapStep(walk, func(k ArcKey) (VertexKey, bool, error) {
			a, err := g.arc(k)
			return a.dest, err == nil, err
		}), nil
	})
}

// VertexFaces circulates the faces incident to v.
func (g *Graph[V, E, F]) VertexFaces(v VertexKey) *Circulator[FaceKey] {
	return newCirculator(opVertexFaces, &g.version, func() (stepFunc[FaceKey], error) {
		walk, err := g.vertexWalk(opVertexFaces, v)
		if err != nil {
			return nil, err
		}
		return mapStep(walk, func(k ArcKey) (FaceKey, bool, error) {
			a, err := g.arc(k)
			if err != nil {
				return FaceKey{}, false, err
			}
			return a.face, !a.boundary(), nil
		}), nil
	})
}

// Operation names used in errors.
const (
	opFaceArcs        = "FaceArcs"
	opFaceVertices    = "FaceVertices"
	opFaceNeighbors   = "FaceNeighbors"
	opVertexOutgoing  = "VertexOutgoing"
	opVertexIncoming  = "VertexIncoming"
	opVertexNeighbors = "VertexNeighbors"
	opVertexFaces     = "VertexFaces"
)
