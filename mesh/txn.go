// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// txn.go — transactions: mutate, commit/rollback and touched-record checks.
//
// Contract:
//   • Every operator body runs inside mutate; a failure leaves the graph as it was.
//   • The version advances only when a commit changed at least one table.

package mesh

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmesh/arena"
)

// mutate runs fn as one transaction.
//
// fn works on the live tables; every write is journalled. When fn fails, or
// when the records it touched do not satisfy the local invariants, all
// writes are undone and the graph is exactly as before. On success the
// deferred removals are applied, the version is bumped if anything was
// written and the key delta is returned.
func (g *Graph[V, E, F]) mutate(op string, fn func() error) (Changes, error) {
	g.vertices.begin()
	g.arcs.begin()
	g.edges.begin()
	g.faces.begin()

	err := fn()
	if err == nil {
		if verr := g.verifyTouched(); verr != nil {
			err = newError(op, ErrTopology, verr)
		}
	} else {
		kind := ErrPrecondition
		if errors.Is(err, ErrBrokenTopology) || errors.Is(err, arena.ErrStaleKey) ||
			errors.Is(err, arena.ErrForeignKey) || errors.Is(err, arena.ErrNullKey) {
			kind = ErrTopology
		}
		err = asMeshError(op, kind, err)
	}
	if err != nil {
		g.vertices.rollback()
		g.arcs.rollback()
		g.edges.rollback()
		g.faces.rollback()
		return Changes{}, err
	}

	changed := g.vertices.dirty() || g.arcs.dirty() || g.edges.dirty() || g.faces.dirty()
	var ch Changes
	var added, removed []arena.Key
	added, removed = g.vertices.commit()
	ch.Vertices = Delta[VertexKey]{Added: typed[VertexKey](added), Removed: typed[VertexKey](removed)}
	added, removed = g.arcs.commit()
	ch.Arcs = Delta[ArcKey]{Added: typed[ArcKey](added), Removed: typed[ArcKey](removed)}
	added, removed = g.edges.commit()
	ch.Edges = Delta[EdgeKey]{Added: typed[EdgeKey](added), Removed: typed[EdgeKey](removed)}
	added, removed = g.faces.commit()
	ch.Faces = Delta[FaceKey]{Added: typed[FaceKey](added), Removed: typed[FaceKey](removed)}
	if changed {
		g.version++
	}
	return ch, nil
}

// verifyTouched checks the local invariants of every record written in the
// open transaction.
func (g *Graph[V, E, F]) verifyTouched() error {
	for _, k := range g.arcs.touched() {
		if err := g.checkArc(ArcKey(k)); err != nil {
			return err
		}
	}
	for _, k := range g.edges.touched() {
		if err := g.checkEdge(EdgeKey(k)); err != nil {
			return err
		}
	}
	for _, k := range g.faces.touched() {
		if _, err := g.checkFace(FaceKey(k)); err != nil {
			return err
		}
	}
	for _, k := range g.vertices.touched() {
		if err := g.checkVertex(VertexKey(k)); err != nil {
			return err
		}
	}
	return nil
}

// checkArc verifies opposite involution, edge membership and face links.
func (g *Graph[V, E, F]) checkArc(k ArcKey) error {
	a, err := g.arc(k)
	if err != nil {
		return fmt.Errorf("%w: arc %s: %v", ErrBrokenTopology, k, err)
	}
	o, err := g.arc(a.opposite)
	if err != nil {
		return fmt.Errorf("%w: opposite of %s: %v", ErrBrokenTopology, k, err)
	}
	if o.opposite != k {
		return fmt.Errorf("%w: opposite(opposite(%s)) = %s", ErrBrokenTopology, k, o.opposite)
	}
	if o.dest == a.dest {
		return fmt.Errorf("%w: arc %s is a loop", ErrBrokenTopology, k)
	}
	if !g.vertices.contains(arena.Key(a.dest)) {
		return fmt.Errorf("%w: arc %s points at missing %s", ErrBrokenTopology, k, a.dest)
	}
	e, err := g.edge(a.edge)
	if err != nil {
		return fmt.Errorf("%w: edge of %s: %v", ErrBrokenTopology, k, err)
	}
	if e.arcs[0] != k && e.arcs[1] != k {
		return fmt.Errorf("%w: edge %s does not hold %s", ErrBrokenTopology, a.edge, k)
	}
	if a.boundary() {
		if !a.next.IsZero() || !a.prev.IsZero() {
			return fmt.Errorf("%w: boundary arc %s is linked", ErrBrokenTopology, k)
		}
		if o.boundary() {
			return fmt.Errorf("%w: edge %s bounds no face", ErrBrokenTopology, a.edge)
		}
		return nil
	}
	if !g.faces.contains(arena.Key(a.face)) {
		return fmt.Errorf("%w: arc %s names missing %s", ErrBrokenTopology, k, a.face)
	}
	n, err := g.arc(a.next)
	if err != nil {
		return fmt.Errorf("%w: next of %s: %v", ErrBrokenTopology, k, err)
	}
	p, err := g.arc(a.prev)
	if err != nil {
		return fmt.Errorf("%w: prev of %s: %v", ErrBrokenTopology, k, err)
	}
	if n.prev != k || p.next != k {
		return fmt.Errorf("%w: next/prev of %s are not inverse", ErrBrokenTopology, k)
	}
	if n.face != a.face || p.face != a.face {
		return fmt.Errorf("%w: neighbours of %s leave %s", ErrBrokenTopology, k, a.face)
	}
	no, err := g.origin(a.next)
	if err != nil || no != a.dest {
		return fmt.Errorf("%w: next of %s does not start at %s", ErrBrokenTopology, k, a.dest)
	}
	return nil
}

// checkEdge verifies that both arcs of an edge are mutual opposites.
func (g *Graph[V, E, F]) checkEdge(k EdgeKey) error {
	e, err := g.edge(k)
	if err != nil {
		return fmt.Errorf("%w: edge %s: %v", ErrBrokenTopology, k, err)
	}
	a, err := g.arc(e.arcs[0])
	if err != nil {
		return fmt.Errorf("%w: edge %s: %v", ErrBrokenTopology, k, err)
	}
	b, err := g.arc(e.arcs[1])
	if err != nil {
		return fmt.Errorf("%w: edge %s: %v", ErrBrokenTopology, k, err)
	}
	if a.opposite != e.arcs[1] || b.opposite != e.arcs[0] || a.edge != k || b.edge != k {
		return fmt.Errorf("%w: edge %s arcs are not paired", ErrBrokenTopology, k)
	}
	return nil
}

// checkFace walks a face loop and returns its arity.
func (g *Graph[V, E, F]) checkFace(k FaceKey) (int, error) {
	f, err := g.face(k)
	if err != nil {
		return 0, fmt.Errorf("%w: face %s: %v", ErrBrokenTopology, k, err)
	}
	limit := g.arcs.len()
	cur := f.arc
	n := 0
	for {
		a, err := g.arc(cur)
		if err != nil {
			return 0, fmt.Errorf("%w: face %s: %v", ErrBrokenTopology, k, err)
		}
		if a.face != k {
			return 0, fmt.Errorf("%w: arc %s in loop of %s names %s", ErrBrokenTopology, cur, k, a.face)
		}
		n++
		cur = a.next
		if cur == f.arc {
			break
		}
		if n > limit {
			return 0, fmt.Errorf("%w: loop of %s does not close", ErrBrokenTopology, k)
		}
	}
	if n < 3 {
		return 0, fmt.Errorf("%w: face %s has arity %d", ErrBrokenTopology, k, n)
	}
	return n, nil
}

// checkVertex verifies that the representative arc leaves the vertex.
func (g *Graph[V, E, F]) checkVertex(k VertexKey) error {
	v, err := g.vertex(k)
	if err != nil {
		return fmt.Errorf("%w: vertex %s: %v", ErrBrokenTopology, k, err)
	}
	if v.arc.IsZero() {
		return nil
	}
	o, err := g.origin(v.arc)
	if err != nil || o != k {
		return fmt.Errorf("%w: arc %s of %s does not leave it", ErrBrokenTopology, v.arc, k)
	}
	return nil
}
