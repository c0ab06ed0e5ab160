// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// ops.go — low-level wiring helpers shared by the operators.
//
// Contract:
//   • Helpers run inside mutate and report broken links as ErrBrokenTopology.

package mesh

import "github.com/katalvlaran/lvmesh/arena"

func arenaKey[K anyKey](k K) arena.Key { return arena.Key(k) }

// link makes b follow a inside face f.
func (g *Graph[V, E, F]) link(f FaceKey, a, b ArcKey) error {
	ra, err := g.arc(a)
	if err != nil {
		return broken("link %s: %v", a, err)
	}
	ra.next = b
	ra.face = f
	if err := g.setArc(a, ra); err != nil {
		return broken("link %s: %v", a, err)
	}
	rb, err := g.arc(b)
	if err != nil {
		return broken("link %s: %v", b, err)
	}
	rb.prev = a
	rb.face = f
	if err := g.setArc(b, rb); err != nil {
		return broken("link %s: %v", b, err)
	}
	return nil
}

// assign moves every arc of a loop starting at start into face f.
func (g *Graph[V, E, F]) assign(f FaceKey, start ArcKey) error {
	cur := start
	for steps := 0; steps <= g.arcs.len(); steps++ {
		a, err := g.arc(cur)
		if err != nil {
			return broken("assign %s: %v", cur, err)
		}
		a.face = f
		if err := g.setArc(cur, a); err != nil {
			return broken("assign %s: %v", cur, err)
		}
		cur = a.next
		if cur == start {
			return nil
		}
	}
	return broken("loop from %s does not close", start)
}

// indexOf returns the position of v in ring, or -1.
func indexOf[V any](ring []RingVertex[V], v VertexKey) int {
	for i, rv := range ring {
		if rv.Key == v {
			return i
		}
	}
	return -1
}
