package shortest

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmesh/mesh"
)

// From computes shortest distances from src to every vertex reachable along
// edges of g. Boundary edges are walked like any other; isolated vertices
// are only reached when they are the source.
func From[V, E, F any](g *mesh.Graph[V, E, F], src mesh.VertexKey, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.ContainsVertex(src) {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, src)
	}

	n := g.VertexCount()
	r := &runner[V, E, F]{
		g:    g,
		cfg:  cfg,
		done: make(map[mesh.VertexKey]bool, n),
		res: &Result{
			Source: src,
			Dist:   make(map[mesh.VertexKey]float64, n),
			Prev:   make(map[mesh.VertexKey]mesh.VertexKey, n),
			Via:    make(map[mesh.VertexKey]mesh.EdgeKey, n),
		},
	}
	r.res.Dist[src] = 0
	heap.Push(&r.pq, &item{v: src, dist: 0})
	if err := r.process(); err != nil {
		return nil, err
	}
	return r.res, nil
}

// runner holds the mutable state of one search.
type runner[V, E, F any] struct {
	g    *mesh.Graph[V, E, F]
	cfg  Options
	done map[mesh.VertexKey]bool
	pq   queue
	res  *Result
}

// process pops vertices in cost order until the heap is empty or the
// cheapest entry lies beyond MaxDistance.
func (r *runner[V, E, F]) process() error {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*item)
		if r.done[it.v] {
			continue
		}
		if it.dist > r.cfg.MaxDistance {
			break
		}
		r.done[it.v] = true
		if err := r.relax(it.v); err != nil {
			return err
		}
	}
	return nil
}

// relax walks every outgoing arc of u.
func (r *runner[V, E, F]) relax(u mesh.VertexKey) error {
	c := r.g.VertexOutgoing(u)
	for c.Next() {
		a, err := r.g.Arc(c.Key())
		if err != nil {
			return fmt.Errorf("shortest: arc around %s: %w", u, err)
		}
		v := a.Destination
		if r.done[v] {
			continue
		}
		w, err := r.cfg.Weight(a.Edge, u, v)
		if err != nil {
			return fmt.Errorf("shortest: weight of %s: %w", a.Edge, err)
		}
		if !(w >= 0) {
			return fmt.Errorf("%w: %s %s→%s weight=%v", ErrNegativeWeight, a.Edge, u, v, w)
		}
		if math.IsInf(w, 1) {
			continue
		}
		nd := r.res.Dist[u] + w
		if nd > r.cfg.MaxDistance {
			continue
		}
		if old, seen := r.res.Dist[v]; seen && nd >= old {
			continue
		}
		r.res.Dist[v] = nd
		r.res.Prev[v] = u
		r.res.Via[v] = a.Edge
		heap.Push(&r.pq, &item{v: v, dist: nd})
	}
	if err := c.Err(); err != nil {
		return fmt.Errorf("shortest: around %s: %w", u, err)
	}
	return nil
}

// item is a heap entry; stale entries are skipped when popped.
type item struct {
	v    mesh.VertexKey
	dist float64
}

// queue is a min-heap of items ordered by dist.
type queue []*item

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)        { *q = append(*q, x.(*item)) }
func (q *queue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
