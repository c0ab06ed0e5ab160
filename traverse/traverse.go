package traverse

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmesh/mesh"
)

// queueItem pairs a face with its depth.
type queueItem struct {
	face  mesh.FaceKey
	depth int
}

// walker encapsulates mutable traversal state.
type walker[V, E, F any] struct {
	graph   *mesh.Graph[V, E, F]
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[mesh.FaceKey]bool
	res     *Result
}

// Faces runs a breadth-first traversal from start across shared edges.
// Boundary edges lead nowhere. Returns ErrGraphNil, ErrStartFaceNotFound,
// ErrOptionViolation, ErrNeighbors, the context error, or a wrapped hook
// error.
func Faces[V, E, F any](g *mesh.Graph[V, E, F], start mesh.FaceKey, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.ContainsFace(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartFaceNotFound, start)
	}

	w := newWalker(g, o)
	w.enqueue(start, 0, mesh.FaceKey{})
	return w.res, w.loop()
}

// Components partitions the faces of g into edge-connected groups, in face
// key order. FilterNeighbor splits components along refused edges; MaxDepth
// and OnVisit are ignored.
func Components[V, E, F any](g *mesh.Graph[V, E, F], opts ...Option) ([][]mesh.FaceKey, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	o.MaxDepth = 0
	o.OnVisit = func(mesh.FaceKey, int) error { return nil }

	w := newWalker(g, o)
	var out [][]mesh.FaceKey
	for _, f := range g.Faces() {
		if w.visited[f] {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(f, 0, mesh.FaceKey{})
		if err := w.loop(); err != nil {
			return nil, err
		}
		out = append(out, slices.Clip(w.res.Order[from:]))
	}
	return out, nil
}

func newWalker[V, E, F any](g *mesh.Graph[V, E, F], o Options) *walker[V, E, F] {
	n := g.FaceCount()
	return &walker[V, E, F]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[mesh.FaceKey]bool, n),
		res: &Result{
			Order:  make([]mesh.FaceKey, 0, n),
			Depth:  make(map[mesh.FaceKey]int, n),
			Parent: make(map[mesh.FaceKey]mesh.FaceKey, n),
		},
	}
}

// enqueue marks f visited at depth d and records its parent.
func (w *walker[V, E, F]) enqueue(f mesh.FaceKey, d int, parent mesh.FaceKey) {
	w.visited[f] = true
	w.res.Depth[f] = d
	if !parent.IsZero() {
		w.res.Parent[f] = parent
	}
	w.queue = append(w.queue, queueItem{face: f, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V, E, F]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.face)
		if err := w.opts.OnVisit(item.face, item.depth); err != nil {
			return fmt.Errorf("traverse: OnVisit error at %s: %w", item.face, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors crosses every interior edge of item.face in loop order.
func (w *walker[V, E, F]) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	c := w.graph.FaceArcs(item.face)
	for c.Next() {
		a, err := w.graph.Arc(c.Key())
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrNeighbors, item.face, err)
		}
		o, err := w.graph.Arc(a.Opposite)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrNeighbors, item.face, err)
		}
		if o.IsBoundary() || w.visited[o.Face] {
			continue
		}
		if !w.opts.FilterNeighbor(item.face, o.Face, a.Edge) {
			continue
		}
		w.enqueue(o.Face, next, item.face)
	}
	if err := c.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNeighbors, item.face, err)
	}
	return nil
}
