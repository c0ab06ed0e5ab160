// Package shortest defines options, weights and errors for single-source
// shortest paths along the edges of a mesh.Graph.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E), the heap uses lazy decrease-key.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist.
//	– ErrNegativeWeight  if a weight function returns a negative or NaN cost.
//	– ErrNoPath          from PathTo when the target was not reached.
package shortest

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmesh/mesh"
)

var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("shortest: graph is nil")

	// ErrVertexNotFound indicates that the source vertex is absent.
	ErrVertexNotFound = errors.New("shortest: source vertex not found")

	// ErrNegativeWeight indicates a negative or NaN edge cost.
	ErrNegativeWeight = errors.New("shortest: negative edge weight")

	// ErrNoPath indicates that the target was not reached.
	ErrNoPath = errors.New("shortest: no path")
)

// WeightFunc returns the cost of walking edge e from one endpoint to the
// other. +Inf makes the edge impassable.
type WeightFunc func(e mesh.EdgeKey, from, to mesh.VertexKey) (float64, error)

// Hops charges 1 per edge.
func Hops(mesh.EdgeKey, mesh.VertexKey, mesh.VertexKey) (float64, error) { return 1, nil }

// EdgeLength charges the Euclidean length of every edge, read through geo.
func EdgeLength[V, E, F, P any](g *mesh.Graph[V, E, F], geo mesh.Geometry[V, P]) WeightFunc {
	return func(_ mesh.EdgeKey, from, to mesh.VertexKey) (float64, error) {
		a, err := g.Vertex(from)
		if err != nil {
			return 0, err
		}
		b, err := g.Vertex(to)
		if err != nil {
			return 0, err
		}
		d := geo.Sub(geo.Position(b), geo.Position(a))
		return math.Sqrt(geo.Dot(d, d)), nil
	}
}

// Option configures a search.
type Option func(*Options)

// Options holds the parameters of a search.
type Options struct {
	// Weight prices each edge step. Default: Hops.
	Weight WeightFunc

	// MaxDistance stops exploring beyond this cost. Default: +Inf.
	MaxDistance float64
}

// DefaultOptions returns hop-count weights without a distance cap.
func DefaultOptions() Options {
	return Options{Weight: Hops, MaxDistance: math.Inf(1)}
}

// WithWeight sets the edge cost function. Panics on nil.
func WithWeight(fn WeightFunc) Option {
	if fn == nil {
		panic("shortest: WithWeight(nil)")
	}
	return func(o *Options) { o.Weight = fn }
}

// WithMaxDistance caps exploration at d. Panics if d is negative or NaN.
func WithMaxDistance(d float64) Option {
	if !(d >= 0) {
		panic(fmt.Sprintf("shortest: WithMaxDistance(%v): must be non-negative", d))
	}
	return func(o *Options) { o.MaxDistance = d }
}

// Result holds distances and the shortest-path tree of one search.
type Result struct {
	Source mesh.VertexKey
	// Dist holds the cost of every reached vertex.
	Dist map[mesh.VertexKey]float64
	// Prev and Via give, for every reached vertex but the source, the
	// previous vertex and the edge walked from it.
	Prev map[mesh.VertexKey]mesh.VertexKey
	Via  map[mesh.VertexKey]mesh.EdgeKey
}

// Reached reports whether v was reached.
func (r *Result) Reached(v mesh.VertexKey) bool {
	_, ok := r.Dist[v]
	return ok
}

// PathTo returns the vertices and edges from the source to dst.
func (r *Result) PathTo(dst mesh.VertexKey) ([]mesh.VertexKey, []mesh.EdgeKey, error) {
	if !r.Reached(dst) {
		return nil, nil, fmt.Errorf("%w: %s → %s", ErrNoPath, r.Source, dst)
	}
	var (
		verts []mesh.VertexKey
		edges []mesh.EdgeKey
	)
	for cur := dst; ; {
		verts = append(verts, cur)
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		edges = append(edges, r.Via[cur])
		cur = prev
	}
	for i, j := 0, len(verts)-1; i < j; i, j = i+1, j-1 {
		verts[i], verts[j] = verts[j], verts[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return verts, edges, nil
}
