package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Sentinel errors for traversal.
var (
	// ErrStartFaceNotFound is returned when the start face is absent.
	ErrStartFaceNotFound = errors.New("traverse: start face not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrNeighbors is returned when circulating a face fails.
	ErrNeighbors = errors.New("traverse: neighbor iteration error")
)

// Option configures a traversal via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when the traversal starts.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a face with its depth from the
	// start. Returning an error aborts the traversal.
	OnVisit func(f mesh.FaceKey, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// Zero disables the limit.
	MaxDepth int

	// FilterNeighbor can refuse to cross an edge by returning false.
	// Called for each step curr→next across the shared edge.
	FilterNeighbor func(curr, next mesh.FaceKey, shared mesh.EdgeKey) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(mesh.FaceKey, int) error { return nil },
		FilterNeighbor: func(_, _ mesh.FaceKey, _ mesh.EdgeKey) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visited face; returning an
// error from it stops the traversal.
func WithOnVisit(fn func(f mesh.FaceKey, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the traversal at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor refuses steps for which fn returns false, e.g. to stop
// at creases marked in edge payloads.
func WithFilterNeighbor(fn func(curr, next mesh.FaceKey, shared mesh.EdgeKey) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: faces in visit sequence.
//   - Depth: steps from the start face.
//   - Parent: predecessor of each face in the traversal tree.
type Result struct {
	Order  []mesh.FaceKey
	Depth  map[mesh.FaceKey]int
	Parent map[mesh.FaceKey]mesh.FaceKey
}

// PathTo reconstructs the chain of faces from the start face to dest.
func (r *Result) PathTo(dest mesh.FaceKey) ([]mesh.FaceKey, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("traverse: no path to %s", dest)
	}
	path := []mesh.FaceKey{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
