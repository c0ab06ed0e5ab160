// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// errors.go — error taxonomy for graph construction, lookup and mutation.
//
// Error policy:
//   • Every failure is an *Error carrying the operation name, one Kind
//     sentinel and a cause. errors.Is matches both the Kind and the cause.
//   • Kinds: ErrConstruction, ErrTopology, ErrPrecondition, ErrDegenerateResult.
//   • Causes are package sentinels or arena key errors (ErrStaleKey,
//     ErrForeignKey, ErrNullKey).
//   • A returned error always means the graph is unchanged.

package mesh

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Exactly one is attached to each *Error.
var (
	// ErrConstruction marks malformed or non-manifold ingestion input.
	ErrConstruction = errors.New("mesh: construction error")

	// ErrTopology marks stale or foreign keys and traversals broken by mutation.
	ErrTopology = errors.New("mesh: topology error")

	// ErrPrecondition marks an operator invoked on topology it does not accept.
	ErrPrecondition = errors.New("mesh: precondition error")

	// ErrDegenerateResult marks an operator whose output would collapse.
	ErrDegenerateResult = errors.New("mesh: degenerate result")
)

// Causes.
var (
	// ErrBrokenTopology indicates adjacency does not close as required, or a
	// circulator observed a mutation of its graph.
	ErrBrokenTopology = errors.New("mesh: broken topology")

	// ErrArityTooSmall indicates a polygon or face with fewer than 3 vertices.
	ErrArityTooSmall = errors.New("mesh: arity below 3")

	// ErrRepeatedVertex indicates a vertex occurs twice in one boundary loop.
	ErrRepeatedVertex = errors.New("mesh: repeated vertex in loop")

	// ErrArcClaimed indicates a directed vertex pair already bounds a face.
	ErrArcClaimed = errors.New("mesh: arc already bounds a face")

	// ErrNonManifold indicates a vertex with more than one open fan.
	ErrNonManifold = errors.New("mesh: non-manifold vertex")

	// ErrNoSharedEdge indicates two faces do not share exactly one edge.
	ErrNoSharedEdge = errors.New("mesh: faces do not share exactly one edge")

	// ErrSameFace indicates an operator was given the same face twice.
	ErrSameFace = errors.New("mesh: same face")

	// ErrNotInFace indicates a vertex does not lie on the given face.
	ErrNotInFace = errors.New("mesh: vertex not on face")

	// ErrAdjacentVertices indicates a diagonal between neighbouring vertices.
	ErrAdjacentVertices = errors.New("mesh: vertices are adjacent")

	// ErrArcExists indicates the requested arc is already present.
	ErrArcExists = errors.New("mesh: arc already exists")

	// ErrInvalidDiagonal indicates a triangulation policy answered with an
	// index pair that does not cut the ring.
	ErrInvalidDiagonal = errors.New("mesh: invalid diagonal")

	// ErrGeometryRequired indicates the operation needs a geometry adapter.
	ErrGeometryRequired = errors.New("mesh: geometry required")

	// ErrZeroNormal indicates a face normal could not be normalised.
	ErrZeroNormal = errors.New("mesh: zero-length normal")

	// ErrParameter indicates an interpolation parameter outside (0,1).
	ErrParameter = errors.New("mesh: parameter out of range")

	// ErrNoEar indicates ear clipping found no valid ear.
	ErrNoEar = errors.New("mesh: no ear found")

	// ErrArityMismatch indicates two faces that must pair corner by corner
	// have different arities.
	ErrArityMismatch = errors.New("mesh: face arities differ")

	// ErrSharedVertex indicates two faces that must be disjoint touch.
	ErrSharedVertex = errors.New("mesh: faces share a vertex")

	// ErrNotBoundary indicates an arc that already bounds a face.
	ErrNotBoundary = errors.New("mesh: arc is not on the boundary")
)

// Error is the concrete error returned by graph operations.
type Error struct {
	Op   string // operation name, e.g. "Extrude"
	Kind error  // one of the Err* kinds
	Err  error  // cause
}

// Error implements error.
func (e *Error) Error() string {
	kind := strings.TrimPrefix(e.Kind.Error(), "mesh: ")
	return fmt.Sprintf("mesh: %s: %s: %v", e.Op, kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error { return []error{e.Kind, e.Err} }

// newError builds an *Error; cause may already be formatted with %w.
func newError(op string, kind, cause error) error {
	return &Error{Op: op, Kind: kind, Err: cause}
}

// keyError reports a failed key resolution as a topology error.
func keyError(op string, what string, k fmt.Stringer, err error) error {
	return &Error{Op: op, Kind: ErrTopology, Err: fmt.Errorf("%s %s: %w", what, k, err)}
}

// asMeshError keeps an existing *Error intact and classifies anything else
// under kind.
func asMeshError(op string, kind, err error) error {
	var me *Error
	if errors.As(err, &me) {
		return err
	}
	return newError(op, kind, err)
}
