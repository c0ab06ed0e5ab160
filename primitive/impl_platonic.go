// SPDX-License-Identifier: MIT
// Package: lvmesh/primitive
//
// impl_platonic.go — Platonic(solid) and MustPlatonic(solid) generators.
//
// Contract:
//   • Emits the canonical faces of variants_platonic.go in table order.
//   • Vertex ID i (plus WithIDOffset) is the i-th table position.
//   • Positions lie on a sphere of radius WithScale around WithCenter.
//   • Unknown solid → ErrUnknownSolid; only MustPlatonic panics.
//
// Complexity: O(F) per pass; the stream is restartable.

package primitive

import (
	"fmt"
	"iter"
)

const methodPlatonic = "Platonic" // context tag for error wrapping

// Platonic returns a restartable polygon stream for the given solid.
func Platonic(s Solid, opts ...Option) (iter.Seq[Polygon], error) {
	data, ok := solids[s]
	if !ok {
		return nil, fmt.Errorf("%s: %d: %w", methodPlatonic, int(s), ErrUnknownSolid)
	}
	cfg := newConfig(opts...)
	return cfg.emit(data.positions, data.faces), nil
}

// MustPlatonic is Platonic for solids known at compile time. It panics on
// an unknown solid.
func MustPlatonic(s Solid, opts ...Option) iter.Seq[Polygon] {
	seq, err := Platonic(s, opts...)
	if err != nil {
		panic(err)
	}
	return seq
}
