// SPDX-License-Identifier: MIT
// Package: lvmesh/buffer
//
// errors.go — sentinel errors for buffer export and import.
//
// Every message is prefixed with "buffer: ". Functions wrap these with their
// method tag ("FromGraph: face f3:0 has 5 corners: %w"); callers match with
// errors.Is. Errors from the mesh package pass through unchanged.

package buffer

import "errors"

var (
	// ErrBadArity indicates a requested buffer arity below 3.
	ErrBadArity = errors.New("buffer: arity must be at least 3")

	// ErrArityMismatch indicates a face whose arity differs from the buffer
	// arity when the export cannot decompose it (arity > 3).
	ErrArityMismatch = errors.New("buffer: face arity does not match buffer arity")

	// ErrIndexOverflow indicates more vertices than the index type can address.
	ErrIndexOverflow = errors.New("buffer: vertex index overflows index type")

	// ErrMalformed indicates an index buffer whose length is not a multiple
	// of its arity, or an index outside the vertex buffer.
	ErrMalformed = errors.New("buffer: malformed index buffer")
)
