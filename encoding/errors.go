package encoding

import "errors"

var (
	// ErrFaceArity indicates a face with fewer than three corners.
	ErrFaceArity = errors.New("encoding: face has fewer than 3 corners")

	// ErrFaceIndex indicates a face index outside the position list.
	ErrFaceIndex = errors.New("encoding: face index out of range")

	// ErrNilModel is returned when a nil *Model is passed.
	ErrNilModel = errors.New("encoding: model is nil")

	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("encoding: graph is nil")
)
