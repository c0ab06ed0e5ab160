// SPDX-License-Identifier: MIT
// Package: lvmesh/primitive
//
// errors.go — sentinel errors for the primitive package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Generators wrap them with their method tag: "UVSphere: segments=2: %w".
//   • Generators never panic; option constructors and MustPlatonic do.

package primitive

import "errors"

// ErrTooFewSegments indicates a resolution parameter (segments, rings,
// columns, rows) below the generator's minimum.
var ErrTooFewSegments = errors.New("primitive: too few segments")

// ErrUnknownSolid indicates a Solid value outside the defined enum.
var ErrUnknownSolid = errors.New("primitive: unknown solid")
