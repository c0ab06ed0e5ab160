// SPDX-License-Identifier: MIT
// Package: lvmesh/primitive
//
// impl_grid.go — Grid(cols, rows) generator: a flat open sheet of quads.
//
// Layout:
//   • Vertex (i, j) sits at (i, j, 0)·scale + center, ID = j·(cols+1) + i.
//   • Quad (i, j) is (i,j) → (i+1,j) → (i+1,j+1) → (i,j+1): CCW seen from +Z.
//   • Emission order is row-major (j outer, i inner).

package primitive

import (
	"fmt"
	"iter"

	"github.com/ungerik/go3d/float64/vec3"
)

const methodGrid = "Grid"

// Grid returns a restartable polygon stream of cols×rows unit quads.
func Grid(cols, rows int, opts ...Option) (iter.Seq[Polygon], error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodGrid, cols, rows, ErrTooFewSegments)
	}
	cfg := newConfig(opts...)

	stride := cols + 1 // vertices per row
	positions := make([]vec3.T, 0, stride*(rows+1))
	for j := 0; j <= rows; j++ {
		for i := 0; i <= cols; i++ {
			positions = append(positions, vec3.T{float64(i), float64(j), 0})
		}
	}
	faces := make([][]int, 0, cols*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			v := j*stride + i
			faces = append(faces, []int{v, v + 1, v + 1 + stride, v + stride})
		}
	}
	return cfg.emit(positions, faces), nil
}
