// SPDX-License-Identifier: MIT
// Package: lvmesh/primitive
//
// variants_platonic.go — canonical datasets for the five Platonic solids.
//
// Design:
//   • Single source of truth for vertex positions and CCW face loops.
//   • Tetrahedron, Cube, Octahedron and Icosahedron are literal tables.
//   • Dodecahedron is derived at init() as the dual of the icosahedron:
//     one vertex per icosahedron face (its normalised centroid), one
//     pentagon per icosahedron vertex.
//   • All positions are normalised to unit circumradius at init().
//
// Determinism:
//   • Face order and corner order never change; they are part of the
//     public contract (vertex IDs are positions in these tables).

package primitive

import "github.com/ungerik/go3d/float64/vec3"

// Solid enumerates the five Platonic solids.
type Solid int

// Enum values (stable ordering).
const (
	Tetrahedron  Solid = iota // V=4,  E=6,  F=4 triangles
	Cube                      // V=8,  E=12, F=6 quads
	Octahedron                // V=6,  E=12, F=8 triangles
	Dodecahedron              // V=20, E=30, F=12 pentagons
	Icosahedron               // V=12, E=30, F=20 triangles
)

// String provides a readable identifier for logs and errors.
func (s Solid) String() string {
	switch s {
	case Tetrahedron:
		return "tetrahedron"
	case Cube:
		return "cube"
	case Octahedron:
		return "octahedron"
	case Dodecahedron:
		return "dodecahedron"
	case Icosahedron:
		return "icosahedron"
	default:
		return "unknown"
	}
}

// ParseSolid maps a lower-case name back to its Solid.
func ParseSolid(name string) (Solid, bool) {
	for s := Tetrahedron; s <= Icosahedron; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// solidData holds one canonical table.
type solidData struct {
	positions []vec3.T
	faces     [][]int
}

// phi is the golden ratio used by the icosahedron table.
const phi = 1.6180339887498949

// solids maps each Solid to its dataset; filled in init().
var solids = map[Solid]solidData{
	Tetrahedron: {
		positions: []vec3.T{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}},
		faces:     [][]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	},
	Cube: {
		positions: []vec3.T{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1}, // bottom ring
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, // top ring
		},
		faces: [][]int{
			{0, 3, 2, 1}, {4, 5, 6, 7}, // -z, +z
			{0, 1, 5, 4}, {1, 2, 6, 5}, // -y, +x
			{2, 3, 7, 6}, {3, 0, 4, 7}, // +y, -x
		},
	},
	Octahedron: {
		positions: []vec3.T{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}},
		faces: [][]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4}, // upper cap
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5}, // lower cap
		},
	},
	Icosahedron: {
		positions: []vec3.T{
			{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
			{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
			{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
		},
		faces: [][]int{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11}, // around vertex 0
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8}, // upper belt
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9}, // around vertex 3
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1}, // lower belt
		},
	},
}

func init() {
	solids[Dodecahedron] = dualOf(solids[Icosahedron])
	for name, d := range solids {
		for i := range d.positions {
			d.positions[i] = d.positions[i].Normalized() // unit circumradius
		}
		solids[name] = d
	}
}

// dualOf derives the dual of a closed triangle mesh: face centroids become
// vertices and the faces around each vertex, in rotation order, become a
// face. For CCW input faces (v,a,b) the neighbour after (v,a,b) around v
// is the face whose corner after v is b, which keeps the dual CCW.
func dualOf(src solidData) solidData {
	out := solidData{positions: make([]vec3.T, len(src.faces))}
	for fi, f := range src.faces {
		var sum vec3.T
		for _, idx := range f {
			sum.Add(&src.positions[idx]) // accumulate corners
		}
		out.positions[fi] = sum.Scaled(1 / float64(len(f)))
	}

	type step struct{ face, next int }
	for v := range src.positions {
		rot := make(map[int]step, 5) // corner after v → (face, corner after that)
		start := -1
		for fi, f := range src.faces {
			for k, idx := range f {
				if idx != v {
					continue
				}
				a, b := f[(k+1)%3], f[(k+2)%3]
				rot[a] = step{face: fi, next: b}
				if start < 0 {
					start = a // first face met fixes the ring start
				}
			}
		}
		ring := make([]int, 0, len(rot))
		for a := start; ; {
			st := rot[a]
			ring = append(ring, st.face)
			a = st.next
			if a == start {
				break
			}
		}
		out.faces = append(out.faces, ring)
	}
	return out
}
