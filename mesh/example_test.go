package mesh_test

import (
	"fmt"
	"slices"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/mesh"
)

// Extrude a unit square into an open box.
func Example() {
	square := mesh.Polygon[string, vec3.T]{
		{ID: "a", Payload: vec3.T{0, 0, 0}},
		{ID: "b", Payload: vec3.T{1, 0, 0}},
		{ID: "c", Payload: vec3.T{1, 1, 0}},
		{ID: "d", Payload: vec3.T{0, 1, 0}},
	}
	g, err := mesh.FromPolygons[struct{}, struct{}](
		slices.Values([]mesh.Polygon[string, vec3.T]{square}),
		mesh.WithGeometry(geometry.Points()),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := g.Extrude(g.Faces()[0], 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	n, _ := g.Arity(res.Cap)
	fmt.Println("vertices:", g.VertexCount(), "edges:", g.EdgeCount(), "faces:", g.FaceCount())
	fmt.Println("cap arity:", n, "sides:", len(res.Sides))
	// Output:
	// vertices: 8 edges: 12 faces: 5
	// cap arity: 4 sides: 4
}

func ExampleGraph_Triangulate() {
	hexagon := make(mesh.Polygon[int, struct{}], 6)
	for i := range hexagon {
		hexagon[i].ID = i
	}
	g, _ := mesh.FromPolygons[struct{}, struct{}](slices.Values([]mesh.Polygon[int, struct{}]{hexagon}))

	res, err := g.Triangulate(g.Faces()[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(res.Faces), "triangles,", len(res.Changes.Edges.Added), "diagonals")
	// Output: 4 triangles, 3 diagonals
}

func ExampleGraph_Extrude_withoutGeometry() {
	tri := mesh.Polygon[int, struct{}]{{ID: 0}, {ID: 1}, {ID: 2}}
	g, _ := mesh.FromPolygons[struct{}, struct{}](slices.Values([]mesh.Polygon[int, struct{}]{tri}))

	_, err := g.Extrude(g.Faces()[0], 0.5)
	fmt.Println(err)
	// Output: mesh: Extrude: precondition error: mesh: geometry required: non-zero offset
}
