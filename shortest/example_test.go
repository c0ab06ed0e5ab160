package shortest_test

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/primitive"
	"github.com/katalvlaran/lvmesh/shortest"
)

// ExampleFrom walks from one cube corner to the opposite one, first by hop
// count and then by edge length.
func ExampleFrom() {
	g, ids, err := mesh.FromPolygonsIndex[struct{}, struct{}](
		primitive.MustPlatonic(primitive.Cube, primitive.WithScale(2)),
		mesh.WithGeometry(geometry.Points()))
	if err != nil {
		fmt.Println(err)
		return
	}

	hops, _ := shortest.From(g, ids[0])
	verts, _, _ := hops.PathTo(ids[6])
	fmt.Printf("hops: %.0f via %d vertices\n", hops.Dist[ids[6]], len(verts))

	length, _ := shortest.From(g, ids[0], shortest.WithWeight(shortest.EdgeLength(g, geometry.Points())))
	fmt.Printf("length: %.4f\n", length.Dist[ids[6]])
	// Output:
	// hops: 3 via 4 vertices
	// length: 6.9282
}
