// Package primitive generates lazy, restartable polygon streams for common
// shapes, ready to feed mesh.FromPolygons.
//
// Generators:
//
//	Platonic(Tetrahedron|Cube|Octahedron|Dodecahedron|Icosahedron)
//	MustPlatonic(solid)  same, panics on an unknown solid
//	UVSphere(seg, rings) latitude/longitude sphere with pole fans
//	Grid(cols, rows)     open sheet of quads in the XY plane
//
// Every generator yields mesh.Polygon[int, vec3.T]: stable integer IDs
// shared between polygons, positions as payload, faces wound
// counter-clockwise seen from outside. Ranging over a stream twice yields
// the same polygons.
//
//	polys, _ := primitive.UVSphere(16, 8, primitive.WithScale(2))
//	g, err := mesh.FromPolygons[struct{}, struct{}](polys,
//		mesh.WithGeometry(geometry.Points()))
package primitive
