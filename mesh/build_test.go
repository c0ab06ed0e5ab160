package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/primitive"
)

func TestFromPolygons_SingleQuad(t *testing.T) {
	g, ids := buildSym(t, poly(0, 1, 2, 3))

	assert.Equal(t, 1, g.FaceCount())
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 8, g.ArcCount())
	assert.Len(t, g.BoundaryArcs(), 4)

	f := g.Faces()[0]
	assert.Equal(t, 4, arity(t, g, f))
	assert.Equal(t, []mesh.VertexKey{ids[0], ids[1], ids[2], ids[3]}, ringKeys(t, g, f))

	for id, k := range ids {
		p, err := g.Vertex(k)
		require.NoError(t, err)
		assert.Equal(t, id, p)
	}
}

func TestFromPolygons_ClosedSolids(t *testing.T) {
	cases := []struct {
		solid   primitive.Solid
		v, e, f int
	}{
		{primitive.Tetrahedron, 4, 6, 4},
		{primitive.Cube, 8, 12, 6},
		{primitive.Octahedron, 6, 12, 8},
		{primitive.Dodecahedron, 20, 30, 12},
		{primitive.Icosahedron, 12, 30, 20},
	}
	for _, tc := range cases {
		t.Run(tc.solid.String(), func(t *testing.T) {
			seq, err := primitive.Platonic(tc.solid)
			require.NoError(t, err)
			g, _ := buildGeo(t, seq)

			assert.Equal(t, tc.v, g.VertexCount())
			assert.Equal(t, tc.e, g.EdgeCount())
			assert.Equal(t, tc.f, g.FaceCount())
			assert.Equal(t, 2*tc.e, g.ArcCount())
			assert.Empty(t, g.BoundaryArcs())

			// opposite involution
			for _, a := range g.Arcs() {
				o, err := g.Opposite(a)
				require.NoError(t, err)
				oo, err := g.Opposite(o)
				require.NoError(t, err)
				assert.Equal(t, a, oo)
			}
			// cycle closure: next^arity returns to the representative
			for _, f := range g.Faces() {
				n := arity(t, g, f)
				rep, err := g.FaceArc(f)
				require.NoError(t, err)
				cur := rep
				for range n {
					v, err := g.Arc(cur)
					require.NoError(t, err)
					cur = v.Next
				}
				assert.Equal(t, rep, cur)
			}
		})
	}
}

func TestFromPolygons_FaceOrderFollowsInput(t *testing.T) {
	g, _, err := mesh.FromPolygonsIndex[string, string](polys(poly(0, 1, 2), poly(2, 1, 3), poly(3, 1, 4, 5)))
	require.NoError(t, err)

	faces := g.Faces()
	require.Len(t, faces, 3)
	assert.Equal(t, 3, arity(t, g, faces[0]))
	assert.Equal(t, 3, arity(t, g, faces[1]))
	assert.Equal(t, 4, arity(t, g, faces[2]))
}

func TestFromPolygons_FirstPayloadWins(t *testing.T) {
	p1 := mesh.Polygon[string, int]{{ID: "a", Payload: 1}, {ID: "b", Payload: 2}, {ID: "c", Payload: 3}}
	p2 := mesh.Polygon[string, int]{{ID: "c", Payload: 30}, {ID: "b", Payload: 20}, {ID: "d", Payload: 4}}
	g, ids, err := mesh.FromPolygonsIndex[struct{}, struct{}](polys(p1, p2))
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	c, err := g.Vertex(ids["c"])
	require.NoError(t, err)
	assert.Equal(t, 3, c)
}

func TestFromPolygons_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input []mesh.Polygon[int, int]
		cause error
	}{
		{"too small", []mesh.Polygon[int, int]{poly(0, 1)}, mesh.ErrArityTooSmall},
		{"repeated id", []mesh.Polygon[int, int]{poly(0, 1, 2, 1)}, mesh.ErrRepeatedVertex},
		{"same winding twice", []mesh.Polygon[int, int]{poly(0, 1, 2), poly(0, 1, 3)}, mesh.ErrArcClaimed},
		{"duplicate face", []mesh.Polygon[int, int]{poly(0, 1, 2), poly(1, 2, 0)}, mesh.ErrArcClaimed},
		{"bowtie", []mesh.Polygon[int, int]{poly(0, 1, 2), poly(0, 3, 4)}, mesh.ErrNonManifold},
		{"late failure", []mesh.Polygon[int, int]{poly(0, 1, 2), poly(2, 1, 3), poly(4)}, mesh.ErrArityTooSmall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := mesh.FromPolygons[string, string](polys(tc.input...))
			require.Error(t, err)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, mesh.ErrConstruction)
			assert.ErrorIs(t, err, tc.cause)

			var me *mesh.Error
			require.ErrorAs(t, err, &me)
			assert.Equal(t, "FromPolygons", me.Op)
		})
	}
}

func TestFromPolygons_OpenFanIsAccepted(t *testing.T) {
	// two triangles around vertex 0, open between 3 and 1
	g, ids := buildSym(t, poly(0, 1, 2), poly(0, 2, 3))

	boundary, err := g.IsBoundaryVertex(ids[0])
	require.NoError(t, err)
	assert.True(t, boundary)

	faces, err := g.VertexFaces(ids[0]).Collect()
	require.NoError(t, err)
	assert.Len(t, faces, 2)
}
