package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/encoding"
	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/primitive"
)

func TestBuild_FromGraph(t *testing.T) {
	src, err := mesh.FromPolygons[struct{}, struct{}](primitive.MustPlatonic(primitive.Icosahedron))
	require.NoError(t, err)

	m, err := encoding.FromGraph(src)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, encoding.Stats{Positions: 12, Faces: 20, Arity: map[int]int{3: 20}}, m.Stats())

	g, err := encoding.Build[struct{}, struct{}](m)
	require.NoError(t, err)
	assert.True(t, g.HasGeometry())
	assert.Equal(t, 30, g.EdgeCount())
	assert.Empty(t, g.BoundaryArcs())

	// every face keeps its winding: normals still point outward
	for _, f := range g.Faces() {
		n, err := mesh.FaceNormal(g, geometry.Points(), f)
		require.NoError(t, err)
		c, err := mesh.FaceCentroid(g, geometry.Points(), f)
		require.NoError(t, err)
		assert.Greater(t, vec3.Dot(&n, &c), 0.0)
	}
}

func TestValidate(t *testing.T) {
	pts := []vec3.T{{}, {1, 0, 0}, {0, 1, 0}}
	cases := []struct {
		name  string
		faces [][]int
		want  error
	}{
		{"two corners", [][]int{{0, 1}}, encoding.ErrFaceArity},
		{"negative", [][]int{{0, 1, -1}}, encoding.ErrFaceIndex},
		{"too large", [][]int{{0, 1, 3}}, encoding.ErrFaceIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &encoding.Model{Positions: pts, Faces: tc.faces}
			assert.ErrorIs(t, m.Validate(), tc.want)
			_, err := encoding.Build[struct{}, struct{}](m)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_NonManifold(t *testing.T) {
	// two triangles with the same winding over edge 0-1
	m := &encoding.Model{
		Name:      "clash",
		Positions: []vec3.T{{}, {1, 0, 0}, {0, 1, 0}, {0, -1, 0}},
		Faces:     [][]int{{0, 1, 2}, {0, 1, 3}},
	}
	_, err := encoding.Build[struct{}, struct{}](m)
	assert.ErrorIs(t, err, mesh.ErrConstruction)
	assert.ErrorContains(t, err, `"clash"`)
}

func TestBuildIndex_DropsUnreferenced(t *testing.T) {
	m := &encoding.Model{
		Positions: []vec3.T{{}, {1, 0, 0}, {9, 9, 9}, {0, 1, 0}},
		Faces:     [][]int{{0, 1, 3}},
	}
	g, ids, err := encoding.BuildIndex[struct{}, struct{}](m)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	require.Len(t, ids, 3)
	assert.NotContains(t, ids, 2)

	p, err := g.Vertex(ids[3])
	require.NoError(t, err)
	assert.Equal(t, vec3.T{0, 1, 0}, p)
}

func TestNil(t *testing.T) {
	_, err := encoding.Build[struct{}, struct{}](nil)
	assert.ErrorIs(t, err, encoding.ErrNilModel)
	_, _, err = encoding.BuildIndex[struct{}, struct{}](nil)
	assert.ErrorIs(t, err, encoding.ErrNilModel)
	_, err = encoding.FromGraph[struct{}, struct{}](nil)
	assert.ErrorIs(t, err, encoding.ErrNilGraph)
}
