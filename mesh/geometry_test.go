package mesh_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/mesh"
)

func TestFaceNormalAndCentroid(t *testing.T) {
	// clockwise seen from +Z, so the normal points down
	g, _ := buildGeo(t, polys(flat(0, 0, 0, 2, 2, 2, 2, 0)))
	f := g.Faces()[0]

	n, err := mesh.FaceNormal(g, geometry.Points(), f)
	require.NoError(t, err)
	assertVec(t, vec3.T{0, 0, -1}, n)

	c, err := mesh.FaceCentroid(g, geometry.Points(), f)
	require.NoError(t, err)
	assertVec(t, vec3.T{1, 1, 0}, c)
}

func TestFaceNormal_Degenerate(t *testing.T) {
	g, _ := buildGeo(t, polys(flat(0, 0, 1, 1, 2, 2)))
	_, err := mesh.FaceNormal(g, geometry.Points(), g.Faces()[0])
	assert.ErrorIs(t, err, mesh.ErrDegenerateResult)
	assert.ErrorIs(t, err, mesh.ErrZeroNormal)
}

func TestWithGeometry_NilPanics(t *testing.T) {
	assert.Panics(t, func() { mesh.WithGeometry[vec3.T, vec3.T](nil) })
	assert.Panics(t, func() { mesh.WithTriangulation[vec3.T](nil) })
}

func TestError_Format(t *testing.T) {
	err := error(&mesh.Error{Op: "MergeFaces", Kind: mesh.ErrPrecondition, Err: mesh.ErrSameFace})
	assert.Equal(t, "mesh: MergeFaces: precondition error: mesh: same face", err.Error())
	assert.True(t, errors.Is(err, mesh.ErrPrecondition))
	assert.True(t, errors.Is(err, mesh.ErrSameFace))
	assert.False(t, errors.Is(err, mesh.ErrTopology))
}

func TestNew_EmptyGraph(t *testing.T) {
	g := mesh.New[int, struct{}, struct{}]()
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.FaceCount())
	assert.False(t, g.HasGeometry())
	assert.NoError(t, g.CheckConsistency())
	assert.Empty(t, g.BoundaryArcs())
}
