package shortest_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/primitive"
	"github.com/katalvlaran/lvmesh/shortest"
)

type graph = mesh.Graph[vec3.T, struct{}, struct{}]

func cube(t *testing.T) (*graph, map[int]mesh.VertexKey) {
	t.Helper()
	g, ids, err := mesh.FromPolygonsIndex[struct{}, struct{}](primitive.MustPlatonic(primitive.Cube),
		mesh.WithGeometry(geometry.Points()))
	require.NoError(t, err)
	return g, ids
}

func TestFrom_CubeHops(t *testing.T) {
	g, ids := cube(t)

	res, err := shortest.From(g, ids[0])
	require.NoError(t, err)
	require.Len(t, res.Dist, 8)

	rings := map[float64]int{}
	for _, d := range res.Dist {
		rings[d]++
	}
	assert.Equal(t, map[float64]int{0: 1, 1: 3, 2: 3, 3: 1}, rings)
	assert.Equal(t, 3.0, res.Dist[ids[6]])

	verts, edges, err := res.PathTo(ids[6])
	require.NoError(t, err)
	require.Len(t, verts, 4)
	require.Len(t, edges, 3)
	assert.Equal(t, ids[0], verts[0])
	assert.Equal(t, ids[6], verts[3])
	for i, e := range edges {
		u, w, err := g.EdgeVertices(e)
		require.NoError(t, err)
		assert.ElementsMatch(t, []mesh.VertexKey{verts[i], verts[i+1]}, []mesh.VertexKey{u, w})
	}

	verts, edges, err = res.PathTo(ids[0])
	require.NoError(t, err)
	assert.Equal(t, []mesh.VertexKey{ids[0]}, verts)
	assert.Empty(t, edges)
}

func TestFrom_EdgeLength(t *testing.T) {
	g, ids := cube(t)

	res, err := shortest.From(g, ids[0], shortest.WithWeight(shortest.EdgeLength(g, geometry.Points())))
	require.NoError(t, err)
	// unit circumradius: edge length 2/√3, three edges to the far corner
	assert.InDelta(t, 2*math.Sqrt(3), res.Dist[ids[6]], 1e-9)
	assert.InDelta(t, 2/math.Sqrt(3), res.Dist[ids[1]], 1e-9)
}

func TestFrom_GridAndMaxDistance(t *testing.T) {
	seq, err := primitive.Grid(3, 1)
	require.NoError(t, err)
	g, ids, err := mesh.FromPolygonsIndex[struct{}, struct{}](seq)
	require.NoError(t, err)

	res, err := shortest.From(g, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Dist[ids[7]])

	res, err = shortest.From(g, ids[0], shortest.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Len(t, res.Dist, 3)
	assert.True(t, res.Reached(ids[1]))
	assert.True(t, res.Reached(ids[4]))
	assert.False(t, res.Reached(ids[7]))
	_, _, err = res.PathTo(ids[7])
	assert.ErrorIs(t, err, shortest.ErrNoPath)

	// an impassable edge is walked around
	first, _, err := g.FindArc(ids[0], ids[1])
	require.NoError(t, err)
	a, err := g.Arc(first)
	require.NoError(t, err)
	block := func(e mesh.EdgeKey, _, _ mesh.VertexKey) (float64, error) {
		if e == a.Edge {
			return math.Inf(1), nil
		}
		return 1, nil
	}
	res, err = shortest.From(g, ids[0], shortest.WithWeight(block))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Dist[ids[1]])
	assert.Len(t, res.Dist, 8)
}

func TestFrom_Errors(t *testing.T) {
	g, ids := cube(t)

	_, err := shortest.From[vec3.T, struct{}, struct{}](nil, ids[0])
	assert.ErrorIs(t, err, shortest.ErrNilGraph)

	_, err = shortest.From(g, mesh.VertexKey{})
	assert.ErrorIs(t, err, shortest.ErrVertexNotFound)

	negative := func(mesh.EdgeKey, mesh.VertexKey, mesh.VertexKey) (float64, error) { return -1, nil }
	_, err = shortest.From(g, ids[0], shortest.WithWeight(negative))
	assert.ErrorIs(t, err, shortest.ErrNegativeWeight)

	nan := func(mesh.EdgeKey, mesh.VertexKey, mesh.VertexKey) (float64, error) { return math.NaN(), nil }
	_, err = shortest.From(g, ids[0], shortest.WithWeight(nan))
	assert.ErrorIs(t, err, shortest.ErrNegativeWeight)

	boom := errors.New("boom")
	failing := func(mesh.EdgeKey, mesh.VertexKey, mesh.VertexKey) (float64, error) { return 0, boom }
	_, err = shortest.From(g, ids[0], shortest.WithWeight(failing))
	assert.ErrorIs(t, err, boom)

	assert.Panics(t, func() { shortest.WithMaxDistance(-1) })
	assert.Panics(t, func() { shortest.WithMaxDistance(math.NaN()) })
	assert.Panics(t, func() { shortest.WithWeight(nil) })
}
