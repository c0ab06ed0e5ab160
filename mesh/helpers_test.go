package mesh_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/primitive"
)

type (
	symGraph = mesh.Graph[int, string, string]
	geoGraph = mesh.Graph[vec3.T, struct{}, string]
)

// poly builds a symbolic polygon whose payloads equal the IDs.
func poly(ids ...int) mesh.Polygon[int, int] {
	p := make(mesh.Polygon[int, int], len(ids))
	for i, id := range ids {
		p[i] = mesh.Corner[int, int]{ID: id, Payload: id}
	}
	return p
}

func polys[P any](ps ...P) iter.Seq[P] { return slices.Values(ps) }

// buildSym ingests symbolic polygons and returns the graph plus ID→key map.
func buildSym(t *testing.T, ps ...mesh.Polygon[int, int]) (*symGraph, map[int]mesh.VertexKey) {
	t.Helper()
	g, ids, err := mesh.FromPolygonsIndex[string, string](polys(ps...))
	require.NoError(t, err)
	require.NoError(t, g.CheckConsistency())
	return g, ids
}

// flat builds a planar polygon in the XY plane from (x, y) pairs.
func flat(xy ...float64) mesh.Polygon[int, vec3.T] {
	p := make(mesh.Polygon[int, vec3.T], 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		p = append(p, mesh.Corner[int, vec3.T]{ID: i / 2, Payload: vec3.T{xy[i], xy[i+1], 0}})
	}
	return p
}

func buildGeo(t *testing.T, seq iter.Seq[mesh.Polygon[int, vec3.T]], opts ...mesh.Option[vec3.T]) (*geoGraph, map[int]mesh.VertexKey) {
	t.Helper()
	opts = append([]mesh.Option[vec3.T]{mesh.WithGeometry(geometry.Points())}, opts...)
	g, ids, err := mesh.FromPolygonsIndex[struct{}, string](seq, opts...)
	require.NoError(t, err)
	require.NoError(t, g.CheckConsistency())
	return g, ids
}

func cube(t *testing.T) *geoGraph {
	t.Helper()
	g, _ := buildGeo(t, primitive.MustPlatonic(primitive.Cube))
	return g
}

func arity[V, E, F any](t *testing.T, g *mesh.Graph[V, E, F], f mesh.FaceKey) int {
	t.Helper()
	n, err := g.Arity(f)
	require.NoError(t, err)
	return n
}

func ringKeys[V, E, F any](t *testing.T, g *mesh.Graph[V, E, F], f mesh.FaceKey) []mesh.VertexKey {
	t.Helper()
	keys, err := g.FaceVertices(f).Collect()
	require.NoError(t, err)
	return keys
}

// snapshot captures everything observable about a graph.
type snapshot struct {
	vertices []mesh.VertexKey
	faces    []mesh.FaceKey
	edges    []mesh.EdgeKey
	arcs     map[mesh.ArcKey]mesh.ArcView
	rings    map[mesh.FaceKey][]mesh.VertexKey
	payloads map[mesh.VertexKey]any
}

func snap[V, E, F any](t *testing.T, g *mesh.Graph[V, E, F]) snapshot {
	t.Helper()
	s := snapshot{
		vertices: g.Vertices(),
		faces:    g.Faces(),
		edges:    g.Edges(),
		arcs:     make(map[mesh.ArcKey]mesh.ArcView),
		rings:    make(map[mesh.FaceKey][]mesh.VertexKey),
		payloads: make(map[mesh.VertexKey]any),
	}
	for _, a := range g.Arcs() {
		v, err := g.Arc(a)
		require.NoError(t, err)
		s.arcs[a] = v
	}
	for _, f := range s.faces {
		s.rings[f] = ringKeys(t, g, f)
	}
	for _, v := range s.vertices {
		p, err := g.Vertex(v)
		require.NoError(t, err)
		s.payloads[v] = p
	}
	return s
}

// area2 returns twice the signed XY area of a loop.
func area2(pts []vec3.T) float64 {
	sum := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return sum
}
