package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/arena"
	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/primitive"
)

// grid2 is a 2×2 quad sheet:
//
//	6 ─ 7 ─ 8
//	│   │   │
//	3 ─ 4 ─ 5
//	│   │   │
//	0 ─ 1 ─ 2
func grid2(t *testing.T) (*geoGraph, map[int]mesh.VertexKey) {
	t.Helper()
	seq, err := primitive.Grid(2, 2)
	require.NoError(t, err)
	return buildGeo(t, seq)
}

func TestVertexCirculation_Fans(t *testing.T) {
	g, ids := grid2(t)

	cases := []struct {
		name      string
		id        int
		faces     int
		neighbors []int
		boundary  bool
	}{
		{"corner", 0, 1, []int{1, 3}, true},
		{"side", 1, 2, []int{0, 2, 4}, true},
		{"interior", 4, 4, []int{1, 3, 5, 7}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := ids[tc.id]

			out, err := g.VertexOutgoing(v).Collect()
			require.NoError(t, err)
			assert.Len(t, out, len(tc.neighbors))
			for _, a := range out {
				av, err := g.Arc(a)
				require.NoError(t, err)
				assert.Equal(t, v, av.Origin)
			}

			in, err := g.VertexIncoming(v).Collect()
			require.NoError(t, err)
			assert.Len(t, in, len(tc.neighbors))
			for _, a := range in {
				av, err := g.Arc(a)
				require.NoError(t, err)
				assert.Equal(t, v, av.Destination)
			}

			faces, err := g.VertexFaces(v).Collect()
			require.NoError(t, err)
			assert.Len(t, faces, tc.faces)

			want := make([]mesh.VertexKey, len(tc.neighbors))
			for i, id := range tc.neighbors {
				want[i] = ids[id]
			}
			got, err := g.VertexNeighbors(v).Collect()
			require.NoError(t, err)
			assert.ElementsMatch(t, want, got)

			b, err := g.IsBoundaryVertex(v)
			require.NoError(t, err)
			assert.Equal(t, tc.boundary, b)
		})
	}
}

func TestVertexCirculation_ClosedFanIsRotation(t *testing.T) {
	seq, err := primitive.Platonic(primitive.Icosahedron)
	require.NoError(t, err)
	g, _ := buildGeo(t, seq)

	for _, v := range g.Vertices() {
		out, err := g.VertexOutgoing(v).Collect()
		require.NoError(t, err)
		require.Len(t, out, 5)

		// consecutive outgoing arcs are linked by next(opposite(a))
		for i, a := range out {
			o, err := g.Opposite(a)
			require.NoError(t, err)
			ov, err := g.Arc(o)
			require.NoError(t, err)
			assert.Equal(t, out[(i+1)%len(out)], ov.Next)
		}
	}
}

func TestFaceCirculation(t *testing.T) {
	g := cube(t)

	for _, f := range g.Faces() {
		arcs, err := g.FaceArcs(f).Collect()
		require.NoError(t, err)
		require.Len(t, arcs, 4)
		for i, a := range arcs {
			av, err := g.Arc(a)
			require.NoError(t, err)
			assert.Equal(t, f, av.Face)
			assert.Equal(t, arcs[(i+1)%4], av.Next)
			assert.Equal(t, arcs[(i+3)%4], av.Previous)
		}

		nb, err := g.FaceNeighbors(f).Collect()
		require.NoError(t, err)
		assert.Len(t, nb, 4)
		assert.NotContains(t, nb, f)
	}
}

func TestFaceNeighbors_SkipsBoundary(t *testing.T) {
	g, _ := grid2(t)
	for _, f := range g.Faces() {
		nb, err := g.FaceNeighbors(f).Collect()
		require.NoError(t, err)
		assert.Len(t, nb, 2)
	}
}

func TestCirculator_ResetRestarts(t *testing.T) {
	g := cube(t)
	f := g.Faces()[0]

	c := g.FaceVertices(f)
	first, err := c.Collect()
	require.NoError(t, err)
	assert.False(t, c.Next())

	require.NoError(t, c.Reset())
	var again []mesh.VertexKey
	for k := range c.All() {
		again = append(again, k)
	}
	require.NoError(t, c.Err())
	assert.Equal(t, first, again)
}

func TestCirculator_BrokenByMutation(t *testing.T) {
	g := cube(t)
	f := g.Faces()[0]

	c := g.FaceArcs(f)
	require.True(t, c.Next())

	_, err := g.SplitEdge(g.Edges()[0], 0.5)
	require.NoError(t, err)

	assert.False(t, c.Next())
	assert.ErrorIs(t, c.Err(), mesh.ErrTopology)
	assert.ErrorIs(t, c.Err(), mesh.ErrBrokenTopology)

	// a reset rebinds to the new version
	require.NoError(t, c.Reset())
	n := 0
	for c.Next() {
		n++
	}
	require.NoError(t, c.Err())
	assert.Equal(t, arity(t, g, f), n)
}

func TestCirculator_FailedMutationKeepsItValid(t *testing.T) {
	g := cube(t)
	faces := g.Faces()

	c := g.FaceArcs(faces[0])
	_, err := g.MergeFaces(faces[0], faces[0])
	require.Error(t, err)

	got, err := c.Collect()
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestCirculator_BadAnchor(t *testing.T) {
	g, _ := buildSym(t, poly(0, 1, 2, 3))
	f := g.Faces()[0]
	res, err := g.SplitFace(f, g.Vertices()[0], g.Vertices()[2])
	require.NoError(t, err)
	_, err = g.MergeFaces(f, res.Face)
	require.NoError(t, err)

	c := g.FaceArcs(res.Face)
	assert.False(t, c.Next())
	assert.ErrorIs(t, c.Err(), mesh.ErrTopology)
	assert.ErrorIs(t, c.Err(), arena.ErrStaleKey)

	other, _ := buildSym(t, poly(0, 1, 2))
	c2 := other.VertexOutgoing(g.Vertices()[0])
	assert.ErrorIs(t, c2.Err(), arena.ErrForeignKey)

	c3 := g.VertexFaces(mesh.VertexKey{})
	assert.ErrorIs(t, c3.Err(), arena.ErrNullKey)
}
