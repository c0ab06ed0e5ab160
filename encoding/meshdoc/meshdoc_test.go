package meshdoc_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/encoding"
	"github.com/katalvlaran/lvmesh/encoding/meshdoc"
	"github.com/katalvlaran/lvmesh/primitive"
)

const square = `version: 1
name: square
vertices:
  - [0, 0, 0]
  - [1, 0, 0]
  - [1, 1, 0]
  - [0, 1, 0]
faces:
  - [0, 1, 2, 3]
`

func TestDecode_Square(t *testing.T) {
	m, err := meshdoc.Decode(strings.NewReader(square))
	require.NoError(t, err)
	assert.Equal(t, "square", m.Name)
	assert.Equal(t, []vec3.T{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, m.Positions)
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, m.Faces)
}

func TestEncode_MatchesHandWritten(t *testing.T) {
	m, err := meshdoc.Decode(strings.NewReader(square))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, meshdoc.Encode(&buf, m))
	assert.Equal(t, square, buf.String())
}

func TestRoundTrip_Sphere(t *testing.T) {
	seq, err := primitive.UVSphere(6, 4)
	require.NoError(t, err)
	var m encoding.Model
	ids := map[int]int{}
	for poly := range seq {
		face := make([]int, len(poly))
		for k, c := range poly {
			if _, ok := ids[c.ID]; !ok {
				ids[c.ID] = len(m.Positions)
				m.Positions = append(m.Positions, c.Payload)
			}
			face[k] = ids[c.ID]
		}
		m.Faces = append(m.Faces, face)
	}

	var buf bytes.Buffer
	require.NoError(t, meshdoc.Encode(&buf, &m))
	back, err := meshdoc.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.Positions, back.Positions, "shortest float formatting is exact")
	assert.Equal(t, m.Faces, back.Faces)

	g, err := encoding.Build[struct{}, struct{}](back)
	require.NoError(t, err)
	assert.Empty(t, g.BoundaryArcs())
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"version", "version: 2\nvertices: []\nfaces: []\n", meshdoc.ErrVersion},
		{"missing version", "vertices: []\nfaces: []\n", meshdoc.ErrVersion},
		{"short vertex", "version: 1\nvertices:\n  - [0, 0]\nfaces: []\n", meshdoc.ErrVertex},
		{"bad index", "version: 1\nvertices:\n  - [0, 0, 0]\nfaces:\n  - [0, 1, 2]\n", encoding.ErrFaceIndex},
		{"bad arity", "version: 1\nvertices:\n  - [0, 0, 0]\nfaces:\n  - [0, 0]\n", encoding.ErrFaceArity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := meshdoc.Decode(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := meshdoc.Decode(strings.NewReader("version: 1\ncolour: red\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = meshdoc.Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, io.EOF)
}

func TestEncode_Invalid(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, meshdoc.Encode(&buf, nil), encoding.ErrNilModel)
	assert.ErrorIs(t, meshdoc.Encode(&buf, &encoding.Model{Faces: [][]int{{0, 1, 2}}}), encoding.ErrFaceIndex)
	assert.Zero(t, buf.Len())
}
