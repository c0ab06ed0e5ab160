package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/lvmesh/geometry"
)

type tagged struct {
	Pos vec3.T
	Tag string
}

func TestPoints_VectorOps(t *testing.T) {
	geo := geometry.Points()
	a := vec3.T{1, 0, 0}
	b := vec3.T{0, 1, 0}

	assert.Equal(t, vec3.T{1, 1, 0}, geo.Add(a, b))
	assert.Equal(t, vec3.T{1, -1, 0}, geo.Sub(a, b))
	assert.Equal(t, vec3.T{3, 0, 0}, geo.Scale(a, 3))
	assert.Equal(t, 0.0, geo.Dot(a, b))
	assert.Equal(t, vec3.T{0, 0, 1}, geo.Cross(a, b))
	assert.Equal(t, vec3.T{0.5, 0.5, 0}, geo.Midpoint(a, b))

	n, ok := geo.Normalize(vec3.T{0, 0, 5})
	assert.True(t, ok)
	assert.InDelta(t, 1.0, n[2], 1e-12)

	_, ok = geo.Normalize(vec3.T{})
	assert.False(t, ok)
}

func TestVec3_KeepsOtherFields(t *testing.T) {
	geo := geometry.Vec3(
		func(v tagged) vec3.T { return v.Pos },
		func(v tagged, p vec3.T) tagged { v.Pos = p; return v },
	)
	v := tagged{Pos: vec3.T{1, 2, 3}, Tag: "corner"}
	moved := geo.SetPosition(v, vec3.T{4, 5, 6})

	assert.Equal(t, vec3.T{4, 5, 6}, geo.Position(moved))
	assert.Equal(t, "corner", moved.Tag)
	assert.Equal(t, vec3.T{1, 2, 3}, v.Pos)
}

func TestVec3_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() {
		geometry.Vec3[tagged](nil, nil)
	})
}
