package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/encoding"
	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/primitive"
	"github.com/katalvlaran/lvmesh/store"
)

func openMem(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(store.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func cubeModel(t *testing.T) *encoding.Model {
	t.Helper()
	g, err := mesh.FromPolygons[struct{}, struct{}](primitive.MustPlatonic(primitive.Cube))
	require.NoError(t, err)
	m, err := encoding.FromGraph(g)
	require.NoError(t, err)
	return m
}

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	s := openMem(t)
	m := cubeModel(t)

	id, err := s.Put(ctx, "cube", m)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	e, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, e.ID)
	assert.Equal(t, "cube", e.Name)
	assert.Equal(t, "cube", e.Model.Name)
	assert.Equal(t, 8, e.Positions)
	assert.Equal(t, 6, e.Faces)
	assert.Equal(t, m.Positions, e.Model.Positions)
	assert.Equal(t, m.Faces, e.Model.Faces)
	assert.False(t, e.Created.IsZero())
}

func TestGraphHelpers(t *testing.T) {
	ctx := context.Background()
	s := openMem(t)

	seq, err := primitive.UVSphere(8, 4)
	require.NoError(t, err)
	g, err := mesh.FromPolygons[struct{}, struct{}](seq)
	require.NoError(t, err)

	id, err := store.PutGraph(ctx, s, "sphere", g)
	require.NoError(t, err)

	back, err := store.LoadGraph[struct{}, struct{}](ctx, s, id)
	require.NoError(t, err)
	assert.Equal(t, g.VertexCount(), back.VertexCount())
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())
	assert.Equal(t, g.FaceCount(), back.FaceCount())
	assert.True(t, back.HasGeometry())

	_, err = store.LoadGraph[struct{}, struct{}](ctx, s, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestList_OldestFirst(t *testing.T) {
	ctx := context.Background()
	s := openMem(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	store.SetClock(s, func() time.Time {
		tick++
		return base.Add(time.Duration(-tick) * time.Hour)
	})

	m := cubeModel(t)
	var ids []uuid.UUID
	for _, name := range []string{"a", "b", "c"} {
		id, err := s.Put(ctx, name, m)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// the clock runs backwards, so the last put is the oldest
	assert.Equal(t, []string{"c", "b", "a"}, []string{list[0].Name, list[1].Name, list[2].Name})
	assert.Equal(t, ids[2], list[0].ID)
	assert.Equal(t, base.Add(-3*time.Hour), list[0].Created)
	assert.Equal(t, 6, list[0].Faces)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := openMem(t)
	id, err := s.Put(ctx, "cube", cubeModel(t))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, id))
	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, id), store.ErrNotFound)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPersistence(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := store.Open(store.DefaultConfig().WithPath(dir))
	require.NoError(t, err)
	id, err := s.Put(ctx, "cube", cubeModel(t))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = store.Open(store.DefaultConfig().WithPath(dir))
	require.NoError(t, err)
	defer s.Close()
	e, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "cube", e.Name)
}

func TestErrors(t *testing.T) {
	_, err := store.Open(store.DefaultConfig())
	assert.ErrorIs(t, err, store.ErrNoPath)

	s := openMem(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Put(ctx, "x", cubeModel(t))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Delete(ctx, uuid.New()), context.Canceled)

	bg := context.Background()
	_, err = s.Put(bg, "nil", nil)
	assert.ErrorIs(t, err, encoding.ErrNilModel)
	_, err = s.Put(bg, "bad", &encoding.Model{Faces: [][]int{{0, 1, 2}}})
	assert.ErrorIs(t, err, encoding.ErrFaceIndex)

	// a cancelled list stops at the first entry
	_, err = s.Put(bg, "cube", cubeModel(t))
	require.NoError(t, err)
	_, err = s.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCorruptEntries(t *testing.T) {
	ctx := context.Background()
	s := openMem(t)

	id := uuid.New()
	require.NoError(t, store.PutRaw(s, "mesh/"+id.String(), []byte("name: [unclosed")))
	_, err := s.Get(ctx, id)
	assert.ErrorIs(t, err, store.ErrCorrupt)
	_, err = s.List(ctx)
	assert.ErrorIs(t, err, store.ErrCorrupt)

	s2 := openMem(t)
	require.NoError(t, store.PutRaw(s2, "mesh/not-a-uuid", []byte("name: x\n")))
	_, err = s2.List(ctx)
	assert.ErrorIs(t, err, store.ErrCorrupt)

	s3 := openMem(t)
	id3 := uuid.New()
	require.NoError(t, store.PutRaw(s3, "mesh/"+id3.String(), []byte("name: x\ndocument:\n  version: 7\n")))
	_, err = s3.Get(ctx, id3)
	assert.ErrorIs(t, err, store.ErrCorrupt)
}
