package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/encoding/meshdoc"
	"github.com/katalvlaran/lvmesh/encoding/obj"
	"github.com/katalvlaran/lvmesh/internal/cli"
)

// execute runs the CLI with args and stdin, isolated from the user's
// config, and returns what it printed on stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	var out, logs bytes.Buffer
	root := cli.New(&logs, cli.LogInfo).RootCommand()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerate_Stdout(t *testing.T) {
	out, err := execute(t, "", "generate", "tetrahedron")
	require.NoError(t, err)

	m, err := obj.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "tetrahedron", m.Name)
	assert.Len(t, m.Positions, 4)
	assert.Len(t, m.Faces, 4)
}

func TestGenerate_SphereUsesConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "lvmesh.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[sphere]\nsegments = 8\nrings = 6\n"), 0o600))

	out, err := execute(t, "", "--config", cfg, "generate", "sphere", "--format", "yaml")
	require.NoError(t, err)
	m, err := meshdoc.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, m.Positions, 42)
	assert.Len(t, m.Faces, 48)

	// flags beat the config file
	out, err = execute(t, "", "--config", cfg, "generate", "sphere", "--segments", "3", "--rings", "2")
	require.NoError(t, err)
	m, err = obj.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, m.Positions, 5)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := execute(t, "", "generate", "teapot")
	assert.ErrorContains(t, err, "unknown shape")
	_, err = execute(t, "", "generate", "cube", "--scale", "0")
	assert.ErrorContains(t, err, "--scale")
	_, err = execute(t, "", "generate", "cube", "-o", filepath.Join(t.TempDir(), "cube.stl"))
	assert.ErrorContains(t, err, "--format")
	_, err = execute(t, "", "generate", "cube", "--format", "stl")
	assert.ErrorContains(t, err, "unknown format")
}

func TestStats_ManyFiles(t *testing.T) {
	dir := t.TempDir()
	cube := filepath.Join(dir, "cube.obj")
	grid := filepath.Join(dir, "grid.yaml")
	_, err := execute(t, "", "generate", "cube", "-o", cube)
	require.NoError(t, err)
	_, err = execute(t, "", "generate", "grid", "--cols", "2", "--rows", "3", "-o", grid)
	require.NoError(t, err)

	out, err := execute(t, "", "stats", cube, grid)
	require.NoError(t, err)

	// results print in argument order
	first, second, ok := strings.Cut(out, grid)
	require.True(t, ok)
	assert.Contains(t, first, "vertices: 8")
	assert.Contains(t, first, "edges: 12")
	assert.Contains(t, first, "boundary arcs: 0")
	assert.Contains(t, first, "arity: 4×6")
	assert.Contains(t, second, "vertices: 12")
	assert.Contains(t, second, "edges: 17")
	assert.Contains(t, second, "boundary arcs: 10")
	assert.Contains(t, second, "components: 1")
}

func TestStats_Stdin(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 5 0 0\nv 6 0 0\nv 5 1 0\nf 1 2 3\nf 4 5 6\n"
	out, err := execute(t, src, "stats", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "components: 2")
	assert.Contains(t, out, "arity: 3×2")

	_, err = execute(t, src, "stats", "-", "-")
	assert.Error(t, err)
	_, err = execute(t, "", "stats", filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}

func TestExtrudeAndTriangulate(t *testing.T) {
	dir := t.TempDir()
	cube := filepath.Join(dir, "cube.obj")
	tower := filepath.Join(dir, "tower.obj")
	_, err := execute(t, "", "generate", "cube", "-o", cube)
	require.NoError(t, err)

	_, err = execute(t, "", "extrude", cube, "--face", "0", "--offset", "0.5", "-o", tower)
	require.NoError(t, err)
	out, err := execute(t, "", "stats", tower)
	require.NoError(t, err)
	assert.Contains(t, out, "vertices: 12")
	assert.Contains(t, out, "edges: 20")
	assert.Contains(t, out, "faces: 10")

	for _, policy := range []string{"fan", "ear"} {
		out, err = execute(t, "", "triangulate", tower, "--policy", policy, "--format", "yaml")
		require.NoError(t, err, policy)
		m, err := meshdoc.Decode(strings.NewReader(out))
		require.NoError(t, err)
		assert.Len(t, m.Faces, 20, policy)
		assert.Equal(t, map[int]int{3: 20}, m.Stats().Arity, policy)
	}

	out, err = execute(t, "", "triangulate", cube, "--face", "2")
	require.NoError(t, err)
	m, err := obj.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, map[int]int{3: 2, 4: 5}, m.Stats().Arity)

	_, err = execute(t, "", "extrude", cube, "--face", "6")
	assert.ErrorContains(t, err, "out of range")
	_, err = execute(t, "", "triangulate", cube, "--policy", "delaunay")
	assert.ErrorContains(t, err, "unknown triangulation policy")
}

func TestPath(t *testing.T) {
	// two unit quads side by side, plus an unused position 6
	src := "v 0 0 0\nv 1 0 0\nv 2 0 0\nv 0 1 0\nv 1 1 0\nv 2 1 0\nv 7 7 7\nf 1 2 5 4\nf 2 3 6 5\n"

	out, err := execute(t, src, "path", "-", "--from", "0", "--to", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "hops: 3")
	assert.Contains(t, out, "cost: 3")
	assert.Contains(t, out, "path: 0 → ")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), " → 5"), out)

	out, err = execute(t, src, "path", "-", "--from", "3", "--to", "2", "--length")
	require.NoError(t, err)
	assert.Contains(t, out, "hops: 3")
	assert.Contains(t, out, "cost: 3")

	_, err = execute(t, src, "path", "-", "--from", "0", "--to", "9")
	assert.ErrorContains(t, err, "out of range")
	_, err = execute(t, src, "path", "-", "--from", "6", "--to", "0")
	assert.ErrorContains(t, err, "not used by any face")
}

func TestStore_Lifecycle(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "db")
	cube := filepath.Join(dir, "cube.obj")
	_, err := execute(t, "", "generate", "cube", "-o", cube)
	require.NoError(t, err)

	out, err := execute(t, "", "store", "--store", db, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Store is empty")

	out, err = execute(t, "", "store", "--store", db, "put", cube, "--name", "box")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	id := lines[len(lines)-1]

	out, err = execute(t, "", "store", "--store", db, "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "box")
	assert.Contains(t, out, "6 faces, 8 vertices")

	out, err = execute(t, "", "store", "--store", db, "get", id, "--format", "yaml")
	require.NoError(t, err)
	m, err := meshdoc.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "box", m.Name)
	assert.Len(t, m.Faces, 6)

	_, err = execute(t, "", "store", "--store", db, "delete", id)
	require.NoError(t, err)
	_, err = execute(t, "", "store", "--store", db, "get", id)
	assert.Error(t, err)
	_, err = execute(t, "", "store", "--store", db, "get", "not-a-uuid")
	assert.ErrorContains(t, err, "invalid id")
}

func TestStore_ConfigPath(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "lvmesh.toml")
	db := filepath.Join(dir, "from-config")
	require.NoError(t, os.WriteFile(cfg, []byte("[store]\npath = \""+filepath.ToSlash(db)+"\"\nsync_writes = false\n"), 0o600))

	_, err := execute(t, "", "--config", cfg, "store", "list")
	require.NoError(t, err)
	assert.DirExists(t, db)
}
