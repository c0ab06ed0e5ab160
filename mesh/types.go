// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// types.go — records, the Graph container and its functional options.
//
// Contract:
//   • Records reference each other only by key; callers never see records.
//   • A boundary arc has no face and no next/previous links. Its opposite
//     always bounds a face.
//   • origin(a) is dest(opposite(a)); it is not stored.
//   • Faces wind counter-clockwise around their normal.

package mesh

import "github.com/katalvlaran/lvmesh/arena"

// vertex is the topology record of a vertex.
type vertex[V any] struct {
	arc     ArcKey // some outgoing arc; zero when isolated
	payload V
}

// arc is the topology record of a directed half-edge.
type arc struct {
	dest     VertexKey
	opposite ArcKey
	next     ArcKey // zero on boundary arcs
	prev     ArcKey // zero on boundary arcs
	face     FaceKey
	edge     EdgeKey
}

// boundary reports whether the arc bounds no face.
func (a arc) boundary() bool { return a.face.IsZero() }

// edge is the topology record of an undirected edge.
type edge[E any] struct {
	arcs    [2]ArcKey
	payload E
}

// face is the topology record of a face.
type face[F any] struct {
	arc     ArcKey // representative boundary arc
	payload F
}

// Graph is a half-edge mesh with vertex payload V, edge payload E and face
// payload F. Arcs carry no payload.
//
// A Graph has a single writer. It holds no locks; readers may run
// concurrently only while nobody mutates it.
type Graph[V, E, F any] struct {
	vertices *table[vertex[V]]
	arcs     *table[arc]
	edges    *table[edge[E]]
	faces    *table[face[F]]

	geo    vertexGeometry[V]
	policy TriangulationPolicy[V]

	// version is bumped by every committed mutation; circulators compare it.
	version uint64
}

// Option configures a Graph at construction time.
type Option[V any] func(*config[V])

type config[V any] struct {
	geo    vertexGeometry[V]
	policy TriangulationPolicy[V]
}

// WithGeometry attaches a geometry adapter. Operators that move or
// interpolate vertices (Extrude with a non-zero offset, SplitEdge) use it;
// without one they fall back to their documented symbolic behaviour.
// Panics on nil.
func WithGeometry[V, P any](geo Geometry[V, P]) Option[V] {
	if geo == nil {
		panic("mesh: WithGeometry(nil)")
	}
	return func(c *config[V]) {
		c.geo = geometryAdapter[V, P]{geo: geo}
	}
}

// WithTriangulation sets the default diagonal policy used by Triangulate.
// Panics on nil.
func WithTriangulation[V any](p TriangulationPolicy[V]) Option[V] {
	if p == nil {
		panic("mesh: WithTriangulation(nil)")
	}
	return func(c *config[V]) {
		c.policy = p
	}
}

// New returns an empty Graph.
func New[V, E, F any](opts ...Option[V]) *Graph[V, E, F] {
	cfg := config[V]{policy: Fan[V]{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Graph[V, E, F]{
		vertices: newTable[vertex[V]](),
		arcs:     newTable[arc](),
		edges:    newTable[edge[E]](),
		faces:    newTable[face[F]](),
		geo:      cfg.geo,
		policy:   cfg.policy,
	}
}

// HasGeometry reports whether a geometry adapter is attached.
func (g *Graph[V, E, F]) HasGeometry() bool { return g.geo != nil }

// Clone returns an independent copy of g with its own key space. Keys of g
// fail against the clone; use CloneWithKeys to translate them. Payloads are
// copied by assignment.
func (g *Graph[V, E, F]) Clone() *Graph[V, E, F] {
	c, _ := g.CloneWithKeys()
	return c
}

// CloneWithKeys is Clone plus the KeyMap from g's keys to the clone's.
func (g *Graph[V, E, F]) CloneWithKeys() (*Graph[V, E, F], KeyMap) {
	c := &Graph[V, E, F]{
		vertices: g.vertices.clone(),
		arcs:     g.arcs.clone(),
		edges:    g.edges.clone(),
		faces:    g.faces.clone(),
		geo:      g.geo,
		policy:   g.policy,
	}
	m := KeyMap{
		vertices: c.vertices.store.Adopt,
		arcs:     c.arcs.store.Adopt,
		edges:    c.edges.store.Adopt,
		faces:    c.faces.store.Adopt,
	}

	// the copied records still name g's keys
	for _, k := range c.vertices.store.Keys() {
		v, _ := c.vertices.store.Get(k)
		v.arc = ArcKey(retag(m.arcs, arena.Key(v.arc)))
		_ = c.vertices.store.Set(k, v)
	}
	for _, k := range c.arcs.store.Keys() {
		a, _ := c.arcs.store.Get(k)
		a.dest = VertexKey(retag(m.vertices, arena.Key(a.dest)))
		a.opposite = ArcKey(retag(m.arcs, arena.Key(a.opposite)))
		a.next = ArcKey(retag(m.arcs, arena.Key(a.next)))
		a.prev = ArcKey(retag(m.arcs, arena.Key(a.prev)))
		a.face = FaceKey(retag(m.faces, arena.Key(a.face)))
		a.edge = EdgeKey(retag(m.edges, arena.Key(a.edge)))
		_ = c.arcs.store.Set(k, a)
	}
	for _, k := range c.edges.store.Keys() {
		e, _ := c.edges.store.Get(k)
		e.arcs[0] = ArcKey(retag(m.arcs, arena.Key(e.arcs[0])))
		e.arcs[1] = ArcKey(retag(m.arcs, arena.Key(e.arcs[1])))
		_ = c.edges.store.Set(k, e)
	}
	for _, k := range c.faces.store.Keys() {
		f, _ := c.faces.store.Get(k)
		f.arc = ArcKey(retag(m.arcs, arena.Key(f.arc)))
		_ = c.faces.store.Set(k, f)
	}
	return c, m
}

// retag moves a stored key into the clone's key space. Zero links stay
// zero; every other stored key was live when the clone was taken.
func retag(adopt func(arena.Key) (arena.Key, error), k arena.Key) arena.Key {
	if k.IsZero() {
		return k
	}
	nk, _ := adopt(k)
	return nk
}

// KeyMap translates keys of a graph into the key space of its clone. Keys
// the source created after the clone was taken do not translate.
type KeyMap struct {
	vertices, arcs, edges, faces func(arena.Key) (arena.Key, error)
}

// Vertex translates a vertex key.
func (m KeyMap) Vertex(k VertexKey) (VertexKey, error) {
	nk, err := m.vertices(arena.Key(k))
	if err != nil {
		return VertexKey{}, keyError("KeyMap", "vertex", k, err)
	}
	return VertexKey(nk), nil
}

// Arc translates an arc key.
func (m KeyMap) Arc(k ArcKey) (ArcKey, error) {
	nk, err := m.arcs(arena.Key(k))
	if err != nil {
		return ArcKey{}, keyError("KeyMap", "arc", k, err)
	}
	return ArcKey(nk), nil
}

// Edge translates an edge key.
func (m KeyMap) Edge(k EdgeKey) (EdgeKey, error) {
	nk, err := m.edges(arena.Key(k))
	if err != nil {
		return EdgeKey{}, keyError("KeyMap", "edge", k, err)
	}
	return EdgeKey(nk), nil
}

// Face translates a face key.
func (m KeyMap) Face(k FaceKey) (FaceKey, error) {
	nk, err := m.faces(arena.Key(k))
	if err != nil {
		return FaceKey{}, keyError("KeyMap", "face", k, err)
	}
	return FaceKey(nk), nil
}

// record accessors; errors are raw arena errors for the caller to wrap.

func (g *Graph[V, E, F]) vertex(k VertexKey) (vertex[V], error) {
	return g.vertices.get(arena.Key(k))
}

func (g *Graph[V, E, F]) arc(k ArcKey) (arc, error) {
	return g.arcs.get(arena.Key(k))
}

func (g *Graph[V, E, F]) edge(k EdgeKey) (edge[E], error) {
	return g.edges.get(arena.Key(k))
}

func (g *Graph[V, E, F]) face(k FaceKey) (face[F], error) {
	return g.faces.get(arena.Key(k))
}

func (g *Graph[V, E, F]) setVertex(k VertexKey, v vertex[V]) error {
	return g.vertices.set(arena.Key(k), v)
}

func (g *Graph[V, E, F]) setArc(k ArcKey, a arc) error {
	return g.arcs.set(arena.Key(k), a)
}

func (g *Graph[V, E, F]) setEdge(k EdgeKey, e edge[E]) error {
	return g.edges.set(arena.Key(k), e)
}

func (g *Graph[V, E, F]) setFace(k FaceKey, f face[F]) error {
	return g.faces.set(arena.Key(k), f)
}

func (g *Graph[V, E, F]) addVertex(v vertex[V]) VertexKey {
	return VertexKey(g.vertices.insert(v))
}

func (g *Graph[V, E, F]) addFace(f face[F]) FaceKey {
	return FaceKey(g.faces.insert(f))
}

// addEdge inserts an edge with its two opposite arcs u→w and w→u, both
// boundary. It returns the arc u→w, the arc w→u and the edge.
func (g *Graph[V, E, F]) addEdge(u, w VertexKey, payload E) (ArcKey, ArcKey, EdgeKey) {
	uw := ArcKey(g.arcs.insert(arc{dest: w}))
	wu := ArcKey(g.arcs.insert(arc{dest: u}))
	e := EdgeKey(g.edges.insert(edge[E]{arcs: [2]ArcKey{uw, wu}, payload: payload}))
	_ = g.arcs.set(arena.Key(uw), arc{dest: w, opposite: wu, edge: e})
	_ = g.arcs.set(arena.Key(wu), arc{dest: u, opposite: uw, edge: e})
	return uw, wu, e
}

// origin returns the vertex an arc leaves.
func (g *Graph[V, E, F]) origin(k ArcKey) (VertexKey, error) {
	a, err := g.arc(k)
	if err != nil {
		return VertexKey{}, err
	}
	o, err := g.arc(a.opposite)
	if err != nil {
		return VertexKey{}, err
	}
	return o.dest, nil
}
