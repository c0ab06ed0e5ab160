// Package lvmesh is an in-memory polygon mesh library built on a half-edge
// (doubly-connected edge list) graph: build meshes from polygon streams,
// walk them, edit them with atomic operators, and export them again.
//
// 🚀 What is lvmesh?
//
//	A generic, single-writer mesh graph that brings together:
//		• Arena storage: generation-tagged keys that go stale instead of dangling
//		• Topology: vertices, arcs (half-edges), edges and faces with payloads
//		• Circulators: around faces and vertices, invalidated by mutation
//		• Operators: split/merge faces, split edges, extrude, triangulate
//		• Geometry: optional positions, normals and centroids via go3d
//		• Export: flat index buffers, OBJ and YAML encoders, a badger store
//
// ✨ Why choose lvmesh?
//
//   - Safe keys – a removed element's key fails loudly, never aliases
//   - Atomic edits – every operator commits fully or rolls back
//   - Generic payloads – any vertex, edge and face data, geometry optional
//
// Packages:
//
//	arena/      — generation-tagged slot storage behind every key
//	mesh/       — half-edge graph, ingestion, circulators and operators
//	geometry/   — go3d vec3 implementation of mesh.Geometry
//	primitive/  — lazy polygon streams: platonic solids, UV sphere, grid
//	buffer/     — index/vertex buffer export, hash and LRU vertex indexers
//	traverse/   — breadth-first walks across faces and face components
//	shortest/   — shortest edge paths between vertices
//	encoding/   — Model plus obj/ and meshdoc/ file formats
//	store/      — persistent mesh database on BadgerDB
//	cmd/lvmesh  — command-line front end
//
// Quick ASCII example:
//
//	3───2
//	│ f │     one quad: 4 vertices, 4 edges, 8 arcs (4 bound f, 4 boundary)
//	0───1
//
//	go get github.com/katalvlaran/lvmesh
package lvmesh
