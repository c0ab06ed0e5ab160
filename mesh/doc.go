// Package mesh implements a half-edge polygon mesh (doubly-connected edge
// list) with transactional topological editing.
//
// 🚀 What does it give you?
//
//	• Graph[V, E, F]: vertices, arcs (directed half-edges), edges and faces
//	  stored in generation-tagged arenas and addressed by typed keys.
//	• Circulators: lazy, restartable walks around faces and vertices.
//	• Operators: Extrude, Join, FillBoundary, SplitEdge, SplitFace,
//	  MergeFaces, Triangulate.
//	• Ingestion from any iter.Seq of polygons (FromPolygons).
//	• A narrow Geometry capability for operators that move vertices.
//
// Keys, not pointers:
//
//	Callers only ever hold keys. Removing an entity bumps its slot
//	generation, so a stale key fails with arena.ErrStaleKey (wrapped in an
//	ErrTopology *Error) instead of aliasing whatever reuses the slot. Keys
//	of one graph fail against another with arena.ErrForeignKey. A clone is
//	another graph: CloneWithKeys returns the KeyMap that carries keys of
//	the source across.
//
// Conventions:
//
//	• Faces wind counter-clockwise around their normal; next walks that way.
//	• Boundary arcs (no face) have no next/previous links.
//	• Every operator validates first, then applies all writes in one
//	  journalled transaction and re-checks the local invariants of what it
//	  touched. On any failure the graph is left exactly as it was.
//
// Quick ASCII example (one quad):
//
//	3 ◀──── 2
//	│       ▲
//	▼       │
//	0 ────▶ 1
//
//	FromPolygons → 1 face (arity 4), 4 vertices, 4 edges, 8 arcs,
//	four of them boundary.
//
// Concurrency: single writer, no internal locks.
package mesh
