// Package buffer converts between half-edge graphs and flat index/vertex
// buffers, the layout renderers and file formats expect.
//
// Export walks a graph in key order and writes one run of Arity indices per
// face:
//
//	buf, err := buffer.FromGraph[uint32](g, 3) // triangles
//	buf.Indices  // [i0 i1 i2  i3 i4 i5 ...]
//	buf.Vertices // payloads, buf.Vertices[i] for index i
//
// Arity 3 triangulates a clone of the graph first, so the source is never
// modified. Any other arity requires every face to have exactly that many
// corners.
//
// Import goes the other way through Buffer.Polygons, which yields a stream
// mesh.FromPolygons accepts. For polygon streams whose vertices repeat by
// value rather than by ID, IndexPolygons deduplicates them with a
// HashIndexer (exact) or an LRUIndexer (bounded memory, may emit a vertex
// twice when it falls out of the window).
package buffer
